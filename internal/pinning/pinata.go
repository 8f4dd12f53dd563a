package pinning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/spf13/afero"

	"github.com/meigma/ipfsdeploy/core"
	"github.com/meigma/ipfsdeploy/internal/progress"
)

// Compile-time interface implementation check.
var _ core.Pinner = (*Pinata)(nil)

const (
	// PinataName selects the Pinata pinner.
	PinataName = "pinata"

	// DefaultPinataEndpoint is the Pinata API base URL.
	DefaultPinataEndpoint = "https://api.pinata.cloud"

	// PinataAPIKeyVar and PinataSecretAPIKeyVar name the environment
	// variables users set the Pinata credentials with.
	PinataAPIKeyVar       = "IPFS_DEPLOY_PINATA__API_KEY"
	PinataSecretAPIKeyVar = "IPFS_DEPLOY_PINATA__SECRET_API_KEY"

	pinFilePath = "/pinning/pinFileToIPFS"
)

// errEmptyDir indicates there was nothing to upload.
var errEmptyDir = errors.New("directory contains no files")

// PinataConfig configures the Pinata pinner.
type PinataConfig struct {
	// Endpoint is the API base URL. Defaults to DefaultPinataEndpoint.
	Endpoint     string
	APIKey       string
	SecretAPIKey string
}

// Pinata pins directories through the Pinata pinFileToIPFS API.
type Pinata struct {
	cfg    PinataConfig
	fs     afero.Fs
	client *http.Client
	logger *slog.Logger
}

type pinataMetadata struct {
	Name      string            `json:"name,omitempty"`
	KeyValues map[string]string `json:"keyvalues,omitempty"`
}

type pinFileResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// NewPinata creates a Pinata pinner reading files from fsys.
// A nil fsys uses the OS filesystem; a nil logger disables logging.
func NewPinata(cfg PinataConfig, fsys afero.Fs, logger *slog.Logger) *Pinata {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultPinataEndpoint
	}
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	client := cleanhttp.DefaultPooledClient()
	client.Transport = &headerTransport{
		next: client.Transport,
		headers: http.Header{
			"pinata_api_key":        {cfg.APIKey},
			"pinata_secret_api_key": {cfg.SecretAPIKey},
		},
	}

	return &Pinata{cfg: cfg, fs: fsys, client: client, logger: logger}
}

// Name implements core.Pinner.
func (p *Pinata) Name() string { return PinataName }

// Pin uploads every non-hidden regular file under dir and returns the CID
// of the directory. Files are sent under the directory's base name so the
// resulting root matches a recursive add of the same tree.
func (p *Pinata) Pin(ctx context.Context, dir string, opts core.PinOptions) (string, error) {
	if p.cfg.APIKey == "" || p.cfg.SecretAPIKey == "" {
		return "", fmt.Errorf("pinata: %w: set %s and %s",
			core.ErrMissingCredentials, PinataAPIKeyVar, PinataSecretAPIKeyVar)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("pinata: resolve %s: %w", dir, err)
	}
	root := filepath.Base(abs)

	files, total, err := collectFiles(p.fs, dir)
	if err != nil {
		return "", fmt.Errorf("pinata: scan %s: %w", dir, err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("pinata: %s: %w", dir, errEmptyDir)
	}

	name := opts.Name
	if name == "" {
		name = root
	}
	meta, err := json.Marshal(pinataMetadata{Name: name, KeyValues: opts.Metadata})
	if err != nil {
		return "", fmt.Errorf("pinata: encode metadata: %w", err)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	length, err := bodySize(mw.Boundary(), root, files, meta, total)
	if err != nil {
		return "", fmt.Errorf("pinata: size request: %w", err)
	}

	go func() {
		pw.CloseWithError(writeForm(mw, root, files, meta, func(w io.Writer, rel string) error {
			return p.copyFile(w, filepath.Join(dir, rel))
		}))
	}()

	body := progress.NewReader(pr, length, opts.Progress)
	defer body.Close()

	url := strings.TrimRight(p.cfg.Endpoint, "/") + pinFilePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("pinata: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.ContentLength = length

	p.logger.Debug("uploading directory", "endpoint", p.cfg.Endpoint, "dir", dir, "files", len(files), "bytes", total)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("pinata: upload %s: %w", dir, err)
	}
	defer resp.Body.Close()

	if err := mapStatus("pinata", resp); err != nil {
		return "", err
	}

	var out pinFileResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("pinata: decode response: %w", err)
	}
	if out.IpfsHash == "" {
		return "", fmt.Errorf("pinata: %w", errNoResult)
	}

	p.logger.Debug("directory pinned", "cid", out.IpfsHash, "pin_size", out.PinSize)
	return out.IpfsHash, nil
}

// writeForm writes the multipart form: one "file" part per file, then the
// metadata and options fields. content fills each file part.
func writeForm(mw *multipart.Writer, root string, files []string, meta []byte, content func(w io.Writer, rel string) error) error {
	for _, rel := range files {
		part, err := mw.CreateFormFile("file", path.Join(root, filepath.ToSlash(rel)))
		if err != nil {
			return err
		}
		if err := content(part, rel); err != nil {
			return err
		}
	}
	if err := mw.WriteField("pinataMetadata", string(meta)); err != nil {
		return err
	}
	// CIDv0 matches the default of a kubo add, so both services agree.
	if err := mw.WriteField("pinataOptions", `{"cidVersion":0}`); err != nil {
		return err
	}
	return mw.Close()
}

// bodySize returns the exact length of the form writeForm produces with
// boundary: the multipart framing plus fileBytes of file content.
func bodySize(boundary, root string, files []string, meta []byte, fileBytes int64) (int64, error) {
	var framing byteCounter
	mw := multipart.NewWriter(&framing)
	if err := mw.SetBoundary(boundary); err != nil {
		return 0, err
	}
	err := writeForm(mw, root, files, meta, func(io.Writer, string) error { return nil })
	if err != nil {
		return 0, err
	}
	return int64(framing) + fileBytes, nil
}

// byteCounter counts the bytes written to it.
type byteCounter int64

func (c *byteCounter) Write(p []byte) (int, error) {
	*c += byteCounter(len(p))
	return len(p), nil
}

func (p *Pinata) copyFile(w io.Writer, name string) error {
	f, err := p.fs.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}

// collectFiles returns the regular files under dir, relative to dir, in
// lexical order, and their combined size. Hidden files and directories are
// skipped, as a recursive kubo add skips them.
func collectFiles(fsys afero.Fs, dir string) ([]string, int64, error) {
	var files []string
	var total int64

	// The trailing separator makes the walk follow a symlinked root.
	root := strings.TrimRight(dir, string(filepath.Separator)) + string(filepath.Separator)

	err := afero.Walk(fsys, root, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if p != root && strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		files = append(files, rel)
		total += info.Size()
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return files, total, nil
}
