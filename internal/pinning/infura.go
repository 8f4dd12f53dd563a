package pinning

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
	shell "github.com/ipfs/go-ipfs-api"

	"github.com/meigma/ipfsdeploy/core"
)

// Compile-time interface implementation check.
var _ core.Pinner = (*Infura)(nil)

const (
	// InfuraName selects the Infura pinner.
	InfuraName = "infura"

	// DefaultInfuraEndpoint is the public Infura IPFS RPC API.
	DefaultInfuraEndpoint = "https://ipfs.infura.io:5001"
)

// InfuraConfig configures the Infura pinner.
type InfuraConfig struct {
	// Endpoint is the RPC API base URL. Defaults to DefaultInfuraEndpoint.
	Endpoint string
	// ProjectID and ProjectSecret are sent as HTTP basic auth when set.
	ProjectID     string
	ProjectSecret string
}

// Infura pins directories through a kubo-compatible HTTP RPC API.
type Infura struct {
	cfg       InfuraConfig
	transport http.RoundTripper
	logger    *slog.Logger
}

// NewInfura creates an Infura pinner. A nil logger disables logging.
func NewInfura(cfg InfuraConfig, logger *slog.Logger) *Infura {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultInfuraEndpoint
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Infura{
		cfg:       cfg,
		transport: cleanhttp.DefaultPooledTransport(),
		logger:    logger,
	}
}

// Name implements core.Pinner.
func (i *Infura) Name() string { return InfuraName }

// Endpoint returns the RPC API base URL in use.
func (i *Infura) Endpoint() string { return i.cfg.Endpoint }

// Pin recursively adds dir and returns the CID of its root node.
// Upload progress is not reported; the RPC client reads files itself.
func (i *Infura) Pin(ctx context.Context, dir string, _ core.PinOptions) (string, error) {
	rt := i.transport
	if i.cfg.ProjectID != "" || i.cfg.ProjectSecret != "" {
		rt = &basicAuthTransport{next: rt, username: i.cfg.ProjectID, password: i.cfg.ProjectSecret}
	}
	client := &http.Client{Transport: &contextTransport{next: rt, ctx: ctx}}
	sh := shell.NewShellWithClient(i.cfg.Endpoint, client)

	i.logger.Debug("adding directory", "endpoint", i.cfg.Endpoint, "dir", dir)

	cid, err := sh.AddDir(dir)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("infura: add %s: %w", dir, err)
	}
	if cid == "" {
		return "", fmt.Errorf("infura: add %s: %w", dir, errNoResult)
	}

	i.logger.Debug("directory added", "endpoint", i.cfg.Endpoint, "cid", cid)
	return cid, nil
}
