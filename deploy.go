package ipfsdeploy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultPinners is used when a request selects no pinning service.
var DefaultPinners = []string{PinnerInfura}

// DeployRequest describes one deployment.
type DeployRequest struct {
	// Path is the directory to deploy. When empty a conventional output
	// directory is guessed.
	Path string
	// Pinners selects pinning services by name, in upload order. The first
	// one to succeed provides the reference hash and the gateway URL.
	Pinners []string
	// DNSProviders selects the DNS providers to update after pinning.
	DNSProviders []string
	// SiteDomain is the domain whose DNSLink record is updated. It also
	// names the pin.
	SiteDomain string
	// Credentials holds the settings of the built-in services.
	Credentials Credentials
	// CopyGatewayURL copies the gateway URL to the clipboard.
	CopyGatewayURL bool
	// Open opens the deployed site in the browser.
	Open bool
}

// Credentials holds per-service settings.
type Credentials struct {
	Infura     InfuraConfig
	Pinata     PinataConfig
	Cloudflare CloudflareConfig
}

// DeployResult describes a successful deployment.
type DeployResult struct {
	// ID identifies the deployment in logs and pin metadata.
	ID string
	// Dir is the directory that was deployed.
	Dir string
	// Size is the combined size of the deployed files in bytes.
	Size int64
	// CID is the content identifier every pinning service agreed on.
	CID string
	// GatewayURL serves CID through the first successful service's gateway.
	GatewayURL string
	// Pinned holds the identifier returned by each successful service.
	Pinned PinnedResult
	// Warnings collects post-deploy steps (clipboard, DNS, browser) that
	// failed without failing the deployment.
	Warnings []error
}

// Deploy uploads a directory to the requested pinning services, checks that
// they agree on its content identifier, then runs the requested post-deploy
// steps.
//
// Deploy fails when no directory can be resolved, its size cannot be
// measured, no service pins it, or services disagree on the identifier.
// Individual service failures and post-deploy failures are reported and
// logged but do not fail the deployment.
func (d *Deployer) Deploy(ctx context.Context, req DeployRequest) (*DeployResult, error) {
	id := uuid.NewString()
	logger := d.logger.With("deployment", id)

	dir, err := d.resolveDir(req.Path)
	if err != nil {
		logger.Error("no deployable path", "error", err)
		return nil, err
	}

	size, err := d.measure(dir)
	if err != nil {
		logger.Error("size calculation failed", "dir", dir, "error", err)
		return nil, err
	}
	logger.Debug("directory measured", "dir", dir, "bytes", size)

	succeeded, pinned, err := d.pinAll(ctx, logger, dir, req, id)
	if err != nil {
		return nil, err
	}

	cid, err := Reconcile(succeeded, pinned)
	if err != nil {
		var inconsistent *InconsistentPinsError
		if errors.As(err, &inconsistent) {
			d.reporter.Fail("Found inconsistency in pinned hashes:")
			for name, hash := range inconsistent.Pinned {
				d.reporter.Info(name + ": " + hash)
			}
		} else {
			d.reporter.Fail("Failed to deploy.")
		}
		logger.Error("reconciliation failed", "pinned", pinned, "error", err)
		return nil, err
	}

	result := &DeployResult{
		ID:         id,
		Dir:        dir,
		Size:       size,
		CID:        cid,
		GatewayURL: GatewayURL(cid, succeeded[0]),
		Pinned:     pinned,
	}
	logger.Info("deployed", "cid", cid, "gateway", result.GatewayURL, "pinners", succeeded)

	d.postDeploy(ctx, logger, req, result)

	return result, nil
}

func (d *Deployer) resolveDir(explicit string) (string, error) {
	if explicit == "" {
		d.reporter.Info("No path argument specified. Looking for common ones...")
	}

	dir, ok := ResolvePath(d.fs, explicit)
	if !ok {
		d.reporter.Fail("Couldn't guess what to deploy. Please specify a path.")
		return "", ErrNoPath
	}

	if explicit == "" {
		d.reporter.Succeed(fmt.Sprintf("Found local %s directory. Deploying that.", dir))
	}
	return dir, nil
}

func (d *Deployer) measure(dir string) (int64, error) {
	d.reporter.Start(fmt.Sprintf("Calculating size of %s...", dir))

	size, err := DirSize(d.fs, dir)
	if err != nil {
		d.reporter.Fail("Couldn't calculate website size.")
		d.reporter.Warn(err.Error())
		return 0, fmt.Errorf("%w: %w", ErrSizeFailed, err)
	}

	d.reporter.Succeed(fmt.Sprintf("%s weighs %s.", dir, HumanSize(size)))
	return size, nil
}

// pinAll uploads dir to each requested service in order, one at a time.
// It returns the services that succeeded, in order, and their identifiers.
// Only cancellation of ctx stops it early.
func (d *Deployer) pinAll(ctx context.Context, logger *slog.Logger, dir string, req DeployRequest, id string) ([]string, PinnedResult, error) {
	names := req.Pinners
	if len(names) == 0 {
		names = DefaultPinners
	}

	opts := PinOptions{
		Name:     pinName(req.SiteDomain),
		Metadata: map[string]string{"deployment": id},
	}

	var succeeded []string
	pinned := PinnedResult{}
	attempted := map[string]bool{}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if attempted[name] {
			continue
		}
		attempted[name] = true

		factory, ok := d.pinners[name]
		if !ok {
			logger.Warn("unknown pinning service", "pinner", name)
			d.reporter.Warn(fmt.Sprintf("Unknown pinning service %q, skipping.", name))
			continue
		}

		d.reporter.Start(fmt.Sprintf("Uploading and pinning to %s...", name))

		pinOpts := opts
		pinOpts.Progress = d.progressFor(name)
		cid, err := factory(req).Pin(ctx, dir, pinOpts)
		if err != nil {
			d.reporter.Fail(fmt.Sprintf("Uploading to %s didn't work.", name))
			d.reporter.Warn(err.Error())
			logger.Error("pin failed", "pinner", name, "error", err)
			continue
		}

		d.reporter.Succeed(fmt.Sprintf("It's pinned to %s now with hash:", name))
		d.reporter.Info(cid)
		logger.Debug("pinned", "pinner", name, "cid", cid)

		succeeded = append(succeeded, name)
		pinned[name] = cid
	}

	return succeeded, pinned, nil
}

// progressFor adapts the deployer's progress callback to one service.
func (d *Deployer) progressFor(name string) func(sent, total int64) {
	if d.progress == nil {
		return nil
	}
	return func(sent, total int64) {
		d.progress(ProgressEvent{Pinner: name, BytesSent: sent, TotalBytes: total})
	}
}

// pinName labels pins with the site domain, or the working directory's
// name when there is none.
func pinName(siteDomain string) string {
	if siteDomain != "" {
		return siteDomain
	}
	if wd, err := os.Getwd(); err == nil {
		return filepath.Base(wd)
	}
	return "ipfs-deploy"
}
