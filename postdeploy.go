package ipfsdeploy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// errNoSiteDomain is reported when the site should be opened at its domain
// but none is configured.
var errNoSiteDomain = errors.New("no site domain to open")

// postDeploy runs the optional steps that follow a successful deployment.
// Failures are reported, logged and recorded on result, never returned.
func (d *Deployer) postDeploy(ctx context.Context, logger *slog.Logger, req DeployRequest, result *DeployResult) {
	if req.CopyGatewayURL {
		d.bestEffort(logger, result, "clipboard", func() error {
			if err := d.clipboard.WriteText(result.GatewayURL); err != nil {
				return err
			}
			d.reporter.Succeed("Copied HTTP gateway URL to clipboard:")
			d.reporter.Info(result.GatewayURL)
			return nil
		})
	}

	seen := map[string]bool{}
	for _, name := range req.DNSProviders {
		if seen[name] {
			continue
		}
		seen[name] = true

		d.bestEffort(logger, result, "dns "+name, func() error {
			return d.updateDNS(ctx, name, req, result.CID)
		})
	}

	if req.Open {
		d.bestEffort(logger, result, "browser", func() error {
			target := result.GatewayURL
			if len(req.DNSProviders) > 0 {
				if req.SiteDomain == "" {
					return errNoSiteDomain
				}
				target = "https://" + req.SiteDomain
			}
			if err := d.browser.Open(target); err != nil {
				return err
			}
			d.reporter.Succeed("Opened web browser (call with -O to disable.)")
			return nil
		})
	}
}

func (d *Deployer) updateDNS(ctx context.Context, name string, req DeployRequest, cid string) error {
	factory, ok := d.dns[name]
	if !ok {
		return fmt.Errorf("unknown dns provider %q", name)
	}

	d.reporter.Start(fmt.Sprintf("Updating %s DNS...", name))
	content, err := factory(req).UpdateLink(ctx, req.SiteDomain, cid)
	if err != nil {
		d.reporter.Fail(fmt.Sprintf("Error updating %s DNS.", name))
		return err
	}

	d.reporter.Succeed(fmt.Sprintf("Updated %s DNS to:", name))
	d.reporter.Info(content)
	return nil
}

// bestEffort runs step, turning a failure into a warning on result.
func (d *Deployer) bestEffort(logger *slog.Logger, result *DeployResult, step string, fn func() error) {
	if err := fn(); err != nil {
		err = fmt.Errorf("%s: %w", step, err)
		d.reporter.Warn(err.Error())
		logger.Warn("post-deploy step failed", "step", step, "error", err)
		result.Warnings = append(result.Warnings, err)
	}
}
