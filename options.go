package ipfsdeploy

import (
	"errors"
	"log/slog"

	"github.com/spf13/afero"
)

// Option configures a Deployer.
type Option func(*Deployer) error

// WithBrowser sets the browser used to open the deployed site.
func WithBrowser(b Browser) Option {
	return func(d *Deployer) error {
		if b == nil {
			return errors.New("browser must not be nil")
		}
		d.browser = b
		return nil
	}
}

// WithClipboard sets the clipboard the gateway URL is copied to.
func WithClipboard(c Clipboard) Option {
	return func(d *Deployer) error {
		if c == nil {
			return errors.New("clipboard must not be nil")
		}
		d.clipboard = c
		return nil
	}
}

// WithDNSUpdater registers a DNS provider under its Name, replacing any
// built-in provider of the same name.
func WithDNSUpdater(u DNSUpdater) Option {
	return func(d *Deployer) error {
		if u == nil {
			return errors.New("dns updater must not be nil")
		}
		d.dns[u.Name()] = func(DeployRequest) DNSUpdater { return u }
		return nil
	}
}

// WithFs sets the filesystem directories are resolved and measured on.
// Defaults to the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(d *Deployer) error {
		if fsys == nil {
			return errors.New("filesystem must not be nil")
		}
		d.fs = fsys
		return nil
	}
}

// WithLogger sets a logger for the deployer. By default, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deployer) error {
		d.logger = logger
		return nil
	}
}

// WithPinner registers a pinning service under its Name, replacing any
// built-in service of the same name.
func WithPinner(p Pinner) Option {
	return func(d *Deployer) error {
		if p == nil {
			return errors.New("pinner must not be nil")
		}
		d.pinners[p.Name()] = func(DeployRequest) Pinner { return p }
		return nil
	}
}

// WithProgress sets a callback receiving upload progress.
func WithProgress(cb ProgressCallback) Option {
	return func(d *Deployer) error {
		d.progress = cb
		return nil
	}
}

// WithReporter sets the receiver of human-readable step updates.
// By default updates are discarded.
func WithReporter(r Reporter) Option {
	return func(d *Deployer) error {
		if r == nil {
			return errors.New("reporter must not be nil")
		}
		d.reporter = r
		return nil
	}
}
