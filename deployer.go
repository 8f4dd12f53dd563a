package ipfsdeploy

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/meigma/ipfsdeploy/internal/desktop"
	"github.com/meigma/ipfsdeploy/internal/dnslink"
	"github.com/meigma/ipfsdeploy/internal/pinning"
)

// pinnerFactory builds a pinner from the settings of one request.
type pinnerFactory func(req DeployRequest) Pinner

// dnsFactory builds a DNS updater from the settings of one request.
type dnsFactory func(req DeployRequest) DNSUpdater

// Deployer deploys static sites to IPFS pinning services.
type Deployer struct {
	fs        afero.Fs
	logger    *slog.Logger
	reporter  Reporter
	progress  ProgressCallback
	clipboard Clipboard
	browser   Browser

	// registries of services selectable by name
	pinners map[string]pinnerFactory
	dns     map[string]dnsFactory
}

// NewDeployer creates a new Deployer.
//
// The built-in services (infura, pinata, cloudflare) are always available;
// WithPinner and WithDNSUpdater add services or replace them by name.
func NewDeployer(opts ...Option) (*Deployer, error) {
	d := &Deployer{
		fs:        afero.NewOsFs(),
		logger:    slog.New(slog.DiscardHandler),
		reporter:  nopReporter{},
		clipboard: desktop.Clipboard{},
		browser:   desktop.Browser{},
		pinners:   make(map[string]pinnerFactory),
		dns:       make(map[string]dnsFactory),
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	if d.logger == nil {
		d.logger = slog.New(slog.DiscardHandler)
	}

	// Wire up default implementations
	d.registerPinner(pinning.InfuraName, func(req DeployRequest) Pinner {
		return pinning.NewInfura(req.Credentials.Infura, d.logger.With("pinner", pinning.InfuraName))
	})
	d.registerPinner(pinning.PinataName, func(req DeployRequest) Pinner {
		return pinning.NewPinata(req.Credentials.Pinata, d.fs, d.logger.With("pinner", pinning.PinataName))
	})
	d.registerDNS(dnslink.CloudflareName, func(req DeployRequest) DNSUpdater {
		return dnslink.NewCloudflare(req.Credentials.Cloudflare, d.logger.With("dns", dnslink.CloudflareName))
	})

	return d, nil
}

// registerPinner adds a built-in pinner unless an option already claimed
// the name.
func (d *Deployer) registerPinner(name string, f pinnerFactory) {
	if _, ok := d.pinners[name]; !ok {
		d.pinners[name] = f
	}
}

func (d *Deployer) registerDNS(name string, f dnsFactory) {
	if _, ok := d.dns[name]; !ok {
		d.dns[name] = f
	}
}
