package ipfsdeploy

import (
	"github.com/meigma/ipfsdeploy/core"
	"github.com/meigma/ipfsdeploy/internal/dnslink"
	"github.com/meigma/ipfsdeploy/internal/pinning"
)

// Re-exported from core package.
type (
	// Pinner uploads a directory to a remote pinning service.
	Pinner = core.Pinner
	// PinOptions configures a single Pin call.
	PinOptions = core.PinOptions
	// DNSUpdater points a domain at a content identifier.
	DNSUpdater = core.DNSUpdater
	// Clipboard writes text to the system clipboard.
	Clipboard = core.Clipboard
	// Browser opens URLs.
	Browser = core.Browser
	// Reporter receives human-readable step updates.
	Reporter = core.Reporter
)

// Settings for the built-in services.
type (
	InfuraConfig     = pinning.InfuraConfig
	PinataConfig     = pinning.PinataConfig
	CloudflareConfig = dnslink.CloudflareConfig
)

// Names the built-in services are selected by.
const (
	PinnerInfura  = pinning.InfuraName
	PinnerPinata  = pinning.PinataName
	DNSCloudflare = dnslink.CloudflareName
)

// nopReporter discards step updates.
type nopReporter struct{}

func (nopReporter) Start(string)   {}
func (nopReporter) Succeed(string) {}
func (nopReporter) Fail(string)    {}
func (nopReporter) Info(string)    {}
func (nopReporter) Warn(string)    {}

// Default endpoints of the built-in pinning services.
const (
	DefaultInfuraEndpoint = pinning.DefaultInfuraEndpoint
	DefaultPinataEndpoint = pinning.DefaultPinataEndpoint
)
