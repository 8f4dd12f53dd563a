// Package core provides the shared types and interfaces for ipfsdeploy.
//
// This package exists to break import cycles between the root ipfsdeploy
// package and internal implementation packages. The ipfsdeploy package
// re-exports the public types from this package, so external users should
// import ipfsdeploy directly, not ipfsdeploy/core.
package core

import (
	"context"
	"errors"
)

// Sentinel errors for common failure conditions.
var (
	// ErrNoPath indicates no path was given and none of the conventional
	// output directories exist.
	ErrNoPath = errors.New("ipfsdeploy: no deployable path")

	// ErrSizeFailed indicates the directory size could not be calculated.
	ErrSizeFailed = errors.New("ipfsdeploy: size calculation failed")

	// ErrMissingCredentials indicates a pinning service was selected without
	// the secrets it requires.
	ErrMissingCredentials = errors.New("ipfsdeploy: missing credentials")

	// ErrUnauthorized indicates a remote service rejected the credentials.
	ErrUnauthorized = errors.New("ipfsdeploy: unauthorized")

	// ErrNoPins indicates no pinning service produced a content identifier.
	ErrNoPins = errors.New("ipfsdeploy: no pinning service produced a result")

	// ErrInconsistentPins indicates pinning services disagree on the
	// content identifier of the same directory.
	ErrInconsistentPins = errors.New("ipfsdeploy: inconsistent pinned hashes")

	// ErrMissingDNSConfig indicates a DNS provider was selected without the
	// domain or credentials it requires.
	ErrMissingDNSConfig = errors.New("ipfsdeploy: missing DNS configuration")
)

// ProgressFunc receives cumulative upload progress. Total is -1 when unknown.
type ProgressFunc func(sent, total int64)

// PinOptions configures a single Pin call.
type PinOptions struct {
	// Name is the human-readable label stored with the pin.
	Name string
	// Metadata is stored alongside the pin by services that support it.
	Metadata map[string]string
	// Progress, if set, is called as the upload body is streamed.
	Progress ProgressFunc
}

// Pinner uploads a directory tree to a remote pinning service.
// This interface is implemented by internal/pinning.
type Pinner interface {
	// Name returns the name the pinner is selected by (e.g. "infura").
	Name() string

	// Pin recursively uploads dir and returns the content identifier of
	// its root node.
	Pin(ctx context.Context, dir string, opts PinOptions) (string, error)
}

// DNSUpdater points a domain at a content identifier.
// This interface is implemented by internal/dnslink.
type DNSUpdater interface {
	// Name returns the name the provider is selected by (e.g. "cloudflare").
	Name() string

	// UpdateLink sets the DNSLink record of domain to /ipfs/cid and returns
	// the record content the provider confirmed.
	UpdateLink(ctx context.Context, domain, cid string) (string, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Browser opens a URL in the user's browser.
type Browser interface {
	Open(url string) error
}

// Reporter receives human-readable step updates during a deployment.
// The calls mirror a terminal spinner: Start begins a step, Succeed or Fail
// ends it, Info and Warn add detail lines.
type Reporter interface {
	Start(msg string)
	Succeed(msg string)
	Fail(msg string)
	Info(msg string)
	Warn(msg string)
}
