package ipfsdeploy

import "github.com/meigma/ipfsdeploy/core"

// Sentinel errors for common failure conditions.
// Re-exported from core package.
var (
	// ErrNoPath indicates no path was given and none could be guessed.
	ErrNoPath = core.ErrNoPath

	// ErrSizeFailed indicates the directory size could not be calculated.
	ErrSizeFailed = core.ErrSizeFailed

	// ErrMissingCredentials indicates a pinning service lacks its secrets.
	ErrMissingCredentials = core.ErrMissingCredentials

	// ErrUnauthorized indicates a remote service rejected the credentials.
	ErrUnauthorized = core.ErrUnauthorized

	// ErrNoPins indicates no pinning service produced a content identifier.
	ErrNoPins = core.ErrNoPins

	// ErrInconsistentPins indicates pinning services returned different
	// content identifiers. The concrete error is *InconsistentPinsError.
	ErrInconsistentPins = core.ErrInconsistentPins

	// ErrMissingDNSConfig indicates a DNS provider lacks its settings.
	ErrMissingDNSConfig = core.ErrMissingDNSConfig
)
