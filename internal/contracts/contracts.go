// Package contracts defines internal interfaces shared across ipfsdeploy
// components. These interfaces are intentionally internal to avoid exposing
// implementation contracts as part of the public API.
package contracts

// SecretStore looks up credentials that are not set in the configuration.
// A missing secret yields "" and no error.
type SecretStore interface {
	// Get returns the secret stored under a configuration key such as
	// "pinata.api_key".
	Get(key string) (string, error)
}

// SecretWriter stores and removes credentials.
type SecretWriter interface {
	SecretStore

	// Set stores secret under key.
	Set(key, secret string) error

	// Delete removes the secret stored under key.
	Delete(key string) error
}
