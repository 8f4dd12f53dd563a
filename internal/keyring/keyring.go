// Package keyring stores deployment secrets in the operating system's
// credential store (macOS Keychain, Secret Service, Windows Credential
// Manager).
package keyring

import (
	"errors"
	"fmt"
	"slices"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/meigma/ipfsdeploy/internal/contracts"
)

// Compile-time interface implementation check.
var _ contracts.SecretWriter = (*Store)(nil)

// Service is the keyring service name secrets are stored under.
const Service = "ipfs-deploy"

// ErrUnknownKey indicates a key that is not a recognised secret.
var ErrUnknownKey = errors.New("not a secret configuration key")

// SecretKeys lists the configuration keys that may be stored in the keyring.
var SecretKeys = []string{
	"pinata.api_key",
	"pinata.secret_api_key",
	"cloudflare.api_email",
	"cloudflare.api_key",
	"infura.project_id",
	"infura.project_secret",
}

// Store reads and writes secrets for one service.
type Store struct {
	service string
}

// New creates a Store for the default service.
func New() *Store {
	return &Store{service: Service}
}

// Get returns the secret for key. A missing secret is not an error and
// yields "".
func (s *Store) Get(key string) (string, error) {
	secret, err := gokeyring.Get(s.service, key)
	if errors.Is(err, gokeyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("keyring get %s: %w", key, err)
	}
	return secret, nil
}

// Set stores secret under key. Only SecretKeys are accepted.
func (s *Store) Set(key, secret string) error {
	if !IsSecretKey(key) {
		return fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}
	if err := gokeyring.Set(s.service, key, secret); err != nil {
		return fmt.Errorf("keyring set %s: %w", key, err)
	}
	return nil
}

// Delete removes the secret stored under key. Deleting a missing secret
// succeeds.
func (s *Store) Delete(key string) error {
	err := gokeyring.Delete(s.service, key)
	if err != nil && !errors.Is(err, gokeyring.ErrNotFound) {
		return fmt.Errorf("keyring delete %s: %w", key, err)
	}
	return nil
}

// IsSecretKey reports whether key may be stored in the keyring.
func IsSecretKey(key string) bool {
	return slices.Contains(SecretKeys, key)
}
