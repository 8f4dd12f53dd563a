package keyring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"
)

// The mock provider is process-global, so these tests are not parallel.

func TestStore_RoundTrip(t *testing.T) {
	gokeyring.MockInit()
	s := New()

	got, err := s.Get("pinata.api_key")
	require.NoError(t, err)
	assert.Empty(t, got, "missing secrets read as empty")

	require.NoError(t, s.Set("pinata.api_key", "k-123"))

	got, err = s.Get("pinata.api_key")
	require.NoError(t, err)
	assert.Equal(t, "k-123", got)

	require.NoError(t, s.Delete("pinata.api_key"))
	got, err = s.Get("pinata.api_key")
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.NoError(t, s.Delete("pinata.api_key"), "deleting twice succeeds")
}

func TestStore_RejectsUnknownKeys(t *testing.T) {
	gokeyring.MockInit()

	err := New().Set("site_domain", "example.com")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestIsSecretKey(t *testing.T) {
	assert.True(t, IsSecretKey("cloudflare.api_key"))
	assert.False(t, IsSecretKey("pinners"))
}
