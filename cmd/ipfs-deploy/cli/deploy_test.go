package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/ipfsdeploy"
	"github.com/meigma/ipfsdeploy/cmd/ipfs-deploy/cli/config"
)

type fakeSecrets map[string]string

func (s fakeSecrets) Get(key string) (string, error) {
	if key == "cloudflare.api_email" {
		return "", errors.New("keyring locked")
	}
	return s[key], nil
}

// newTestViper mirrors initConfig on a private instance.
func newTestViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()
	config.SetDefaults(v)
	return v
}

func TestRequestFromConfig_Defaults(t *testing.T) {
	req, err := requestFromConfig(newTestViper(), nil, "", nil)
	require.NoError(t, err)

	assert.Empty(t, req.Path)
	assert.Equal(t, []string{ipfsdeploy.PinnerInfura}, req.Pinners)
	assert.Empty(t, req.DNSProviders)
	assert.True(t, req.CopyGatewayURL)
	assert.True(t, req.Open)
	assert.Equal(t, ipfsdeploy.DefaultInfuraEndpoint, req.Credentials.Infura.Endpoint)
	assert.Equal(t, ipfsdeploy.DefaultPinataEndpoint, req.Credentials.Pinata.Endpoint)
}

func TestRequestFromConfig_Environment(t *testing.T) {
	t.Setenv("IPFS_DEPLOY_PINNERS", "infura,Pinata")
	t.Setenv("IPFS_DEPLOY_DNS", "cloudflare")
	t.Setenv("IPFS_DEPLOY_SITE_DOMAIN", "example.com")
	t.Setenv("IPFS_DEPLOY_OPEN", "false")
	t.Setenv("IPFS_DEPLOY_INFURA__ENDPOINT", "http://127.0.0.1:5001")
	t.Setenv("IPFS_DEPLOY_PINATA__API_KEY", "key")
	t.Setenv("IPFS_DEPLOY_PINATA__SECRET_API_KEY", "secret")
	t.Setenv("IPFS_DEPLOY_CLOUDFLARE__API_EMAIL", "me@example.com")
	t.Setenv("IPFS_DEPLOY_CLOUDFLARE__API_KEY", "cfkey")

	req, err := requestFromConfig(newTestViper(), nil, "public", nil)
	require.NoError(t, err)

	assert.Equal(t, "public", req.Path)
	assert.Equal(t, []string{"infura", "pinata"}, req.Pinners)
	assert.Equal(t, []string{"cloudflare"}, req.DNSProviders)
	assert.Equal(t, "example.com", req.SiteDomain)
	assert.False(t, req.Open)
	assert.True(t, req.CopyGatewayURL)
	assert.Equal(t, "http://127.0.0.1:5001", req.Credentials.Infura.Endpoint)
	assert.Equal(t, ipfsdeploy.PinataConfig{
		Endpoint:     ipfsdeploy.DefaultPinataEndpoint,
		APIKey:       "key",
		SecretAPIKey: "secret",
	}, req.Credentials.Pinata)
	assert.Equal(t, ipfsdeploy.CloudflareConfig{APIEmail: "me@example.com", APIKey: "cfkey"}, req.Credentials.Cloudflare)
}

func TestRequestFromConfig_KeyringFallback(t *testing.T) {
	t.Setenv("IPFS_DEPLOY_PINATA__API_KEY", "from-env")

	secrets := fakeSecrets{
		"pinata.api_key":        "from-keyring",
		"pinata.secret_api_key": "secret-from-keyring",
		"cloudflare.api_key":    "cf-from-keyring",
	}

	req, err := requestFromConfig(newTestViper(), secrets, "", nil)
	require.NoError(t, err)

	// configured values win over the keyring
	assert.Equal(t, "from-env", req.Credentials.Pinata.APIKey)
	assert.Equal(t, "secret-from-keyring", req.Credentials.Pinata.SecretAPIKey)
	assert.Equal(t, "cf-from-keyring", req.Credentials.Cloudflare.APIKey)
	// lookup failures leave the value empty
	assert.Empty(t, req.Credentials.Cloudflare.APIEmail)
}

func TestRequestFromConfig_Overrides(t *testing.T) {
	t.Parallel()

	v := newTestViper()
	v.Set("pinners", []string{"pinata", "infura"})
	v.Set("clipboard", false)

	req, err := requestFromConfig(v, nil, "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"pinata", "infura"}, req.Pinners)
	assert.False(t, req.CopyGatewayURL)
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{name: "nil", values: nil, want: nil},
		{name: "separate values", values: []string{"infura", "pinata"}, want: []string{"infura", "pinata"}},
		{name: "comma separated", values: []string{"infura,pinata"}, want: []string{"infura", "pinata"}},
		{name: "space separated", values: []string{"infura pinata"}, want: []string{"infura", "pinata"}},
		{name: "empty items dropped", values: []string{",infura,,", ""}, want: []string{"infura"}},
		{name: "lowercased", values: []string{"Cloudflare"}, want: []string{"cloudflare"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitList(tt.values))
		})
	}
}
