package config

import (
	"github.com/spf13/viper"

	"github.com/meigma/ipfsdeploy"
)

// EnvPrefix prefixes every environment variable the CLI reads. Nested keys
// are joined with a double underscore, e.g. IPFS_DEPLOY_PINATA__API_KEY.
const EnvPrefix = "IPFS_DEPLOY"

// Config represents the ipfs-deploy CLI configuration.
// Use mapstructure tags for Viper unmarshaling.
type Config struct {
	Pinners    []string         `mapstructure:"pinners"`
	DNS        []string         `mapstructure:"dns"`
	SiteDomain string           `mapstructure:"site_domain"`
	Clipboard  bool             `mapstructure:"clipboard"`
	Open       bool             `mapstructure:"open"`
	Progress   string           `mapstructure:"progress"`
	Keyring    bool             `mapstructure:"keyring"`
	Infura     InfuraConfig     `mapstructure:"infura"`
	Pinata     PinataConfig     `mapstructure:"pinata"`
	Cloudflare CloudflareConfig `mapstructure:"cloudflare"`
}

// InfuraConfig holds settings for the kubo RPC pinning service.
type InfuraConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	ProjectID     string `mapstructure:"project_id"`
	ProjectSecret string `mapstructure:"project_secret"`
}

// PinataConfig holds settings for Pinata.
type PinataConfig struct {
	Endpoint     string `mapstructure:"endpoint"`
	APIKey       string `mapstructure:"api_key"`
	SecretAPIKey string `mapstructure:"secret_api_key"`
}

// CloudflareConfig holds settings for Cloudflare DNS.
type CloudflareConfig struct {
	APIEmail string `mapstructure:"api_email"`
	APIKey   string `mapstructure:"api_key"`
}

// Defaults returns the default value of every configuration key.
// Every key needs a default so Unmarshal sees keys set only in the
// environment.
func Defaults() map[string]any {
	return map[string]any{
		"pinners":               ipfsdeploy.DefaultPinners,
		"dns":                   []string{},
		"site_domain":           "",
		"clipboard":             true,
		"open":                  true,
		"progress":              "auto",
		"keyring":               true,
		"infura.endpoint":       ipfsdeploy.DefaultInfuraEndpoint,
		"infura.project_id":     "",
		"infura.project_secret": "",
		"pinata.endpoint":       ipfsdeploy.DefaultPinataEndpoint,
		"pinata.api_key":        "",
		"pinata.secret_api_key": "",
		"cloudflare.api_email":  "",
		"cloudflare.api_key":    "",
	}
}

// SetDefaults registers Defaults on v.
func SetDefaults(v *viper.Viper) {
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
}

// Load unmarshals the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Secret returns the value of a secret key, for filling from the keyring.
// It returns a pointer so callers can update it in place.
func (c *Config) Secret(key string) *string {
	switch key {
	case "pinata.api_key":
		return &c.Pinata.APIKey
	case "pinata.secret_api_key":
		return &c.Pinata.SecretAPIKey
	case "cloudflare.api_email":
		return &c.Cloudflare.APIEmail
	case "cloudflare.api_key":
		return &c.Cloudflare.APIKey
	case "infura.project_id":
		return &c.Infura.ProjectID
	case "infura.project_secret":
		return &c.Infura.ProjectSecret
	default:
		return nil
	}
}
