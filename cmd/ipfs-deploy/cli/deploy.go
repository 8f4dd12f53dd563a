package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meigma/ipfsdeploy"
	"github.com/meigma/ipfsdeploy/cmd/ipfs-deploy/cli/config"
	"github.com/meigma/ipfsdeploy/internal/contracts"
	"github.com/meigma/ipfsdeploy/internal/keyring"
)

// Deploy flags.
var (
	noClipboard bool
	noOpen      bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringSliceP("pinner", "p", nil, "Pinning services to upload to, in order (infura, pinata)")
	flags.StringSliceP("dns", "d", nil, "DNS providers to point at the new content (cloudflare)")
	flags.String("site-domain", "", "Domain of the site, used for DNSLink and the pin name")
	flags.String("progress", "auto", "Progress display (auto, tty, plain)")
	flags.BoolVarP(&noClipboard, "no-clipboard", "C", false, "Don't copy the gateway URL to the clipboard")
	flags.BoolVarP(&noOpen, "no-open", "O", false, "Don't open the deployed site in a browser")

	_ = viper.BindPFlag("pinners", flags.Lookup("pinner"))
	_ = viper.BindPFlag("dns", flags.Lookup("dns"))
	_ = viper.BindPFlag("site_domain", flags.Lookup("site-domain"))
	_ = viper.BindPFlag("progress", flags.Lookup("progress"))

	_ = rootCmd.RegisterFlagCompletionFunc("pinner", completePinners)
	_ = rootCmd.RegisterFlagCompletionFunc("dns", completeDNSProviders)
	_ = rootCmd.RegisterFlagCompletionFunc("progress", completeProgress)
}

func runDeploy(cmd *cobra.Command, args []string) error {
	if noClipboard {
		viper.Set("clipboard", false)
	}
	if noOpen {
		viper.Set("open", false)
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	var secrets contracts.SecretStore
	if viper.GetBool("keyring") {
		secrets = keyring.New()
	}

	req, err := requestFromConfig(viper.GetViper(), secrets, path, newLogger())
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	c := newConsole(os.Stderr, shouldShowProgress())
	d, err := newDeployer(c)
	if err != nil {
		return err
	}

	result, err := d.Deploy(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.CID)
	return nil
}

// requestFromConfig builds a deployment request from v. Secrets left empty
// by v are looked up in secrets when it is non-nil; lookup failures leave
// them empty.
func requestFromConfig(v *viper.Viper, secrets contracts.SecretStore, path string, logger *slog.Logger) (ipfsdeploy.DeployRequest, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return ipfsdeploy.DeployRequest{}, fmt.Errorf("load config: %w", err)
	}

	if secrets != nil {
		for _, key := range keyring.SecretKeys {
			field := cfg.Secret(key)
			if field == nil || *field != "" {
				continue
			}
			secret, err := secrets.Get(key)
			if err != nil {
				if logger != nil {
					logger.Debug("keyring lookup failed", "key", key, "error", err)
				}
				continue
			}
			*field = secret
		}
	}

	return ipfsdeploy.DeployRequest{
		Path:         path,
		Pinners:      splitList(cfg.Pinners),
		DNSProviders: splitList(cfg.DNS),
		SiteDomain:   cfg.SiteDomain,
		Credentials: ipfsdeploy.Credentials{
			Infura: ipfsdeploy.InfuraConfig{
				Endpoint:      cfg.Infura.Endpoint,
				ProjectID:     cfg.Infura.ProjectID,
				ProjectSecret: cfg.Infura.ProjectSecret,
			},
			Pinata: ipfsdeploy.PinataConfig{
				Endpoint:     cfg.Pinata.Endpoint,
				APIKey:       cfg.Pinata.APIKey,
				SecretAPIKey: cfg.Pinata.SecretAPIKey,
			},
			Cloudflare: ipfsdeploy.CloudflareConfig{
				APIEmail: cfg.Cloudflare.APIEmail,
				APIKey:   cfg.Cloudflare.APIKey,
			},
		},
		CopyGatewayURL: cfg.Clipboard,
		Open:           cfg.Open,
	}, nil
}

// splitList flattens comma or space separated entries, dropping empty ones
// and normalizing case.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, item := range strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ' '
		}) {
			out = append(out, strings.ToLower(item))
		}
	}
	return out
}
