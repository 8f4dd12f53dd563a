// Package cli implements the ipfs-deploy command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meigma/ipfsdeploy"
	"github.com/meigma/ipfsdeploy/cmd/ipfs-deploy/cli/config"
	"github.com/meigma/ipfsdeploy/internal/desktop"
)

// Build information set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ipfs-deploy [path]",
	Short: "Deploy static websites to IPFS",
	Long: `ipfs-deploy uploads a static website to one or more IPFS pinning services,
checks that they agree on its content identifier and prints it.

Without a path it looks for a conventional output directory (_site, public,
dist, build, ...). After a successful deployment it can copy the gateway URL
to the clipboard, point a Cloudflare DNSLink record at the new content and
open the site in a browser.

Settings are read from flags, IPFS_DEPLOY_* environment variables, a .env
file in the current directory, the config file and the OS keyring.`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runDeploy,
	ValidArgsFunction: completeDeployArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug logging")
	rootCmd.Version = version
}

// initConfig wires viper to the environment, .env and the config file.
func initConfig() {
	// .env never overrides variables already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	configDir, err := config.Dir()
	if err != nil {
		return
	}
	viper.AddConfigPath(configDir)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: could not read config: %v\n", err)
		}
	}
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
	}
	return err
}

// newLogger returns the logger for verbose mode, or nil.
func newLogger() *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newDeployer creates a deployer reporting to the terminal.
func newDeployer(c *console) (*ipfsdeploy.Deployer, error) {
	opts := []ipfsdeploy.Option{
		ipfsdeploy.WithReporter(c),
		ipfsdeploy.WithBrowser(desktop.Browser{Output: os.Stderr}),
	}
	if logger := newLogger(); logger != nil {
		opts = append(opts, ipfsdeploy.WithLogger(logger))
	}
	if c.progress {
		opts = append(opts, ipfsdeploy.WithProgress(c.Progress))
	}
	return ipfsdeploy.NewDeployer(opts...)
}

// signalContext returns a context that is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// formatError converts deployment errors to user-friendly messages.
func formatError(err error) string {
	if err == nil {
		return ""
	}

	var inconsistent *ipfsdeploy.InconsistentPinsError
	switch {
	case errors.Is(err, ipfsdeploy.ErrNoPath):
		return "Error: nothing to deploy (pass a path or build your site first)"
	case errors.Is(err, ipfsdeploy.ErrSizeFailed):
		return fmt.Sprintf("Error: could not read the site directory: %v", err)
	case errors.As(err, &inconsistent):
		return fmt.Sprintf("Error: pinning services returned different hashes (%s)", formatPinned(inconsistent.Pinned))
	case errors.Is(err, ipfsdeploy.ErrNoPins):
		return "Error: no pinning service accepted the upload (run with -v for details)"
	case errors.Is(err, ipfsdeploy.ErrUnauthorized):
		return "Error: authentication failed (check your credentials)"
	case errors.Is(err, ipfsdeploy.ErrMissingCredentials):
		return fmt.Sprintf("Error: missing credentials: %v", err)
	case errors.Is(err, context.Canceled):
		return "Error: operation canceled"
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func formatPinned(pinned ipfsdeploy.PinnedResult) string {
	// InconsistentPinsError already renders the sorted pairs
	msg := (&ipfsdeploy.InconsistentPinsError{Pinned: pinned}).Error()
	return strings.TrimPrefix(msg, ipfsdeploy.ErrInconsistentPins.Error()+": ")
}
