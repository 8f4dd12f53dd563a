package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/meigma/ipfsdeploy/cmd/ipfs-deploy/cli/config"
	"github.com/meigma/ipfsdeploy/internal/keyring"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ipfs-deploy configuration",
	Long: `View and modify ipfs-deploy configuration.

Without arguments, displays the current effective configuration with
secrets redacted. Use subcommands to view the config path, initialize a
config file, or set configuration values.`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		configPath, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), configPath)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long: `Create a default configuration file at the XDG config path.

The file will be created at ~/.config/ipfs-deploy/config.yaml (or
$XDG_CONFIG_HOME/ipfs-deploy/config.yaml if set).`,
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configPath, err := config.Path()
	if err != nil {
		return err
	}

	// Check if already exists
	if _, statErr := os.Stat(configPath); statErr == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(configPath), 0o750); mkdirErr != nil {
		return mkdirErr
	}

	defaultConfig := map[string]any{
		"pinners":     []string{"infura"},
		"dns":         []string{},
		"site_domain": "",
		"clipboard":   true,
		"open":        true,
		"progress":    "auto",
		// credentials omitted - use env vars or `ipfs-deploy login`
		"infura": map[string]any{
			"endpoint": config.Defaults()["infura.endpoint"],
		},
		"pinata": map[string]any{
			"endpoint": config.Defaults()["pinata.endpoint"],
		},
	}
	data, err := yaml.Marshal(defaultConfig)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if writeErr := os.WriteFile(configPath, data, 0o600); writeErr != nil {
		return writeErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", configPath)
	return nil
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

List values are comma separated. Prefer ipfs-deploy login for secrets.

Examples:
  ipfs-deploy config set pinners infura,pinata
  ipfs-deploy config set site_domain example.com
  ipfs-deploy config set open false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := strings.ToLower(args[0]), args[1]

		if _, ok := config.Defaults()[key]; !ok {
			return fmt.Errorf("unknown configuration key %q", key)
		}

		parsedValue := parseValue(key, value)

		configPath, err := config.Path()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
			return err
		}

		// A fresh instance keeps environment values and defaults out of
		// the file.
		file := viper.New()
		file.SetConfigFile(configPath)
		if err := file.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read config: %w", err)
		}
		file.Set(key, parsedValue)
		if err := file.WriteConfigAs(configPath); err != nil {
			return fmt.Errorf("write config: %w", err)
		}

		if keyring.IsSecretKey(key) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s is stored in plain text; consider `ipfs-deploy login %s`\n", key, key)
			parsedValue = redacted
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s = %v\n", key, parsedValue)
		return nil
	},
}

// parseValue converts a command-line value to the type of key's default.
func parseValue(key, value string) any {
	switch config.Defaults()[key].(type) {
	case bool:
		switch value {
		case "true":
			return true
		case "false":
			return false
		}
	case []string:
		return splitList([]string{value})
	}
	return value
}

const redacted = "********"

func runConfigShow(cmd *cobra.Command, _ []string) error {
	// Show all settings with their effective values
	settings := viper.AllSettings()
	for _, key := range keyring.SecretKeys {
		section, name, _ := strings.Cut(key, ".")
		values, ok := settings[section].(map[string]any)
		if !ok {
			continue
		}
		if s, ok := values[name].(string); ok && s != "" {
			values[name] = redacted
		}
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
