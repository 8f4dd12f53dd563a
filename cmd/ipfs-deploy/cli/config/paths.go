// Package config provides configuration management for the ipfs-deploy CLI.
package config

import (
	"os"
	"path/filepath"
)

// FileName is the name of the config file inside Dir.
const FileName = "config.yaml"

// Dir returns the ipfs-deploy config directory.
// Uses XDG_CONFIG_HOME/ipfs-deploy, defaulting to ~/.config/ipfs-deploy.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "ipfs-deploy"), nil
}

// Path returns the path of the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}
