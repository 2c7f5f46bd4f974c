// Package config loads the optional atm configuration file.
package config

import (
	"fmt"

	"github.com/conn-castle/topic-manager/internal/messages"
)

// DefaultManifestURL is the upstream topic manifest.
const DefaultManifestURL = "https://repo.aosc.io/debs/manifest/topics.json"

// DefaultTimeoutSeconds bounds a manifest fetch.
const DefaultTimeoutSeconds = 10

// Config is the parsed /etc/atm/config.toml.
type Config struct {
	// Root prefixes every fixed path, for managing a chroot or a mounted system.
	Root string `toml:"root"`
	// Arch is the dpkg architecture used to filter topics.
	Arch     string         `toml:"arch"`
	Manifest ManifestConfig `toml:"manifest"`
}

// ManifestConfig controls where the topic manifest is fetched from.
type ManifestConfig struct {
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Root: "/",
		Manifest: ManifestConfig{
			URL:            DefaultManifestURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// Paths resolves the fixed paths under the configured root.
func (c *Config) Paths() Paths {
	return DefaultPaths(c.Root)
}

// ResolveArch returns the configured architecture, or the host architecture when unset.
func (c *Config) ResolveArch() (string, error) {
	if c.Arch != "" {
		return c.Arch, nil
	}
	arch, ok := hostArch()
	if !ok {
		return "", fmt.Errorf(messages.ConfigUnsupportedArchFmt, goarch)
	}
	return arch, nil
}
