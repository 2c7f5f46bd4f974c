package config

import "path/filepath"

// DefaultConfigPath is where atm looks for its config file.
const DefaultConfigPath = "/etc/atm/config.toml"

// Paths holds the resolved locations atm reads and writes.
type Paths struct {
	Root       string
	SourceList string
	StateFile  string
	DpkgStatus string
}

// DefaultPaths returns the fixed atm paths under a system root.
func DefaultPaths(root string) Paths {
	if root == "" {
		root = "/"
	}
	return Paths{
		Root:       root,
		SourceList: filepath.Join(root, "etc", "apt", "sources.list.d", "atm.list"),
		StateFile:  filepath.Join(root, "var", "lib", "atm", "state"),
		DpkgStatus: filepath.Join(root, "var", "lib", "dpkg", "status"),
	}
}
