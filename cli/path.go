package cli

import (
	"os"
	"path/filepath"

	"github.com/hhenriques/codefactory/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config.yaml"

// DefaultDirMode is the default permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// cacheDir returns the cache directory path used for transient files.
func cacheDir() string { return pkg.CacheDir() }

// configPath returns the absolute path to a file or directory formed by joining
// the global configuration directory path with the given path elements.
//
// If no elements are given, it is the configuration directory itself.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{pkg.ConfigDir()}, elem...)...)
}

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
