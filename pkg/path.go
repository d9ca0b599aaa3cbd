package pkg

import (
	"os"
	"path/filepath"
	"sync"
)

// ConfigDir returns the directory holding the configuration file, e.g.
// ~/.config/codefactory.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string { return userDir(os.UserConfigDir, ".config") },
)

// CacheDir returns the directory used for transient files such as
// profiles, e.g. ~/.cache/codefactory.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string { return userDir(os.UserCacheDir, ".cache") },
)

// userDir joins Name onto the directory returned by base. When base fails
// it falls back to hidden under the home directory, then to the working
// directory.
func userDir(base func() (string, error), hidden string) string {
	dir, err := base()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, hidden)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, Name)
}
