// Package osutil wraps the OS lookups tablero makes so tests can replace them.
package osutil

import (
	"os"
	"path/filepath"
)

// PathProvider abstracts the environment and filesystem calls used to locate
// and override configuration.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
	Getenv(key string) string
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (DefaultPathProvider) Getenv(key string) string {
	return os.Getenv(key)
}

// Provider is the package-level path provider instance.
// In production, this is DefaultPathProvider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}

// AppConfigDir returns <user config dir>/<name>, creating it if needed.
func AppConfigDir(name string) (string, error) {
	base, err := Provider.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, name)
	if err := Provider.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
