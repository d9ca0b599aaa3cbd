package pkg

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestUserDir(t *testing.T) {
	base := t.TempDir()

	got := userDir(func() (string, error) { return base, nil }, ".config")
	if want := filepath.Join(base, Name); got != want {
		t.Errorf("userDir() = %q, want %q", got, want)
	}

	home := t.TempDir()
	t.Setenv("HOME", home)

	got = userDir(func() (string, error) { return "", errors.New("unset") }, ".cache")
	if want := filepath.Join(home, ".cache", Name); got != want {
		t.Errorf("userDir() fallback = %q, want %q", got, want)
	}
}
