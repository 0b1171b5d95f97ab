package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

func DefaultBooksPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "bookstore", "books.yaml")
}

// BooksPath picks the book list to load. An explicit path is expanded and
// returned as is; otherwise the default location is used when it exists.
// An empty result means the built-in books should be used.
func BooksPath(explicit string) (string, error) {
	if explicit != "" {
		return ExpandPath(explicit)
	}

	path := DefaultBooksPath()
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cannot access %q: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("book list %q is a directory", path)
	}
	return path, nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = home
	}

	return filepath.Abs(path)
}
