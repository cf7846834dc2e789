// Package static embeds the bundled alert sounds into the binary and copies
// them to the filesystem
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/countdown/internal/osutil"
)

const (
	filesDir = "files"
)

// Files holds the bundled sounds.
//
//go:embed files/*
var Files embed.FS

// FilePath returns the path of a bundled file inside Files.
func FilePath(name string) string {
	return path.Join(filesDir, name)
}

// Exists reports whether name is a bundled file.
func Exists(name string) bool {
	_, err := fs.Stat(Files, FilePath(name))

	return err == nil
}

// Names returns the names of all bundled files.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(Files, filesDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))

	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}

	return names, nil
}

// CopyToDir writes every bundled file into dir so that users can find and
// reference them. Existing files are left untouched.
func CopyToDir(dir string) error {
	return fs.WalkDir(
		Files,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := Files.ReadFile(p)
			if err != nil {
				return err
			}

			stripped := strings.TrimPrefix(p, filesDir+"/")

			destPath := filepath.Join(dir, filepath.FromSlash(stripped))

			// Only write if file does not already exist
			if _, err := os.Stat(destPath); !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
				return err
			}

			return os.WriteFile(destPath, b, osutil.FilePermission)
		},
	)
}
