// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "work" -> false (name)
//   - "./epub2md.yaml" -> true (relative path)
//   - "/etc/epub2md.yaml" -> true (absolute)
//   - "C:\cfg\epub2md.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// DirWritable reports whether a file can be created in dir.
// The probe file is removed before returning.
func DirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".epub2md-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// Leftovers returns files in dir whose names start with prefix, sorted.
func Leftovers(dir, prefix string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"*"))
	if err != nil {
		return nil
	}
	return matches
}
