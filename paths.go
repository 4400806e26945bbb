package epub2md

import (
	"fmt"
	"path/filepath"
	"strings"
)

// File naming constants.
const (
	IntermediateBase = "temp_epub"
	intermediateExt  = ".html"
	epubExt          = ".epub"
	markdownExt      = ".md"
)

// ValidateInput checks the input path without touching the filesystem.
// The extension comparison is case-sensitive: "book.EPUB" is rejected.
func ValidateInput(epubPath string) error {
	if epubPath == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalidInput)
	}
	if filepath.Ext(epubPath) != epubExt {
		return fmt.Errorf("%w: %q must have %s extension", ErrInvalidInput, epubPath, epubExt)
	}
	if stem(epubPath) == "" {
		return fmt.Errorf("%w: %q has no file name", ErrInvalidInput, epubPath)
	}
	return nil
}

// ResolvePaths derives the intermediate and output paths for input.
// An empty token selects the fixed intermediate name "temp_epub.html";
// otherwise the token is embedded in the name to keep runs apart.
func ResolvePaths(input Input, cwd, token string) (Paths, error) {
	if err := ValidateInput(input.EPUBPath); err != nil {
		return Paths{}, err
	}

	paths := Paths{
		Intermediate: filepath.Join(cwd, IntermediateName(token)),
		Output:       input.OutputPath,
	}
	if paths.Output == "" {
		paths.Output = DefaultOutputPath(input.EPUBPath, cwd)
	}
	return paths, nil
}

// IntermediateName returns the intermediate HTML file name for token.
func IntermediateName(token string) string {
	if token == "" {
		return IntermediateBase + intermediateExt
	}
	return IntermediateBase + "-" + token + intermediateExt
}

// DefaultOutputPath returns "<cwd>/<stem>.md" where stem is the input file
// name with trailing ".epub" text removed. The trim is textual, so
// "a.epub.epub" becomes "a.md".
func DefaultOutputPath(epubPath, cwd string) string {
	return filepath.Join(cwd, stem(epubPath)+markdownExt)
}

// stem returns the file name component of path with every trailing ".epub"
// removed. Returns "" when path ends in a separator.
func stem(path string) string {
	_, name := filepath.Split(path)
	for strings.HasSuffix(name, epubExt) {
		name = strings.TrimSuffix(name, epubExt)
	}
	return name
}
