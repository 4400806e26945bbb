package epub2md_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/alnah/go-epub2md"
)

// ExampleResolvePaths shows how output and intermediate paths are derived
// when no output path is given.
func ExampleResolvePaths() {
	paths, err := epub2md.ResolvePaths(epub2md.Input{EPUBPath: "shelf/book.epub"}, "/work", "")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(filepath.ToSlash(paths.Intermediate))
	fmt.Println(filepath.ToSlash(paths.Output))
	// Output:
	// /work/temp_epub.html
	// /work/book.md
}

// Example_invalidInput shows that a non-EPUB path is rejected before
// Pandoc is ever started.
func Example_invalidInput() {
	svc := epub2md.New()
	err := svc.Convert(context.Background(), epub2md.Input{EPUBPath: "notes.txt"})

	fmt.Println(errors.Is(err, epub2md.ErrInvalidInput))
	stage, _ := epub2md.StageOf(err)
	fmt.Println(stage)
	// Output:
	// true
	// validating input
}
