// Package epub2md converts EPUB documents to Markdown.
//
// # Quick Start
//
//	svc := epub2md.New()
//	err := svc.Convert(ctx, epub2md.Input{EPUBPath: "book.epub"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// With no OutputPath, the result is written to "book.md" in the working
// directory.
//
// # Conversion Pipeline
//
// Each conversion runs these steps in order and stops at the first failure:
//
//  1. Input validation (the path must end in ".epub", case-sensitive)
//  2. Dependency check ("pandoc --version")
//  3. Path resolution (intermediate HTML and output Markdown)
//  4. EPUB to HTML via Pandoc ("pandoc <in> -o <intermediate>")
//  5. Intermediate HTML read (must be valid UTF-8)
//  6. HTML to Markdown via html-to-markdown
//  7. Markdown write
//  8. Intermediate HTML removal
//
// A failure is returned as a *StepError naming the stage. Its cause matches
// one of ErrInvalidInput, ErrDependencyUnavailable, ErrExternalTool, ErrIO
// or ErrTransform with errors.Is. When writing the Markdown fails, the
// intermediate HTML is kept for inspection. When only step 8 fails, the
// Markdown is complete and StepError.OutputWritten reports true.
//
// # Intermediate File
//
// By default the intermediate HTML is named "temp_epub-<uuid>.html" so that
// conversions in the same directory do not collide. FixedIntermediate
// restores the shared "temp_epub.html" name.
//
// # Limitations
//
// Pandoc runs without a timeout. A hung Pandoc process blocks Convert until
// the context passed to it is canceled, which kills Pandoc along with any
// processes it started.
package epub2md
