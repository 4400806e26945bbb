package epub2md

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Transformer converts an HTML document to Markdown.
type Transformer interface {
	ToMarkdown(html string) (string, error)
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(html string) (string, error)

func (f TransformerFunc) ToMarkdown(html string) (string, error) {
	return f(html)
}

// HTMLToMarkdown converts HTML with html-to-markdown. Malformed HTML is
// tolerated and converted on a best-effort basis.
type HTMLToMarkdown struct{}

var _ Transformer = HTMLToMarkdown{}

// ToMarkdown returns Markdown ending in exactly one newline, or "" for
// documents without text.
func (HTMLToMarkdown) ToMarkdown(html string) (string, error) {
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransform, err)
	}
	return withTrailingNewline(md), nil
}

func withTrailingNewline(s string) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return ""
	}
	return s + "\n"
}
