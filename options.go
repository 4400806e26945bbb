package epub2md

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option configures a Service.
type Option func(*Service)

// WithTool sets the external EPUB to HTML converter.
func WithTool(t Tool) Option {
	return func(s *Service) {
		if t != nil {
			s.tool = t
		}
	}
}

// WithToolPath drives Pandoc from the given executable path.
func WithToolPath(path string) Option {
	return WithTool(NewPandocTool(path))
}

// WithTransformer sets the HTML to Markdown transformer.
func WithTransformer(t Transformer) Option {
	return func(s *Service) {
		if t != nil {
			s.transformer = t
		}
	}
}

// WithFS sets the filesystem used to read the intermediate HTML, write the
// Markdown and remove the intermediate file. The external tool always writes
// to the real filesystem, so non-OS filesystems only suit stub tools.
func WithFS(fs afero.Fs) Option {
	return func(s *Service) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithWorkingDir fixes the directory used for the intermediate file and
// derived output paths.
func WithWorkingDir(dir string) Option {
	return WithWorkingDirFunc(func() (string, error) { return dir, nil })
}

// WithWorkingDirFunc sets how the working directory is resolved.
func WithWorkingDirFunc(fn func() (string, error)) Option {
	return func(s *Service) {
		if fn != nil {
			s.getwd = fn
		}
	}
}

// WithTokenFunc sets the generator for the token embedded in the
// intermediate file name. A generator returning "" selects the fixed name.
func WithTokenFunc(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.token = fn
		}
	}
}

// FixedIntermediate stages HTML at "temp_epub.html" in the working directory.
// Two conversions sharing a directory then overwrite each other's file.
func FixedIntermediate() Option {
	return WithTokenFunc(func() string { return "" })
}

// WithLogger sets the logger for step tracing.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
