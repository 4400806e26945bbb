package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-epub2md/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"EPUB2MD_CONFIG":     "work",
		"EPUB2MD_PANDOC":     "/opt/pandoc",
		"EPUB2MD_LOG_LEVEL":  "debug",
		"EPUB2MD_LOG_FORMAT": "json",
	}
	got := loadEnvConfig(func(k string) string { return vars[k] })

	want := envConfig{ConfigPath: "work", Pandoc: "/opt/pandoc", LogLevel: "debug", LogFormat: "json"}
	if *got != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("overrides file values", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Pandoc: config.PandocConfig{Path: "/file/pandoc"},
			Log:    config.LogConfig{Level: "info", Format: "console"},
		}
		applyEnvConfig(&envConfig{Pandoc: "/env/pandoc", LogFormat: "json"}, cfg)

		if cfg.Pandoc.Path != "/env/pandoc" {
			t.Errorf("Pandoc.Path = %q", cfg.Pandoc.Path)
		}
		if cfg.Log.Format != "json" {
			t.Errorf("Log.Format = %q", cfg.Log.Format)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("unset env var changed Log.Level to %q", cfg.Log.Level)
		}
	})

	t.Run("empty env leaves config alone", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Pandoc: config.PandocConfig{Path: "/file/pandoc"}}
		applyEnvConfig(&envConfig{}, cfg)
		if cfg.Pandoc.Path != "/file/pandoc" {
			t.Errorf("Pandoc.Path = %q", cfg.Pandoc.Path)
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"HOME=/root",
		"EPUB2MD_PANDOC=/x",
		"EPUB2MD_PANDOC_PATH=/x",
		"EPUB2MD_LOGLEVEL=debug",
		"MD2PDF_STYLE=x",
	})

	out := buf.String()
	if strings.Count(out, "warning:") != 2 {
		t.Errorf("expected 2 warnings, got:\n%s", out)
	}
	assertContains(t, out, "EPUB2MD_PANDOC_PATH")
	assertContains(t, out, "EPUB2MD_LOGLEVEL")
	if strings.Contains(out, "EPUB2MD_PANDOC ") || strings.Contains(out, "MD2PDF") {
		t.Errorf("unexpected warning in:\n%s", out)
	}
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flags     convertFlags
		wantLevel string
	}{
		{"verbose", convertFlags{common: commonFlags{verbose: true}}, config.LevelDebug},
		{"quiet", convertFlags{common: commonFlags{quiet: true}}, config.LevelError},
		{"verbose wins over quiet", convertFlags{common: commonFlags{verbose: true, quiet: true}}, config.LevelDebug},
		{"neither keeps config", convertFlags{}, config.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{Log: config.LogConfig{Level: config.LevelInfo}}
			mergeFlags(&tt.flags, cfg)
			if cfg.Log.Level != tt.wantLevel {
				t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, tt.wantLevel)
			}
		})
	}

	cfg := &config.Config{Pandoc: config.PandocConfig{Path: "/env/pandoc"}}
	mergeFlags(&convertFlags{pandoc: "/flag/pandoc", logFormat: "json", fixedIntermediate: true}, cfg)
	if cfg.Pandoc.Path != "/flag/pandoc" || cfg.Log.Format != "json" || !cfg.Intermediate.FixedName {
		t.Errorf("flags not merged: %+v", cfg)
	}
}

func TestParseConvertFlags_Interspersed(t *testing.T) {
	t.Parallel()

	flags, args, err := parseConvertFlags([]string{"book.epub", "-q", "out.md", "--pandoc", "/p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flags.common.quiet || flags.pandoc != "/p" {
		t.Errorf("flags = %+v", flags)
	}
	if len(args) != 2 || args[0] != "book.epub" || args[1] != "out.md" {
		t.Errorf("args = %v", args)
	}
}
