package main

import "testing"

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		want     string
	}{
		{"no topic", nil, ExitSuccess, "Usage: epub2md [flags] <input.epub> [output.md]"},
		{"doctor", []string{"doctor"}, ExitSuccess, "Usage: epub2md doctor"},
		{"version", []string{"version"}, ExitSuccess, "Usage: epub2md version"},
		{"help", []string{"help"}, ExitSuccess, "Usage: epub2md help [command]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, nil)
			if code := runHelp(tt.args, env.Environment); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			assertContains(t, env.stdout.String(), tt.want)
		})
	}
}

func TestRunHelp_UnknownCommand(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	if code := runHelp([]string{"convert"}, env.Environment); code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	assertContains(t, env.stderr.String(), "Unknown command: convert")
	if env.stdout.Len() != 0 {
		t.Errorf("unexpected stdout: %q", env.stdout)
	}
}

func TestRunMain_HelpCommand(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	if code := runMain([]string{"epub2md", "help", "doctor"}, env.Environment); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	assertContains(t, env.stdout.String(), "--json")
}
