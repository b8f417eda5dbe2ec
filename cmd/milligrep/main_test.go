package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape.\nTrust me.\n"

func writePoem(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(path, []byte(poem), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func noEnv(string) (string, bool) {
	return "", false
}

func caseInsensitiveEnv(key string) (string, bool) {
	if key == "CASE_INSENSITIVE" {
		return "", true
	}
	return "", false
}

func TestRun(t *testing.T) {
	path := writePoem(t)

	tests := []struct {
		name       string
		args       []string
		lookupEnv  func(string) (string, bool)
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "case sensitive match",
			args:       []string{"milligrep", "duct", path},
			lookupEnv:  noEnv,
			wantCode:   exitOK,
			wantStdout: "safe, fast, productive.\n",
		},
		{
			name:       "environment disables case sensitivity",
			args:       []string{"milligrep", "rUsT", path},
			lookupEnv:  caseInsensitiveEnv,
			wantCode:   exitOK,
			wantStdout: "Rust:\nTrust me.\n",
		},
		{
			name:       "ignore-case flag",
			args:       []string{"milligrep", "-i", "duct", path},
			lookupEnv:  noEnv,
			wantCode:   exitOK,
			wantStdout: "safe, fast, productive.\nDuct tape.\n",
		},
		{
			name:       "extra arguments ignored",
			args:       []string{"milligrep", "three", path, "surplus", "more"},
			lookupEnv:  noEnv,
			wantCode:   exitOK,
			wantStdout: "Pick three.\n",
		},
		{
			name:      "no match exits zero",
			args:      []string{"milligrep", "gopher", path},
			lookupEnv: noEnv,
			wantCode:  exitOK,
		},
		{
			name:       "missing filename",
			args:       []string{"milligrep", "foo"},
			lookupEnv:  noEnv,
			wantCode:   exitError,
			wantStderr: "didn't get the file name",
		},
		{
			name:       "missing query",
			args:       []string{"milligrep"},
			lookupEnv:  noEnv,
			wantCode:   exitError,
			wantStderr: "didn't get a query string",
		},
		{
			name:       "unreadable file",
			args:       []string{"milligrep", "foo", filepath.Join(t.TempDir(), "absent.txt")},
			lookupEnv:  noEnv,
			wantCode:   exitError,
			wantStderr: "application error",
		},
		{
			name:       "unknown flag",
			args:       []string{"milligrep", "--bogus", "foo", path},
			lookupEnv:  noEnv,
			wantCode:   exitUsage,
			wantStderr: "bogus",
		},
		{
			name:       "trailing short flag ignored",
			args:       []string{"milligrep", "Pick", path, "-x"},
			lookupEnv:  noEnv,
			wantCode:   exitOK,
			wantStdout: "Pick three.\n",
		},
		{
			name:       "trailing long flag ignored",
			args:       []string{"milligrep", "Pick", path, "--bogus"},
			lookupEnv:  noEnv,
			wantCode:   exitOK,
			wantStdout: "Pick three.\n",
		},
		{
			name:       "query starting with dash after separator",
			args:       []string{"milligrep", "--", "-", path},
			lookupEnv:  noEnv,
			wantCode:   exitOK,
			wantStdout: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tc.args, tc.lookupEnv, &stdout, &stderr)
			if code != tc.wantCode {
				t.Fatalf("expected exit code %d, got %d (stderr: %s)", tc.wantCode, code, stderr.String())
			}
			if got := stdout.String(); got != tc.wantStdout {
				t.Fatalf("expected stdout %q, got %q", tc.wantStdout, got)
			}
			if tc.wantStderr != "" && !strings.Contains(stderr.String(), tc.wantStderr) {
				t.Fatalf("expected stderr to contain %q, got %q", tc.wantStderr, stderr.String())
			}
			if tc.wantStderr == "" && stderr.Len() != 0 {
				t.Fatalf("expected empty stderr, got %q", stderr.String())
			}
		})
	}
}

func TestRunWithConfigFile(t *testing.T) {
	path := writePoem(t)
	configPath := filepath.Join(t.TempDir(), "milligrep.yaml")
	if err := os.WriteFile(configPath, []byte("ignore_case: true\nlog_level: error\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"milligrep", "--config", configPath, "PICK", path}, noEnv, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	if got, want := stdout.String(), "Pick three.\n"; got != want {
		t.Fatalf("expected stdout %q, got %q", want, got)
	}
}

func TestRunInvalidSettings(t *testing.T) {
	path := writePoem(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"milligrep", "--log-level", "chatty", "duct", path}, noEnv, &stdout, &stderr)
	if code != exitError {
		t.Fatalf("expected exit code %d, got %d", exitError, code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no output, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "failed to load configuration") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestRunHelpAndVersionReturnExitCode(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"milligrep", "--help"}, noEnv, &stdout, &stderr)
		if code != exitOK {
			t.Fatalf("expected exit code %d, got %d", exitOK, code)
		}
		if !strings.Contains(stderr.String(), "milligrep") {
			t.Fatalf("expected usage on stderr, got %q", stderr.String())
		}
		if stdout.Len() != 0 {
			t.Fatalf("expected no matches printed, got %q", stdout.String())
		}
	})

	t.Run("version", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"milligrep", "--version"}, noEnv, &stdout, &stderr)
		if code != exitOK {
			t.Fatalf("expected exit code %d, got %d", exitOK, code)
		}
		if stdout.Len() != 0 {
			t.Fatalf("expected no matches printed, got %q", stdout.String())
		}
	})
}
