package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestShellFields(t *testing.T) {
	t.Setenv("NOM_TEST_SH_ENV", "from-env")
	vars := map[string]string{"CC": "clang", "FLAGS": "-O2 -g"}

	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "cc -c main.c", []string{"cc", "-c", "main.c"}},
		{"single quotes", `echo 'hello world'`, []string{"echo", "hello world"}},
		{"double quotes", `cc -DNAME="\"nom\"" x.c`, []string{"cc", `-DNAME="nom"`, "x.c"}},
		{"variable", "$CC -c main.c", []string{"clang", "-c", "main.c"}},
		{"unquoted var splits", "cc $FLAGS", []string{"cc", "-O2", "-g"}},
		{"quoted var keeps spaces", `cc "$FLAGS"`, []string{"cc", "-O2 -g"}},
		{"environment", "echo ${NOM_TEST_SH_ENV}", []string{"echo", "from-env"}},
		{"multi-line", "cc \\\n  -c main.c", []string{"cc", "-c", "main.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShellFields(tt.line, vars, false)
			if err != nil {
				t.Fatalf("ShellFields(%q) error = %v", tt.line, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ShellFields(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestShellFields_VarsShadowEnvironment(t *testing.T) {
	t.Setenv("CC", "env-cc")
	got, err := ShellFields("$CC", map[string]string{"CC": "var-cc"}, false)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != "var-cc" {
		t.Errorf("ShellFields() = %q, want var-cc", got)
	}
}

func TestShellFields_Glob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.c", "b.c", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
	pattern := filepath.ToSlash(dir) + "/*.c"

	got, err := ShellFields("cc -c "+pattern, nil, true)
	if err != nil {
		t.Fatalf("ShellFields() error = %v", err)
	}
	want := []string{"cc", "-c", filepath.ToSlash(dir) + "/a.c", filepath.ToSlash(dir) + "/b.c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShellFields() = %q, want %q", got, want)
	}

	literal, err := ShellFields("cc -c "+pattern, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if literal[2] != pattern {
		t.Errorf("without glob, pattern = %q, want %q kept", literal[2], pattern)
	}
}

func TestShellFields_GlobUsesWorkingDirectory(t *testing.T) {
	work := t.TempDir()
	stale := t.TempDir()
	if err := os.WriteFile(filepath.Join(work, "real.c"), nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(stale, "stale.c"), nil, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(work)
	t.Setenv("PWD", stale)

	got, err := ShellFields("cc *.c", nil, true)
	if err != nil {
		t.Fatalf("ShellFields() error = %v", err)
	}
	want := []string{"cc", "real.c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShellFields() = %q, want %q", got, want)
	}
}

func TestShellFields_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr string
	}{
		{"empty", "   ", "empty command"},
		{"pipe", "ls | wc", "parse"},
		{"unterminated quote", `echo "oops`, "parse"},
		{"unset variable", "echo $NOM_TEST_SH_NEVER_SET", "expand"},
		{"command substitution", "echo $(date)", "expand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ShellFields(tt.line, nil, false)
			if err == nil {
				t.Fatalf("ShellFields(%q) error = nil", tt.line)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	got, err := Quote([]string{"echo", "hello world", "it's", "plain"})
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}

	// Quoting must round-trip through the shell word splitter.
	back, err := ShellFields(got, nil, false)
	if err != nil {
		t.Fatalf("ShellFields(%q) error = %v", got, err)
	}
	if want := []string{"echo", "hello world", "it's", "plain"}; !reflect.DeepEqual(back, want) {
		t.Errorf("round trip of %q = %q, want %q", got, back, want)
	}
	if !strings.HasPrefix(got, "echo ") || !strings.HasSuffix(got, " plain") {
		t.Errorf("Quote() = %q, simple words should stay bare", got)
	}
}

func TestQuote_NUL(t *testing.T) {
	if _, err := Quote([]string{"a\x00b"}); err == nil {
		t.Error("Quote() accepted a NUL byte")
	}
}
