package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xdg/nom/internal/version"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := Dir(); got != "/xdg/nom/" {
		t.Errorf("Dir() = %q, want /xdg/nom/", got)
	}
	if got := UserConfigPath(); got != "/xdg/nom/config.yaml" {
		t.Errorf("UserConfigPath() = %q", got)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := Dir(); got != home+"/.config/nom/" {
		t.Errorf("Dir() = %q, want %q", got, home+"/.config/nom/")
	}
}

func TestFindBuildFile(t *testing.T) {
	dir := t.TempDir()

	if got := FindBuildFile(dir); got != filepath.Join(dir, "nom.yaml") {
		t.Errorf("FindBuildFile(empty) = %q, want nom.yaml path", got)
	}

	writeFile(t, filepath.Join(dir, "nom.toml"), "")
	if got := FindBuildFile(dir); got != filepath.Join(dir, "nom.toml") {
		t.Errorf("FindBuildFile() = %q, want nom.toml", got)
	}

	writeFile(t, filepath.Join(dir, "nom.yml"), "")
	if got := FindBuildFile(dir); got != filepath.Join(dir, "nom.yml") {
		t.Errorf("FindBuildFile() = %q, want nom.yml before nom.toml", got)
	}

	writeFile(t, filepath.Join(dir, "nom.yaml"), "")
	if got := FindBuildFile(dir); got != filepath.Join(dir, "nom.yaml") {
		t.Errorf("FindBuildFile() = %q, want nom.yaml first", got)
	}
}

func TestLoad_TOML(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))

	path := filepath.Join(tmp, "nom.toml")
	writeFile(t, path, "[[steps]]\nname = \"build\"\nsh = \"$CC -o app main.c\"\n")

	bf, err := Load(path, "linux")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if bf.Steps[0].Sh != "$CC -o app main.c" || bf.Vars["CC"] != "cc" {
		t.Errorf("Load() = %+v", bf)
	}
}

func TestLoadUserConfig_Missing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig() error = %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want default info", cfg.Log.Level)
	}
	if _, err := os.Stat(UserConfigPath()); !errors.Is(err, os.ErrNotExist) {
		t.Error("LoadUserConfig() should not create the config file")
	}
}

func TestLoadUserConfig_Invalid(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeFile(t, UserConfigPath(), "log:\n  level: chatty\n")

	_, err := LoadUserConfig()
	if err == nil || !strings.Contains(err.Error(), "log.level") {
		t.Errorf("LoadUserConfig() error = %v, want log.level error", err)
	}
}

func TestLoadBuildFile_Missing(t *testing.T) {
	_, err := LoadBuildFile(filepath.Join(t.TempDir(), "nom.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadBuildFile() error = %v, want ErrNotExist", err)
	}
}

func TestLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))
	writeFile(t, UserConfigPath(), "vars:\n  CC: clang\nlog:\n  level: warn\n")

	path := filepath.Join(tmp, "nom.yaml")
	writeFile(t, path, `
steps:
  - name: build
    cmd: ["${CC}", -o, "main${EXE}", main.c]
`)

	bf, err := Load(path, "windows")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if bf.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want user value warn", bf.Log.Level)
	}

	args, err := ExpandArgs(bf.Steps[0].Cmd, bf.Vars)
	if err != nil {
		t.Fatalf("ExpandArgs() error = %v", err)
	}
	if got := strings.Join(args, " "); got != "clang -o main.exe main.c" {
		t.Errorf("expanded = %q", got)
	}
}

func TestLoadBuildFile_DefaultLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")
	path := filepath.Join(t.TempDir(), "nom.yaml")
	writeFile(t, path, "log:\n  file: default\nsteps:\n  - name: a\n    cmd: [\"true\"]\n")

	bf, err := LoadBuildFile(path)
	if err != nil {
		t.Fatalf("LoadBuildFile() error = %v", err)
	}
	if bf.Log.File != "/state/nom/nom.log" {
		t.Errorf("Log.File = %q, want the standard log path", bf.Log.File)
	}
}

func TestLoad_Requires(t *testing.T) {
	prev := version.Version
	t.Cleanup(func() { version.Version = prev })
	version.Version = "v0.2.0"

	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))
	path := filepath.Join(tmp, "nom.yaml")
	writeFile(t, path, "requires: \">= 0.3\"\nsteps:\n  - name: a\n    cmd: [\"true\"]\n")

	_, err := Load(path, "linux")
	if err == nil || !strings.Contains(err.Error(), "does not satisfy") {
		t.Errorf("Load() error = %v, want requires failure", err)
	}

	version.Version = "v0.4.0"
	if _, err := Load(path, "linux"); err != nil {
		t.Errorf("Load() with v0.4.0 error = %v", err)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))

	path := filepath.Join(tmp, "nom.yaml")
	writeFile(t, path, "steps:\n  - name: x\n    wait: [y]\n")

	_, err := Load(path, "linux")
	if err == nil || !strings.Contains(err.Error(), "not an earlier async step") {
		t.Errorf("Load() error = %v", err)
	}
}

func TestWriteDefaultUserConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := WriteDefaultUserConfig()
	if err != nil {
		t.Fatalf("WriteDefaultUserConfig() error = %v", err)
	}
	if path != UserConfigPath() {
		t.Errorf("path = %q, want %q", path, UserConfigPath())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != defaultConfigTemplate {
		t.Error("written file does not match the template")
	}

	again, err := WriteDefaultUserConfig()
	if !errors.Is(err, os.ErrExist) {
		t.Errorf("second write error = %v, want ErrExist", err)
	}
	if again != path {
		t.Errorf("second write path = %q, want %q", again, path)
	}
}

func TestWriteUserConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := &UserConfig{Log: LogConfig{Level: "debug"}, Editor: "nano"}
	if err := WriteUserConfig(want); err != nil {
		t.Fatalf("WriteUserConfig() error = %v", err)
	}

	got, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig() error = %v", err)
	}
	if got.Log.Level != "debug" || got.Editor != "nano" {
		t.Errorf("LoadUserConfig() = %+v", got)
	}
}
