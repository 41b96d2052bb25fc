package config

import (
	"strings"
	"testing"
)

func TestParseBuildFile(t *testing.T) {
	data := []byte(`
log:
  level: debug
vars:
  OUT: build
steps:
  - name: lib
    cmd: [cc, -c, lib.c, -o, "${OUT}/lib.o"]
    async: true
  - name: sync
    wait: [lib]
  - name: link
    cmd: [cc, -o, "${OUT}/app", "${OUT}/lib.o"]
    platforms: [linux, darwin]
`)

	bf, err := ParseBuildFile(data)
	if err != nil {
		t.Fatalf("ParseBuildFile() error = %v", err)
	}

	if bf.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", bf.Log.Level, "debug")
	}
	if bf.Vars["OUT"] != "build" {
		t.Errorf("Vars[OUT] = %q, want %q", bf.Vars["OUT"], "build")
	}
	if len(bf.Steps) != 3 {
		t.Fatalf("len(Steps) = %d, want 3", len(bf.Steps))
	}
	if !bf.Steps[0].Async {
		t.Error("Steps[0].Async = false, want true")
	}
	if got := bf.Steps[1].Wait; len(got) != 1 || got[0] != "lib" {
		t.Errorf("Steps[1].Wait = %v, want [lib]", got)
	}
	if !bf.Steps[1].IsWait() || bf.Steps[0].IsWait() {
		t.Error("IsWait() mismatch")
	}
	if got := bf.Steps[2].Cmd[3]; got != "${OUT}/lib.o" {
		t.Errorf("Steps[2].Cmd[3] = %q, want unexpanded reference", got)
	}
}

func TestParseBuildFile_Empty(t *testing.T) {
	bf, err := ParseBuildFile(nil)
	if err != nil {
		t.Fatalf("ParseBuildFile(nil) error = %v", err)
	}
	if len(bf.Steps) != 0 {
		t.Errorf("len(Steps) = %d, want 0", len(bf.Steps))
	}
}

func TestParseBuildFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "unknown top-level field",
			data:    "target: all\n",
			wantErr: "field target not found",
		},
		{
			name:    "unknown step field",
			data:    "steps:\n  - name: a\n    command: [ls]\n",
			wantErr: "field command not found",
		},
		{
			name:    "type mismatch",
			data:    "steps:\n  - name: a\n    async: sometimes\n",
			wantErr: "cannot unmarshal",
		},
		{
			name:    "malformed",
			data:    "steps: [\n",
			wantErr: "parse build file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBuildFile([]byte(tt.data))
			if err == nil {
				t.Fatal("ParseBuildFile() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseBuildFileTOML(t *testing.T) {
	data := []byte(`
requires = ">= 0.1"

[vars]
OUT = "build"

[[steps]]
name = "compile"
sh = "cc -c src/*.c"
async = true

[[steps]]
name = "join"
wait = ["compile"]
platforms = ["linux"]
`)

	bf, err := ParseBuildFileTOML(data)
	if err != nil {
		t.Fatalf("ParseBuildFileTOML() error = %v", err)
	}
	if bf.Requires != ">= 0.1" || bf.Vars["OUT"] != "build" {
		t.Errorf("BuildFile = %+v", bf)
	}
	if len(bf.Steps) != 2 || bf.Steps[0].Sh != "cc -c src/*.c" || !bf.Steps[0].Async {
		t.Fatalf("Steps = %+v", bf.Steps)
	}
	if bf.Steps[1].Wait[0] != "compile" || bf.Steps[1].Platforms[0] != "linux" {
		t.Errorf("Steps[1] = %+v", bf.Steps[1])
	}
}

func TestParseBuildFileTOML_UnknownField(t *testing.T) {
	_, err := ParseBuildFileTOML([]byte("[[steps]]\nname = \"a\"\ncommand = [\"ls\"]\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown field") {
		t.Errorf("ParseBuildFileTOML() error = %v, want unknown field", err)
	}
}

func TestParseBuildFileFor(t *testing.T) {
	yamlData := []byte("steps:\n  - name: a\n    cmd: [ls]\n")
	tomlData := []byte("[[steps]]\nname = \"a\"\ncmd = [\"ls\"]\n")

	for path, data := range map[string][]byte{
		"nom.yaml": yamlData,
		"nom.yml":  yamlData,
		"nom.toml": tomlData,
		"NOM.TOML": tomlData,
		"build":    yamlData,
	} {
		bf, err := parseBuildFileFor(path, data)
		if err != nil {
			t.Errorf("parseBuildFileFor(%q) error = %v", path, err)
			continue
		}
		if len(bf.Steps) != 1 || bf.Steps[0].Cmd[0] != "ls" {
			t.Errorf("parseBuildFileFor(%q) = %+v", path, bf)
		}
	}
}

func TestParseUserConfig(t *testing.T) {
	cfg, err := ParseUserConfig([]byte("log:\n  level: warn\neditor: nano\nvars:\n  CC: clang\n"))
	if err != nil {
		t.Fatalf("ParseUserConfig() error = %v", err)
	}
	if cfg.Log.Level != "warn" || cfg.Editor != "nano" || cfg.Vars["CC"] != "clang" {
		t.Errorf("ParseUserConfig() = %+v", cfg)
	}

	if _, err := ParseUserConfig([]byte("steps: []\n")); err == nil {
		t.Error("ParseUserConfig() accepted build-file field steps")
	}
}

func TestMarshalUserConfig_RoundTrip(t *testing.T) {
	want := DefaultUserConfig()
	data, err := MarshalUserConfig(want)
	if err != nil {
		t.Fatalf("MarshalUserConfig() error = %v", err)
	}
	got, err := ParseUserConfig(data)
	if err != nil {
		t.Fatalf("ParseUserConfig() error = %v", err)
	}
	if got.Log != want.Log || got.Editor != want.Editor {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestDefaultConfigTemplate_Parses(t *testing.T) {
	cfg, err := ParseUserConfig([]byte(defaultConfigTemplate))
	if err != nil {
		t.Fatalf("template does not parse: %v", err)
	}
	if err := ValidateUserConfig(cfg); err != nil {
		t.Errorf("template does not validate: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("template log.level = %q, want info", cfg.Log.Level)
	}
}
