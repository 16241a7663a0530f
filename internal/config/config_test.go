package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-test/deep"

	"github.com/martinsuchenak/vedgeip/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vedgeip.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Defaults()
	if diff := deep.Equal(cfg, want); diff != nil {
		t.Errorf("defaults diff: %v", diff)
	}
	if diff := deep.Equal(cfg.Keys, model.DefaultKeys); diff != nil {
		t.Errorf("keys diff: %v", diff)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Expected no timeout by default, got %v", cfg.Timeout)
	}
}

func TestLoad_FileThenFlags(t *testing.T) {
	path := writeConfig(t, `
vmanage_address: vmanage.example.com
port: 9443
output_file: from-file
ignore_list: [ge0/0.22, ge0/0.23]
keys: [system-ip, host-name]
timeout: 5s
include_empty_html: true
`)

	cfg, err := Load(&Config{ConfigFile: path, OutputFile: "from-flag"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.VManageAddress != "vmanage.example.com" {
		t.Errorf("VManageAddress = %s", cfg.VManageAddress)
	}
	if cfg.Port != 9443 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.OutputFile != "from-flag" {
		t.Errorf("Expected flag to override file, got %s", cfg.OutputFile)
	}
	if diff := deep.Equal(cfg.IgnoreList, []string{"ge0/0.22", "ge0/0.23"}); diff != nil {
		t.Errorf("IgnoreList diff: %v", diff)
	}
	if diff := deep.Equal(cfg.Keys, []string{"system-ip", "host-name"}); diff != nil {
		t.Errorf("Keys diff: %v", diff)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if !cfg.IncludeEmptyHTML {
		t.Error("Expected IncludeEmptyHTML from file")
	}
	if cfg.PasswordFile != DefaultPasswordFile {
		t.Errorf("Expected default password file, got %s", cfg.PasswordFile)
	}
	if cfg.String() != "config file ("+path+")" {
		t.Errorf("String() = %s", cfg.String())
	}
}

func TestLoad_EmptyIgnoreListInFile(t *testing.T) {
	path := writeConfig(t, "ignore_list: []\n")
	cfg, err := Load(&Config{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.IgnoreList) != 0 {
		t.Errorf("Expected empty ignore list, got %v", cfg.IgnoreList)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts *Config
	}{
		{"missing file", &Config{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")}},
		{"bad yaml", &Config{ConfigFile: writeConfig(t, "port: [")}},
		{"bad timeout", &Config{TimeoutRaw: "soon"}},
		{"bad port", &Config{Port: 70000}},
		{"bad log level", &Config{LogLevel: "loud"}},
		{"bad log format", &Config{LogFormat: "xml"}},
		{"empty ignore entry", &Config{IgnoreList: []string{"ge0/0", ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.opts); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestRequireController(t *testing.T) {
	tests := []struct {
		address string
		wantErr bool
	}{
		{"10.1.1.1", false},
		{"vmanage.example.com", false},
		{"", true},
		{"not a host", true},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			cfg := Defaults()
			cfg.VManageAddress = tt.address
			if err := cfg.RequireController(); (err != nil) != tt.wantErr {
				t.Errorf("RequireController(%q) error = %v, wantErr %v", tt.address, err, tt.wantErr)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	if got := ParseList("  ge0/0.22   ge0/0.23 "); len(got) != 2 || got[0] != "ge0/0.22" || got[1] != "ge0/0.23" {
		t.Errorf("ParseList() = %v", got)
	}
	if got := ParseList("   "); got != nil {
		t.Errorf("ParseList(blank) = %v, want nil", got)
	}
}

func TestParseTimeout(t *testing.T) {
	tests := map[string]time.Duration{"30": 30 * time.Second, "2m": 2 * time.Minute, "0": 0}
	for in, want := range tests {
		got, err := parseTimeout(in)
		if err != nil || got != want {
			t.Errorf("parseTimeout(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}
