package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil", err)
	}
	want := DefaultConfig()
	if cfg.NotificationsPath != want.NotificationsPath {
		t.Errorf("NotificationsPath = %q, want %q", cfg.NotificationsPath, want.NotificationsPath)
	}
	if cfg.ContextSource != ContextSourceEnv {
		t.Errorf("ContextSource = %q, want %q", cfg.ContextSource, ContextSourceEnv)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("NG_NOTIFICATIONS_PATH", "/tmp/custom.json")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil", err)
	}
	if cfg.NotificationsPath != "/tmp/custom.json" {
		t.Errorf("NotificationsPath = %q, want /tmp/custom.json", cfg.NotificationsPath)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `notifications_path: /etc/noticegate/catalog.json
context_source: file
context_path: /etc/noticegate/context.json
extension_id: dev.solatis.toolkit
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil", err)
	}
	if cfg.NotificationsPath != "/etc/noticegate/catalog.json" {
		t.Errorf("NotificationsPath = %q, want /etc/noticegate/catalog.json", cfg.NotificationsPath)
	}
	if cfg.ContextSource != ContextSourceFile || cfg.ContextPath != "/etc/noticegate/context.json" {
		t.Errorf("context = %q/%q, want file//etc/noticegate/context.json", cfg.ContextSource, cfg.ContextPath)
	}
	if cfg.ExtensionID != "dev.solatis.toolkit" {
		t.Errorf("ExtensionID = %q, want dev.solatis.toolkit", cfg.ExtensionID)
	}
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "invalid context source",
			content: "context_source: carrier-pigeon\n",
		},
		{
			name:    "file source without path",
			content: "context_source: file\n",
		},
		{
			name:    "empty notifications path",
			content: "notifications_path: \"\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("LoadConfig() error = nil, want validation error")
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("LoadConfig() error = nil, want error for missing file")
	}
}
