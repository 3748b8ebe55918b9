package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("expected default addr, got %q", cfg.Server.Addr)
	}
	if cfg.Format.Indent != 4 {
		t.Errorf("expected default indent, got %d", cfg.Format.Indent)
	}
	if cfg.AI.Provider != "anthropic" {
		t.Errorf("expected default provider, got %q", cfg.AI.Provider)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fxfmt.toml")
	data := `
[server]
addr = ":9090"

[format]
indent = 2

[ai]
provider = "ollama"
model = "llama3.1"

[history]
disabled = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr not overridden: %q", cfg.Server.Addr)
	}
	if cfg.Format.Indent != 2 {
		t.Errorf("indent not overridden: %d", cfg.Format.Indent)
	}
	if cfg.Format.MaxDepth != 64 {
		t.Errorf("unset max_depth should keep default, got %d", cfg.Format.MaxDepth)
	}
	if cfg.AI.Provider != "ollama" || cfg.AI.Model != "llama3.1" {
		t.Errorf("ai section not applied: %+v", cfg.AI)
	}
	if !cfg.History.Disabled {
		t.Error("history.disabled not applied")
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fxfmt.toml")
	if err := os.WriteFile(path, []byte("[server\naddr = 1"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
