package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")

	content := `
server:
  port: 5055
  name: action-server
openai:
  apiKey: test-key
  model: gpt-3.5-turbo
  baseUrl: https://api.openai.com/v1/chat/completions
emotion:
  modelUrl: ""
services:
  botServer: http://localhost:5005
  botStatusUrl: http://localhost:5005/status
  quoteService: http://localhost:8000
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 5055 {
		t.Fatalf("expected port 5055, got %d", cfg.Server.Port)
	}
	if cfg.OpenAI.Model != "gpt-3.5-turbo" {
		t.Fatalf("expected model, got %q", cfg.OpenAI.Model)
	}
	if cfg.Services.BotStatusURL != "http://localhost:5005/status" {
		t.Fatalf("expected status url, got %q", cfg.Services.BotStatusURL)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Log.Level)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("does/not/exist.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
