// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"strings"
	"testing"
)

// brandpressEnvVars lists every variable Load reads, so tests can reset
// them to empty (envOrDefault treats empty the same as unset).
var brandpressEnvVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_MODEL_IMAGE", "GEMINI_BASE_URL",
	"OPENAI_API_KEY", "OPENAI_MODEL_IMAGE", "OPENAI_MODEL_EMBEDDING", "OPENAI_BASE_URL",
	"ENABLE_SEMANTIC_SEARCH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range brandpressEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Host", cfg.Host, "0.0.0.0"},
		{"Port", cfg.Port, "8080"},
		{"Env", cfg.Env, "development"},
		{"DBHost", cfg.DBHost, "localhost"},
		{"DBPort", cfg.DBPort, "5432"},
		{"DBUser", cfg.DBUser, "brandpress"},
		{"DBPassword", cfg.DBPassword, "changeme"},
		{"DBName", cfg.DBName, "brandpress"},
		{"GeminiModel", cfg.GeminiModel, "gemini-2.5-flash"},
		{"GeminiImageModel", cfg.GeminiImageModel, "gemini-2.5-flash-image"},
		{"OpenAIImageModel", cfg.OpenAIImageModel, "dall-e-3"},
		{"OpenAIEmbeddingModel", cfg.OpenAIEmbeddingModel, "text-embedding-3-small"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}

	if cfg.GeminiAPIKey != "" || cfg.OpenAIAPIKey != "" {
		t.Error("API keys should default to empty")
	}
	if cfg.EnableSemanticSearch {
		t.Error("semantic search should default to disabled")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("ENABLE_SEMANTIC_SEARCH", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port: got %q", cfg.Port)
	}
	if cfg.GeminiAPIKey != "g-key" {
		t.Errorf("GeminiAPIKey: got %q", cfg.GeminiAPIKey)
	}
	if !cfg.EnableSemanticSearch {
		t.Error("EnableSemanticSearch should be true")
	}
}

func TestLoad_SemanticSearchFlagParsing(t *testing.T) {
	clearEnv(t)
	for _, value := range []string{"1", "TRUE", "yes", "false", ""} {
		t.Setenv("ENABLE_SEMANTIC_SEARCH", value)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if cfg.EnableSemanticSearch {
			t.Errorf("value %q: only the literal \"true\" enables the flag", value)
		}
	}
}

func TestLoad_ProductionRequiresPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("production with the default password should fail")
	} else if !strings.Contains(err.Error(), "POSTGRES_PASSWORD") {
		t.Errorf("error should name the missing variable: %v", err)
	}

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.DBPassword != "s3cret" {
		t.Errorf("DBPassword: got %q", cfg.DBPassword)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5433", DBName: "cms",
	}
	want := "postgres://u:p@db:5433/cms?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN: got %q, want %q", got, want)
	}
}

func TestAddrAndIsDev(t *testing.T) {
	cfg := &Config{Host: "127.0.0.1", Port: "8080", Env: "development"}
	if got := cfg.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr: got %q", got)
	}
	if !cfg.IsDev() {
		t.Error("development env should report IsDev")
	}
	cfg.Env = "production"
	if cfg.IsDev() {
		t.Error("production env should not report IsDev")
	}
}
