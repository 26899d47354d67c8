package config

import (
	"os"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 0}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for port 0")
	}

	cfg.HTTP.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for port 70000")
	}
}

func TestValidate_SimilarityBounds(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080},
		Search: SearchConfig{WorksMinSimilarity: 1.5, TermsMinSimilarity: 0.5},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for works_min_similarity > 1")
	}

	cfg.Search.WorksMinSimilarity = 0.6
	cfg.Search.TermsMinSimilarity = 2
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for terms_min_similarity > 1")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("ReadTimeoutSec = %d, want 10", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Database.Path != "partitura.db" {
		t.Errorf("Database.Path = %q, want partitura.db", cfg.Database.Path)
	}
	if cfg.Search.WorksMinSimilarity != 0.6 {
		t.Errorf("WorksMinSimilarity = %v, want 0.6", cfg.Search.WorksMinSimilarity)
	}
	if cfg.Search.TermsMinSimilarity != 0.5 {
		t.Errorf("TermsMinSimilarity = %v, want 0.5", cfg.Search.TermsMinSimilarity)
	}
	if cfg.Suggest.DefaultLimit != 10 {
		t.Errorf("Suggest.DefaultLimit = %d, want 10", cfg.Suggest.DefaultLimit)
	}
	if cfg.Suggest.CacheTTLSec != 60 {
		t.Errorf("Suggest.CacheTTLSec = %d, want 60", cfg.Suggest.CacheTTLSec)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("PARTITURA_TEST_DB", "/data/catalog.db")

	in := []byte("path: ${PARTITURA_TEST_DB}\npassword: ${PARTITURA_TEST_MISSING:-fallback}")
	out := string(expandEnvVars(in))

	want := "path: /data/catalog.db\npassword: fallback"
	if out != want {
		t.Errorf("expandEnvVars = %q, want %q", out, want)
	}
}

func TestGetEnv(t *testing.T) {
	old := os.Getenv("ENV")
	defer os.Setenv("ENV", old)

	os.Unsetenv("ENV")
	if env := GetEnv(); env != "local" {
		t.Errorf("GetEnv() = %q, want local", env)
	}

	os.Setenv("ENV", "prod")
	if env := GetEnv(); env != "prod" {
		t.Errorf("GetEnv() = %q, want prod", env)
	}
}
