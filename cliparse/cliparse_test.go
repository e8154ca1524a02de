// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("SIGNING_SECRET", "env-secret")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" || cfg.DatabaseURL != "postgres://test" {
		t.Errorf("unexpected database config %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.SigningSecret != "env-secret" {
		t.Errorf("expected signing secret from env, got %q", cfg.SigningSecret)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-signing-secret", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.SigningSecret != "s1" {
		t.Errorf("expected signing secret s1, got %q", cfg.SigningSecret)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SIGNING_SECRET", "")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite by default, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != defaultSQLiteURL {
		t.Errorf("expected in-memory sqlite URL, got %s", cfg.DatabaseURL)
	}
	if cfg.SigningSecret != "" {
		t.Errorf("expected no signing secret, got %q", cfg.SigningSecret)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	tests := []struct {
		name string
		args []string
		port string
	}{
		{"postgres without url", []string{"-t", "postgres"}, ""},
		{"unknown database type", []string{"-t", "mysql"}, ""},
		{"invalid port env", nil, "not-a-port"},
		{"unknown flag", []string{"--admin-salt", "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("QP_TEST_FROM_FILE=hello\nQP_TEST_PRESET=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QP_TEST_PRESET", "env")
	t.Cleanup(func() { os.Unsetenv("QP_TEST_FROM_FILE") })

	if err := LoadEnvFiles(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("QP_TEST_FROM_FILE"); got != "hello" {
		t.Errorf("expected value from file, got %q", got)
	}
	if got := os.Getenv("QP_TEST_PRESET"); got != "env" {
		t.Errorf("existing env should win, got %q", got)
	}
}
