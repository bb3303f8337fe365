package config_test

import (
	"os"
	"testing"

	"github.com/km-arc/go-signup/framework/config"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func setEnv(t *testing.T, key, val string) {
	t.Helper()
	t.Setenv(key, val) // automatically restored after test
}

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "APP_ENV", "APP_PORT", "LOG_LEVEL", "LOG_FORMAT", "FORM_EMAIL_DOMAIN", "METRICS_PATH"} {
		unsetEnv(t, key)
	}
	cfg := config.Load("testdata/empty.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "Cadastro"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Format", cfg.Log.Format, "text"},
		{"Form.EmailDomain", cfg.Form.EmailDomain, "@gmail.com"},
		{"Metrics.Path", cfg.Metrics.Path, "/metrics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
	if cfg.Form.PasswordMin != 6 {
		t.Errorf("Form.PasswordMin: got %d want 6", cfg.Form.PasswordMin)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled: expected true by default")
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	setEnv(t, "APP_NAME", "MyApp")
	setEnv(t, "APP_ENV", "production")
	setEnv(t, "APP_PORT", "9000")
	setEnv(t, "FORM_PASSWORD_MIN", "8")
	setEnv(t, "METRICS_ENABLED", "false")

	cfg := config.Load("testdata/empty.env")

	if cfg.App.Name != "MyApp" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "MyApp")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.App.Port != "9000" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "9000")
	}
	if cfg.Form.PasswordMin != 8 {
		t.Errorf("Form.PasswordMin: got %d want 8", cfg.Form.PasswordMin)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled: expected false")
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	for _, key := range []string{"APP_NAME", "FORM_EMAIL_DOMAIN", "FORM_PASSWORD_MIN"} {
		unsetEnv(t, key)
	}
	cfg := config.Load("testdata/form.env")

	if cfg.App.Name != "Cadastro Teste" {
		t.Errorf("App.Name: got %q", cfg.App.Name)
	}
	if cfg.Form.EmailDomain != "@example.com" {
		t.Errorf("Form.EmailDomain: got %q", cfg.Form.EmailDomain)
	}
	if cfg.Form.PasswordMin != 10 {
		t.Errorf("Form.PasswordMin: got %d want 10", cfg.Form.PasswordMin)
	}
}

func TestLoad_EnvBeatsDotenv(t *testing.T) {
	unsetEnv(t, "APP_NAME")
	unsetEnv(t, "FORM_PASSWORD_MIN")
	setEnv(t, "FORM_EMAIL_DOMAIN", "@corp.com")
	cfg := config.Load("testdata/form.env")
	if cfg.Form.EmailDomain != "@corp.com" {
		t.Errorf("Form.EmailDomain: got %q want %q", cfg.Form.EmailDomain, "@corp.com")
	}
}

func TestLoad_AppDebugFalse(t *testing.T) {
	setEnv(t, "APP_DEBUG", "false")
	cfg := config.Load("testdata/empty.env")
	if cfg.App.Debug {
		t.Error("expected App.Debug to be false")
	}
}

// ── Get / GetInt / GetBool ───────────────────────────────────────────────────

func TestGet_ReturnsValue(t *testing.T) {
	setEnv(t, "CUSTOM_KEY", "hello")
	if got := config.Get("CUSTOM_KEY", "default"); got != "hello" {
		t.Errorf("got %q want %q", got, "hello")
	}
}

func TestGet_ReturnsFallback(t *testing.T) {
	unsetEnv(t, "MISSING_KEY")
	if got := config.Get("MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("got %q want %q", got, "fallback")
	}
}

func TestGetInt_ReturnsFallbackOnInvalid(t *testing.T) {
	setEnv(t, "SOME_INT", "notanint")
	if got := config.GetInt("SOME_INT", 99); got != 99 {
		t.Errorf("got %d want %d", got, 99)
	}
}

func TestGetBool_True(t *testing.T) {
	for _, val := range []string{"true", "1", "True", "TRUE"} {
		setEnv(t, "BOOL_KEY", val)
		if !config.GetBool("BOOL_KEY", false) {
			t.Errorf("expected true for %q", val)
		}
	}
}

func TestGetBool_ReturnsFallbackOnInvalid(t *testing.T) {
	setEnv(t, "BOOL_KEY", "notabool")
	if config.GetBool("BOOL_KEY", true) != true {
		t.Error("expected fallback true")
	}
}
