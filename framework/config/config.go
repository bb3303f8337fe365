package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct.
type Config struct {
	App     AppConfig
	Log     LogConfig
	Form    FormConfig
	Metrics MetricsConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
	Port  string
}

type LogConfig struct {
	Level  string // debug | info | warn | error
	Format string // text | json
}

type FormConfig struct {
	EmailDomain string
	PasswordMin int
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  Get("APP_NAME", "Cadastro"),
			Env:   Get("APP_ENV", "local"),
			Debug: GetBool("APP_DEBUG", true),
			Port:  Get("APP_PORT", "8000"),
		},
		Log: LogConfig{
			Level:  Get("LOG_LEVEL", "info"),
			Format: Get("LOG_FORMAT", "text"),
		},
		Form: FormConfig{
			EmailDomain: Get("FORM_EMAIL_DOMAIN", "@gmail.com"),
			PasswordMin: GetInt("FORM_PASSWORD_MIN", 6),
		},
		Metrics: MetricsConfig{
			Enabled: GetBool("METRICS_ENABLED", true),
			Path:    Get("METRICS_PATH", "/metrics"),
		},
	}
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
