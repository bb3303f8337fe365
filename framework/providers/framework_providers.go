package providers

import (
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/km-arc/go-signup/framework/config"
	"github.com/km-arc/go-signup/framework/container"
	gohttp "github.com/km-arc/go-signup/framework/http"
	"github.com/km-arc/go-signup/framework/logging"
	"github.com/km-arc/go-signup/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config".
//
// Bound abstracts:
//   - "config"  → *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.Singleton("config", func(c *container.Container) any {
		return config.Load(envFiles...)
	})
	app.Alias("config", "configuration")
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider builds the structured logger from "config".
//
// Bound abstracts:
//   - "logger"  → *slog.Logger
type LoggingServiceProvider struct {
	container.BaseProvider
	Output io.Writer // default: os.Stderr
}

func (p *LoggingServiceProvider) Register(app *container.Container) {
	out := p.Output
	if out == nil {
		out = os.Stderr
	}
	app.Singleton("logger", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		return logging.New(cfg.Log, out).With(slog.String("app", cfg.App.Name))
	})
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound abstracts:
//   - "router"  → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		return routing.New(container.Resolve[*slog.Logger](c, "logger"))
	})
}

// ── ViewServiceProvider ───────────────────────────────────────────────────────

// ViewServiceProvider registers the template engine.
//
// Bound abstracts:
//   - "view"   → *gohttp.ViewEngine
type ViewServiceProvider struct {
	container.BaseProvider
	FS    fs.FS  // template filesystem, default: os.DirFS("./views")
	Ext   string // file extension,      default: ".html"
	Funcs template.FuncMap
}

func (p *ViewServiceProvider) Register(app *container.Container) {
	fsys := p.FS
	if fsys == nil {
		fsys = os.DirFS("./views")
	}
	ext := p.Ext
	if ext == "" {
		ext = ".html"
	}
	funcs := p.Funcs

	app.Singleton("view", func(c *container.Container) any {
		return gohttp.NewViewEngine(fsys, ext, funcs)
	})
}

// ── MetricsServiceProvider ────────────────────────────────────────────────────

// MetricsServiceProvider owns the Prometheus registry and, when enabled,
// exposes it on the router at config Metrics.Path.
//
// Bound abstracts:
//   - "metrics.registry" → *prometheus.Registry
type MetricsServiceProvider struct {
	container.BaseProvider
}

func (p *MetricsServiceProvider) Register(app *container.Container) {
	app.Singleton("metrics.registry", func(c *container.Container) any {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return reg
	})
}

func (p *MetricsServiceProvider) Boot(app *container.Container) {
	cfg := container.Resolve[*config.Config](app, "config")
	if !cfg.Metrics.Enabled {
		return
	}
	reg := container.Resolve[*prometheus.Registry](app, "metrics.registry")
	router := container.Resolve[*routing.Router](app, "router")
	router.Handle(cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}
