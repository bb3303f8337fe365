package signup

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/km-arc/go-signup/framework/config"
	"github.com/km-arc/go-signup/framework/container"
	gohttp "github.com/km-arc/go-signup/framework/http"
	"github.com/km-arc/go-signup/framework/http/validation"
	"github.com/km-arc/go-signup/framework/routing"
)

// ServiceProvider wires the registration form into the application.
//
// Bound abstracts:
//   - "signup.schema"     → validation.Schema
//   - "signup.metrics"    → *Metrics
//   - "signup.controller" → *Controller
type ServiceProvider struct {
	container.BaseProvider

	// Complete overrides the default logging completion callback.
	Complete CompletionFunc
}

func (p *ServiceProvider) Register(app *container.Container) {
	app.Singleton("signup.schema", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		return NewSchema(Options{
			EmailDomain: cfg.Form.EmailDomain,
			PasswordMin: cfg.Form.PasswordMin,
		})
	})

	app.Singleton("signup.metrics", func(c *container.Container) any {
		return NewMetrics(container.Resolve[*prometheus.Registry](c, "metrics.registry"))
	})

	complete := p.Complete
	app.Singleton("signup.controller", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		logger := container.Resolve[*slog.Logger](c, "logger")
		if complete == nil {
			complete = LogCompletion(logger)
		}
		return NewController(ControllerConfig{
			Title:    cfg.App.Name,
			Schema:   container.Resolve[validation.Schema](c, "signup.schema"),
			Views:    container.Resolve[*gohttp.ViewEngine](c, "view"),
			Complete: complete,
			Metrics:  container.Resolve[*Metrics](c, "signup.metrics"),
			Logger:   logger,
		})
	})
}

func (p *ServiceProvider) Boot(app *container.Container) {
	controller := container.Resolve[*Controller](app, "signup.controller")
	controller.Routes(container.Resolve[*routing.Router](app, "router"))
}
