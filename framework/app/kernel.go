package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/km-arc/go-signup/framework/config"
	"github.com/km-arc/go-signup/framework/container"
	"github.com/km-arc/go-signup/framework/providers"
	"github.com/km-arc/go-signup/framework/routing"
)

// shutdownTimeout bounds how long Run waits for in-flight requests.
const shutdownTimeout = 10 * time.Second

// Application is the top-level application container.
// It embeds the IoC Container and ProviderRegistry so user code can
// call app.Singleton(), app.Register() directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application and registers the framework core providers.
func New(envFiles ...string) *Application {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&providers.LoggingServiceProvider{})
	registry.Register(&providers.RoutingServiceProvider{})
	registry.Register(&providers.MetricsServiceProvider{})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

// Logger resolves the application logger.
func (a *Application) Logger() *slog.Logger {
	return container.Resolve[*slog.Logger](a.Container, "logger")
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// Handler boots the application if needed and returns its HTTP handler.
func (a *Application) Handler() http.Handler {
	if !a.Providers.Booted() {
		a.Boot()
	}
	return a.Router()
}

// Run serves HTTP on APP_PORT until ctx is cancelled, then shuts down
// gracefully.
func (a *Application) Run(ctx context.Context) error {
	handler := a.Handler()
	cfg := a.Config()
	logger := a.Logger()

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started",
			slog.String("addr", "http://localhost"+srv.Addr),
			slog.String("env", cfg.App.Env))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
