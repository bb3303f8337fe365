// Package container provides a small IoC container and service provider
// registry used to wire the application at boot.
//
// # Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Boot: registry.Boot()        — safe to resolve everything after this
//  4. Serve requests
//
// # Bindings
//
//	// Transient — new instance every Make()
//	c.Bind("form", func(c *container.Container) any { return signup.NewForm(...) })
//
//	// Singleton — created once, reused
//	c.Singleton("logger", func(c *container.Container) any {
//	    cfg := container.Resolve[*config.Config](c, "config")
//	    return logging.New(cfg.Log, os.Stderr)
//	})
//
//	// Pre-built value
//	c.Instance("registry", prometheus.NewRegistry())
//
//	// Second name for the same binding
//	c.Alias("logger", "log")
//
// # Resolution
//
//	logger := container.Resolve[*slog.Logger](c, "logger") // panics on mismatch
package container
