package container

import (
	"fmt"
	"sync"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory is a function that builds a concrete value from the container.
type Factory func(c *Container) any

// binding holds a registered factory and whether it is a singleton.
type binding struct {
	factory   Factory
	singleton bool
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container maps abstract names to factories, cached singletons and
// pre-built instances.
type Container struct {
	mu sync.RWMutex

	// abstract → binding
	bindings map[string]*binding

	// abstract → resolved singleton instance
	instances map[string]any

	// alias → abstract (canonical key)
	aliases map[string]string
}

// New creates an empty container.
func New() *Container {
	c := &Container{
		bindings:  make(map[string]*binding),
		instances: make(map[string]any),
		aliases:   make(map[string]string),
	}
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers a transient (new instance each Make) factory.
func (c *Container) Bind(abstract string, factory Factory) {
	c.register(abstract, factory, false)
}

// Singleton registers a factory whose result is cached after first resolution.
func (c *Container) Singleton(abstract string, factory Factory) {
	c.register(abstract, factory, true)
}

// Instance registers a pre-built value as a singleton.
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.bindings, key)
	c.instances[key] = instance
}

func (c *Container) register(abstract string, factory Factory, singleton bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	// Rebinding drops the cached instance so the new factory takes effect.
	delete(c.instances, key)
	c.bindings[key] = &binding{factory: factory, singleton: singleton}
}

// Alias registers an alternative name for an abstract.
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if abstract == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", abstract))
	}
	c.aliases[alias] = c.canonical(abstract)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract from the container. It panics when nothing is
// registered under that name.
func (c *Container) Make(abstract string) any {
	c.mu.RLock()
	key := c.canonical(abstract)
	if inst, ok := c.instances[key]; ok {
		c.mu.RUnlock()
		return inst
	}
	b, ok := c.bindings[key]
	c.mu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("container: no binding registered for [%s]", abstract))
	}

	// Factories run unlocked: they resolve their own dependencies.
	instance := b.factory(c)
	if !b.singleton {
		return instance
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.instances[key]; ok {
		return existing
	}
	c.instances[key] = instance
	return instance
}

// canonical resolves an alias to its canonical key (caller holds mu).
func (c *Container) canonical(abstract string) string {
	if target, ok := c.aliases[abstract]; ok {
		return target
	}
	return abstract
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve calls Make and type-asserts the result, panicking on mismatch.
//
//	logger := container.Resolve[*slog.Logger](c, "logger")
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), abstract, instance))
	}
	return typed
}
