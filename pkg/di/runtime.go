// Package di wires shared dependencies through a samber/do container so
// commands resolve collaborators instead of constructing them inline.
package di

import (
	"fmt"

	"github.com/samber/do/v2"
)

// Injector is the dependency injector handle passed to providers and resolvers.
type Injector = do.Injector

// Provider registers one dependency with the injector.
type Provider func(Injector) error

// Runtime is the shared dependency container used by the root command and tests.
type Runtime struct {
	injector do.Injector
}

// New constructs a Runtime and applies the given providers in order.
func New(providers ...Provider) *Runtime {
	injector := do.New()

	for _, provider := range providers {
		// Providers only fail on programmer error; surface that loudly.
		err := provider(injector)
		if err != nil {
			panic(fmt.Sprintf("di: provider registration failed: %v", err))
		}
	}

	return &Runtime{injector: injector}
}

// Invoke runs fn with the container's injector.
func (r *Runtime) Invoke(fn func(Injector) error) error {
	if r == nil {
		return nil
	}

	return fn(r.injector)
}
