package di

import (
	"github.com/arcflux/arcflux/pkg/client/azure"
	"github.com/arcflux/arcflux/pkg/utils/timer"
	"github.com/samber/do/v2"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by the root command
// and tests. It registers default implementations for the timer and the Azure
// client factory.
func NewRuntime() *Runtime {
	return New(
		provideTimer,
		provideAzureClientFactory,
	)
}

// provideTimer registers the timer dependency with the injector.
func provideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

// provideAzureClientFactory registers the Azure client factory dependency.
func provideAzureClientFactory(i Injector) error {
	do.Provide(i, func(Injector) (azure.Factory, error) {
		return azure.DefaultFactory{}, nil
	})

	return nil
}
