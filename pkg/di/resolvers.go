package di

import (
	"fmt"

	"github.com/arcflux/arcflux/pkg/client/azure"
	"github.com/arcflux/arcflux/pkg/utils/timer"
	"github.com/samber/do/v2"
)

// Dependency resolvers.

// ResolveTimer retrieves the timer dependency from the injector with
// consistent error handling.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveAzureClientFactory retrieves the Azure client factory dependency
// from the injector with consistent error handling.
func ResolveAzureClientFactory(injector Injector) (azure.Factory, error) {
	factory, err := do.Invoke[azure.Factory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve azure client factory dependency: %w", err)
	}

	return factory, nil
}
