// Package helpers provides shared wiring for the flux commands: resolving
// dependencies from the runtime container, building the configuration
// provider, and rendering command output.
package helpers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arcflux/arcflux/pkg/cli/config"
	"github.com/arcflux/arcflux/pkg/cli/flags"
	"github.com/arcflux/arcflux/pkg/cli/ui/confirm"
	"github.com/arcflux/arcflux/pkg/client/azure"
	"github.com/arcflux/arcflux/pkg/di"
	"github.com/arcflux/arcflux/pkg/svc/fluxconfig"
	"github.com/arcflux/arcflux/pkg/utils/timer"
	"github.com/spf13/cobra"
)

// ResolveTimer retrieves the timer from the runtime container, returning nil
// when the container is absent so commands degrade gracefully.
func ResolveTimer(runtimeContainer *di.Runtime) timer.Timer {
	var tmr timer.Timer

	if runtimeContainer != nil {
		//nolint:wrapcheck // Error is captured to outer scope, not returned
		_ = runtimeContainer.Invoke(func(injector di.Injector) error {
			var err error

			tmr, err = di.ResolveTimer(injector)

			return err
		})
	}

	return tmr
}

// ResolveProvider builds the flux configuration provider for the cluster
// identified by the given flags, resolving the Azure client factory through
// the runtime container.
func ResolveProvider(
	cmd *cobra.Command,
	runtimeContainer *di.Runtime,
	cluster *flags.Cluster,
) (*fluxconfig.Provider, error) {
	cfg := config.NewManager()

	scope, err := cluster.Scope(cfg)
	if err != nil {
		return nil, err
	}

	var factory azure.Factory

	err = runtimeContainer.Invoke(func(injector di.Injector) error {
		var resolveErr error

		factory, resolveErr = di.ResolveAzureClientFactory(injector)

		return resolveErr
	})
	if err != nil {
		return nil, err
	}

	clients, err := factory.Create(scope.SubscriptionID, nil)
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()

	provider, err := fluxconfig.NewProvider(
		cmd.Context(), clients, scope, cfg.ExtensionSettings(), confirm.NewPrompter(out), out)
	if err != nil {
		return nil, err
	}

	return provider, nil
}

// PrintJSON renders a value as indented JSON on the writer.
func PrintJSON(writer io.Writer, value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	_, err = fmt.Fprintln(writer, string(encoded))
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
