package flux

import (
	"github.com/arcflux/arcflux/pkg/cli/flags"
	"github.com/arcflux/arcflux/pkg/cli/helpers"
	runtime "github.com/arcflux/arcflux/pkg/di"
	"github.com/spf13/cobra"
)

// NewListCmd creates and returns the flux list command.
func NewListCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List all flux configurations on a cluster",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	clusterFlags := flags.RegisterCluster(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		provider, err := helpers.ResolveProvider(cmd, runtimeContainer, clusterFlags)
		if err != nil {
			return err
		}

		configurations, err := provider.List(cmd.Context())
		if err != nil {
			return err
		}

		return helpers.PrintJSON(cmd.OutOrStdout(), configurations)
	}

	return cmd
}
