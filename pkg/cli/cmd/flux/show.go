package flux

import (
	"github.com/arcflux/arcflux/pkg/cli/flags"
	"github.com/arcflux/arcflux/pkg/cli/helpers"
	runtime "github.com/arcflux/arcflux/pkg/di"
	"github.com/spf13/cobra"
)

// NewShowCmd creates and returns the flux show command.
func NewShowCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	var nameFlag string

	cmd := &cobra.Command{
		Use:           "show",
		Short:         "Show a flux configuration on a cluster",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	clusterFlags := flags.RegisterCluster(cmd)

	cmd.Flags().StringVarP(&nameFlag, "name", "n", "",
		"Name of the flux configuration")

	_ = cmd.MarkFlagRequired("name")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		provider, err := helpers.ResolveProvider(cmd, runtimeContainer, clusterFlags)
		if err != nil {
			return err
		}

		configuration, err := provider.Show(cmd.Context(), nameFlag)
		if err != nil {
			return err
		}

		return helpers.PrintJSON(cmd.OutOrStdout(), configuration)
	}

	return cmd
}
