package flux

import (
	"github.com/arcflux/arcflux/pkg/cli/flags"
	"github.com/arcflux/arcflux/pkg/cli/helpers"
	runtime "github.com/arcflux/arcflux/pkg/di"
	"github.com/arcflux/arcflux/pkg/svc/fluxconfig"
	"github.com/arcflux/arcflux/pkg/utils/notify"
	"github.com/spf13/cobra"
)

const deleteLongDesc = `Delete a flux configuration from a cluster.

When any kustomization of the configuration has prune enabled, deleting the
configuration also deletes the Kubernetes objects it deployed, so an extra
confirmation is required. Use --force to remove the Azure resource even when
the cluster is unreachable; the flux objects on the cluster are then left
behind.`

// NewDeleteCmd creates and returns the flux delete command.
func NewDeleteCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	var (
		nameFlag   string
		forceFlag  bool
		noWaitFlag bool
		yesFlag    bool
	)

	cmd := &cobra.Command{
		Use:           "delete",
		Short:         "Delete a flux configuration from a cluster",
		Long:          deleteLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	clusterFlags := flags.RegisterCluster(cmd)

	cmd.Flags().StringVarP(&nameFlag, "name", "n", "",
		"Name of the flux configuration")
	cmd.Flags().BoolVar(&forceFlag, "force", false,
		"Delete the Azure resource even when the cluster is unreachable")
	cmd.Flags().BoolVar(&noWaitFlag, "no-wait", false,
		"Do not wait for the long-running operation to finish")
	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false,
		"Do not prompt for confirmation")

	_ = cmd.MarkFlagRequired("name")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runDeleteAction(cmd, runtimeContainer, clusterFlags, fluxconfig.DeleteOptions{
			Name:   nameFlag,
			Force:  forceFlag,
			NoWait: noWaitFlag,
			Yes:    yesFlag,
		})
	}

	return cmd
}

// runDeleteAction executes the configuration delete.
func runDeleteAction(
	cmd *cobra.Command,
	runtimeContainer *runtime.Runtime,
	clusterFlags *flags.Cluster,
	options fluxconfig.DeleteOptions,
) error {
	tmr := helpers.ResolveTimer(runtimeContainer)
	if tmr != nil {
		tmr.Start()
	}

	provider, err := helpers.ResolveProvider(cmd, runtimeContainer, clusterFlags)
	if err != nil {
		return err
	}

	err = provider.Delete(cmd.Context(), options)
	if err != nil {
		return err
	}

	outputTimer := flags.MaybeTimer(cmd, tmr)
	if outputTimer != nil {
		notify.SuccessWithTimerf(cmd.OutOrStdout(), outputTimer, "flux configuration delete completed")
	}

	return nil
}
