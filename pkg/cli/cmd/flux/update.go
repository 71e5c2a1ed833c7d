package flux

import (
	"github.com/arcflux/arcflux/pkg/cli/flags"
	"github.com/arcflux/arcflux/pkg/cli/helpers"
	runtime "github.com/arcflux/arcflux/pkg/di"
	"github.com/arcflux/arcflux/pkg/svc/fluxconfig"
	"github.com/arcflux/arcflux/pkg/svc/source"
	"github.com/arcflux/arcflux/pkg/utils/notify"
	"github.com/spf13/cobra"
)

const updateLongDesc = `Update a flux configuration on a cluster.

Only the supplied parameters are changed; everything else keeps its current
value on the resource. Kustomizations given here replace the entry with the
same name wholesale.`

// NewUpdateCmd creates and returns the flux update command.
func NewUpdateCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	var (
		nameFlag    string
		kindFlag    string
		suspendFlag bool
		noWaitFlag  bool
	)

	cmd := &cobra.Command{
		Use:           "update",
		Short:         "Update a flux configuration on a cluster",
		Long:          updateLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	clusterFlags := flags.RegisterCluster(cmd)
	sourceOptions := flags.RegisterSource(cmd)
	kustomizationValues := flags.RegisterKustomizations(cmd)

	cmd.Flags().StringVarP(&nameFlag, "name", "n", "",
		"Name of the flux configuration")
	cmd.Flags().StringVar(&kindFlag, "kind", "",
		"Source kind to reconcile (git or bucket), defaults to the configuration's current kind")
	cmd.Flags().BoolVar(&suspendFlag, "suspend", false,
		"Suspend or resume reconciliation of the source and kustomizations")
	cmd.Flags().BoolVar(&noWaitFlag, "no-wait", false,
		"Do not wait for the long-running operation to finish")

	_ = cmd.MarkFlagRequired("name")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		// Suspend is tri-state on the wire: only send it when the flag was given.
		var suspend *bool
		if cmd.Flags().Changed("suspend") {
			suspend = &suspendFlag
		}

		return runUpdateAction(
			cmd,
			runtimeContainer,
			clusterFlags,
			sourceOptions,
			*kustomizationValues,
			fluxconfig.UpdateOptions{
				Name:    nameFlag,
				Kind:    source.Kind(kindFlag),
				Suspend: suspend,
				NoWait:  noWaitFlag,
			},
		)
	}

	return cmd
}

// runUpdateAction executes the configuration patch.
func runUpdateAction(
	cmd *cobra.Command,
	runtimeContainer *runtime.Runtime,
	clusterFlags *flags.Cluster,
	sourceOptions *source.Options,
	kustomizationValues []string,
	options fluxconfig.UpdateOptions,
) error {
	tmr := helpers.ResolveTimer(runtimeContainer)
	if tmr != nil {
		tmr.Start()
	}

	flags.ExpandSecrets(sourceOptions)

	kustomizations, err := flags.ParseKustomizations(kustomizationValues)
	if err != nil {
		return err
	}

	provider, err := helpers.ResolveProvider(cmd, runtimeContainer, clusterFlags)
	if err != nil {
		return err
	}

	options.Source = *sourceOptions
	options.Kustomizations = kustomizations

	err = provider.Update(cmd.Context(), options)
	if err != nil {
		return err
	}

	outputTimer := flags.MaybeTimer(cmd, tmr)
	if outputTimer != nil {
		notify.SuccessWithTimerf(cmd.OutOrStdout(), outputTimer, "flux configuration update completed")
	}

	return nil
}
