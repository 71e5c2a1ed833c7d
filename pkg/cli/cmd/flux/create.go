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

const createLongDesc = `Create a flux configuration on a cluster.

The configuration syncs a git repository or S3-compatible bucket onto the
cluster. Kustomizations select which paths of the source are applied and in
which order; when none are given a single kustomization syncing the source
root is created after confirmation.

Creating a configuration installs the 'microsoft.flux' cluster extension when
it is not already present on the cluster.`

// createFlags carries the create command's own flag values.
type createFlags struct {
	name      string
	namespace string
	scope     string
	kind      string
	suspend   bool
	noWait    bool
}

// NewCreateCmd creates and returns the flux create command.
func NewCreateCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	var createValues createFlags

	cmd := &cobra.Command{
		Use:           "create",
		Short:         "Create a flux configuration on a cluster",
		Long:          createLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	clusterFlags := flags.RegisterCluster(cmd)
	sourceOptions := flags.RegisterSource(cmd)
	kustomizationValues := flags.RegisterKustomizations(cmd)

	cmd.Flags().StringVarP(&createValues.name, "name", "n", "",
		"Name of the flux configuration")
	cmd.Flags().StringVar(&createValues.namespace, "namespace", "default",
		"Namespace to deploy the configuration in")
	cmd.Flags().StringVar(&createValues.scope, "scope", "cluster",
		"Scope at which the flux operators are installed (cluster or namespace)")
	cmd.Flags().StringVar(&createValues.kind, "kind", string(source.KindGit),
		"Source kind to reconcile (git or bucket)")
	cmd.Flags().BoolVar(&createValues.suspend, "suspend", false,
		"Suspend reconciliation of the source and kustomizations")
	cmd.Flags().BoolVar(&createValues.noWait, "no-wait", false,
		"Do not wait for the long-running operation to finish")

	_ = cmd.MarkFlagRequired("name")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runCreateAction(
			cmd,
			runtimeContainer,
			clusterFlags,
			sourceOptions,
			*kustomizationValues,
			createValues,
		)
	}

	return cmd
}

// runCreateAction executes the configuration create.
func runCreateAction(
	cmd *cobra.Command,
	runtimeContainer *runtime.Runtime,
	clusterFlags *flags.Cluster,
	sourceOptions *source.Options,
	kustomizationValues []string,
	createValues createFlags,
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

	err = provider.Create(cmd.Context(), fluxconfig.CreateOptions{
		Name:           createValues.name,
		Scope:          createValues.scope,
		Namespace:      createValues.namespace,
		Kind:           source.Kind(createValues.kind),
		Source:         *sourceOptions,
		Suspend:        createValues.suspend,
		Kustomizations: kustomizations,
		NoWait:         createValues.noWait,
	})
	if err != nil {
		return err
	}

	outputTimer := flags.MaybeTimer(cmd, tmr)
	if outputTimer != nil {
		notify.SuccessWithTimerf(cmd.OutOrStdout(), outputTimer, "flux configuration create completed")
	}

	return nil
}
