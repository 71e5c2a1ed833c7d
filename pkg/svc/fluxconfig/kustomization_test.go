package fluxconfig_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armkubernetesconfiguration "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/kubernetesconfiguration/armkubernetesconfiguration/v2"
	"github.com/arcflux/arcflux/pkg/svc/fluxconfig"
	"github.com/arcflux/arcflux/pkg/utils/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// configurationWithKustomizations builds a remote configuration carrying the
// given kustomization map.
func configurationWithKustomizations(
	kustomizations map[string]*armkubernetesconfiguration.KustomizationDefinition,
) armkubernetesconfiguration.FluxConfiguration {
	return armkubernetesconfiguration.FluxConfiguration{
		Properties: &armkubernetesconfiguration.FluxConfigurationProperties{
			Kustomizations: kustomizations,
		},
	}
}

func TestCreateKustomization_PatchesOnlyTheNewEntry(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.client.On("Get", mock.Anything, f.scope, "gitops").
		Return(configurationWithKustomizations(
			map[string]*armkubernetesconfiguration.KustomizationDefinition{
				"infra": {Path: to.Ptr("./infra")},
			}), nil)

	var patched armkubernetesconfiguration.FluxConfigurationPatch

	f.client.On("BeginUpdate", mock.Anything, f.scope, "gitops", mock.Anything).
		Run(func(args mock.Arguments) {
			patched, _ = args.Get(3).(armkubernetesconfiguration.FluxConfigurationPatch)
		}).
		Return(completedOperation(), nil)

	err := f.provider.CreateKustomization(context.Background(), fluxconfig.KustomizationOptions{
		ConfigurationName: "gitops",
		Definition: parse.Kustomization{
			Name:      "apps",
			Path:      "./apps",
			DependsOn: []string{"infra"},
			Timeout:   "5m",
			Prune:     true,
		},
	})
	require.NoError(t, err)

	kustomizations := patched.Properties.Kustomizations
	require.Len(t, kustomizations, 1)
	require.Contains(t, kustomizations, "apps")

	apps := kustomizations["apps"]
	assert.Equal(t, "./apps", *apps.Path)
	assert.True(t, *apps.Prune)
	assert.EqualValues(t, 300, *apps.TimeoutInSeconds)
	require.Len(t, apps.DependsOn, 1)
	assert.Equal(t, "infra", *apps.DependsOn[0])
}

func TestCreateKustomization_ExistingNameConflicts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.client.On("Get", mock.Anything, f.scope, "gitops").
		Return(configurationWithKustomizations(
			map[string]*armkubernetesconfiguration.KustomizationDefinition{
				"apps": {},
			}), nil)

	err := f.provider.CreateKustomization(context.Background(), fluxconfig.KustomizationOptions{
		ConfigurationName: "gitops",
		Definition:        parse.Kustomization{Name: "apps", Path: "./apps"},
	})
	require.ErrorIs(t, err, fluxconfig.ErrKustomizationExists)

	f.client.AssertNotCalled(t, "BeginUpdate",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateKustomization_ReplacesTheEntry(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.client.On("Get", mock.Anything, f.scope, "gitops").
		Return(configurationWithKustomizations(
			map[string]*armkubernetesconfiguration.KustomizationDefinition{
				"apps": {Path: to.Ptr("./apps"), Prune: to.Ptr(true)},
			}), nil)

	var patched armkubernetesconfiguration.FluxConfigurationPatch

	f.client.On("BeginUpdate", mock.Anything, f.scope, "gitops", mock.Anything).
		Run(func(args mock.Arguments) {
			patched, _ = args.Get(3).(armkubernetesconfiguration.FluxConfigurationPatch)
		}).
		Return(completedOperation(), nil)

	err := f.provider.UpdateKustomization(context.Background(), fluxconfig.KustomizationOptions{
		ConfigurationName: "gitops",
		Definition:        parse.Kustomization{Name: "apps", Path: "./manifests"},
	})
	require.NoError(t, err)

	apps := patched.Properties.Kustomizations["apps"]
	require.NotNil(t, apps)
	assert.Equal(t, "./manifests", *apps.Path)
	// The entry is replaced wholesale, so prune reverts to its default.
	assert.False(t, *apps.Prune)
}

func TestUpdateKustomization_MissingName(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.client.On("Get", mock.Anything, f.scope, "gitops").
		Return(configurationWithKustomizations(nil), nil)

	err := f.provider.UpdateKustomization(context.Background(), fluxconfig.KustomizationOptions{
		ConfigurationName: "gitops",
		Definition:        parse.Kustomization{Name: "apps"},
	})
	require.ErrorIs(t, err, fluxconfig.ErrKustomizationNotFound)
}

func TestDeleteKustomization_PatchesKeyToNull(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.client.On("Get", mock.Anything, f.scope, "gitops").
		Return(configurationWithKustomizations(
			map[string]*armkubernetesconfiguration.KustomizationDefinition{
				"apps": {Path: to.Ptr("./apps")},
			}), nil)

	var patched armkubernetesconfiguration.FluxConfigurationPatch

	f.client.On("BeginUpdate", mock.Anything, f.scope, "gitops", mock.Anything).
		Run(func(args mock.Arguments) {
			patched, _ = args.Get(3).(armkubernetesconfiguration.FluxConfigurationPatch)
		}).
		Return(completedOperation(), nil)

	err := f.provider.DeleteKustomization(context.Background(), fluxconfig.KustomizationOptions{
		ConfigurationName: "gitops",
		Definition:        parse.Kustomization{Name: "apps"},
	})
	require.NoError(t, err)

	kustomizations := patched.Properties.Kustomizations
	require.Contains(t, kustomizations, "apps")
	assert.Nil(t, kustomizations["apps"])

	f.confirmer.AssertNotCalled(t, "Confirm", mock.Anything)
}

func TestDeleteKustomization_PruneDeclinedAborts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.confirmer.On("Confirm", mock.Anything).Return(false)

	f.client.On("Get", mock.Anything, f.scope, "gitops").
		Return(configurationWithKustomizations(
			map[string]*armkubernetesconfiguration.KustomizationDefinition{
				"apps": {Prune: to.Ptr(true)},
			}), nil)

	err := f.provider.DeleteKustomization(context.Background(), fluxconfig.KustomizationOptions{
		ConfigurationName: "gitops",
		Definition:        parse.Kustomization{Name: "apps"},
	})
	require.ErrorIs(t, err, fluxconfig.ErrAborted)

	f.client.AssertNotCalled(t, "BeginUpdate",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteKustomization_PruneWithYesSkipsPrompt(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.client.On("Get", mock.Anything, f.scope, "gitops").
		Return(configurationWithKustomizations(
			map[string]*armkubernetesconfiguration.KustomizationDefinition{
				"apps": {Prune: to.Ptr(true)},
			}), nil)
	f.client.On("BeginUpdate", mock.Anything, f.scope, "gitops", mock.Anything).
		Return(completedOperation(), nil)

	err := f.provider.DeleteKustomization(context.Background(), fluxconfig.KustomizationOptions{
		ConfigurationName: "gitops",
		Definition:        parse.Kustomization{Name: "apps"},
		Yes:               true,
	})
	require.NoError(t, err)

	f.confirmer.AssertNotCalled(t, "Confirm", mock.Anything)
}

func TestDeleteKustomization_MissingName(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.client.On("Get", mock.Anything, f.scope, "gitops").
		Return(configurationWithKustomizations(nil), nil)

	err := f.provider.DeleteKustomization(context.Background(), fluxconfig.KustomizationOptions{
		ConfigurationName: "gitops",
		Definition:        parse.Kustomization{Name: "apps"},
	})
	require.ErrorIs(t, err, fluxconfig.ErrKustomizationNotFound)
}

func TestListKustomizations_SortedByName(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.client.On("Get", mock.Anything, f.scope, "gitops").
		Return(configurationWithKustomizations(
			map[string]*armkubernetesconfiguration.KustomizationDefinition{
				"zebra": {Path: to.Ptr("./z")},
				"apps":  {Path: to.Ptr("./a")},
				"mid":   {Path: to.Ptr("./m")},
			}), nil)

	kustomizations, err := f.provider.ListKustomizations(context.Background(), "gitops")
	require.NoError(t, err)
	require.Len(t, kustomizations, 3)
	assert.Equal(t, "./a", *kustomizations[0].Path)
	assert.Equal(t, "./m", *kustomizations[1].Path)
	assert.Equal(t, "./z", *kustomizations[2].Path)
}

func TestShowKustomization_ReturnsTheEntry(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.client.On("Get", mock.Anything, f.scope, "gitops").
		Return(configurationWithKustomizations(
			map[string]*armkubernetesconfiguration.KustomizationDefinition{
				"apps": {Path: to.Ptr("./apps")},
			}), nil)

	definition, err := f.provider.ShowKustomization(context.Background(), "gitops", "apps")
	require.NoError(t, err)
	assert.Equal(t, "./apps", *definition.Path)
}

func TestShowKustomization_MissingName(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.client.On("Get", mock.Anything, f.scope, "gitops").
		Return(configurationWithKustomizations(nil), nil)

	_, err := f.provider.ShowKustomization(context.Background(), "gitops", "apps")
	require.ErrorIs(t, err, fluxconfig.ErrKustomizationNotFound)
}

func TestBuildKustomizations_DuplicateNamesRejected(t *testing.T) {
	t.Parallel()

	_, err := fluxconfig.BuildKustomizations([]parse.Kustomization{
		{Name: "apps", Path: "./apps"},
		{Name: "apps", Path: "./other"},
	}, &bytes.Buffer{})
	require.ErrorIs(t, err, fluxconfig.ErrDuplicateKustomization)
}

func TestBuildKustomizations_ForwardDependencyAllowed(t *testing.T) {
	t.Parallel()

	kustomizations, err := fluxconfig.BuildKustomizations([]parse.Kustomization{
		{Name: "apps", Path: "./apps", DependsOn: []string{"not-yet-created"}},
	}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Len(t, kustomizations, 1)
}

func TestBuildKustomizations_InvalidDuration(t *testing.T) {
	t.Parallel()

	_, err := fluxconfig.BuildKustomizations([]parse.Kustomization{
		{Name: "apps", Path: "./apps", SyncInterval: "often"},
	}, &bytes.Buffer{})
	require.ErrorIs(t, err, parse.ErrInvalidDuration)
	assert.Contains(t, err.Error(), "sync_interval")
}

func TestBuildKustomizations_LegacyValidationWarns(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	_, err := fluxconfig.BuildKustomizations([]parse.Kustomization{
		{Name: "apps", Path: "./apps", Validation: "client"},
	}, out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "v1 configurations only")
}
