package source

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armkubernetesconfiguration "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/kubernetesconfiguration/armkubernetesconfiguration/v2"
	"github.com/arcflux/arcflux/pkg/utils/parse"
)

// gitGenerator builds GitRepository definitions.
type gitGenerator struct {
	options Options
}

// RequiredParams lists the flags a git source demands on create.
func (g *gitGenerator) RequiredParams() []string {
	return []string{FlagURL}
}

// ForbiddenParams lists the bucket-only flags a git source rejects.
func (g *gitGenerator) ForbiddenParams() []string {
	return bucketOnlyParams
}

// Generate returns a fully-populated git repository definition for a create request.
func (g *gitGenerator) Generate() (Definitions, error) {
	err := g.validate(true)
	if err != nil {
		return Definitions{}, err
	}

	definition := &armkubernetesconfiguration.GitRepositoryDefinition{
		URL:           stringPtr(g.options.URL),
		LocalAuthRef:  stringPtr(g.options.LocalAuthRef),
		RepositoryRef: g.repositoryRef(),
	}

	definition.TimeoutInSeconds, err = parse.Duration(g.options.Timeout)
	if err != nil {
		return Definitions{}, err
	}

	definition.SyncIntervalInSeconds, err = parse.Duration(g.options.SyncInterval)
	if err != nil {
		return Definitions{}, err
	}

	definition.SSHKnownHosts, err = g.knownHostsData()
	if err != nil {
		return Definitions{}, err
	}

	definition.HTTPSCACert, err = g.caCertData()
	if err != nil {
		return Definitions{}, err
	}

	if g.options.HTTPSUser != "" {
		definition.HTTPSUser = to.Ptr(parse.ToBase64(g.options.HTTPSUser))
	}

	return Definitions{
		SourceKind:    armkubernetesconfiguration.SourceKindTypeGitRepository,
		GitRepository: definition,
	}, nil
}

// GeneratePatch returns a git repository patch carrying only supplied fields.
// An empty result means the caller supplied no git parameters at all.
func (g *gitGenerator) GeneratePatch() (PatchDefinitions, error) {
	err := g.validate(false)
	if err != nil {
		return PatchDefinitions{}, err
	}

	patch := &armkubernetesconfiguration.GitRepositoryPatchDefinition{
		URL:           stringPtr(g.options.URL),
		LocalAuthRef:  stringPtr(g.options.LocalAuthRef),
		RepositoryRef: g.repositoryRef(),
	}

	patch.TimeoutInSeconds, err = parse.Duration(g.options.Timeout)
	if err != nil {
		return PatchDefinitions{}, err
	}

	patch.SyncIntervalInSeconds, err = parse.Duration(g.options.SyncInterval)
	if err != nil {
		return PatchDefinitions{}, err
	}

	patch.SSHKnownHosts, err = g.knownHostsData()
	if err != nil {
		return PatchDefinitions{}, err
	}

	patch.HTTPSCACert, err = g.caCertData()
	if err != nil {
		return PatchDefinitions{}, err
	}

	if g.options.HTTPSUser != "" {
		patch.HTTPSUser = to.Ptr(parse.ToBase64(g.options.HTTPSUser))
	}

	if isEmptyGitPatch(patch) {
		return PatchDefinitions{}, nil
	}

	return PatchDefinitions{
		SourceKind:    to.Ptr(armkubernetesconfiguration.SourceKindTypeGitRepository),
		GitRepository: patch,
	}, nil
}

// validate runs the git parameter checks. Required parameters are only
// demanded on the create path; patches may supply any subset.
func (g *gitGenerator) validate(requireAll bool) error {
	if requireAll {
		err := checkRequired(KindGit, g.options, g.RequiredParams())
		if err != nil {
			return err
		}
	}

	err := checkForbidden(KindGit, g.options, g.ForbiddenParams())
	if err != nil {
		return err
	}

	err = parse.ValidateDuration(FlagTimeout, g.options.Timeout)
	if err != nil {
		return err
	}

	err = parse.ValidateDuration(FlagSyncInterval, g.options.SyncInterval)
	if err != nil {
		return err
	}

	err = validateRepositoryRef(g.options)
	if err != nil {
		return err
	}

	if g.options.URL != "" {
		scheme, err := validateGitURL(g.options.URL)
		if err != nil {
			return err
		}

		err = validateURLWithParams(scheme, g.options)
		if err != nil {
			return err
		}
	}

	return nil
}

// repositoryRef builds the ref selector, or nil when no ref flag was supplied.
func (g *gitGenerator) repositoryRef() *armkubernetesconfiguration.RepositoryRefDefinition {
	if g.options.Branch == "" && g.options.Tag == "" &&
		g.options.Semver == "" && g.options.Commit == "" {
		return nil
	}

	return &armkubernetesconfiguration.RepositoryRefDefinition{
		Branch: stringPtr(g.options.Branch),
		Tag:    stringPtr(g.options.Tag),
		Semver: stringPtr(g.options.Semver),
		Commit: stringPtr(g.options.Commit),
	}
}

// knownHostsData resolves and validates the known-hosts input.
func (g *gitGenerator) knownHostsData() (*string, error) {
	data, err := parse.DataFromKeyOrFile(g.options.KnownHosts, g.options.KnownHostsFile)
	if err != nil {
		return nil, err
	}

	if data == "" {
		return nil, nil //nolint:nilnil // nil means "field omitted" on the wire.
	}

	err = ValidateKnownHosts(data)
	if err != nil {
		return nil, err
	}

	return &data, nil
}

// caCertData resolves the https CA certificate input.
func (g *gitGenerator) caCertData() (*string, error) {
	data, err := parse.DataFromKeyOrFile(g.options.HTTPSCACert, g.options.HTTPSCACertFile)
	if err != nil {
		return nil, err
	}

	if data == "" {
		return nil, nil //nolint:nilnil // nil means "field omitted" on the wire.
	}

	return &data, nil
}

// isEmptyGitPatch reports whether every patch field is unset.
func isEmptyGitPatch(patch *armkubernetesconfiguration.GitRepositoryPatchDefinition) bool {
	return patch.URL == nil && patch.LocalAuthRef == nil && patch.RepositoryRef == nil &&
		patch.TimeoutInSeconds == nil && patch.SyncIntervalInSeconds == nil &&
		patch.SSHKnownHosts == nil && patch.HTTPSCACert == nil && patch.HTTPSUser == nil
}

// stringPtr returns a pointer to value, or nil for the empty string.
func stringPtr(value string) *string {
	if value == "" {
		return nil
	}

	return to.Ptr(value)
}
