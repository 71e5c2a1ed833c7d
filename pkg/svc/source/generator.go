// Package source builds git-repository and bucket source definitions for flux
// configurations.
//
// A [Generator] is selected by source kind and produces either a complete
// definition for create requests ([Generator.Generate]) or a sparse definition
// for patch requests ([Generator.GeneratePatch]). Create requests carry every
// field, patch requests carry only the fields the caller supplied; a patch
// with no supplied fields is a no-op and yields an empty [PatchDefinitions] so
// the caller omits the source block entirely.
package source

import (
	"fmt"
	"sort"
	"strings"

	armkubernetesconfiguration "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/kubernetesconfiguration/armkubernetesconfiguration/v2"
)

// Kind selects the source variant.
type Kind string

// Source kinds accepted by the CLI.
const (
	// KindGit selects a git repository source.
	KindGit Kind = "git"
	// KindBucket selects an S3-compatible bucket source.
	KindBucket Kind = "bucket"
)

// Flag names for the source parameters, used in validation messages.
const (
	FlagURL               = "--url"
	FlagBranch            = "--branch"
	FlagTag               = "--tag"
	FlagSemver            = "--semver"
	FlagCommit            = "--commit"
	FlagSSHPrivateKey     = "--ssh-private-key"
	FlagSSHPrivateKeyFile = "--ssh-private-key-file"
	FlagHTTPSUser         = "--https-user"
	FlagHTTPSKey          = "--https-key"
	FlagKnownHosts        = "--known-hosts"
	FlagKnownHostsFile    = "--known-hosts-file"
	FlagHTTPSCACert       = "--https-ca-cert"
	FlagHTTPSCACertFile   = "--https-ca-cert-file"
	FlagLocalAuthRef      = "--local-auth-ref"
	FlagBucketName        = "--bucket-name"
	FlagBucketAccessKey   = "--bucket-access-key"
	FlagBucketSecretKey   = "--bucket-secret-key"
	FlagBucketInsecure    = "--bucket-insecure"
	FlagTimeout           = "--timeout"
	FlagSyncInterval      = "--sync-interval"
)

// Options is the flat bag of named source parameters collected from flags.
type Options struct {
	URL          string
	Timeout      string
	SyncInterval string
	LocalAuthRef string

	// Git repository parameters.
	Branch            string
	Tag               string
	Semver            string
	Commit            string
	SSHPrivateKey     string
	SSHPrivateKeyFile string
	HTTPSUser         string
	HTTPSKey          string
	KnownHosts        string
	KnownHostsFile    string
	HTTPSCACert       string
	HTTPSCACertFile   string

	// Bucket parameters.
	BucketName      string
	BucketAccessKey string
	BucketSecretKey string
	BucketInsecure  bool
}

// Definitions is the output of a create-path generation: the resolved source
// kind and exactly one populated definition.
type Definitions struct {
	SourceKind    armkubernetesconfiguration.SourceKindType
	GitRepository *armkubernetesconfiguration.GitRepositoryDefinition
	Bucket        *armkubernetesconfiguration.BucketDefinition
}

// PatchDefinitions is the output of a patch-path generation. A zero value
// means the caller supplied no source parameters and the patch should omit
// the source block.
type PatchDefinitions struct {
	SourceKind    *armkubernetesconfiguration.SourceKindType
	GitRepository *armkubernetesconfiguration.GitRepositoryPatchDefinition
	Bucket        *armkubernetesconfiguration.BucketPatchDefinition
}

// IsZero reports whether the patch carries no source change.
func (p PatchDefinitions) IsZero() bool {
	return p.GitRepository == nil && p.Bucket == nil
}

// Generator validates source parameters and emits wire definitions.
type Generator interface {
	// Generate returns a fully-populated definition for a create request.
	Generate() (Definitions, error)
	// GeneratePatch returns a definition carrying only supplied fields.
	GeneratePatch() (PatchDefinitions, error)
	// RequiredParams lists the flags the kind demands on create.
	RequiredParams() []string
	// ForbiddenParams lists the flags that belong to the other kind.
	ForbiddenParams() []string
}

// New selects the generator variant for the requested kind.
func New(kind Kind, options Options) (Generator, error) {
	switch kind {
	case KindGit:
		return &gitGenerator{options: options}, nil
	case KindBucket:
		return &bucketGenerator{options: options}, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected git or bucket)", ErrUnknownKind, kind)
	}
}

// presenceChecks maps each source flag to a check for whether it was supplied.
//
//nolint:gochecknoglobals // Static validation table.
var presenceChecks = map[string]func(Options) bool{
	FlagURL:               func(o Options) bool { return o.URL != "" },
	FlagBranch:            func(o Options) bool { return o.Branch != "" },
	FlagTag:               func(o Options) bool { return o.Tag != "" },
	FlagSemver:            func(o Options) bool { return o.Semver != "" },
	FlagCommit:            func(o Options) bool { return o.Commit != "" },
	FlagSSHPrivateKey:     func(o Options) bool { return o.SSHPrivateKey != "" },
	FlagSSHPrivateKeyFile: func(o Options) bool { return o.SSHPrivateKeyFile != "" },
	FlagHTTPSUser:         func(o Options) bool { return o.HTTPSUser != "" },
	FlagHTTPSKey:          func(o Options) bool { return o.HTTPSKey != "" },
	FlagKnownHosts:        func(o Options) bool { return o.KnownHosts != "" },
	FlagKnownHostsFile:    func(o Options) bool { return o.KnownHostsFile != "" },
	FlagHTTPSCACert:       func(o Options) bool { return o.HTTPSCACert != "" },
	FlagHTTPSCACertFile:   func(o Options) bool { return o.HTTPSCACertFile != "" },
	FlagLocalAuthRef:      func(o Options) bool { return o.LocalAuthRef != "" },
	FlagBucketName:        func(o Options) bool { return o.BucketName != "" },
	FlagBucketAccessKey:   func(o Options) bool { return o.BucketAccessKey != "" },
	FlagBucketSecretKey:   func(o Options) bool { return o.BucketSecretKey != "" },
	FlagBucketInsecure:    func(o Options) bool { return o.BucketInsecure },
}

// gitOnlyParams are parameters only meaningful for git sources.
//
//nolint:gochecknoglobals // Static validation table.
var gitOnlyParams = []string{
	FlagBranch, FlagTag, FlagSemver, FlagCommit,
	FlagSSHPrivateKey, FlagSSHPrivateKeyFile,
	FlagHTTPSUser, FlagHTTPSKey,
	FlagKnownHosts, FlagKnownHostsFile,
	FlagHTTPSCACert, FlagHTTPSCACertFile,
}

// bucketOnlyParams are parameters only meaningful for bucket sources.
//
//nolint:gochecknoglobals // Static validation table.
var bucketOnlyParams = []string{
	FlagBucketName, FlagBucketAccessKey, FlagBucketSecretKey, FlagBucketInsecure,
}

// checkRequired verifies every required flag was supplied, reporting all
// missing names at once.
func checkRequired(kind Kind, options Options, required []string) error {
	var missing []string

	for _, flag := range required {
		if !presenceChecks[flag](options) {
			missing = append(missing, flag)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return fmt.Errorf("%w: %s source requires %s",
			ErrRequiredArgumentMissing, kind, strings.Join(missing, ", "))
	}

	return nil
}

// checkForbidden verifies no flag belonging to the other kind was supplied,
// reporting all offending names at once.
func checkForbidden(kind Kind, options Options, forbidden []string) error {
	var offending []string

	for _, flag := range forbidden {
		if presenceChecks[flag](options) {
			offending = append(offending, flag)
		}
	}

	if len(offending) > 0 {
		sort.Strings(offending)

		return fmt.Errorf("%w: %s not valid for %s sources",
			ErrUnrecognizedArgument, strings.Join(offending, ", "), kind)
	}

	return nil
}
