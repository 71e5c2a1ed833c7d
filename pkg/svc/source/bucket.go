package source

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armkubernetesconfiguration "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/kubernetesconfiguration/armkubernetesconfiguration/v2"
	"github.com/arcflux/arcflux/pkg/utils/parse"
)

// bucketGenerator builds S3-compatible bucket definitions. The secret key is
// not part of the wire definition; it travels in the configuration's
// protected settings.
type bucketGenerator struct {
	options Options
}

// RequiredParams lists the flags a bucket source demands on create.
func (b *bucketGenerator) RequiredParams() []string {
	return []string{FlagURL, FlagBucketName}
}

// ForbiddenParams lists the git-only flags a bucket source rejects.
func (b *bucketGenerator) ForbiddenParams() []string {
	return gitOnlyParams
}

// Generate returns a fully-populated bucket definition for a create request.
func (b *bucketGenerator) Generate() (Definitions, error) {
	err := b.validate(true)
	if err != nil {
		return Definitions{}, err
	}

	definition := &armkubernetesconfiguration.BucketDefinition{
		URL:          stringPtr(b.options.URL),
		BucketName:   stringPtr(b.options.BucketName),
		AccessKey:    stringPtr(b.options.BucketAccessKey),
		LocalAuthRef: stringPtr(b.options.LocalAuthRef),
	}

	if b.options.BucketInsecure {
		definition.Insecure = to.Ptr(true)
	}

	definition.TimeoutInSeconds, err = parse.Duration(b.options.Timeout)
	if err != nil {
		return Definitions{}, err
	}

	definition.SyncIntervalInSeconds, err = parse.Duration(b.options.SyncInterval)
	if err != nil {
		return Definitions{}, err
	}

	return Definitions{
		SourceKind: armkubernetesconfiguration.SourceKindTypeBucket,
		Bucket:     definition,
	}, nil
}

// GeneratePatch returns a bucket patch carrying only supplied fields. An
// empty result means the caller supplied no bucket parameters at all.
func (b *bucketGenerator) GeneratePatch() (PatchDefinitions, error) {
	err := b.validate(false)
	if err != nil {
		return PatchDefinitions{}, err
	}

	patch := &armkubernetesconfiguration.BucketPatchDefinition{
		URL:          stringPtr(b.options.URL),
		BucketName:   stringPtr(b.options.BucketName),
		AccessKey:    stringPtr(b.options.BucketAccessKey),
		LocalAuthRef: stringPtr(b.options.LocalAuthRef),
	}

	if b.options.BucketInsecure {
		patch.Insecure = to.Ptr(true)
	}

	patch.TimeoutInSeconds, err = parse.Duration(b.options.Timeout)
	if err != nil {
		return PatchDefinitions{}, err
	}

	patch.SyncIntervalInSeconds, err = parse.Duration(b.options.SyncInterval)
	if err != nil {
		return PatchDefinitions{}, err
	}

	if isEmptyBucketPatch(patch) {
		return PatchDefinitions{}, nil
	}

	return PatchDefinitions{
		SourceKind: to.Ptr(armkubernetesconfiguration.SourceKindTypeBucket),
		Bucket:     patch,
	}, nil
}

// validate runs the bucket parameter checks. Credentials are only demanded on
// the create path: either an access-key pair or a local auth reference.
func (b *bucketGenerator) validate(requireAll bool) error {
	if requireAll {
		err := checkRequired(KindBucket, b.options, b.RequiredParams())
		if err != nil {
			return err
		}
	}

	err := checkForbidden(KindBucket, b.options, b.ForbiddenParams())
	if err != nil {
		return err
	}

	err = parse.ValidateDuration(FlagTimeout, b.options.Timeout)
	if err != nil {
		return err
	}

	err = parse.ValidateDuration(FlagSyncInterval, b.options.SyncInterval)
	if err != nil {
		return err
	}

	if requireAll && b.options.LocalAuthRef == "" &&
		(b.options.BucketAccessKey == "" || b.options.BucketSecretKey == "") {
		return ErrMissingBucketCredentials
	}

	return nil
}

// isEmptyBucketPatch reports whether every patch field is unset.
func isEmptyBucketPatch(patch *armkubernetesconfiguration.BucketPatchDefinition) bool {
	return patch.URL == nil && patch.BucketName == nil && patch.AccessKey == nil &&
		patch.LocalAuthRef == nil && patch.Insecure == nil &&
		patch.TimeoutInSeconds == nil && patch.SyncIntervalInSeconds == nil
}
