package source

import "errors"

// Common errors for source generation.
var (
	// ErrUnknownKind is returned when the requested source kind is not git or bucket.
	ErrUnknownKind = errors.New("unknown source kind")

	// ErrRequiredArgumentMissing is returned when a parameter required by the
	// source kind was not supplied.
	ErrRequiredArgumentMissing = errors.New("required argument missing")

	// ErrUnrecognizedArgument is returned when a parameter that belongs to a
	// different source kind was supplied.
	ErrUnrecognizedArgument = errors.New("unrecognized argument for source kind")

	// ErrMutuallyExclusiveRef is returned when more than one of branch, tag,
	// semver and commit is supplied.
	ErrMutuallyExclusiveRef = errors.New("mutually exclusive repository ref arguments")

	// ErrInvalidGitURL is returned when the git URL is not a valid ssh or https remote.
	ErrInvalidGitURL = errors.New("invalid git repository url")

	// ErrCredentialSchemeMismatch is returned when credentials do not match
	// the URL scheme (ssh credentials with an https URL or vice versa).
	ErrCredentialSchemeMismatch = errors.New("credentials do not match url scheme")

	// ErrMissingBucketCredentials is returned when a bucket source has neither
	// an access-key pair nor a local auth reference.
	ErrMissingBucketCredentials = errors.New("bucket source requires credentials")

	// ErrInvalidKnownHosts is returned when the known-hosts data cannot be parsed.
	ErrInvalidKnownHosts = errors.New("invalid known hosts data")

	// ErrInvalidPrivateKey is returned when the ssh private key cannot be parsed.
	ErrInvalidPrivateKey = errors.New("invalid ssh private key")
)
