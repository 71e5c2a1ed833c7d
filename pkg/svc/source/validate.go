package source

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/arcflux/arcflux/pkg/utils/parse"
	"golang.org/x/crypto/ssh"
)

// scpLikePattern matches scp-style git remotes such as git@github.com:org/repo.
//
//nolint:gochecknoglobals // Compiled once.
var scpLikePattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+:.+$`)

// httpsSchemes and sshSchemes classify git remote URL schemes for
// credential-consistency checks.
//
//nolint:gochecknoglobals // Static validation tables.
var (
	httpsSchemes = map[string]bool{"http": true, "https": true}
	sshSchemes   = map[string]bool{"ssh": true, "git": true}
)

// validateGitURL checks that the URL is a syntactically valid git remote and
// returns its scheme ("ssh" for scp-style remotes).
func validateGitURL(rawURL string) (string, error) {
	if scpLikePattern.MatchString(rawURL) && !strings.Contains(rawURL, "://") {
		return "ssh", nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidGitURL, rawURL, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if !httpsSchemes[scheme] && !sshSchemes[scheme] {
		return "", fmt.Errorf("%w: %q must use an ssh or https scheme", ErrInvalidGitURL, rawURL)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidGitURL, rawURL)
	}

	return scheme, nil
}

// validateURLWithParams checks that the supplied credentials are consistent
// with the URL scheme: ssh material demands an ssh remote, https credentials
// demand an https remote.
func validateURLWithParams(scheme string, options Options) error {
	sshCredentials := options.SSHPrivateKey != "" || options.SSHPrivateKeyFile != "" ||
		options.KnownHosts != "" || options.KnownHostsFile != ""
	httpsCredentials := options.HTTPSUser != "" || options.HTTPSKey != "" ||
		options.HTTPSCACert != "" || options.HTTPSCACertFile != ""

	if sshCredentials && httpsSchemes[scheme] {
		return fmt.Errorf(
			"%w: ssh credentials were provided for the https url %q",
			ErrCredentialSchemeMismatch, options.URL)
	}

	if httpsCredentials && !httpsSchemes[scheme] {
		return fmt.Errorf(
			"%w: https credentials were provided for the ssh url %q",
			ErrCredentialSchemeMismatch, options.URL)
	}

	return nil
}

// validateRepositoryRef checks that at most one of branch, tag, semver and
// commit is supplied. Supplying none is allowed; the controller then syncs
// the repository default branch.
func validateRepositoryRef(options Options) error {
	var supplied []string

	for flag, value := range map[string]string{
		FlagBranch: options.Branch,
		FlagTag:    options.Tag,
		FlagSemver: options.Semver,
		FlagCommit: options.Commit,
	} {
		if value != "" {
			supplied = append(supplied, flag)
		}
	}

	if len(supplied) > 1 {
		return fmt.Errorf("%w: specify at most one of %s, %s, %s, %s",
			ErrMutuallyExclusiveRef, FlagBranch, FlagTag, FlagSemver, FlagCommit)
	}

	return nil
}

// ValidateKnownHosts checks that base64-encoded known-hosts data parses as
// one or more OpenSSH known_hosts entries.
func ValidateKnownHosts(data string) error {
	decoded, err := parse.FromBase64(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKnownHosts, err)
	}

	remaining := decoded

	var entries int

	for len(strings.TrimSpace(string(remaining))) > 0 {
		_, _, _, _, rest, err := ssh.ParseKnownHosts(remaining)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidKnownHosts, err)
		}

		entries++
		remaining = rest
	}

	if entries == 0 {
		return fmt.Errorf("%w: no entries found", ErrInvalidKnownHosts)
	}

	return nil
}

// ValidatePrivateKey dry-run parses base64-encoded ssh private key data.
// Passphrase-protected keys are accepted: the controller receives the
// passphrase out of band.
func ValidatePrivateKey(data string) error {
	decoded, err := parse.FromBase64(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	_, err = ssh.ParsePrivateKey(decoded)
	if err == nil {
		return nil
	}

	var passphraseErr *ssh.PassphraseMissingError
	if errors.As(err, &passphraseErr) {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
}
