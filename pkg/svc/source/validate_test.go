package source_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/pem"
	"testing"

	"github.com/arcflux/arcflux/pkg/svc/source"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

// generateKeyPair returns a PEM-encoded OpenSSH private key and a matching
// known_hosts line, both base64-encoded the way the flags deliver them.
func generateKeyPair(t *testing.T) (privateKey, knownHosts string) {
	t.Helper()

	public, private, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	block, err := ssh.MarshalPrivateKey(private, "")
	require.NoError(t, err)

	sshPublic, err := ssh.NewPublicKey(public)
	require.NoError(t, err)

	knownHostsLine := "github.com " + string(ssh.MarshalAuthorizedKey(sshPublic))

	return base64.StdEncoding.EncodeToString(pem.EncodeToMemory(block)),
		base64.StdEncoding.EncodeToString([]byte(knownHostsLine))
}

func TestValidatePrivateKey_WellFormedKey(t *testing.T) {
	t.Parallel()

	privateKey, _ := generateKeyPair(t)

	require.NoError(t, source.ValidatePrivateKey(privateKey))
}

func TestValidatePrivateKey_RejectsGarbage(t *testing.T) {
	t.Parallel()

	err := source.ValidatePrivateKey(base64.StdEncoding.EncodeToString([]byte("not a key")))
	require.ErrorIs(t, err, source.ErrInvalidPrivateKey)
}

func TestValidatePrivateKey_RejectsBadBase64(t *testing.T) {
	t.Parallel()

	err := source.ValidatePrivateKey("!!! definitely not base64 !!!")
	require.ErrorIs(t, err, source.ErrInvalidPrivateKey)
}

func TestValidateKnownHosts_SingleEntry(t *testing.T) {
	t.Parallel()

	_, knownHosts := generateKeyPair(t)

	require.NoError(t, source.ValidateKnownHosts(knownHosts))
}

func TestValidateKnownHosts_MultipleEntries(t *testing.T) {
	t.Parallel()

	public1, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	public2, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	sshPublic1, err := ssh.NewPublicKey(public1)
	require.NoError(t, err)

	sshPublic2, err := ssh.NewPublicKey(public2)
	require.NoError(t, err)

	entries := "github.com " + string(ssh.MarshalAuthorizedKey(sshPublic1)) +
		"gitlab.com " + string(ssh.MarshalAuthorizedKey(sshPublic2))

	require.NoError(t, source.ValidateKnownHosts(
		base64.StdEncoding.EncodeToString([]byte(entries))))
}

func TestValidateKnownHosts_RejectsMalformedEntry(t *testing.T) {
	t.Parallel()

	err := source.ValidateKnownHosts(
		base64.StdEncoding.EncodeToString([]byte("github.com not-a-key\n")))
	require.ErrorIs(t, err, source.ErrInvalidKnownHosts)
}

func TestValidateKnownHosts_RejectsEmptyData(t *testing.T) {
	t.Parallel()

	err := source.ValidateKnownHosts(base64.StdEncoding.EncodeToString([]byte("  \n")))
	require.ErrorIs(t, err, source.ErrInvalidKnownHosts)
}
