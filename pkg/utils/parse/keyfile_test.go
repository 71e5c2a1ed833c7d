package parse_test

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/arcflux/arcflux/pkg/utils/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataFromKeyOrFile_InlineValue(t *testing.T) {
	t.Parallel()

	data, err := parse.DataFromKeyOrFile("aW5saW5l", "")
	require.NoError(t, err)
	assert.Equal(t, "aW5saW5l", data)
}

func TestDataFromKeyOrFile_FileContentsAreEncoded(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(path, []byte("raw key material"), 0o600))

	data, err := parse.DataFromKeyOrFile("", path)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("raw key material")), data)
}

func TestDataFromKeyOrFile_BothSuppliedFails(t *testing.T) {
	t.Parallel()

	_, err := parse.DataFromKeyOrFile("value", "/tmp/key")
	require.ErrorIs(t, err, parse.ErrMutuallyExclusiveArguments)
}

func TestDataFromKeyOrFile_NeitherSupplied(t *testing.T) {
	t.Parallel()

	data, err := parse.DataFromKeyOrFile("", "")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestDataFromKeyOrFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := parse.DataFromKeyOrFile("", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestFromBase64_ToleratesMissingPadding(t *testing.T) {
	t.Parallel()

	padded := base64.StdEncoding.EncodeToString([]byte("hello!"))

	decoded, err := parse.FromBase64(padded)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello!"), decoded)

	unpadded := base64.RawStdEncoding.EncodeToString([]byte("hello!"))

	decoded, err = parse.FromBase64(unpadded)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello!"), decoded)
}

func TestFromBase64_InvalidData(t *testing.T) {
	t.Parallel()

	_, err := parse.FromBase64("not base64 at all!!!")
	require.Error(t, err)
}

func TestToBase64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "c2VjcmV0", parse.ToBase64("secret"))
}
