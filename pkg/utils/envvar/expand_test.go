package envvar_test

import (
	"testing"

	"github.com/arcflux/arcflux/pkg/utils/envvar"
	"github.com/stretchr/testify/assert"
)

func TestExpand_SetVariable(t *testing.T) {
	t.Setenv("ARCFLUX_TEST_TOKEN", "s3cr3t")

	assert.Equal(t, "s3cr3t", envvar.Expand("${ARCFLUX_TEST_TOKEN}"))
	assert.Equal(t, "token=s3cr3t!", envvar.Expand("token=${ARCFLUX_TEST_TOKEN}!"))
}

func TestExpand_UnsetVariableUsesDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fallback", envvar.Expand("${ARCFLUX_TEST_UNSET:-fallback}"))
	assert.Empty(t, envvar.Expand("${ARCFLUX_TEST_UNSET:-}"))
}

func TestExpand_UnsetVariableWithoutDefault(t *testing.T) {
	t.Parallel()

	assert.Empty(t, envvar.Expand("${ARCFLUX_TEST_UNSET_NO_DEFAULT}"))
}

func TestExpand_PlainValuePassesThrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain-token", envvar.Expand("plain-token"))
	assert.Empty(t, envvar.Expand(""))
}
