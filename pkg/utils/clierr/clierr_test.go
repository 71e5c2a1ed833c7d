package clierr_test

import (
	"errors"
	"testing"

	"github.com/arcflux/arcflux/pkg/utils/clierr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_RendersRecommendationOnOwnLine(t *testing.T) {
	t.Parallel()

	err := clierr.New("the cluster could not be found", "verify the --cluster-type value")

	assert.Equal(t,
		"the cluster could not be found\nRecommendation: verify the --cluster-type value",
		err.Error())
	assert.Equal(t, "verify the --cluster-type value", err.Recommendation())
}

func TestError_WithoutRecommendation(t *testing.T) {
	t.Parallel()

	err := clierr.New("something failed", "")

	assert.Equal(t, "something failed", err.Error())
	assert.Empty(t, err.Recommendation())
}

func TestWrap_PreservesErrorChain(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("not registered")
	err := clierr.Wrap(sentinel, "the provider is not registered", "run az provider register")

	require.ErrorIs(t, err, sentinel)

	var userError *clierr.Error

	require.ErrorAs(t, err, &userError)
	assert.Equal(t, "run az provider register", userError.Recommendation())
}
