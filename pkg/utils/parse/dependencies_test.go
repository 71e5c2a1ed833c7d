package parse_test

import (
	"testing"

	"github.com/arcflux/arcflux/pkg/utils/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencies_Empty(t *testing.T) {
	t.Parallel()

	names, err := parse.Dependencies("")
	require.NoError(t, err)
	assert.Nil(t, names)
}

func TestDependencies_Formats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "comma separated", value: "apps,infra", want: []string{"apps", "infra"}},
		{name: "space separated", value: "apps infra", want: []string{"apps", "infra"}},
		{name: "bracketed", value: "[apps, infra]", want: []string{"apps", "infra"}},
		{name: "single name", value: "apps", want: []string{"apps"}},
		{name: "extra whitespace", value: "  apps ,  infra  ", want: []string{"apps", "infra"}},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			names, err := parse.Dependencies(testCase.value)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, names)
		})
	}
}

func TestDependencies_UnbalancedBrackets(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"[apps", "apps]"} {
		t.Run(value, func(t *testing.T) {
			t.Parallel()

			_, err := parse.Dependencies(value)
			require.ErrorIs(t, err, parse.ErrInvalidDependencies)
		})
	}
}

func TestDependencies_OnlySeparators(t *testing.T) {
	t.Parallel()

	_, err := parse.Dependencies("[ , ]")
	require.ErrorIs(t, err, parse.ErrInvalidDependencies)
}
