package confirm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arcflux/arcflux/pkg/cli/ui/confirm"
	"github.com/stretchr/testify/assert"
)

func confirmWithInput(t *testing.T, input string) (bool, string) {
	t.Helper()

	restoreTTY := confirm.SetTTYCheckerForTests(func() bool { return true })
	defer restoreTTY()

	restoreStdin := confirm.SetStdinReaderForTests(strings.NewReader(input))
	defer restoreStdin()

	out := &bytes.Buffer{}

	answer := confirm.NewPrompter(out).Confirm("Delete it?")

	return answer, out.String()
}

func TestConfirm_Answers(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase y", input: "y\n", want: true},
		{name: "uppercase yes", input: "YES\n", want: true},
		{name: "padded yes", input: "  yes  \n", want: true},
		{name: "n declines", input: "n\n", want: false},
		{name: "empty line declines", input: "\n", want: false},
		{name: "anything else declines", input: "maybe\n", want: false},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			answer, _ := confirmWithInput(t, testCase.input)

			assert.Equal(t, testCase.want, answer)
		})
	}
}

func TestConfirm_PromptIncludesMessage(t *testing.T) {
	_, output := confirmWithInput(t, "y\n")

	assert.Contains(t, output, "Delete it?")
	assert.Contains(t, output, "(y/n)")
}

func TestConfirm_MissingNewlineDeclines(t *testing.T) {
	answer, _ := confirmWithInput(t, "y")

	assert.False(t, answer)
}

func TestConfirm_NonInteractiveDefaultsToYes(t *testing.T) {
	restore := confirm.SetTTYCheckerForTests(func() bool { return false })
	defer restore()

	out := &bytes.Buffer{}

	assert.True(t, confirm.NewPrompter(out).Confirm("Delete it?"))
	assert.Empty(t, out.String())
}
