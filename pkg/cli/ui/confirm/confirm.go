// Package confirm provides confirmation prompt utilities for destructive operations.
package confirm

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/arcflux/arcflux/pkg/utils/notify"
)

// Test override variables with mutexes for thread safety.
var (
	//nolint:gochecknoglobals // dependency injection for tests
	stdinReaderMu sync.RWMutex
	//nolint:gochecknoglobals // dependency injection for tests
	stdinReaderOverride io.Reader

	//nolint:gochecknoglobals // dependency injection for tests
	ttyCheckerMu sync.RWMutex
	//nolint:gochecknoglobals // dependency injection for tests
	ttyCheckerOverride func() bool
)

// SetStdinReaderForTests overrides the stdin reader for testing.
// Returns a restore function that should be called to reset the override.
func SetStdinReaderForTests(reader io.Reader) func() {
	stdinReaderMu.Lock()

	previous := stdinReaderOverride
	stdinReaderOverride = reader

	stdinReaderMu.Unlock()

	return func() {
		stdinReaderMu.Lock()

		stdinReaderOverride = previous

		stdinReaderMu.Unlock()
	}
}

// SetTTYCheckerForTests overrides the TTY checker for testing.
// Returns a restore function that should be called to reset the override.
func SetTTYCheckerForTests(checker func() bool) func() {
	ttyCheckerMu.Lock()

	previous := ttyCheckerOverride
	ttyCheckerOverride = checker

	ttyCheckerMu.Unlock()

	return func() {
		ttyCheckerMu.Lock()

		ttyCheckerOverride = previous

		ttyCheckerMu.Unlock()
	}
}

// getStdinReader returns the stdin reader to use, respecting test overrides.
func getStdinReader() io.Reader {
	stdinReaderMu.RLock()
	defer stdinReaderMu.RUnlock()

	if stdinReaderOverride != nil {
		return stdinReaderOverride
	}

	return os.Stdin
}

// IsTTY returns true if stdin is connected to a terminal. Prompts are skipped
// in non-interactive environments (CI/pipelines).
func IsTTY() bool {
	ttyCheckerMu.RLock()

	override := ttyCheckerOverride

	ttyCheckerMu.RUnlock()

	if override != nil {
		return override()
	}

	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	// A character device means stdin is a terminal.
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// Prompter asks y/n questions on the terminal. When stdin is not a TTY the
// prompt is skipped and the answer defaults to yes, so pipelines that pass
// --yes or run non-interactively are never blocked on input.
type Prompter struct {
	out io.Writer
}

// NewPrompter creates a Prompter writing prompts to out.
func NewPrompter(out io.Writer) *Prompter {
	return &Prompter{out: out}
}

// Confirm asks the user to approve the described action. Returns true only
// when the user answers y or yes (case-insensitive), or when stdin is not
// interactive.
func (p *Prompter) Confirm(message string) bool {
	if !IsTTY() {
		return true
	}

	notify.WriteMessage(notify.Message{
		Type:    notify.WarningType,
		Content: message + " (y/n): ",
		Writer:  p.out,
	})

	reader := bufio.NewReader(getStdinReader())

	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	input = strings.TrimSpace(input)

	return strings.EqualFold(input, "y") || strings.EqualFold(input, "yes")
}
