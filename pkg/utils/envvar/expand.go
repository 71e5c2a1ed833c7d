// Package envvar expands ${VAR} placeholders in flag values, so credentials
// can be passed as '${GIT_TOKEN}' instead of appearing in shell history.
package envvar

import (
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// pattern matches ${VAR_NAME} and ${VAR_NAME:-default} placeholders.
// Groups: 1 = variable name, 2 = optional default value (after :-).
var pattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// defaultSyntaxMarker is the delimiter for default value syntax.
const defaultSyntaxMarker = ":-"

// Expand replaces ${VAR_NAME} and ${VAR_NAME:-default} placeholders with
// their environment variable values. An unset variable resolves to its
// default when one was given, otherwise to the empty string with a warning.
func Expand(value string) string {
	if value == "" {
		return value
	}

	return pattern.ReplaceAllStringFunc(value, expandMatch)
}

// expandMatch expands a single placeholder.
func expandMatch(match string) string {
	groups := pattern.FindStringSubmatch(match)
	if len(groups) < 2 {
		return match
	}

	envValue, exists := os.LookupEnv(groups[1])
	if exists {
		return envValue
	}

	if len(groups) > 2 && groups[2] != "" {
		return groups[2]
	}

	// ${VAR:-} is an explicit empty default, no warning needed.
	if strings.Contains(match, defaultSyntaxMarker) {
		return ""
	}

	slog.Warn("environment variable not set", "variable", groups[1])

	return ""
}
