package parse

import (
	"fmt"
	"strings"
)

// Dependencies splits a comma- or space-delimited list of kustomization names
// into an ordered sequence. Surrounding brackets are tolerated so callers can
// pass either "a,b" or "[a, b]". An empty input yields a nil slice.
//
// Dependency names are not checked against the existing kustomization set:
// forward references to kustomizations created later are permitted.
func Dependencies(value string) ([]string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}

	if strings.HasPrefix(trimmed, "[") != strings.HasSuffix(trimmed, "]") {
		return nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrInvalidDependencies, value)
	}

	trimmed = strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]")

	names := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ' '
	})

	result := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		result = append(result, name)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: %q contains no names", ErrInvalidDependencies, value)
	}

	return result, nil
}
