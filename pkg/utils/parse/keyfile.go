package parse

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// DataFromKeyOrFile resolves an input that may be supplied either inline
// (already base64-encoded) or as a path to a file whose raw contents are
// base64-encoded before being returned. Supplying both is an error; supplying
// neither yields an empty string.
func DataFromKeyOrFile(value, filePath string) (string, error) {
	if value != "" && filePath != "" {
		return "", fmt.Errorf(
			"%w: provide either an inline value or a file path, not both",
			ErrMutuallyExclusiveArguments)
	}

	if filePath != "" {
		contents, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", filePath, err)
		}

		return base64.StdEncoding.EncodeToString(contents), nil
	}

	return value, nil
}

// ToBase64 encodes a string value to standard base64.
func ToBase64(value string) string {
	return base64.StdEncoding.EncodeToString([]byte(value))
}

// FromBase64 decodes standard base64, tolerating missing padding.
func FromBase64(value string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(value)
	if err == nil {
		return decoded, nil
	}

	decoded, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(value, "="))
	if rawErr != nil {
		return nil, fmt.Errorf("failed to decode base64 value: %w", err)
	}

	return decoded, nil
}
