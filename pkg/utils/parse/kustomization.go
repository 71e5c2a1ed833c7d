package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Kustomization is the flag-level shape of a single --kustomization value
// before it is validated and converted into a wire definition.
type Kustomization struct {
	Name          string
	Path          string
	DependsOn     []string
	Timeout       string
	SyncInterval  string
	RetryInterval string
	Prune         bool
	Force         bool
	// Validation is a legacy v1-only setting. It is accepted for
	// compatibility but never sent on the wire.
	Validation string
}

// Kustomizations parses repeated --kustomization flag values. Each value is a
// space-separated list of key=value pairs, e.g.
//
//	name=infra path=./infra prune=true depends_on=[apps,sources]
func Kustomizations(values []string) ([]Kustomization, error) {
	result := make([]Kustomization, 0, len(values))

	for _, value := range values {
		kustomization, err := parseKustomization(value)
		if err != nil {
			return nil, err
		}

		result = append(result, kustomization)
	}

	return result, nil
}

func parseKustomization(value string) (Kustomization, error) {
	var kustomization Kustomization

	pairs := strings.Fields(value)
	if len(pairs) == 0 {
		return kustomization, fmt.Errorf("%w: empty definition", ErrInvalidKustomization)
	}

	for _, pair := range pairs {
		key, val, found := strings.Cut(pair, "=")
		if !found {
			return kustomization, fmt.Errorf(
				"%w: %q is not a key=value pair", ErrInvalidKustomization, pair)
		}

		err := setKustomizationField(&kustomization, key, val)
		if err != nil {
			return kustomization, err
		}
	}

	if kustomization.Name == "" {
		return kustomization, fmt.Errorf(
			"%w: a name key is required in %q", ErrInvalidKustomization, value)
	}

	return kustomization, nil
}

func setKustomizationField(kustomization *Kustomization, key, value string) error {
	switch strings.ToLower(key) {
	case "name":
		kustomization.Name = value
	case "path":
		kustomization.Path = value
	case "depends_on", "dependson":
		dependencies, err := Dependencies(value)
		if err != nil {
			return err
		}

		kustomization.DependsOn = dependencies
	case "timeout":
		kustomization.Timeout = value
	case "sync_interval", "interval":
		kustomization.SyncInterval = value
	case "retry_interval":
		kustomization.RetryInterval = value
	case "prune":
		return setBoolField(&kustomization.Prune, key, value)
	case "force":
		return setBoolField(&kustomization.Force, key, value)
	case "validation":
		kustomization.Validation = value
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalidKustomization, key)
	}

	return nil
}

func setBoolField(field *bool, key, value string) error {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%w: %s must be true or false, got %q",
			ErrInvalidKustomization, key, value)
	}

	*field = parsed

	return nil
}
