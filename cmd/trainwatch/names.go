package main

import (
	"fmt"
	"strings"

	"github.com/trainwatch/trainwatch-go/pkg/trainwatch"
	"github.com/trainwatch/trainwatch-go/pkg/trainwatch/record"
)

// ValidKindNames returns a sorted list of valid record kind names.
// Delegates to record.KindNames() as the single source of truth.
func ValidKindNames() []string {
	return record.KindNames()
}

// NormalizeKinds converts CLI string values to a record.Kind slice.
// It handles case-insensitivity, whitespace trimming, and duplicate removal.
func NormalizeKinds(values []string) ([]record.Kind, error) {
	if len(values) == 0 {
		return nil, nil
	}

	result := make([]record.Kind, 0, len(values))
	seen := make(map[record.Kind]struct{})

	for _, raw := range values {
		if strings.TrimSpace(raw) == "" {
			return nil, fmt.Errorf("empty kind provided (input: %q); valid kinds: %s", raw, strings.Join(ValidKindNames(), ", "))
		}

		k, ok := record.ParseKind(raw)
		if !ok {
			return nil, fmt.Errorf("unknown kind %q (valid: %s)", raw, strings.Join(ValidKindNames(), ", "))
		}

		if _, dup := seen[k]; dup {
			continue // ignore duplicates silently
		}
		seen[k] = struct{}{}
		result = append(result, k)
	}

	return result, nil
}

// ParseEngine converts the --engine value to a trainwatch.Engine.
func ParseEngine(name string) (trainwatch.Engine, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range trainwatch.EngineNames() {
		if name == e {
			return trainwatch.Engine(e), nil
		}
	}
	return "", fmt.Errorf("invalid engine %q: must be one of: %s", name, strings.Join(trainwatch.EngineNames(), ", "))
}
