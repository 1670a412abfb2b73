package pc

import (
	"fmt"
	"strings"
	"unicode"

	"pcshop/internal/domain"
)

// Model is the polymorphic contract shared by preset and custom PC
// configurations: a normalized name and an ordered parts list.
type Model interface {
	ModelName() string
	Parts() []string
}

// normalizeModelName lower-cases, trims, and collapses whitespace. Model
// names additionally allow digits and hyphens on top of letters and spaces.
func normalizeModelName(s string) (string, error) {
	norm := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if norm == "" {
		return "", fmt.Errorf("model name: %w: cannot be empty", domain.ErrValidation)
	}
	for _, r := range norm {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' && r != '-' {
			return "", fmt.Errorf("model name: %w: character %q is not allowed", domain.ErrValidation, r)
		}
	}
	return norm, nil
}

// normalizeManufacturer applies the stricter letters-and-spaces rule used
// for person names.
func normalizeManufacturer(s string) (string, error) {
	norm := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if norm == "" {
		return "", fmt.Errorf("manufacturer: %w: cannot be empty", domain.ErrValidation)
	}
	for _, r := range norm {
		if !unicode.IsLetter(r) && r != ' ' {
			return "", fmt.Errorf("manufacturer: %w: character %q is not allowed", domain.ErrValidation, r)
		}
	}
	return norm, nil
}
