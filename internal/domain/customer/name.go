package customer

import (
	"fmt"
	"strings"
	"unicode"

	"pcshop/internal/domain"
)

// Name is an immutable person name. Both components are normalized on
// construction: lower-cased, trimmed, and internal whitespace collapsed to
// single spaces. Only letters and spaces survive validation, so two inputs
// that differ in case or spacing compare equal.
type Name struct {
	first string
	last  string
}

func NewName(first, last string) (Name, error) {
	f, err := normalizeNamePart(first)
	if err != nil {
		return Name{}, fmt.Errorf("first name: %w", err)
	}
	l, err := normalizeNamePart(last)
	if err != nil {
		return Name{}, fmt.Errorf("last name: %w", err)
	}
	return Name{first: f, last: l}, nil
}

// ParseName parses the "first - last" form produced by String. The round
// trip holds for any name whose components contain no literal " - ".
func ParseName(s string) (Name, error) {
	if strings.TrimSpace(s) == "" {
		return Name{}, fmt.Errorf("name: %w: cannot be empty", domain.ErrValidation)
	}
	parts := strings.Split(s, " - ")
	if len(parts) != 2 {
		return Name{}, fmt.Errorf("name: %w: expected %q, got %q", domain.ErrValidation, "first - last", s)
	}
	return NewName(parts[0], parts[1])
}

func (n Name) First() string { return n.first }
func (n Name) Last() string  { return n.last }

func (n Name) String() string { return n.first + " - " + n.last }

func normalizeNamePart(s string) (string, error) {
	norm := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if norm == "" {
		return "", fmt.Errorf("%w: cannot be empty", domain.ErrValidation)
	}
	for _, r := range norm {
		if !unicode.IsLetter(r) && r != ' ' {
			return "", fmt.Errorf("%w: character %q is not allowed", domain.ErrValidation, r)
		}
	}
	return norm, nil
}
