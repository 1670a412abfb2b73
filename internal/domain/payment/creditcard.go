package payment

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"pcshop/internal/domain"
)

const cardNumberLength = 8

// CreditCard is identified by its number alone; expiry and holder are
// descriptive. The card registry guarantees a single instance per number.
type CreditCard struct {
	number string
	expiry time.Time
	holder string
}

func NewCreditCard(number string, expiry time.Time, holder string) (*CreditCard, error) {
	if err := validateNumber(number); err != nil {
		return nil, err
	}
	if expiry.IsZero() {
		return nil, fmt.Errorf("credit card: %w: expiry date is required", domain.ErrValidation)
	}
	h, err := normalizeHolder(holder)
	if err != nil {
		return nil, err
	}
	return &CreditCard{number: number, expiry: expiry, holder: h}, nil
}

func (c *CreditCard) Number() string { return c.number }

func (c *CreditCard) Expiry() time.Time { return c.expiry }

func (c *CreditCard) Holder() string { return c.holder }

// Valid reports whether the expiry date is strictly in the future.
func (c *CreditCard) Valid() bool {
	return c.expiry.After(time.Now())
}

// Equal compares by number only: two cards with the same number are the
// same card regardless of expiry or holder.
func (c *CreditCard) Equal(other *CreditCard) bool {
	return other != nil && c.number == other.number
}

func (c *CreditCard) String() string {
	return c.number + " " + c.holder + " " + c.expiry.Format(time.RFC3339)
}

func validateNumber(number string) error {
	if number == "" {
		return fmt.Errorf("credit card: %w: number is required", domain.ErrValidation)
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return fmt.Errorf("credit card: %w: character %q in number is not allowed", domain.ErrValidation, r)
		}
	}
	if len(number) != cardNumberLength {
		return fmt.Errorf("credit card: %w: number must have %d digits", domain.ErrValidation, cardNumberLength)
	}
	return nil
}

func normalizeHolder(holder string) (string, error) {
	norm := strings.Join(strings.Fields(strings.ToLower(holder)), " ")
	if norm == "" {
		return "", fmt.Errorf("credit card: %w: holder cannot be empty", domain.ErrValidation)
	}
	for _, r := range norm {
		if !unicode.IsLetter(r) && r != ' ' {
			return "", fmt.Errorf("credit card: %w: character %q in holder is not allowed", domain.ErrValidation, r)
		}
	}
	return norm, nil
}
