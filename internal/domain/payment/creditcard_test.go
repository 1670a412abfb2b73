package payment_test

import (
	"testing"
	"time"

	"pcshop/internal/domain"
	"pcshop/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreditCard(t *testing.T) {
	t.Parallel()

	expiry := time.Now().Add(24 * time.Hour)

	t.Run("normalizes holder", func(t *testing.T) {
		t.Parallel()

		c, err := payment.NewCreditCard("12345678", expiry, "  JANE   Doe ")
		require.NoError(t, err)
		assert.Equal(t, "jane doe", c.Holder())
		assert.Equal(t, "12345678", c.Number())
	})

	t.Run("rejects short number", func(t *testing.T) {
		t.Parallel()

		_, err := payment.NewCreditCard("1234567", expiry, "jane doe")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects long number", func(t *testing.T) {
		t.Parallel()

		_, err := payment.NewCreditCard("123456789", expiry, "jane doe")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects non-digit characters", func(t *testing.T) {
		t.Parallel()

		_, err := payment.NewCreditCard("1234abcd", expiry, "jane doe")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects zero expiry", func(t *testing.T) {
		t.Parallel()

		_, err := payment.NewCreditCard("12345678", time.Time{}, "jane doe")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects invalid holder", func(t *testing.T) {
		t.Parallel()

		_, err := payment.NewCreditCard("12345678", expiry, "j4ne")
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = payment.NewCreditCard("12345678", expiry, "  ")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCreditCardValid(t *testing.T) {
	t.Parallel()

	t.Run("future expiry is valid", func(t *testing.T) {
		t.Parallel()

		c, err := payment.NewCreditCard("12345678", time.Now().Add(time.Hour), "jane doe")
		require.NoError(t, err)
		assert.True(t, c.Valid())
	})

	t.Run("past expiry is invalid", func(t *testing.T) {
		t.Parallel()

		c, err := payment.NewCreditCard("12345678", time.Now().Add(-time.Hour), "jane doe")
		require.NoError(t, err)
		assert.False(t, c.Valid())
	})
}

func TestCreditCardEqual(t *testing.T) {
	t.Parallel()

	a, err := payment.NewCreditCard("12345678", time.Now().Add(time.Hour), "jane doe")
	require.NoError(t, err)
	b, err := payment.NewCreditCard("12345678", time.Now().Add(48*time.Hour), "john smith")
	require.NoError(t, err)
	c, err := payment.NewCreditCard("87654321", time.Now().Add(time.Hour), "jane doe")
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same number means same card")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
