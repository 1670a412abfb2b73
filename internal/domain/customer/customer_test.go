package customer_test

import (
	"testing"

	"pcshop/internal/domain"
	"pcshop/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer(t *testing.T) {
	t.Parallel()

	t.Run("delegates to name", func(t *testing.T) {
		t.Parallel()

		n, err := customer.NewName("Jane", "Doe")
		require.NoError(t, err)
		c, err := customer.New(n)
		require.NoError(t, err)

		assert.Equal(t, "jane", c.FirstName())
		assert.Equal(t, "doe", c.LastName())
		assert.Equal(t, "jane - doe", c.String())
	})

	t.Run("equality by name", func(t *testing.T) {
		t.Parallel()

		n1, err := customer.NewName("Jane", "Doe")
		require.NoError(t, err)
		n2, err := customer.NewName("  JANE ", "doe")
		require.NoError(t, err)

		a, err := customer.New(n1)
		require.NoError(t, err)
		b, err := customer.New(n2)
		require.NoError(t, err)

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(nil))
	})

	t.Run("rejects zero name", func(t *testing.T) {
		t.Parallel()

		_, err := customer.New(customer.Name{})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
