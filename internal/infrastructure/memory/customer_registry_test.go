package memory_test

import (
	"sync"
	"testing"

	"pcshop/internal/domain"
	"pcshop/internal/infrastructure/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRegistry(t *testing.T) {
	t.Parallel()

	t.Run("same normalized name shares one instance", func(t *testing.T) {
		t.Parallel()

		r := memory.NewCustomerRegistry()
		a, err := r.GetCustomer("John", "Smith")
		require.NoError(t, err)
		b, err := r.GetCustomer("  JOHN ", "smith ")
		require.NoError(t, err)

		assert.Same(t, a, b)
	})

	t.Run("distinct names get distinct instances", func(t *testing.T) {
		t.Parallel()

		r := memory.NewCustomerRegistry()
		a, err := r.GetCustomer("John", "Smith")
		require.NoError(t, err)
		b, err := r.GetCustomer("Jane", "Smith")
		require.NoError(t, err)

		assert.NotSame(t, a, b)
		assert.False(t, a.Equal(b))
	})

	t.Run("invalid names are rejected", func(t *testing.T) {
		t.Parallel()

		r := memory.NewCustomerRegistry()
		_, err := r.GetCustomer("", "smith")
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = r.GetCustomer("j0hn", "smith")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("concurrent lookups create at most one instance", func(t *testing.T) {
		t.Parallel()

		r := memory.NewCustomerRegistry()
		const workers = 16

		results := make([]any, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				c, err := r.GetCustomer("john", "smith")
				assert.NoError(t, err)
				results[i] = c
			}(i)
		}
		wg.Wait()

		for i := 1; i < workers; i++ {
			assert.Same(t, results[0], results[i])
		}
	})
}
