package pc_test

import (
	"testing"

	"pcshop/internal/domain"
	"pcshop/internal/domain/pc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPresetModel(t *testing.T) {
	t.Parallel()

	t.Run("normalizes name and manufacturer", func(t *testing.T) {
		t.Parallel()

		m, err := pc.NewPresetModel(" ThinkPad  X1 ", "  LENOVO ", []string{"cpu"})
		require.NoError(t, err)
		assert.Equal(t, "thinkpad x1", m.ModelName())
		assert.Equal(t, "lenovo", m.Manufacturer())
	})

	t.Run("model names allow digits and hyphens", func(t *testing.T) {
		t.Parallel()

		m, err := pc.NewPresetModel("XPS-13 9310", "dell", []string{"cpu"})
		require.NoError(t, err)
		assert.Equal(t, "xps-13 9310", m.ModelName())
	})

	t.Run("manufacturer allows letters only", func(t *testing.T) {
		t.Parallel()

		_, err := pc.NewPresetModel("xps", "d3ll", []string{"cpu"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects empty parts", func(t *testing.T) {
		t.Parallel()

		_, err := pc.NewPresetModel("xps", "dell", nil)
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = pc.NewPresetModel("xps", "dell", []string{})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("copies the parts list", func(t *testing.T) {
		t.Parallel()

		parts := []string{"cpu", "ram"}
		m, err := pc.NewPresetModel("xps", "dell", parts)
		require.NoError(t, err)

		parts[0] = "mutated"
		assert.Equal(t, []string{"cpu", "ram"}, m.Parts())
	})
}

func TestPresetModelEqual(t *testing.T) {
	t.Parallel()

	a, err := pc.NewPresetModel("xps", "dell", []string{"cpu", "ram"})
	require.NoError(t, err)
	b, err := pc.NewPresetModel("XPS", "Dell", []string{"cpu", "ram"})
	require.NoError(t, err)
	c, err := pc.NewPresetModel("xps", "dell", []string{"cpu"})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "same name and manufacturer but different parts are distinct entries")
	assert.False(t, a.Equal(nil))
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}
