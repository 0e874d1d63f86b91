package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityCompatible(t *testing.T) {
	t.Run("equal values match", func(t *testing.T) {
		assert.True(t, AvailabilityCompatible("Evenings", "Evenings"))
	})

	t.Run("different values do not match", func(t *testing.T) {
		assert.False(t, AvailabilityCompatible("Evenings", "Mornings"))
	})

	t.Run("Flexible dominates any value", func(t *testing.T) {
		assert.True(t, AvailabilityCompatible("Flexible", "Mornings"))
		assert.True(t, AvailabilityCompatible("Weekends", "Flexible"))
		assert.True(t, AvailabilityCompatible("Flexible", "Flexible"))
	})

	t.Run("absent values never match", func(t *testing.T) {
		assert.False(t, AvailabilityCompatible("", "Evenings"))
		assert.False(t, AvailabilityCompatible("Flexible", ""))
		assert.False(t, AvailabilityCompatible("", ""))
	})

	t.Run("symmetric", func(t *testing.T) {
		pairs := [][2]string{
			{"Evenings", "Mornings"},
			{"Flexible", "Evenings"},
			{"", "Flexible"},
			{"Weekends", "Weekends"},
		}
		for _, pair := range pairs {
			assert.Equal(t,
				AvailabilityCompatible(pair[0], pair[1]),
				AvailabilityCompatible(pair[1], pair[0]),
				"AvailabilityCompatible(%q, %q) must be symmetric", pair[0], pair[1])
		}
	})
}
