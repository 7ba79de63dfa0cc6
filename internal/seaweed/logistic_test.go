package seaweed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogisticCurve(t *testing.T) {
	t.Run("midpoint is half the ceiling", func(t *testing.T) {
		got := LogisticCurve(10, 100, 0.5, 10, 0)
		assert.InDelta(t, 50, got, 1e-9)
	})

	t.Run("offset shifts the whole curve", func(t *testing.T) {
		plain := LogisticCurve(3, 100, 0.5, 10, 0)
		shifted := LogisticCurve(3, 100, 0.5, 10, -25)
		assert.InDelta(t, plain-25, shifted, 1e-9)
	})
}

func TestFarmAreaPerDay(t *testing.T) {
	t.Run("trend is non-decreasing", func(t *testing.T) {
		prev := FarmAreaPerDay(0)
		for day := 1; day <= 1000; day++ {
			got := FarmAreaPerDay(day)
			assert.GreaterOrEqual(t, got, prev, "day %d", day)
			prev = got
		}
	})

	t.Run("saturates at the fitted ceiling", func(t *testing.T) {
		got := FarmAreaPerDay(100000)
		assert.InDelta(t, buildOutMaxL+buildOutOff, got, 1e-6)
	})
}
