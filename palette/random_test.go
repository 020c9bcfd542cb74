package palette

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomBaseColor_Ranges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	current := DefaultBaseColor

	for i := 0; i < 500; i++ {
		c := RandomBaseColor(rng, current)
		_, s, l := c.HSL()
		assert.GreaterOrEqual(t, l, 19.0, c.Hex())
		assert.LessOrEqual(t, l, 81.0, c.Hex())
		assert.GreaterOrEqual(t, s, 18.0, c.Hex())
		current = c
	}
}

func TestRandomBaseColor_SeededIsDeterministic(t *testing.T) {
	a := RandomBaseColor(rand.New(rand.NewSource(7)), DefaultBaseColor)
	b := RandomBaseColor(rand.New(rand.NewSource(7)), DefaultBaseColor)
	assert.Equal(t, a, b)
}

// scriptedRand replays fixed draws so each branch of RandomBaseColor can be pinned
type scriptedRand struct {
	floats    []float64
	intn      int
	intnCalls int
}

func (r *scriptedRand) Float64() float64 {
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	r.intnCalls++
	return r.intn % n
}

// countingRand records how often the fresh-hue branch ran
type countingRand struct {
	*rand.Rand
	intnCalls int
}

func (r *countingRand) Intn(n int) int {
	r.intnCalls++
	return r.Rand.Intn(n)
}

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestRandomBaseColor_Branches(t *testing.T) {
	// hue 356.25, so wandering crosses 0
	current := Color{200, 40, 50}

	tests := []struct {
		name      string
		rng       *scriptedRand
		wantHue   float64
		wantFresh bool
	}{
		{"wander to lower edge", &scriptedRand{floats: []float64{0.3, 0, 0.5, 0.5}}, 296.25, false},
		{"wander across zero", &scriptedRand{floats: []float64{0.99, 0.999, 0.5, 0.5}}, 56.13, false},
		{"no wander", &scriptedRand{floats: []float64{0.5, 0.5, 0.5, 0.5}}, 356.25, false},
		{"fresh hue", &scriptedRand{floats: []float64{0.29, 0.5, 0.5}, intn: 180}, 180, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RandomBaseColor(tt.rng, current)
			h, s, l := c.HSL()

			assert.InDelta(t, 0, hueDistance(tt.wantHue, h), 1, "hue %v", h)
			assert.InDelta(t, 60, s, 1)
			assert.InDelta(t, 50, l, 1)
			assert.Equal(t, tt.wantFresh, tt.rng.intnCalls == 1)
			assert.Empty(t, tt.rng.floats)
		})
	}
}

func TestRandomBaseColor_WanderStaysNearCurrentHue(t *testing.T) {
	rng := &countingRand{Rand: rand.New(rand.NewSource(99))}
	current := Color{200, 40, 50}
	currentHue, _, _ := current.HSL()

	const draws = 4000
	fresh := 0
	for i := 0; i < draws; i++ {
		before := rng.intnCalls
		c := RandomBaseColor(rng, current)
		if rng.intnCalls > before {
			fresh++
			continue
		}
		h, _, _ := c.HSL()
		// 8-bit rounding moves the hue by up to about 3 degrees at saturation 20, lightness 20
		require.LessOrEqual(t, hueDistance(currentHue, h), 64.0, "draw %d: %s hue %v", i, c.Hex(), h)
	}

	assert.InDelta(t, 0.3, float64(fresh)/draws, 0.04)
}
