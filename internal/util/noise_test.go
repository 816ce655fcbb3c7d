package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerlinField_Deterministic(t *testing.T) {
	a := NewPerlinField(1)
	b := NewPerlinField(1)

	for _, p := range [][2]float64{{0.1, 0.2}, {12.5, -3.25}, {-100.7, 44.1}} {
		assert.Equal(t, a.Noise2D(p[0], p[1]), b.Noise2D(p[0], p[1]), "одинаковый сид должен давать одинаковый шум")
	}
}

func TestPerlinField_IndependentSeeds(t *testing.T) {
	a := NewPerlinField(1)
	b := NewPerlinField(2)

	differs := false
	for i := 0; i < 32; i++ {
		x := float64(i)*0.37 + 0.11
		if a.Noise2D(x, x*0.5) != b.Noise2D(x, x*0.5) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "разные сиды должны давать разные поля")
}

func TestLayeredNoise2D_Bounded(t *testing.T) {
	octaves := []Octave{
		{Field: NewPerlinField(1), Weight: 0.9, Frequency: 1},
		{Field: NewPerlinField(2), Weight: 0.09, Frequency: 10},
		{Field: NewPerlinField(3), Weight: 0.009, Frequency: 100},
	}
	scale := math.Sqrt2 / 1000

	for x := -2000.0; x < 2000; x += 97.3 {
		v := LayeredNoise2D(octaves, x, -x*0.7, scale)
		assert.LessOrEqual(t, math.Abs(v), 1.0)
	}
	assert.Equal(t, 0.0, LayeredNoise2D(nil, 1, 2, scale))
}
