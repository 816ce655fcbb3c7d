package direction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDirection_OppositeIsInvolution(t *testing.T) {
	for _, d := range All {
		assert.NotEqual(t, d, d.Opposite(), "направление %s не должно совпадать с противоположным", d)
		assert.Equal(t, d, d.Opposite().Opposite(), "двойное отражение %s должно вернуть исходное", d)
		assert.Equal(t, d.Vec3().Mul(-1), d.Opposite().Vec3())
	}
}

func TestDirection_CanonicalOrder(t *testing.T) {
	got := make([]string, 0, len(All))
	for _, d := range All {
		got = append(got, d.String())
	}
	assert.Equal(t, []string{"west", "east", "south", "north", "down", "up"}, got)

	assert.Len(t, Sides, 7)
	assert.Equal(t, None, Sides[6], "None должна быть последней")
	_, ok := None.Direction()
	assert.False(t, ok)
}

func TestDirection_Parse(t *testing.T) {
	d, err := ParseDirection("north")
	require.NoError(t, err)
	assert.Equal(t, North, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)

	s, err := ParseSide("none")
	require.NoError(t, err)
	assert.Equal(t, None, s)
}

func TestDirectionMap_GetSetMap(t *testing.T) {
	var m DirectionMap[int]
	for i, d := range All {
		m.Set(d, i+1)
	}
	assert.Equal(t, DirectionMap[int]{West: 1, East: 2, South: 3, North: 4, Down: 5, Up: 6}, m)

	doubled := MapDirections(m, func(v int) bool { return v%2 == 0 })
	assert.False(t, doubled.Get(West))
	assert.True(t, doubled.Get(East))

	visited := 0
	for d, v := range m.All() {
		assert.Equal(t, m.Get(d), v)
		visited++
	}
	assert.Equal(t, 6, visited)
}

func TestSideMap_GetSetMap(t *testing.T) {
	m := UniformSides("a")
	m.Set(None, "free")

	assert.Equal(t, "free", m.Get(None))
	assert.Equal(t, "a", m.Get(Up.Side()))

	lengths := MapSides(m, func(s string) int { return len(s) })
	assert.Equal(t, 4, lengths.None)
	assert.Equal(t, 1, lengths.West)
}

func TestDirectionMap_InvalidIndexPanics(t *testing.T) {
	var m DirectionMap[bool]
	assert.Panics(t, func() { m.Get(Direction(42)) })
}

func TestDirectionMap_UnmarshalYAML(t *testing.T) {
	var scalar DirectionMap[bool]
	require.NoError(t, yaml.Unmarshal([]byte("true"), &scalar))
	assert.Equal(t, Uniform(true), scalar)

	var fallback DirectionMap[int]
	require.NoError(t, yaml.Unmarshal([]byte("{all: 1, z: 2, up: 3}"), &fallback))
	assert.Equal(t, DirectionMap[int]{West: 1, East: 1, South: 1, North: 1, Down: 2, Up: 3}, fallback)

	var bad DirectionMap[int]
	assert.Error(t, yaml.Unmarshal([]byte("{left: 1}"), &bad))
}
