package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_ChunkCoordsNegative(t *testing.T) {
	// Отрицательные координаты должны округляться вниз, а не к нулю
	pos := Vec3{X: -1, Y: 31, Z: -33}

	assert.Equal(t, Vec3{X: -1, Y: 0, Z: -2}, pos.ToChunkCoords())
	assert.Equal(t, Vec3{X: 31, Y: 31, Z: 31}, pos.LocalInChunk())
	assert.Equal(t, pos, pos.ToChunkCoords().ChunkOrigin().Add(pos.LocalInChunk()))
}

func TestVec3_DistanceSquared(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 2, Z: 6}

	assert.Equal(t, 13, a.DistanceSquared(b))
	assert.Equal(t, 0, a.DistanceSquared(a))
}

func TestVec3Float_Floor(t *testing.T) {
	assert.Equal(t, Vec3{X: -1, Y: 0, Z: 5}, Vec3Float{X: -0.5, Y: 0.99, Z: 5}.Floor())
}

func TestVec3Float32_CrossNormalized(t *testing.T) {
	x := Vec3Float32{X: 2}
	y := Vec3Float32{Y: 3}

	assert.Equal(t, Vec3Float32{Z: 1}, x.Cross(y).Normalized())
	assert.Equal(t, Vec3Float32{}, Vec3Float32{}.Normalized())
}
