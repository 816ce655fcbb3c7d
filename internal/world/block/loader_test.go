package block

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/direction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const grassYAML = `
culls: true
parts:
  - type: cuboid
    faces:
      all: grass_side
      up: {tile: grass_top}
      down: dirt
`

const flowerYAML = `
parts:
  - type: rect
    p0: [0, 0, 0]
    p1: [1, 1, 0]
    p2: [1, 1, 1]
    face: {tile: flower, uv0: [0, 0.5]}
`

func TestParseDefinition_Cuboid(t *testing.T) {
	def, err := ParseDefinition([]byte(grassYAML))
	require.NoError(t, err)

	assert.Equal(t, direction.Uniform(true), def.Culls)
	require.Len(t, def.Parts, 1)

	cuboid, ok := def.Parts[0].(Cuboid)
	require.True(t, ok)
	assert.Equal(t, vec.Vec3Float32{X: 1, Y: 1, Z: 1}, cuboid.To)
	assert.Equal(t, "grass_top", cuboid.Tiles.Up.Name)
	assert.Equal(t, "dirt", cuboid.Tiles.Down.Name)
	assert.Equal(t, "grass_side", cuboid.Tiles.North.Name)
	assert.Equal(t, direction.North.Side(), cuboid.Tiles.North.Cull)
}

func TestParseDefinition_Rect(t *testing.T) {
	def, err := ParseDefinition([]byte(flowerYAML))
	require.NoError(t, err)

	assert.Equal(t, direction.Uniform(false), def.Culls)
	rect, ok := def.Parts[0].(Rect)
	require.True(t, ok)
	assert.Equal(t, direction.None, rect.Face.Cull)
	assert.Equal(t, vec.Vec2Float32{X: 0, Y: 0.5}, rect.Face.UV0)
	assert.Equal(t, vec.Vec2Float32{X: 1, Y: 0}, rect.Face.UV1)
}

func TestParseDefinition_UnknownPartType(t *testing.T) {
	_, err := ParseDefinition([]byte("parts: [{type: sphere}]"))
	assert.Error(t, err)
}

func TestLoadPackDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grass.yaml"), []byte(grassYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flower.yaml"), []byte(flowerYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0o644))

	pack, err := LoadPackDir(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, pack.Len())
	id, err := pack.Lookup("grass")
	require.NoError(t, err)

	grass, err := pack.Block(id)
	require.NoError(t, err)
	assert.Equal(t, 6, grass.QuadCount())
	assert.Equal(t, []string{"dirt", "flower", "grass_side", "grass_top"}, pack.Atlas.Tiles())
}

func TestValidateDefinition(t *testing.T) {
	assert.NoError(t, ValidateDefinition([]byte(grassYAML)))
	assert.NoError(t, ValidateDefinition([]byte(flowerYAML)))
	assert.NoError(t, ValidateDefinition([]byte("culls: {x: true, up: false}\nparts: []\n")))

	invalid := []string{
		"colour: red",
		"culls: sometimes",
		"culls: {sideways: true}",
		"parts: [{type: cuboid, faces: stone, from: [0, 0]}]",
		"parts: [{type: rect, p0: [0, 0, 0], p1: [1, 1, 0], face: flower}]",
		"parts: [{type: cuboid, faces: {tile: stone, cull: diagonal}}]",
	}
	for _, doc := range invalid {
		assert.Error(t, ValidateDefinition([]byte(doc)), doc)
	}
}

func TestParseDefinition_UniformTileObject(t *testing.T) {
	def, err := ParseDefinition([]byte("parts: [{type: cuboid, faces: {tile: glass, cull: none}}]"))
	require.NoError(t, err)

	cuboid := def.Parts[0].(Cuboid)
	for d, tile := range cuboid.Tiles.All() {
		assert.Equal(t, "glass", tile.Name, d.String())
		assert.Equal(t, direction.None, tile.Cull, d.String())
	}
}
