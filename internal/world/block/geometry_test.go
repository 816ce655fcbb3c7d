package block

import (
	"testing"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/direction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCube_FaceNormalsAndShade(t *testing.T) {
	b, err := BuildBlock(Definition{
		Culls: direction.Uniform(true),
		Parts: []Part{Cube(direction.Uniform("stone"))},
	}, nil)
	require.NoError(t, err)

	expected := direction.DirectionMap[float32]{
		West: 0.8, East: 0.8, South: 0.6, North: 0.6, Down: 1, Up: 1,
	}

	for d, shade := range expected.All() {
		quads := b.Mesh.Get(d.Side())
		require.Len(t, quads, 1, "грань %s", d)

		q := quads[0]
		normal := q[1].Pos.Sub(q[0].Pos).Cross(q[3].Pos.Sub(q[0].Pos)).Normalized()
		assert.Equal(t, d.Vec3Float32(), normal, "нормаль грани %s должна смотреть наружу", d)

		for _, v := range q {
			assert.InDelta(t, shade, v.Shade, 1e-6)
			assert.Equal(t, uint32(DefaultLight), v.Light)
		}
	}
	assert.Empty(t, b.Mesh.None)
	assert.Equal(t, 6, b.QuadCount())
}

func TestRect_FourthCorner(t *testing.T) {
	r := Rect{
		P0:   vec.Vec3Float32{X: 0, Y: 0, Z: 0},
		P1:   vec.Vec3Float32{X: 1, Y: 1, Z: 0},
		P2:   vec.Vec3Float32{X: 1, Y: 1, Z: 1},
		Face: NewTile("flower"),
	}

	b, err := BuildBlock(Definition{Parts: []Part{r}}, nil)
	require.NoError(t, err)
	require.Len(t, b.Mesh.None, 1, "прямоугольник без стороны попадает в None")

	assert.Equal(t, vec.Vec3Float32{X: 0, Y: 0, Z: 1}, b.Mesh.None[0][3].Pos)
}

func TestCuboid_SkipsEmptyTiles(t *testing.T) {
	c := Cube(direction.DirectionMap[string]{Up: "grass_top"})
	faces := c.Faces()

	require.Len(t, faces, 1)
	assert.Equal(t, direction.Up.Side(), faces[0].Tile.Cull)
}

func TestAtlas_Layout(t *testing.T) {
	atlas := NewAtlas([]string{"e", "a", "c", "b", "d", "a"})

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, atlas.Tiles())
	assert.Equal(t, 4, atlas.Width(), "5 тайлов требуют сетку 4x4")

	uv, err := atlas.TileUV("b", vec.Vec2Float32{X: 0, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, vec.Vec2Float32{X: 0.25, Y: 0.25}, uv)

	uv, err = atlas.TileUV("d", vec.Vec2Float32{X: 0, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, vec.Vec2Float32{X: 0.75, Y: 0.25}, uv)

	_, err = atlas.TileUV("missing", vec.Vec2Float32{})
	assert.Error(t, err)
}

func TestBuildBlock_UnknownTile(t *testing.T) {
	atlas := NewAtlas([]string{"stone"})
	_, err := BuildBlock(Definition{Parts: []Part{Cube(direction.Uniform("dirt"))}}, atlas)
	assert.Error(t, err)
}

func TestCuboid_FacesFollowBounds(t *testing.T) {
	c := Cuboid{
		From:  vec.Vec3Float32{X: 0.25, Y: 0.25, Z: 0},
		To:    vec.Vec3Float32{X: 0.75, Y: 0.75, Z: 0.5},
		Tiles: direction.Uniform(NewTile("cactus")),
	}

	faces := c.Faces()
	require.Len(t, faces, 6)

	for _, f := range faces {
		p3 := f.P2.Sub(f.P1.Sub(f.P0))
		for _, p := range []vec.Vec3Float32{f.P0, f.P1, f.P2, p3} {
			assert.GreaterOrEqual(t, p.X, c.From.X)
			assert.LessOrEqual(t, p.X, c.To.X)
			assert.GreaterOrEqual(t, p.Y, c.From.Y)
			assert.LessOrEqual(t, p.Y, c.To.Y)
			assert.GreaterOrEqual(t, p.Z, c.From.Z)
			assert.LessOrEqual(t, p.Z, c.To.Z)
		}
	}

	up := faces[len(faces)-1]
	assert.Equal(t, vec.Vec3Float32{X: 0.25, Y: 0.25, Z: 0.5}, up.P0)
	assert.Equal(t, vec.Vec3Float32{X: 0.75, Y: 0.75, Z: 0.5}, up.P2)
}
