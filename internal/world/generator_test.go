package world

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/block/implementations"
)

func testPack(t *testing.T) *block.Pack {
	t.Helper()
	pack, err := implementations.DefaultPack()
	require.NoError(t, err)
	return pack
}

func mustID(t *testing.T, pack *block.Pack, name string) block.ID {
	t.Helper()
	id, err := pack.Lookup(name)
	require.NoError(t, err)
	return id
}

func TestGenerateDeterministic(t *testing.T) {
	pack := testPack(t)
	gen := NewTerrainGenerator(DefaultTerrainConfig())

	for _, coord := range []vec.Vec3{{X: 0, Y: 0, Z: 0}, {X: 3, Y: -2, Z: -1}, {X: -5, Y: 7, Z: -4}} {
		a, err := gen.GenerateChunk(coord, pack)
		require.NoError(t, err)
		b, err := gen.GenerateChunk(coord, pack)
		require.NoError(t, err)

		assert.True(t, a.SameBlocks(b), "чанк %v", coord)
		assert.NotEqual(t, a.Nonce, b.Nonce)
	}

	// Другой экземпляр генератора дает тот же результат
	other := NewTerrainGenerator(DefaultTerrainConfig())
	a, err := gen.GenerateChunk(vec.Vec3{X: 1, Y: 1, Z: -1}, pack)
	require.NoError(t, err)
	b, err := other.GenerateChunk(vec.Vec3{X: 1, Y: 1, Z: -1}, pack)
	require.NoError(t, err)
	assert.True(t, a.SameBlocks(b))
}

func TestGenerateColumnBands(t *testing.T) {
	pack := testPack(t)
	gen := NewTerrainGenerator(DefaultTerrainConfig())
	air := block.AirID
	dirt := mustID(t, pack, "dirt")

	// Высота лежит в [-30, 30]: чанки z=-1 и z=0 содержат поверхность
	for _, cz := range []int{-1, 0} {
		coord := vec.Vec3{X: 2, Y: 3, Z: cz}
		c, err := gen.GenerateChunk(coord, pack)
		require.NoError(t, err)
		origin := coord.ChunkOrigin()

		for j := 0; j < ChunkSize; j += 7 {
			for i := 0; i < ChunkSize; i += 7 {
				h := gen.HeightAt(origin.X+i, origin.Y+j)
				require.GreaterOrEqual(t, h, -30)
				require.LessOrEqual(t, h, 30)

				for k := 0; k < ChunkSize; k++ {
					z := origin.Z + k
					got := c.Get(vec.Vec3{X: i, Y: j, Z: k})
					switch {
					case z > h:
						assert.Equal(t, air, got, "z=%d h=%d", z, h)
					case z < h && z >= h-4:
						assert.Equal(t, dirt, got, "z=%d h=%d", z, h)
					case z < h-9:
						assert.NotEqual(t, air, got, "z=%d h=%d", z, h)
					}
				}
			}
		}
	}
}

func TestGenerateFloor(t *testing.T) {
	pack := testPack(t)
	gen := NewTerrainGenerator(DefaultTerrainConfig())
	bedrock := mustID(t, pack, "bedrock")

	// FloorZ = -128 это нижний слой чанка z=-4
	c, err := gen.GenerateChunk(vec.Vec3{X: 0, Y: 0, Z: -4}, pack)
	require.NoError(t, err)
	for j := 0; j < ChunkSize; j++ {
		for i := 0; i < ChunkSize; i++ {
			assert.Equal(t, bedrock, c.Get(vec.Vec3{X: i, Y: j, Z: 0}))
		}
	}

	// Ниже пола и выше потолка остается воздух
	below, err := gen.GenerateChunk(vec.Vec3{X: 0, Y: 0, Z: -5}, pack)
	require.NoError(t, err)
	assert.True(t, below.IsEmpty())

	above, err := gen.GenerateChunk(vec.Vec3{X: 0, Y: 0, Z: 1}, pack)
	require.NoError(t, err)
	assert.True(t, above.IsEmpty())
}

func TestGenerateCeilingStopsColumn(t *testing.T) {
	pack := testPack(t)
	cfg := DefaultTerrainConfig()
	cfg.CeilingZ = 10
	cfg.MinHeight = 40
	cfg.MaxHeight = 40
	gen := NewTerrainGenerator(cfg)

	c, err := gen.GenerateChunk(vec.Vec3{}, pack)
	require.NoError(t, err)
	for k := 0; k < ChunkSize; k++ {
		got := c.Get(vec.Vec3{X: 4, Y: 4, Z: k})
		if k < 10 {
			assert.NotEqual(t, block.AirID, got, "z=%d", k)
		} else {
			assert.Equal(t, block.AirID, got, "z=%d", k)
		}
	}
}

func TestGenerateUnknownBlock(t *testing.T) {
	pack := testPack(t)
	cfg := DefaultTerrainConfig()
	cfg.Rules.Soil = "marble"
	gen := NewTerrainGenerator(cfg)

	c, err := gen.GenerateChunk(vec.Vec3{}, pack)
	require.Error(t, err)
	assert.Nil(t, c)

	var unknown *block.UnknownBlockError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "marble", unknown.Name)
	assert.Contains(t, err.Error(), "marble")
}

func TestWeightedTable(t *testing.T) {
	pack := testPack(t)
	table, err := NewWeightedTable(pack, []WeightedName{
		{Name: "stone", Weight: 3},
		{Name: "dirt", Weight: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	stone := mustID(t, pack, "stone")
	dirt := mustID(t, pack, "dirt")
	assert.Equal(t, stone, table.Pick(0))
	assert.Equal(t, stone, table.Pick(2))
	assert.Equal(t, dirt, table.Pick(3))
	assert.Equal(t, stone, table.Pick(4))

	counts := map[block.ID]int{}
	for r := uint32(0); r < 400; r++ {
		counts[table.Pick(r)]++
	}
	assert.Equal(t, 300, counts[stone])
	assert.Equal(t, 100, counts[dirt])

	_, err = NewWeightedTable(pack, nil)
	assert.Error(t, err)
	_, err = NewWeightedTable(pack, []WeightedName{{Name: "stone", Weight: 0}})
	assert.Error(t, err)
}

func TestWeightedTableOverflow(t *testing.T) {
	pack := testPack(t)

	_, err := NewWeightedTable(pack, []WeightedName{{Name: "grass", Weight: 1 << 32}})
	assert.ErrorIs(t, err, ErrWeightOverflow)

	_, err = NewWeightedTable(pack, []WeightedName{
		{Name: "grass", Weight: math.MaxUint32 - 1},
		{Name: "dirt", Weight: 2},
	})
	assert.ErrorIs(t, err, ErrWeightOverflow)
	assert.Contains(t, err.Error(), "dirt")

	table, err := NewWeightedTable(pack, []WeightedName{
		{Name: "grass", Weight: math.MaxUint32 - 2},
		{Name: "dirt", Weight: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, mustID(t, pack, "grass"), table.Pick(math.MaxUint32-3))
	assert.Equal(t, mustID(t, pack, "dirt"), table.Pick(math.MaxUint32-2))

	cfg := DefaultTerrainConfig()
	cfg.Rules.Surface = []WeightedName{{Name: "grass", Weight: 1 << 32}}
	c, err := NewTerrainGenerator(cfg).GenerateChunk(vec.Vec3{}, pack)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrWeightOverflow)
}

func TestDefaultSurfaceTable(t *testing.T) {
	rules := DefaultTerrainRules()
	total := 0
	for _, e := range rules.Surface {
		total += e.Weight
	}
	assert.Equal(t, 32, total)
}
