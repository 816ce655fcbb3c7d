package implementations

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/direction"
)

// flower два пересекающихся диагональных прямоугольника
func flower(tile string) block.Definition {
	p := func(x, y, z float32) vec.Vec3Float32 { return vec.Vec3Float32{X: x, Y: y, Z: z} }
	return block.Definition{
		Parts: []block.Part{
			block.Rect{P0: p(0, 0, 0), P1: p(1, 1, 0), P2: p(1, 1, 1), Face: block.NewTile(tile)},
			block.Rect{P0: p(1, 0, 0), P1: p(0, 1, 0), P2: p(0, 1, 1), Face: block.NewTile(tile)},
		},
	}
}

func init() {
	register("wood", columnar("wood_side", "wood_top", "wood_top"))
	// Листва прозрачна: соседние грани не отсекаются
	leaves := solid("leaves")
	leaves.Culls = direction.Uniform(false)
	register("leaves", leaves)
	register("pumpkin", columnar("pumpkin_side", "pumpkin_top", "pumpkin_top"))
	register("flower", flower("flower"))
}
