package implementations

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/direction"
)

// liquid полупрозрачный блок с опущенной поверхностью.
// Не закрывает соседей, поэтому дно и берега остаются видимыми.
func liquid(tile string) block.Definition {
	body := block.Cube(direction.Uniform(tile))
	body.To = vec.Vec3Float32{X: 1, Y: 1, Z: 0.875}
	// Поверхность ниже верхней границы вокселя - не отсекаем её блоком сверху
	body.Tiles.Up.Cull = direction.None

	return block.Definition{Parts: []block.Part{body}}
}

func init() {
	register("water", liquid("water"))
	register("deep_water", liquid("deep_water"))
}
