package implementations

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/direction"
)

const cactusInset = 1.0 / 16

func cactus() block.Definition {
	tiles := direction.Uniform("cactus_side")
	tiles.Up = "cactus_top"
	tiles.Down = "cactus_bottom"

	body := block.Cube(tiles)
	body.From = vec.Vec3Float32{X: cactusInset, Y: cactusInset}
	body.To = vec.Vec3Float32{X: 1 - cactusInset, Y: 1 - cactusInset, Z: 1}
	// Боковые грани утоплены внутрь вокселя и видны всегда
	for _, d := range []direction.Direction{direction.West, direction.East, direction.South, direction.North} {
		body.Tiles.Ptr(d).Cull = direction.None
	}

	return block.Definition{
		Culls: direction.DirectionMap[bool]{Down: true, Up: true},
		Parts: []block.Part{body},
	}
}

func init() {
	register("cactus", cactus())
}
