package block

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/direction"
)

// DefaultLight постоянный уровень освещения вершин (распространение света не реализовано)
const DefaultLight = 15

// Vertex запись вершины для рендерера. Порядок полей фиксирован:
// позиция, текстурные координаты, затенение, освещение.
type Vertex struct {
	Pos   vec.Vec3Float32
	UV    vec.Vec2Float32
	Shade float32
	Light uint32
}

// Quad четыре вершины одной прямоугольной грани
type Quad [4]Vertex

// Block определение типа блока
type Block struct {
	// Culls[d] == true: грань блока со стороны d полностью закрывает соседа за ней
	Culls direction.DirectionMap[bool]

	// Mesh четырехугольники для каждой грани и свободные (None)
	Mesh direction.SideMap[[]Quad]
}

// QuadCount возвращает общее число четырехугольников блока
func (b *Block) QuadCount() int {
	n := 0
	for _, quads := range b.Mesh.All() {
		n += len(quads)
	}
	return n
}
