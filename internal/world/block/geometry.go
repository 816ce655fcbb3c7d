package block

import (
	"fmt"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/direction"
)

// Tile описывает текстуру грани и сторону, по которой грань отсекается
type Tile struct {
	Name string          // Имя тайла в атласе; пустое имя - грань не строится
	UV0  vec.Vec2Float32 // Угол тайла в локальных координатах [0,1]
	UV1  vec.Vec2Float32 // Противоположный угол
	Cull direction.Side  // None - грань никогда не отсекается
}

// Face грань, заданная тремя углами; четвертый вычисляется как P2 - (P1 - P0)
type Face struct {
	P0, P1, P2 vec.Vec3Float32
	Tile       Tile
}

// Part часть геометрии блока. Все варианты раскладываются в общий список граней.
type Part interface {
	Faces() []Face
}

// Cuboid параллелепипед от From до To с текстурой на каждую грань
type Cuboid struct {
	From, To vec.Vec3Float32
	Tiles    direction.DirectionMap[Tile]
}

// Faces раскладывает параллелепипед на шесть граней (пустые тайлы пропускаются).
// Углы перечислены так, что нормаль (P1-P0)x(P3-P0) смотрит наружу.
func (c Cuboid) Faces() []Face {
	x0, y0, z0 := c.From.X, c.From.Y, c.From.Z
	x1, y1, z1 := c.To.X, c.To.Y, c.To.Z
	p := func(x, y, z float32) vec.Vec3Float32 { return vec.Vec3Float32{X: x, Y: y, Z: z} }

	corners := direction.DirectionMap[[3]vec.Vec3Float32]{
		West:  [3]vec.Vec3Float32{p(x0, y1, z0), p(x0, y0, z0), p(x0, y0, z1)},
		East:  [3]vec.Vec3Float32{p(x1, y0, z0), p(x1, y1, z0), p(x1, y1, z1)},
		South: [3]vec.Vec3Float32{p(x0, y0, z0), p(x1, y0, z0), p(x1, y0, z1)},
		North: [3]vec.Vec3Float32{p(x1, y1, z0), p(x0, y1, z0), p(x0, y1, z1)},
		Down:  [3]vec.Vec3Float32{p(x0, y1, z0), p(x1, y1, z0), p(x1, y0, z0)},
		Up:    [3]vec.Vec3Float32{p(x0, y0, z1), p(x1, y0, z1), p(x1, y1, z1)},
	}

	faces := make([]Face, 0, 6)
	for d, tile := range c.Tiles.All() {
		if tile.Name == "" {
			continue
		}
		pts := corners.Get(d)
		faces = append(faces, Face{P0: pts[0], P1: pts[1], P2: pts[2], Tile: tile})
	}
	return faces
}

// NewTile возвращает тайл на всю клетку атласа без отсечения
func NewTile(name string) Tile {
	return Tile{
		Name: name,
		UV0:  vec.Vec2Float32{X: 0, Y: 1},
		UV1:  vec.Vec2Float32{X: 1, Y: 0},
		Cull: direction.None,
	}
}

// Cube единичный куб; каждая грань отсекается по своему направлению
func Cube(tiles direction.DirectionMap[string]) Cuboid {
	c := Cuboid{To: vec.Vec3Float32{X: 1, Y: 1, Z: 1}}
	for d, name := range tiles.All() {
		tile := NewTile(name)
		tile.Cull = d.Side()
		c.Tiles.Set(d, tile)
	}
	return c
}

// Rect произвольный четырехугольник по трем углам
type Rect struct {
	P0, P1, P2 vec.Vec3Float32
	Face       Tile
}

// Faces возвращает единственную грань
func (r Rect) Faces() []Face {
	if r.Face.Name == "" {
		return nil
	}
	return []Face{{P0: r.P0, P1: r.P1, P2: r.P2, Tile: r.Face}}
}

// Definition исходное описание блока до раскладки в четырехугольники
type Definition struct {
	Culls direction.DirectionMap[bool]
	Parts []Part
}

// BuildBlock раскладывает описание в четырехугольники с атласными UV и затенением.
// atlas == nil оставляет UV в локальных координатах тайла.
func BuildBlock(def Definition, atlas *Atlas) (Block, error) {
	var mesh direction.SideMap[[]Quad]

	for _, part := range def.Parts {
		for _, face := range part.Faces() {
			quad, err := buildQuad(face, atlas)
			if err != nil {
				return Block{}, err
			}
			side := face.Tile.Cull
			if !side.Valid() {
				return Block{}, fmt.Errorf("недопустимая сторона отсечения %d", side)
			}
			mesh.Set(side, append(mesh.Get(side), quad))
		}
	}

	return Block{Culls: def.Culls, Mesh: mesh}, nil
}

// Shade возвращает множитель затенения грани по её нормали
func Shade(normal vec.Vec3Float32) float32 {
	return 1 - 0.2*abs32(normal.X) - 0.4*abs32(normal.Y)
}

func buildQuad(face Face, atlas *Atlas) (Quad, error) {
	uv0, uv1 := face.Tile.UV0, face.Tile.UV1
	if atlas != nil {
		var err error
		if uv0, err = atlas.TileUV(face.Tile.Name, uv0); err != nil {
			return Quad{}, err
		}
		if uv1, err = atlas.TileUV(face.Tile.Name, uv1); err != nil {
			return Quad{}, err
		}
	}

	p0, p1, p2 := face.P0, face.P1, face.P2
	p3 := p2.Sub(p1.Sub(p0))

	normal := p1.Sub(p0).Cross(p3.Sub(p0)).Normalized()
	shade := Shade(normal)

	return Quad{
		{Pos: p0, UV: vec.Vec2Float32{X: uv1.X, Y: uv0.Y}, Shade: shade, Light: DefaultLight},
		{Pos: p1, UV: uv0, Shade: shade, Light: DefaultLight},
		{Pos: p2, UV: vec.Vec2Float32{X: uv0.X, Y: uv1.Y}, Shade: shade, Light: DefaultLight},
		{Pos: p3, UV: uv1, Shade: shade, Light: DefaultLight},
	}, nil
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
