package world

import (
	"fmt"
	"time"

	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/direction"
)

// quadIndices порядок обхода вершин четырехугольника: два треугольника
var quadIndices = [6]uint32{0, 1, 2, 3, 0, 2}

// Mesh геометрия одной версии чанка. После построения не изменяется,
// поэтому один и тот же *Mesh можно раздавать нескольким потребителям.
type Mesh struct {
	Nonce    uint32
	Vertices []block.Vertex
	Indices  []uint32
}

// Empty возвращает true для меша без геометрии
func (m *Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// QuadCount возвращает количество четырехугольников
func (m *Mesh) QuadCount() int {
	return len(m.Vertices) / 4
}

// Mesher строит меши чанков и кеширует их по координатам чанка.
// Запись кеша действительна, пока nonce чанка не изменился.
// Не синхронизирован: рассчитан на одного писателя.
type Mesher struct {
	cache   map[vec.Vec3]*Mesh
	metrics *Metrics
	logger  *logging.Logger
}

// NewMesher создаёт построитель мешей; metrics может быть nil
func NewMesher(metrics *Metrics) *Mesher {
	return &Mesher{
		cache:   make(map[vec.Vec3]*Mesh),
		metrics: metrics,
		logger:  logging.GetMesherLogger(),
	}
}

// BuildMesh возвращает меш чанка с координатами coord.
// Если в кеше есть меш той же версии, он возвращается без перестроения.
// Грани на границе чанка считаются открытыми: соседние чанки не просматриваются.
func (m *Mesher) BuildMesh(chunk *Chunk, coord vec.Vec3, pack *block.Pack) (*Mesh, error) {
	if cached, ok := m.cache[coord]; ok && cached.Nonce == chunk.Nonce {
		m.metrics.meshCacheHit()
		return cached, nil
	}

	start := time.Now()
	mesh, err := buildChunkMesh(chunk, coord, pack)
	if err != nil {
		return nil, fmt.Errorf("меш чанка %v: %w", coord, err)
	}
	elapsed := time.Since(start)

	m.cache[coord] = mesh
	m.metrics.meshBuilt(elapsed, len(mesh.Vertices))
	m.logger.LogMeshBuilt(coord.X, coord.Y, coord.Z, mesh.Nonce, len(mesh.Vertices), len(mesh.Indices), elapsed)

	return mesh, nil
}

// Cached возвращает меш из кеша без проверки актуальности
func (m *Mesher) Cached(coord vec.Vec3) (*Mesh, bool) {
	mesh, ok := m.cache[coord]
	return mesh, ok
}

// Invalidate удаляет запись кеша для чанка
func (m *Mesher) Invalidate(coord vec.Vec3) {
	delete(m.cache, coord)
}

// Evict удаляет все записи, для которых keep возвращает false.
// Возвращает количество удаленных записей.
func (m *Mesher) Evict(keep func(vec.Vec3) bool) int {
	removed := 0
	for coord := range m.cache {
		if !keep(coord) {
			delete(m.cache, coord)
			removed++
		}
	}
	return removed
}

// Len возвращает количество мешей в кеше
func (m *Mesher) Len() int {
	return len(m.cache)
}

// neighbor возвращает ID соседа внутри чанка; за границей чанка воздух
func (c *Chunk) neighbor(i, j, k int, d direction.Direction) block.ID {
	step := d.Vec3()
	x, y, z := i+step.X, j+step.Y, k+step.Z
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return block.AirID
	}
	return c.blocks[z][y][x]
}

func buildChunkMesh(chunk *Chunk, coord vec.Vec3, pack *block.Pack) (*Mesh, error) {
	mesh := &Mesh{Nonce: chunk.Nonce}
	origin := coord.ChunkOrigin()

	for k := 0; k < ChunkSize; k++ {
		for j := 0; j < ChunkSize; j++ {
			for i := 0; i < ChunkSize; i++ {
				id := chunk.blocks[k][j][i]
				def, err := pack.Block(id)
				if err != nil {
					return nil, fmt.Errorf("блок (%d,%d,%d): %w", i, j, k, err)
				}

				offset := origin.Add(vec.Vec3{X: i, Y: j, Z: k}).ToFloat32()

				for _, side := range direction.Sides {
					quads := def.Mesh.Get(side)
					if len(quads) == 0 {
						continue
					}

					if d, ok := side.Direction(); ok {
						nid := chunk.neighbor(i, j, k, d)
						ndef, err := pack.Block(nid)
						if err != nil {
							return nil, fmt.Errorf("сосед блока (%d,%d,%d): %w", i, j, k, err)
						}
						if ndef.Culls.Get(d.Opposite()) {
							continue
						}
					}

					for _, q := range quads {
						mesh.appendQuad(q, offset)
					}
				}
			}
		}
	}

	return mesh, nil
}

// appendQuad добавляет четырехугольник, сдвинутый на offset
func (m *Mesh) appendQuad(q block.Quad, offset vec.Vec3Float32) {
	base := uint32(len(m.Vertices))
	for _, v := range q {
		v.Pos = v.Pos.Add(offset)
		m.Vertices = append(m.Vertices, v)
	}
	for _, idx := range quadIndices {
		m.Indices = append(m.Indices, base+idx)
	}
}
