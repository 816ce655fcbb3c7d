package world

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// ChunkSize длина ребра чанка в блоках
const ChunkSize = vec.ChunkSize

// Chunk представляет куб мира размером 32x32x32 блока.
//
// Координаты внутри чанка всегда берутся по модулю 32: вызывающий код
// отвечает за выбор нужного чанка, сам чанк выход за границы не проверяет.
// Chunk не синхронизирован: изменение и построение меша одного чанка
// должны выполняться последовательно.
type Chunk struct {
	// Nonce версия содержимого. Каждое изменение получает новое,
	// строго большее значение из общего для процесса счетчика.
	Nonce uint32

	blocks [ChunkSize][ChunkSize][ChunkSize]block.ID // [z][y][x]
}

// NewChunk создаёт пустой чанк (весь воздух) с новым nonce
func NewChunk() *Chunk {
	return &Chunk{Nonce: freshNonce()}
}

// Get возвращает ID блока по локальным координатам
func (c *Chunk) Get(pos vec.Vec3) block.ID {
	p := pos.LocalInChunk()
	return c.blocks[p.Z][p.Y][p.X]
}

// Place устанавливает блок по локальным координатам и обновляет nonce.
// Кешированный меш чанка становится устаревшим.
func (c *Chunk) Place(pos vec.Vec3, id block.ID) {
	p := pos.LocalInChunk()
	c.blocks[p.Z][p.Y][p.X] = id
	c.Nonce = freshNonce()
}

// Count возвращает количество блоков с указанным ID
func (c *Chunk) Count(id block.ID) int {
	n := 0
	for z := range c.blocks {
		for y := range c.blocks[z] {
			for _, b := range c.blocks[z][y] {
				if b == id {
					n++
				}
			}
		}
	}
	return n
}

// IsEmpty возвращает true, если чанк целиком состоит из воздуха
func (c *Chunk) IsEmpty() bool {
	return c.Count(block.AirID) == ChunkSize*ChunkSize*ChunkSize
}

// SameBlocks сравнивает содержимое чанков без учета nonce
func (c *Chunk) SameBlocks(other *Chunk) bool {
	return c.blocks == other.blocks
}
