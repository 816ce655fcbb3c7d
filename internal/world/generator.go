package world

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/util"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// TerrainConfig параметры генерации ландшафта
type TerrainConfig struct {
	FloorZ    int          `yaml:"floor_z"`    // Нижняя граница генерации (неразрушимый слой)
	CeilingZ  int          `yaml:"ceiling_z"`  // Верхняя граница (не включается)
	MinHeight float64      `yaml:"min_height"` // Высота поверхности при шуме -1
	MaxHeight float64      `yaml:"max_height"` // Высота поверхности при шуме +1
	BaseScale float64      `yaml:"base_scale"` // Масштаб самой крупной октавы
	Rules     TerrainRules `yaml:"rules"`
}

// DefaultTerrainConfig возвращает стандартные параметры
func DefaultTerrainConfig() TerrainConfig {
	return TerrainConfig{
		FloorZ:    -128,
		CeilingZ:  31,
		MinHeight: -30,
		MaxHeight: 30,
		BaseScale: math.Sqrt2 / 1000,
		Rules:     DefaultTerrainRules(),
	}
}

// Сиды и веса октав фиксированы: ландшафт зависит только от координат чанка
var octaveParams = []struct {
	seed      int64
	weight    float64
	frequency float64
}{
	{seed: 1, weight: 0.9, frequency: 1},
	{seed: 2, weight: 0.09, frequency: 10},
	{seed: 3, weight: 0.009, frequency: 100},
}

// TerrainGenerator генерирует ландшафт чанков.
// Результат - чистая функция координат чанка и Pack: порядок генерации
// и сессия на содержимое не влияют. Безопасен для параллельного использования.
type TerrainGenerator struct {
	cfg     TerrainConfig
	octaves []util.Octave
	logger  *logging.Logger
}

// NewTerrainGenerator создаёт генератор ландшафта
func NewTerrainGenerator(cfg TerrainConfig) *TerrainGenerator {
	octaves := make([]util.Octave, 0, len(octaveParams))
	for _, p := range octaveParams {
		octaves = append(octaves, util.Octave{
			Field:     util.NewPerlinField(p.seed),
			Weight:    p.weight,
			Frequency: p.frequency,
		})
	}

	return &TerrainGenerator{cfg: cfg, octaves: octaves, logger: logging.GetTerrainLogger()}
}

// Config возвращает параметры генератора
func (g *TerrainGenerator) Config() TerrainConfig {
	return g.cfg
}

// HeightAt возвращает высоту поверхности в столбце (x, y) мировых координат
func (g *TerrainGenerator) HeightAt(x, y int) int {
	v := util.LayeredNoise2D(g.octaves, float64(x), float64(y), g.cfg.BaseScale)
	v = math.Max(-1, math.Min(1, v))

	h := g.cfg.MinHeight + (v+1)/2*(g.cfg.MaxHeight-g.cfg.MinHeight)
	return int(math.Floor(h))
}

// chunkSeed сид генератора случайных чисел чанка
func chunkSeed(coord vec.Vec3) int64 {
	return int64(2*coord.X + 3*coord.Y + 5*coord.Z)
}

// GenerateChunk заполняет новый чанк ландшафтом.
// Имена блоков разрешаются один раз; неизвестное имя прерывает генерацию.
func (g *TerrainGenerator) GenerateChunk(coord vec.Vec3, pack *block.Pack) (*Chunk, error) {
	start := time.Now()
	rules, err := g.cfg.Rules.resolve(pack)
	if err != nil {
		return nil, fmt.Errorf("правила ландшафта для чанка %v: %w", coord, err)
	}

	chunk := NewChunk()
	origin := coord.ChunkOrigin()

	// Чанк целиком вне диапазона генерации остается воздухом
	if origin.Z+ChunkSize <= g.cfg.FloorZ || origin.Z >= g.cfg.CeilingZ {
		return chunk, nil
	}

	rng := rand.New(rand.NewSource(chunkSeed(coord)))

	for j := 0; j < ChunkSize; j++ {
		for i := 0; i < ChunkSize; i++ {
			h := g.HeightAt(origin.X+i, origin.Y+j)

			for k := 0; k < ChunkSize; k++ {
				z := origin.Z + k
				if z < g.cfg.FloorZ {
					continue
				}
				// Столбец вышел за верхнюю границу: выше генерировать нечего
				if z >= g.cfg.CeilingZ {
					break
				}

				chunk.blocks[k][j][i] = rules.pick(z, g.cfg.FloorZ, h, rng.Uint32())
			}
		}
	}

	g.logger.LogChunkGenerated(coord.X, coord.Y, coord.Z, chunk.Nonce, time.Since(start))
	return chunk, nil
}
