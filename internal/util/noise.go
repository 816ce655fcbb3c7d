package util

import (
	"github.com/aquilax/go-perlin"
)

// Параметры go-perlin для одной октавы: октавы складываются в генераторе
// ландшафта с собственными весами и частотами.
const (
	perlinAlpha   = 2.0 // Сглаживание шума
	perlinBeta    = 2.0 // Частота шума
	perlinOctaves = 1
)

// PerlinField двумерное поле шума Перлина с собственным сидом.
// Поле неизменяемо после создания и безопасно для параллельного чтения.
type PerlinField struct {
	seed  int64
	noise *perlin.Perlin
}

// NewPerlinField создаёт поле шума с указанным сидом
func NewPerlinField(seed int64) *PerlinField {
	return &PerlinField{
		seed:  seed,
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
	}
}

// Seed возвращает сид поля
func (f *PerlinField) Seed() int64 {
	return f.seed
}

// Noise2D возвращает значение шума (примерно от -1 до 1)
func (f *PerlinField) Noise2D(x, y float64) float64 {
	return f.noise.Noise2D(x, y)
}

// Octave одна октава составного шума
type Octave struct {
	Field     *PerlinField
	Weight    float64 // Амплитуда
	Frequency float64 // Множитель базового масштаба
}

// LayeredNoise2D складывает октавы: sum(weight * field(x*scale*freq, y*scale*freq))
func LayeredNoise2D(octaves []Octave, x, y, scale float64) float64 {
	var sum float64
	for _, o := range octaves {
		s := scale * o.Frequency
		sum += o.Field.Noise2D(x*s, y*s) * o.Weight
	}
	return sum
}
