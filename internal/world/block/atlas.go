package block

import (
	"fmt"
	"sort"

	"github.com/annel0/voxel-world/internal/vec"
)

// Atlas раскладка тайлов в квадратную сетку текстурного атласа.
// Тайлы упорядочены по имени и заполняют сетку построчно.
// Загрузка изображений и сборка самой текстуры выполняются рендерером.
type Atlas struct {
	tiles []string
	width int
}

// NewAtlas создаёт раскладку для набора имен тайлов (дубликаты удаляются)
func NewAtlas(tiles []string) *Atlas {
	sorted := make([]string, 0, len(tiles))
	seen := make(map[string]struct{}, len(tiles))
	for _, t := range tiles {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		sorted = append(sorted, t)
	}
	sort.Strings(sorted)

	// Ширина сетки - степень двойки, чтобы mip-уровни делились без остатка
	width := 1
	for width*width < len(sorted) {
		width <<= 1
	}

	return &Atlas{tiles: sorted, width: width}
}

// Width возвращает ширину сетки в клетках
func (a *Atlas) Width() int {
	return a.width
}

// Tiles возвращает имена тайлов в порядке размещения
func (a *Atlas) Tiles() []string {
	out := make([]string, len(a.tiles))
	copy(out, a.tiles)
	return out
}

// Index возвращает позицию тайла в атласе
func (a *Atlas) Index(name string) (int, bool) {
	i := sort.SearchStrings(a.tiles, name)
	if i == len(a.tiles) || a.tiles[i] != name {
		return 0, false
	}
	return i, true
}

// TileUV переводит координаты внутри тайла в координаты атласа
func (a *Atlas) TileUV(name string, uv vec.Vec2Float32) (vec.Vec2Float32, error) {
	idx, ok := a.Index(name)
	if !ok {
		return vec.Vec2Float32{}, fmt.Errorf("тайл %q отсутствует в атласе", name)
	}

	cell := vec.Vec2Float32{X: float32(idx % a.width), Y: float32(idx / a.width)}
	return uv.Add(cell).Div(float32(a.width)), nil
}
