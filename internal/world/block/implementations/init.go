// Package implementations содержит встроенный набор блоков, которым пользуются
// генератор ландшафта и тесты, когда каталог с описаниями блоков не задан.
package implementations

import (
	"fmt"

	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/direction"
)

var registry = make(map[string]block.Definition)

// register добавляет описание блока во встроенный набор
func register(name string, def block.Definition) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("implementations: блок %q зарегистрирован дважды", name))
	}
	registry[name] = def
}

// Definitions возвращает копию всех встроенных описаний
func Definitions() map[string]block.Definition {
	out := make(map[string]block.Definition, len(registry))
	for name, def := range registry {
		out[name] = def
	}
	return out
}

// DefaultPack собирает Pack из встроенных описаний
func DefaultPack() (*block.Pack, error) {
	return block.BuildPack(Definitions())
}

// solid сплошной непрозрачный куб с одной текстурой
func solid(tile string) block.Definition {
	return block.Definition{
		Culls: direction.Uniform(true),
		Parts: []block.Part{block.Cube(direction.Uniform(tile))},
	}
}

// columnar сплошной куб с отдельными текстурами торцов
func columnar(side, top, bottom string) block.Definition {
	tiles := direction.Uniform(side)
	tiles.Up = top
	tiles.Down = bottom
	return block.Definition{
		Culls: direction.Uniform(true),
		Parts: []block.Part{block.Cube(tiles)},
	}
}
