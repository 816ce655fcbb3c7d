// Package direction содержит осевые направления вокруг вокселя и
// карты фиксированного размера, индексируемые ими.
//
// Порядок направлений фиксирован (west, east, south, north, down, up) и
// используется везде: при итерации, в конфигурации и при построении меша.
package direction

import (
	"fmt"

	"github.com/annel0/voxel-world/internal/vec"
)

// Direction одно из шести осевых направлений
type Direction uint8

const (
	West  Direction = iota // -X
	East                   // +X
	South                  // -Y
	North                  // +Y
	Down                   // -Z
	Up                     // +Z

	count // всегда последний
)

// All перечисляет направления в каноническом порядке
var All = [count]Direction{West, East, South, North, Down, Up}

var names = [count]string{"west", "east", "south", "north", "down", "up"}

// Opposite возвращает противоположное направление
func (d Direction) Opposite() Direction {
	// Пары соседние: west/east, south/north, down/up
	return d ^ 1
}

// Vec3 возвращает единичный вектор направления
func (d Direction) Vec3() vec.Vec3 {
	switch d {
	case West:
		return vec.Vec3{X: -1}
	case East:
		return vec.Vec3{X: 1}
	case South:
		return vec.Vec3{Y: -1}
	case North:
		return vec.Vec3{Y: 1}
	case Down:
		return vec.Vec3{Z: -1}
	case Up:
		return vec.Vec3{Z: 1}
	}
	panic(fmt.Sprintf("direction: invalid value %d", d))
}

// Vec3Float32 возвращает единичный вектор направления с плавающей точкой
func (d Direction) Vec3Float32() vec.Vec3Float32 {
	return d.Vec3().ToFloat32()
}

// Side преобразует направление в соответствующую сторону
func (d Direction) Side() Side {
	return Side(d)
}

// Valid проверяет, что значение входит в перечисление
func (d Direction) Valid() bool {
	return d < count
}

// String возвращает имя направления в нижнем регистре
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// ParseDirection разбирает имя направления
func ParseDirection(s string) (Direction, error) {
	for _, d := range All {
		if names[d] == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("неизвестное направление %q", s)
}

// Side это направление либо None для геометрии, не привязанной к грани куба
type Side uint8

// None помечает произвольные четырехугольники, которые никогда не отсекаются
const None = Side(count)

// Sides перечисляет все стороны: шесть направлений и None последним
var Sides = [count + 1]Side{
	West.Side(), East.Side(), South.Side(), North.Side(), Down.Side(), Up.Side(), None,
}

// Direction возвращает направление стороны; ok == false для None
func (s Side) Direction() (Direction, bool) {
	if s >= None {
		return 0, false
	}
	return Direction(s), true
}

// Valid проверяет, что значение входит в перечисление
func (s Side) Valid() bool {
	return s <= None
}

// String возвращает имя стороны в нижнем регистре
func (s Side) String() string {
	if s == None {
		return "none"
	}
	return Direction(s).String()
}

// ParseSide разбирает имя стороны, включая "none"
func ParseSide(s string) (Side, error) {
	if s == "none" || s == "" {
		return None, nil
	}
	d, err := ParseDirection(s)
	if err != nil {
		return None, err
	}
	return d.Side(), nil
}

// axisKey возвращает имя оси для запасного ключа в конфигурации
func (d Direction) axisKey() string {
	switch d {
	case West, East:
		return "x"
	case South, North:
		return "y"
	default:
		return "z"
	}
}
