package direction

import (
	"fmt"
	"iter"
)

// DirectionMap хранит ровно одно значение на каждое направление.
// Доступ идет напрямую к полям, без хеширования и аллокаций.
type DirectionMap[T any] struct {
	West  T `yaml:"west"`
	East  T `yaml:"east"`
	South T `yaml:"south"`
	North T `yaml:"north"`
	Down  T `yaml:"down"`
	Up    T `yaml:"up"`
}

// Uniform создает карту с одинаковым значением во всех направлениях
func Uniform[T any](v T) DirectionMap[T] {
	return DirectionMap[T]{West: v, East: v, South: v, North: v, Down: v, Up: v}
}

// Ptr возвращает указатель на значение направления d
func (m *DirectionMap[T]) Ptr(d Direction) *T {
	switch d {
	case West:
		return &m.West
	case East:
		return &m.East
	case South:
		return &m.South
	case North:
		return &m.North
	case Down:
		return &m.Down
	case Up:
		return &m.Up
	}
	panic(fmt.Sprintf("direction: invalid value %d", d))
}

// Get возвращает значение для направления d
func (m *DirectionMap[T]) Get(d Direction) T {
	return *m.Ptr(d)
}

// Set записывает значение для направления d
func (m *DirectionMap[T]) Set(d Direction, v T) {
	*m.Ptr(d) = v
}

// All перебирает пары (направление, значение) в каноническом порядке
func (m *DirectionMap[T]) All() iter.Seq2[Direction, T] {
	return func(yield func(Direction, T) bool) {
		for _, d := range All {
			if !yield(d, *m.Ptr(d)) {
				return
			}
		}
	}
}

// MapDirections поэлементно преобразует карту в карту другого типа
func MapDirections[T, U any](m DirectionMap[T], f func(T) U) DirectionMap[U] {
	return DirectionMap[U]{
		West:  f(m.West),
		East:  f(m.East),
		South: f(m.South),
		North: f(m.North),
		Down:  f(m.Down),
		Up:    f(m.Up),
	}
}

// SideMap хранит ровно одно значение на каждое направление плюс None
type SideMap[T any] struct {
	West  T `yaml:"west"`
	East  T `yaml:"east"`
	South T `yaml:"south"`
	North T `yaml:"north"`
	Down  T `yaml:"down"`
	Up    T `yaml:"up"`
	None  T `yaml:"none"`
}

// UniformSides создает карту с одинаковым значением на всех сторонах
func UniformSides[T any](v T) SideMap[T] {
	return SideMap[T]{West: v, East: v, South: v, North: v, Down: v, Up: v, None: v}
}

// Ptr возвращает указатель на значение стороны s
func (m *SideMap[T]) Ptr(s Side) *T {
	switch s {
	case Side(West):
		return &m.West
	case Side(East):
		return &m.East
	case Side(South):
		return &m.South
	case Side(North):
		return &m.North
	case Side(Down):
		return &m.Down
	case Side(Up):
		return &m.Up
	case None:
		return &m.None
	}
	panic(fmt.Sprintf("direction: invalid side %d", s))
}

// Get возвращает значение для стороны s
func (m *SideMap[T]) Get(s Side) T {
	return *m.Ptr(s)
}

// Set записывает значение для стороны s
func (m *SideMap[T]) Set(s Side, v T) {
	*m.Ptr(s) = v
}

// All перебирает пары (сторона, значение) в каноническом порядке, None последней
func (m *SideMap[T]) All() iter.Seq2[Side, T] {
	return func(yield func(Side, T) bool) {
		for _, s := range Sides {
			if !yield(s, *m.Ptr(s)) {
				return
			}
		}
	}
}

// MapSides поэлементно преобразует карту в карту другого типа
func MapSides[T, U any](m SideMap[T], f func(T) U) SideMap[U] {
	return SideMap[U]{
		West:  f(m.West),
		East:  f(m.East),
		South: f(m.South),
		North: f(m.North),
		Down:  f(m.Down),
		Up:    f(m.Up),
		None:  f(m.None),
	}
}
