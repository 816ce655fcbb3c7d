package world

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/annel0/voxel-world/internal/world/block"
)

// WeightedName вариант блока с весом в таблице выбора
type WeightedName struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// TerrainRules задают выбор блока в столбце по высоте относительно поверхности.
// Снизу вверх: Floor, FloorMix, Deep, Subsoil (SubsoilDepth блоков до поверхности),
// Soil (SoilDepth блоков до поверхности), Surface на высоте поверхности, выше воздух.
type TerrainRules struct {
	Floor        string         `yaml:"floor"`
	FloorMix     []WeightedName `yaml:"floor_mix"`
	Deep         []WeightedName `yaml:"deep"`
	Subsoil      []WeightedName `yaml:"subsoil"`
	Soil         string         `yaml:"soil"`
	Surface      []WeightedName `yaml:"surface"`
	SubsoilDepth int            `yaml:"subsoil_depth"`
	SoilDepth    int            `yaml:"soil_depth"`
}

// DefaultTerrainRules возвращает стандартный набор правил
func DefaultTerrainRules() TerrainRules {
	return TerrainRules{
		Floor: "bedrock",
		FloorMix: []WeightedName{
			{Name: "stone", Weight: 1},
			{Name: "cobblestone", Weight: 1},
			{Name: "bedrock", Weight: 2},
		},
		Deep: []WeightedName{
			{Name: "stone", Weight: 1},
			{Name: "cobblestone", Weight: 1},
		},
		Subsoil: []WeightedName{
			{Name: "dirt", Weight: 2},
			{Name: "stone", Weight: 1},
			{Name: "cobblestone", Weight: 1},
		},
		Soil: "dirt",
		// Редкие ямы (air) и камни на поверхности
		Surface: []WeightedName{
			{Name: "grass", Weight: 28},
			{Name: "dirt", Weight: 2},
			{Name: "air", Weight: 1},
			{Name: "cobblestone", Weight: 1},
		},
		SubsoilDepth: 9,
		SoilDepth:    4,
	}
}

// ErrWeightOverflow сумма весов таблицы не помещается в uint32
var ErrWeightOverflow = errors.New("сумма весов превышает 2^32-1")

// WeightedTable таблица дискретного выбора произвольной длины
type WeightedTable struct {
	ids        []block.ID
	cumulative []uint32
}

// NewWeightedTable разрешает имена в Pack и строит таблицу
func NewWeightedTable(pack *block.Pack, entries []WeightedName) (WeightedTable, error) {
	if len(entries) == 0 {
		return WeightedTable{}, fmt.Errorf("пустая таблица выбора")
	}

	t := WeightedTable{
		ids:        make([]block.ID, 0, len(entries)),
		cumulative: make([]uint32, 0, len(entries)),
	}
	var total uint64
	for _, e := range entries {
		if e.Weight <= 0 {
			return WeightedTable{}, fmt.Errorf("вес блока %q должен быть положительным: %d", e.Name, e.Weight)
		}
		id, err := pack.Lookup(e.Name)
		if err != nil {
			return WeightedTable{}, err
		}
		total += uint64(e.Weight)
		if total > math.MaxUint32 {
			return WeightedTable{}, fmt.Errorf("блок %q: %w", e.Name, ErrWeightOverflow)
		}
		t.ids = append(t.ids, id)
		t.cumulative = append(t.cumulative, uint32(total))
	}
	return t, nil
}

// Pick выбирает блок по случайному значению r
func (t WeightedTable) Pick(r uint32) block.ID {
	x := r % t.cumulative[len(t.cumulative)-1]
	i := sort.Search(len(t.cumulative), func(i int) bool { return t.cumulative[i] > x })
	return t.ids[i]
}

// Len возвращает количество вариантов
func (t WeightedTable) Len() int {
	return len(t.ids)
}

// resolvedRules правила с идентификаторами вместо имен
type resolvedRules struct {
	floor        block.ID
	floorMix     WeightedTable
	deep         WeightedTable
	subsoil      WeightedTable
	soil         block.ID
	surface      WeightedTable
	subsoilDepth int
	soilDepth    int
}

// resolve разрешает все имена правил в Pack
func (r TerrainRules) resolve(pack *block.Pack) (*resolvedRules, error) {
	res := &resolvedRules{subsoilDepth: r.SubsoilDepth, soilDepth: r.SoilDepth}

	if res.soilDepth < 0 || res.subsoilDepth < res.soilDepth {
		return nil, fmt.Errorf("неверные глубины слоев: subsoil=%d soil=%d", r.SubsoilDepth, r.SoilDepth)
	}

	var err error
	if res.floor, err = pack.Lookup(r.Floor); err != nil {
		return nil, fmt.Errorf("floor: %w", err)
	}
	if res.soil, err = pack.Lookup(r.Soil); err != nil {
		return nil, fmt.Errorf("soil: %w", err)
	}

	tables := []struct {
		name    string
		entries []WeightedName
		dst     *WeightedTable
	}{
		{"floor_mix", r.FloorMix, &res.floorMix},
		{"deep", r.Deep, &res.deep},
		{"subsoil", r.Subsoil, &res.subsoil},
		{"surface", r.Surface, &res.surface},
	}
	for _, tbl := range tables {
		if *tbl.dst, err = NewWeightedTable(pack, tbl.entries); err != nil {
			return nil, fmt.Errorf("%s: %w", tbl.name, err)
		}
	}
	return res, nil
}

// pick выбирает блок на высоте z в столбце с поверхностью на высоте h.
// Разные слои используют разные биты r, как если бы они брались независимо.
func (r *resolvedRules) pick(z, floorZ, h int, rnd uint32) block.ID {
	switch {
	case z == floorZ:
		return r.floor
	case z == floorZ+1:
		return r.floorMix.Pick(rnd)
	case z < h-r.subsoilDepth:
		return r.deep.Pick(rnd >> 2)
	case z < h-r.soilDepth:
		return r.subsoil.Pick(rnd >> 3)
	case z < h:
		return r.soil
	case z == h:
		return r.surface.Pick(rnd >> 5)
	default:
		return block.AirID
	}
}
