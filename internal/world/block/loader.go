package block

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/direction"
	"gopkg.in/yaml.v3"
)

// Формат файла описания блока:
//
//	culls: true
//	parts:
//	  - type: cuboid
//	    from: [0, 0, 0.25]
//	    to: [1, 1, 1]
//	    faces: {all: stone, up: {tile: grass_top}}
//	  - type: rect
//	    p0: [0, 0, 0]
//	    p1: [1, 1, 0]
//	    p2: [1, 1, 1]
//	    face: {tile: flower, cull: none}
//
// Грань параллелепипеда по умолчанию отсекается по своему направлению,
// прямоугольник - никогда.

type definitionYAML struct {
	Culls direction.DirectionMap[bool] `yaml:"culls"`
	Parts []partYAML                   `yaml:"parts"`
}

type partYAML struct {
	Type  string                           `yaml:"type"`
	From  *[3]float32                      `yaml:"from"`
	To    *[3]float32                      `yaml:"to"`
	Faces direction.DirectionMap[tileYAML] `yaml:"faces"`
	P0    [3]float32                       `yaml:"p0"`
	P1    [3]float32                       `yaml:"p1"`
	P2    [3]float32                       `yaml:"p2"`
	Face  tileYAML                         `yaml:"face"`
}

type tileYAML struct {
	Tile string          `yaml:"tile"`
	UV0  *[2]float32     `yaml:"uv0"`
	UV1  *[2]float32     `yaml:"uv1"`
	Cull *direction.Side `yaml:"cull"`
}

// UnmarshalYAML допускает запись тайла одной строкой с его именем
func (t *tileYAML) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		t.Tile = node.Value
		return nil
	}
	type plain tileYAML
	return node.Decode((*plain)(t))
}

func (t tileYAML) resolve(defaultCull direction.Side) Tile {
	tile := NewTile(t.Tile)
	tile.Cull = defaultCull
	if t.UV0 != nil {
		tile.UV0 = vec.Vec2Float32{X: t.UV0[0], Y: t.UV0[1]}
	}
	if t.UV1 != nil {
		tile.UV1 = vec.Vec2Float32{X: t.UV1[0], Y: t.UV1[1]}
	}
	if t.Cull != nil {
		tile.Cull = *t.Cull
	}
	return tile
}

func point(p [3]float32) vec.Vec3Float32 {
	return vec.Vec3Float32{X: p[0], Y: p[1], Z: p[2]}
}

// ParseDefinition разбирает YAML-описание одного блока
func ParseDefinition(data []byte) (Definition, error) {
	if err := ValidateDefinition(data); err != nil {
		return Definition{}, err
	}

	var raw definitionYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Definition{}, err
	}

	def := Definition{Culls: raw.Culls}
	for i, p := range raw.Parts {
		switch p.Type {
		case "cuboid":
			c := Cuboid{To: vec.Vec3Float32{X: 1, Y: 1, Z: 1}}
			if p.From != nil {
				c.From = point(*p.From)
			}
			if p.To != nil {
				c.To = point(*p.To)
			}
			for d, t := range p.Faces.All() {
				c.Tiles.Set(d, t.resolve(d.Side()))
			}
			def.Parts = append(def.Parts, c)
		case "rect":
			def.Parts = append(def.Parts, Rect{
				P0:   point(p.P0),
				P1:   point(p.P1),
				P2:   point(p.P2),
				Face: p.Face.resolve(direction.None),
			})
		default:
			return Definition{}, fmt.Errorf("часть %d: неизвестный тип %q", i, p.Type)
		}
	}
	return def, nil
}

// TileNames возвращает имена всех тайлов, на которые ссылается описание
func (d Definition) TileNames() []string {
	var names []string
	for _, part := range d.Parts {
		for _, face := range part.Faces() {
			names = append(names, face.Tile.Name)
		}
	}
	return names
}

// BuildPack строит атлас из всех упомянутых тайлов и раскладывает описания в блоки
func BuildPack(defs map[string]Definition) (*Pack, error) {
	var tiles []string
	for _, def := range defs {
		tiles = append(tiles, def.TileNames()...)
	}
	atlas := NewAtlas(tiles)

	entries := make([]Entry, 0, len(defs))
	for name, def := range defs {
		b, err := BuildBlock(def, atlas)
		if err != nil {
			return nil, fmt.Errorf("блок %q: %w", name, err)
		}
		entries = append(entries, Entry{Name: name, Block: b})
	}
	return NewPack(entries, atlas)
}

// LoadPackDir загружает все *.yaml описания блоков из каталога.
// Имя блока - имя файла без расширения.
func LoadPackDir(dir string) (*Pack, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения каталога блоков: %w", err)
	}

	defs := make(map[string]Definition, len(files))
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".yaml" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, err
		}

		def, err := ParseDefinition(data)
		if err != nil {
			return nil, fmt.Errorf("ошибка разбора %s: %w", f.Name(), err)
		}
		defs[strings.TrimSuffix(f.Name(), ".yaml")] = def
	}

	return BuildPack(defs)
}
