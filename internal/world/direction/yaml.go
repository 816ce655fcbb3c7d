package direction

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML записывает направление по имени
func (d Direction) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML читает направление по имени
func (d *Direction) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseDirection(node.Value)
	if err != nil {
		return fmt.Errorf("строка %d: %w", node.Line, err)
	}
	*d = parsed
	return nil
}

// MarshalYAML записывает сторону по имени
func (s Side) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML читает сторону по имени
func (s *Side) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseSide(node.Value)
	if err != nil {
		return fmt.Errorf("строка %d: %w", node.Line, err)
	}
	*s = parsed
	return nil
}

// UnmarshalYAML поддерживает сокращенную запись:
//
//	culls: true               # одно значение на все направления
//	culls: {all: true, up: false}
//	culls: {x: true, z: false} # по осям
//
// Приоритет: имя направления, затем ось, затем all.
// Отображение без единого ключа направления целиком считается значением T.
func (m *DirectionMap[T]) UnmarshalYAML(node *yaml.Node) error {
	allowed := append([]string{"all", "x", "y", "z"}, names[:]...)

	if node.Kind != yaml.MappingNode || (len(node.Content) > 0 && !hasAnyKey(node, allowed)) {
		var v T
		if err := node.Decode(&v); err != nil {
			return err
		}
		*m = Uniform(v)
		return nil
	}

	raw, err := mappingKeys(node, allowed...)
	if err != nil {
		return err
	}

	for _, d := range All {
		for _, key := range []string{d.String(), d.axisKey(), "all"} {
			if value, ok := raw[key]; ok {
				if err := value.Decode(m.Ptr(d)); err != nil {
					return err
				}
				break
			}
		}
	}
	return nil
}

// mappingKeys собирает значения узла-отображения и отклоняет неизвестные ключи
func mappingKeys(node *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	known := make(map[string]struct{}, len(allowed))
	for _, key := range allowed {
		known[key] = struct{}{}
	}

	raw := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if _, ok := known[key]; !ok {
			return nil, fmt.Errorf("строка %d: неизвестный ключ %q", node.Content[i].Line, key)
		}
		raw[key] = node.Content[i+1]
	}
	return raw, nil
}

// hasAnyKey проверяет, есть ли среди ключей отображения хотя бы один из keys
func hasAnyKey(node *yaml.Node, keys []string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		for _, k := range keys {
			if node.Content[i].Value == k {
				return true
			}
		}
	}
	return false
}
