package block

import (
	"fmt"
	"math"
	"sort"
)

// ID представляет идентификатор блока: индекс в Pack.
// 0 всегда зарезервирован за воздухом.
type ID int16

// AirID идентификатор пустого блока
const AirID ID = 0

// AirName имя воздуха в Pack
const AirName = "air"

// Entry именованное определение блока
type Entry struct {
	Name  string
	Block Block
}

// Pack неизменяемый каталог определений блоков.
// Воздух всегда на позиции 0, остальные записи отсортированы по имени,
// поэтому поиск по имени выполняется бинарным поиском.
type Pack struct {
	entries []Entry
	Atlas   *Atlas // Раскладка текстур; может быть nil для Pack без текстур
}

// NewPack создаёт каталог из набора определений.
// Записи сортируются по имени, воздух добавляется автоматически.
func NewPack(entries []Entry, atlas *Atlas) (*Pack, error) {
	if len(entries)+1 > math.MaxInt16+1 {
		return nil, fmt.Errorf("слишком много блоков: %d", len(entries))
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for i, e := range sorted {
		if e.Name == AirName {
			return nil, fmt.Errorf("блок %q зарезервирован", AirName)
		}
		if i > 0 && sorted[i-1].Name == e.Name {
			return nil, fmt.Errorf("повторное определение блока %q", e.Name)
		}
	}

	return &Pack{
		entries: append([]Entry{{Name: AirName}}, sorted...),
		Atlas:   atlas,
	}, nil
}

// Len возвращает количество блоков, включая воздух
func (p *Pack) Len() int {
	return len(p.entries)
}

// Lookup ищет идентификатор блока по имени
func (p *Pack) Lookup(name string) (ID, error) {
	if name == AirName {
		return AirID, nil
	}

	rest := p.entries[1:]
	i := sort.Search(len(rest), func(i int) bool { return rest[i].Name >= name })
	if i == len(rest) || rest[i].Name != name {
		return AirID, &UnknownBlockError{Name: name}
	}
	return ID(i + 1), nil
}

// Block возвращает определение блока по идентификатору
func (p *Pack) Block(id ID) (*Block, error) {
	if id < 0 || int(id) >= len(p.entries) {
		return nil, &InvalidBlockError{ID: id, Len: len(p.entries)}
	}
	return &p.entries[id].Block, nil
}

// Name возвращает имя блока или пустую строку для неизвестного ID
func (p *Pack) Name(id ID) string {
	if id < 0 || int(id) >= len(p.entries) {
		return ""
	}
	return p.entries[id].Name
}

// UnknownBlockError возвращается, если Pack не содержит блока с таким именем
type UnknownBlockError struct {
	Name string
}

func (e *UnknownBlockError) Error() string {
	return fmt.Sprintf("блок %q не найден в наборе блоков", e.Name)
}

// InvalidBlockError возвращается для идентификатора вне диапазона Pack
type InvalidBlockError struct {
	ID  ID
	Len int
}

func (e *InvalidBlockError) Error() string {
	return fmt.Sprintf("идентификатор блока %d вне диапазона [0, %d)", e.ID, e.Len)
}
