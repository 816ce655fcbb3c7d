package world

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// ErrChunkNotLoaded чанк с нужными координатами не загружен
var ErrChunkNotLoaded = errors.New("чанк не загружен")

var tracer = otel.Tracer("voxel-world/world")

// ChunkMesh меш вместе с координатами его чанка
type ChunkMesh struct {
	Coord vec.Vec3
	Mesh  *Mesh
}

// World хранит загруженные чанки по координатам чанка.
//
// Мьютекс защищает только таблицу чанков. Содержимое чанков и Mesher
// не синхронизированы: изменение блоков и построение мешей вызывающий
// код выполняет последовательно.
type World struct {
	mu     sync.RWMutex
	chunks map[vec.Vec3]*Chunk

	pack      *block.Pack
	generator *TerrainGenerator
	metrics   *Metrics
	logger    *logging.Logger
	workers   int
}

// NewWorld создаёт пустой мир.
// workers ограничивает параллелизм GenerateRegion; 0 означает число CPU.
// metrics может быть nil.
func NewWorld(pack *block.Pack, generator *TerrainGenerator, metrics *Metrics, workers int) *World {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &World{
		chunks:    make(map[vec.Vec3]*Chunk),
		pack:      pack,
		generator: generator,
		metrics:   metrics,
		logger:    logging.GetWorldLogger(),
		workers:   workers,
	}
}

// Pack возвращает набор блоков мира
func (w *World) Pack() *block.Pack {
	return w.pack
}

// Insert добавляет или заменяет чанк
func (w *World) Insert(coord vec.Vec3, chunk *Chunk) {
	w.mu.Lock()
	w.chunks[coord] = chunk
	n := len(w.chunks)
	w.mu.Unlock()

	w.metrics.setLoadedChunks(n)
}

// Chunk возвращает загруженный чанк
func (w *World) Chunk(coord vec.Vec3) (*Chunk, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, ok := w.chunks[coord]
	return c, ok
}

// Loaded проверяет, загружен ли чанк
func (w *World) Loaded(coord vec.Vec3) bool {
	_, ok := w.Chunk(coord)
	return ok
}

// Remove выгружает чанк; возвращает false, если его не было
func (w *World) Remove(coord vec.Vec3) bool {
	w.mu.Lock()
	_, ok := w.chunks[coord]
	delete(w.chunks, coord)
	n := len(w.chunks)
	w.mu.Unlock()

	if ok {
		w.metrics.setLoadedChunks(n)
	}
	return ok
}

// Len возвращает количество загруженных чанков
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// Coords возвращает координаты загруженных чанков в порядке (z, y, x)
func (w *World) Coords() []vec.Vec3 {
	w.mu.RLock()
	coords := make([]vec.Vec3, 0, len(w.chunks))
	for c := range w.chunks {
		coords = append(coords, c)
	}
	w.mu.RUnlock()

	sort.Slice(coords, func(a, b int) bool {
		ca, cb := coords[a], coords[b]
		if ca.Z != cb.Z {
			return ca.Z < cb.Z
		}
		if ca.Y != cb.Y {
			return ca.Y < cb.Y
		}
		return ca.X < cb.X
	})
	return coords
}

// Block возвращает блок по мировым координатам
func (w *World) Block(pos vec.Vec3) (block.ID, error) {
	c, ok := w.Chunk(pos.ToChunkCoords())
	if !ok {
		return block.AirID, fmt.Errorf("блок %v: %w", pos, ErrChunkNotLoaded)
	}
	return c.Get(pos.LocalInChunk()), nil
}

// Place ставит блок по мировым координатам
func (w *World) Place(pos vec.Vec3, id block.ID) error {
	if _, err := w.pack.Block(id); err != nil {
		return fmt.Errorf("установка блока %v: %w", pos, err)
	}

	c, ok := w.Chunk(pos.ToChunkCoords())
	if !ok {
		return fmt.Errorf("установка блока %v: %w", pos, ErrChunkNotLoaded)
	}

	c.Place(pos.LocalInChunk(), id)
	w.logger.Trace("Блок %d установлен в %v, nonce чанка %d", id, pos, c.Nonce)
	return nil
}

// Generate генерирует чанк и добавляет его в мир
func (w *World) Generate(coord vec.Vec3) (*Chunk, error) {
	start := time.Now()
	c, err := w.generator.GenerateChunk(coord, w.pack)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	w.Insert(coord, c)
	w.metrics.chunkGenerated(elapsed)

	return c, nil
}

// GenerateRegion генерирует все чанки в параллелепипеде [from, to] включительно.
// Первая ошибка отменяет оставшуюся работу; уже сгенерированные чанки остаются в мире.
func (w *World) GenerateRegion(ctx context.Context, from, to vec.Vec3) (int, error) {
	if to.X < from.X || to.Y < from.Y || to.Z < from.Z {
		return 0, fmt.Errorf("пустой регион %v..%v", from, to)
	}

	total := (to.X - from.X + 1) * (to.Y - from.Y + 1) * (to.Z - from.Z + 1)
	ctx, span := tracer.Start(ctx, "World.GenerateRegion", trace.WithAttributes(
		attribute.Int("region.chunks", total),
		attribute.Int("region.workers", w.workers),
	))
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.workers)

	start := time.Now()
	var count atomic.Int64

loop:
	for z := from.Z; z <= to.Z; z++ {
		for y := from.Y; y <= to.Y; y++ {
			for x := from.X; x <= to.X; x++ {
				if gctx.Err() != nil {
					break loop
				}
				coord := vec.Vec3{X: x, Y: y, Z: z}
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					if _, err := w.Generate(coord); err != nil {
						return err
					}
					count.Add(1)
					return nil
				})
			}
		}
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		w.logger.Debug("Генерация региона %v..%v прервана после %d чанков", from, to, count.Load())
		return int(count.Load()), fmt.Errorf("генерация региона: %w", err)
	}

	w.logger.Info("Регион %v..%v: %d чанков за %v", from, to, count.Load(), time.Since(start))
	return int(count.Load()), nil
}

// UnloadFar выгружает чанки, квадрат расстояния до которых от чанка
// фокуса не меньше radius². Возвращает количество выгруженных чанков.
func (w *World) UnloadFar(focal vec.Vec3Float, radius int) int {
	center := focal.Floor().ToChunkCoords()
	limit := radius * radius

	w.mu.Lock()
	removed := 0
	for c := range w.chunks {
		if c.DistanceSquared(center) >= limit {
			delete(w.chunks, c)
			removed++
		}
	}
	n := len(w.chunks)
	w.mu.Unlock()

	if removed > 0 {
		w.metrics.setLoadedChunks(n)
		w.logger.Debug("Выгружено %d чанков вокруг %v", removed, center)
	}
	return removed
}

// MeshesNear перебирает меши загруженных чанков, квадрат расстояния до
// которых от чанка фокуса строго меньше chunkRadius².
//
// Список кандидатов снимается при старте перебора; меши строятся лениво
// через mesher, поэтому перебор нельзя вести параллельно с изменением чанков.
// Ошибка построения меша передаётся вторым значением, перебор продолжается,
// пока потребитель не остановит его.
func (w *World) MeshesNear(mesher *Mesher, focal vec.Vec3Float, chunkRadius int) iter.Seq2[ChunkMesh, error] {
	return func(yield func(ChunkMesh, error) bool) {
		center := focal.Floor().ToChunkCoords()
		limit := chunkRadius * chunkRadius

		type candidate struct {
			coord vec.Vec3
			chunk *Chunk
		}

		w.mu.RLock()
		candidates := make([]candidate, 0, len(w.chunks))
		for coord, c := range w.chunks {
			if coord.DistanceSquared(center) < limit {
				candidates = append(candidates, candidate{coord: coord, chunk: c})
			}
		}
		w.mu.RUnlock()

		for _, cand := range candidates {
			mesh, err := mesher.BuildMesh(cand.chunk, cand.coord, w.pack)
			if !yield(ChunkMesh{Coord: cand.coord, Mesh: mesh}, err) {
				return
			}
		}
	}
}
