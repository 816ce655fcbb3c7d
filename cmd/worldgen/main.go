package main

import (
	"context"
	"encoding/binary"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/annel0/voxel-world/internal/config"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/observability"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/block/implementations"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config (default: $VOXEL_CONFIG)")
		serve      = flag.Bool("serve", false, "Keep serving /metrics after generation until SIGINT/SIGTERM")
		placeName  = flag.String("place", "stone", "Block placed above the surface at the focal column")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	level, err := cfg.Logging.LogLevel()
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации логирования: %v", err)
	}
	logging.SetDefaultLevel(level)
	logging.SetLogDir(cfg.Logging.Dir)
	if err := logging.InitDefaultLogger("worldgen"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	levels, err := cfg.Logging.ComponentLevels()
	if err != nil {
		logging.Error("❌ Ошибка конфигурации логирования: %v", err)
		os.Exit(1)
	}
	logging.GetLoggerManager().Configure(levels)

	monitor := observability.NewProcessMonitor()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled {
		shutdown, err := observability.InitTelemetry(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			logging.Warn("Телеметрия отключена: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logging.Warn("Ошибка остановки телеметрии: %v", err)
				}
			}()
		}
	}

	pack, err := loadPack(cfg.Pack.Dir)
	if err != nil {
		logging.Error("❌ Ошибка загрузки набора блоков: %v", err)
		os.Exit(1)
	}
	logging.Info("🧱 Набор блоков: %d блоков, атлас %dx%d", pack.Len(), pack.Atlas.Width(), pack.Atlas.Width())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := world.NewMetrics(reg)

	generator := world.NewTerrainGenerator(cfg.Terrain)
	w := world.NewWorld(pack, generator, metrics, cfg.World.Workers)

	status := observability.NewStatusServer(cfg.Metrics.GetMetricsPort(), cfg.Telemetry.ServiceName, reg, monitor)
	status.HandleJSON("/world", func() (any, error) {
		return map[string]int{"loaded_chunks": w.Len(), "blocks": pack.Len()}, nil
	})
	status.Start()

	n, err := w.GenerateRegion(ctx, cfg.World.RegionMin, cfg.World.RegionMax)
	if err != nil {
		logging.Error("❌ %v", err)
		os.Exit(1)
	}
	logging.Info("🌍 Сгенерировано %d чанков", n)

	// Фокус над поверхностью в начале координат
	surface := generator.HeightAt(0, 0)
	focal := vec.Vec3Float{X: 0.5, Y: 0.5, Z: float64(surface) + 1.5}
	mesher := world.NewMesher(metrics)

	if err := reportMeshes(w, mesher, focal, cfg.World.ViewDistance); err != nil {
		logging.Error("❌ %v", err)
		os.Exit(1)
	}

	if err := placeAboveSurface(w, *placeName, focal); err != nil {
		logging.Warn("Блок не установлен: %v", err)
	} else if err := reportMeshes(w, mesher, focal, cfg.World.ViewDistance); err != nil {
		logging.Error("❌ %v", err)
		os.Exit(1)
	}

	if removed := w.UnloadFar(focal, cfg.World.ViewDistance); removed > 0 {
		evicted := mesher.Evict(w.Loaded)
		logging.Info("🧹 Выгружено %d чанков, из кеша мешей удалено %d", removed, evicted)
	}

	logging.Info("📊 %s", monitor.Snapshot())

	if *serve {
		logging.Info("Ожидание сигналов завершения...")
		<-ctx.Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := status.Shutdown(shutdownCtx); err != nil {
		logging.Warn("Ошибка остановки HTTP сервера статуса: %v", err)
	}
}

// loadPack загружает набор блоков из каталога или берет встроенный
func loadPack(dir string) (*block.Pack, error) {
	if dir == "" {
		return implementations.DefaultPack()
	}
	return block.LoadPackDir(dir)
}

// reportMeshes строит меши вокруг фокуса и логирует их суммарный размер
func reportMeshes(w *world.World, mesher *world.Mesher, focal vec.Vec3Float, radius int) error {
	start := time.Now()
	var chunks, vertices, indices int
	for cm, err := range w.MeshesNear(mesher, focal, radius) {
		if err != nil {
			return err
		}
		chunks++
		vertices += len(cm.Mesh.Vertices)
		indices += len(cm.Mesh.Indices)
	}

	vertexSize := binary.Size(block.Vertex{})
	size := uint64(vertices*vertexSize + indices*4)
	logging.Info("🔺 Меши: %d чанков, %s вершин, %s индексов, %s за %v",
		chunks, humanize.Comma(int64(vertices)), humanize.Comma(int64(indices)), humanize.Bytes(size), time.Since(start))
	return nil
}

// placeAboveSurface ставит блок на клетку фокуса
func placeAboveSurface(w *world.World, name string, focal vec.Vec3Float) error {
	id, err := w.Pack().Lookup(name)
	if err != nil {
		return err
	}
	pos := focal.Floor()
	if err := w.Place(pos, id); err != nil {
		return err
	}
	logging.Info("✏️  Блок %s установлен в %v", name, pos)
	return nil
}
