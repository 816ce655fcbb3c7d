package world

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics Prometheus-метрики генерации и построения мешей.
// Все методы допускают nil-получатель: метрики необязательны.
type Metrics struct {
	meshCacheHits    prometheus.Counter
	meshCacheMisses  prometheus.Counter
	meshBuildSeconds prometheus.Histogram
	meshVertices     prometheus.Counter
	chunksGenerated  prometheus.Counter
	generateSeconds  prometheus.Histogram
	loadedChunks     prometheus.Gauge
}

// NewMetrics создаёт метрики и регистрирует их в reg (если reg != nil)
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		meshCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Subsystem: "mesher",
			Name:      "cache_hits_total",
			Help:      "Запросы меша, обслуженные из кеша без перестроения.",
		}),
		meshCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Subsystem: "mesher",
			Name:      "cache_misses_total",
			Help:      "Запросы меша, потребовавшие перестроения (нет записи или устаревший nonce).",
		}),
		meshBuildSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voxel",
			Subsystem: "mesher",
			Name:      "build_duration_seconds",
			Help:      "Время построения меша одного чанка.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		meshVertices: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Subsystem: "mesher",
			Name:      "vertices_emitted_total",
			Help:      "Количество вершин во всех построенных мешах.",
		}),
		chunksGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Subsystem: "terrain",
			Name:      "chunks_generated_total",
			Help:      "Количество сгенерированных чанков.",
		}),
		generateSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voxel",
			Subsystem: "terrain",
			Name:      "generate_duration_seconds",
			Help:      "Время генерации одного чанка.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		loadedChunks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxel",
			Subsystem: "world",
			Name:      "loaded_chunks",
			Help:      "Количество загруженных чанков.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.meshCacheHits, m.meshCacheMisses, m.meshBuildSeconds, m.meshVertices,
			m.chunksGenerated, m.generateSeconds, m.loadedChunks,
		)
	}
	return m
}

func (m *Metrics) meshCacheHit() {
	if m != nil {
		m.meshCacheHits.Inc()
	}
}

func (m *Metrics) meshBuilt(elapsed time.Duration, vertices int) {
	if m == nil {
		return
	}
	m.meshCacheMisses.Inc()
	m.meshBuildSeconds.Observe(elapsed.Seconds())
	m.meshVertices.Add(float64(vertices))
}

func (m *Metrics) chunkGenerated(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.chunksGenerated.Inc()
	m.generateSeconds.Observe(elapsed.Seconds())
}

func (m *Metrics) setLoadedChunks(n int) {
	if m != nil {
		m.loadedChunks.Set(float64(n))
	}
}
