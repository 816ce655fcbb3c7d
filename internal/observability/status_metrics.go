package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// statusMetrics метрики служебного сервера в пространстве имен voxel_status.
// Считаются только зарегистрированные эндпоинты; метка endpoint - имя, под
// которым эндпоинт добавлен, а не путь запроса.
type statusMetrics struct {
	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	snapshotErrors *prometheus.CounterVec
}

func newStatusMetrics(reg prometheus.Registerer) *statusMetrics {
	m := &statusMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voxel",
			Subsystem: "status",
			Name:      "requests_total",
			Help:      "Запросы к служебным эндпоинтам по коду ответа.",
		}, []string{"endpoint", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "voxel",
			Subsystem: "status",
			Name:      "request_duration_seconds",
			Help:      "Время подготовки ответа служебного эндпоинта.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"endpoint"}),
		snapshotErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voxel",
			Subsystem: "status",
			Name:      "snapshot_errors_total",
			Help:      "Снимки состояния, которые не удалось получить.",
		}, []string{"endpoint"}),
	}

	reg.MustRegister(m.requests, m.duration, m.snapshotErrors)
	return m
}

// instrument оборачивает обработчик эндпоинта endpoint
func (m *statusMetrics) instrument(endpoint string, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		h(c)
		m.duration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(endpoint, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func (m *statusMetrics) snapshotFailed(endpoint string) {
	m.snapshotErrors.WithLabelValues(endpoint).Inc()
}
