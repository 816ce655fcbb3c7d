package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/annel0/voxel-world/internal/logging"
)

// StatusServer HTTP-сервер служебных эндпоинтов:
// /metrics (Prometheus), /healthz и /stats (снимок процесса).
type StatusServer struct {
	router  *gin.Engine
	srv     *http.Server
	monitor *ProcessMonitor
	metrics *statusMetrics
}

// SnapshotFunc возвращает снимок состояния для JSON-эндпоинта
type SnapshotFunc func() (any, error)

// NewStatusServer создаёт сервер на порту port.
// Метрики берутся из reg; туда же регистрируются метрики эндпоинтов сервера.
func NewStatusServer(port int, serviceName string, reg *prometheus.Registry, monitor *ProcessMonitor) *StatusServer {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))

	s := &StatusServer{
		router:  router,
		monitor: monitor,
		metrics: newStatusMetrics(reg),
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	s.handle("/metrics", "metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	s.handle("/healthz", "healthz", s.handleHealth)
	s.handle("/stats", "stats", s.handleStats)
	return s
}

func (s *StatusServer) handle(path, endpoint string, h gin.HandlerFunc) {
	s.router.GET(path, s.metrics.instrument(endpoint, h))
}

// HandleJSON добавляет GET-эндпоинт path, отдающий снимок в JSON.
// Ошибка снимка отдаётся как 503 и учитывается в snapshot_errors_total.
func (s *StatusServer) HandleJSON(path string, snapshot SnapshotFunc) {
	endpoint := strings.TrimPrefix(path, "/")
	s.handle(path, endpoint, func(c *gin.Context) {
		v, err := snapshot()
		if err != nil {
			s.metrics.snapshotFailed(endpoint)
			logging.Warn("Снимок %s недоступен: %v", endpoint, err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, v)
	})
}

// Handler возвращает HTTP-обработчик сервера
func (s *StatusServer) Handler() http.Handler {
	return s.router
}

func (s *StatusServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": FormatUptime(s.monitor.Snapshot().Uptime),
	})
}

func (s *StatusServer) handleStats(c *gin.Context) {
	snap := s.monitor.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"uptime_seconds": int64(snap.Uptime.Seconds()),
		"heap_alloc":     snap.HeapAlloc,
		"rss":            snap.RSS,
		"system_total":   snap.SystemTotal,
		"cpu_percent":    snap.CPUPercent,
		"goroutines":     snap.Goroutines,
		"summary":        snap.String(),
	})
}

// Start запускает сервер в отдельной горутине
func (s *StatusServer) Start() {
	go func() {
		logging.Info("📈 /metrics, /healthz и /stats доступны по адресу %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Ошибка HTTP сервера статуса: %v", err)
		}
	}()
}

// Shutdown останавливает сервер
func (s *StatusServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
