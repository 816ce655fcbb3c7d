package observability

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// ProcessStats снимок потребления ресурсов процессом
type ProcessStats struct {
	Uptime      time.Duration
	HeapAlloc   uint64
	RSS         uint64
	SystemTotal uint64
	CPUPercent  float64
	Goroutines  int
}

// String форматирует снимок для лога
func (s ProcessStats) String() string {
	return fmt.Sprintf("uptime=%s heap=%s rss=%s (из %s) cpu=%.1f%% goroutines=%d",
		FormatUptime(s.Uptime),
		humanize.Bytes(s.HeapAlloc),
		humanize.Bytes(s.RSS),
		humanize.Bytes(s.SystemTotal),
		s.CPUPercent,
		s.Goroutines,
	)
}

// ProcessMonitor собирает статистику процесса с момента создания
type ProcessMonitor struct {
	StartTime time.Time
}

// NewProcessMonitor создает новый экземпляр монитора
func NewProcessMonitor() *ProcessMonitor {
	return &ProcessMonitor{
		StartTime: time.Now(),
	}
}

// Snapshot возвращает текущую статистику.
// Ошибки gopsutil не фатальны: недоступные значения остаются нулевыми.
func (pm *ProcessMonitor) Snapshot() ProcessStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	stats := ProcessStats{
		Uptime:     time.Since(pm.StartTime),
		HeapAlloc:  m.HeapAlloc,
		Goroutines: runtime.NumGoroutine(),
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.SystemTotal = vm.Total
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return stats
	}
	if info, err := proc.MemoryInfo(); err == nil {
		stats.RSS = info.RSS
	}
	if pct, err := proc.CPUPercent(); err == nil {
		stats.CPUPercent = pct
	} else if pcts, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(pcts) > 0 {
		// Если не удалось получить метрику процесса, берем системную
		stats.CPUPercent = pcts[0]
	}

	return stats
}

// FormatUptime форматирует длительность как "1д 2ч 3м 4с"
func FormatUptime(uptime time.Duration) string {
	days := int(uptime.Hours()) / 24
	hours := int(uptime.Hours()) % 24
	minutes := int(uptime.Minutes()) % 60
	seconds := int(uptime.Seconds()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dд %dч %dм %dс", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dч %dм %dс", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dм %dс", minutes, seconds)
	default:
		return fmt.Sprintf("%dс", seconds)
	}
}
