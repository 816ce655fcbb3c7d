package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "5с", FormatUptime(5*time.Second))
	assert.Equal(t, "2м 5с", FormatUptime(2*time.Minute+5*time.Second))
	assert.Equal(t, "3ч 0м 1с", FormatUptime(3*time.Hour+time.Second))
	assert.Equal(t, "1д 1ч 0м 0с", FormatUptime(25*time.Hour))
}

func TestSnapshot(t *testing.T) {
	pm := NewProcessMonitor()
	s := pm.Snapshot()

	assert.Greater(t, s.HeapAlloc, uint64(0))
	assert.GreaterOrEqual(t, s.Goroutines, 1)
	assert.Contains(t, s.String(), "heap=")
}
