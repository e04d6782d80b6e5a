package monitor

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// CheckTimeout bounds every probe; a hung dependency reports as a
// failed check instead of stalling the loop.
const CheckTimeout = 5 * time.Second

type CheckFunc func(ctx context.Context) error

type CheckResult struct {
	Name      string    `json:"name"`
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	LatencyMs int64     `json:"latencyMs"`
	CheckedAt time.Time `json:"checkedAt"`
}

type Health struct {
	Status  string        `json:"status"` // "ok" or "degraded"
	Uptime  string        `json:"uptime"`
	Checks  []CheckResult `json:"checks"`
	Started time.Time     `json:"started"`
}

type namedCheck struct {
	name string
	fn   CheckFunc
}

// Monitor polls registered checks on an interval. It is explicitly
// constructed and carries its own Start/Stop lifecycle; nothing here
// is a package global.
type Monitor struct {
	mu      sync.RWMutex
	checks  []namedCheck
	results map[string]CheckResult

	interval time.Duration
	log      *LogBuffer
	started  time.Time

	stop chan struct{}
	done chan struct{}
}

func New(interval time.Duration, log *LogBuffer) *Monitor {
	if log == nil {
		log = NewLogBuffer(1, LevelError)
	}
	return &Monitor{
		results:  make(map[string]CheckResult),
		interval: interval,
		log:      log,
	}
}

// Register must be called before Start.
func (m *Monitor) Register(name string, fn CheckFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks = append(m.checks, namedCheck{name: name, fn: fn})
}

func (m *Monitor) Start() {
	m.mu.Lock()
	if m.stop != nil {
		m.mu.Unlock()
		return
	}
	m.started = time.Now()
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	m.mu.Unlock()

	m.log.Infof("monitor started, interval %s", m.interval)
	m.RunChecks(context.Background())

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.RunChecks(context.Background())
			case <-m.stop:
				return
			}
		}
	}()
}

func (m *Monitor) Stop() {
	m.mu.Lock()
	stop := m.stop
	done := m.done
	m.stop = nil
	m.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
	m.log.Infof("monitor stopped")
}

// RunChecks executes every check once with the bounded timeout.
func (m *Monitor) RunChecks(ctx context.Context) {
	m.mu.RLock()
	checks := make([]namedCheck, len(m.checks))
	copy(checks, m.checks)
	m.mu.RUnlock()

	for _, c := range checks {
		cctx, cancel := context.WithTimeout(ctx, CheckTimeout)
		start := time.Now()
		err := c.fn(cctx)
		cancel()

		res := CheckResult{
			Name:      c.name,
			Healthy:   err == nil,
			LatencyMs: time.Since(start).Milliseconds(),
			CheckedAt: time.Now(),
		}
		if err != nil {
			res.Error = err.Error()
		}

		m.mu.Lock()
		prev, seen := m.results[c.name]
		m.results[c.name] = res
		m.mu.Unlock()

		if !seen || prev.Healthy != res.Healthy {
			if res.Healthy {
				m.log.Infof("check %s healthy", c.name)
			} else {
				m.log.Errorf("check %s unhealthy: %s", c.name, res.Error)
			}
		}
	}
}

func (m *Monitor) Snapshot() Health {
	m.mu.RLock()
	defer m.mu.RUnlock()

	h := Health{Status: "ok", Started: m.started}
	if !m.started.IsZero() {
		h.Uptime = time.Since(m.started).Round(time.Second).String()
	}
	for _, c := range m.checks {
		if res, ok := m.results[c.name]; ok {
			h.Checks = append(h.Checks, res)
			if !res.Healthy {
				h.Status = "degraded"
			}
		}
	}
	return h
}

// Handler serves the snapshot; degraded still returns 200 so load
// balancers only kill the instance when the process itself is gone.
func (m *Monitor) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, m.Snapshot())
	}
}

// LogHandler exposes the buffered check log to staff.
func (m *Monitor) LogHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "data": gin.H{"entries": m.log.Entries()}})
	}
}
