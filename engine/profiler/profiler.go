package profiler

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
)

// Report is one interval of frame and memory statistics.
type Report struct {
	FPS          float64
	AvgFrame     time.Duration
	MaxFrame     time.Duration
	HeapMB       float64
	AllocRateMBs float64
	NumGC        uint32
	MaxPause     time.Duration
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Reports are written to the injected logger at the configured interval.
type Profiler struct {
	logger         *log.Logger
	now            func() time.Time
	updateInterval time.Duration

	frameCount     int
	lastTime       time.Time
	lastFrame      time.Time
	maxFrame       time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Report
}

// NewProfiler creates a new Profiler. The interval defaults to 1 second.
//
// Parameters:
//   - options: functional options for logger, clock and interval
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		logger:         log.New(io.Discard),
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	p.lastFrame = p.lastTime
	return p
}

// Tick should be called once per frame.
// Logs a Report when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	if frame := currentTime.Sub(p.lastFrame); frame > p.maxFrame {
		p.maxFrame = frame
	}
	p.lastFrame = currentTime

	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	r := Report{
		FPS:      float64(p.frameCount) / elapsed.Seconds(),
		AvgFrame: elapsed / time.Duration(p.frameCount),
		MaxFrame: p.maxFrame,
		HeapMB:   float64(p.memStats.Alloc) / 1024 / 1024,
		NumGC:    p.memStats.NumGC,
	}
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	r.AllocRateMBs = float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 pauses.
	start := p.lastGCCount
	if r.NumGC-start > 256 {
		start = r.NumGC - 256
	}
	for i := start; i < r.NumGC; i++ {
		if pause := time.Duration(p.memStats.PauseNs[i%256]); pause > r.MaxPause {
			r.MaxPause = pause
		}
	}

	p.logger.Info("profile",
		"fps", fmt.Sprintf("%.1f", r.FPS),
		"frame", r.AvgFrame,
		"max_frame", r.MaxFrame,
		"heap_mb", fmt.Sprintf("%.2f", r.HeapMB),
		"alloc_mb_s", fmt.Sprintf("%.2f", r.AllocRateMBs),
		"gc", r.NumGC,
		"max_pause", r.MaxPause,
	)

	p.last = r
	p.frameCount = 0
	p.maxFrame = 0
	p.lastTime = currentTime
	p.lastGCCount = r.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recent report, or the zero Report before the first interval elapses.
func (p *Profiler) Last() Report {
	return p.last
}
