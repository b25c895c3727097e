// Package profiling captures a CPU profile and an execution trace when the
// game falls behind its tick rate.
package profiling

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

const (
	DefaultDir = "profiles"

	warmup   = 3 * time.Second
	tpsFloor = 55.0
	cooldown = 10 * time.Second
	duration = 5 * time.Second
)

// ErrBusy is returned by Capture while a capture runs or during the cooldown after one
var ErrBusy = errors.New("profiling: capture busy or cooling down")

// Profiler records one capture at a time into dir
type Profiler struct {
	dir    string
	logger *slog.Logger

	started  time.Time
	cooldown time.Duration
	duration time.Duration

	mu        sync.Mutex
	capturing bool
	lastStart time.Time
}

// New creates dir and a profiler writing into it
func New(logger *slog.Logger, dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	return &Profiler{
		dir:      dir,
		logger:   logger,
		started:  time.Now(),
		cooldown: cooldown,
		duration: duration,
	}, nil
}

// Observe starts a capture when the measured tick rate is below the floor.
// Nothing is captured during the warm-up after startup.
func (p *Profiler) Observe(actualTPS float64) {
	if actualTPS >= tpsFloor || time.Since(p.started) < warmup || p.Capturing() {
		return
	}
	if err := p.Capture(fmt.Sprintf("tps%.0f", actualTPS)); err != nil && !errors.Is(err, ErrBusy) {
		p.logger.Error("profile capture failed", "error", err)
	}
}

// Capturing reports whether a capture is in progress
func (p *Profiler) Capturing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capturing
}

// Capture starts the CPU profile and the trace, and stops both once the
// capture duration has passed. It does not block.
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.capturing || (!p.lastStart.IsZero() && time.Since(p.lastStart) < p.cooldown) {
		return ErrBusy
	}

	base := filepath.Join(p.dir, fmt.Sprintf("tps-drop-%s-%s", time.Now().Format("20060102-150405"), reason))
	cpuFile, err := os.Create(base + ".cpu.prof")
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	traceFile, err := os.Create(base + ".trace")
	if err != nil {
		cpuFile.Close()
		return fmt.Errorf("create trace file: %w", err)
	}

	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		cpuFile.Close()
		traceFile.Close()
		return fmt.Errorf("start CPU profile: %w", err)
	}
	if err := trace.Start(traceFile); err != nil {
		pprof.StopCPUProfile()
		cpuFile.Close()
		traceFile.Close()
		return fmt.Errorf("start trace: %w", err)
	}

	p.capturing = true
	p.lastStart = time.Now()
	p.logger.Warn("tick rate dropped, capturing profile", "base", base, "duration", p.duration)

	time.AfterFunc(p.duration, func() {
		pprof.StopCPUProfile()
		trace.Stop()
		if err := errors.Join(cpuFile.Close(), traceFile.Close()); err != nil {
			p.logger.Error("close capture files", "error", err)
		}
		p.logSummary(cpuFile.Name())

		p.mu.Lock()
		p.capturing = false
		p.mu.Unlock()
	})
	return nil
}

// logSummary reports where the capture went and the memory stats at the end of it
func (p *Profiler) logSummary(profilePath string) {
	info, err := os.Stat(profilePath)
	if err != nil {
		p.logger.Warn("could not stat profile", "error", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Info("profile captured",
		"profile", profilePath,
		"size_kb", info.Size()/1024,
		"view", "go tool pprof -http=:8080 "+profilePath,
		"alloc_kb", m.Alloc/1024,
		"sys_kb", m.Sys/1024,
		"num_gc", m.NumGC,
	)
}
