package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// PerformanceMonitor tracks frame and render timings. Counters are atomic so
// the overlay and logger can read them while the game loop writes.
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds

	// Rendering metrics
	renderTime atomic.Uint64 // nanoseconds
	walls      atomic.Int32
	hits       atomic.Uint64
	pixels     atomic.Uint64

	// Statistics
	mutex         sync.RWMutex
	avgRenderTime float64
	startTime     time.Time

	// Configuration
	enableDetailed bool
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime:      time.Now(),
		enableDetailed: true,
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	ft.monitor.frameTime.Store(uint64(time.Since(ft.startTime).Nanoseconds()))
	ft.monitor.frameCount.Add(1)
}

// RenderTimer measures one RenderFrame call
type RenderTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartRender begins render timing
func (pm *PerformanceMonitor) StartRender() *RenderTimer {
	return &RenderTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndRender completes render timing and records what the frame drew
func (rt *RenderTimer) EndRender(walls, hits, pixels int) {
	elapsed := time.Since(rt.startTime)
	pm := rt.monitor
	pm.renderTime.Store(uint64(elapsed.Nanoseconds()))
	pm.walls.Store(int32(walls))
	pm.hits.Store(uint64(hits))
	pm.pixels.Store(uint64(pixels))

	if pm.enableDetailed {
		pm.mutex.Lock()
		// Exponential moving average keeps the overlay readable.
		if pm.avgRenderTime == 0 {
			pm.avgRenderTime = float64(elapsed.Nanoseconds())
		} else {
			pm.avgRenderTime = 0.9*pm.avgRenderTime + 0.1*float64(elapsed.Nanoseconds())
		}
		pm.mutex.Unlock()
	}
}

// Metrics is a point-in-time copy of the monitor's counters
type Metrics struct {
	Frames          uint64
	FrameTime       time.Duration
	RenderTime      time.Duration
	AvgRenderTime   time.Duration
	Walls           int
	HitsPerFrame    uint64
	PixelsPerFrame  uint64
	FramesPerSecond float64
	MemoryUsageMB   uint64
	Uptime          time.Duration
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() Metrics {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	frameTime := pm.frameTime.Load()
	fps := 0.0
	if frameTime > 0 {
		fps = float64(time.Second) / float64(frameTime)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return Metrics{
		Frames:          pm.frameCount.Load(),
		FrameTime:       time.Duration(frameTime),
		RenderTime:      time.Duration(pm.renderTime.Load()),
		AvgRenderTime:   time.Duration(pm.avgRenderTime),
		Walls:           int(pm.walls.Load()),
		HitsPerFrame:    pm.hits.Load(),
		PixelsPerFrame:  pm.pixels.Load(),
		FramesPerSecond: fps,
		MemoryUsageMB:   memStats.Alloc / 1024 / 1024,
		Uptime:          time.Since(pm.startTime),
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts returns an alert when rendering alone cannot keep up
// with the target frame rate
func (pm *PerformanceMonitor) CheckPerformanceAlerts(targetFPS float64) []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)
	renderTime := pm.renderTime.Load()
	if renderTime == 0 || targetFPS <= 0 {
		return alerts
	}

	budget := float64(time.Second) / targetFPS
	if float64(renderTime) > budget {
		alerts = append(alerts, PerformanceAlert{
			Type:      "slow_render",
			Message:   "Frame render exceeds the tick budget",
			Value:     float64(renderTime) / float64(time.Millisecond),
			Threshold: budget / float64(time.Millisecond),
			Timestamp: time.Now(),
		})
	}
	return alerts
}

// EnableDetailedLogging enables/disables the moving render average
func (pm *PerformanceMonitor) EnableDetailedLogging(enabled bool) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.enableDetailed = enabled
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.renderTime.Store(0)
	pm.walls.Store(0)
	pm.hits.Store(0)
	pm.pixels.Store(0)

	pm.mutex.Lock()
	pm.avgRenderTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
