package monitoring

import (
	"sync"
	"testing"
	"time"
)

func TestNewPerformanceMonitor(t *testing.T) {
	pm := NewPerformanceMonitor()

	if pm == nil {
		t.Fatal("NewPerformanceMonitor returned nil")
	}

	if pm.enableDetailed != true {
		t.Error("Expected enableDetailed to be true")
	}

	// Check that start time is recent
	if time.Since(pm.startTime) > time.Second {
		t.Error("Start time should be recent")
	}
}

func TestPerformanceMonitorFrameTiming(t *testing.T) {
	pm := NewPerformanceMonitor()

	frameTimer := pm.StartFrame()
	time.Sleep(5 * time.Millisecond) // Simulate some work
	frameTimer.EndFrame()

	if pm.frameCount.Load() != 1 {
		t.Errorf("Expected frame count to be 1, got %d", pm.frameCount.Load())
	}

	minExpectedTime := uint64(5 * time.Millisecond)
	if frameTime := pm.frameTime.Load(); frameTime < minExpectedTime {
		t.Errorf("Expected frame time to be at least %d ns, got %d ns", minExpectedTime, frameTime)
	}

	metrics := pm.GetCurrentMetrics()
	if metrics.FramesPerSecond <= 0 || metrics.FramesPerSecond > 200 {
		t.Errorf("Unexpected FPS %v for a 5ms frame", metrics.FramesPerSecond)
	}
}

func TestPerformanceMonitorRenderStats(t *testing.T) {
	pm := NewPerformanceMonitor()

	rt := pm.StartRender()
	rt.EndRender(4, 900, 120000)

	metrics := pm.GetCurrentMetrics()
	if metrics.Walls != 4 {
		t.Errorf("Expected 4 walls, got %d", metrics.Walls)
	}
	if metrics.HitsPerFrame != 900 {
		t.Errorf("Expected 900 hits, got %d", metrics.HitsPerFrame)
	}
	if metrics.PixelsPerFrame != 120000 {
		t.Errorf("Expected 120000 pixels, got %d", metrics.PixelsPerFrame)
	}
	if metrics.AvgRenderTime != metrics.RenderTime {
		t.Errorf("First sample should seed the average: avg %v, last %v", metrics.AvgRenderTime, metrics.RenderTime)
	}
}

func TestPerformanceAlerts(t *testing.T) {
	pm := NewPerformanceMonitor()
	if alerts := pm.CheckPerformanceAlerts(60); len(alerts) != 0 {
		t.Errorf("Expected no alerts before any frame, got %d", len(alerts))
	}

	pm.renderTime.Store(uint64(50 * time.Millisecond))
	alerts := pm.CheckPerformanceAlerts(60)
	if len(alerts) != 1 || alerts[0].Type != "slow_render" {
		t.Fatalf("Expected one slow_render alert, got %+v", alerts)
	}
	if alerts[0].Value != 50 {
		t.Errorf("Expected alert value 50ms, got %v", alerts[0].Value)
	}
}

func TestPerformanceMonitorConcurrentReads(t *testing.T) {
	pm := NewPerformanceMonitor()
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rt := pm.StartRender()
				rt.EndRender(1, j, j)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = pm.GetCurrentMetrics()
			}
		}()
	}
	wg.Wait()
}

func TestPerformanceMonitorReset(t *testing.T) {
	pm := NewPerformanceMonitor()
	pm.StartFrame().EndFrame()
	pm.StartRender().EndRender(2, 3, 4)

	pm.Reset()

	metrics := pm.GetCurrentMetrics()
	if metrics.Frames != 0 || metrics.HitsPerFrame != 0 || metrics.AvgRenderTime != 0 {
		t.Errorf("Expected counters to be reset, got %+v", metrics)
	}
}

func TestFPSCounter(t *testing.T) {
	c := NewFPSCounter(0.5)

	for i := 0; i < 29; i++ {
		if _, ok := c.Tick(1.0 / 60); ok {
			t.Fatalf("Reported before the interval elapsed (frame %d)", i)
		}
	}

	var fps float64
	var ok bool
	for i := 0; i < 10 && !ok; i++ {
		fps, ok = c.Tick(1.0 / 60)
	}
	if !ok {
		t.Fatal("Expected a report after the interval elapsed")
	}
	if fps < 59 || fps > 61 {
		t.Errorf("Expected about 60 FPS, got %v", fps)
	}
	if c.FPS() != fps {
		t.Errorf("FPS() = %v, want %v", c.FPS(), fps)
	}
}
