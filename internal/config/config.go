package config

import "sync"

const (
	// DefaultCacheBudget is the number of nodes the fractal model caches
	// permanently before it switches to per-frame transient allocation.
	DefaultCacheBudget = 80000

	// DefaultFPSLimit caps the interactive frame rate; 0 disables the cap.
	DefaultFPSLimit = 60

	maxFPSLimit = 1000
)

// RenderSettings holds runtime-adjustable render configuration
type RenderSettings struct {
	mu          sync.RWMutex
	cacheBudget int
	fpsLimit    int
	width       int
	height      int
}

var globalRenderSettings = &RenderSettings{
	cacheBudget: DefaultCacheBudget,
	fpsLimit:    DefaultFPSLimit,
	width:       800,
	height:      600,
}

// GetCacheBudget returns the node cache budget used by newly created models
func GetCacheBudget() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.cacheBudget
}

// SetCacheBudget sets the node cache budget. Negative values mean no caching.
func SetCacheBudget(budget int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if budget < 0 {
		budget = 0
	}
	globalRenderSettings.cacheBudget = budget
}

// GetFPSLimit returns the frame rate cap, 0 when unlimited
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > maxFPSLimit {
		limit = maxFPSLimit
	}
	globalRenderSettings.fpsLimit = limit
}

// GetWindowSize returns the initial rendering surface extents in pixels
func GetWindowSize() (int, int) {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.width, globalRenderSettings.height
}

// SetWindowSize sets the initial rendering surface extents; sizes below one pixel are raised to one
func SetWindowSize(width, height int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	globalRenderSettings.width = width
	globalRenderSettings.height = height
}
