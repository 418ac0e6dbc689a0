package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Pixels estimated
	SamplesPerPixel int           // Camera samples per pixel
	TotalSamples    int           // TotalPixels × SamplesPerPixel
	NumWorkers      int           // Worker goroutines used
	Integrator      string        // Integrator name
	Elapsed         time.Duration // Wall time from pool start to the last result
}

// SamplesPerSecond returns the sampling throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}
