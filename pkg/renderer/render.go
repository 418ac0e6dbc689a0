// Package renderer schedules per-pixel estimation across a pool of goroutines.
package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-mc-renderer/pkg/core"
	"github.com/df07/go-mc-renderer/pkg/film"
	"github.com/df07/go-mc-renderer/pkg/integrator"
)

// ErrInvalidConfig is returned for resolutions or sample counts below 1
var ErrInvalidConfig = errors.New("invalid render configuration")

// Config describes one render
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	NumWorkers      int    // 0 uses every logical CPU
	Integrator      string // "pt" or "pt-direct"
}

// Validate checks the configuration without touching camera or scene
func (c Config) Validate() (integrator.Type, error) {
	integratorType, err := integrator.Parse(c.Integrator)
	if err != nil {
		return 0, err
	}
	if c.Width < 1 || c.Height < 1 {
		return 0, fmt.Errorf("%w: resolution %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.SamplesPerPixel < 1 {
		return 0, fmt.Errorf("%w: %d samples per pixel", ErrInvalidConfig, c.SamplesPerPixel)
	}
	return integratorType, nil
}

// Render estimates every pixel of the image once and returns the filled film.
// Each pixel gets its own sampler seeded from its index, so the output does
// not depend on the number of workers or the order results arrive in.
// Render returns only after every worker goroutine has exited.
func Render(cfg Config, cam integrator.Camera, sc integrator.Scene, logger core.Logger) (*film.Film, RenderStats, error) {
	integratorType, err := cfg.Validate()
	if err != nil {
		return nil, RenderStats{}, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	estimator := integrator.New(integratorType)
	width, height, spp := cfg.Width, cfg.Height, cfg.SamplesPerPixel

	pool := NewWorkerPool(cfg.NumWorkers, func(task PixelTask) core.Vec3 {
		sampler := core.NewSeededSampler(int64(task.Y*width + task.X))
		return estimator.Estimate(task.X, task.Y, cam, sc, spp, sampler)
	})

	start := time.Now()
	pool.Start()

	fed := make(chan struct{})
	go func() {
		defer close(fed)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pool.SubmitTask(PixelTask{X: x, Y: y})
			}
		}
	}()

	img := film.New(width, height)
	totalPixels := width * height
	step := max(totalPixels/10, 1)
	for received := 1; received <= totalPixels; received++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("result queue closed after %d of %d pixels", received-1, totalPixels)
		}
		img.Set(result.X, result.Y, result.Color)

		if received%step == 0 || received == totalPixels {
			logger.Printf("Progress: %3d%% (%d/%d pixels)\n", received*100/totalPixels, received, totalPixels)
		}
	}
	elapsed := time.Since(start)

	<-fed
	pool.Stop()

	return img, RenderStats{
		TotalPixels:     totalPixels,
		SamplesPerPixel: spp,
		TotalSamples:    totalPixels * spp,
		NumWorkers:      pool.GetNumWorkers(),
		Integrator:      integratorType.String(),
		Elapsed:         elapsed,
	}, nil
}
