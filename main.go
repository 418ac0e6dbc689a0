package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-mc-renderer/pkg/camera"
	"github.com/df07/go-mc-renderer/pkg/core"
	"github.com/df07/go-mc-renderer/pkg/film"
	"github.com/df07/go-mc-renderer/pkg/loaders"
	"github.com/df07/go-mc-renderer/pkg/renderer"
	"github.com/df07/go-mc-renderer/pkg/scene"
	"github.com/df07/go-mc-renderer/pkg/sky"
)

// outputDir is where rendered images are written
const outputDir = "images"

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Monte Carlo Renderer")
		fmt.Fprintln(os.Stderr, "Usage: mcrender <scene.toml>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "Output is saved to %s/image_<timestamp>_<spp>.<png|hdr>\n", outputDir)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		fatalf("path for the scene .toml must be specified")
	}

	if _, err := run(flag.Arg(0), outputDir, core.NewDefaultLogger()); err != nil {
		fatalf("%v", err)
	}
}

// run renders the scene file and returns the path of the saved image
func run(scenePath, outDir string, logger core.Logger) (string, error) {
	startTime := time.Now()
	logger.Printf("start: %s\n", startTime.Format(time.RFC3339))
	logger.Printf("loading: %s\n", scenePath)

	desc, err := loaders.LoadDescription(scenePath)
	if err != nil {
		return "", err
	}
	for _, key := range desc.Undecoded {
		logger.Printf("warning: unknown key %q ignored\n", key)
	}

	sc, err := scene.Build(desc, filepath.Dir(scenePath))
	if err != nil {
		return "", fmt.Errorf("failed to build scene: %w", err)
	}
	if ibl, ok := sc.Sky.(*sky.ImageBased); ok && !ibl.HasExpectedAspect() {
		logger.Printf("warning: environment map %s is not 2:1, lookups will wrap\n", desc.Sky.Path)
	}

	format, err := film.ParseFormat(desc.Film.Output)
	if err != nil {
		return "", err
	}

	width, height := desc.Film.Resolution[0], desc.Film.Resolution[1]
	cam := camera.New(cameraConfig(desc))

	cfg := renderer.Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: desc.Renderer.Samples,
		NumWorkers:      renderer.ResolveWorkerCount(desc.Renderer.Threads),
		Integrator:      desc.Renderer.Integrator,
	}
	logger.Printf("resolution: %dx%d\n", width, height)
	logger.Printf("spp: %d\n", cfg.SamplesPerPixel)
	logger.Printf("threads: %d\n", cfg.NumWorkers)
	logger.Printf("integrator: %s\n", cfg.Integrator)

	img, stats, err := renderer.Render(cfg, cam, sc, logger)
	if err != nil {
		return "", err
	}
	logger.Printf("rendered %d samples in %v (%.0f samples/s)\n", stats.TotalSamples, stats.Elapsed, stats.SamplesPerSecond())

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	savePath := film.OutputPath(outDir, time.Now(), cfg.SamplesPerPixel, format)
	logger.Printf("saving: %s\n", savePath)
	if err := film.Save(img, savePath, format, desc.Film.Gamma); err != nil {
		return "", err
	}

	endTime := time.Now()
	logger.Printf("end: %s\n", endTime.Format(time.RFC3339))
	logger.Printf("elapse: %.3fs\n", endTime.Sub(startTime).Seconds())
	return savePath, nil
}

func cameraConfig(desc *loaders.Description) camera.Config {
	c := desc.Camera
	return camera.Config{
		Position:       core.NewVec3(c.Position[0], c.Position[1], c.Position[2]),
		LookAt:         core.NewVec3(c.LookAt[0], c.LookAt[1], c.LookAt[2]),
		Up:             core.NewVec3(c.Up[0], c.Up[1], c.Up[2]),
		VerticalFOV:    c.FOV,
		ApertureRadius: c.ApertureRadius,
		FocusDistance:  c.FocusDistance,
		Sensitivity:    c.Sensitivity,
		Width:          desc.Film.Resolution[0],
		Height:         desc.Film.Resolution[1],
	}
}

// fatalf prints the message to stderr and exits with status 1
func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
