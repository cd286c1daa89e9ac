// Package main renders the particle vortex backdrop headlessly into a PNG.
//
// Usage:
//
//	go run ./cmd/vortex-snapshot [flags]
//
// Flags:
//
//	--config <path>      Vortex config file (default: data/vortex.yaml, defaults when missing)
//	--width, --height    Image size in pixels (default: 1280x800)
//	--seed <n>           Random seed, overrides the config (default: 1)
//	--particles <n>      Particle count, overrides the config
//	--ticks <n>          Simulation ticks to run (default: 240)
//	--trails             Accumulate every tick instead of keeping only the last one
//	--out <path>         Output PNG (default: vortex.png)
//	--verbose            Enable verbose logging
//
// Purpose:
//   - Reproducible golden images of the backdrop for a given seed
//   - Tuning data/vortex.yaml without starting the page
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/decker502/portfolio/internal/raster"
	"github.com/decker502/portfolio/internal/vortex"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/utils"
)

var (
	configFlag    = flag.String("config", config.VortexConfigPath, "Vortex config file")
	widthFlag     = flag.Int("width", config.DefaultWindowWidth, "Image width in pixels")
	heightFlag    = flag.Int("height", config.DefaultWindowHeight, "Image height in pixels")
	seedFlag      = flag.Int64("seed", 1, "Random seed (0 = time based)")
	particlesFlag = flag.Int("particles", 0, "Particle count override")
	ticksFlag     = flag.Int("ticks", 240, "Simulation ticks to run")
	trailsFlag    = flag.Bool("trails", false, "Accumulate all ticks into the image")
	outFlag       = flag.String("out", "vortex.png", "Output PNG path")
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vortex-snapshot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}
	cfg.Seed = *seedFlag
	if *particlesFlag > 0 {
		cfg.ParticleCount = *particlesFlag
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if *widthFlag <= 0 || *heightFlag <= 0 || *ticksFlag <= 0 {
		return fmt.Errorf("width, height and ticks must be positive")
	}

	bg, err := utils.ParseHexColor(cfg.BackgroundColor)
	if err != nil {
		return err
	}

	sim := vortex.New(cfg.SimulationConfig(), nil, nil)
	sim.Resize(*widthFlag, *heightFlag)
	sim.InitAll()
	log.Printf("[Snapshot] %dx%d, %d particles, seed %d", *widthFlag, *heightFlag, cfg.ParticleCount, sim.Seed())

	canvas := raster.NewCanvas(*widthFlag, *heightFlag, bg)
	for i := 0; i < *ticksFlag; i++ {
		if !*trailsFlag {
			canvas.Clear(bg)
		}
		sim.Tick(canvas)
	}
	log.Printf("[Snapshot] %d ticks, %d segments", sim.TickCount(), canvas.Segments())

	f, err := os.Create(*outFlag)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *outFlag, err)
	}
	defer f.Close()

	if err := png.Encode(f, canvas.Image()); err != nil {
		return fmt.Errorf("failed to encode %s: %w", *outFlag, err)
	}
	fmt.Printf("wrote %s (seed %d)\n", *outFlag, sim.Seed())
	return nil
}

// loadConfig reads the vortex config from disk. A missing default file falls
// back to the built-in defaults.
func loadConfig(path string) (*config.VortexConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && path == config.VortexConfigPath {
		log.Printf("[Snapshot] %s not found, using defaults", path)
		return config.DefaultVortexConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := config.ParseVortexConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
