package main

import (
	"flag"
	"fmt"
	"image/png"
	stdmath "math"
	"os"
	"time"

	"github.com/user/go-phong-raytracer/pkg/math"
	"github.com/user/go-phong-raytracer/pkg/renderer"
	"github.com/user/go-phong-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "showcase", "Scene type: 'showcase' or 'default'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 400, "Image height in pixels")
	fov := flag.Float64("fov", 60, "Vertical field of view in degrees")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	output := flag.String("out", "render.png", "Output PNG file")
	ppmPath := flag.String("ppm", "", "Also write a plain-text PPM file to this path")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Phong Ray Caster")
		fmt.Println("Usage: raycaster [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  showcase - patterned spheres on a checkered floor plane")
		fmt.Println("  default  - the canonical two-sphere test world")
		return
	}

	logger := renderer.NewDefaultLogger()

	if err := run(*sceneType, *width, *height, *fov, *workers, *output, *ppmPath, logger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(sceneType string, width, height int, fovDegrees float64, workers int, output, ppmPath string, logger renderer.Logger) error {
	var world *scene.World
	var viewTransform math.Matrix4

	switch sceneType {
	case "showcase":
		world, viewTransform = scene.NewShowcaseScene()
	case "default":
		world = scene.NewDefaultWorld()
		viewTransform = math.ViewTransform(
			math.NewPoint3(0, 0, -5),
			math.Origin,
			math.UnitY,
		)
	default:
		return fmt.Errorf("unknown scene type %q", sceneType)
	}

	camera := renderer.NewCamera(width, height, fovDegrees*stdmath.Pi/180)
	camera.SetTransform(viewTransform)

	logger.Printf("Rendering %s scene at %dx%d...\n", sceneType, width, height)

	startTime := time.Now()
	canvas := camera.RenderParallel(world, renderer.RenderOptions{NumWorkers: workers})
	logger.Printf("Render completed in %v\n", time.Since(startTime))

	if err := writePNG(output, canvas); err != nil {
		return err
	}
	logger.Printf("Image saved to: %s\n", output)

	if ppmPath != "" {
		if err := writePPM(ppmPath, canvas); err != nil {
			return err
		}
		logger.Printf("PPM saved to: %s\n", ppmPath)
	}

	return nil
}

func writePNG(path string, canvas *renderer.Canvas) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, canvas.ToImage()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func writePPM(path string, canvas *renderer.Canvas) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := canvas.WritePPM(file); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
