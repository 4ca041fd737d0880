package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/nfnt/resize"

	"github.com/tracelab/go-pathtracer/pkg/core"
	"github.com/tracelab/go-pathtracer/pkg/renderer"
	"github.com/tracelab/go-pathtracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'cornell' or 'cornell-smoke'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels (0 derives it from the scene's aspect ratio)")
	samples := flag.Int("spp", 100, "Samples per pixel")
	maxDepth := flag.Int("depth", 50, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	seed := flag.Int64("seed", 42, "Base random seed")
	thumb := flag.Int("thumb", 0, "Also write a thumbnail bounded by this size in pixels (0 = off)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default       - Checker ground, random spheres, glass/diffuse/metal")
		fmt.Println("  cornell       - Cornell box with quad walls and area lighting")
		fmt.Println("  cornell-smoke - Cornell box with smoke volumes")
		fmt.Println()
		fmt.Println("Output is saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	*height = deriveHeight(*sceneType, *width, *height)

	selectedScene, err := createScene(*sceneType, float64(*width)/float64(*height))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	outputDir := createOutputDir(*sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(selectedScene, *width, *height)
	raytracer.SetNumWorkers(*workers)
	raytracer.SetSeed(*seed)
	raytracer.SetSamplingConfig(core.SamplingConfig{
		SamplesPerPixel:      *samples,
		MaxDepth:             *maxDepth,
		RussianRouletteDepth: 5,
	})

	fmt.Printf("Rendering '%s' at %dx%d, %d spp...\n", *sceneType, *width, *height, *samples)
	img, stats := raytracer.Render()
	fmt.Printf("Render completed in %v with %d workers\n", stats.Elapsed, stats.NumWorkers)

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := savePNG(filename, img); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s\n", filename)

	if *thumb > 0 {
		thumbImg := resize.Thumbnail(uint(*thumb), uint(*thumb), img, resize.Lanczos3)
		thumbName := filepath.Join(outputDir, fmt.Sprintf("render_%s_thumb.png", timestamp))
		if err := savePNG(thumbName, thumbImg); err != nil {
			fmt.Printf("Error saving thumbnail: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %s\n", thumbName)
	}
}

// deriveHeight fills in the image height from the scene's natural aspect
// ratio when the user didn't pick one
func deriveHeight(sceneType string, width, height int) int {
	if height > 0 {
		return height
	}
	switch sceneType {
	case "cornell", "cornell-smoke":
		return width // Square
	default:
		return width * 9 / 16
	}
}

// createScene builds the named scene
func createScene(sceneType string, aspectRatio float64) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(aspectRatio), nil
	case "cornell":
		return scene.NewCornellScene(false), nil
	case "cornell-smoke":
		return scene.NewCornellScene(true), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// createOutputDir returns the output directory for a scene type
func createOutputDir(sceneType string) string {
	return filepath.Join("output", sceneType)
}

// savePNG writes an image to disk as PNG
func savePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
