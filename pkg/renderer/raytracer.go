package renderer

import (
	"image"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/tracelab/go-pathtracer/pkg/core"
	"github.com/tracelab/go-pathtracer/pkg/integrator"
)

// Scene interface to avoid circular imports; satisfied by scene.Scene
type Scene interface {
	GetCamera() *Camera
	GetWorld() core.Hittable
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// RenderStats describes a completed render pass
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	NumWorkers      int
	Elapsed         time.Duration
}

// Raytracer renders a scene by tracing paths through each pixel, splitting
// the image into row bands rendered in parallel. Each band gets its own
// seeded sampler, so renders are deterministic for a fixed seed and
// independent of worker scheduling.
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     core.SamplingConfig
	numWorkers int
	seed       int64
	logger     core.Logger
}

// NewRaytracer creates a new raytracer with default sampling configuration
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     core.DefaultSamplingConfig(),
		numWorkers: 0, // one per CPU
		seed:       42,
		logger:     log.Default(),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config core.SamplingConfig) {
	rt.config = config
}

// SetNumWorkers sets the worker count; <= 0 uses one per CPU
func (rt *Raytracer) SetNumWorkers(numWorkers int) {
	rt.numWorkers = numWorkers
}

// SetSeed sets the base random seed for the render
func (rt *Raytracer) SetSeed(seed int64) {
	rt.seed = seed
}

// SetLogger replaces the default logger
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// RenderLinear renders the scene into a linear radiance buffer in row-major
// order, top row first
func (rt *Raytracer) RenderLinear() ([]core.Vec3, RenderStats) {
	startTime := time.Now()

	pixels := make([]core.Vec3, rt.width*rt.height)
	pt := integrator.NewPathTracingIntegrator(rt.config)
	camera := rt.scene.GetCamera()

	const bandHeight = 8
	numBands := (rt.height + bandHeight - 1) / bandHeight

	pool := NewWorkerPool(rt.numWorkers, numBands, func(task RowTask) RowResult {
		return rt.renderBand(task, pixels, pt, camera)
	})
	pool.Start()

	for band := 0; band < numBands; band++ {
		startRow := band * bandHeight
		endRow := min(startRow+bandHeight, rt.height)
		pool.Submit(RowTask{
			StartRow: startRow,
			EndRow:   endRow,
			Seed:     rt.seed + int64(band),
		})
	}
	pool.Stop()

	totalSamples := 0
	for result := range pool.Results() {
		if result.Err != nil {
			rt.logger.Printf("band starting at row %d failed: %v", result.StartRow, result.Err)
			continue
		}
		totalSamples += result.Samples
	}

	stats := RenderStats{
		Width:           rt.width,
		Height:          rt.height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		NumWorkers:      pool.NumWorkers(),
		Elapsed:         time.Since(startTime),
	}
	rt.logger.Printf("rendered %dx%d at %d spp with %d workers in %v",
		stats.Width, stats.Height, stats.SamplesPerPixel, stats.NumWorkers, stats.Elapsed)

	return pixels, stats
}

// Render renders the scene and converts it to a gamma-corrected image
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	pixels, stats := rt.RenderLinear()
	return ToImage(pixels, rt.width, rt.height), stats
}

// renderBand traces all pixels in a band of rows. Bands are disjoint, so
// writing into the shared buffer needs no locking.
func (rt *Raytracer) renderBand(task RowTask, pixels []core.Vec3, pt *integrator.PathTracingIntegrator, camera *Camera) RowResult {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(task.Seed)))
	white := core.NewVec3(1, 1, 1)
	samples := 0

	for y := task.StartRow; y < task.EndRow; y++ {
		for x := 0; x < rt.width; x++ {
			colorAccum := core.Vec3{}

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				// Jittered pixel coordinates; row 0 is the top of the image
				jitter := sampler.Get2D()
				s := (float64(x) + jitter.X) / float64(rt.width)
				t := (float64(rt.height-1-y) + jitter.Y) / float64(rt.height)

				ray := camera.GetRay(s, t, sampler)
				colorAccum = colorAccum.Add(pt.RayColor(ray, rt.scene, sampler, rt.config.MaxDepth, white))
			}

			pixels[y*rt.width+x] = colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
			samples += rt.config.SamplesPerPixel
		}
	}

	return RowResult{StartRow: task.StartRow, Samples: samples}
}

// ToImage converts a linear radiance buffer to an RGBA image with gamma
// correction and clamping
func ToImage(pixels []core.Vec3, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixels[y*width+x]))
		}
	}
	return img
}

// vec3ToColor converts a Vec3 color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
