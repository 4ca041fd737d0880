package core

// SamplingConfig contains rendering configuration shared by the integrator
// and the renderer
type SamplingConfig struct {
	SamplesPerPixel      int // Number of rays per pixel
	MaxDepth             int // Maximum ray bounce depth
	RussianRouletteDepth int // Bounce count after which paths may terminate early (0 disables)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel:      100,
		MaxDepth:             50,
		RussianRouletteDepth: 5,
	}
}
