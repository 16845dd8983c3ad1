package rawpaint

// Brush limits.
const (
	// MaxBrushSize is the largest brush diameter in canvas pixels. It is also
	// the reference size for energy-conservative brushes.
	MaxBrushSize = 200

	// MinBrushSize is the smallest brush diameter in canvas pixels.
	MinBrushSize = 1

	// MinBrushCoarse and MaxBrushCoarse bound the smooth falloff exponent.
	MinBrushCoarse = 0.01
	MaxBrushCoarse = 16
)

// Brush describes the footprint stamped at every point of a painted line.
type Brush struct {
	// Size is the brush diameter in canvas pixels.
	Size float32 `toml:"size"`

	// Intensity scales the color deposited by DrawBrushLine.
	//
	// For an energy-conservative brush it is the per-tap value of a
	// MaxBrushSize stamp. A smaller brush deposits the same total on fewer
	// taps, so its center receives about (MaxBrushSize/Size)² · Intensity:
	// 64 · 0.1 for the default brush.
	Intensity float32 `toml:"intensity"`

	// Smooth enables radial falloff (1 - d/r)^Coarse instead of a hard disc.
	Smooth bool `toml:"smooth"`

	// EnergyConservative normalizes every stamp so that the total deposited
	// intensity does not depend on Size.
	EnergyConservative bool `toml:"energy_conservative"`

	// Coarse is the falloff exponent of a smooth brush.
	Coarse float32 `toml:"coarse"`

	// Noise drops each footprint pixel with probability Noise².
	Noise float32 `toml:"noise"`
}

// DefaultBrush returns the default brush: 25px, smooth, energy-conservative.
func DefaultBrush() Brush {
	return Brush{
		Size:               25,
		Intensity:          0.1,
		Smooth:             true,
		EnergyConservative: true,
		Coarse:             1,
		Noise:              0,
	}
}

// Validate returns a copy of b with every field clamped into its legal range.
func (b Brush) Validate() Brush {
	b.Size = clampF(b.Size, MinBrushSize, MaxBrushSize)
	b.Intensity = max(b.Intensity, 0)
	b.Coarse = clampF(b.Coarse, MinBrushCoarse, MaxBrushCoarse)
	b.Noise = clampF(b.Noise, 0, 1)
	return b
}

// Scrolled returns the brush resized by a scroll-wheel delta: every unit of
// delta grows the brush by ten percent of its current size.
func (b Brush) Scrolled(delta float32) Brush {
	b.Size += delta * 0.1 * b.Size
	b.Size = clampF(b.Size, MinBrushSize, MaxBrushSize)
	return b
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
