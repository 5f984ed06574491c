package starfield

import (
	"math"
	"math/rand"
	"time"

	"memoa/vmath"
)

// innerShellFraction is both the inner generation bound and the
// radius a particle resets to after escaping the field
const innerShellFraction = 0.3

// RGB is a particle color; the renderer maps it to a terminal color
type RGB struct {
	R, G, B uint8
}

// Config sizes and paces the field
type Config struct {
	Count int
	Depth float64 // outer radius of the field
	Speed float64 // velocity scale per frame
	Size  float64 // base particle size
	Base  RGB     // base color, jittered ±15% per particle

	// Seed fixes the generation for tests; 0 means time-seeded
	Seed int64
}

// Field is a decorative bounded particle system. Buffers are
// allocated once and mutated in place every frame; nothing else
// reads them, so there is no per-frame allocation
type Field struct {
	positions  []vmath.Vec3
	velocities []vmath.Vec3
	sizes      []float64
	colors     []RGB

	depth float64
}

// New generates count particles uniformly distributed in a spherical
// shell between 0.3·depth and depth, via inverse-transform sampling
// of the spherical angles
func New(cfg Config) *Field {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	f := &Field{
		positions:  make([]vmath.Vec3, cfg.Count),
		velocities: make([]vmath.Vec3, cfg.Count),
		sizes:      make([]float64, cfg.Count),
		colors:     make([]RGB, cfg.Count),
		depth:      cfg.Depth,
	}

	for i := 0; i < cfg.Count; i++ {
		radius := cfg.Depth * (innerShellFraction + (1-innerShellFraction)*rng.Float64())
		theta := rng.Float64() * vmath.TwoPi
		phi := math.Acos(2*rng.Float64() - 1)

		f.positions[i] = vmath.Vec3{
			X: radius * math.Sin(phi) * math.Cos(theta),
			Y: radius * math.Sin(phi) * math.Sin(theta),
			Z: radius * math.Cos(phi),
		}
		f.velocities[i] = vmath.Vec3{
			X: (rng.Float64() - 0.5) * cfg.Speed,
			Y: (rng.Float64() - 0.5) * cfg.Speed,
			Z: (rng.Float64() - 0.5) * cfg.Speed,
		}
		f.sizes[i] = cfg.Size * (0.5 + rng.Float64())
		f.colors[i] = jitterColor(cfg.Base, rng)
	}

	return f
}

// jitterColor perturbs each channel ±15% around the base
func jitterColor(base RGB, rng *rand.Rand) RGB {
	j := func(c uint8) uint8 {
		v := float64(c) * (0.85 + 0.3*rng.Float64())
		return uint8(vmath.Clamp(v, 0, 255))
	}
	return RGB{R: j(base.R), G: j(base.G), B: j(base.B)}
}

// Step integrates one frame: position += velocity, with a hard radial
// reset (not a bounce) for particles that escape the field
func (f *Field) Step() {
	for i := range f.positions {
		p := vmath.V3Add(f.positions[i], f.velocities[i])

		if vmath.V3Mag(p) > f.depth {
			p = vmath.V3Scale(vmath.V3Normalize(p), innerShellFraction*f.depth)
		}
		f.positions[i] = p
	}
}

// Update implements the frame system interface
func (f *Field) Update(time.Duration) { f.Step() }

// Priority orders the field after content systems; it depends on
// nothing and nothing depends on it
func (f *Field) Priority() int { return 30 }

// Len returns the particle count
func (f *Field) Len() int { return len(f.positions) }

// Positions exposes the shared position buffer; callers must treat it
// as read-only
func (f *Field) Positions() []vmath.Vec3 { return f.positions }

// Sizes exposes the per-particle size buffer
func (f *Field) Sizes() []float64 { return f.sizes }

// Colors exposes the per-particle color buffer
func (f *Field) Colors() []RGB { return f.colors }
