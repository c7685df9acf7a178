// Package fieldgen provides field population collaborators: pure functions
// of lattice coordinates that fill a chunk's scalar field.
package fieldgen

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/voxelsmith/isomarch/engine/util"
	"github.com/voxelsmith/isomarch/engine/voxel"
)

// NoiseParams configures the layered fractal fill.
type NoiseParams struct {
	Octaves     int
	Frequency   float64
	Lacunarity  float64
	Persistence float64
	Offset      float64
	Scale       float64
	Seed        int64
}

func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		Octaves:     4,
		Frequency:   0.1,
		Lacunarity:  2.0,
		Persistence: 0.5,
		Offset:      0.0,
		Scale:       1.0,
		Seed:        32,
	}
}

// Fractal builds a field function that layers opensimplex octaves.
// Deterministic per seed; output is clamped to [0,1].
func Fractal(p NoiseParams) voxel.FieldFunc {
	noise := opensimplex.NewNormalized(p.Seed)
	return func(x, y, z int32) float32 {
		frequency := p.Frequency
		amplitude := 1.0
		total := 0.0
		totalAmplitude := 0.0
		for octave := 0; octave < p.Octaves; octave++ {
			total += noise.Eval3(float64(x)*frequency, float64(y)*frequency, float64(z)*frequency) * amplitude
			totalAmplitude += amplitude
			amplitude *= p.Persistence
			frequency *= p.Lacunarity
		}
		value := total/totalAmplitude*p.Scale + p.Offset
		return float32(util.Clamp(value, 0, 1))
	}
}

// ClosedBorder forces border lattice points to zero so the extracted
// surface stays closed away from the chunk edges.
func ClosedBorder(size int32, inner voxel.FieldFunc) voxel.FieldFunc {
	return func(x, y, z int32) float32 {
		if x == 0 || y == 0 || z == 0 || x == size-1 || y == size-1 || z == size-1 {
			return 0.0
		}
		return inner(x, y, z)
	}
}
