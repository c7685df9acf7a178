package fieldgen

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelsmith/isomarch/engine/util"
	"github.com/voxelsmith/isomarch/engine/voxel"
)

// FromSDF samples a signed distance function as a density field. The
// lattice point (x,y,z) is evaluated at origin + (x,y,z)*cellSize, and
// the signed distance maps to density as clamp(0.5 - d/cellSize, 0, 1):
// the SDF interior lands above 0.5, the far field below, so a sweep at
// isolevel 0.5 extracts the SDF boundary.
func FromSDF(s sdf.SDF3, origin mgl32.Vec3, cellSize float64) voxel.FieldFunc {
	return func(x, y, z int32) float32 {
		p := v3.Vec{
			X: float64(origin.X()) + float64(x)*cellSize,
			Y: float64(origin.Y()) + float64(y)*cellSize,
			Z: float64(origin.Z()) + float64(z)*cellSize,
		}
		d := s.Evaluate(p)
		return float32(util.Clamp(0.5-d/cellSize, 0, 1))
	}
}
