package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// interpEpsilon guards the edge interpolation against division by a
// near-zero value gradient.
const interpEpsilon = 1e-5

// Triangle is one face of the extracted surface, three positions in
// winding order.
type Triangle [3]mgl32.Vec3

// GridCell is the unit cube evaluated by one marching step: 8 corner
// positions in a fixed order and the 8 scalar values sampled there.
//
//	    4--------5     *-----4------*
//	   /|       /|    /|           /|
//	  / |      / |   7 |          5 |
//	 /  |     /  |  /  8         /  9
//	7--------6   | *------6-----*   |
//	|   |    |   | |   |        |   |
//	|   0----|---1 |   *-----0--|---*
//	|  /     |  /  11 /         10 /
//	| /      | /   | 3          | 1
//	|/       |/    |/           |/
//	3--------2     *-----2------*
type GridCell struct {
	Position [8]mgl32.Vec3
	Value    [8]float32
}

var cornerOffsets = [8]Int3{
	{0, 0, 0},
	{1, 0, 0},
	{1, 0, 1},
	{0, 0, 1},
	{0, 1, 0},
	{1, 1, 0},
	{1, 1, 1},
	{0, 1, 1},
}

// NewGridCell lays out the corners of the cell whose origin is the given
// lattice coordinate. Values start at zero until sampled.
func NewGridCell(origin Int3) GridCell {
	var cell GridCell
	for i, offset := range cornerOffsets {
		cell.Position[i] = origin.Add(offset).ToVec3()
	}
	return cell
}

// SampleFrom reads the 8 corner values out of the chunk. The caller
// guarantees the cell lies within the chunk's cell range.
func (g *GridCell) SampleFrom(c *Chunk, origin Int3) {
	for i, offset := range cornerOffsets {
		g.Value[i] = c.MustGet(origin.Add(offset))
	}
}

// MarchCube triangulates one cell against the isolevel. Corners with a
// value below the isolevel count as set; the triangle slots are walked in
// reverse so the winding faces outward under that convention. The two
// conventions only work as a pair, so neither may change independently.
// Returns nil when the cell is entirely on one side of the surface.
// Pure and deterministic for identical inputs.
func MarchCube(grid *GridCell, isolevel float32) []Triangle {
	cubeIndex := 0
	for i := 0; i < 8; i++ {
		if grid.Value[i] < isolevel {
			cubeIndex |= 1 << i
		}
	}

	edge := edgeTable[cubeIndex]
	if edge == 0 {
		return nil
	}

	var vertices [12]mgl32.Vec3
	for i := 0; i < 12; i++ {
		if edge&(1<<i) != 0 {
			u, v := edgeConnection[i][0], edgeConnection[i][1]
			vertices[i] = vertexInterp(
				isolevel,
				grid.Position[u],
				grid.Position[v],
				grid.Value[u],
				grid.Value[v],
			)
		}
	}

	var triangles []Triangle
	triangulation := triangleTable[cubeIndex]
	for i := 0; i < 16; i += 3 {
		if triangulation[i] < 0 {
			break
		}
		triangles = append(triangles, Triangle{
			vertices[triangulation[i+2]],
			vertices[triangulation[i+1]],
			vertices[triangulation[i]],
		})
	}
	return triangles
}

// vertexInterp places a vertex on the edge p1-p2 where the field crosses
// the isolevel. Exact at the endpoints, and the degenerate-gradient branch
// keeps the division away from zero.
func vertexInterp(isolevel float32, p1, p2 mgl32.Vec3, valp1, valp2 float32) mgl32.Vec3 {
	if abs(isolevel-valp1) < interpEpsilon {
		return p1
	}
	if abs(isolevel-valp2) < interpEpsilon {
		return p2
	}
	if abs(valp1-valp2) < interpEpsilon {
		return p1
	}
	mu := (isolevel - valp1) / (valp2 - valp1)
	return p1.Add(p2.Sub(p1).Mul(mu))
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
