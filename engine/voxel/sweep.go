package voxel

import (
	"fmt"

	"github.com/voxelsmith/isomarch/engine/util"
)

// SweepState tracks the remesh lifecycle of a chunk.
type SweepState int

const (
	Idle SweepState = iota
	Sweeping
)

// Remesh runs one eager full sweep: every interior cell is evaluated
// against the isolevel and the resulting triangles are assembled into an
// indexed mesh. The accumulation buffer and iterator are reset first, so
// repeated calls are independent.
func (c *Chunk) Remesh(isolevel float32) Mesh {
	c.BeginSweep(isolevel)
	for !c.StepSweep() {
	}
	return c.SweepMesh()
}

// BeginSweep moves the chunk into the sweeping state: the cell iterator
// rewinds and the triangle buffer clears. A sweep already in progress is
// abandoned and restarted.
func (c *Chunk) BeginSweep(isolevel float32) {
	c.iter.Reset()
	c.buffer.Reset()
	c.isolevel = isolevel
	c.state = Sweeping
	util.LogVoxelDebug(fmt.Sprintf("[March] start sweep, isolevel %.3f", isolevel))
}

// StepSweep evaluates the next cell of the running sweep and reports
// whether the sweep completed on this step. One call per external tick
// gives the throttled mode; its final output is identical to Remesh.
// Calling StepSweep on an idle chunk reports completion immediately.
func (c *Chunk) StepSweep() bool {
	if c.state != Sweeping {
		return true
	}

	pos, ok := c.iter.Next()
	if !ok {
		c.state = Idle
		util.LogVoxelDebug(fmt.Sprintf("[March] chunk meshed into %d triangles", c.buffer.TriangleCount()))
		return true
	}

	cell := NewGridCell(pos)
	cell.SampleFrom(c, pos)
	if triangles := MarchCube(&cell, c.isolevel); triangles != nil {
		c.buffer.Append(triangles...)
	}
	return false
}

// Sweeping reports whether a throttled sweep is in progress.
func (c *Chunk) Sweeping() bool {
	return c.state == Sweeping
}

// SweepMesh converts the triangles accumulated by the last completed
// sweep into an indexed mesh. Valid after StepSweep has reported
// completion; the conversion itself has no state of its own and may be
// called repeatedly.
func (c *Chunk) SweepMesh() Mesh {
	return c.buffer.BuildIndexed()
}
