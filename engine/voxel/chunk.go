package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// ErrOutOfRange is returned when a lattice coordinate falls outside
// the chunk on any axis.
var ErrOutOfRange = errors.New("lattice position out of range")

// FieldFunc produces a scalar density for a lattice point. Implementations
// must be pure functions of the coordinates so a bulk fill is reproducible.
type FieldFunc func(x, y, z int32) float32

// Chunk owns the scalar density field for one cubic region of the lattice.
// Values are conventionally in [0,1] with border points held at zero.
// A Chunk also carries the traversal and mesh accumulation state for its
// own sweeps, so one value is everything a caller needs per region.
//
// Chunks are not synchronized. Callers serialize edits against sweeps;
// distinct chunks share nothing and may be swept concurrently.
type Chunk struct {
	points  []float32
	size    int32
	changed bool

	state    SweepState
	isolevel float32
	iter     Iter3d
	buffer   ChunkMesh
}

// NewChunk creates a chunk of the given edge length with an all-zero field.
// Panics if size < 2, since no cell fits in a smaller lattice.
func NewChunk(size int32) *Chunk {
	if size < 2 {
		panic(errors.Errorf("chunk size must be at least 2, got %d", size))
	}
	c := &Chunk{
		points: make([]float32, size*size*size),
		size:   size,
	}
	min, max := c.CellRange()
	c.iter = NewIter3d(min, max)
	return c
}

func pointIndex(pos Int3, size int32) int32 {
	return pos.Z*size*size + pos.Y*size + pos.X
}

// Size returns the edge length in lattice points.
func (c *Chunk) Size() int32 {
	return c.size
}

// Contains reports whether pos is a valid lattice point of this chunk.
func (c *Chunk) Contains(pos Int3) bool {
	return pos.X >= 0 && pos.X < c.size &&
		pos.Y >= 0 && pos.Y < c.size &&
		pos.Z >= 0 && pos.Z < c.size
}

// Index maps a lattice point to its flat storage index. External fill
// code that writes point data directly must use this same mapping.
func (c *Chunk) Index(pos Int3) int32 {
	return pointIndex(pos, c.size)
}

// PosFromIndex is the inverse of Index.
func (c *Chunk) PosFromIndex(idx int32) Int3 {
	z := idx / (c.size * c.size)
	idx -= z * c.size * c.size
	y := idx / c.size
	x := idx % c.size
	return Int3{x, y, z}
}

// Get returns the scalar at pos, or ErrOutOfRange.
func (c *Chunk) Get(pos Int3) (float32, error) {
	if !c.Contains(pos) {
		return 0, errors.Wrapf(ErrOutOfRange, "get %v in chunk of size %d", pos, c.size)
	}
	return c.points[c.Index(pos)], nil
}

// MustGet is Get for callers that already guarantee pos is in range,
// such as the sweep loop. Panics on a contract violation.
func (c *Chunk) MustGet(pos Int3) float32 {
	v, err := c.Get(pos)
	if err != nil {
		panic(err)
	}
	return v
}

// Set overwrites the scalar at pos and marks the chunk changed.
func (c *Chunk) Set(pos Int3, value float32) error {
	if !c.Contains(pos) {
		return errors.Wrapf(ErrOutOfRange, "set %v in chunk of size %d", pos, c.size)
	}
	c.points[c.Index(pos)] = value
	c.changed = true
	return nil
}

// Toggle flips the point at pos between 1.0 and 0.0, the single-voxel
// edit a picking collaborator issues.
func (c *Chunk) Toggle(pos Int3) error {
	value, err := c.Get(pos)
	if err != nil {
		return err
	}
	if value == 1.0 {
		return c.Set(pos, 0.0)
	}
	return c.Set(pos, 1.0)
}

// Fill overwrites every lattice point from the field function, in flat
// index order, and marks the chunk changed.
func (c *Chunk) Fill(f FieldFunc) {
	for z := int32(0); z < c.size; z++ {
		for y := int32(0); y < c.size; y++ {
			for x := int32(0); x < c.size; x++ {
				c.points[pointIndex(Int3{x, y, z}, c.size)] = f(x, y, z)
			}
		}
	}
	c.changed = true
}

// Changed reports whether any point was written since the last ClearChanged.
// Driving code polls this to retrigger dependent work.
func (c *Chunk) Changed() bool {
	return c.changed
}

func (c *Chunk) ClearChanged() {
	c.changed = false
}

// CellRange returns the inclusive range of cell origins for this chunk.
// A cell needs a corner at +1 on every axis, so the last origin is size-2.
func (c *Chunk) CellRange() (Int3, Int3) {
	return Int3{0, 0, 0}, Int3{c.size - 2, c.size - 2, c.size - 2}
}

// Int3 is an integer lattice coordinate.
type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) Sub(other Int3) Int3 {
	return Int3{i.X - other.X, i.Y - other.Y, i.Z - other.Z}
}

func (i Int3) Mul(factor int32) Int3 {
	i.X *= factor
	i.Y *= factor
	i.Z *= factor
	return i
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}

func (i Int3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", i.X, i.Y, i.Z)
}
