package voxel_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/voxelsmith/isomarch/engine/voxel"
)

func TestNewChunkRejectsTinySizes(t *testing.T) {
	require.Panics(t, func() { voxel.NewChunk(1) })
	require.Panics(t, func() { voxel.NewChunk(0) })
	require.NotPanics(t, func() { voxel.NewChunk(2) })
}

func TestGetSetRoundTrip(t *testing.T) {
	const size = 4
	chunk := voxel.NewChunk(size)

	for z := int32(0); z < size; z++ {
		for y := int32(0); y < size; y++ {
			for x := int32(0); x < size; x++ {
				pos := voxel.Int3{X: x, Y: y, Z: z}
				want := float32(x) + float32(y)*0.25 + float32(z)*0.0625
				require.NoError(t, chunk.Set(pos, want))
				got, err := chunk.Get(pos)
				require.NoError(t, err)
				require.Equal(t, want, got, "round trip at %v", pos)
			}
		}
	}
}

func TestIndexIsBijective(t *testing.T) {
	const size = 5
	chunk := voxel.NewChunk(size)

	seen := make(map[int32]voxel.Int3)
	for z := int32(0); z < size; z++ {
		for y := int32(0); y < size; y++ {
			for x := int32(0); x < size; x++ {
				pos := voxel.Int3{X: x, Y: y, Z: z}
				idx := chunk.Index(pos)
				require.GreaterOrEqual(t, idx, int32(0))
				require.Less(t, idx, int32(size*size*size))
				if prev, collision := seen[idx]; collision {
					t.Fatalf("index %d maps both %v and %v", idx, prev, pos)
				}
				seen[idx] = pos
				require.Equal(t, pos, chunk.PosFromIndex(idx))
			}
		}
	}
	require.Len(t, seen, size*size*size)
}

func TestOutOfRangeAccess(t *testing.T) {
	chunk := voxel.NewChunk(4)

	tests := []struct {
		name string
		pos  voxel.Int3
	}{
		{"negative x", voxel.Int3{X: -1, Y: 0, Z: 0}},
		{"negative y", voxel.Int3{X: 0, Y: -1, Z: 0}},
		{"negative z", voxel.Int3{X: 0, Y: 0, Z: -1}},
		{"x at size", voxel.Int3{X: 4, Y: 0, Z: 0}},
		{"y at size", voxel.Int3{X: 0, Y: 4, Z: 0}},
		{"z at size", voxel.Int3{X: 0, Y: 0, Z: 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := chunk.Get(tc.pos)
			require.True(t, errors.Is(err, voxel.ErrOutOfRange))
			err = chunk.Set(tc.pos, 1.0)
			require.True(t, errors.Is(err, voxel.ErrOutOfRange))
		})
	}
	require.False(t, chunk.Changed(), "failed writes must not mark the chunk")
}

func TestToggle(t *testing.T) {
	chunk := voxel.NewChunk(4)
	pos := voxel.Int3{X: 1, Y: 2, Z: 3}

	require.NoError(t, chunk.Toggle(pos))
	v, err := chunk.Get(pos)
	require.NoError(t, err)
	require.Equal(t, float32(1.0), v)

	require.NoError(t, chunk.Toggle(pos))
	v, err = chunk.Get(pos)
	require.NoError(t, err)
	require.Equal(t, float32(0.0), v)

	require.Error(t, chunk.Toggle(voxel.Int3{X: 9, Y: 0, Z: 0}))
}

func TestChangedFlag(t *testing.T) {
	chunk := voxel.NewChunk(4)
	require.False(t, chunk.Changed())

	require.NoError(t, chunk.Set(voxel.Int3{X: 1, Y: 1, Z: 1}, 0.5))
	require.True(t, chunk.Changed())

	chunk.ClearChanged()
	require.False(t, chunk.Changed())

	chunk.Fill(func(x, y, z int32) float32 { return 0 })
	require.True(t, chunk.Changed())
}

func TestFillUsesLatticeOrder(t *testing.T) {
	const size = 3
	chunk := voxel.NewChunk(size)
	chunk.Fill(func(x, y, z int32) float32 {
		return float32(chunk.Index(voxel.Int3{X: x, Y: y, Z: z}))
	})
	for idx := int32(0); idx < size*size*size; idx++ {
		got, err := chunk.Get(chunk.PosFromIndex(idx))
		require.NoError(t, err)
		require.Equal(t, float32(idx), got)
	}
}

func TestCellRange(t *testing.T) {
	chunk := voxel.NewChunk(4)
	min, max := chunk.CellRange()
	require.Equal(t, voxel.Int3{}, min)
	require.Equal(t, voxel.Int3{X: 2, Y: 2, Z: 2}, max)
}
