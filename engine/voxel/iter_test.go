package voxel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelsmith/isomarch/engine/voxel"
)

func collect(it *voxel.Iter3d) []voxel.Int3 {
	var out []voxel.Int3
	for {
		pos, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, pos)
	}
}

func TestIterSingleCellOrder(t *testing.T) {
	it := voxel.NewIter3d(voxel.Int3{}, voxel.Int3{X: 1, Y: 1, Z: 1})
	want := []voxel.Int3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	}
	require.Equal(t, want, collect(&it))
}

func TestIterExhaustionIsSticky(t *testing.T) {
	it := voxel.NewIter3d(voxel.Int3{}, voxel.Int3{})
	pos, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, voxel.Int3{}, pos)
	for i := 0; i < 3; i++ {
		_, ok = it.Next()
		require.False(t, ok)
	}
}

func TestIterCoversRangeExactlyOnce(t *testing.T) {
	tests := []struct {
		name     string
		min, max voxel.Int3
	}{
		{"origin cube", voxel.Int3{}, voxel.Int3{X: 2, Y: 2, Z: 2}},
		{"offset cube", voxel.Int3{X: 1, Y: 2, Z: 3}, voxel.Int3{X: 3, Y: 4, Z: 5}},
		{"flat slab", voxel.Int3{}, voxel.Int3{X: 4, Y: 0, Z: 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it := voxel.NewIter3d(tc.min, tc.max)
			got := collect(&it)

			wantLen := int(tc.max.X-tc.min.X+1) * int(tc.max.Y-tc.min.Y+1) * int(tc.max.Z-tc.min.Z+1)
			require.Len(t, got, wantLen)

			seen := make(map[voxel.Int3]bool, wantLen)
			for _, pos := range got {
				require.False(t, seen[pos], "duplicate %v", pos)
				seen[pos] = true
				require.GreaterOrEqual(t, pos.X, tc.min.X)
				require.LessOrEqual(t, pos.X, tc.max.X)
				require.GreaterOrEqual(t, pos.Y, tc.min.Y)
				require.LessOrEqual(t, pos.Y, tc.max.Y)
				require.GreaterOrEqual(t, pos.Z, tc.min.Z)
				require.LessOrEqual(t, pos.Z, tc.max.Z)
			}
			require.Equal(t, tc.max, got[len(got)-1], "last coordinate closes the range")
		})
	}
}

func TestIterRowMajorOrder(t *testing.T) {
	it := voxel.NewIter3d(voxel.Int3{}, voxel.Int3{X: 2, Y: 2, Z: 2})
	got := collect(&it)
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		flatPrev := prev.Z*9 + prev.Y*3 + prev.X
		flatCur := cur.Z*9 + cur.Y*3 + cur.X
		require.Equal(t, flatPrev+1, flatCur, "step %d: %v -> %v", i, prev, cur)
	}
}

func TestIterReset(t *testing.T) {
	it := voxel.NewIter3d(voxel.Int3{}, voxel.Int3{X: 1, Y: 1, Z: 1})
	first := collect(&it)
	it.Reset()
	second := collect(&it)
	require.Equal(t, first, second)
}
