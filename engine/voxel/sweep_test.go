package voxel_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/voxelsmith/isomarch/engine/voxel"
)

// singlePointChunk returns a size-4 chunk with one interior lattice point
// raised to 1.0 in an otherwise zero field.
func singlePointChunk(t *testing.T) *voxel.Chunk {
	t.Helper()
	chunk := voxel.NewChunk(4)
	require.NoError(t, chunk.Set(voxel.Int3{X: 2, Y: 2, Z: 2}, 1.0))
	return chunk
}

// edgeUseCounts maps every undirected triangle edge, keyed by vertex
// positions, to the number of faces that use it.
func edgeUseCounts(mesh voxel.Mesh) map[[2]mgl32.Vec3]int {
	counts := make(map[[2]mgl32.Vec3]int)
	for i := 0; i < len(mesh.Indices); i += 3 {
		corners := [3]mgl32.Vec3{
			mesh.Positions[mesh.Indices[i]],
			mesh.Positions[mesh.Indices[i+1]],
			mesh.Positions[mesh.Indices[i+2]],
		}
		for e := 0; e < 3; e++ {
			a, b := corners[e], corners[(e+1)%3]
			if b[0] < a[0] || (b[0] == a[0] && b[1] < a[1]) || (b[0] == a[0] && b[1] == a[1] && b[2] < a[2]) {
				a, b = b, a
			}
			counts[[2]mgl32.Vec3{a, b}]++
		}
	}
	return counts
}

func TestRemeshSinglePointIsClosed(t *testing.T) {
	chunk := singlePointChunk(t)
	mesh := chunk.Remesh(0.5)

	require.False(t, mesh.IsEmpty())
	// Eight cells touch the raised point, each cutting off one corner.
	require.Equal(t, 8, mesh.TriangleCount())

	for edge, count := range edgeUseCounts(mesh) {
		require.Equal(t, 2, count, "edge %v is not shared by exactly two faces", edge)
	}
}

func TestRemeshAboveAllValuesIsEmpty(t *testing.T) {
	chunk := singlePointChunk(t)
	mesh := chunk.Remesh(1.5)
	require.True(t, mesh.IsEmpty())
	require.Equal(t, 0, mesh.TriangleCount())
}

func TestRemeshIsRepeatable(t *testing.T) {
	chunk := singlePointChunk(t)
	first := chunk.Remesh(0.5)
	second := chunk.Remesh(0.5)
	require.Equal(t, first, second)
}

func TestThrottledSweepMatchesEagerSweep(t *testing.T) {
	eager := singlePointChunk(t)
	want := eager.Remesh(0.5)

	throttled := singlePointChunk(t)
	throttled.BeginSweep(0.5)
	require.True(t, throttled.Sweeping())

	steps := 0
	for !throttled.StepSweep() {
		steps++
	}
	require.False(t, throttled.Sweeping())
	// 27 cells plus the exhausting call.
	require.Equal(t, 27, steps)
	require.Equal(t, want, throttled.SweepMesh())
}

func TestStepSweepOnIdleChunkIsDone(t *testing.T) {
	chunk := voxel.NewChunk(4)
	require.False(t, chunk.Sweeping())
	require.True(t, chunk.StepSweep())
}

func TestBeginSweepRestartsAbandonedSweep(t *testing.T) {
	chunk := singlePointChunk(t)
	chunk.BeginSweep(0.5)
	chunk.StepSweep()
	chunk.StepSweep()

	chunk.BeginSweep(0.5)
	for !chunk.StepSweep() {
	}
	require.Equal(t, 8, chunk.SweepMesh().TriangleCount())
}

func TestRemeshSeesLatestEdits(t *testing.T) {
	chunk := singlePointChunk(t)
	require.False(t, chunk.Remesh(0.5).IsEmpty())

	require.NoError(t, chunk.Set(voxel.Int3{X: 2, Y: 2, Z: 2}, 0.0))
	require.True(t, chunk.Remesh(0.5).IsEmpty())
}

func BenchmarkRemesh(b *testing.B) {
	chunk := voxel.NewChunk(32)
	chunk.Fill(func(x, y, z int32) float32 {
		if (x+y+z)%5 < 2 {
			return 1.0
		}
		return 0.0
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = chunk.Remesh(0.5)
	}
}
