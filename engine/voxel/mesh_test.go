package voxel_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/voxelsmith/isomarch/engine/voxel"
)

func quadOf(a, b, c, d mgl32.Vec3) []voxel.Triangle {
	return []voxel.Triangle{{a, b, c}, {a, c, d}}
}

func TestBuildIndexedInvariants(t *testing.T) {
	var buffer voxel.ChunkMesh
	buffer.Append(quadOf(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{1, 1, 0},
		mgl32.Vec3{0, 1, 0},
	)...)

	mesh := buffer.BuildIndexed()
	require.Equal(t, 3*buffer.TriangleCount(), len(mesh.Indices))
	require.Len(t, mesh.Normals, mesh.VertexCount())
	require.Len(t, mesh.UVs, mesh.VertexCount())
	for _, index := range mesh.Indices {
		require.Less(t, int(index), mesh.VertexCount())
	}
	for _, uv := range mesh.UVs {
		require.Equal(t, mgl32.Vec2{0, 0}, uv)
	}
}

func TestBuildIndexedSharesCoplanarVertices(t *testing.T) {
	// Two coplanar triangles forming a quad share the diagonal: 4 unique
	// (position, normal) pairs, not 6.
	var buffer voxel.ChunkMesh
	buffer.Append(quadOf(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{1, 1, 0},
		mgl32.Vec3{0, 1, 0},
	)...)

	mesh := buffer.BuildIndexed()
	require.Equal(t, 4, mesh.VertexCount())
	require.Equal(t, 2, mesh.TriangleCount())
	for _, normal := range mesh.Normals {
		require.True(t, normal.ApproxEqual(mgl32.Vec3{0, 0, 1}))
	}
}

func TestBuildIndexedKeepsCreaseVerticesApart(t *testing.T) {
	// Two triangles sharing an edge but folded across it have different
	// face normals, so no vertex may be shared.
	var buffer voxel.ChunkMesh
	buffer.Append(
		voxel.Triangle{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		voxel.Triangle{{0, 0, 0}, {0, 0, 1}, {1, 0, 0}},
	)

	mesh := buffer.BuildIndexed()
	require.Equal(t, 6, mesh.VertexCount())
	require.Equal(t, 2, mesh.TriangleCount())
}

func TestBuildIndexedIsIdempotent(t *testing.T) {
	var buffer voxel.ChunkMesh
	buffer.Append(
		voxel.Triangle{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		voxel.Triangle{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		voxel.Triangle{{0, 0, 0}, {0, 0, 1}, {1, 0, 0}},
	)
	first := buffer.BuildIndexed()
	second := buffer.BuildIndexed()
	require.Equal(t, first, second)
}

func TestChunkMeshReset(t *testing.T) {
	var buffer voxel.ChunkMesh
	buffer.Append(voxel.Triangle{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	require.Equal(t, 1, buffer.TriangleCount())

	buffer.Reset()
	require.Equal(t, 0, buffer.TriangleCount())
	require.True(t, buffer.BuildIndexed().IsEmpty())
}

func TestMeshAccessorsOnReturnedValue(t *testing.T) {
	var buffer voxel.ChunkMesh
	buffer.Append(voxel.Triangle{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})

	// The accessors must work directly on the returned mesh value,
	// without binding it to an addressable variable first.
	require.Equal(t, 3, buffer.BuildIndexed().VertexCount())
	require.Equal(t, 1, buffer.BuildIndexed().TriangleCount())
	require.False(t, buffer.BuildIndexed().IsEmpty())
}

func TestFaceNormalOrientation(t *testing.T) {
	var buffer voxel.ChunkMesh
	buffer.Append(voxel.Triangle{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	mesh := buffer.BuildIndexed()
	require.Equal(t, 1, mesh.TriangleCount())
	require.True(t, mesh.Normals[0].ApproxEqual(mgl32.Vec3{0, 0, 1}))
}
