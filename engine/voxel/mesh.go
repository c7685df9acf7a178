package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ChunkMesh accumulates the triangle soup of one sweep. It is cleared at
// the start of every sweep and converted to an indexed Mesh on completion.
type ChunkMesh struct {
	triangles []Triangle
}

func (m *ChunkMesh) Append(triangles ...Triangle) {
	m.triangles = append(m.triangles, triangles...)
}

func (m *ChunkMesh) Reset() {
	m.triangles = m.triangles[:0]
}

func (m *ChunkMesh) TriangleCount() int {
	return len(m.triangles)
}

// Triangles returns the accumulated soup. The slice is owned by the mesh
// buffer and valid until the next Reset.
func (m *ChunkMesh) Triangles() []Triangle {
	return m.triangles
}

// Mesh is an indexed triangle mesh ready for a flat-shaded renderer:
// parallel position/normal/UV arrays plus a triangle index list.
// UVs are placeholders, all zero.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

func (m Mesh) VertexCount() int {
	return len(m.Positions)
}

func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// BuildIndexed converts the triangle soup into an indexed mesh. Vertices
// are shared only when both position and face normal match exactly, so
// coplanar neighbours collapse to one entry while vertices on a crease
// stay duplicated and keep flat per-face lighting.
func (m *ChunkMesh) BuildIndexed() Mesh {
	type vertexNormal struct {
		vertex mgl32.Vec3
		normal mgl32.Vec3
	}

	var indices []uint32
	var verticesNormals []vertexNormal
	lookup := make(map[vertexNormal]uint32)

	for _, triangle := range m.triangles {
		normal := faceNormal(triangle[0], triangle[1], triangle[2])
		for _, vertex := range triangle {
			key := vertexNormal{vertex, normal}
			index, known := lookup[key]
			if !known {
				index = uint32(len(verticesNormals))
				verticesNormals = append(verticesNormals, key)
				lookup[key] = index
			}
			indices = append(indices, index)
		}
	}

	mesh := Mesh{
		Positions: make([]mgl32.Vec3, 0, len(verticesNormals)),
		Normals:   make([]mgl32.Vec3, 0, len(verticesNormals)),
		UVs:       make([]mgl32.Vec2, 0, len(verticesNormals)),
		Indices:   indices,
	}
	for _, vn := range verticesNormals {
		mesh.Positions = append(mesh.Positions, vn.vertex)
		mesh.Normals = append(mesh.Normals, vn.normal)
		mesh.UVs = append(mesh.UVs, mgl32.Vec2{0, 0})
	}
	return mesh
}
