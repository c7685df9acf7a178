// Package meshio writes extracted meshes to interchange formats for
// rendering collaborators.
package meshio

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/voxelsmith/isomarch/engine/util"
	"github.com/voxelsmith/isomarch/engine/voxel"
)

// ExportGLTF writes the indexed mesh as a one-node glTF 2.0 document.
// Empty meshes are rejected; glTF accessors may not be zero-length.
func ExportGLTF(mesh voxel.Mesh, name, filename string) error {
	if mesh.IsEmpty() {
		return errors.Errorf("mesh %q is empty, nothing to export", name)
	}

	positions := make([][3]float32, mesh.VertexCount())
	normals := make([][3]float32, mesh.VertexCount())
	uvs := make([][2]float32, mesh.VertexCount())
	for i := range mesh.Positions {
		positions[i] = mesh.Positions[i]
		normals[i] = mesh.Normals[i]
		uvs[i] = mesh.UVs[i]
	}

	doc := &gltf.Document{
		Asset: gltf.Asset{Version: "2.0", Generator: "isomarch"},
	}
	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	uvAccessor := modeler.WriteTextureCoord(doc, uvs)
	indexAccessor := modeler.WriteIndices(doc, mesh.Indices)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(indexAccessor),
			Attributes: map[string]uint32{
				gltf.POSITION:   posAccessor,
				gltf.NORMAL:     normalAccessor,
				gltf.TEXCOORD_0: uvAccessor,
			},
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(0)})
	doc.Scenes = append(doc.Scenes, &gltf.Scene{Nodes: []uint32{0}})
	doc.Scene = gltf.Index(0)

	if err := gltf.Save(doc, filename); err != nil {
		util.LogIOError(fmt.Sprintf("[GLTF] saving %s failed: %v", filename, err))
		return errors.Wrapf(err, "saving %s", filename)
	}
	util.LogMeshInfo(fmt.Sprintf("[GLTF] wrote %s: %d vertices, %d triangles", filename, mesh.VertexCount(), mesh.TriangleCount()))
	return nil
}
