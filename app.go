package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/deadsy/sdfx/sdf"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelsmith/isomarch/engine/fieldgen"
	"github.com/voxelsmith/isomarch/engine/meshio"
	"github.com/voxelsmith/isomarch/engine/util"
	"github.com/voxelsmith/isomarch/engine/voxel"
)

func noiseField(size int32, seed int64) voxel.FieldFunc {
	params := fieldgen.DefaultNoiseParams()
	params.Seed = seed
	return fieldgen.ClosedBorder(size, fieldgen.Fractal(params))
}

func sphereField(size int32) voxel.FieldFunc {
	sphere, err := sdf.Sphere3D(float64(size-1) / 3.0)
	if err != nil {
		panic(err)
	}
	center := float32(size-1) / 2.0
	origin := mgl32.Vec3{-center, -center, -center}
	return fieldgen.ClosedBorder(size, fieldgen.FromSDF(sphere, origin, 1.0))
}

func main() {
	size := flag.Int("size", 32, "chunk edge length in lattice points")
	isolevel := flag.Float64("isolevel", 0.5, "surface threshold")
	seed := flag.Int64("seed", 32, "noise seed")
	field := flag.String("field", "noise", "field fill: noise or sphere")
	out := flag.String("out", "chunk.gltf", "output glTF file")
	flag.Parse()

	chunk := voxel.NewChunk(int32(*size))
	switch *field {
	case "noise":
		chunk.Fill(noiseField(chunk.Size(), *seed))
	case "sphere":
		chunk.Fill(sphereField(chunk.Size()))
	default:
		fmt.Fprintf(os.Stderr, "unknown field %q\n", *field)
		os.Exit(1)
	}

	mesh := chunk.Remesh(float32(*isolevel))
	chunk.ClearChanged()
	util.LogVoxelInfo(fmt.Sprintf("[Demo] %d³ chunk -> %d vertices, %d triangles", *size, mesh.VertexCount(), mesh.TriangleCount()))

	if err := meshio.ExportGLTF(mesh, "chunk", *out); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
