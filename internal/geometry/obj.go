package geometry

import (
	"github.com/mwindels/gwob"
	"github.com/pkg/errors"

	"github.com/peterbraden/rays/internal/vecmath"
)

// objTriangles walks every group of a parsed OBJ file and returns its
// vertex positions (and, if present, vertex normals) per triangle,
// scaled component-wise by scale. Grounded on gwob's stride/offset
// access pattern in other_examples's
// MWindels-distributed-raytracer/shared/state/mesh.go MeshFromFile.
func objTriangles(obj *gwob.Obj, scale vecmath.Vector3) (positions [][3]vecmath.Vector3, normals [][3]vecmath.Vector3, hasNormals bool) {
	vertexStride := obj.StrideSize / 4
	vertexOffset := obj.StrideOffsetPosition / 4
	normalOffset := obj.StrideOffsetNormal / 4
	hasNormals = obj.NormCoordFound

	vertexAt := func(idx int) vecmath.Vector3 {
		base := vertexStride*obj.Indices[idx] + vertexOffset
		return vecmath.ComponentMul(vecmath.New(obj.Coord64(base), obj.Coord64(base+1), obj.Coord64(base+2)), scale)
	}
	normalAt := func(idx int) vecmath.Vector3 {
		base := vertexStride*obj.Indices[idx] + normalOffset
		return vecmath.New(obj.Coord64(base), obj.Coord64(base+1), obj.Coord64(base+2))
	}

	for _, g := range obj.Groups {
		for f := 0; f < g.IndexCount/3; f++ {
			var tri, norm [3]vecmath.Vector3
			for v := 0; v < 3; v++ {
				idx := g.IndexBegin + 3*f + v
				tri[v] = vertexAt(idx)
				if hasNormals {
					norm[v] = normalAt(idx)
				}
			}
			positions = append(positions, tri)
			if hasNormals {
				normals = append(normals, norm)
			}
		}
	}
	return positions, normals, hasNormals
}

// MeshFromOBJ loads a flat-shaded triangle soup from a Wavefront OBJ file,
// matching original_source/src/shapes/mesh.rs::Mesh::from_obj.
func MeshFromOBJ(path string, scale vecmath.Vector3) (*Mesh, error) {
	obj, err := gwob.NewObjFromFile(path, &gwob.ObjParserOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "loading OBJ mesh %q", path)
	}

	positions, _, _ := objTriangles(obj, scale)
	tris := make([]Primitive, len(positions))
	for i, p := range positions {
		tris[i] = NewTriangle(p[0], p[1], p[2])
	}
	return NewMesh(tris), nil
}

// SmoothMeshFromOBJ loads a Phong-interpolated triangle soup from a
// Wavefront OBJ file, falling back to flat face normals for any triangle
// whose source faces lacked vertex normals. Matches
// original_source/src/shapes/mesh.rs::SmoothMesh::from_obj.
func SmoothMeshFromOBJ(path string, scale vecmath.Vector3) (*Mesh, error) {
	obj, err := gwob.NewObjFromFile(path, &gwob.ObjParserOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "loading OBJ mesh %q", path)
	}

	positions, normals, hasNormals := objTriangles(obj, scale)
	tris := make([]Primitive, len(positions))
	for i, p := range positions {
		if !hasNormals {
			tris[i] = NewTriangle(p[0], p[1], p[2])
			continue
		}
		n := normals[i]
		tris[i] = NewSmoothTriangle(p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return NewMesh(tris), nil
}
