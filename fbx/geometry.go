package fbx

import (
	"github.com/binzume/fbxaxis/geom"
)

type Geometry struct {
	Obj
	Vertices []*geom.Vector3
	Polygons [][]int
}

type MappingType string

const (
	AllSame         MappingType = "AllSame"
	ByPolygon       MappingType = "ByPolygon"
	ByVertice       MappingType = "ByVertice"
	ByPolygonVertex MappingType = "ByPolygonVertex"
	ByControlPoint  MappingType = "ByControlPoint"
)

func NewGeometry(name string, verts []*geom.Vector3, faces [][]int) *Geometry {
	var varray []float64
	for _, v := range verts {
		varray = append(varray, float64(v.X), float64(v.Y), float64(v.Z))
	}
	var indices []int32
	for _, f := range faces {
		for _, i := range f {
			indices = append(indices, int32(i))
		}
		if len(f) > 0 {
			indices[len(indices)-1] = ^indices[len(indices)-1]
		}
	}

	g := &Geometry{
		Obj: *newObj("Geometry", name+"\x00\x01Geometry", "Mesh", []*Node{
			NewNode("Vertices", varray),
			NewNode("PolygonVertexIndex", indices),
			NewNode("GeometryVersion", 124),
		}),
		Vertices: verts,
		Polygons: faces,
	}
	return g
}

func parseGeometry(base *Obj) *Geometry {
	g := &Geometry{Obj: *base}
	g.Vertices = base.FindChild("Vertices").GetVec3Array()
	if v := base.FindChild("PolygonVertexIndex").GetInt32Array(); v != nil {
		var face []int
		for _, index := range v {
			if index < 0 {
				face = append(face, int(^index))
				g.Polygons = append(g.Polygons, face)
				face = nil
				continue
			}
			face = append(face, int(index))
		}
	}
	return g
}

// SetVertices updates both the parsed slice and the raw node.
func (g *Geometry) SetVertices(vv []*geom.Vector3) {
	g.Vertices = vv
	if n := g.FindChild("Vertices"); n != nil {
		n.SetVec3Array(vv)
	}
}

// SetPolygons updates both the parsed faces and the raw
// PolygonVertexIndex node. The last index of each face is stored
// bit-inverted as an end marker.
func (g *Geometry) SetPolygons(faces [][]int) {
	g.Polygons = faces
	n := g.FindChild("PolygonVertexIndex")
	if n == nil {
		return
	}
	var indices []int32
	for _, f := range faces {
		for _, i := range f {
			indices = append(indices, int32(i))
		}
		if len(f) > 0 {
			indices[len(indices)-1] = ^indices[len(indices)-1]
		}
	}
	n.Attributes = AttributeList{{Value: indices, ArraySize: uint(len(indices))}}
}

func (g *Geometry) GetNormals() []*geom.Vector3 {
	normal := g.FindChild("LayerElementNormal")
	if normal == nil {
		return nil
	}
	return normal.FindChild("Normals").GetVec3Array()
}

func (g *Geometry) SetNormals(vv []*geom.Vector3) {
	normal := g.FindChild("LayerElementNormal")
	if normal == nil {
		return
	}
	if n := normal.FindChild("Normals"); n != nil {
		n.SetVec3Array(vv)
	}
}

func (g *Geometry) GetShapes() []*GeometryShape {
	var shapes []*GeometryShape
	for _, node := range g.GetChildren() {
		if node.Name == "Shape" {
			shapes = append(shapes, &GeometryShape{node})
		}
	}
	return shapes
}

type GeometryShape struct {
	*Node
}

func (s *GeometryShape) GetVertices() []*geom.Vector3 {
	return s.FindChild("Vertices").GetVec3Array()
}

func (s *GeometryShape) GetNormals() []*geom.Vector3 {
	return s.FindChild("Normals").GetVec3Array()
}
