package converter

import (
	"math"

	"github.com/binzume/fbxaxis/fbx"
	"github.com/binzume/fbxaxis/geom"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// fbxToGltf builds a glb preview of a scene: node hierarchy and mesh
// geometry only, enough to eyeball the result of an axis conversion
// in a generic viewer.
type fbxToGltf struct {
	*gltf.Document
}

func NewFBXToGLTFConverter() *fbxToGltf {
	return &fbxToGltf{Document: gltf.NewDocument()}
}

func (c *fbxToGltf) addMaterial(mat *fbx.Material) *uint32 {
	color := mat.GetColor("DiffuseColor", &geom.Vector3{X: 1, Y: 1, Z: 1})
	opacity := mat.GetFactor("Opacity", 1)
	mm := &gltf.Material{
		Name: mat.Name(),
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{color.X, color.Y, color.Z, opacity},
		},
	}
	if opacity < 1 {
		mm.AlphaMode = gltf.AlphaBlend
	}
	c.Materials = append(c.Materials, mm)
	return gltf.Index(uint32(len(c.Materials) - 1))
}

func (c *fbxToGltf) addMesh(g *fbx.Geometry, material *uint32) *uint32 {
	if len(g.Vertices) == 0 {
		return nil
	}
	positions := make([][3]float32, len(g.Vertices))
	for i, v := range g.Vertices {
		positions[i] = [3]float32{v.X, v.Y, v.Z}
	}
	var indices []uint32
	for _, f := range g.Polygons {
		if len(f) == 3 {
			indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
			continue
		}
		poly := make([]*geom.Vector3, len(f))
		for i, idx := range f {
			poly[i] = g.Vertices[idx]
		}
		for _, tri := range geom.Triangulate(poly) {
			indices = append(indices, uint32(f[tri[0]]), uint32(f[tri[1]]), uint32(f[tri[2]]))
		}
	}
	if len(indices) == 0 {
		return nil
	}
	attributes := map[string]uint32{
		"POSITION": modeler.WritePosition(c.Document, positions),
	}
	if normals := g.GetNormals(); len(normals) == len(g.Vertices) {
		na := make([][3]float32, len(normals))
		for i, n := range normals {
			na[i] = [3]float32{n.X, n.Y, n.Z}
		}
		attributes["NORMAL"] = modeler.WriteNormal(c.Document, na)
	}
	c.Meshes = append(c.Meshes, &gltf.Mesh{
		Name: g.Name(),
		Primitives: []*gltf.Primitive{{
			Attributes: attributes,
			Indices:    gltf.Index(modeler.WriteIndices(c.Document, indices)),
			Material:   material,
		}},
	})
	return gltf.Index(uint32(len(c.Meshes) - 1))
}

func (c *fbxToGltf) addModel(m *fbx.Model) uint32 {
	node := &gltf.Node{Name: m.Name(), Rotation: [4]float32{0, 0, 0, 1}, Scale: [3]float32{1, 1, 1}}
	id := uint32(len(c.Nodes))
	c.Nodes = append(c.Nodes, node)

	t := m.GetTranslation()
	node.Translation = [3]float32{t.X, t.Y, t.Z}
	s := m.GetScaling()
	node.Scale = [3]float32{s.X, s.Y, s.Z}
	r := m.GetRotation().Scale(math.Pi / 180)
	pre := m.GetPreRotation().Scale(math.Pi / 180)
	q := geom.NewEuler(pre.X, pre.Y, pre.Z, geom.RotationOrderXYZ).ToQuaternion().Mul(
		geom.NewEuler(r.X, r.Y, r.Z, m.GetRotationOrder()).ToQuaternion())
	node.Rotation = [4]float32{q.X, q.Y, q.Z, q.W}

	if g := m.GetGeometry(); g != nil {
		var material *uint32
		if mats := m.FindRefs("Material"); len(mats) > 0 {
			if mat, ok := mats[0].(*fbx.Material); ok {
				material = c.addMaterial(mat)
			}
		}
		node.Mesh = c.addMesh(g, material)
	}
	for _, child := range m.GetChildModels() {
		node.Children = append(node.Children, c.addModel(child))
	}
	return id
}

func (c *fbxToGltf) Convert(doc *fbx.Document) (*gltf.Document, error) {
	for _, m := range doc.GetRootModels() {
		id := c.addModel(m)
		c.Scenes[0].Nodes = append(c.Scenes[0].Nodes, id)
	}
	return c.Document, nil
}

// FBXToGLB writes a binary gltf preview of the scene.
func FBXToGLB(doc *fbx.Document, output string) error {
	gltfdoc, err := NewFBXToGLTFConverter().Convert(doc)
	if err != nil {
		return err
	}
	return gltf.SaveBinary(gltfdoc, output)
}
