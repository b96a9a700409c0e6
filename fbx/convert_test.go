package fbx

import (
	"testing"

	"github.com/binzume/fbxaxis/geom"
)

const convertEpsilon = 0.0001

func vec3Near(a, b *geom.Vector3) bool {
	return geom.Abs(a.X-b.X) < convertEpsilon && geom.Abs(a.Y-b.Y) < convertEpsilon && geom.Abs(a.Z-b.Z) < convertEpsilon
}

func newTestScene() (*Document, *Model, *Geometry) {
	doc := NewDocument()
	model := NewModel("model01", "Mesh")
	model.SetTranslation(&geom.Vector3{X: 1, Y: 2, Z: 3})
	model.SetRotation(&geom.Vector3{X: 10, Y: 20, Z: 30})
	doc.AddObject(model)

	g := NewGeometry("model01mesh", []*geom.Vector3{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}}, [][]int{{0, 1, 2}})
	doc.AddObject(g)

	doc.AddConnection(doc.Scene, model)
	doc.AddConnection(model, g)
	return doc, model, g
}

func TestDeepConvertScene(t *testing.T) {
	doc, model, g := newTestScene()

	if !DeepConvertScene(doc, MayaZUp) {
		t.Fatal("conversion should not be a no-op")
	}
	if a := doc.GetAxisSystem(); a != MayaZUp {
		t.Errorf("axis system: %v", a)
	}

	// Y-up to Z-up is a 90 degree rotation around X: y goes to z, z to -y.
	if v := model.GetTranslation(); !vec3Near(v, &geom.Vector3{X: 1, Y: -3, Z: 2}) {
		t.Errorf("translation: %v", v)
	}
	if v := model.GetRotation(); !vec3Near(v, &geom.Vector3{X: 10, Y: -30, Z: 20}) {
		t.Errorf("rotation: %v", v)
	}
	if o := model.GetRotationOrder(); o != geom.RotationOrderXZY {
		t.Errorf("rotation order: %v", o)
	}
	want := []*geom.Vector3{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: -1, Z: 0}}
	for i, v := range g.Vertices {
		if !vec3Near(v, want[i]) {
			t.Errorf("vertex %d: %v != %v", i, v, want[i])
		}
	}
	// No handedness change: winding stays.
	if len(g.Polygons) != 1 || g.Polygons[0][0] != 0 {
		t.Errorf("polygons: %v", g.Polygons)
	}
}

func TestDeepConvertScene_HandednessFlip(t *testing.T) {
	doc, model, g := newTestScene()

	if !DeepConvertScene(doc, DirectX) {
		t.Fatal("conversion should not be a no-op")
	}

	// Right-handed Y-up to left-handed Y-up mirrors the x axis and
	// negates the y and z rotations.
	if v := model.GetTranslation(); !vec3Near(v, &geom.Vector3{X: -1, Y: 2, Z: 3}) {
		t.Errorf("translation: %v", v)
	}
	if v := model.GetRotation(); !vec3Near(v, &geom.Vector3{X: 10, Y: -20, Z: -30}) {
		t.Errorf("rotation: %v", v)
	}
	if v := g.Vertices[0]; !vec3Near(v, &geom.Vector3{X: -1, Y: 0, Z: 0}) {
		t.Errorf("vertex: %v", v)
	}
	if g.Polygons[0][0] != 2 || g.Polygons[0][2] != 0 {
		t.Errorf("winding should be reversed: %v", g.Polygons)
	}
	if v := g.FindChild("PolygonVertexIndex").GetInt32Array(); v[0] != 2 || v[2] != ^int32(0) {
		t.Errorf("PolygonVertexIndex: %v", v)
	}
}

func TestDeepConvertScene_LocalMatrix(t *testing.T) {
	doc, model, _ := newTestScene()
	model.SetScaling(&geom.Vector3{X: 2, Y: 3, Z: 4})
	model.SetPreRotation(&geom.Vector3{X: 15, Y: 0, Z: 45})
	model.UpdateMatrix()
	before := model.GetMatrix()

	tr := newAxisTransform(doc.GetAxisSystem(), MayaZUp)
	DeepConvertScene(doc, MayaZUp)

	// The new local matrix must be the conjugated old one.
	mat := tr.Matrix()
	want := mat.Mul(before).Mul(mat.Transposed())
	got := model.GetMatrix()
	for i := range got {
		if geom.Abs(got[i]-want[i]) > convertEpsilon {
			t.Fatalf("matrix mismatch:\n%v\n%v", got, want)
		}
	}
}

func TestConvertScene_Shallow(t *testing.T) {
	doc, model, _ := newTestScene()
	child := NewModel("child", "Mesh")
	child.SetTranslation(&geom.Vector3{X: 5, Y: 6, Z: 7})
	doc.AddObject(child)
	doc.AddConnection(model, child)

	if !ConvertScene(doc, MayaZUp) {
		t.Fatal("conversion should not be a no-op")
	}
	if v := model.GetTranslation(); !vec3Near(v, &geom.Vector3{X: 1, Y: -3, Z: 2}) {
		t.Errorf("root translation: %v", v)
	}
	if v := model.GetPreRotation(); !vec3Near(v, &geom.Vector3{X: 90, Y: 0, Z: 0}) {
		t.Errorf("root pre-rotation: %v", v)
	}
	// Children are covered by the root's pre-rotation and keep their
	// local transform.
	if v := child.GetTranslation(); !vec3Near(v, &geom.Vector3{X: 5, Y: 6, Z: 7}) {
		t.Errorf("child translation: %v", v)
	}
	if a := doc.GetAxisSystem(); a != MayaZUp {
		t.Errorf("axis system: %v", a)
	}
}

func TestConvertScene_NoOp(t *testing.T) {
	doc, model, _ := newTestScene()
	if ConvertScene(doc, MayaYUp) {
		t.Error("same axis system should be a no-op")
	}
	if DeepConvertScene(doc, MayaYUp) {
		t.Error("same axis system should be a no-op")
	}
	if v := model.GetTranslation(); !vec3Near(v, &geom.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("translation should be unchanged: %v", v)
	}
}

func TestDeepConvertScene_Animation(t *testing.T) {
	doc, model, _ := newTestScene()

	curveNode := newObj("AnimationCurveNode", "T\x00\x01AnimCurveNode", "", nil)
	curveNode.SetProperty("d|Y", &Property{Type: "Number", Flag: "A", AttributeList: []*Attribute{{Value: float64(2)}}})
	doc.AddObject(curveNode)
	curve := newObj("AnimationCurve", "\x00\x01AnimCurve", "", nil)
	curve.AddOrReplaceChild(NewNode("KeyValueFloat", []float32{1, 2, 3}))
	doc.AddObject(curve)

	doc.AddConnection(model, curveNode)
	propConn := NewNode("C", "OP", curveNode.ID(), model.ID(), "Lcl Translation")
	doc.RawNode.FindChild("Connections").Children = append(doc.RawNode.FindChild("Connections").Children, propConn)
	doc.Connections = append(doc.Connections, parseConnection(propConn))
	chanConn := NewNode("C", "OP", curve.ID(), curveNode.ID(), "d|Y")
	doc.RawNode.FindChild("Connections").Children = append(doc.RawNode.FindChild("Connections").Children, chanConn)
	doc.Connections = append(doc.Connections, parseConnection(chanConn))

	DeepConvertScene(doc, MayaZUp)

	// The y channel moves to z; Y-up to Z-up keeps its sign for y.
	last := doc.Connections[len(doc.Connections)-1]
	if last.Prop != "d|Z" {
		t.Errorf("channel: %v", last.Prop)
	}
	if v := curveNode.GetProperty("d|Z").ToFloat32(0); v != 2 {
		t.Errorf("channel default: %v", v)
	}
	values := curve.GetNode().FindChild("KeyValueFloat").GetFloat32Array()
	if values[0] != 1 || values[2] != 3 {
		t.Errorf("curve values: %v", values)
	}
}
