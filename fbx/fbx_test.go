package fbx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/binzume/fbxaxis/geom"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()

	model := NewModel("model01", "Mesh")
	model.SetTranslation(&geom.Vector3{X: 1, Y: 0, Z: 0})
	model.SetScaling(&geom.Vector3{X: 1, Y: 2, Z: 1})
	doc.AddObject(model)

	g := NewGeometry("model01mesh", []*geom.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}}, [][]int{{0, 1, 2}})
	doc.AddObject(g)

	mat := NewMaterial("mat01")
	mat.SetColor("DiffuseColor", &geom.Vector3{X: 1, Y: 0, Z: 0.5})
	doc.AddObject(mat)

	doc.AddConnection(doc.Scene, model) // add model to scene
	doc.AddConnection(model, g)         // set geometry to model
	doc.AddConnection(model, mat)       // set material to model

	if model.ID() == 0 || g.ID() == 0 || model.ID() == g.ID() {
		t.Errorf("ids: %v %v", model.ID(), g.ID())
	}
	if len(doc.GetRootModels()) != 1 {
		t.Errorf("root models: %v", doc.GetRootModels())
	}
	if model.GetGeometry() != g {
		t.Errorf("geometry not connected")
	}
	if len(doc.Materials) != 1 {
		t.Errorf("materials: %v", doc.Materials)
	}
}

func TestWriteBinary_RoundTrip(t *testing.T) {
	doc := NewDocument()
	model := NewModel("model01", "Mesh")
	model.SetTranslation(&geom.Vector3{X: 1, Y: 2, Z: 3})
	doc.AddObject(model)
	g := NewGeometry("model01mesh", []*geom.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}}, [][]int{{0, 1, 2}})
	doc.AddObject(g)
	doc.AddConnection(doc.Scene, model)
	doc.AddConnection(model, g)
	doc.SetAxisSystem(MayaZUp)

	var buf bytes.Buffer
	if err := WriteBinary(doc, &buf); err != nil {
		t.Fatal(err)
	}

	doc2, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	models := doc2.GetRootModels()
	if len(models) != 1 {
		t.Fatalf("root models: %v", models)
	}
	if models[0].Name() != "model01::Model" {
		t.Errorf("name: %v", models[0].Name())
	}
	if v := models[0].GetTranslation(); v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Errorf("translation: %v", v)
	}
	g2 := models[0].GetGeometry()
	if g2 == nil {
		t.Fatal("geometry not connected")
	}
	if len(g2.Vertices) != 3 || g2.Vertices[1].X != 1 {
		t.Errorf("vertices: %v", g2.Vertices)
	}
	if len(g2.Polygons) != 1 || len(g2.Polygons[0]) != 3 {
		t.Errorf("polygons: %v", g2.Polygons)
	}
	if a := doc2.GetAxisSystem(); a != MayaZUp {
		t.Errorf("axis system: %v", a)
	}
}

func TestParse_Ascii(t *testing.T) {
	src := `; FBX 7.4.0 project file
Creator: "test"
GlobalSettings:  {
	Properties70:  {
		P: "UpAxis", "int", "Integer", "",2
		P: "FrontAxis", "int", "Integer", "",1
		P: "FrontAxisSign", "int", "Integer", "",-1
		P: "CoordAxis", "int", "Integer", "",0
		P: "CoordAxisSign", "int", "Integer", "",1
	}
}
Objects:  {
	Model: 1234, "Model::model01", "Mesh" {
		Properties70:  {
			P: "Lcl Translation", "Lcl Translation", "", "A+",1,2,3
		}
	}
	Geometry: 1235, "Geometry::model01mesh", "Mesh" {
		Vertices: *9 {
			a: 0.0,0.0,0.0,1.0,0.0,0.0,1.0,1.0,0.0
		}
		PolygonVertexIndex: *3 {
			a: 0,1,-3
		}
	}
}
Connections:  {
	C: "OO",1234,0
	C: "OO",1235,1234
}
`
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Creator != "test" {
		t.Errorf("creator: %v", doc.Creator)
	}
	if a := doc.GetAxisSystem(); a != MayaZUp {
		t.Errorf("axis system: %v", a)
	}
	models := doc.GetRootModels()
	if len(models) != 1 {
		t.Fatalf("root models: %v", models)
	}
	if models[0].Name() != "Model::model01" {
		t.Errorf("name: %v", models[0].Name())
	}
	if v := models[0].GetTranslation(); v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Errorf("translation: %v", v)
	}
	g := models[0].GetGeometry()
	if g == nil {
		t.Fatal("geometry not connected")
	}
	if len(g.Vertices) != 3 || len(g.Polygons) != 1 {
		t.Errorf("geometry: %v %v", g.Vertices, g.Polygons)
	}
}

func TestWriterFormats(t *testing.T) {
	if f := FindWriterFormat("binary"); f == nil || !strings.Contains(f.Description, "binary") {
		t.Errorf("binary format not found")
	}
	if f := FindWriterFormat("ascii"); f == nil || !strings.Contains(f.Description, "ascii") {
		t.Errorf("ascii format not found")
	}
	if f := FindWriterFormat("gltf"); f != nil {
		t.Errorf("unexpected format: %v", f)
	}
}
