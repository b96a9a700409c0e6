package fbx

import (
	"io"
	"time"
)

type Document struct {
	FileId       []byte
	Creator      string
	CreationTime string

	GlobalSettings *Obj
	Objects        map[int64]Object
	Scene          *Obj

	Materials []*Material

	Connections []*Connection

	RawNode *Node

	nextID int64
}

func parseModel(base *Obj) *Model {
	return &Model{Obj: *base}
}

func parseConnection(node *Node) *Connection {
	c := &Connection{
		Type: node.PropString(0),
		From: node.PropInt64(1),
		To:   node.PropInt64(2),
		node: node,
	}
	if c.Type == "OP" {
		c.Prop = node.PropString(3)
	}
	return c
}

func BuildDocument(root *Node) (*Document, error) {
	doc := &Document{RawNode: root, Scene: &Obj{Node: &Node{
		Name:       "Scene",
		Attributes: AttributeList{{Value: int64(0)}, {Value: "Scene"}, {Value: ""}},
	}}}
	doc.Objects = map[int64]Object{0: doc.Scene}

	doc.Creator = root.FindChild("Creator").PropString(0)
	doc.CreationTime = root.FindChild("CreationTime").PropString(0)
	doc.FileId, _ = root.FindChild("FileId").PropValue(0).([]byte)

	templates := map[string]*Obj{}
	for _, node := range root.FindChild("Definitions").GetChildren() {
		if node.Name != "ObjectType" {
			continue
		}
		if t := node.FindChild("PropertyTemplate"); t != nil {
			templates[node.PropString(0)] = &Obj{Node: t}
		}
	}

	gs := root.FindChild("GlobalSettings")
	if gs == nil {
		gs = &Node{Name: "GlobalSettings", Children: []*Node{{Name: "Properties70"}}}
		root.Children = append(root.Children, gs)
	}
	doc.GlobalSettings = &Obj{Node: gs, Template: templates["GlobalSettings"]}

	for _, node := range root.FindChild("Objects").GetChildren() {
		base := &Obj{Node: node, Template: templates[node.Name]}
		var obj Object = base
		switch node.Name {
		case "Geometry":
			obj = parseGeometry(base)
		case "Material":
			mat := &Material{Obj: *base}
			doc.Materials = append(doc.Materials, mat)
			obj = mat
		case "Model":
			obj = parseModel(base)
		}
		doc.Objects[obj.ID()] = obj
		if obj.ID() >= doc.nextID {
			doc.nextID = obj.ID() + 1
		}
	}

	for _, node := range root.FindChild("Connections").GetChildren() {
		if node.Name != "C" {
			continue
		}
		c := parseConnection(node)
		doc.Connections = append(doc.Connections, c)
		if c.Type == "OO" || c.Type == "OP" {
			from := doc.Objects[c.From]
			to := doc.Objects[c.To]
			if to != nil && from != nil {
				to.AddRef(from)
				if fm, ok := from.(*Model); ok {
					if tm, ok := to.(*Model); ok {
						fm.Parent = tm
					}
				}
			}
		}
	}

	return doc, nil
}

// NewDocument returns an empty document with the minimum node tree to save.
func NewDocument() *Document {
	root := &Node{Name: "_FBX_ROOT", Children: []*Node{
		NewNode("FBXHeaderExtension"),
		NewNode("Creator", "github.com/binzume/fbxaxis"),
		NewNode("CreationTime", time.Now().Format("2006-01-02 15:04:05")),
		{Name: "GlobalSettings", Children: []*Node{{Name: "Properties70"}}},
		NewNode("Definitions"),
		NewNode("Objects"),
		NewNode("Connections"),
	}}
	doc, _ := BuildDocument(root)
	doc.nextID = 1000
	return doc
}

// AddObject registers obj, assigning an id if it does not have one yet.
func (doc *Document) AddObject(obj Object) Object {
	if obj.ID() == 0 {
		obj.GetNode().Attributes[0] = &Attribute{Value: doc.nextID}
		doc.nextID++
	}
	doc.Objects[obj.ID()] = obj
	doc.RawNode.FindChild("Objects").Children = append(doc.RawNode.FindChild("Objects").Children, obj.GetNode())
	if mat, ok := obj.(*Material); ok {
		doc.Materials = append(doc.Materials, mat)
	}
	return obj
}

// AddConnection connects a child object to its parent (OO).
func (doc *Document) AddConnection(to, from Object) {
	node := NewNode("C", "OO", from.ID(), to.ID())
	doc.RawNode.FindChild("Connections").Children = append(doc.RawNode.FindChild("Connections").Children, node)
	doc.Connections = append(doc.Connections, parseConnection(node))
	to.AddRef(from)
	if fm, ok := from.(*Model); ok {
		if tm, ok := to.(*Model); ok {
			fm.Parent = tm
		}
	}
}

// GetRootModels returns the models directly connected to the scene.
func (doc *Document) GetRootModels() []*Model {
	var r []*Model
	for _, o := range doc.Scene.FindRefs("Model") {
		if m, ok := o.(*Model); ok {
			r = append(r, m)
		}
	}
	return r
}

// GetModels returns every model in the document.
func (doc *Document) GetModels() []*Model {
	var r []*Model
	for _, o := range doc.Objects {
		if m, ok := o.(*Model); ok {
			r = append(r, m)
		}
	}
	return r
}

// GetGeometries returns every mesh geometry in the document.
func (doc *Document) GetGeometries() []*Geometry {
	var r []*Geometry
	for _, o := range doc.Objects {
		if g, ok := o.(*Geometry); ok {
			r = append(r, g)
		}
	}
	return r
}

func (doc *Document) Dump(w io.Writer, full bool) {
	for _, n := range doc.RawNode.Children {
		n.Dump(w, 0, full)
	}
}
