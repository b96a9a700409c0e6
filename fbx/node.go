package fbx

import (
	"fmt"
	"io"
	"strings"

	"github.com/binzume/fbxaxis/geom"
)

type Node struct {
	Name       string
	Attributes AttributeList
	Children   []*Node
}

func NewNode(name string, attrs ...interface{}) *Node {
	n := &Node{Name: name}
	for _, v := range attrs {
		a := &Attribute{Value: v}
		switch vv := v.(type) {
		case []int32:
			a.ArraySize = uint(len(vv))
		case []int64:
			a.ArraySize = uint(len(vv))
		case []float32:
			a.ArraySize = uint(len(vv))
		case []float64:
			a.ArraySize = uint(len(vv))
		}
		n.Attributes = append(n.Attributes, a)
	}
	return n
}

func (n *Node) FindChild(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (n *Node) GetChildren() []*Node {
	if n == nil {
		return nil
	}
	return n.Children
}

func (n *Node) Attr(i int) *Attribute {
	if n == nil {
		return nil
	}
	return n.Attributes.Get(i)
}

func (n *Node) PropValue(i int) interface{} {
	a := n.Attr(i)
	if a == nil {
		return nil
	}
	return a.Value
}

func (n *Node) PropInt(i int) int {
	return n.Attr(i).ToInt(0)
}

func (n *Node) PropInt64(i int) int64 {
	return n.Attr(i).ToInt64(0)
}

func (n *Node) PropFloat(i int) float32 {
	return n.Attr(i).ToFloat32(0)
}

func (n *Node) PropString(i int) string {
	return n.Attr(i).ToString()
}

func (n *Node) GetString() string {
	return n.Attr(0).ToString()
}

func (n *Node) GetInt32Array() []int32 {
	return n.Attr(0).ToInt32Array()
}

func (n *Node) GetFloat32Array() []float32 {
	return n.Attr(0).ToFloat32Array()
}

func (n *Node) GetVec3Array() []*geom.Vector3 {
	return n.Attr(0).ToVec3Array()
}

func (n *Node) GetVec2Array() []*geom.Vector2 {
	return n.Attr(0).ToVec2Array()
}

// SetVec3Array replaces the first attribute with a packed float64 array.
func (n *Node) SetVec3Array(vv []*geom.Vector3) {
	array := make([]float64, 0, len(vv)*3)
	for _, v := range vv {
		array = append(array, float64(v.X), float64(v.Y), float64(v.Z))
	}
	attr := &Attribute{Value: array, ArraySize: uint(len(array))}
	if len(n.Attributes) == 0 {
		n.Attributes = AttributeList{attr}
	} else {
		n.Attributes[0] = attr
	}
}

func (n *Node) Dump(w io.Writer, d int, full bool) {
	fmt.Fprint(w, strings.Repeat("  ", d), n.Name, ":")
	var arrayReplacer = strings.NewReplacer("[", "{ a:", "]", "}", " ", ", ")
	for i, a := range n.Attributes {
		if !full && a.ArraySize > 16 {
			fmt.Fprintf(w, " *%d { SKIPPED }", a.ArraySize)
			continue
		}
		s := a.String()
		if a.ArraySize > 0 {
			s = fmt.Sprint("*", a.ArraySize, " ", arrayReplacer.Replace(s))
		}
		if i == 0 {
			fmt.Fprint(w, " ", s)
		} else {
			fmt.Fprint(w, ", ", s)
		}
	}
	if len(n.Children) > 0 || len(n.Attributes) == 0 {
		fmt.Fprintln(w, " {")
		for _, c := range n.Children {
			c.Dump(w, d+1, full)
		}
		fmt.Fprintln(w, strings.Repeat("  ", d)+"}")
	} else {
		fmt.Fprintln(w, "")
	}
}
