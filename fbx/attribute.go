package fbx

import (
	"fmt"

	"github.com/binzume/fbxaxis/geom"
)

// Attribute is a single value of a node. Array values keep the
// element type the parser produced so that they round-trip.
type Attribute struct {
	Value     interface{}
	ArraySize uint
}

type AttributeList []*Attribute

func (a AttributeList) Get(i int) *Attribute {
	if i >= len(a) {
		return nil
	}
	return a[i]
}

func (a AttributeList) ToVector3(x, y, z float32) *geom.Vector3 {
	return &geom.Vector3{X: a.Get(0).ToFloat32(x), Y: a.Get(1).ToFloat32(y), Z: a.Get(2).ToFloat32(z)}
}

func (a AttributeList) ToInt(defvalue int) int {
	return a.Get(0).ToInt(defvalue)
}

func (a AttributeList) ToFloat32(defvalue float32) float32 {
	return a.Get(0).ToFloat32(defvalue)
}

func (a AttributeList) ToString() string {
	return a.Get(0).ToString()
}

func (a *Attribute) ToInt(defvalue int) int {
	return int(a.ToInt64(int64(defvalue)))
}

func (a *Attribute) ToInt64(defvalue int64) int64 {
	if a == nil {
		return defvalue
	}
	switch v := a.Value.(type) {
	case byte:
		return int64(v)
	case int16:
		return int64(v)
	case uint16:
		return int64(v)
	case int32:
		return int64(v)
	case uint32:
		return int64(int32(v))
	case int64:
		return v
	case uint64:
		return int64(v)
	}
	return defvalue
}

func (a *Attribute) ToFloat32(defvalue float32) float32 {
	if a == nil {
		return defvalue
	}
	switch v := a.Value.(type) {
	case float32:
		return v
	case float64:
		return float32(v)
	case int16:
		return float32(v)
	case int32:
		return float32(v)
	case int64:
		return float32(v)
	}
	return defvalue
}

func (a *Attribute) ToFloat64(defvalue float64) float64 {
	if a == nil {
		return defvalue
	}
	switch v := a.Value.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return defvalue
}

func (a *Attribute) ToString() string {
	if a == nil {
		return ""
	}
	if v, ok := a.Value.(string); ok {
		return v
	} else if v, ok := a.Value.([]byte); ok {
		return string(v)
	}
	return ""
}

func (a *Attribute) ToVec3Array() []*geom.Vector3 {
	if a == nil {
		return nil
	}
	var vv []*geom.Vector3
	if v, ok := a.Value.([]float32); ok {
		for i := 0; i < len(v)/3; i++ {
			vv = append(vv, &geom.Vector3{X: v[i*3], Y: v[i*3+1], Z: v[i*3+2]})
		}
	} else if v, ok := a.Value.([]float64); ok {
		for i := 0; i < len(v)/3; i++ {
			vv = append(vv, &geom.Vector3{X: float32(v[i*3]), Y: float32(v[i*3+1]), Z: float32(v[i*3+2])})
		}
	}
	return vv
}

func (a *Attribute) ToVec2Array() []*geom.Vector2 {
	if a == nil {
		return nil
	}
	var vv []*geom.Vector2
	if v, ok := a.Value.([]float32); ok {
		for i := 0; i < len(v)/2; i++ {
			vv = append(vv, &geom.Vector2{X: v[i*2], Y: v[i*2+1]})
		}
	} else if v, ok := a.Value.([]float64); ok {
		for i := 0; i < len(v)/2; i++ {
			vv = append(vv, &geom.Vector2{X: float32(v[i*2]), Y: float32(v[i*2+1])})
		}
	}
	return vv
}

func (a *Attribute) ToInt32Array() []int32 {
	if a == nil {
		return nil
	}
	var r []int32
	switch vv := a.Value.(type) {
	case []byte:
		for _, v := range vv {
			r = append(r, int32(v))
		}
	case []int32:
		return vv
	case []int64:
		for _, v := range vv {
			r = append(r, int32(v))
		}
	}
	return r
}

func (a *Attribute) ToFloat32Array() []float32 {
	if a == nil {
		return nil
	}
	var r []float32
	switch vv := a.Value.(type) {
	case []float32:
		return vv
	case []float64:
		for _, v := range vv {
			r = append(r, float32(v))
		}
	case []int32:
		for _, v := range vv {
			r = append(r, float32(v))
		}
	case []int64:
		for _, v := range vv {
			r = append(r, float32(v))
		}
	}
	return r
}

func (a *Attribute) String() string {
	switch v := a.Value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []byte:
		return fmt.Sprintf("\"%v\"", v)
	default:
		return fmt.Sprint(v)
	}
}
