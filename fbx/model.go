package fbx

import (
	"math"

	"github.com/binzume/fbxaxis/geom"
)

type Model struct {
	Obj
	Parent       *Model
	cachedMatrix *geom.Matrix4
}

func NewModel(name, kind string) *Model {
	model := &Model{
		Obj: *newObj("Model", name+"\x00\x01Model", kind, []*Node{
			NewNode("Version", 232),
		}),
	}
	model.SetStringProperty("Culling", "CullingOff")
	return model
}

func newVectorProperty(typ string, v *geom.Vector3) *Property {
	return &Property{Type: typ, Flag: "A+", AttributeList: []*Attribute{
		{Value: float64(v.X)}, {Value: float64(v.Y)}, {Value: float64(v.Z)},
	}}
}

func (m *Model) GetTranslation() *geom.Vector3 {
	return m.GetProperty("Lcl Translation").ToVector3(0, 0, 0)
}

func (m *Model) SetTranslation(v *geom.Vector3) {
	m.SetProperty("Lcl Translation", newVectorProperty("Lcl Translation", v))
}

// GetRotation returns euler angles in degrees. See GetRotationOrder.
func (m *Model) GetRotation() *geom.Vector3 {
	return m.GetProperty("Lcl Rotation").ToVector3(0, 0, 0)
}

func (m *Model) SetRotation(v *geom.Vector3) {
	m.SetProperty("Lcl Rotation", newVectorProperty("Lcl Rotation", v))
}

func (m *Model) GetScaling() *geom.Vector3 {
	return m.GetProperty("Lcl Scaling").ToVector3(1, 1, 1)
}

func (m *Model) SetScaling(v *geom.Vector3) {
	m.SetProperty("Lcl Scaling", newVectorProperty("Lcl Scaling", v))
}

func (m *Model) GetPreRotation() *geom.Vector3 {
	return m.GetProperty("PreRotation").ToVector3(0, 0, 0)
}

func (m *Model) SetPreRotation(v *geom.Vector3) {
	m.SetProperty("PreRotation", newVectorProperty("Vector3D", v))
}

// RotationOrder as stored in the file: 0:XYZ 1:XZY 2:YZX 3:YXZ 4:ZXY 5:ZYX
var fileRotationOrders = []geom.RotationOrder{
	geom.RotationOrderXYZ,
	geom.RotationOrderXZY,
	geom.RotationOrderYZX,
	geom.RotationOrderYXZ,
	geom.RotationOrderZXY,
	geom.RotationOrderZYX,
}

func (m *Model) GetRotationOrder() geom.RotationOrder {
	order := m.GetProperty("RotationOrder").ToInt(0)
	if order < 0 || order >= len(fileRotationOrders) {
		return geom.RotationOrderXYZ
	}
	return fileRotationOrders[order]
}

func (m *Model) SetRotationOrder(order geom.RotationOrder) {
	for i, o := range fileRotationOrders {
		if o == order {
			m.SetProperty("RotationOrder", &Property{Type: "enum", AttributeList: []*Attribute{{Value: int32(i)}}})
			return
		}
	}
}

func (m *Model) UpdateMatrix() {
	// TODO: apply pivot
	prerotEuler := m.GetPreRotation().Scale(math.Pi / 180)
	prerot := geom.NewEulerRotationMatrix4(prerotEuler.X, prerotEuler.Y, prerotEuler.Z, 1)
	translation := m.GetTranslation()
	rotationEuler := m.GetRotation().Scale(math.Pi / 180)
	scale := m.GetScaling()
	tr := geom.NewTranslateMatrix4(translation.X, translation.Y, translation.Z)
	rot := geom.NewEuler(rotationEuler.X, rotationEuler.Y, rotationEuler.Z, m.GetRotationOrder()).ToMatrix4()
	scalemat := geom.NewScaleMatrix4(scale.X, scale.Y, scale.Z)
	m.cachedMatrix = tr.Mul(prerot).Mul(rot).Mul(scalemat)
}

func (m *Model) GetMatrix() *geom.Matrix4 {
	if m.cachedMatrix == nil {
		m.UpdateMatrix()
	}
	return m.cachedMatrix
}

func (m *Model) GetWorldMatrix() *geom.Matrix4 {
	if m.Parent == nil {
		return m.GetMatrix()
	}
	return m.Parent.GetWorldMatrix().Mul(m.GetMatrix())
}

func (m *Model) GetChildModels() []*Model {
	var r []*Model
	for _, o := range m.Refs {
		if c, ok := o.(*Model); ok {
			r = append(r, c)
		}
	}
	return r
}

func (m *Model) GetGeometry() *Geometry {
	for _, o := range m.Refs {
		if g, ok := o.(*Geometry); ok {
			return g
		}
	}
	return nil
}
