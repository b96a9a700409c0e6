package fbx

import (
	"math"

	"github.com/binzume/fbxaxis/geom"
)

const deg2rad geom.Element = math.Pi / 180

// axisTransform is the change of basis between two axis systems. It
// is always a signed permutation of the coordinate axes: axis j of
// the source system maps to axis perm[j] of the target with sign[j].
type axisTransform struct {
	perm [3]int
	sign [3]float64
	det  float64
}

func newAxisTransform(src, dst AxisSystem) *axisTransform {
	t := &axisTransform{}
	roles := [3][2]struct {
		axis Axis
		sign int
	}{
		{{src.RightAxis(), src.RightSign()}, {dst.RightAxis(), dst.RightSign()}},
		{{src.Up, src.UpSign}, {dst.Up, dst.UpSign}},
		{{src.FrontAxis(), src.FrontSign}, {dst.FrontAxis(), dst.FrontSign}},
	}
	for _, r := range roles {
		t.perm[r[0].axis] = int(r[1].axis)
		t.sign[r[0].axis] = float64(r[0].sign * r[1].sign)
	}
	t.det = t.sign[0] * t.sign[1] * t.sign[2] * permParity(t.perm)
	return t
}

func permParity(p [3]int) float64 {
	if p[0] == 0 && p[1] == 1 && p[2] == 2 ||
		p[0] == 1 && p[1] == 2 && p[2] == 0 ||
		p[0] == 2 && p[1] == 0 && p[2] == 1 {
		return 1
	}
	return -1
}

func (t *axisTransform) Matrix() *geom.Matrix4 {
	mat := geom.NewMatrix4()
	for j := 0; j < 3; j++ {
		mat[j*4+j] = 0
		mat[j*4+t.perm[j]] = geom.Element(t.sign[j])
	}
	return mat
}

// ApplyToPoint maps positions, translations and direction vectors.
func (t *axisTransform) ApplyToPoint(v *geom.Vector3) *geom.Vector3 {
	in := [3]float64{float64(v.X), float64(v.Y), float64(v.Z)}
	var out [3]float64
	for j := 0; j < 3; j++ {
		out[t.perm[j]] = t.sign[j] * in[j]
	}
	return geom.NewVector3(geom.Element(out[0]), geom.Element(out[1]), geom.Element(out[2]))
}

// ApplyToEuler remaps per-axis rotation angles. A rotation around
// axis j becomes a rotation around perm[j] with the angle scaled by
// sign[j] and by the determinant of the basis change.
func (t *axisTransform) ApplyToEuler(v *geom.Vector3) *geom.Vector3 {
	in := [3]float64{float64(v.X), float64(v.Y), float64(v.Z)}
	var out [3]float64
	for j := 0; j < 3; j++ {
		out[t.perm[j]] = t.sign[j] * t.det * in[j]
	}
	return geom.NewVector3(geom.Element(out[0]), geom.Element(out[1]), geom.Element(out[2]))
}

// ApplyToScale permutes scale factors without signs.
func (t *axisTransform) ApplyToScale(v *geom.Vector3) *geom.Vector3 {
	in := [3]float64{float64(v.X), float64(v.Y), float64(v.Z)}
	var out [3]float64
	for j := 0; j < 3; j++ {
		out[t.perm[j]] = in[j]
	}
	return geom.NewVector3(geom.Element(out[0]), geom.Element(out[1]), geom.Element(out[2]))
}

var rotationOrderAxes = map[geom.RotationOrder][3]int{
	geom.RotationOrderXYZ: {0, 1, 2},
	geom.RotationOrderYXZ: {1, 0, 2},
	geom.RotationOrderZXY: {2, 0, 1},
	geom.RotationOrderZYX: {2, 1, 0},
	geom.RotationOrderXZY: {0, 2, 1},
	geom.RotationOrderYZX: {1, 2, 0},
}

// ApplyToRotationOrder maps each axis of the euler sequence through
// the permutation.
func (t *axisTransform) ApplyToRotationOrder(order geom.RotationOrder) geom.RotationOrder {
	axes, ok := rotationOrderAxes[order]
	if !ok {
		return order
	}
	mapped := [3]int{t.perm[axes[0]], t.perm[axes[1]], t.perm[axes[2]]}
	for o, a := range rotationOrderAxes {
		if a == mapped {
			return o
		}
	}
	return order
}

// conjugateEulerXYZ rebuilds a fixed-order XYZ euler (degrees) after
// the basis change. Conjugation keeps the matrix a proper rotation
// even for a left/right handedness flip.
func (t *axisTransform) conjugateEulerXYZ(v *geom.Vector3) *geom.Vector3 {
	rot := geom.NewEuler(v.X*deg2rad, v.Y*deg2rad, v.Z*deg2rad, geom.RotationOrderXYZ).ToMatrix4()
	mat := t.Matrix()
	conjugated := mat.Mul(rot).Mul(mat.Transposed())
	e := geom.NewEulerFromMatrix4(conjugated, geom.RotationOrderXYZ)
	return geom.NewVector3(e.X/deg2rad, e.Y/deg2rad, e.Z/deg2rad)
}

var animCurveChannels = [3]string{"d|X", "d|Y", "d|Z"}

func channelIndex(prop string) int {
	for i, name := range animCurveChannels {
		if name == prop {
			return i
		}
	}
	return -1
}

// ConvertScene changes the axis system of the scene without touching
// the node hierarchy below the roots: the basis change is folded into
// the translation and pre-rotation of the root models only. This
// matches the usual lightweight conversion and is exact for rotations
// between right-handed (or between left-handed) systems; a handedness
// flip additionally mirrors the scene.
func ConvertScene(doc *Document, target AxisSystem) bool {
	src := doc.GetAxisSystem()
	if src == target {
		return false
	}
	t := newAxisTransform(src, target)
	mat := t.Matrix()
	for _, m := range doc.GetRootModels() {
		m.SetTranslation(t.ApplyToPoint(m.GetTranslation()))
		pre := m.GetPreRotation()
		prerot := geom.NewEuler(pre.X*deg2rad, pre.Y*deg2rad, pre.Z*deg2rad, geom.RotationOrderXYZ).ToMatrix4()
		e := geom.NewEulerFromMatrix4(mat.Mul(prerot), geom.RotationOrderXYZ)
		m.SetPreRotation(geom.NewVector3(e.X/deg2rad, e.Y/deg2rad, e.Z/deg2rad))
		m.UpdateMatrix()
	}
	doc.SetAxisSystem(target)
	return true
}

// DeepConvertScene changes the axis system of the scene by rewriting
// every node transform, geometry and animation curve. The result is
// an exact change of basis, including handedness flips.
func DeepConvertScene(doc *Document, target AxisSystem) bool {
	src := doc.GetAxisSystem()
	if src == target {
		return false
	}
	t := newAxisTransform(src, target)
	for _, m := range doc.GetModels() {
		order := m.GetRotationOrder()
		m.SetTranslation(t.ApplyToPoint(m.GetTranslation()))
		m.SetRotation(t.ApplyToEuler(m.GetRotation()))
		m.SetRotationOrder(t.ApplyToRotationOrder(order))
		m.SetScaling(t.ApplyToScale(m.GetScaling()))
		if m.GetProperty("PreRotation").Get(0) != nil {
			m.SetPreRotation(t.conjugateEulerXYZ(m.GetPreRotation()))
		}
		m.UpdateMatrix()
	}
	for _, g := range doc.GetGeometries() {
		convertGeometry(g, t)
	}
	convertAnimations(doc, t)
	doc.SetAxisSystem(target)
	return true
}

func convertGeometry(g *Geometry, t *axisTransform) {
	var vv []*geom.Vector3
	for _, v := range g.Vertices {
		vv = append(vv, t.ApplyToPoint(v))
	}
	g.SetVertices(vv)
	if normals := g.GetNormals(); normals != nil {
		var nn []*geom.Vector3
		for _, n := range normals {
			nn = append(nn, t.ApplyToPoint(n))
		}
		g.SetNormals(nn)
	}
	if t.det < 0 {
		// A mirrored mesh needs its winding reversed to keep faces
		// pointing outward.
		var faces [][]int
		for _, f := range g.Polygons {
			reversed := make([]int, len(f))
			for i, idx := range f {
				reversed[len(f)-1-i] = idx
			}
			faces = append(faces, reversed)
		}
		g.SetPolygons(faces)
	}
}

// convertAnimations rewires animation curve channels. Each curve node
// driving a model transform has per-axis d|X, d|Y, d|Z inputs; those
// move to the permuted axis and their values are scaled like the
// corresponding transform component.
func convertAnimations(doc *Document, t *axisTransform) {
	scales := map[int64][3]float64{}
	for _, c := range doc.Connections {
		if c.Type != "OP" {
			continue
		}
		if _, ok := doc.Objects[c.To].(*Model); !ok {
			continue
		}
		curveNode := doc.Objects[c.From]
		if curveNode == nil {
			continue
		}
		var s [3]float64
		switch c.Prop {
		case "Lcl Translation":
			s = t.sign
		case "Lcl Rotation":
			s = [3]float64{t.sign[0] * t.det, t.sign[1] * t.det, t.sign[2] * t.det}
		case "Lcl Scaling":
			s = [3]float64{1, 1, 1}
		default:
			continue
		}
		scales[curveNode.ID()] = s
		remapCurveNodeDefaults(curveNode, t, s)
	}
	for _, c := range doc.Connections {
		if c.Type != "OP" {
			continue
		}
		s, ok := scales[c.To]
		if !ok {
			continue
		}
		j := channelIndex(c.Prop)
		if j < 0 {
			continue
		}
		c.SetProp(animCurveChannels[t.perm[j]])
		if curve := doc.Objects[c.From]; curve != nil && s[j] != 1 {
			scaleCurveValues(curve, geom.Element(s[j]))
		}
	}
}

func remapCurveNodeDefaults(curveNode Object, t *axisTransform, s [3]float64) {
	var defaults [3]*Property
	for j, name := range animCurveChannels {
		if p := curveNode.GetProperty(name); p.Get(0) != nil {
			defaults[j] = p
		}
	}
	for _, name := range animCurveChannels {
		curveNode.RemoveProperty(name)
	}
	for j, p := range defaults {
		if p == nil {
			continue
		}
		curveNode.SetProperty(animCurveChannels[t.perm[j]], &Property{
			Type: p.Type, Label: p.Label, Flag: p.Flag,
			AttributeList: []*Attribute{{Value: float64(p.ToFloat32(0)) * s[j]}},
		})
	}
}

func scaleCurveValues(curve Object, s geom.Element) {
	n := curve.GetNode().FindChild("KeyValueFloat")
	if n == nil {
		return
	}
	values := n.GetFloat32Array()
	for i := range values {
		values[i] *= s
	}
	if len(values) > 0 {
		n.Attributes = AttributeList{{Value: values, ArraySize: uint(len(values))}}
	}
}
