package fbx

// AxisSystem describes the coordinate convention of a scene, using the
// same encoding as the FBX SDK: an up axis with a sign, a front axis
// given as a parity relative to the up axis, and a handedness.
type AxisSystem struct {
	Up        Axis
	UpSign    int
	Front     FrontVector
	FrontSign int
	Coord     CoordSystem
}

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// FrontVector selects which of the two non-up axes points to the
// viewer: ParityEven is the first remaining axis in X,Y,Z order,
// ParityOdd is the second one.
type FrontVector int

const (
	ParityEven FrontVector = iota
	ParityOdd
)

type CoordSystem int

const (
	RightHanded CoordSystem = iota
	LeftHanded
)

// Predefined axis systems. Up/front/right directions follow the FBX
// SDK documentation for each application.
var (
	MayaZUp       = AxisSystem{Up: AxisZ, UpSign: 1, Front: ParityOdd, FrontSign: -1, Coord: RightHanded}
	MayaYUp       = AxisSystem{Up: AxisY, UpSign: 1, Front: ParityOdd, FrontSign: 1, Coord: RightHanded}
	Max           = AxisSystem{Up: AxisZ, UpSign: 1, Front: ParityOdd, FrontSign: -1, Coord: RightHanded}
	Motionbuilder = AxisSystem{Up: AxisY, UpSign: 1, Front: ParityOdd, FrontSign: 1, Coord: RightHanded}
	OpenGL        = AxisSystem{Up: AxisY, UpSign: 1, Front: ParityOdd, FrontSign: 1, Coord: RightHanded}
	DirectX       = AxisSystem{Up: AxisY, UpSign: 1, Front: ParityOdd, FrontSign: 1, Coord: LeftHanded}
	Lightwave     = AxisSystem{Up: AxisY, UpSign: 1, Front: ParityOdd, FrontSign: 1, Coord: LeftHanded}
)

// FrontAxis resolves the parity to an actual axis.
func (a AxisSystem) FrontAxis() Axis {
	remaining := [2]Axis{}
	n := 0
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		if axis != a.Up {
			remaining[n] = axis
			n++
		}
	}
	if a.Front == ParityEven {
		return remaining[0]
	}
	return remaining[1]
}

// RightAxis is the axis that is neither up nor front.
func (a AxisSystem) RightAxis() Axis {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		if axis != a.Up && axis != a.FrontAxis() {
			return axis
		}
	}
	return AxisX
}

// RightSign follows the SDK convention: the handedness value
// describes the direction of the right vector.
func (a AxisSystem) RightSign() int {
	if a.Coord == RightHanded {
		return 1
	}
	return -1
}

func frontParity(up, front Axis) FrontVector {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		if axis != up {
			if axis == front {
				return ParityEven
			}
			break
		}
	}
	return ParityOdd
}

func signOf(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

// GetAxisSystem reads the axis system from the GlobalSettings
// properties. The file stores plain axis indexes (0:X 1:Y 2:Z) for
// UpAxis, FrontAxis and CoordAxis; a negative CoordAxisSign means a
// left-handed system. Missing properties default to Y-up right-handed.
func (doc *Document) GetAxisSystem() AxisSystem {
	gs := doc.GlobalSettings
	up := Axis(gs.GetProperty("UpAxis").ToInt(1))
	front := Axis(gs.GetProperty("FrontAxis").ToInt(2))
	coord := RightHanded
	if gs.GetProperty("CoordAxisSign").ToInt(1) < 0 {
		coord = LeftHanded
	}
	return AxisSystem{
		Up:        up,
		UpSign:    signOf(gs.GetProperty("UpAxisSign").ToInt(1)),
		Front:     frontParity(up, front),
		FrontSign: signOf(gs.GetProperty("FrontAxisSign").ToInt(1)),
		Coord:     coord,
	}
}

// SetAxisSystem writes the axis system to the GlobalSettings
// properties, preserving OriginalUpAxis if it was already set.
func (doc *Document) SetAxisSystem(a AxisSystem) {
	gs := doc.GlobalSettings
	if gs.GetProperty("OriginalUpAxis").Get(0) == nil {
		gs.SetIntProperty("OriginalUpAxis", gs.GetProperty("UpAxis").ToInt(-1))
		gs.SetIntProperty("OriginalUpAxisSign", gs.GetProperty("UpAxisSign").ToInt(1))
	}
	gs.SetIntProperty("UpAxis", int(a.Up))
	gs.SetIntProperty("UpAxisSign", a.UpSign)
	gs.SetIntProperty("FrontAxis", int(a.FrontAxis()))
	gs.SetIntProperty("FrontAxisSign", a.FrontSign)
	gs.SetIntProperty("CoordAxis", int(a.RightAxis()))
	gs.SetIntProperty("CoordAxisSign", a.RightSign())
}
