package converter

import (
	"fmt"

	"github.com/binzume/fbxaxis/fbx"
)

// AxisDescription is a human readable form of an axis system. Each
// direction is a signed axis letter like "+y" or "-x".
type AxisDescription struct {
	Up         string
	Right      string
	Forward    string
	Handedness string
}

func (d *AxisDescription) String() string {
	return fmt.Sprintf("up: %s, right: %s, forward: %s, %s", d.Up, d.Right, d.Forward, d.Handedness)
}

func axisLetter(a fbx.Axis) byte {
	switch a {
	case fbx.AxisX:
		return 'x'
	case fbx.AxisY:
		return 'y'
	case fbx.AxisZ:
		return 'z'
	}
	return '?'
}

type frontKey struct {
	up    fbx.Axis
	front fbx.FrontVector
}

// frontLetters maps (up axis, front parity) to the front axis letter.
// Derived from the SDK's predefined systems: MayaYUp stores its +z
// front as ParityOdd, MayaZUp stores its -y front as ParityOdd.
var frontLetters = map[frontKey]byte{
	{fbx.AxisX, fbx.ParityEven}: 'y',
	{fbx.AxisX, fbx.ParityOdd}:  'z',
	{fbx.AxisY, fbx.ParityEven}: 'x',
	{fbx.AxisY, fbx.ParityOdd}:  'z',
	{fbx.AxisZ, fbx.ParityEven}: 'x',
	{fbx.AxisZ, fbx.ParityOdd}:  'y',
}

func rightLetter(up, front byte) byte {
	covers := func(c byte) bool { return up == c || front == c }
	if covers('x') && covers('y') {
		return 'z'
	}
	if covers('x') && covers('z') {
		return 'y'
	}
	return 'x'
}

func signedLetter(sign int, letter byte) string {
	c := byte('+')
	if sign < 0 {
		c = '-'
	}
	return string([]byte{c, letter})
}

// Describe resolves an axis system to signed direction letters. The
// front vector of the file points toward the viewer; "forward"
// conventionally points into the screen, so its sign is flipped.
// The handedness value doubles as the right vector sign; that holds
// for all of the documented predefined systems.
func Describe(a fbx.AxisSystem) *AxisDescription {
	up := axisLetter(a.Up)
	front, ok := frontLetters[frontKey{a.Up, a.Front}]
	if !ok {
		front = '?'
	}
	handedness := "right-handed"
	rightSign := 1
	if a.Coord == fbx.LeftHanded {
		handedness = "left-handed"
		rightSign = -1
	}
	return &AxisDescription{
		Up:         signedLetter(a.UpSign, up),
		Right:      signedLetter(rightSign, rightLetter(up, front)),
		Forward:    signedLetter(-a.FrontSign, front),
		Handedness: handedness,
	}
}

// Name returns the well-known name of an axis system, or "Custom".
// Systems sharing the same directions resolve to the first match:
// Max reports as MayaZUp, OpenGL as MayaYUp.
func Name(a fbx.AxisSystem) string {
	named := []struct {
		system fbx.AxisSystem
		name   string
	}{
		{fbx.MayaZUp, "MayaZUp"},
		{fbx.MayaYUp, "MayaYUp"},
		{fbx.Max, "Max"},
		{fbx.Motionbuilder, "Motionbuilder"},
		{fbx.OpenGL, "OpenGL"},
		{fbx.DirectX, "DirectX"},
		{fbx.Lightwave, "Lightwave"},
	}
	for _, n := range named {
		if a == n.system {
			return n.name
		}
	}
	return "Custom"
}

// Target is a selectable conversion target.
type Target struct {
	Name        string
	Description string
	System      fbx.AxisSystem
}

// Targets returns the built-in conversion targets, in display order.
func Targets() []*Target {
	return []*Target{
		{"realitykit", "RealityKit", fbx.MayaYUp},
		{"maya-y-up", "Maya Y-Up", fbx.MayaYUp},
		{"maya-z-up", "Maya Z-Up", fbx.MayaZUp},
		{"max", "3ds Max", fbx.Max},
		{"opengl", "OpenGL", fbx.OpenGL},
		{"directx", "DirectX", fbx.DirectX},
	}
}

// FindTarget looks up a target by its name. Names are case sensitive.
func FindTarget(targets []*Target, name string) *Target {
	for _, t := range targets {
		if t.Name == name {
			return t
		}
	}
	return nil
}
