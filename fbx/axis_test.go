package fbx

import (
	"testing"
)

func TestAxisSystem_Axes(t *testing.T) {
	tests := []struct {
		name      string
		system    AxisSystem
		front     Axis
		right     Axis
		rightSign int
	}{
		{"MayaYUp", MayaYUp, AxisZ, AxisX, 1},
		{"MayaZUp", MayaZUp, AxisY, AxisX, 1},
		{"Max", Max, AxisY, AxisX, 1},
		{"OpenGL", OpenGL, AxisZ, AxisX, 1},
		{"DirectX", DirectX, AxisZ, AxisX, -1},
		{"Lightwave", Lightwave, AxisZ, AxisX, -1},
	}
	for _, tt := range tests {
		if a := tt.system.FrontAxis(); a != tt.front {
			t.Errorf("%s: FrontAxis: %v != %v", tt.name, a, tt.front)
		}
		if a := tt.system.RightAxis(); a != tt.right {
			t.Errorf("%s: RightAxis: %v != %v", tt.name, a, tt.right)
		}
		if s := tt.system.RightSign(); s != tt.rightSign {
			t.Errorf("%s: RightSign: %v != %v", tt.name, s, tt.rightSign)
		}
	}
}

func TestAxisSystem_GlobalSettings(t *testing.T) {
	doc := NewDocument()
	if a := doc.GetAxisSystem(); a != MayaYUp {
		t.Errorf("default axis system: %v", a)
	}

	for _, system := range []AxisSystem{MayaZUp, MayaYUp, Max, Motionbuilder, OpenGL, DirectX, Lightwave} {
		doc.SetAxisSystem(system)
		if a := doc.GetAxisSystem(); a != system {
			t.Errorf("round trip: %v != %v", a, system)
		}
	}

	doc.SetAxisSystem(MayaZUp)
	gs := doc.GlobalSettings
	if v := gs.GetProperty("UpAxis").ToInt(-1); v != 2 {
		t.Errorf("UpAxis: %v", v)
	}
	if v := gs.GetProperty("FrontAxis").ToInt(-1); v != 1 {
		t.Errorf("FrontAxis: %v", v)
	}
	if v := gs.GetProperty("FrontAxisSign").ToInt(0); v != -1 {
		t.Errorf("FrontAxisSign: %v", v)
	}
	if v := gs.GetProperty("CoordAxis").ToInt(-1); v != 0 {
		t.Errorf("CoordAxis: %v", v)
	}
	if v := gs.GetProperty("CoordAxisSign").ToInt(0); v != 1 {
		t.Errorf("CoordAxisSign: %v", v)
	}
}

func TestAxisSystem_LeftHanded(t *testing.T) {
	doc := NewDocument()
	doc.SetAxisSystem(DirectX)
	if v := doc.GlobalSettings.GetProperty("CoordAxisSign").ToInt(0); v != -1 {
		t.Errorf("CoordAxisSign: %v", v)
	}
	if a := doc.GetAxisSystem(); a.Coord != LeftHanded {
		t.Errorf("Coord: %v", a.Coord)
	}
}
