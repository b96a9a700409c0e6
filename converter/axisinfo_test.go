package converter

import (
	"testing"

	"github.com/binzume/fbxaxis/fbx"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		system fbx.AxisSystem
		want   string
	}{
		{"MayaYUp", fbx.MayaYUp, "up: +y, right: +x, forward: -z, right-handed"},
		{"MayaZUp", fbx.MayaZUp, "up: +z, right: +x, forward: +y, right-handed"},
		{"Max", fbx.Max, "up: +z, right: +x, forward: +y, right-handed"},
		{"OpenGL", fbx.OpenGL, "up: +y, right: +x, forward: -z, right-handed"},
		{"DirectX", fbx.DirectX, "up: +y, right: -x, forward: -z, left-handed"},
		{"Lightwave", fbx.Lightwave, "up: +y, right: -x, forward: -z, left-handed"},
	}
	for _, tt := range tests {
		if s := Describe(tt.system).String(); s != tt.want {
			t.Errorf("%s: %v != %v", tt.name, s, tt.want)
		}
	}
}

func TestDescribe_DistinctAxes(t *testing.T) {
	for _, system := range []fbx.AxisSystem{fbx.MayaZUp, fbx.MayaYUp, fbx.Max, fbx.Motionbuilder, fbx.OpenGL, fbx.DirectX, fbx.Lightwave} {
		d := Describe(system)
		if d.Up[1] == d.Right[1] || d.Up[1] == d.Forward[1] || d.Right[1] == d.Forward[1] {
			t.Errorf("axes not distinct: %v", d)
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		system fbx.AxisSystem
		want   string
	}{
		{fbx.MayaZUp, "MayaZUp"},
		{fbx.MayaYUp, "MayaYUp"},
		{fbx.Max, "MayaZUp"},          // same directions, first match wins
		{fbx.Motionbuilder, "MayaYUp"},
		{fbx.OpenGL, "MayaYUp"},
		{fbx.DirectX, "DirectX"},
		{fbx.Lightwave, "DirectX"},
		{fbx.AxisSystem{Up: fbx.AxisX, UpSign: 1, Front: fbx.ParityEven, FrontSign: 1, Coord: fbx.RightHanded}, "Custom"},
	}
	for _, tt := range tests {
		if s := Name(tt.system); s != tt.want {
			t.Errorf("%v != %v", s, tt.want)
		}
	}
}

func TestFindTarget(t *testing.T) {
	targets := Targets()
	if len(targets) != 6 {
		t.Errorf("targets: %v", targets)
	}
	if tgt := FindTarget(targets, "realitykit"); tgt == nil || tgt.System != fbx.MayaYUp {
		t.Errorf("realitykit: %v", tgt)
	}
	if tgt := FindTarget(targets, "maya-z-up"); tgt == nil || tgt.System != fbx.MayaZUp {
		t.Errorf("maya-z-up: %v", tgt)
	}
	if tgt := FindTarget(targets, "OpenGL"); tgt != nil {
		t.Errorf("target names are case sensitive: %v", tgt)
	}
	if tgt := FindTarget(targets, "unknown"); tgt != nil {
		t.Errorf("unknown: %v", tgt)
	}
}
