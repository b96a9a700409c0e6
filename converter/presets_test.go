package converter

import (
	"testing"

	"github.com/binzume/fbxaxis/fbx"
)

func TestParseTargetPresets(t *testing.T) {
	src := `
targets:
  - name: unity
    description: Unity
    up: "+y"
    front: "+z"
    handedness: left
  - name: blender
    up: "+z"
    front: "-y"
`
	targets, err := ParseTargetPresets([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(targets) != 2 {
		t.Fatalf("targets: %v", targets)
	}
	if targets[0].Name != "unity" || targets[0].Description != "Unity" {
		t.Errorf("unity: %v", targets[0])
	}
	if targets[0].System != fbx.DirectX {
		t.Errorf("unity system: %v", targets[0].System)
	}
	if targets[1].Description != "blender" {
		t.Errorf("description should default to the name: %v", targets[1])
	}
	if targets[1].System != fbx.MayaZUp {
		t.Errorf("blender system: %v", targets[1].System)
	}
}

func TestParseTargetPresets_Errors(t *testing.T) {
	bad := []string{
		"targets:\n  - name: a\n    up: \"+y\"\n    front: \"+y\"\n",
		"targets:\n  - name: a\n    up: \"+w\"\n    front: \"+z\"\n",
		"targets:\n  - name: a\n    up: \"+y\"\n    front: \"+z\"\n    handedness: both\n",
		"targets:\n  - up: \"+y\"\n    front: \"+z\"\n",
		"targets:\n  - name: a\n    up: \"+y\"\n    front: \"+z\"\n  - name: a\n    up: \"+z\"\n    front: \"-y\"\n",
	}
	for _, src := range bad {
		if _, err := ParseTargetPresets([]byte(src)); err == nil {
			t.Errorf("should fail: %q", src)
		}
	}
}
