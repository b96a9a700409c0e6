package converter

import (
	"fmt"
	"io/ioutil"

	"github.com/binzume/fbxaxis/fbx"
	"gopkg.in/yaml.v2"
)

// Preset files add conversion targets beyond the built-in ones:
//
//	targets:
//	  - name: unity
//	    description: Unity
//	    up: "+y"
//	    front: "+z"
//	    handedness: left
//
// "front" is the front vector of the file, pointing toward the
// viewer, not the forward direction.
type presetFile struct {
	Targets []*presetEntry `yaml:"targets"`
}

type presetEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Up          string `yaml:"up"`
	Front       string `yaml:"front"`
	Handedness  string `yaml:"handedness"`
}

func parseSignedAxis(s string) (fbx.Axis, int, error) {
	sign := 1
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	switch s {
	case "x", "X":
		return fbx.AxisX, sign, nil
	case "y", "Y":
		return fbx.AxisY, sign, nil
	case "z", "Z":
		return fbx.AxisZ, sign, nil
	}
	return fbx.AxisX, 0, fmt.Errorf("invalid axis: %q", s)
}

func (e *presetEntry) axisSystem() (fbx.AxisSystem, error) {
	var system fbx.AxisSystem
	up, upSign, err := parseSignedAxis(e.Up)
	if err != nil {
		return system, fmt.Errorf("target %s: up: %w", e.Name, err)
	}
	front, frontSign, err := parseSignedAxis(e.Front)
	if err != nil {
		return system, fmt.Errorf("target %s: front: %w", e.Name, err)
	}
	if front == up {
		return system, fmt.Errorf("target %s: up and front must be different axes", e.Name)
	}
	parity := fbx.ParityOdd
	for _, a := range []fbx.Axis{fbx.AxisX, fbx.AxisY, fbx.AxisZ} {
		if a == up {
			continue
		}
		if a == front {
			parity = fbx.ParityEven
		}
		break
	}
	coord := fbx.RightHanded
	switch e.Handedness {
	case "", "right", "right-handed":
	case "left", "left-handed":
		coord = fbx.LeftHanded
	default:
		return system, fmt.Errorf("target %s: invalid handedness: %q", e.Name, e.Handedness)
	}
	system = fbx.AxisSystem{Up: up, UpSign: upSign, Front: parity, FrontSign: frontSign, Coord: coord}
	return system, nil
}

// LoadTargetPresets reads extra conversion targets from a yaml file.
func LoadTargetPresets(path string) ([]*Target, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTargetPresets(data)
}

func ParseTargetPresets(data []byte) ([]*Target, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	var targets []*Target
	seen := map[string]bool{}
	for _, e := range file.Targets {
		if e.Name == "" {
			return nil, fmt.Errorf("preset target without a name")
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("duplicate target name: %s", e.Name)
		}
		seen[e.Name] = true
		system, err := e.axisSystem()
		if err != nil {
			return nil, err
		}
		desc := e.Description
		if desc == "" {
			desc = e.Name
		}
		targets = append(targets, &Target{Name: e.Name, Description: desc, System: system})
	}
	return targets, nil
}
