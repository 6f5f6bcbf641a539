package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned when a preset name or value is not recognized
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named, fixed time-range pattern for a single weekday
type Preset int

const (
	// PresetContinuous "corrido": open to close without a break
	PresetContinuous Preset = iota + 1
	// PresetSplit "cortado": morning and afternoon with a midday break
	PresetSplit
	// PresetAfternoon "tarde": afternoon only
	PresetAfternoon
)

var presetNames = map[Preset]string{
	PresetContinuous: "corrido",
	PresetSplit:      "cortado",
	PresetAfternoon:  "tarde",
}

// Presets returns all presets in display order
func Presets() []Preset {
	return []Preset{PresetContinuous, PresetSplit, PresetAfternoon}
}

// ParsePreset converts a wire name ("corrido", "cortado", "tarde") to a Preset
func ParsePreset(name string) (Preset, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for preset, presetName := range presetNames {
		if presetName == normalized {
			return preset, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

func (p Preset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return fmt.Sprintf("preset(%d)", int(p))
}

// Ranges returns a fresh copy of the preset's ranges
func (p Preset) Ranges() ([]TimeRange, error) {
	switch p {
	case PresetContinuous:
		return []TimeRange{{StartTime: "10:00", EndTime: "20:00"}}, nil
	case PresetSplit:
		return []TimeRange{MorningRange, AfternoonRange}, nil
	case PresetAfternoon:
		return []TimeRange{{StartTime: "16:00", EndTime: "21:00"}}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPreset, int(p))
	}
}
