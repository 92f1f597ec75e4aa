package spiro

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Presets is a named collection of parameter snapshots.
type Presets map[string]Vector

// presetFile is the TOML layout:
//
//	[presets.rose]
//	family = "spirograph"
//	params = { R = 220, r = 60, d = 90 }
//
//	[presets.plate]
//	family = "nodal"
//	params = { m1 = 3, n1 = 5, a = 1.5 }
//	enabled = [true, false, false, false]
type presetFile struct {
	Presets map[string]presetEntry `toml:"presets"`
}

type presetEntry struct {
	Family  Family             `toml:"family"`
	Params  map[string]float64 `toml:"params"`
	Enabled []bool             `toml:"enabled"`
}

// LoadPresets decodes TOML presets from r. Each preset starts from its
// family's defaults; every listed parameter is validated against the
// family schema, so a file cannot smuggle an out-of-range value past the
// parameter boundary.
func LoadPresets(r io.Reader) (Presets, error) {
	var file presetFile
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("spiro: decode presets: %w", err)
	}

	out := make(Presets, len(file.Presets))
	for name, entry := range file.Presets {
		v, err := entry.vector()
		if err != nil {
			return nil, fmt.Errorf("spiro: preset %q: %w", name, err)
		}
		out[name] = v
	}
	Logger().Debug("spiro: presets loaded", "count", len(out))
	return out, nil
}

func (e presetEntry) vector() (Vector, error) {
	v := DefaultVector(e.Family)

	// Apply in a stable order so the first reported error is deterministic.
	names := make([]string, 0, len(e.Params))
	for name := range e.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	var err error
	for _, name := range names {
		if v, err = v.With(name, e.Params[name]); err != nil {
			return Vector{}, err
		}
	}
	if len(e.Enabled) > 0 {
		if e.Family != Nodal {
			return Vector{}, &ParamError{Name: "enabled", Reason: "modes apply to the nodal family only"}
		}
		if len(e.Enabled) > ModeCount {
			return Vector{}, &ParamError{Name: "enabled", Reason: "at most " + strconv.Itoa(ModeCount) + " modes"}
		}
		for i, on := range e.Enabled {
			v.Modes[i].Enabled = on
		}
	}
	return v, v.Validate()
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
