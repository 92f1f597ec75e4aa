package spiro

import (
	"fmt"
	"math"
	"strconv"
)

// ModeCount is the number of independently toggled standing-wave modes.
const ModeCount = 4

// ParamSpec declares one tunable numeric parameter: its name on the
// parameter boundary, a human label, the default and the closed range.
type ParamSpec struct {
	Name    string  `json:"name" toml:"name"`
	Label   string  `json:"label" toml:"label"`
	Default float64 `json:"default" toml:"default"`
	Min     float64 `json:"min" toml:"min"`
	Max     float64 `json:"max" toml:"max"`
	Step    float64 `json:"step" toml:"step"`
	Integer bool    `json:"integer,omitempty" toml:"integer"`
}

// Clamp snaps integer parameters to the nearest integer and limits v to
// [Min, Max]. NaN clamps to the default.
func (s ParamSpec) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.Default
	}
	if s.Integer {
		v = math.Round(v)
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

// Check returns a *ParamError if v is outside the declared range.
func (s ParamSpec) Check(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParamError{Name: s.Name, Value: v, Min: s.Min, Max: s.Max, Reason: "not a finite number"}
	}
	if v < s.Min || v > s.Max {
		return &ParamError{Name: s.Name, Value: v, Min: s.Min, Max: s.Max}
	}
	if s.Integer && v != math.Trunc(v) {
		return &ParamError{Name: s.Name, Value: v, Min: s.Min, Max: s.Max, Reason: "must be an integer"}
	}
	return nil
}

// Mode is one standing-wave term sin(m*pi*x/a)*sin(n*pi*y/b).
type Mode struct {
	M       int  `json:"m" toml:"m"`
	N       int  `json:"n" toml:"n"`
	Enabled bool `json:"enabled" toml:"enabled"`
}

// Vector is the full parameter snapshot for one family. Fields not used by
// the selected family are ignored.
type Vector struct {
	Family Family `json:"family"`

	FixedRadius   float64 `json:"R,omitempty"`  // R, simple families
	OuterRadius   float64 `json:"R1,omitempty"` // R1, compound families
	MiddleRadius  float64 `json:"R2,omitempty"` // R2, compound families
	RollingRadius float64 `json:"r,omitempty"`
	PenOffset     float64 `json:"d,omitempty"`

	// Tilt angles in degrees.
	Tilt  float64 `json:"tilt,omitempty"`
	TiltX float64 `json:"tiltX,omitempty"`
	TiltY float64 `json:"tiltY,omitempty"`

	Modes  [ModeCount]Mode `json:"modes"`
	PlateA float64         `json:"a,omitempty"`
	PlateB float64         `json:"b,omitempty"`
}

func radius(name, label string, def, lo, hi float64) ParamSpec {
	return ParamSpec{Name: name, Label: label, Default: def, Min: lo, Max: hi, Step: 1}
}

var (
	simpleSpecs = []ParamSpec{
		radius("R", "R (fixed circle)", 200, 50, 300),
		radius("r", "r (moving circle)", 50, 10, 100),
		radius("d", "d (pen distance)", 80, 10, 100),
	}
	tiltSpec      = ParamSpec{Name: "tilt", Label: "Tilt angle (degrees)", Default: 45, Min: 0, Max: 90, Step: 1}
	compoundSpecs = []ParamSpec{
		radius("R1", "R1 (outermost circle)", 250, 100, 350),
		radius("R2", "R2 (middle circle)", 150, 50, 200),
		radius("r", "r (inner circle)", 50, 10, 100),
		radius("d", "d (pen distance)", 30, 5, 100),
	}
	tiltXYSpecs = []ParamSpec{
		{Name: "tiltX", Label: "Tilt X (degrees)", Default: 30, Min: 0, Max: 90, Step: 1},
		{Name: "tiltY", Label: "Tilt Y (degrees)", Default: 30, Min: 0, Max: 90, Step: 1},
	}
	nodalSpecs = buildNodalSpecs()
)

func buildNodalSpecs() []ParamSpec {
	specs := make([]ParamSpec, 0, 2*ModeCount+2)
	for i := 1; i <= ModeCount; i++ {
		n := strconv.Itoa(i)
		specs = append(specs,
			ParamSpec{Name: "m" + n, Label: "m" + n, Default: 2, Min: 0, Max: 10, Step: 1, Integer: true},
			ParamSpec{Name: "n" + n, Label: "n" + n, Default: 3, Min: 0, Max: 10, Step: 1, Integer: true},
		)
	}
	return append(specs,
		ParamSpec{Name: "a", Label: "a (plate width)", Default: 1, Min: 0.1, Max: 2, Step: 0.01},
		ParamSpec{Name: "b", Label: "b (plate height)", Default: 1, Min: 0.1, Max: 2, Step: 0.01},
	)
}

// Params returns the parameter schema of the family, in display order.
// The returned slice is a copy.
func (f Family) Params() []ParamSpec {
	var specs []ParamSpec
	switch f {
	case Spirograph:
		specs = simpleSpecs
	case Spirograph3D:
		specs = append(append([]ParamSpec{}, simpleSpecs...), tiltSpec)
	case Compound, Wireframe3D:
		specs = compoundSpecs
	case Compound3D:
		specs = append(append([]ParamSpec{}, compoundSpecs...), tiltXYSpecs...)
	case Nodal:
		specs = nodalSpecs
	}
	return append([]ParamSpec(nil), specs...)
}

// Spec returns the schema entry for name within the family.
func (f Family) Spec(name string) (ParamSpec, bool) {
	for _, s := range f.Params() {
		if s.Name == name {
			return s, true
		}
	}
	return ParamSpec{}, false
}

// DefaultVector returns the family's parameters at their declared defaults,
// with every standing-wave mode enabled.
func DefaultVector(f Family) Vector {
	v := Vector{Family: f}
	for _, s := range f.Params() {
		_ = v.set(s.Name, s.Default)
	}
	if f == Nodal {
		for i := range v.Modes {
			v.Modes[i].Enabled = true
		}
	}
	return v
}

// Value returns the named parameter of v.
func (v Vector) Value(name string) (float64, bool) {
	if p := v.field(name); p != nil {
		return *p, true
	}
	if i, isM, ok := modeIndex(name); ok {
		if isM {
			return float64(v.Modes[i].M), true
		}
		return float64(v.Modes[i].N), true
	}
	return 0, false
}

// With returns a copy of v with the named parameter set after validation
// against the family's schema.
func (v Vector) With(name string, value float64) (Vector, error) {
	spec, ok := v.Family.Spec(name)
	if !ok {
		return v, &ParamError{Name: name, Value: value, Reason: "unknown parameter for " + v.Family.String()}
	}
	if spec.Integer && !math.IsNaN(value) && !math.IsInf(value, 0) {
		value = math.Round(value)
	}
	if err := spec.Check(value); err != nil {
		return v, err
	}
	if err := v.set(name, value); err != nil {
		return v, err
	}
	return v, nil
}

// Validate checks every parameter the family uses against its declared
// range and rejects zero divisors. It returns a *ParamError wrapping
// ErrInvalidParameter.
func (v Vector) Validate() error {
	if !v.Family.Valid() {
		return fmt.Errorf("spiro: family %d: %w", int(v.Family), ErrInvalidParameter)
	}
	for _, s := range v.Family.Params() {
		val, _ := v.Value(s.Name)
		if err := s.Check(val); err != nil {
			return err
		}
	}
	switch v.Family {
	case Spirograph, Spirograph3D:
		if v.RollingRadius == 0 {
			return &ParamError{Name: "r", Reason: "zero divisor"}
		}
	case Compound, Compound3D, Wireframe3D:
		if v.RollingRadius == 0 {
			return &ParamError{Name: "r", Reason: "zero divisor"}
		}
		if v.MiddleRadius == 0 {
			return &ParamError{Name: "R2", Reason: "zero divisor"}
		}
	case Nodal:
		if !(v.PlateA > 0) {
			return &ParamError{Name: "a", Value: v.PlateA, Reason: "zero divisor"}
		}
		if !(v.PlateB > 0) {
			return &ParamError{Name: "b", Value: v.PlateB, Reason: "zero divisor"}
		}
	}
	return nil
}

func (v *Vector) set(name string, value float64) error {
	if p := v.field(name); p != nil {
		*p = value
		return nil
	}
	if i, isM, ok := modeIndex(name); ok {
		if isM {
			v.Modes[i].M = int(value)
		} else {
			v.Modes[i].N = int(value)
		}
		return nil
	}
	return &ParamError{Name: name, Value: value, Reason: "unknown parameter"}
}

func (v *Vector) field(name string) *float64 {
	switch name {
	case "R":
		return &v.FixedRadius
	case "R1":
		return &v.OuterRadius
	case "R2":
		return &v.MiddleRadius
	case "r":
		return &v.RollingRadius
	case "d":
		return &v.PenOffset
	case "tilt":
		return &v.Tilt
	case "tiltX":
		return &v.TiltX
	case "tiltY":
		return &v.TiltY
	case "a":
		return &v.PlateA
	case "b":
		return &v.PlateB
	}
	return nil
}

// modeIndex decodes "m1".."m4" / "n1".."n4" into a zero-based index.
func modeIndex(name string) (index int, isM bool, ok bool) {
	if len(name) != 2 || (name[0] != 'm' && name[0] != 'n') {
		return 0, false, false
	}
	i := int(name[1] - '1')
	if i < 0 || i >= ModeCount {
		return 0, false, false
	}
	return i, name[0] == 'm', true
}
