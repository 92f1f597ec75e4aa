package spiro

import (
	"fmt"
	"strings"
)

// Family selects the curve family or field a Vector describes.
type Family int

const (
	// Spirograph is the planar hypotrochoid.
	Spirograph Family = iota
	// Compound is the two-stage planar hypotrochoid.
	Compound
	// Spirograph3D is the hypotrochoid tilted about X and precessing about Y.
	Spirograph3D
	// Compound3D is the compound hypotrochoid tilted about X and Y, spun
	// about Z and colored by position.
	Compound3D
	// Wireframe3D is the compound hypotrochoid under a time-driven rotation
	// and the matrix projection, with spokes to the centre.
	Wireframe3D
	// Nodal is the standing-wave plate pattern.
	Nodal
)

var familyNames = [...]string{
	Spirograph:   "spirograph",
	Compound:     "compound",
	Spirograph3D: "spirograph3d",
	Compound3D:   "compound3d",
	Wireframe3D:  "wireframe3d",
	Nodal:        "nodal",
}

// Families lists every family in declaration order.
func Families() []Family {
	return []Family{Spirograph, Compound, Spirograph3D, Compound3D, Wireframe3D, Nodal}
}

// String returns the family's canonical name.
func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// ParseFamily returns the family with the given name (case-insensitive).
func ParseFamily(name string) (Family, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range familyNames {
		if n == name {
			return Family(i), nil
		}
	}
	return 0, fmt.Errorf("spiro: unknown family %q", name)
}

// Valid reports whether f is a declared family.
func (f Family) Valid() bool {
	return f >= 0 && int(f) < len(familyNames)
}

// Animated reports whether the family's output depends on the frame tick,
// so the driver must regenerate it every frame.
func (f Family) Animated() bool {
	return f == Wireframe3D
}

// IsField reports whether the family produces a scalar field rather than
// a polyline.
func (f Family) IsField() bool {
	return f == Nodal
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("spiro: unknown family %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Family) UnmarshalText(text []byte) error {
	v, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
