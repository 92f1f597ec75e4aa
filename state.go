package spiro

import (
	"fmt"
	"time"
)

// StateOption configures a State during creation.
type StateOption func(*State)

// WithFrameBudget enables a DensityGovernor with the given per-frame
// budget (for example time.Second/60).
func WithFrameBudget(budget time.Duration) StateOption {
	return func(s *State) {
		if budget > 0 {
			s.governor = NewDensityGovernor(budget)
		}
	}
}

// WithClock replaces the clock used to time regenerations.
func WithClock(now func() time.Time) StateOption {
	return func(s *State) {
		if now != nil {
			s.now = now
		}
	}
}

// State is the live parameter vector plus the dirty-flag contract: every
// write marks the output stale, and Refresh regenerates only when it is.
// The last good RenderBuffer is kept when a write is rejected or a
// regeneration fails.
//
// A State is owned by a single frame loop and is not safe for concurrent
// use.
type State struct {
	gen      *Generator
	vec      Vector
	dirty    bool
	tick     float64
	buf      *RenderBuffer
	governor *DensityGovernor
	now      func() time.Time
}

// NewState creates a State holding the defaults of family f. The first
// Refresh always generates. A nil gen uses NewGenerator().
func NewState(f Family, gen *Generator, opts ...StateOption) *State {
	if gen == nil {
		gen = NewGenerator()
	}
	s := &State{
		gen:   gen,
		vec:   DefaultVector(f),
		dirty: true,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current parameters.
func (s *State) Snapshot() Vector { return s.vec }

// Family returns the selected family.
func (s *State) Family() Family { return s.vec.Family }

// Dirty reports whether the current buffer is stale.
func (s *State) Dirty() bool { return s.dirty }

// Buffer returns the last successfully generated buffer, or nil before
// the first Refresh.
func (s *State) Buffer() *RenderBuffer { return s.buf }

// Stride returns the sample stride the next regeneration will use.
func (s *State) Stride() int { return s.governor.Stride() }

// Set writes one named parameter. Values outside the declared range are
// rejected with a *ParamError and the state is left unchanged.
func (s *State) Set(name string, value float64) error {
	v, err := s.vec.With(name, value)
	if err != nil {
		Logger().Warn("spiro: rejected parameter", "family", s.vec.Family.String(), "name", name, "value", value, "err", err)
		return err
	}
	s.vec = v
	s.dirty = true
	return nil
}

// Nudge moves a parameter by steps multiples of its declared step,
// clamping to the declared range. It is the slider-drag operation.
func (s *State) Nudge(name string, steps float64) error {
	spec, ok := s.vec.Family.Spec(name)
	if !ok {
		return &ParamError{Name: name, Reason: "unknown parameter for " + s.vec.Family.String()}
	}
	cur, _ := s.vec.Value(name)
	return s.Set(name, spec.Clamp(cur+steps*spec.Step))
}

// SetEnabled turns standing-wave mode i (0-based) on or off.
func (s *State) SetEnabled(i int, on bool) error {
	if s.vec.Family != Nodal {
		return &ParamError{Name: fmt.Sprintf("F%d", i+1), Reason: "modes apply to the nodal family only"}
	}
	if i < 0 || i >= ModeCount {
		return &ParamError{Name: fmt.Sprintf("F%d", i+1), Value: float64(i + 1), Min: 1, Max: ModeCount}
	}
	s.vec.Modes[i].Enabled = on
	s.dirty = true
	return nil
}

// ToggleMode flips standing-wave mode i (0-based).
func (s *State) ToggleMode(i int) error {
	if i < 0 || i >= ModeCount {
		return s.SetEnabled(i, false)
	}
	return s.SetEnabled(i, !s.vec.Modes[i].Enabled)
}

// Replace installs a full snapshot after validating it.
func (s *State) Replace(v Vector) error {
	if err := v.Validate(); err != nil {
		Logger().Warn("spiro: rejected snapshot", "family", v.Family.String(), "err", err)
		return err
	}
	s.vec = v
	s.dirty = true
	return nil
}

// SetFamily switches to family f at its defaults.
func (s *State) SetFamily(f Family) error {
	if !f.Valid() {
		return fmt.Errorf("spiro: family %d: %w", int(f), ErrInvalidParameter)
	}
	s.vec = DefaultVector(f)
	s.dirty = true
	Logger().Info("spiro: family selected", "family", f.String())
	return nil
}

// Reset restores every parameter of the current family to its default and
// regenerates immediately.
func (s *State) Reset() (*RenderBuffer, error) {
	s.vec = DefaultVector(s.vec.Family)
	s.dirty = true
	Logger().Info("spiro: reset", "family", s.vec.Family.String())
	return s.Refresh()
}

// Tick advances the frame time. Animated families become dirty whenever
// the time changes; static families ignore it.
func (s *State) Tick(t float64) {
	if t == s.tick {
		return
	}
	s.tick = t
	if s.vec.Family.Animated() {
		s.dirty = true
	}
}

// Refresh regenerates the buffer if the state is dirty and clears the
// flag. On failure the previous buffer is returned along with the error.
func (s *State) Refresh() (*RenderBuffer, error) {
	if !s.dirty {
		return s.buf, nil
	}
	s.dirty = false

	start := s.now()
	buf, err := s.gen.Generate(s.vec, Frame{Tick: s.tick, Stride: s.governor.Stride()})
	if err != nil {
		Logger().Warn("spiro: regeneration failed, keeping previous frame", "family", s.vec.Family.String(), "err", err)
		return s.buf, err
	}
	s.buf = buf

	if changed, finer := s.governor.Observe(s.now().Sub(start)); changed {
		Logger().Info("spiro: sample density changed", "stride", s.governor.Stride())
		if finer {
			s.dirty = true
		}
	}
	return s.buf, nil
}
