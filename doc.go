// Package spiro generates interactive parametric curve families and
// standing-wave nodal fields.
//
// # Overview
//
// spiro turns a small parameter vector (radii, pen offset, tilt angles,
// mode numbers) into either an ordered polyline of 2D/3D points or a dense
// scalar field, ready for a display surface to draw. Generation is
// closed-form and synchronous; every regeneration recomputes all samples
// from the current snapshot.
//
// # Quick Start
//
//	import "github.com/gogpu/spiro"
//
//	s := spiro.NewState(spiro.Compound3D, spiro.NewGenerator())
//	if err := s.Set("d", 42); err != nil {
//	    // value outside the declared range; previous parameters kept
//	}
//	buf, err := s.Refresh()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, seg := range buf.Segments(spiro.Viewport(800, 600, 1)) {
//	    // draw seg.A -> seg.B in seg.Color
//	}
//
// # Families
//
//   - [Spirograph]: hypotrochoid, t in [0, 200*pi) at step 0.01
//   - [Compound]: two-stage hypotrochoid
//   - [Spirograph3D]: hypotrochoid tilted about X, precessing about Y, perspective projection
//   - [Compound3D]: compound curve rotated X, Y, Z and colored by position
//   - [Wireframe3D]: compound curve under a tick-driven rotation, matrix projection and spokes
//   - [Nodal]: sum of up to four sin(m*pi*x/a)*sin(n*pi*y/b) plate modes
//
// # Parameters and the dirty flag
//
// Each family declares its parameters through [Family.Params]. [State]
// rejects any write outside the declared range with an error wrapping
// [ErrInvalidParameter] and keeps the previous parameters and buffer.
// Every accepted write marks the state dirty; [State.Refresh] regenerates
// only when dirty. Drivers call [State.Tick] every frame so that animated
// families regenerate continuously while static ones stay cached.
//
// # Coordinate System
//
// Generated points are in curve units with the origin at the frame centre.
// [Viewport] maps them to pixel space (origin top-left, Y down).
// All angles are radians internally; tilt parameters are degrees.
package spiro
