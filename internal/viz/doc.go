// Package viz renders random-walk trajectories in the terminal.
//
// The package draws onto a Braille sub-pixel [Canvas] and wraps it in an
// interactive Bubble Tea application:
//
//   - [Plot]: overlays trajectory sets in 2D (x, y) or 3D through a [Camera]
//   - [AxisChart]: one coordinate against step index, one series per particle
//   - [App]: parameter entry, plot and clear actions, theme selection
//
// # Key Bindings
//
//	↑/↓   - Select parameter
//	←/→   - Decrease/increase by the parameter's increment
//	Enter - Type a value
//	2 / 3 - Plot 2D / Plot 3D (overlays previous plots)
//	C     - Clear plot
//	X     - Clear plot and reset parameters to zero
//	WASD  - Rotate the 3D view
//	+/-   - Zoom
//	T     - Cycle color themes
package viz
