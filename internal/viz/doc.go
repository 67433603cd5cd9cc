// Package viz is the terminal live view of the orrery.
//
// The package implements a Bubble Tea program that drives a simulation
// clock once per frame and draws the catalog on a braille canvas:
//
//   - [Model]: the live view, status panel and distance plot
//   - [Canvas]: braille dot canvas with per-cell colour and text labels
//   - [Camera]: projection of heliocentric AU coordinates with zoom and tilt
//   - [Snapshot]: a single frame, for export without a terminal
//   - Theme selection with 6 built-in colour schemes
//
// # Key Bindings
//
//	Space - Play/pause the clock
//	< >   - Slower/faster time scale preset
//	[ ]   - Jump backward/forward by the jump unit (u cycles it)
//	F     - Cycle focus body, B opens the body menu
//	+ -   - Zoom
//	T     - Cycle colour themes
//	?     - Show help overlay
package viz
