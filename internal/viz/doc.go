// Package viz draws a running engine in the terminal.
//
//   - [Canvas]: Braille pixel canvas, 2x4 dots per cell
//   - [Projector]: world to canvas mapping with y pointing up
//   - [Model]: Bubble Tea live view with FPS, energy chart and themes
//   - [Picker]: scene menu that opens a live view
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	N     - Single step while paused
//	R     - Rebuild the scene from scratch
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
