// Package viz is the terminal frontend for the sorting visualizer.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: algorithm menu and the live bar view driven by a
//     [visual.Coordinator] at 60 frames per second
//   - [Canvas]: braille canvas; [BarChart] draws an array onto it
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space     - Start sorting
//	R         - New random array
//	Tab       - Next algorithm (shift+tab for previous)
//	[ ]       - Fewer / more bars
//	Left/Right - Slower / faster
//	C         - Show the code listing
//	M         - Mute
//	T         - Cycle color themes
//	?         - Full help
//	Esc       - Back to the menu
package viz
