// Package viz animates a family of sweep panels in the terminal.
//
// Each frame is one panel (for example one drive voltage of a time family).
// The view redraws the panel's chart and its metrics as frames advance.
//
// # Key Bindings
//
//	Space      - Pause/Resume
//	Left/Right - Step one frame
//	+/-        - Faster/Slower
//	T          - Cycle color themes
//	?          - Toggle help
//	Q          - Quit
package viz
