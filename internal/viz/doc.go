// Package viz renders ARC grids for people.
//
// Three outputs share the same data:
//
//   - [PrintGrid]: the literal console form, optionally with color swatches
//   - [DrawFigure]: labeled panels drawn onto any [Surface]
//   - [RunInteractive]: a Bubble Tea browser over both datasets
//
// Drawing never displays anything by itself. Backends such as the raylib
// window and the SVG writer provide the Surface and decide when a figure is
// shown and dismissed.
//
// # Key Bindings
//
//	Tab   - Switch between training and evaluation
//	J/K   - Next/previous task
//	H/L   - Previous/next pair of the current task
//	Q     - Quit
package viz
