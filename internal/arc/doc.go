// Package arc provides the data model for ARC puzzle tasks.
//
// The package defines the types the loader produces and the renderers consume:
//
//   - [Grid]: rows of color indices, row 0 on top
//   - [Pair]: an input grid and its expected output grid
//   - [Task]: training pairs plus held-out test pairs
//   - [Record]: one parsed task file, kept as-is whatever its shape
//   - [Dataset]: the ordered records of one directory
//   - [Palette]: the fixed 10-color mapping used for drawing
//
// # Example
//
//	rec := ds.At(3)
//	task, err := rec.Task()
//	if err != nil {
//		return err
//	}
//	rows, cols := task.Test[0].Input.Dims()
//
// # Errors
//
// Load failures are reported as [LoadError] values carrying a [Severity].
// Fatal errors end the program; advisory ones can be overridden by the user.
package arc
