// Package browser drives the console session: choose a dataset, choose a task,
// print its grids and show its figures one at a time.
package browser
