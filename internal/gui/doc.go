// Package gui displays figures in a native window through raylib.
//
// raylib must be driven from the main OS thread; the raylib package locks it
// at init, so Show must be called from the main goroutine.
package gui
