package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/arcview/internal/viz"
)

// Window shows figures in a raylib window.
type Window struct {
	PanelSize int
	FPS       int
}

func NewWindow(panelSize, fps int) *Window {
	return &Window{PanelSize: panelSize, FPS: fps}
}

// Show opens a window for fig and blocks until the user closes it with the
// close button, Esc, q or Enter.
func (w *Window) Show(fig viz.Figure) error {
	if err := viz.ValidateFigure(fig); err != nil {
		return err
	}

	width, height := viz.FigureSize(fig, w.PanelSize)
	title := fig.Title
	if title == "" {
		title = "arcview"
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(int32(w.FPS))
	defer rl.CloseWindow()

	surface := rlSurface{}
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEnter) {
			break
		}
		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		err := viz.DrawFigure(surface, fig, float64(width), float64(height))
		rl.EndDrawing()
		if err != nil {
			return err
		}
	}
	return nil
}

// rlSurface draws onto the current raylib frame.
type rlSurface struct{}

func (rlSurface) FillRect(r viz.Rect, c color.RGBA) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H)), c)
}

func (rlSurface) Line(x0, y0, x1, y1, width float64, c color.RGBA) {
	rl.DrawLineEx(rl.NewVector2(float32(x0), float32(y0)), rl.NewVector2(float32(x1), float32(y1)), float32(width), c)
}

func (rlSurface) Text(x, y, size float64, s string, c color.RGBA) {
	fs := int32(size)
	tw := rl.MeasureText(s, fs)
	rl.DrawText(s, int32(x)-tw/2, int32(y)-fs/2, fs, c)
}
