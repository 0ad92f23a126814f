package main

import (
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
)

// grid lays out widgets in an equally-spaced grid.
type grid struct {
	rows, cols int
	spacing    int // in pixels
}

type gridWidget func(int, int, layout.Context) layout.Dimensions

// layout places the grid elements by calling widget for each row/column. This only really
// works well if spacing is non-zero because the cells are placed at integer coordinates.
// The grid will look slighly uneven with too little spacing.
func (g *grid) layout(gtx layout.Context, widget gridWidget) layout.Dimensions {
	var (
		size  = gtx.Constraints.Max
		w, h  = float32(size.X), float32(size.Y)
		space = float32(g.spacing)
	)
	if g.cols > 0 {
		w = (w - float32(g.cols-1)*space) / float32(g.cols)
	}
	if g.rows > 0 {
		h = (h - float32(g.rows-1)*space) / float32(g.rows)
	}

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			pos := image.Point{
				X: int(float32(col)*w + float32(col)*space),
				Y: int(float32(row)*h + float32(row)*space),
			}
			cell := gtx
			cell.Constraints = layout.Exact(image.Pt(int(w), int(h)))
			stk := op.Offset(pos).Push(gtx.Ops)
			widget(row, col, cell)
			stk.Pop()
		}
	}
	return layout.Dimensions{Size: size}
}

// shrinkToFit renders w, scaling down if it doesn't fit into the available width.
func shrinkToFit(gtx layout.Context, w layout.Widget) layout.Dimensions {
	// Render w with near-infinite width.
	macro := op.Record(gtx.Ops)
	wide := gtx
	wide.Constraints.Min.X = 0
	wide.Constraints.Max.X = 10e6
	dim := w(wide)
	call := macro.Stop()

	// Scale down if it exceeds the available space, keep it right-aligned
	// otherwise.
	bounds := gtx.Constraints.Max
	if dim.Size.X > bounds.X {
		scale := float32(bounds.X) / float32(dim.Size.X)
		origin := f32.Pt(0, float32(bounds.Y))
		tr := f32.Affine2D{}.Scale(origin, f32.Pt(scale, scale))
		defer op.Affine(tr).Push(gtx.Ops).Pop()
	} else {
		defer op.Offset(image.Pt(bounds.X-dim.Size.X, 0)).Push(gtx.Ops).Pop()
	}
	call.Add(gtx.Ops)
	return layout.Dimensions{Size: bounds}
}
