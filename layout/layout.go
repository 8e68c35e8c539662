package layout

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/x/outlay"
)

// StatusGrid lays out a small table whose columns are as wide as their widest
// cell and whose rows are as tall as the tallest cell.
type StatusGrid struct {
	Grid          outlay.Grid
	RowPadding    int
	ColumnPadding int
}

// Layout lays out rows×cols cells. Cells are laid out twice per call: once
// without constraints to measure them, with the resulting operations
// discarded, and once to draw them.
func (sg StatusGrid) Layout(gtx layout.Context, rows, cols int, cell outlay.Cell) layout.Dimensions {
	if rows == 0 || cols == 0 {
		return layout.Dimensions{}
	}

	colWidths := make([]int, cols)
	var rowHeight int
	mgtx := gtx
	mgtx.Constraints.Min = image.Point{}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			m := op.Record(gtx.Ops)
			dims := cell(mgtx, row, col)
			m.Stop()
			colWidths[col] = max(colWidths[col], dims.Size.X)
			rowHeight = max(rowHeight, dims.Size.Y)
		}
	}

	dimmer := func(axis layout.Axis, index, constraint int) int {
		switch axis {
		case layout.Vertical:
			return rowHeight + sg.RowPadding
		case layout.Horizontal:
			return colWidths[index] + sg.ColumnPadding
		default:
			panic("unreachable")
		}
	}

	// outlay.Grid fills the Max constraint
	height := rows*(rowHeight+sg.RowPadding) - sg.RowPadding
	var width int
	for _, cw := range colWidths {
		width += cw + sg.ColumnPadding
	}
	gtx.Constraints.Max = gtx.Constraints.Constrain(image.Pt(width, height))
	wrapper := func(gtx layout.Context, row, col int) layout.Dimensions {
		ogtx := gtx
		gtx.Constraints.Min.X -= sg.ColumnPadding
		gtx.Constraints.Max.X -= sg.ColumnPadding
		dims := cell(gtx, row, col)
		dims.Size = ogtx.Constraints.Constrain(dims.Size)
		return dims
	}
	return sg.Grid.Layout(gtx, rows, cols, dimmer, wrapper)
}
