package tilemap

import (
	"math"

	"github.com/milk9111/ninja/common"
)

// Blitter draws one tile at a screen-space pixel position.
type Blitter interface {
	DrawTile(t Tile, x, y float64)
}

// CellRange is an inclusive range of grid cells.
type CellRange struct {
	Min, Max GridPos
}

// VisibleCells returns the cells overlapped by a width x height view whose
// top-left world pixel is offset, partial edge cells included.
func (m *Tilemap) VisibleCells(offset common.Vec, width, height int) CellRange {
	ts := float64(m.TileSize)
	return CellRange{
		Min: GridPos{X: int(math.Floor(offset.X / ts)), Y: int(math.Floor(offset.Y / ts))},
		Max: GridPos{
			X: int(math.Floor((offset.X + float64(width)) / ts)),
			Y: int(math.Floor((offset.Y + float64(height)) / ts)),
		},
	}
}

// Render draws the free tiles, then the grid tiles inside the view. Cost is
// bounded by the view size, not the level size.
func (m *Tilemap) Render(dst Blitter, offset common.Vec, width, height int) {
	for _, t := range m.offgrid {
		dst.DrawTile(t, t.Pos.X-offset.X, t.Pos.Y-offset.Y)
	}

	view := m.VisibleCells(offset, width, height)
	ts := float64(m.TileSize)
	for x := view.Min.X; x <= view.Max.X; x++ {
		for y := view.Min.Y; y <= view.Max.Y; y++ {
			t, ok := m.grid[GridPos{X: x, Y: y}]
			if !ok {
				continue
			}
			dst.DrawTile(t, t.Pos.X*ts-offset.X, t.Pos.Y*ts-offset.Y)
		}
	}
}
