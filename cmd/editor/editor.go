package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/ninja/assets"
	"github.com/milk9111/ninja/common"
	"github.com/milk9111/ninja/editor"
	"github.com/milk9111/ninja/logger"
	"github.com/milk9111/ninja/render"
	"github.com/milk9111/ninja/tilemap"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  = 320
	screenHeight = 240
	scrollSpeed  = 2
)

// Editor is the ebiten front end over an editor.Session.
type Editor struct {
	session *editor.Session
	atlas   *render.Atlas
	display *ebiten.Image

	clipboardOK bool
	status      string
	statusTTL   int
}

func NewEditor(files *assets.Files, manifest *assets.Manifest, m *tilemap.Tilemap, path string) *Editor {
	ed := &Editor{
		session: editor.NewSession(m, manifest, path),
		atlas:   render.NewAtlas(files, manifest),
		display: ebiten.NewImage(screenWidth, screenHeight),
	}
	if err := clipboard.Init(); err != nil {
		logger.Log.WithError(err).Warn("clipboard unavailable")
	} else {
		ed.clipboardOK = true
	}
	return ed
}

// cursor is the mouse position in world pixels.
func (e *Editor) cursor() common.Vec {
	x, y := ebiten.CursorPosition()
	return common.Vec{X: float64(x), Y: float64(y)}.Add(e.session.Scroll)
}

func (e *Editor) Update() error {
	s := e.session

	var move common.Vec
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		move.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		move.Y++
	}
	s.Scroll = s.Scroll.Add(move.Mult(scrollSpeed))

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	if _, wy := ebiten.Wheel(); wy != 0 {
		step := -int(math.Copysign(1, wy))
		if shift {
			s.CycleVariant(step)
		} else {
			s.CycleGroup(step)
		}
	}

	pos := e.cursor()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		// Free tiles go down once per click, grid tiles paint while dragging.
		if s.OnGrid || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			s.Place(pos)
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		s.Erase(pos)
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		s.OnGrid = !s.OnGrid
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		s.Autotile()
		e.flash("autotiled")
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		e.save()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ):
		if s.Undo() {
			e.flash("undo")
		}
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		e.copyDocument()
	}

	if e.statusTTL > 0 {
		e.statusTTL--
	}
	return nil
}

func (e *Editor) save() {
	if err := e.session.Save(); err != nil {
		logger.Log.WithError(err).Error("save failed")
		e.flash("save failed")
		return
	}
	logger.Log.WithField("path", e.session.Path).Info("map saved")
	e.flash("saved")
}

func (e *Editor) copyDocument() {
	if !e.clipboardOK {
		e.flash("no clipboard")
		return
	}
	doc, err := e.session.Encode()
	if err != nil {
		logger.Log.WithError(err).Error("encode failed")
		return
	}
	clipboard.Write(clipboard.FmtText, doc)
	e.flash("copied map")
}

func (e *Editor) flash(msg string) {
	e.status = msg
	e.statusTTL = 90
}

func (e *Editor) Draw(screen *ebiten.Image) {
	s := e.session
	e.display.Fill(color.Black)

	offset := common.Vec{X: math.Floor(s.Scroll.X), Y: math.Floor(s.Scroll.Y)}
	s.Map.Render(render.NewTileBlitter(e.display, e.atlas), offset, screenWidth, screenHeight)

	if s.OnGrid {
		e.drawGrid(offset)
	}

	brush := s.Brush()
	if brush.Type != "" {
		img := e.atlas.Tile(brush.Type, brush.Variant)
		pos := e.cursor()
		if s.OnGrid {
			cell := s.Map.Cell(pos)
			ts := float64(s.Map.TileSize)
			pos = common.Vec{X: float64(cell.X) * ts, Y: float64(cell.Y) * ts}
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X-offset.X, pos.Y-offset.Y)
		op.ColorScale.ScaleAlpha(100.0 / 255)
		e.display.DrawImage(img, op)

		// Brush preview in the corner.
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(5, 5)
		e.display.DrawImage(img, op)
	}

	mode := "grid"
	if !s.OnGrid {
		mode = "free"
	}
	msg := fmt.Sprintf("\n\n\n%s %d [%s] undo:%d", brush.Type, brush.Variant, mode, s.UndoDepth())
	if e.statusTTL > 0 {
		msg += "\n" + e.status
	}
	ebitenutil.DebugPrint(e.display, msg)

	screen.DrawImage(e.display, nil)
}

func (e *Editor) drawGrid(offset common.Vec) {
	cells := e.session.Map.VisibleCells(offset, screenWidth, screenHeight)
	ts := float32(e.session.Map.TileSize)
	ox, oy := float32(offset.X), float32(offset.Y)
	for x := cells.Min.X; x <= cells.Max.X+1; x++ {
		fx := float32(x)*ts - ox
		vector.StrokeLine(e.display, fx, 0, fx, screenHeight, 1, colornames.Darkslategray, false)
	}
	for y := cells.Min.Y; y <= cells.Max.Y+1; y++ {
		fy := float32(y)*ts - oy
		vector.StrokeLine(e.display, 0, fy, screenWidth, fy, 1, colornames.Darkslategray, false)
	}
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
