// Package window runs the game in a desktop window.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/cell"
	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/render"
)

const title = "Game of Life"

// Frontend implements the ebiten.Game interface on top of a driver.
// Enter advances one generation; Escape or closing the window quits.
type Frontend struct {
	driver    *game.Driver
	palette   render.Palette
	cellSize  int
	showStats bool
}

func New(palette render.Palette, cellSize int) *Frontend {
	return &Frontend{palette: palette, cellSize: cellSize}
}

func (f *Frontend) pendingEvent() (game.Event, bool) {
	switch {
	case ebiten.IsWindowBeingClosed(), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return game.Quit, true
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		return game.AdvanceGeneration, true
	default:
		return 0, false
	}
}

// Update is called every tick on the game goroutine.
func (f *Frontend) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		f.showStats = !f.showStats
	}

	ev, ok := f.pendingEvent()
	if !ok {
		return nil
	}
	quit, err := f.driver.Handle(ev)
	if err != nil {
		return errors.Wrap(err, "[window.Update]")
	}
	if quit {
		return ebiten.Termination
	}
	return nil
}

// Draw fills the background and draws one rectangle per cell.
func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(f.palette.Background)

	f.driver.Grid().Each(func(row, column int, s cell.State) {
		r := render.CellRect(row, column, f.cellSize)
		vector.DrawFilledRect(screen,
			float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()),
			f.palette.ColorFor(s), false)
	})

	if f.showStats {
		stats := f.driver.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Gen: %d\nLiving: %d\nFading: %d\n%s\n%.0f gen/sec",
			f.driver.Generation(), stats.ActiveCells, stats.FadingCells, f.driver.Status(), stats.GenerationsPerSecond))
	}
}

// Layout keeps the logical screen at the board's pixel size.
func (f *Frontend) Layout(_, _ int) (screenWidth, screenHeight int) {
	grid := f.driver.Grid()
	return render.ScreenSize(grid.Rows(), grid.Columns(), f.cellSize)
}

// Run opens the window and blocks until the player quits
func (f *Frontend) Run(d *game.Driver) error {
	f.driver = d

	width, height := render.ScreenSize(d.Grid().Rows(), d.Grid().Columns(), f.cellSize)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(f); err != nil {
		return errors.Wrap(err, "[window.Run]")
	}
	return nil
}
