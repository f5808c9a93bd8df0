// Package terminal runs the game full screen in a terminal.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/cell"
	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/render"
)

// Frontend draws each cell as two terminal columns colored by state
type Frontend struct {
	screen  tcell.Screen
	palette render.Palette
}

// New wraps an already initialized screen. The caller keeps ownership and must call Fini.
func New(screen tcell.Screen, palette render.Palette) *Frontend {
	return &Frontend{screen: screen, palette: palette}
}

func toColor(p render.Palette, s cell.State) tcell.Color {
	c := p.ColorFor(s)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// eventForKey maps a key press to a driver event
func eventForKey(ev *tcell.EventKey) (game.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return game.AdvanceGeneration, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'n':
			return game.AdvanceGeneration, true
		case 'q', 'Q':
			return game.Quit, true
		}
	}
	return 0, false
}

// Run draws the board and handles keys until a quit key is pressed
func (f *Frontend) Run(d *game.Driver) error {
	f.draw(d)
	for {
		switch ev := f.screen.PollEvent().(type) {
		case nil:
			// screen was finalized elsewhere
			return nil
		case *tcell.EventResize:
			f.screen.Sync()
			f.draw(d)
		case *tcell.EventKey:
			gev, ok := eventForKey(ev)
			if !ok {
				continue
			}
			quit, err := d.Handle(gev)
			if err != nil {
				return errors.Wrap(err, "[terminal.Run]")
			}
			if quit {
				return nil
			}
			f.draw(d)
		}
	}
}

func (f *Frontend) draw(d *game.Driver) {
	f.screen.Clear()
	background := tcell.StyleDefault.Background(toColor(f.palette, cell.Dead))

	d.Grid().Each(func(row, column int, s cell.State) {
		style := background.Background(toColor(f.palette, s))
		f.screen.SetContent(column*2, row, ' ', nil, style)
		f.screen.SetContent(column*2+1, row, ' ', nil, style)
	})

	stats := d.Stats()
	status := fmt.Sprintf("Gen: %d | Living: %d | Fading: %d | %s | enter: next, q: quit",
		d.Generation(), stats.ActiveCells, stats.FadingCells, d.Status())
	for i, r := range []rune(status) {
		f.screen.SetContent(i, d.Grid().Rows(), r, nil, tcell.StyleDefault)
	}
	f.screen.Show()
}
