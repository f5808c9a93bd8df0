// Package console runs the game over plain line-oriented input and output.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/render"
)

const prompt = "[enter] next generation, [q] quit > "

// Frontend reads one command per line from In and draws to Out
type Frontend struct {
	In       io.Reader
	Out      io.Writer
	renderer *render.TextRenderer
}

func New(in io.Reader, out io.Writer) *Frontend {
	return &Frontend{
		In:       in,
		Out:      out,
		renderer: &render.TextRenderer{Out: out},
	}
}

// eventForLine maps a line of input to a driver event
func eventForLine(line string) (game.Event, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "n", "next":
		return game.AdvanceGeneration, true
	case "q", "quit", "exit":
		return game.Quit, true
	default:
		return 0, false
	}
}

// Run draws the current generation and waits for the next command until quit or end of input
func (f *Frontend) Run(d *game.Driver) error {
	scanner := bufio.NewScanner(f.In)
	for {
		if err := f.draw(d); err != nil {
			return err
		}

		if !scanner.Scan() {
			return errors.Wrap(scanner.Err(), "[console.Run] reading input")
		}

		ev, ok := eventForLine(scanner.Text())
		if !ok {
			fmt.Fprintf(f.Out, "unknown command %q\n", scanner.Text())
			continue
		}
		quit, err := d.Handle(ev)
		if err != nil {
			return errors.Wrap(err, "[console.Run]")
		}
		if quit {
			return nil
		}
	}
}

func (f *Frontend) draw(d *game.Driver) error {
	if err := f.renderer.Clear(); err != nil {
		fmt.Fprintln(f.Out, err)
	}
	if err := f.renderer.Display(d.Grid()); err != nil {
		return err
	}

	stats := d.Stats()
	fmt.Fprintf(f.Out, "Gen: %d | Living: %d | Fading: %d | Status: %s\n",
		d.Generation(), stats.ActiveCells, stats.FadingCells, d.Status())
	fmt.Fprint(f.Out, prompt)
	return nil
}
