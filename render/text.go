package render

import (
	"bufio"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/cell"
	"github.com/sheikhrachel/go-life/model"
)

const (
	gridPosAlive  = "██"
	gridPosFading = "░░"
	gridPosDead   = "  "

	clearCmd = "clear"
)

// Glyph returns the two column text drawn for a cell in state s
func Glyph(s cell.State) string {
	switch s {
	case cell.Alive:
		return gridPosAlive
	case cell.AboutToDie:
		return gridPosFading
	default:
		return gridPosDead
	}
}

// TextRenderer draws grids as lines of block characters
type TextRenderer struct {
	Out io.Writer
}

// Display renders the grid, one line per row
func (r *TextRenderer) Display(g *model.Grid) error {
	w := bufio.NewWriter(r.Out)
	for row := 0; row < g.Rows(); row++ {
		for column := 0; column < g.Columns(); column++ {
			s, err := g.StateAt(row, column)
			if err != nil {
				return errors.Wrap(err, "[TextRenderer.Display]")
			}
			w.WriteString(Glyph(s))
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[TextRenderer.Display] flush")
}

// Clear clears the terminal screen when writing to stdout
func (r *TextRenderer) Clear() error {
	if r.Out != os.Stdout {
		return nil
	}
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[TextRenderer.Clear] error clearing terminal")
	}
	return nil
}
