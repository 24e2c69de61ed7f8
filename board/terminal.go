package board

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sheikhrachel/go-life/cell"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// clearCmd is the command run by Clear
var clearCmd = "clear"

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the grid to the terminal, one glyph pair per cell
func (r *TerminalRenderer) Display(src Source) {
	w := r.out()
	for row := range src.Height() {
		for col := range src.Width() {
			if state, _ := src.At(row, col); state == cell.Live {
				fmt.Fprint(w, gridPosBlock)
			} else {
				fmt.Fprint(w, gridPosEmpty)
			}
		}
		fmt.Fprintln(w)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
