/*
Package render turns simulation results into viewable artifacts: terminal
playback, a standalone HTML animation, a frames dump, and an ffmpeg-backed
video export. Renderers consume only the service.Result; no agent internals
reach this package.
*/
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/abenik/maze-sim/maze"
	"github.com/abenik/maze-sim/service"
)

// ErrNegativeDelay rejects playback with a negative per-frame delay.
var ErrNegativeDelay = errors.New("playback delay must be non-negative")

const clearScreen = "\033[2J\033[H"

// Terminal plays result frames on a writer with ANSI colors.
type Terminal struct {
	out io.Writer
}

// NewTerminal returns a terminal renderer writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Play animates every frame with the given delay, then prints the summary.
func (t *Terminal) Play(result *service.Result, delay time.Duration) error {
	if delay < 0 {
		return ErrNegativeDelay
	}

	for index, frame := range result.Frames {
		fmt.Fprint(t.out, clearScreen)
		fmt.Fprintf(t.out, "Strategy: %s [%s]\n", result.StrategyLabel, result.StrategyID)
		fmt.Fprintf(t.out, "Frame %d/%d\n", index+1, len(result.Frames))
		fmt.Fprintln(t.out, strings.Repeat("=", 50))
		fmt.Fprintln(t.out, Colorize(frame))
		fmt.Fprintln(t.out, strings.Repeat("=", 50))
		fmt.Fprintln(t.out, "Legend:")
		fmt.Fprintln(t.out, "X = wall      _ = open        o = food")
		fmt.Fprintln(t.out, "E = entry     S = exit        N/S/E/W = agent heading")
		time.Sleep(delay)
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, result.Summary())
	return nil
}

// Colorize paints the unambiguous glyphs of a frame: walls and food. Entry,
// exit, and heading glyphs stay plain because `E` and `S` are shared between
// tiles and headings.
func Colorize(frame string) string {
	var b strings.Builder
	for i := 0; i < len(frame); i++ {
		switch maze.Tile(frame[i]) {
		case maze.Wall:
			b.WriteString(aurora.Red(string(frame[i])).String())
		case maze.Food:
			b.WriteString(aurora.Yellow(string(frame[i])).String())
		default:
			b.WriteByte(frame[i])
		}
	}
	return b.String()
}
