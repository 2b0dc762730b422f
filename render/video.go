package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/abenik/maze-sim/maze"
	"github.com/abenik/maze-sim/service"
)

// ErrEncoderUnavailable signals that the optional video toolchain is missing.
// Callers should treat it as skippable: the core result is unaffected.
var ErrEncoderUnavailable = errors.New("ffmpeg not found in PATH, video export unavailable")

type rgb struct{ r, g, b byte }

// videoPalette maps frame glyphs to pixel colors. Renders reuse `E` and `S`
// for the east and south headings, so those frames pick up the entry and exit
// colors; only the unambiguous headings get the agent color.
var videoPalette = map[byte]rgb{
	byte(maze.Wall):  {40, 40, 40},
	byte(maze.Open):  {230, 230, 230},
	byte(maze.Food):  {0, 200, 0},
	byte(maze.Entry): {255, 120, 0},
	byte(maze.Exit):  {220, 0, 0},
	byte(maze.North): {0, 200, 255},
	byte(maze.West):  {0, 200, 255},
}

var fallbackColor = rgb{200, 200, 200}

// SaveFramesText dumps every frame to one text file, separated by numbered
// headers, so runs can be inspected without any viewer.
func SaveFramesText(result *service.Result, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var b strings.Builder
	for index, frame := range result.Frames {
		fmt.Fprintf(&b, "=== Frame %d/%d ===\n%s\n\n", index+1, len(result.Frames), frame)
	}
	b.WriteString(result.Summary())
	b.WriteByte('\n')

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// CreateVideo encodes the run's frames into an MP4 by rendering each frame
// as a PPM image and piping the sequence to ffmpeg. A missing ffmpeg binary
// is reported as ErrEncoderUnavailable.
func CreateVideo(result *service.Result, path string, fps, scale int) error {
	ffmpeg, err := exec.LookPath("ffmpeg")
	if err != nil {
		return ErrEncoderUnavailable
	}
	if len(result.Frames) == 0 {
		return errors.New("simulation produced no frames")
	}
	if fps <= 0 {
		fps = 3
	}
	if scale <= 0 {
		scale = 20
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var stream bytes.Buffer
	for _, frame := range result.Frames {
		if err := writePPM(&stream, frame, scale); err != nil {
			return err
		}
	}

	cmd := exec.Command(ffmpeg,
		"-y",
		"-f", "image2pipe",
		"-vcodec", "ppm",
		"-r", fmt.Sprint(fps),
		"-i", "-",
		"-pix_fmt", "yuv420p",
		path,
	)
	cmd.Stdin = &stream

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w: %s", err, bytes.TrimSpace(out))
	}
	return nil
}

// writePPM renders one ASCII frame as a binary PPM image, each glyph painted
// as a scale×scale block.
func writePPM(buf *bytes.Buffer, frame string, scale int) error {
	rows := strings.Split(frame, "\n")
	if len(rows) == 0 || rows[0] == "" {
		return errors.New("empty frame")
	}

	width := len(rows[0]) * scale
	height := len(rows) * scale
	fmt.Fprintf(buf, "P6\n%d %d\n255\n", width, height)

	for _, row := range rows {
		for y := 0; y < scale; y++ {
			for i := 0; i < len(row); i++ {
				color, ok := videoPalette[row[i]]
				if !ok {
					color = fallbackColor
				}
				for x := 0; x < scale; x++ {
					buf.WriteByte(color.r)
					buf.WriteByte(color.g)
					buf.WriteByte(color.b)
				}
			}
		}
	}
	return nil
}
