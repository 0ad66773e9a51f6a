package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/slidetime/internal/driver"
	"github.com/san-kum/slidetime/internal/face"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints every driver frame as plain text. It is used for
// previews outside the interactive face.
type LiveRenderer struct {
	out       io.Writer
	labels    [driver.NumRows]*face.Label
	lines     []int
	height    int
	frameRate int
	ansi      bool
	lastFrame time.Time
}

// NewLiveRenderer draws labels on the given screen lines. frameRate limits
// playback speed; zero renders as fast as frames arrive. ansi clears the screen
// between frames, otherwise frames are appended.
func NewLiveRenderer(out io.Writer, labels [driver.NumRows]*face.Label, lines [driver.NumRows]int, frameRate int, ansi bool) *LiveRenderer {
	height := 0
	for _, y := range lines {
		if y+1 > height {
			height = y + 1
		}
	}
	return &LiveRenderer{
		out:       out,
		labels:    labels,
		lines:     lines[:],
		height:    height,
		frameRate: frameRate,
		ansi:      ansi,
	}
}

func (r *LiveRenderer) OnFrame(f driver.FrameStats) {
	if r.frameRate > 0 {
		wait := time.Second/time.Duration(r.frameRate) - time.Since(r.lastFrame)
		if wait > 0 {
			time.Sleep(wait)
		}
		r.lastFrame = time.Now()
	}
	r.render(f)
}

func (r *LiveRenderer) render(f driver.FrameStats) {
	width := r.labels[0].Width()
	canvas := make([]string, r.height)
	for i := range canvas {
		canvas[i] = strings.Repeat(" ", width)
	}
	for i, l := range r.labels {
		canvas[r.lines[i]] = l.Render()
	}

	var b strings.Builder
	if r.ansi {
		b.WriteString(clearScreen)
	}
	b.WriteString(fmt.Sprintf("  %02d:%02d  frame=%d\n", f.Hour, f.Minute, f.Frame))
	b.WriteString("  +" + strings.Repeat("-", width) + "+\n")
	for _, line := range canvas {
		b.WriteString("  |" + line + "|\n")
	}
	b.WriteString("  +" + strings.Repeat("-", width) + "+\n")

	stateStr := "  "
	for i, row := range f.Rows {
		stateStr += fmt.Sprintf("r%d=%s@%d ", i, row.State, row.Position)
	}
	b.WriteString(stateStr + "\n")

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() {
	if r.ansi {
		fmt.Fprint(r.out, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.ansi {
		fmt.Fprint(r.out, showCursor)
	}
}
