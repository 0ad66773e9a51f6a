package driver

import "github.com/san-kum/slidetime/internal/slide"

// Row indices.
const (
	HourRow = iota
	TensRow
	OnesRow
	NumRows
)

// unset marks a snapshot field that has not been observed yet.
const unset = -1

// Snapshot is the last observed hour and minute.
type Snapshot struct {
	Hour   int
	Minute int
}

func emptySnapshot() Snapshot { return Snapshot{Hour: unset, Minute: unset} }

// RowStats is the state of one row after a frame.
type RowStats struct {
	State    slide.State
	Position int
	Text     string
}

// FrameStats describes one processed frame.
type FrameStats struct {
	Frame   int
	Hour    int
	Minute  int
	Changed bool
	Rows    [NumRows]RowStats
}

// Observer receives every frame the driver processes.
type Observer interface {
	OnFrame(f FrameStats)
}

// Action is what a row must do for a time change.
type Action int

const (
	Keep Action = iota
	Animate
	Swap
)

func (a Action) String() string {
	switch a {
	case Keep:
		return "keep"
	case Animate:
		return "animate"
	case Swap:
		return "swap"
	}
	return "unknown"
}
