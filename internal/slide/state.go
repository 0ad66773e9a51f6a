package slide

import "github.com/san-kum/slidetime/internal/textbuf"

// State names the phase a row is in.
type State int

const (
	MovingIn State = iota
	InFrame
	PrepareToMove
	MovingOut
)

func (s State) String() string {
	switch s {
	case MovingIn:
		return "moving_in"
	case InFrame:
		return "in_frame"
	case PrepareToMove:
		return "prepare_to_move"
	case MovingOut:
		return "moving_out"
	}
	return "unknown"
}

// phase is the tagged variant held by a row. Only the variants that need a
// pending text carry one.
type phase interface {
	state() State
}

type movingIn struct{}

type inFrame struct{}

type prepareToMove struct {
	pending *textbuf.Slot
	waited  int
}

type movingOut struct {
	pending *textbuf.Slot
}

func (movingIn) state() State       { return MovingIn }
func (inFrame) state() State        { return InFrame }
func (*prepareToMove) state() State { return PrepareToMove }
func (*movingOut) state() State     { return MovingOut }
