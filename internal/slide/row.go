// Package slide implements a text row that slides its old value out to the
// left and the new value in from the right.
package slide

import (
	"github.com/san-kum/slidetime/internal/textbuf"
)

// Surface is the display element a row drives.
type Surface interface {
	SetText(text *textbuf.Slot)
	// Text returns the slot currently shown, or nil if nothing was ever set.
	Text() *textbuf.Slot
	SetPosition(x int)
}

// Geometry is the on-screen frame of a row.
type Geometry struct {
	X     int
	Width int
}

// Row is one animated line of the face.
type Row struct {
	surface Surface
	phase   phase
	pos     int

	rest  int
	entry int
	exit  int

	delay int
}

// NewRow derives the rest, entry and exit columns from g once; they are not
// recomputed afterwards. delay is the number of extra frames the row holds
// before sliding out.
func NewRow(surface Surface, g Geometry, delay int) *Row {
	if delay < 0 {
		delay = 0
	}
	r := &Row{
		surface: surface,
		phase:   inFrame{},
		pos:     g.X,
		rest:    g.X,
		entry:   g.Width,
		exit:    -g.Width,
		delay:   delay,
	}
	surface.SetPosition(r.pos)
	return r
}

// Begin starts a transition to text. A row that never showed anything takes
// the text immediately and slides in; otherwise the text waits as pending
// until the current value has slid out. A newer call replaces any pending
// value.
func (r *Row) Begin(text *textbuf.Slot) {
	if r.surface.Text() == nil {
		r.surface.SetText(text)
		r.pos = r.entry
		r.surface.SetPosition(r.pos)
		r.phase = movingIn{}
		return
	}
	r.phase = &prepareToMove{pending: text}
}

// Replace swaps the displayed text in place without animating.
func (r *Row) Replace(text *textbuf.Slot) {
	r.surface.SetText(text)
}

// Advance applies one frame and reports whether the row moved or is still
// animating.
func (r *Row) Advance() bool {
	switch p := r.phase.(type) {
	case inFrame:
		return false

	case *prepareToMove:
		r.pos = r.rest
		p.waited++
		if p.waited > r.delay {
			r.phase = &movingOut{pending: p.pending}
		}

	case movingIn:
		r.pos -= r.speed()
		if r.pos <= r.rest {
			r.pos = r.rest
			r.phase = inFrame{}
		}

	case *movingOut:
		r.pos -= r.speed()
		if r.pos <= r.exit {
			r.pos = r.entry
			r.surface.SetText(p.pending)
			r.phase = movingIn{}
		}
	}
	r.surface.SetPosition(r.pos)
	return true
}

// speed eases toward the rest column; it never drops below one column per
// frame so every slide terminates.
func (r *Row) speed() int {
	return abs(r.pos-r.rest)/3 + 1
}

func (r *Row) State() State { return r.phase.state() }

func (r *Row) Position() int { return r.pos }

// Pending returns the text waiting to be shown, or nil.
func (r *Row) Pending() *textbuf.Slot {
	switch p := r.phase.(type) {
	case *prepareToMove:
		return p.pending
	case *movingOut:
		return p.pending
	}
	return nil
}

// Displayed returns the slot the surface currently shows.
func (r *Row) Displayed() *textbuf.Slot { return r.surface.Text() }

// Rest, Entry and Exit expose the row geometry.
func (r *Row) Rest() int  { return r.rest }
func (r *Row) Entry() int { return r.entry }
func (r *Row) Exit() int  { return r.exit }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
