// Package driver runs the per-frame loop of the clock face: it samples the
// clock, feeds new words to the rows and advances their animations until every
// row is at rest.
package driver

import (
	"io"
	"log"

	"github.com/san-kum/slidetime/internal/clock"
	"github.com/san-kum/slidetime/internal/slide"
	"github.com/san-kum/slidetime/internal/textbuf"
	"github.com/san-kum/slidetime/internal/words"
)

// Driver owns the three rows and their text buffers. It is not safe for
// concurrent use; the host calls it from a single loop.
type Driver struct {
	clock  clock.Clock
	rows   [NumRows]*slide.Row
	bufs   [NumRows]textbuf.Pair
	last   Snapshot
	active bool
	frame  int

	observers []Observer
	logger    *log.Logger
}

// Option configures a Driver.
type Option func(*Driver)

func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

func WithObserver(o Observer) Option {
	return func(d *Driver) { d.observers = append(d.observers, o) }
}

// New creates an active driver over rows (hour, tens, ones).
func New(c clock.Clock, rows [NumRows]*slide.Row, opts ...Option) *Driver {
	d := &Driver{
		clock:  c,
		rows:   rows,
		last:   emptySnapshot(),
		active: true,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// Restart schedules frames again. The host calls it on every minute tick.
func (d *Driver) Restart() {
	if !d.active {
		d.logger.Printf("driver: restart at frame %d", d.frame)
	}
	d.active = true
}

func (d *Driver) Active() bool { return d.active }

func (d *Driver) Last() Snapshot { return d.last }

func (d *Driver) Row(i int) *slide.Row { return d.rows[i] }

// Frame processes one display frame and reports whether more frames are
// needed. An inactive driver does nothing.
func (d *Driver) Frame() bool {
	if !d.active {
		return false
	}

	now := d.clock.Now()
	cur := Snapshot{Hour: now.Hour(), Minute: now.Minute()}
	prev := d.last
	changed := false

	if cur.Minute != prev.Minute {
		changed = true
		tens, ones := words.MinuteWords(cur.Minute)
		d.apply(TensRow, TensAction(prev, cur), tens)
		d.apply(OnesRow, OnesAction(prev, cur), ones)
		d.last.Minute = cur.Minute
	}

	if cur.Hour != prev.Hour {
		d.apply(HourRow, HourAction(prev, cur), words.HourWord(cur.Hour))
		d.last.Hour = cur.Hour
	}

	for _, r := range d.rows {
		changed = r.Advance() || changed
	}

	d.frame++
	d.notify(changed)

	if !changed {
		d.active = false
		d.logger.Printf("driver: idle after frame %d at %02d:%02d", d.frame, cur.Hour, cur.Minute)
	}
	return changed
}

// apply writes text into the row's inactive buffer and hands it to the row.
func (d *Driver) apply(i int, a Action, text string) {
	r := d.rows[i]
	switch a {
	case Keep:
		return
	case Animate:
		r.Begin(d.bufs[i].Write(text, r.Displayed()))
	case Swap:
		r.Replace(d.bufs[i].Write(text, r.Displayed()))
	}
}

func (d *Driver) notify(changed bool) {
	if len(d.observers) == 0 {
		return
	}
	f := FrameStats{
		Frame:   d.frame,
		Hour:    d.last.Hour,
		Minute:  d.last.Minute,
		Changed: changed,
	}
	for i, r := range d.rows {
		f.Rows[i] = RowStats{
			State:    r.State(),
			Position: r.Position(),
			Text:     r.Displayed().String(),
		}
	}
	for _, o := range d.observers {
		o.OnFrame(f)
	}
}

// Settle runs frames until the driver goes idle or limit frames have passed,
// returning the number of frames run.
func (d *Driver) Settle(limit int) int {
	n := 0
	for n < limit && d.Frame() {
		n++
	}
	return n
}
