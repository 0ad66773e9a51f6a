// Package textbuf provides fixed-capacity text storage that can be handed to a
// display surface by reference and rewritten without reallocating.
package textbuf

import (
	"errors"
	"fmt"
)

// Capacity is the size of every slot, including room for a terminator on
// surfaces that need one.
const Capacity = 32

// ErrOverflow is raised when text does not fit in a slot.
var ErrOverflow = errors.New("textbuf: text exceeds slot capacity")

// Slot is one fixed-size text buffer. A surface holding a *Slot reads the
// latest contents on every render.
type Slot struct {
	buf [Capacity]byte
	n   int
}

// Set replaces the slot contents. Text longer than Capacity-1 bytes is a
// programming error.
func (s *Slot) Set(text string) {
	if len(text) > Capacity-1 {
		panic(fmt.Errorf("%w: %q (%d bytes)", ErrOverflow, text, len(text)))
	}
	s.n = copy(s.buf[:], text)
	s.buf[s.n] = 0
}

func (s *Slot) String() string {
	if s == nil {
		return ""
	}
	return string(s.buf[:s.n])
}

func (s *Slot) Len() int { return s.n }

// Pair is a two-slot double buffer for one logical field.
type Pair struct {
	slots [2]Slot
	next  uint8
}

// Next returns the slot the following Write will fill.
func (p *Pair) Next() *Slot { return &p.slots[p.next] }

// Write stores text in the inactive slot, toggles, and returns the written
// slot. inUse is the slot the consumer currently displays; if the toggle would
// land on it (two writes without an intervening consumption) the other slot is
// reused instead, so displayed text is never overwritten and only the older
// pending value is lost.
func (p *Pair) Write(text string, inUse *Slot) *Slot {
	if inUse == &p.slots[p.next] {
		p.toggle()
	}
	s := &p.slots[p.next]
	s.Set(text)
	p.toggle()
	return s
}

// Owns reports whether s is one of the pair's slots.
func (p *Pair) Owns(s *Slot) bool {
	return s == &p.slots[0] || s == &p.slots[1]
}

func (p *Pair) toggle() { p.next ^= 1 }
