package face

import (
	"strings"

	"github.com/san-kum/slidetime/internal/textbuf"
)

// Label is a one-line terminal text surface. Text outside [0, width) is
// clipped, which is what lets a row slide off either edge.
type Label struct {
	text     *textbuf.Slot
	x        int
	width    int
	centered bool
}

func NewLabel(width int, centered bool) *Label {
	return &Label{width: width, centered: centered}
}

func (l *Label) SetText(t *textbuf.Slot) { l.text = t }
func (l *Label) Text() *textbuf.Slot     { return l.text }
func (l *Label) SetPosition(x int)       { l.x = x }
func (l *Label) Position() int           { return l.x }
func (l *Label) Width() int              { return l.width }

// Render returns exactly width columns.
func (l *Label) Render() string {
	line := make([]byte, l.width)
	for i := range line {
		line[i] = ' '
	}
	s := l.text.String()
	start := l.x
	if l.centered {
		start += (l.width - len(s)) / 2
	}
	for i := 0; i < len(s); i++ {
		col := start + i
		if col >= 0 && col < l.width {
			line[col] = s[i]
		}
	}
	return string(line)
}

// Trimmed is Render without trailing blanks.
func (l *Label) Trimmed() string {
	return strings.TrimRight(l.Render(), " ")
}
