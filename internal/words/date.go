package words

import (
	"fmt"
	"time"
)

// Layout selects the text variant for the small labels under the rows.
type Layout string

const (
	LayoutRect  Layout = "rect"
	LayoutRound Layout = "round"
)

// Ordinal returns the English ordinal suffix for a day of the month.
func Ordinal(day int) string {
	switch day {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	default:
		return "th"
	}
}

// DateLine renders "Sunday the 18th".
func DateLine(t time.Time) string {
	return fmt.Sprintf("%s the %d%s", t.Weekday(), t.Day(), Ordinal(t.Day()))
}

// StepsLine renders the step count. The round layout has room for the number
// only.
func StepsLine(steps int, layout Layout) string {
	if layout == LayoutRound {
		return fmt.Sprintf("%d", steps)
	}
	if steps == 1 {
		return "1 step"
	}
	return fmt.Sprintf("%d steps", steps)
}
