package words

import (
	"strings"
	"testing"
	"time"

	"github.com/san-kum/slidetime/internal/textbuf"
)

func TestHourWord(t *testing.T) {
	valid := make(map[string]bool)
	for _, w := range hourWords {
		valid[w] = true
	}

	for h := 0; h < 24; h++ {
		w := HourWord(h)
		if w == "" {
			t.Errorf("hour %d: empty word", h)
		}
		if !valid[w] {
			t.Errorf("hour %d: unexpected word %q", h, w)
		}
	}

	if HourWord(0) != HourWord(12) {
		t.Errorf("expected midnight and noon to match, got %q and %q", HourWord(0), HourWord(12))
	}
	if HourWord(0) != "twelve" {
		t.Errorf("expected twelve, got %q", HourWord(0))
	}
	if HourWord(21) != "nine" {
		t.Errorf("expected nine, got %q", HourWord(21))
	}
}

func TestMinuteWords(t *testing.T) {
	tests := []struct {
		minute int
		tens   string
		ones   string
	}{
		{0, "", "o'clock"},
		{5, "oh", "five"},
		{10, "", "ten"},
		{11, "", "eleven"},
		{15, "", "fifteen"},
		{19, "", "nineteen"},
		{20, "twenty", ""},
		{21, "twenty", "one"},
		{32, "thirty", "two"},
		{40, "forty", ""},
		{59, "fifty", "nine"},
	}

	for _, tt := range tests {
		tens, ones := MinuteWords(tt.minute)
		if tens != tt.tens || ones != tt.ones {
			t.Errorf("minute %d: expected (%q, %q), got (%q, %q)", tt.minute, tt.tens, tt.ones, tens, ones)
		}
	}
}

func TestMinuteWordsComplete(t *testing.T) {
	seen := make(map[string]int)
	for m := 0; m < 60; m++ {
		tens, ones := MinuteWords(m)
		phrase := strings.TrimSpace(tens + " " + ones)
		if phrase == "" {
			t.Errorf("minute %d: empty phrase", m)
		}
		if tens != "" && tens == ones {
			t.Errorf("minute %d: duplicated word %q", m, tens)
		}
		if prev, ok := seen[phrase]; ok {
			t.Errorf("minute %d: phrase %q already used by minute %d", m, phrase, prev)
		}
		seen[phrase] = m
	}
}

func TestWordsFitCapacity(t *testing.T) {
	limit := textbuf.Capacity - 1
	for h := 0; h < 24; h++ {
		if len(HourWord(h)) > limit {
			t.Errorf("hour %d: %q exceeds %d bytes", h, HourWord(h), limit)
		}
	}
	for m := 0; m < 60; m++ {
		tens, ones := MinuteWords(m)
		if len(tens) > limit || len(ones) > limit {
			t.Errorf("minute %d: (%q, %q) exceeds %d bytes", m, tens, ones, limit)
		}
	}
	long := time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)
	if len(DateLine(long)) > limit {
		t.Errorf("date line %q exceeds %d bytes", DateLine(long), limit)
	}
}

func TestOutOfRangeWraps(t *testing.T) {
	if HourWord(-1) != "eleven" {
		t.Errorf("expected eleven, got %q", HourWord(-1))
	}
	tens, ones := MinuteWords(61)
	if tens != "oh" || ones != "one" {
		t.Errorf("expected (oh, one), got (%q, %q)", tens, ones)
	}
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "st", 2: "nd", 3: "rd", 4: "th", 11: "th", 12: "th", 13: "th",
		21: "st", 22: "nd", 23: "rd", 24: "th", 30: "th", 31: "st",
	}
	for day, want := range tests {
		if got := Ordinal(day); got != want {
			t.Errorf("day %d: expected %s, got %s", day, want, got)
		}
	}
}

func TestDateLine(t *testing.T) {
	d := time.Date(2026, time.October, 18, 9, 5, 0, 0, time.UTC)
	if got := DateLine(d); got != "Sunday the 18th" {
		t.Errorf("expected 'Sunday the 18th', got %q", got)
	}
	d = time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	if got := DateLine(d); got != "Thursday the 1st" {
		t.Errorf("expected 'Thursday the 1st', got %q", got)
	}
}

func TestStepsLine(t *testing.T) {
	if got := StepsLine(1, LayoutRect); got != "1 step" {
		t.Errorf("expected '1 step', got %q", got)
	}
	if got := StepsLine(4200, LayoutRect); got != "4200 steps" {
		t.Errorf("expected '4200 steps', got %q", got)
	}
	if got := StepsLine(4200, LayoutRound); got != "4200" {
		t.Errorf("expected '4200', got %q", got)
	}
}
