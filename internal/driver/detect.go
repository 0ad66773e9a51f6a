package driver

// TensAction decides how the minute-tens row reacts when the minute changes
// from prev to cur. Above twenty the tens row shows a bare tens word, so as
// long as the hour and the tens digit stay the same the visible word is
// unchanged and the row only needs its buffer swapped.
func TensAction(prev, cur Snapshot) Action {
	if prev.Minute == cur.Minute {
		return Keep
	}
	if prev.Hour != cur.Hour || cur.Minute <= 20 || cur.Minute/10 != prev.Minute/10 {
		return Animate
	}
	return Swap
}

// OnesAction is Animate on every minute change.
func OnesAction(prev, cur Snapshot) Action {
	if prev.Minute == cur.Minute {
		return Keep
	}
	return Animate
}

// HourAction is Animate whenever the hour changes.
func HourAction(prev, cur Snapshot) Action {
	if prev.Hour == cur.Hour {
		return Keep
	}
	return Animate
}
