package model

const (
	// QuarterTime is the tick length of a quarter note.
	QuarterTime = 960

	DefaultTempo = 120
)

// ValueToTicks returns the tick length of a note value (1 = whole, 4 = quarter, ...).
func ValueToTicks(value int) int {
	if value <= 0 {
		return QuarterTime * 4
	}
	return QuarterTime * 4 / value
}

// applyDots extends ticks by half of itself for every dot.
func applyDots(ticks, dots int) int {
	add := ticks
	for i := 0; i < dots; i++ {
		add /= 2
		ticks += add
	}
	return ticks
}

func applyTuplet(ticks, numerator, denominator int) int {
	if numerator <= 0 || denominator <= 0 {
		return ticks
	}
	return ticks * denominator / numerator
}
