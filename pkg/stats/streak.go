package stats

// longestStreak returns the length of the longest run of consecutive
// strictly positive (positive=true) or strictly negative (positive=false)
// values. A zero matches neither sign and breaks the current run.
func longestStreak(values []float64, positive bool) int {
	best, current := 0, 0

	for _, v := range values {
		match := v > 0
		if !positive {
			match = v < 0
		}

		if match {
			current++
			if current > best {
				best = current
			}
		} else {
			current = 0
		}
	}

	return best
}
