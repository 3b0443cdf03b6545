package stats

import "time"

const secondsPerDay = 24 * 60 * 60

// resampleDaily groups the series by calendar day and returns one bar per
// day from the earliest to the latest date, in chronological order.
// Entries on the same day are summed; days without entries yield a zero
// bar. The input does not have to be sorted.
func resampleDaily(times []time.Time, pnl []float64) []float64 {
	if len(times) == 0 {
		return nil
	}

	sums := make(map[int64]float64, len(times))

	var first, last int64

	for i, ts := range times {
		day := calendarDay(ts)
		if i == 0 || day < first {
			first = day
		}

		if i == 0 || day > last {
			last = day
		}

		sums[day] += pnl[i]
	}

	daily := make([]float64, 0, (last-first)/secondsPerDay+1)
	for day := first; day <= last; day += secondsPerDay {
		daily = append(daily, sums[day])
	}

	return daily
}

// calendarDay maps a timestamp to its wall-clock date, normalized to UTC
// midnight so day arithmetic is immune to DST transitions.
func calendarDay(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix()
}
