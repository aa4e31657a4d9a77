package chart

import (
	"time"
)

// Nearest returns the point closest in time to t. Ties go to the earliest
// index; an empty slice yields ok == false.
func Nearest[P TimedPoint](points []P, t time.Time) (P, bool) {
	var best P
	if len(points) == 0 {
		return best, false
	}

	bestIdx := 0
	bestD := absDuration(points[0].At().Sub(t))
	for i := 1; i < len(points); i++ {
		d := absDuration(points[i].At().Sub(t))
		if d < bestD {
			bestD = d
			bestIdx = i
		}
	}
	return points[bestIdx], true
}

// SameDay returns the points that fall on the calendar day of t, in input order.
func SameDay[P TimedPoint](points []P, t time.Time) []P {
	y, m, d := t.Date()
	var out []P
	for _, p := range points {
		py, pm, pd := p.At().Date()
		if py == y && pm == m && pd == d {
			out = append(out, p)
		}
	}
	return out
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
