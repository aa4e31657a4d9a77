// Package scale maps domain values to plot coordinates and back.
package scale

import (
	"math"
	"time"
)

// Band splits [0, Length) into equal bands, one per category.
type Band struct {
	Categories []string
	Length     float64
}

func NewBand(categories []string, length float64) Band {
	return Band{Categories: categories, Length: length}
}

func (b Band) Bandwidth() float64 {
	if len(b.Categories) == 0 {
		return 0
	}
	return b.Length / float64(len(b.Categories))
}

// Position returns the band center of category.
func (b Band) Position(category string) (float64, bool) {
	for i, c := range b.Categories {
		if c == category {
			return (float64(i) + 0.5) * b.Bandwidth(), true
		}
	}
	return 0, false
}

// Invert returns the category whose band contains v.
func (b Band) Invert(v float64) (string, bool) {
	if len(b.Categories) == 0 || math.IsNaN(v) || v < 0 || v >= b.Length {
		return "", false
	}
	i := int(v / b.Bandwidth())
	if i >= len(b.Categories) {
		i = len(b.Categories) - 1
	}
	return b.Categories[i], true
}

// Time maps [Min, Max] linearly onto [0, Length].
type Time struct {
	Min    time.Time
	Max    time.Time
	Length float64
}

// NewTime spans the given instants.
func NewTime(times []time.Time, length float64) Time {
	s := Time{Length: length}
	for i, t := range times {
		if i == 0 || t.Before(s.Min) {
			s.Min = t
		}
		if i == 0 || t.After(s.Max) {
			s.Max = t
		}
	}
	return s
}

func (s Time) span() time.Duration {
	return s.Max.Sub(s.Min)
}

func (s Time) Position(t time.Time) float64 {
	span := s.span()
	if span <= 0 {
		return s.Length / 2
	}
	return float64(t.Sub(s.Min)) * s.Length / float64(span)
}

// Invert returns the instant at v. Values outside the axis report ok == false.
func (s Time) Invert(v float64) (time.Time, bool) {
	if s.Length <= 0 || v < 0 || v > s.Length || math.IsNaN(v) {
		return time.Time{}, false
	}
	span := s.span()
	if span <= 0 {
		return s.Min, true
	}
	offset := time.Duration(math.Round(v * float64(span) / s.Length))
	return s.Min.Add(offset), true
}

// Linear maps [0, Max] onto [0, Length] for value axes.
type Linear struct {
	Max    float64
	Length float64
}

func (l Linear) Position(v float64) float64 {
	if l.Max <= 0 {
		return 0
	}
	return v / l.Max * l.Length
}
