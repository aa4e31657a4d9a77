package chart

import (
	"slices"
)

// Labels returns the distinct non-empty labels of points, sorted.
func Labels[P Point](points []P) []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, p := range points {
		l := p.Label()
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		labels = append(labels, l)
	}
	slices.Sort(labels)
	return labels
}

// Filter keeps the points whose label is active. Unlabelled points always pass.
func Filter[P Point](points []P, active map[string]bool) []P {
	out := make([]P, 0, len(points))
	for _, p := range points {
		if l := p.Label(); l != "" && !active[l] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// toggleLabelSet flips label in active and returns the new set. The last active label
// stays active, and labels outside known are ignored.
func toggleLabelSet(active map[string]bool, known []string, label string) (map[string]bool, bool) {
	if !slices.Contains(known, label) {
		return active, false
	}

	if active[label] {
		count := 0
		for _, on := range active {
			if on {
				count++
			}
		}
		if count <= 1 {
			return active, false
		}
	}

	next := make(map[string]bool, len(active))
	for k, v := range active {
		next[k] = v
	}
	next[label] = !active[label]
	return next, true
}
