package chart

import (
	"testing"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleState() State[domain.SimplePoint] {
	return New(Config[domain.SimplePoint]{
		Data: []domain.SimplePoint{
			{Category: "A", Value: 10},
			{Category: "B", Value: 20},
			{Category: "C", Value: 15},
		},
		Sorts: []domain.SortMode{
			domain.SortNone, domain.SortAscending, domain.SortDescending, domain.SortAlphabetical,
		},
	})
}

func groupedState() State[domain.GroupedPoint] {
	return New(Config[domain.GroupedPoint]{
		Data: []domain.GroupedPoint{
			{Category: "A", Group: "X", Value: 10},
			{Category: "A", Group: "Y", Value: 15},
			{Category: "B", Group: "X", Value: 20},
			{Category: "B", Group: "Y", Value: 25},
			{Category: "C", Group: "X", Value: 15},
			{Category: "C", Group: "Y", Value: 18},
		},
		Sorts:      []domain.SortMode{domain.SortNone, domain.SortAscending, domain.SortDescending},
		DragSelect: true,
	})
}

func TestReduce_Tap(t *testing.T) {
	anchor := domain.Position{X: 40, Y: 12}

	t.Run("selects item and records anchor", func(t *testing.T) {
		s := Reduce(simpleState(), Tap{Key: "B", Anchor: anchor})

		sel, ok := s.Selected()
		require.True(t, ok)
		assert.Equal(t, "B", sel.Item.Category)
		assert.Equal(t, anchor, sel.Anchor)
	})

	t.Run("same item twice returns to idle", func(t *testing.T) {
		s := ReduceAll(simpleState(), Tap{Key: "B", Anchor: anchor}, Tap{Key: "B"})

		_, ok := s.Selected()
		assert.False(t, ok)
	})

	t.Run("other item replaces selection", func(t *testing.T) {
		s := ReduceAll(simpleState(), Tap{Key: "A"}, Tap{Key: "C", Anchor: anchor})

		sel, ok := s.Selected()
		require.True(t, ok)
		assert.Equal(t, "C", sel.Item.Category)
		assert.Equal(t, anchor, sel.Anchor)
	})

	t.Run("miss clears", func(t *testing.T) {
		s := ReduceAll(simpleState(), Tap{Key: "A"}, Tap{Key: "Z"})

		_, ok := s.Selected()
		assert.False(t, ok)

		s = ReduceAll(simpleState(), Tap{Key: "A"}, Tap{Key: ""})
		_, ok = s.Selected()
		assert.False(t, ok)
	})

	t.Run("input state is not modified", func(t *testing.T) {
		before := simpleState()
		_ = Reduce(before, Tap{Key: "A"})

		_, ok := before.Selected()
		assert.False(t, ok)
	})
}

func TestReduce_DragAndRelease(t *testing.T) {
	s := ReduceAll(groupedState(), Drag{Key: "B/Y"}, Drag{Key: "B/Y"})
	sel, ok := s.Selected()
	require.True(t, ok, "dragging over the selected item keeps it")
	assert.Equal(t, 25.0, sel.Item.Value)

	s = Reduce(s, Drag{Key: ""})
	_, ok = s.Selected()
	assert.True(t, ok, "pointer outside the plot leaves selection alone")

	s = Reduce(s, Release{})
	_, ok = s.Selected()
	assert.False(t, ok)

	t.Run("release is ignored by tap charts", func(t *testing.T) {
		s := ReduceAll(simpleState(), Tap{Key: "A"}, Release{})
		_, ok := s.Selected()
		assert.True(t, ok)
	})
}

func TestReduce_ToggleLabel(t *testing.T) {
	t.Run("deselect group filters and recomputes totals", func(t *testing.T) {
		s := Reduce(groupedState(), ToggleLabel{Label: "Y"})

		visible := s.Visible()
		require.Len(t, visible, 3)
		for _, p := range visible {
			assert.Equal(t, "X", p.Group)
		}
		assert.Equal(t, []domain.CategoryTotal{
			{Category: "A", Total: 10},
			{Category: "B", Total: 20},
			{Category: "C", Total: 15},
		}, Totals(s.Filtered()))
		assert.Equal(t, []string{"Y"}, s.Hidden())
	})

	t.Run("last active label cannot be removed", func(t *testing.T) {
		s := ReduceAll(groupedState(), ToggleLabel{Label: "Y"}, ToggleLabel{Label: "X"})

		assert.True(t, s.IsActive("X"))
		assert.False(t, s.IsActive("Y"))
		assert.Len(t, s.Visible(), 3)
	})

	t.Run("re-enable restores entries", func(t *testing.T) {
		s := ReduceAll(groupedState(), ToggleLabel{Label: "Y"}, ToggleLabel{Label: "Y"})
		assert.Len(t, s.Visible(), 6)
		assert.Empty(t, s.Hidden())
	})

	t.Run("filter change clears selection", func(t *testing.T) {
		s := ReduceAll(groupedState(), Drag{Key: "A/X"}, ToggleLabel{Label: "Y"})
		_, ok := s.Selected()
		assert.False(t, ok)
	})

	t.Run("unknown label is a no-op", func(t *testing.T) {
		s := ReduceAll(groupedState(), Drag{Key: "A/X"}, ToggleLabel{Label: "Q"})
		_, ok := s.Selected()
		assert.True(t, ok)
		assert.Len(t, s.Visible(), 6)
	})
}

func TestReduce_SetSort(t *testing.T) {
	s := Reduce(simpleState(), SetSort{Mode: domain.SortDescending})
	assert.Equal(t, []domain.SimplePoint{
		{Category: "B", Value: 20},
		{Category: "C", Value: 15},
		{Category: "A", Value: 10},
	}, s.Visible())

	s = Reduce(s, SetSort{Mode: domain.SortNone})
	assert.Equal(t, s.Data(), s.Visible(), "none restores dataset order")

	t.Run("unsupported mode is ignored", func(t *testing.T) {
		s := Reduce(groupedState(), SetSort{Mode: domain.SortAlphabetical})
		assert.Equal(t, domain.SortNone, s.Sort())
	})

	t.Run("sort change keeps selection", func(t *testing.T) {
		s := ReduceAll(simpleState(), Tap{Key: "A"}, SetSort{Mode: domain.SortAscending})
		sel, ok := s.Selected()
		require.True(t, ok)
		assert.Equal(t, "A", sel.Item.Category)
	})
}

func TestReduce_OptionsAnimationReset(t *testing.T) {
	s := New(Config[domain.StackedPoint]{
		Data:    []domain.StackedPoint{{Category: "A", Value1: 10, Value2: 5}},
		Options: []string{"value1", "value2"},
	})
	assert.True(t, s.Option("value1"))

	s = ReduceAll(s, ToggleOption{Name: "value1"}, ToggleOption{Name: "missing"}, AnimationDone{}, Tap{Key: "A"})
	assert.False(t, s.Option("value1"))
	assert.Equal(t, map[string]bool{"value1": false, "value2": true}, s.Options())
	assert.True(t, s.Animating())

	s = Reduce(s, Reset{})
	assert.True(t, s.Option("value1"))
	assert.True(t, s.Animating(), "reset keeps the entrance animation done")
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestReduce_ToggleKey(t *testing.T) {
	day := domain.Day(3, 5)
	s := New(Config[domain.MultiSeriesTimePoint]{
		Data: []domain.MultiSeriesTimePoint{
			{Date: day, Series: "A", Value: 15},
			{Date: day, Series: "B", Value: 22},
		},
		ToggleKey: func(p domain.MultiSeriesTimePoint) string { return domain.DayKey(p.Date) },
	})

	s = ReduceAll(s, Tap{Key: "2025-03-05/A"}, Tap{Key: "2025-03-05/B"})
	_, ok := s.Selected()
	assert.False(t, ok, "a tap on the same day clears")
}
