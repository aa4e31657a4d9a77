package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/de-tools/chart-atlas/pkg/adapters"
	"github.com/de-tools/chart-atlas/pkg/models/domain"
	"github.com/de-tools/chart-atlas/pkg/models/store"
	"github.com/de-tools/chart-atlas/pkg/services/charts"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) List(ctx context.Context) ([]*store.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Session), args.Error(1)
}

func (m *mockStore) Get(ctx context.Context, id string) (*store.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Session), args.Error(1)
}

func (m *mockStore) Save(ctx context.Context, session *store.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestManager(t *testing.T, opts Options) *DefaultManager {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	opts.Logger = &logger
	if opts.AnimationDelay == 0 {
		opts.AnimationDelay = time.Hour
	}
	return NewManager(charts.DefaultRegistry(), opts)
}

func TestManager_OpenAndDispatch(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, Options{})

	opened, err := m.Open(ctx, domain.ChartBasicBar, nil, domain.Size{})
	require.NoError(t, err)
	assert.NotEmpty(t, opened.ID)
	assert.Equal(t, charts.DefaultViewport, opened.View.Viewport)
	assert.False(t, opened.View.Animating)

	view, err := m.Dispatch(ctx, opened.ID, domain.Input{Type: domain.InputTap, X: 10, Y: 10})
	require.NoError(t, err)
	require.NotNil(t, view.View.Selection)
	assert.Equal(t, "A", view.View.Selection.Key)

	got, err := m.Get(ctx, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, view.View, got.View)

	assert.Len(t, m.List(ctx), 1)

	t.Run("unknown chart", func(t *testing.T) {
		_, err := m.Open(ctx, "pie", nil, domain.Size{})
		assert.ErrorIs(t, err, domain.ErrUnknownChart)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := m.Dispatch(ctx, "nope", domain.Input{Type: domain.InputRelease})
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		_, err = m.Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}

func TestManager_OpenWithPreset(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, Options{})

	preset := &domain.Preset{
		Name:     "groups",
		Kind:     domain.ChartGroupedBar,
		Sort:     domain.SortDescending,
		Hidden:   []string{"Y"},
		Disabled: []string{charts.OptionTotals},
	}
	opened, err := m.Open(ctx, domain.ChartGroupedBar, preset, domain.Size{Width: 600, Height: 400})
	require.NoError(t, err)

	view := opened.View
	assert.Equal(t, domain.Size{Width: 600, Height: 400}, view.Viewport)
	assert.Equal(t, domain.SortDescending, view.Sort)
	assert.Len(t, view.Points, 3)
	assert.Equal(t, "B/X", view.Points[0].Key)
	assert.False(t, view.Options[charts.OptionTotals])

	t.Run("preset for another chart", func(t *testing.T) {
		_, err := m.Open(ctx, domain.ChartBasicBar, preset, domain.Size{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestManager_AnimationTimer(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, Options{AnimationDelay: 10 * time.Millisecond})

	opened, err := m.Open(ctx, domain.ChartBasicLine, nil, domain.Size{})
	require.NoError(t, err)
	assert.False(t, opened.View.Animating)

	assert.Eventually(t, func() bool {
		view, err := m.Get(ctx, opened.ID)
		return err == nil && view.View.Animating
	}, time.Second, 5*time.Millisecond)
}

func TestManager_Subscribe(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, Options{})

	opened, err := m.Open(ctx, domain.ChartHorizontalBar, nil, domain.Size{})
	require.NoError(t, err)

	updates, cancel, err := m.Subscribe(opened.ID)
	require.NoError(t, err)
	defer cancel()

	initial := <-updates
	assert.Nil(t, initial.View.Selection)

	_, err = m.Dispatch(ctx, opened.ID, domain.Input{Type: domain.InputSort, Sort: domain.SortAscending})
	require.NoError(t, err)
	_, err = m.Dispatch(ctx, opened.ID, domain.Input{Type: domain.InputSort, Sort: domain.SortDescending})
	require.NoError(t, err)

	latest := <-updates
	assert.Equal(t, domain.SortDescending, latest.View.Sort, "unread views are replaced by the newest")

	t.Run("cancel closes the channel", func(t *testing.T) {
		other, cancelOther, err := m.Subscribe(opened.ID)
		require.NoError(t, err)
		<-other
		cancelOther()
		cancelOther()
		_, ok := <-other
		assert.False(t, ok)
	})

	t.Run("close ends subscriptions", func(t *testing.T) {
		require.NoError(t, m.Close(ctx, opened.ID))
		_, ok := <-updates
		assert.False(t, ok)

		_, _, err := m.Subscribe(opened.ID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		assert.ErrorIs(t, m.Close(ctx, opened.ID), domain.ErrSessionNotFound)
	})
}

func TestManager_Persistence(t *testing.T) {
	ctx := context.Background()
	st := new(mockStore)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, Options{Store: st, Now: func() time.Time { return now }})

	st.On("Save", mock.Anything, mock.MatchedBy(func(s *store.Session) bool {
		return s.Kind == string(domain.ChartStackedBar) && s.Sort == "none"
	})).Return(nil).Once()

	opened, err := m.Open(ctx, domain.ChartStackedBar, nil, domain.Size{})
	require.NoError(t, err)

	st.On("Save", mock.Anything, mock.MatchedBy(func(s *store.Session) bool {
		return s.ID == opened.ID && s.State != "{}"
	})).Return(errors.New("disk full")).Once()

	view, err := m.Dispatch(ctx, opened.ID, domain.Input{Type: domain.InputToggleOption, Option: charts.OptionValue1})
	require.NoError(t, err, "persistence failures do not fail the input")
	assert.False(t, view.View.Options[charts.OptionValue1])

	st.On("Delete", mock.Anything, opened.ID).Return(nil).Once()
	require.NoError(t, m.Close(ctx, opened.ID))

	st.AssertExpectations(t)
}

func TestManager_Init(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	row, err := adapters.MapDomainSnapshotToStore(domain.SessionSnapshot{
		ID:        "restored",
		Kind:      domain.ChartGroupedBar,
		Viewport:  charts.DefaultViewport,
		Sort:      domain.SortAscending,
		Hidden:    []string{"X"},
		Selection: &domain.Selection{Key: "A/Y", Anchor: domain.Position{X: 10, Y: 10}},
		Animating: true,
		CreatedAt: created,
		UpdatedAt: created,
	})
	require.NoError(t, err)

	st := new(mockStore)
	st.On("List", mock.Anything).Return([]*store.Session{
		row,
		{ID: "stale", Kind: "pie", State: "{}"},
		{ID: "corrupt", Kind: "basic-bar", State: "{"},
	}, nil)

	m := newTestManager(t, Options{Store: st})
	require.NoError(t, m.Init(ctx))

	sessions := m.List(ctx)
	require.Len(t, sessions, 1)

	view := sessions[0]
	assert.Equal(t, "restored", view.ID)
	assert.Equal(t, created, view.CreatedAt)
	assert.Equal(t, domain.SortAscending, view.View.Sort)
	assert.Len(t, view.View.Points, 3)
	require.NotNil(t, view.View.Selection)
	assert.Equal(t, "A/Y", view.View.Selection.Key)
	assert.True(t, view.View.Animating)

	t.Run("store failure", func(t *testing.T) {
		failing := new(mockStore)
		failing.On("List", mock.Anything).Return(nil, errors.New("locked"))
		assert.Error(t, newTestManager(t, Options{Store: failing}).Init(ctx))
	})

	t.Run("no store", func(t *testing.T) {
		assert.NoError(t, newTestManager(t, Options{}).Init(ctx))
	})
}
