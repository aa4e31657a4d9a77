// Package session keeps open chart instances, fans their views out to
// subscribers and persists their state.
package session

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/de-tools/chart-atlas/pkg/adapters"
	"github.com/de-tools/chart-atlas/pkg/models/domain"
	"github.com/de-tools/chart-atlas/pkg/services/charts"
	sessionstore "github.com/de-tools/chart-atlas/pkg/store/sqlite/session"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const DefaultAnimationDelay = 500 * time.Millisecond

type Manager interface {
	// Open creates a session for kind, optionally starting from preset.
	Open(ctx context.Context, kind domain.ChartKind, preset *domain.Preset, viewport domain.Size) (domain.SessionView, error)
	Get(ctx context.Context, id string) (domain.SessionView, error)
	List(ctx context.Context) []domain.SessionView
	// Dispatch applies in to the session and notifies its subscribers.
	Dispatch(ctx context.Context, id string, in domain.Input) (domain.SessionView, error)
	// Subscribe returns a channel receiving the latest view after every change.
	// Slow subscribers only see the most recent view.
	Subscribe(id string) (<-chan domain.SessionView, func(), error)
	Close(ctx context.Context, id string) error
	// Init restores persisted sessions.
	Init(ctx context.Context) error
}

type Options struct {
	// Store persists sessions. Nil keeps sessions in memory only.
	Store          sessionstore.Store
	AnimationDelay time.Duration
	Viewport       domain.Size
	Logger         *zerolog.Logger
	Now            func() time.Time
}

type entry struct {
	mu        sync.Mutex
	id        string
	instance  charts.Instance
	createdAt time.Time
	updatedAt time.Time
	timer     *time.Timer
	subs      map[int]chan domain.SessionView
	nextSub   int
	closed    bool
}

type DefaultManager struct {
	registry charts.Registry
	store    sessionstore.Store
	delay    time.Duration
	viewport domain.Size
	logger   zerolog.Logger
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*entry
}

func NewManager(registry charts.Registry, opts Options) *DefaultManager {
	m := &DefaultManager{
		registry: registry,
		store:    opts.Store,
		delay:    opts.AnimationDelay,
		viewport: opts.Viewport,
		logger:   zerolog.Nop(),
		now:      opts.Now,
		sessions: make(map[string]*entry),
	}
	if m.delay <= 0 {
		m.delay = DefaultAnimationDelay
	}
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		m.viewport = charts.DefaultViewport
	}
	if opts.Logger != nil {
		m.logger = *opts.Logger
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

func (m *DefaultManager) Init(ctx context.Context) error {
	if m.store == nil {
		return nil
	}

	rows, err := m.store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list persisted sessions: %w", err)
	}

	restored := 0
	for _, row := range rows {
		snap, err := adapters.MapStoreSessionToDomain(row)
		if err != nil {
			m.logger.Warn().Err(err).Str("session", row.ID).Msg("skipping unreadable session")
			continue
		}
		c, err := m.registry.Get(snap.Kind)
		if err != nil {
			m.logger.Warn().Err(err).Str("session", row.ID).Msg("skipping session of unknown chart")
			continue
		}

		inst := c.Open(snap.Viewport)
		inst.Restore(snap)
		e := &entry{
			id:        snap.ID,
			instance:  inst,
			createdAt: snap.CreatedAt,
			updatedAt: snap.UpdatedAt,
			subs:      make(map[int]chan domain.SessionView),
		}
		e.mu.Lock()
		m.add(e)
		e.mu.Unlock()
		restored++
		m.logger.Debug().Str("session", e.id).Str("chart", string(snap.Kind)).Msg("session restored")
	}

	m.logger.Info().Int("sessions", restored).Msg("sessions restored")
	return nil
}

func (m *DefaultManager) Open(
	ctx context.Context,
	kind domain.ChartKind,
	preset *domain.Preset,
	viewport domain.Size,
) (domain.SessionView, error) {
	c, err := m.registry.Get(kind)
	if err != nil {
		return domain.SessionView{}, err
	}
	if preset != nil && preset.Kind != "" && preset.Kind != kind {
		return domain.SessionView{}, fmt.Errorf("%w: preset %s is for %s", domain.ErrInvalidInput, preset.Name, preset.Kind)
	}
	if viewport.Width <= 0 || viewport.Height <= 0 {
		viewport = m.viewport
	}

	inst := c.Open(viewport)
	for _, in := range preset.Inputs() {
		inst.Apply(in)
	}

	now := m.now()
	e := &entry{
		id:        uuid.NewString(),
		instance:  inst,
		createdAt: now,
		updatedAt: now,
		subs:      make(map[int]chan domain.SessionView),
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	m.persist(ctx, e)
	m.add(e)

	zerolog.Ctx(ctx).Info().Str("session", e.id).Str("chart", string(kind)).Msg("session opened")
	return e.view(), nil
}

// add registers e and arms its entry animation unless it already ran.
// Callers hold e.mu.
func (m *DefaultManager) add(e *entry) {
	m.mu.Lock()
	m.sessions[e.id] = e
	m.mu.Unlock()

	if !e.instance.View().Animating {
		id := e.id
		e.timer = time.AfterFunc(m.delay, func() { m.animationDone(id) })
	}
}

func (m *DefaultManager) animationDone(id string) {
	ctx := m.logger.WithContext(context.Background())
	if _, err := m.Dispatch(ctx, id, domain.Input{Type: domain.InputAnimationDone}); err != nil {
		m.logger.Debug().Err(err).Str("session", id).Msg("animation finished after close")
	}
}

func (m *DefaultManager) lookup(id string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return e, nil
}

func (m *DefaultManager) Get(_ context.Context, id string) (domain.SessionView, error) {
	e, err := m.lookup(id)
	if err != nil {
		return domain.SessionView{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return domain.SessionView{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return e.view(), nil
}

func (m *DefaultManager) List(_ context.Context) []domain.SessionView {
	m.mu.RLock()
	entries := make([]*entry, 0, len(m.sessions))
	for _, e := range m.sessions {
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	views := make([]domain.SessionView, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		if !e.closed {
			views = append(views, e.view())
		}
		e.mu.Unlock()
	}

	slices.SortFunc(views, func(a, b domain.SessionView) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return views
}

func (m *DefaultManager) Dispatch(ctx context.Context, id string, in domain.Input) (domain.SessionView, error) {
	e, err := m.lookup(id)
	if err != nil {
		return domain.SessionView{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return domain.SessionView{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	e.instance.Apply(in)
	e.updatedAt = m.now()
	view := e.view()

	e.notify(view)
	m.persist(ctx, e)

	zerolog.Ctx(ctx).Debug().Str("session", id).Str("input", string(in.Type)).Msg("input dispatched")
	return view, nil
}

func (m *DefaultManager) Subscribe(id string) (<-chan domain.SessionView, func(), error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	ch := make(chan domain.SessionView, 1)
	n := e.nextSub
	e.nextSub++
	e.subs[n] = ch
	ch <- e.view()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			if sub, ok := e.subs[n]; ok {
				delete(e.subs, n)
				close(sub)
			}
		})
	}
	return ch, cancel, nil
}

func (m *DefaultManager) Close(ctx context.Context, id string) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	if e.timer != nil {
		e.timer.Stop()
	}
	for n, sub := range e.subs {
		delete(e.subs, n)
		close(sub)
	}

	if m.store != nil {
		if err := m.store.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete session %s: %w", id, err)
		}
	}

	zerolog.Ctx(ctx).Info().Str("session", id).Msg("session closed")
	return nil
}

// persist saves the session state. Failures are logged, the in-memory session
// stays authoritative. Callers hold e.mu.
func (m *DefaultManager) persist(ctx context.Context, e *entry) {
	if m.store == nil {
		return
	}

	row, err := adapters.MapDomainSnapshotToStore(e.snapshot())
	if err == nil {
		err = m.store.Save(ctx, row)
	}
	if err != nil {
		m.logger.Error().Err(err).Str("session", e.id).Msg("failed to persist session")
	}
}

func (e *entry) snapshot() domain.SessionSnapshot {
	snap := e.instance.Snapshot()
	snap.ID = e.id
	snap.CreatedAt = e.createdAt
	snap.UpdatedAt = e.updatedAt
	return snap
}

func (e *entry) view() domain.SessionView {
	return domain.SessionView{
		ID:        e.id,
		CreatedAt: e.createdAt,
		UpdatedAt: e.updatedAt,
		View:      e.instance.View(),
	}
}

// notify hands view to every subscriber, replacing a view it has not read yet.
// Callers hold e.mu, so there is a single sender per channel.
func (e *entry) notify(view domain.SessionView) {
	for _, sub := range e.subs {
		select {
		case sub <- view:
		default:
			select {
			case <-sub:
			default:
			}
			sub <- view
		}
	}
}
