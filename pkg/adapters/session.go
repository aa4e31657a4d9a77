package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
	"github.com/de-tools/chart-atlas/pkg/models/store"
)

func MapDomainSnapshotToStore(s domain.SessionSnapshot) (*store.Session, error) {
	state := store.SessionState{
		Hidden:  s.Hidden,
		Options: s.Options,
	}
	if s.Selection != nil {
		state.Selection = &store.SelectionState{
			Key:     s.Selection.Key,
			AnchorX: s.Selection.Anchor.X,
			AnchorY: s.Selection.Anchor.Y,
		}
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session state: %w", err)
	}

	sort := s.Sort
	if sort == "" {
		sort = domain.SortNone
	}

	return &store.Session{
		ID:        s.ID,
		Kind:      string(s.Kind),
		Width:     s.Viewport.Width,
		Height:    s.Viewport.Height,
		Sort:      string(sort),
		State:     string(raw),
		Animating: s.Animating,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}, nil
}

func MapStoreSessionToDomain(s *store.Session) (domain.SessionSnapshot, error) {
	if s == nil {
		return domain.SessionSnapshot{}, fmt.Errorf("session row is nil")
	}

	var state store.SessionState
	if s.State != "" {
		if err := json.Unmarshal([]byte(s.State), &state); err != nil {
			return domain.SessionSnapshot{}, fmt.Errorf("failed to decode state of session %s: %w", s.ID, err)
		}
	}

	snap := domain.SessionSnapshot{
		ID:        s.ID,
		Kind:      domain.ChartKind(s.Kind),
		Viewport:  domain.Size{Width: s.Width, Height: s.Height},
		Sort:      domain.SortMode(s.Sort),
		Hidden:    state.Hidden,
		Options:   state.Options,
		Animating: s.Animating,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if state.Selection != nil {
		snap.Selection = &domain.Selection{
			Key:    state.Selection.Key,
			Anchor: domain.Position{X: state.Selection.AnchorX, Y: state.Selection.AnchorY},
		}
	}
	return snap, nil
}
