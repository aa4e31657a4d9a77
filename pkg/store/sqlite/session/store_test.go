package session

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/chart-atlas/pkg/models/store"
	"github.com/de-tools/chart-atlas/pkg/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{
		db:    db,
		store: s,
	}
}

func newSession(id string, created time.Time) *store.Session {
	return &store.Session{
		ID:        id,
		Kind:      "grouped-bar",
		Width:     320,
		Height:    250,
		Sort:      "descending",
		State:     `{"hidden":["Y"]}`,
		Animating: true,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestNewStore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := setupFixture(t)
		assert.NotNil(t, f.store)
	})

	t.Run("nil db", func(t *testing.T) {
		s, err := NewStore(nil)
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestStore_SaveAndGet(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, f.store.Save(ctx, newSession("s1", created)))

	got, err := f.store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "grouped-bar", got.Kind)
	assert.Equal(t, 320.0, got.Width)
	assert.Equal(t, "descending", got.Sort)
	assert.Equal(t, `{"hidden":["Y"]}`, got.State)
	assert.True(t, got.Animating)
	assert.True(t, created.Equal(got.CreatedAt))

	t.Run("upsert keeps kind and creation time", func(t *testing.T) {
		updated := newSession("s1", created.Add(time.Hour))
		updated.Kind = "basic-bar"
		updated.Sort = "none"
		updated.State = `{}`
		updated.Animating = false
		require.NoError(t, f.store.Save(ctx, updated))

		got, err := f.store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "grouped-bar", got.Kind)
		assert.Equal(t, "none", got.Sort)
		assert.False(t, got.Animating)
		assert.True(t, created.Equal(got.CreatedAt))
		assert.True(t, created.Add(time.Hour).Equal(got.UpdatedAt))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := f.store.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		assert.Error(t, f.store.Save(ctx, &store.Session{}))
	})
}

func TestStore_ListAndDelete(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, f.store.Save(ctx, newSession("later", base.Add(time.Minute))))
	require.NoError(t, f.store.Save(ctx, newSession("earlier", base)))

	sessions, err := f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "earlier", sessions[0].ID)
	assert.Equal(t, "later", sessions[1].ID)

	require.NoError(t, f.store.Delete(ctx, "earlier"))
	require.NoError(t, f.store.Delete(ctx, "earlier"), "deleting twice is not an error")

	sessions, err = f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "later", sessions[0].ID)
}

func TestStore_SaveInTransaction(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	tx, err := f.db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := sqlite.WithTransaction(ctx, tx)
	require.NoError(t, f.store.Save(txCtx, newSession("s1", time.Now())))
	require.NoError(t, tx.Rollback())

	sessions, err := f.store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions, "rolled back save leaves no row")
}

func TestStore_SQL(t *testing.T) {
	// Given: a sqlmock DB
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("save upserts every column", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO chart_sessions .* ON CONFLICT\(id\) DO UPDATE SET`).
			WithArgs("s1", "grouped-bar", 320.0, 250.0, "descending", `{"hidden":["Y"]}`, 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		// When: saving a session
		err := s.Save(ctx, newSession("s1", time.Now()))

		// Then: one upsert is issued
		require.NoError(t, err)
	})

	t.Run("list scans rows", func(t *testing.T) {
		created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		cols := []string{"id", "kind", "width", "height", "sort", "state", "animating", "created_at", "updated_at"}
		mock.ExpectQuery(`SELECT id, kind, width, height, sort, state, animating, created_at, updated_at\s+FROM chart_sessions ORDER BY created_at, id`).
			WillReturnRows(sqlmock.NewRows(cols).AddRow("s1", "basic-bar", 320.0, 250.0, "none", "{}", 0, created, created))

		sessions, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, "basic-bar", sessions[0].Kind)
		assert.False(t, sessions[0].Animating)
	})

	t.Run("delete wraps driver errors", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM chart_sessions WHERE id = \?`).
			WithArgs("s1").
			WillReturnError(errors.New("disk I/O error"))

		err := s.Delete(ctx, "s1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete session s1")
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled sqlmock expectations: %v", err)
	}
}
