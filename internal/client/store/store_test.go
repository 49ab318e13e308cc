package store

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecellnce/campushub/internal/client/models"
	"github.com/ecellnce/campushub/internal/common"
	"github.com/ecellnce/campushub/internal/logging"

	_ "modernc.org/sqlite"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE collections (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);`)
	require.NoError(t, err)

	return New(db, testLogger())
}

func TestOpen_RunsMigrations(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "campushub.db")

	s, err := Open(context.Background(), dsn, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	// The migrated schema must accept a round trip.
	require.NoError(t, s.SavePosts(context.Background(), []models.Post{{ID: "p1"}}))
	posts, err := s.Posts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
}

func TestPosts_EmptyStore_SeedsOnce(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	posts, err := s.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "sample-1", posts[0].ID)
	assert.Equal(t, "sample-2", posts[1].ID)

	// A write followed by a read returns the written value, not the seed.
	require.NoError(t, s.SavePosts(ctx, []models.Post{{ID: "mine", Author: "Current User"}}))

	posts, err = s.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "mine", posts[0].ID)
}

func TestPosts_SeedIsPersisted(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.Posts(ctx)
	require.NoError(t, err)

	data, err := s.Repository().Get(ctx, common.KeyPosts)
	require.NoError(t, err)
	require.NotNil(t, data, "first read must write the seed through")
}

func TestPosts_CorruptDocument_FallsBackToSeed(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Repository().Set(ctx, common.KeyPosts, []byte(`{{{broken`)))

	posts, err := s.Posts(ctx)
	require.NoError(t, err, "decode failure must not surface as an error")
	require.Len(t, posts, 2)

	// The unreadable bytes stay in place for postmortem inspection.
	data, err := s.Repository().Get(ctx, common.KeyPosts)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{{{broken`), data)
}

func TestEventsAndRSVP_SeedDefaults(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	events, err := s.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, "Startup Pitch Workshop", events[0].Title)

	rsvp, err := s.RSVP(ctx)
	require.NoError(t, err)
	assert.Empty(t, rsvp)
}

func TestSaveEventsAndRSVP_WritesBoth(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	events := []models.Event{{ID: "1", Title: "Demo Day", RegisteredCount: 1, MaxParticipants: 10}}
	rsvp := map[string]bool{"1": true}

	require.NoError(t, s.SaveEventsAndRSVP(ctx, events, rsvp))

	gotEvents, err := s.Events(ctx)
	require.NoError(t, err)
	require.Len(t, gotEvents, 1)
	assert.Equal(t, 1, gotEvents[0].RegisteredCount)

	gotRSVP, err := s.RSVP(ctx)
	require.NoError(t, err)
	assert.True(t, gotRSVP["1"])
}

func TestProfile_SeedAndRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	profile, err := s.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Current User", profile.Name)
	assert.Len(t, profile.Interests, 4)

	profile.Bio = "Building things."
	require.NoError(t, s.SaveProfile(ctx, profile))

	back, err := s.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Building things.", back.Bio)
}

func TestSavePosts_WriteFailure_IsPersistenceError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec(`INSERT INTO collections`).WillReturnError(sql.ErrConnDone)

	s := New(db, testLogger())
	err = s.SavePosts(context.Background(), []models.Post{{ID: "p"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrPersistence))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEventsAndRSVP_TxFailure_RollsBack(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	// Prime both keys.
	require.NoError(t, s.SaveEventsAndRSVP(ctx, []models.Event{{ID: "1"}}, map[string]bool{}))

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO collections`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO collections`).WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	broken := New(db, testLogger())
	err = broken.SaveEventsAndRSVP(ctx, []models.Event{{ID: "1"}}, map[string]bool{"1": true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrPersistence))
	require.NoError(t, mock.ExpectationsWereMet())
}
