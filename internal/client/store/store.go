// Package store is the persisted collection store: typed, envelope-versioned
// access to the JSON collections kept in the local SQLite database. It is the
// single source of truth per collection key; everything above it holds only
// transient snapshots.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/ecellnce/campushub/internal/client/migrations"
	"github.com/ecellnce/campushub/internal/client/models"
	"github.com/ecellnce/campushub/internal/client/repositories/collections"
	"github.com/ecellnce/campushub/internal/common"
	"github.com/ecellnce/campushub/internal/dbx"
	"github.com/ecellnce/campushub/internal/logging"

	_ "modernc.org/sqlite"
)

type Store struct {
	db     *sql.DB
	repo   collections.Repository
	logger logging.Logger
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the local database at dsn, migrates it and
// returns a ready store.
func Open(ctx context.Context, dsn string, logger logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return New(db, logger), nil
}

// New builds a store over an already-migrated database handle.
func New(db *sql.DB, logger logging.Logger) *Store {
	return &Store{
		db:     db,
		repo:   collections.NewSQLiteRepository(db),
		logger: logger.With("module", "store"),
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Repository exposes the raw key/value layer for documents that bypass
// seeding, like the auth session.
func (s *Store) Repository() collections.Repository {
	return s.repo
}

// read loads and decodes the collection at key. An absent key is seeded:
// the seed value is persisted so it is used exactly once. An unreadable
// document falls back to the seed without overwriting the stored bytes,
// and only a warning is logged.
func read[T any](ctx context.Context, s *Store, key string, seed func() T) (T, error) {
	var zero T

	data, err := s.repo.Get(ctx, key)
	if err != nil {
		return zero, fmt.Errorf("reading %s: %w", key, err)
	}

	if data == nil {
		v := seed()
		if err := write(ctx, s, key, v); err != nil {
			s.logger.Warn(ctx, "failed to persist seed, continuing with in-memory copy", "key", key, "error", err)
		}
		return v, nil
	}

	var v T
	if err := models.Open(data, &v); err != nil {
		if errors.Is(err, common.ErrDecode) {
			s.logger.Warn(ctx, "stored document unreadable, falling back to seed", "key", key, "error", err)
			return seed(), nil
		}
		return zero, err
	}
	return v, nil
}

// write seals v in the versioned envelope and persists it, replacing any
// prior value at key.
func write[T any](ctx context.Context, s *Store, key string, v T) error {
	data, err := models.Seal(v)
	if err != nil {
		return fmt.Errorf("%w: sealing %s: %v", common.ErrPersistence, key, err)
	}
	if err := s.repo.Set(ctx, key, data); err != nil {
		return fmt.Errorf("%w: writing %s: %v", common.ErrPersistence, key, err)
	}
	return nil
}

func (s *Store) Posts(ctx context.Context) ([]models.Post, error) {
	return read(ctx, s, common.KeyPosts, seedPosts)
}

func (s *Store) SavePosts(ctx context.Context, posts []models.Post) error {
	return write(ctx, s, common.KeyPosts, posts)
}

func (s *Store) Events(ctx context.Context) ([]models.Event, error) {
	return read(ctx, s, common.KeyEvents, seedEvents)
}

func (s *Store) SaveEvents(ctx context.Context, events []models.Event) error {
	return write(ctx, s, common.KeyEvents, events)
}

func (s *Store) RSVP(ctx context.Context) (map[string]bool, error) {
	return read(ctx, s, common.KeyRSVP, seedRSVP)
}

func (s *Store) SaveRSVP(ctx context.Context, rsvp map[string]bool) error {
	return write(ctx, s, common.KeyRSVP, rsvp)
}

func (s *Store) Profile(ctx context.Context) (models.Profile, error) {
	return read(ctx, s, common.KeyProfile, seedProfile)
}

func (s *Store) SaveProfile(ctx context.Context, profile models.Profile) error {
	return write(ctx, s, common.KeyProfile, profile)
}

// SaveEventsAndRSVP writes both collections in one transaction, so an RSVP
// toggle can never persist the counter without the flag or vice versa.
func (s *Store) SaveEventsAndRSVP(ctx context.Context, events []models.Event, rsvp map[string]bool) error {
	eventsDoc, err := models.Seal(events)
	if err != nil {
		return fmt.Errorf("%w: sealing %s: %v", common.ErrPersistence, common.KeyEvents, err)
	}
	rsvpDoc, err := models.Seal(rsvp)
	if err != nil {
		return fmt.Errorf("%w: sealing %s: %v", common.ErrPersistence, common.KeyRSVP, err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := collections.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.KeyEvents, eventsDoc); err != nil {
			return err
		}
		return repo.Set(ctx, common.KeyRSVP, rsvpDoc)
	})
	if err != nil {
		return fmt.Errorf("%w: writing events+rsvp: %v", common.ErrPersistence, err)
	}
	return nil
}
