// Package services ties the feed engine to the remote backend: pull-based
// refresh, profile push, and the realtime watch loop.
package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ecellnce/campushub/internal/client/feed"
	"github.com/ecellnce/campushub/internal/client/remote"
	"github.com/ecellnce/campushub/internal/logging"
)

// SyncService folds remote data into the local feed engine. Everything it
// learns from the backend enters through replace-snapshot intents, so
// remote pushes and local mutations share one serialization point.
type SyncService struct {
	client       remote.Client
	feed         *feed.Service
	pingInterval time.Duration
	logger       logging.Logger

	mu     sync.Mutex
	online bool
}

func NewSyncService(client remote.Client, f *feed.Service, pingInterval time.Duration, logger logging.Logger) *SyncService {
	return &SyncService{
		client:       client,
		feed:         f,
		pingInterval: pingInterval,
		logger:       logger.With("module", "sync"),
	}
}

// Online reports the result of the last reachability probe.
func (s *SyncService) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

func (s *SyncService) setOnline(ctx context.Context, online bool) {
	s.mu.Lock()
	changed := s.online != online
	s.online = online
	s.mu.Unlock()
	if changed {
		if online {
			s.logger.Info(ctx, "switched to online mode")
		} else {
			s.logger.Info(ctx, "switched to offline mode")
		}
	}
}

// RefreshEvents replaces the local events cache with the backend's active
// events. Local RSVP flags survive the replacement.
func (s *SyncService) RefreshEvents(ctx context.Context) error {
	events, err := s.client.ListEvents(ctx)
	if err != nil {
		return err
	}
	if err := s.feed.ReplaceEvents(ctx, events); err != nil {
		return err
	}
	s.logger.Info(ctx, "events cache refreshed from backend", "count", len(events))
	return nil
}

// PullProfile overwrites the local profile with the backend's copy.
func (s *SyncService) PullProfile(ctx context.Context) error {
	profile, err := s.client.GetProfile(ctx)
	if err != nil {
		return err
	}
	return s.feed.ReplaceProfile(ctx, profile)
}

// PushProfile uploads the local profile to the backend.
func (s *SyncService) PushProfile(ctx context.Context) error {
	profile, err := s.feed.Profile(ctx)
	if err != nil {
		return err
	}
	updated, err := s.client.UpdateProfile(ctx, profile)
	if err != nil {
		return err
	}
	return s.feed.ReplaceProfile(ctx, updated)
}

// Watch runs the background sync loops until ctx ends: the realtime change
// feed (each notification triggers an events refresh) and a periodic
// reachability probe.
func (s *SyncService) Watch(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.client.SubscribeEvents(ctx, func(ch remote.Change) {
			s.logger.Debug(ctx, "change notification", "type", ch.Type, "row", ch.RowID)
			if err := s.RefreshEvents(ctx); err != nil {
				s.logger.Warn(ctx, "failed to refresh events after change", "error", err)
			}
		})
	})

	g.Go(func() error {
		ticker := time.NewTicker(s.pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
				err := s.client.Ping(pingCtx)
				cancel()
				s.setOnline(ctx, err == nil)
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	return g.Wait()
}
