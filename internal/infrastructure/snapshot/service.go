// Package snapshot persists applied layout batches without slowing down
// the batches themselves.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/domain/repository"
	"github.com/bnema/dumbtile/internal/logging"
)

const (
	defaultInterval = 500 * time.Millisecond
	// maxBackoffShift caps the retry delay at interval << maxBackoffShift.
	maxBackoffShift = 6
)

// Service debounces snapshot writes. Only the latest batch of each workspace
// is written when the interval elapses without a new batch.
type Service struct {
	repo     repository.LayoutSnapshotRepository
	interval time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	pending  map[string]*entity.LayoutSnapshot
	failures int
	stopped  bool
	ctx      context.Context
	cancel   context.CancelFunc
}

var _ port.SnapshotRecorder = (*Service)(nil)

// NewService creates a new snapshot service.
func NewService(repo repository.LayoutSnapshotRepository, intervalMs int) *Service {
	interval := defaultInterval
	if intervalMs > 0 {
		interval = time.Duration(intervalMs) * time.Millisecond
	}
	return &Service{
		repo:     repo,
		interval: interval,
		pending:  make(map[string]*entity.LayoutSnapshot),
	}
}

// Start binds background writes to ctx.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// Record queues snapshot, replacing any unsaved snapshot of the same workspace.
func (s *Service) Record(ctx context.Context, snapshot *entity.LayoutSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[snapshot.Workspace] = snapshot
	s.arm(ctx, s.interval)
}

// arm schedules a flush after delay, replacing any scheduled one. Must be
// called with s.mu held.
func (s *Service) arm(ctx context.Context, delay time.Duration) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		bg := s.ctx
		s.mu.Unlock()
		if bg == nil {
			bg = ctx
		}
		if bg.Err() != nil {
			return
		}
		if err := s.Flush(bg); err != nil {
			logging.FromContext(bg).Error().Err(err).Msg("failed to save layout snapshots")
		}
	})
}

// retryDelay doubles the interval for every consecutive failed flush.
func (s *Service) retryDelay() time.Duration {
	return s.interval << min(max(s.failures-1, 0), maxBackoffShift)
}

// Pending returns how many workspaces have unsaved snapshots.
func (s *Service) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush writes every pending snapshot now. Snapshots that fail to save stay
// pending unless a newer one was recorded meanwhile, and a retry is
// scheduled with a growing delay until the service is stopped.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	batch := s.pending
	s.pending = make(map[string]*entity.LayoutSnapshot)
	s.mu.Unlock()

	var errs []error
	for workspace, snapshot := range batch {
		if err := s.repo.Save(ctx, snapshot); err != nil {
			errs = append(errs, fmt.Errorf("workspace %q: %w", workspace, err))
			s.mu.Lock()
			if _, newer := s.pending[workspace]; !newer {
				s.pending[workspace] = snapshot
			}
			s.mu.Unlock()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(errs) == 0 {
		s.failures = 0
		return nil
	}
	s.failures++
	if !s.stopped && s.timer == nil && len(s.pending) > 0 {
		delay := s.retryDelay()
		logging.FromContext(ctx).Debug().Dur("delay", delay).Int("failures", s.failures).Msg("snapshot save retry scheduled")
		s.arm(ctx, delay)
	}
	return errors.Join(errs...)
}

// Stop cancels background writes and saves what is pending.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	return s.Flush(ctx)
}
