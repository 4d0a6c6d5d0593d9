package sqlite

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/domain/repository"
)

// LazySnapshotRepository wraps a snapshot repository with lazy database initialization.
type LazySnapshotRepository struct {
	provider port.DatabaseProvider
	repo     repository.LayoutSnapshotRepository
	once     sync.Once
	initErr  error
}

// NewLazySnapshotRepository creates a lazy-loading snapshot repository.
func NewLazySnapshotRepository(provider port.DatabaseProvider) repository.LayoutSnapshotRepository {
	return &LazySnapshotRepository{provider: provider}
}

func (r *LazySnapshotRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewSnapshotRepository(db)
	})
	return r.initErr
}

func (r *LazySnapshotRepository) Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, snapshot)
}

func (r *LazySnapshotRepository) Latest(ctx context.Context, workspace string) (*entity.LayoutSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Latest(ctx, workspace)
}

func (r *LazySnapshotRepository) History(ctx context.Context, workspace string, limit int) ([]*entity.LayoutSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.History(ctx, workspace, limit)
}

func (r *LazySnapshotRepository) Delete(ctx context.Context, workspace string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, workspace)
}

func (r *LazySnapshotRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.DeleteBefore(ctx, cutoff)
}
