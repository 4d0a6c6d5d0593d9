package repository

import (
	"context"
	"time"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

// LayoutSnapshotRepository persists the batches applied per workspace.
type LayoutSnapshotRepository interface {
	Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error

	// Latest returns the most recent snapshot of workspace, or nil when there is none.
	Latest(ctx context.Context, workspace string) (*entity.LayoutSnapshot, error)

	// History returns up to limit snapshots of workspace, newest first.
	History(ctx context.Context, workspace string, limit int) ([]*entity.LayoutSnapshot, error)

	// Delete removes every snapshot of workspace.
	Delete(ctx context.Context, workspace string) error

	// DeleteBefore removes snapshots applied before cutoff.
	// Returns number of deleted snapshots.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
