package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/domain/repository"
	"github.com/bnema/dumbtile/internal/logging"
)

const (
	insertSnapshot = `INSERT INTO layout_snapshots (workspace, engine, applied_at) VALUES (?, ?, ?)`
	insertPosition = `INSERT INTO snapshot_positions (snapshot_id, seq, window_id, x, y, width, height, size)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	selectSnapshots = `SELECT id, workspace, engine, applied_at FROM layout_snapshots
WHERE workspace = ? ORDER BY applied_at DESC, id DESC LIMIT ?`
	selectPositions = `SELECT window_id, x, y, width, height, size FROM snapshot_positions
WHERE snapshot_id = ? ORDER BY seq`
	deleteWorkspace = `DELETE FROM layout_snapshots WHERE workspace = ?`
	deleteBefore    = `DELETE FROM layout_snapshots WHERE applied_at < ?`
)

type snapshotRepo struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SQLite-backed layout snapshot repository.
func NewSnapshotRepository(db *sql.DB) repository.LayoutSnapshotRepository {
	return &snapshotRepo{db: db}
}

func (r *snapshotRepo) Save(ctx context.Context, snapshot *entity.LayoutSnapshot) (err error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("workspace", snapshot.Workspace).
		Int("windows", len(snapshot.Positions)).
		Msg("saving layout snapshot")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, insertSnapshot, snapshot.Workspace, snapshot.Engine, snapshot.AppliedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("snapshot id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertPosition)
	if err != nil {
		return fmt.Errorf("prepare position insert: %w", err)
	}
	defer stmt.Close()

	for seq, p := range snapshot.Positions {
		rect := p.Rectangle
		if _, err = stmt.ExecContext(ctx, id, seq, string(p.Window), rect.X, rect.Y, rect.Width, rect.Height, int(p.Size)); err != nil {
			return fmt.Errorf("insert position %d: %w", seq, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, workspace string) (*entity.LayoutSnapshot, error) {
	snapshots, err := r.History(ctx, workspace, 1)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, nil
	}
	return snapshots[0], nil
}

func (r *snapshotRepo) History(ctx context.Context, workspace string, limit int) ([]*entity.LayoutSnapshot, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, selectSnapshots, workspace, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}

	type header struct {
		id       int64
		snapshot *entity.LayoutSnapshot
	}
	var headers []header
	for rows.Next() {
		var (
			h         header
			appliedAt int64
		)
		h.snapshot = &entity.LayoutSnapshot{}
		if err := rows.Scan(&h.id, &h.snapshot.Workspace, &h.snapshot.Engine, &appliedAt); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		h.snapshot.AppliedAt = time.Unix(0, appliedAt).UTC()
		headers = append(headers, h)
	}
	if err := errors.Join(rows.Err(), rows.Close()); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}

	out := make([]*entity.LayoutSnapshot, 0, len(headers))
	for _, h := range headers {
		positions, err := r.positions(ctx, h.id)
		if err != nil {
			return nil, err
		}
		h.snapshot.Positions = positions
		out = append(out, h.snapshot)
	}
	return out, nil
}

func (r *snapshotRepo) positions(ctx context.Context, snapshotID int64) ([]entity.WindowPosition, error) {
	rows, err := r.db.QueryContext(ctx, selectPositions, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("query positions: %w", err)
	}
	defer rows.Close()

	var positions []entity.WindowPosition
	for rows.Next() {
		var (
			p      entity.WindowPosition
			window string
			size   int
		)
		if err := rows.Scan(&window, &p.Rectangle.X, &p.Rectangle.Y, &p.Rectangle.Width, &p.Rectangle.Height, &size); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		p.Window = entity.WindowID(window)
		p.Size = entity.WindowSize(size)
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func (r *snapshotRepo) Delete(ctx context.Context, workspace string) error {
	if _, err := r.db.ExecContext(ctx, deleteWorkspace, workspace); err != nil {
		return fmt.Errorf("delete snapshots of %q: %w", workspace, err)
	}
	return nil
}

func (r *snapshotRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteBefore, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("delete snapshots before %s: %w", cutoff, err)
	}
	return res.RowsAffected()
}
