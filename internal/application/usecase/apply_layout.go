package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/logging"
)

const defaultOffsetParallelism = 8

// ApplyInput is one layout pass to hand to the window system.
type ApplyInput struct {
	Workspace string
	Engine    string
	States    []entity.WindowState
}

// ApplyResult describes what a batch did.
type ApplyResult struct {
	// Applied is the number of windows in the batch sent to the OS.
	Applied int
	// Dropped lists windows left out because their frame offset was unavailable.
	Dropped []entity.WindowID
	// Changed counts batch entries that differ from the previous batch of the workspace.
	Changed int
	// Deferred is set when the pass was queued behind a batch in flight.
	Deferred bool
}

// ApplyLayoutUseCase turns layout passes into single OS batches.
//
// A pass requested while another batch is in flight, for instance from a
// window event fired by SetWindowPositions itself, is queued and applied
// once the current batch completes.
type ApplyLayoutUseCase struct {
	native      port.NativeWindowManager
	recorder    port.SnapshotRecorder
	parallelism int
	now         func() time.Time

	mu       sync.Mutex
	applying bool
	pending  []ApplyInput
	last     map[string]*entity.LayoutSnapshot
}

var _ port.WindowPositioner = (*ApplyLayoutUseCase)(nil)

// NewApplyLayoutUseCase creates the batch applier. recorder may be nil.
// parallelism bounds concurrent frame offset lookups; zero picks a default.
func NewApplyLayoutUseCase(native port.NativeWindowManager, recorder port.SnapshotRecorder, parallelism int) *ApplyLayoutUseCase {
	if parallelism <= 0 {
		parallelism = defaultOffsetParallelism
	}
	return &ApplyLayoutUseCase{
		native:      native,
		recorder:    recorder,
		parallelism: parallelism,
		now:         time.Now,
		last:        make(map[string]*entity.LayoutSnapshot),
	}
}

// ApplyWindowPositions implements port.WindowPositioner.
func (uc *ApplyLayoutUseCase) ApplyWindowPositions(ctx context.Context, workspace, engine string, states []entity.WindowState) error {
	_, err := uc.Execute(ctx, ApplyInput{Workspace: workspace, Engine: engine, States: states})
	return err
}

// Execute applies in, or queues it when a batch is already in flight.
// Queued passes are applied in order by the caller that owns the batch.
func (uc *ApplyLayoutUseCase) Execute(ctx context.Context, in ApplyInput) (*ApplyResult, error) {
	ctx = logging.WithComponent(ctx, "apply")
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	if uc.applying {
		uc.pending = append(uc.pending, in)
		uc.mu.Unlock()
		log.Debug().Str("workspace", in.Workspace).Msg("layout deferred behind batch in flight")
		return &ApplyResult{Deferred: true}, nil
	}
	uc.applying = true
	uc.mu.Unlock()

	result, err := uc.applyBatch(ctx, in)

	for {
		uc.mu.Lock()
		if len(uc.pending) == 0 {
			uc.applying = false
			uc.mu.Unlock()
			break
		}
		next := uc.pending[0]
		uc.pending = uc.pending[1:]
		uc.mu.Unlock()

		if _, nestedErr := uc.applyBatch(ctx, next); nestedErr != nil {
			log.Error().Err(nestedErr).Str("workspace", next.Workspace).Msg("deferred layout failed")
		}
	}

	return result, err
}

// Last returns the last batch applied for workspace.
func (uc *ApplyLayoutUseCase) Last(workspace string) (*entity.LayoutSnapshot, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s, ok := uc.last[workspace]
	return s, ok
}

// batchOrder puts minimized windows first and keeps emission order otherwise.
func batchOrder(states []entity.WindowState) []entity.WindowState {
	ordered := slices.Clone(states)
	slices.SortStableFunc(ordered, func(a, b entity.WindowState) int {
		return cmp.Compare(rank(a.Size), rank(b.Size))
	})
	return ordered
}

func rank(s entity.WindowSize) int {
	if s == entity.WindowSizeMinimized {
		return 0
	}
	return 1
}

func (uc *ApplyLayoutUseCase) applyBatch(ctx context.Context, in ApplyInput) (*ApplyResult, error) {
	log := logging.FromContext(ctx)
	ordered := batchOrder(in.States)

	offsets := make([]port.FrameOffset, len(ordered))
	found := make([]bool, len(ordered))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.parallelism)
	for i, s := range ordered {
		if s.Size == entity.WindowSizeMinimized {
			found[i] = true
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			off, err := uc.native.WindowOffset(gctx, s.Window)
			if err != nil {
				log.Warn().Err(err).Str("window", string(s.Window)).Msg("no frame offset, window left out of batch")
				return nil
			}
			offsets[i], found[i] = off, true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve frame offsets: %w", err)
	}

	result := &ApplyResult{}
	batch := make([]entity.WindowPosition, 0, len(ordered))
	for i, s := range ordered {
		if !found[i] {
			result.Dropped = append(result.Dropped, s.Window)
			continue
		}
		batch = append(batch, entity.WindowPosition{
			Window:    s.Window,
			Rectangle: withFrameOffset(s.Rectangle, offsets[i]),
			Size:      s.Size,
		})
	}

	if err := uc.native.SetWindowPositions(ctx, batch); err != nil {
		return nil, fmt.Errorf("set window positions for %q: %w", in.Workspace, err)
	}
	result.Applied = len(batch)

	snapshot := &entity.LayoutSnapshot{
		Workspace: in.Workspace,
		Engine:    in.Engine,
		Positions: batch,
		AppliedAt: uc.now(),
	}
	uc.mu.Lock()
	result.Changed = snapshot.ChangedSince(uc.last[in.Workspace])
	uc.last[in.Workspace] = snapshot
	uc.mu.Unlock()

	if uc.recorder != nil {
		uc.recorder.Record(ctx, snapshot)
	}

	log.Debug().
		Str("workspace", in.Workspace).
		Int("applied", result.Applied).
		Int("dropped", len(result.Dropped)).
		Int("changed", result.Changed).
		Msg("layout batch applied")
	return result, nil
}

func withFrameOffset(r entity.Rectangle[int], o port.FrameOffset) entity.Rectangle[int] {
	return entity.Rectangle[int]{
		X:      r.X + o.X,
		Y:      r.Y + o.Y,
		Width:  r.Width + o.Width,
		Height: r.Height + o.Height,
	}
}
