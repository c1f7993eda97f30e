package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/diamond-stats/internal/platform/id"
	"github.com/riskibarqy/diamond-stats/internal/platform/logging"
)

type BoardStatus string

const (
	BoardStatusIdle    BoardStatus = "idle"
	BoardStatusLoading BoardStatus = "loading"
	BoardStatusReady   BoardStatus = "ready"
	BoardStatusError   BoardStatus = "error"
)

type BoardSelection struct {
	Season int
	Phase  string
	Stat   string
	Limit  int
}

type BoardSnapshot struct {
	Selection  BoardSelection
	Generation uint64
	Status     BoardStatus
	Refreshing bool
	List       LeaderList
	Error      string
	RefreshID  string
	UpdatedAt  time.Time
}

type LeaderBoardConfig struct {
	Workers        int
	RefreshTimeout time.Duration
}

var ErrBoardClosed = errors.New("leader board is closed")

// LeaderBoard holds the leaders view for the current selection. Every
// Select starts a new generation; a refresh result is applied only when
// its generation is still current, so a slow response for an old
// selection can never overwrite a newer one.
//
// Select and Refresh never wait for a worker. They park the request in a
// single pending slot that the dispatcher hands to the pool, so while all
// workers are busy only the newest request stays queued.
type LeaderBoard struct {
	leaders        *LeaderService
	pool           *ants.Pool
	ids            id.Generator
	logger         *logging.Logger
	refreshTimeout time.Duration
	now            func() time.Time

	mu         sync.RWMutex
	generation uint64
	current    BoardSnapshot
	pending    *boardRequest
	wake       chan struct{}

	stopOnce sync.Once
	stop     chan struct{}
	loops    sync.WaitGroup

	onCommit func(generation uint64, applied bool)
}

func NewLeaderBoard(leaderSvc *LeaderService, ids id.Generator, cfg LeaderBoardConfig, logger *logging.Logger) (*LeaderBoard, error) {
	if leaderSvc == nil {
		return nil, fmt.Errorf("%w: leader service is required", ErrInvalidInput)
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 2
	}
	timeout := cfg.RefreshTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create board worker pool: %w", err)
	}

	b := &LeaderBoard{
		leaders:        leaderSvc,
		pool:           pool,
		ids:            ids,
		logger:         logger,
		refreshTimeout: timeout,
		now:            time.Now,
		current:        BoardSnapshot{Status: BoardStatusIdle},
		wake:           make(chan struct{}, 1),
		stop:           make(chan struct{}),
	}
	b.loops.Add(1)
	go b.dispatch()
	return b, nil
}

type boardRequest struct {
	ctx        context.Context
	generation uint64
	selection  BoardSelection
}

// Select switches the board to sel and schedules a fetch. The returned
// snapshot is in the loading state.
func (b *LeaderBoard) Select(ctx context.Context, sel BoardSelection) (BoardSnapshot, error) {
	query, err := b.leaders.normalizeQuery(LeaderQuery(sel))
	if err != nil {
		return BoardSnapshot{}, err
	}
	sel = BoardSelection(query)

	b.mu.Lock()
	b.generation++
	gen := b.generation
	b.current = BoardSnapshot{
		Selection:  sel,
		Generation: gen,
		Status:     BoardStatusLoading,
		Refreshing: true,
		UpdatedAt:  b.now().UTC(),
	}
	snapshot := b.current
	b.mu.Unlock()

	if err := b.schedule(ctx, gen, sel); err != nil {
		b.commit(gen, "", LeaderList{}, err)
		return b.Snapshot(), err
	}
	return snapshot, nil
}

// Refresh re-fetches the current selection without leaving the ready state.
// It is a no-op before the first Select.
func (b *LeaderBoard) Refresh(ctx context.Context) error {
	b.mu.Lock()
	if b.current.Status == BoardStatusIdle {
		b.mu.Unlock()
		return nil
	}
	gen := b.generation
	sel := b.current.Selection
	b.current.Refreshing = true
	b.mu.Unlock()

	return b.schedule(ctx, gen, sel)
}

func (b *LeaderBoard) Snapshot() BoardSnapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

// Start refreshes the current selection every interval until Close.
func (b *LeaderBoard) Start(interval time.Duration) {
	if interval <= 0 {
		return
	}
	b.loops.Add(1)
	go func() {
		defer b.loops.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-b.stop:
				return
			case <-ticker.C:
				if err := b.Refresh(context.Background()); err != nil {
					b.logger.Warn("scheduled board refresh failed", "error", err)
				}
			}
		}
	}()
}

// Close stops the scheduler and the dispatcher. Refreshes already running
// finish on their own; their results are still committed.
func (b *LeaderBoard) Close() {
	b.stopOnce.Do(func() {
		close(b.stop)
		// Release wakes a dispatcher blocked in Submit.
		b.pool.Release()
		b.loops.Wait()
	})
}

func (b *LeaderBoard) schedule(ctx context.Context, gen uint64, sel BoardSelection) error {
	select {
	case <-b.stop:
		return ErrBoardClosed
	default:
	}

	b.mu.Lock()
	if b.pending != nil {
		b.logger.Debug("replacing queued board refresh", "queued_generation", b.pending.generation, "generation", gen)
	}
	b.pending = &boardRequest{ctx: context.WithoutCancel(ctx), generation: gen, selection: sel}
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
	return nil
}

func (b *LeaderBoard) dispatch() {
	defer b.loops.Done()
	for {
		select {
		case <-b.stop:
			return
		case <-b.wake:
		}

		b.mu.Lock()
		req := b.pending
		b.pending = nil
		stale := req != nil && req.generation != b.generation
		b.mu.Unlock()
		if req == nil || stale {
			continue
		}

		if err := b.submit(req); err != nil {
			if errors.Is(err, ants.ErrPoolClosed) {
				return
			}
			b.commit(req.generation, "", LeaderList{}, err)
		}
	}
}

// submit blocks until a worker is free.
func (b *LeaderBoard) submit(req *boardRequest) error {
	refreshID, err := b.ids.NewID()
	if err != nil {
		return fmt.Errorf("generate refresh id: %w", err)
	}

	err = b.pool.Submit(func() {
		runCtx, cancel := context.WithTimeout(req.ctx, b.refreshTimeout)
		defer cancel()

		list, listErr := b.leaders.List(runCtx, LeaderQuery(req.selection))
		b.commit(req.generation, refreshID, list, listErr)
	})
	if err != nil {
		return fmt.Errorf("submit board refresh: %w", err)
	}
	return nil
}

func (b *LeaderBoard) commit(gen uint64, refreshID string, list LeaderList, err error) {
	b.mu.Lock()
	applied := gen == b.generation
	if applied {
		b.current.Refreshing = false
		b.current.RefreshID = refreshID
		b.current.UpdatedAt = b.now().UTC()
		if err != nil {
			b.current.Status = BoardStatusError
			b.current.Error = err.Error()
			b.current.List = LeaderList{}
		} else {
			b.current.Status = BoardStatusReady
			b.current.Error = ""
			b.current.List = list
		}
	}
	hook := b.onCommit
	b.mu.Unlock()

	if !applied {
		b.logger.Debug("discarding stale board refresh", "generation", gen, "refresh_id", refreshID)
	} else if err != nil {
		b.logger.Warn("board refresh failed", "generation", gen, "refresh_id", refreshID, "error", err)
	}
	if hook != nil {
		hook(gen, applied)
	}
}
