package logic

import (
	"context"
	"pachli/dal"
	"pachli/shared"
	"sync"
	"time"
)

// ICachePruner keeps the timeline cache of every account within the configured size.
type ICachePruner interface {
	Start()
	Stop()
	// PruneNow runs one round over all accounts.
	PruneNow(ctx context.Context) error
}

const prunerPanicSleepSec = 10

type cachePruner struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	metrics IMetrics
	muRun   sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewCachePruner(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo, metrics IMetrics) ICachePruner {
	return &cachePruner{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		metrics: metrics,
	}
}

func (cp *cachePruner) Start() {
	cp.muRun.Lock()
	defer cp.muRun.Unlock()
	if cp.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	cp.cancel = cancel
	cp.done = make(chan struct{})
	go cp.pruneLoop(ctx, cp.done)
}

func (cp *cachePruner) Stop() {
	cp.muRun.Lock()
	defer cp.muRun.Unlock()
	if cp.cancel == nil {
		return
	}
	cp.cancel()
	<-cp.done
	cp.cancel = nil
	cp.done = nil
}

func (cp *cachePruner) pruneLoop(ctx context.Context, done chan struct{}) {
	defer close(done)
	interval := time.Duration(cp.cfg.PruneIntervalMin) * time.Minute
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
		cp.pruneLoopInner(ctx)
	}
}

func (cp *cachePruner) pruneLoopInner(ctx context.Context) {

	defer func() {
		if r := recover(); r != nil {
			cp.logger.Errorf("Cache pruning round panicked: %v", r)
			select {
			case <-ctx.Done():
			case <-time.After(prunerPanicSleepSec * time.Second):
			}
		}
	}()

	if err := cp.PruneNow(ctx); err != nil && ctx.Err() == nil {
		cp.logger.Errorf("Cache pruning round failed: %v", err)
	}
}

func (cp *cachePruner) PruneNow(ctx context.Context) error {

	accts, err := cp.repo.GetAllAccounts()
	if err != nil {
		return err
	}

	total := 0
	for _, acct := range accts {
		if err = cp.repo.Cleanup(ctx, acct.Id, cp.cfg.TimelineKeepMax); err != nil {
			return err
		}
		var count int
		if count, err = cp.repo.GetStatusCount(acct.Id); err != nil {
			return err
		}
		cp.logger.Debugf("Pruned cache of account %d: %d statuses left", acct.Id, count)
		total += count
	}

	cp.metrics.CachePruned()
	cp.metrics.CachedStatusCount(total)
	return nil
}
