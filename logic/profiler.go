package logic

import (
	"context"
	"fmt"
	"os"
	"pachli/shared"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

const profilerStartDelay = 10 * time.Second
const profilerInterval = 60 * time.Second

// IProfiler periodically dumps goroutine stacks into the configured directory.
type IProfiler interface {
	Start()
	Stop()
}

type profiler struct {
	logger     shared.ILogger
	profileDir string
	keepDays   int
	muRun      sync.Mutex
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewProfiler(cfg *shared.Config, logger shared.ILogger) IProfiler {
	return &profiler{
		logger:     logger,
		profileDir: cfg.ProfileDir,
		keepDays:   cfg.ProfileKeepDays,
	}
}

func (prof *profiler) Start() {
	prof.muRun.Lock()
	defer prof.muRun.Unlock()
	if prof.profileDir == "" || prof.cancel != nil {
		return
	}
	if err := os.MkdirAll(prof.profileDir, 0755); err != nil {
		prof.logger.Errorf("Cannot create profile directory %s: %v", prof.profileDir, err)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	prof.cancel = cancel
	prof.done = make(chan struct{})
	go prof.profilerLoop(ctx, prof.done)
}

func (prof *profiler) Stop() {
	prof.muRun.Lock()
	defer prof.muRun.Unlock()
	if prof.cancel == nil {
		return
	}
	prof.cancel()
	<-prof.done
	prof.cancel = nil
	prof.done = nil
}

func saveProfile(profileDir string, now time.Time) error {
	fname := fmt.Sprintf("%v.txt", now.Format("2006-01-02!15-04-05"))
	f, err := os.Create(filepath.Join(profileDir, fname))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = fmt.Fprintf(f, "Goroutine count: %d\n\n", runtime.NumGoroutine()); err != nil {
		return err
	}
	return pprof.Lookup("goroutine").WriteTo(f, 2)
}

func purgeOld(profileDir string, cutoff time.Time) error {
	return filepath.Walk(profileDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && info.ModTime().Before(cutoff) {
			return os.Remove(path)
		}
		return nil
	})
}

func (prof *profiler) saveProfileAndPurgeOld() {
	now := time.Now()
	if err := saveProfile(prof.profileDir, now); err != nil {
		prof.logger.Warnf("Failed to save goroutine profile: %v", err)
	}
	if err := purgeOld(prof.profileDir, now.AddDate(0, 0, -prof.keepDays)); err != nil {
		prof.logger.Warnf("Failed to purge old profiles: %v", err)
	}
}

func (prof *profiler) profilerLoop(ctx context.Context, done chan struct{}) {
	defer close(done)
	wait := profilerStartDelay
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
			prof.saveProfileAndPurgeOld()
			wait = profilerInterval
		}
	}
}
