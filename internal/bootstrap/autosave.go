package bootstrap

import (
	"log/slog"

	"github.com/osse101/CraftQuest_Go/internal/config"
	"github.com/osse101/CraftQuest_Go/internal/repository"
	"github.com/osse101/CraftQuest_Go/internal/scheduler"
	"github.com/osse101/CraftQuest_Go/internal/worker"
)

// Autosave owns the scheduler and worker pool behind periodic saves
type Autosave struct {
	pool  *worker.Pool
	sched *scheduler.Scheduler
}

// Stop halts the ticker, then waits for a running save to finish
func (a *Autosave) Stop() {
	a.sched.Stop()
	a.pool.Stop()
}

// InitializeAutosave schedules periodic saves of every live session.
// It returns nil when AUTOSAVE_INTERVAL is zero or no save store is configured.
func InitializeAutosave(cfg *config.Config, store repository.SaveState, sessions worker.SessionSaver) *Autosave {
	if cfg.AutosaveInterval <= 0 {
		return nil
	}
	if store == nil {
		slog.Warn(LogMsgAutosaveNoStore)
		return nil
	}

	pool := worker.NewPool(worker.DefaultWorkers, worker.DefaultQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.AutosaveInterval, worker.NewAutosaveJob(sessions))

	slog.Info(LogMsgAutosaveEnabled, "interval", cfg.AutosaveInterval)
	return &Autosave{pool: pool, sched: sched}
}
