package task

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-group-sync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

// SyncJob periodically synchronizes every active group. It implements
// workers.Worker.
type SyncJob struct {
	task     GetGroupDataTask
	refresh  RefreshJoinedGroupsTask
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// SyncJobOption configures a [SyncJob].
type SyncJobOption func(*SyncJob)

// WithJoinedGroupsRefresh makes every run refresh the joined groups before
// synchronizing. A failed refresh is logged and the sync still runs.
func WithJoinedGroupsRefresh(refresh RefreshJoinedGroupsTask) SyncJobOption {
	return func(j *SyncJob) {
		j.refresh = refresh
	}
}

// NewSyncJob creates a SyncJob running task every interval. If interval is
// zero or negative it defaults to 5 minutes. The job is idle until Start is
// called.
func NewSyncJob(task GetGroupDataTask, interval time.Duration, log *logger.Logger, opts ...SyncJobOption) *SyncJob {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	if log == nil {
		log = logger.Nop()
	}

	j := &SyncJob{
		task:     task,
		interval: interval,
		logger:   log,
	}
	for _, opt := range opts {
		opt(j)
	}

	return j
}

// Start stops any previously running job, then launches a background
// goroutine that synchronizes on every tick. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *SyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the job is not running.
func (j *SyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *SyncJob) runOnce(ctx context.Context) {
	if j.refresh != nil {
		if err := j.refresh.Execute(ctx, RefreshJoinedGroupsParams{}); err != nil {
			j.logger.Warn().Err(err).Str("func", "*SyncJob.runOnce").Msg("joined groups refresh failed")
		}
	}

	if err := j.task.Execute(ctx, FetchAllActive()); err != nil {
		j.logger.Err(err).Str("func", "*SyncJob.runOnce").Msg("periodic group sync failed")
	}
}
