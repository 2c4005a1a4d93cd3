// Package syncer mirrors target data from the store into local builder directories.
package syncer

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Job pairs a builder with the store directory its sync step copies from
// and the local directory it mirrors into.
type Job struct {
	Builder     domain.Builder
	Source      string
	Destination string
}

// Options controls a sync run.
type Options struct {
	// Root is the local directory the sync steps run in.
	Root string
	// Force runs the sync step even when the source tree is unchanged.
	Force bool
	// Jobs bounds the number of concurrent sync steps. Values below 1 mean 1.
	Jobs int
}

// Syncer runs builder sync steps, skipping builders whose source tree and local
// mirror have both not changed since their last successful sync.
type Syncer struct {
	executor ports.Executor
	hasher   ports.Hasher
	store    ports.SyncStore
	logger   ports.Logger
	now      func() time.Time
}

// New creates a new Syncer.
func New(executor ports.Executor, hasher ports.Hasher, store ports.SyncStore, logger ports.Logger) *Syncer {
	return &Syncer{
		executor: executor,
		hasher:   hasher,
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

// Run syncs every job and returns one result per job, in job order.
// A failing job does not stop the others; the returned error reports how many failed.
func (s *Syncer) Run(ctx context.Context, jobs []Job, opts Options) ([]domain.StepResult, error) {
	limit := max(opts.Jobs, 1)

	// Each goroutine writes only its own slot.
	results := make([]domain.StepResult, len(jobs))

	g := errgroup.Group{}
	g.SetLimit(limit)

	for i := range jobs {
		job := jobs[i]
		g.Go(func() error {
			results[i] = s.syncOne(ctx, &job, opts)
			return nil
		})
	}
	_ = g.Wait()

	var failed []string
	for _, res := range results {
		if res.Status.IsFailure() {
			failed = append(failed, res.Builder)
		}
	}
	if len(failed) > 0 {
		return results, zerr.With(zerr.With(domain.ErrSyncFailed, "failed", len(failed)), "builders", failed)
	}
	return results, nil
}

func (s *Syncer) syncOne(ctx context.Context, job *Job, opts Options) domain.StepResult {
	name := job.Builder.Name
	step, ok := job.Builder.SyncStep()
	if !ok {
		s.logger.Warn(fmt.Sprintf("%s: no sync step, skipping", name))
		return domain.StepResult{Builder: name, Status: domain.StepStatusSkipped}
	}

	res := domain.StepResult{Builder: name, Step: step.Name}

	if err := ctx.Err(); err != nil {
		res.Status = domain.StepStatusFailed
		res.Err = err
		return res
	}

	hash, err := s.hasher.ComputeTreeHash(job.Source)
	if err != nil {
		res.Status = domain.StepStatusFailed
		res.Err = zerr.With(err, "builder", name)
		s.logger.Error(res.Err)
		return res
	}

	if !opts.Force && s.upToDate(opts.Root, job, hash) {
		s.logger.Info(fmt.Sprintf("%s: source and mirror unchanged, skipping", name))
		res.Status = domain.StepStatusSkipped
		return res
	}

	start := s.now()
	err = s.executor.Execute(ctx, &step, opts.Root)
	res.Duration = s.now().Sub(start)
	if err != nil {
		res.Status = domain.StatusFromError(err)
		res.Err = zerr.With(err, "builder", name)
		s.logger.Error(res.Err)
		return res
	}

	destHash, err := s.hasher.ComputeTreeHash(job.Destination)
	if err != nil {
		res.Status = domain.StepStatusFailed
		res.Err = zerr.With(err, "builder", name)
		s.logger.Error(res.Err)
		return res
	}

	record := domain.SyncRecord{
		BuilderName:     name,
		SourceHash:      hash,
		DestinationHash: destHash,
		Timestamp:       s.now(),
	}
	if err := s.store.Put(opts.Root, record); err != nil {
		res.Status = domain.StepStatusFailed
		res.Err = zerr.With(err, "builder", name)
		s.logger.Error(res.Err)
		return res
	}

	res.Status = domain.StepStatusPassed
	s.logger.Success(fmt.Sprintf("%s: synced", name))
	return res
}

// upToDate reports whether the stored record matches the source hash and the
// local mirror still hashes to what the last sync produced.
// An unreadable record or a missing mirror counts as stale.
func (s *Syncer) upToDate(root string, job *Job, hash string) bool {
	name := job.Builder.Name
	record, err := s.store.Get(root, name)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("%s: ignoring unreadable sync record: %v", name, err))
		return false
	}
	if record == nil || record.SourceHash != hash || record.DestinationHash == "" {
		return false
	}

	destHash, err := s.hasher.ComputeTreeHash(job.Destination)
	if err != nil {
		s.logger.Info(fmt.Sprintf("%s: local mirror unreadable, syncing again", name))
		return false
	}
	return destHash == record.DestinationHash
}
