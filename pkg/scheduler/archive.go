package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/tomashops/bingobest/pkg/repositories/archive"
	economyRepo "github.com/tomashops/bingobest/pkg/repositories/economy"
)

// ArchiveScheduler periodically sweeps closed game sessions into the
// Elasticsearch archive
type ArchiveScheduler struct {
	scheduler *Scheduler
	economy   economyRepo.Repository
	archive   *archive.Repository
	interval  time.Duration
}

// NewArchiveScheduler creates a scheduler that archives closed sessions
// from the economy repository on the given interval
func NewArchiveScheduler(economy economyRepo.Repository, archiveRepo *archive.Repository, interval time.Duration) *ArchiveScheduler {
	s := &ArchiveScheduler{
		scheduler: NewScheduler(),
		economy:   economy,
		archive:   archiveRepo,
		interval:  interval,
	}

	s.scheduler.AddJob(&Job{
		Name:       "archive_closed_sessions",
		Interval:   interval,
		RunOnStart: true,
		Fn:         s.sweep,
	})

	return s
}

// Start begins the periodic archive sweep
func (s *ArchiveScheduler) Start(ctx context.Context) {
	s.scheduler.Start(ctx)
}

// Stop stops the archive sweep
func (s *ArchiveScheduler) Stop() {
	s.scheduler.Stop()
}

// sweep archives every closed session currently in the repository.
// Indexing is idempotent (doc ID = session ID), so re-archiving a
// session already in the index is harmless.
func (s *ArchiveScheduler) sweep(ctx context.Context) error {
	sessions, err := s.economy.ListSessions(ctx)
	if err != nil {
		return err
	}

	archived, err := s.archive.ArchiveClosedSessions(ctx, sessions)
	if err != nil {
		return err
	}

	if archived > 0 {
		log.Printf("[ECONOMY] archived %d closed sessions", archived)
	}

	return nil
}
