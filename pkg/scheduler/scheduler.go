package scheduler

import (
	"context"
	"log"
	"sync"
	"time"
)

// Job represents a periodic maintenance job
type Job struct {
	Name       string
	Interval   time.Duration
	RunOnStart bool
	Fn         func(context.Context) error
}

// Scheduler runs maintenance jobs on their intervals until stopped
type Scheduler struct {
	jobs    []*Job
	running bool
	mutex   sync.Mutex
	cancel  context.CancelFunc
}

// NewScheduler creates a new scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		jobs: make([]*Job, 0),
	}
}

// AddJob registers a job with the scheduler
func (s *Scheduler) AddJob(job *Job) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.jobs = append(s.jobs, job)
}

// Start launches all registered jobs
func (s *Scheduler) Start(ctx context.Context) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true

	for _, job := range s.jobs {
		go s.runJob(ctx, job)
	}

	log.Printf("Scheduler started with %d jobs", len(s.jobs))
}

// Stop stops all running jobs
func (s *Scheduler) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.running {
		return
	}

	s.cancel()
	s.running = false
	log.Println("Scheduler stopped")
}

// runJob runs a job at its interval until the context is cancelled
func (s *Scheduler) runJob(ctx context.Context, job *Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	if job.RunOnStart {
		if err := job.Fn(ctx); err != nil {
			log.Printf("Error running job %s: %v", job.Name, err)
		}
	}

	for {
		select {
		case <-ticker.C:
			if err := job.Fn(ctx); err != nil {
				log.Printf("Error running job %s: %v", job.Name, err)
			}
		case <-ctx.Done():
			log.Printf("Job %s stopped", job.Name)
			return
		}
	}
}
