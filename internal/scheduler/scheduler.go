package scheduler

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateSchedule validates a 5-field cron schedule string.
func ValidateSchedule(schedule string) error {
	_, err := parser.Parse(schedule)
	return err
}

// GetNextRunTime returns when schedule next fires after now.
func GetNextRunTime(schedule string) (*time.Time, error) {
	sched, err := parser.Parse(schedule)
	if err != nil {
		return nil, err
	}
	next := sched.Next(time.Now())
	return &next, nil
}

// Job is a named unit of periodic work.
type Job struct {
	Name     string
	Schedule string
	Run      func()
}

type registeredJob struct {
	job     Job
	entryID cron.EntryID
}

// Scheduler runs registered jobs on their cron schedules. A job that is
// still running when its next tick arrives skips that tick.
type Scheduler struct {
	cron *cron.Cron

	mu         sync.RWMutex
	jobs       map[string]registeredJob
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewScheduler creates a stopped scheduler with no jobs.
func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		jobs: make(map[string]registeredJob),
	}
}

// Register adds a job. Names must be unique.
func (s *Scheduler) Register(job Job) error {
	if job.Name == "" {
		return fmt.Errorf("job name is required")
	}
	if job.Run == nil {
		return fmt.Errorf("job %s has no run function", job.Name)
	}
	if err := ValidateSchedule(job.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s' for job %s: %w", job.Schedule, job.Name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.Name]; exists {
		return fmt.Errorf("job %s is already registered", job.Name)
	}

	run := job.Run
	name := job.Name
	entryID, err := s.cron.AddFunc(job.Schedule, func() {
		log.Printf("Scheduler: running job %s", name)
		run()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", job.Name, err)
	}
	s.jobs[job.Name] = registeredJob{job: job, entryID: entryID}

	log.Printf("Scheduler: registered job %s with schedule '%s'", job.Name, job.Schedule)
	return nil
}

// Start begins firing jobs. It stops on its own when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true
	log.Printf("Scheduler: started with %d job(s)", len(s.jobs))

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()
}

// Stop stops firing jobs and waits for running jobs to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Printf("Scheduler: stopped")
}

// RunNow runs a registered job immediately on the calling goroutine.
func (s *Scheduler) RunNow(name string) error {
	s.mu.RLock()
	registered, ok := s.jobs[name]
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("job %s is not registered", name)
	}
	registered.job.Run()
	return nil
}

// IsRunning returns whether the scheduler is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Jobs returns the registered job names in alphabetical order.
func (s *Scheduler) Jobs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetNextRunTime returns when the named job fires next, or nil when the
// scheduler is stopped or the job is unknown.
func (s *Scheduler) GetNextRunTime(name string) *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	registered, ok := s.jobs[name]
	if !ok {
		return nil
	}
	entry := s.cron.Entry(registered.entryID)
	if !entry.Valid() {
		return nil
	}
	t := entry.Next
	return &t
}
