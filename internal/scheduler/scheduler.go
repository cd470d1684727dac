// Package scheduler holds one-shot reminder jobs in memory and fires
// them when their wall-clock run time arrives. Jobs are never persisted,
// retried, or cancelled; a process restart loses everything scheduled.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SendFunc executes a due job. Failures are logged by the driver and the
// job stays discarded.
type SendFunc func(recipient, subject, body string) error

// Job is a snapshot of everything needed to send the reminder. The
// scheduler is the sole owner of a job after registration.
type Job struct {
	ID        string
	RunAt     time.Time
	Recipient string
	Subject   string
	Body      string
}

type Scheduler struct {
	send SendFunc
	tick time.Duration

	mu   sync.Mutex
	jobs map[string]*Job
}

func New(send SendFunc, tick time.Duration) *Scheduler {
	return &Scheduler{
		send: send,
		tick: tick,
		jobs: make(map[string]*Job),
	}
}

// Schedule registers a job to fire at or after runAt and returns its
// handle. It never blocks on I/O and accepts run times already in the
// past; such jobs become due at the next tick.
func (s *Scheduler) Schedule(runAt time.Time, recipient, subject, body string) string {
	job := &Job{
		ID:        uuid.New().String(),
		RunAt:     runAt,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	}

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"job_id":    job.ID,
		"run_at":    job.RunAt.Format(time.RFC3339),
		"recipient": job.Recipient,
	}).Info("Reminder job scheduled")

	return job.ID
}

// Pending reports the number of jobs not yet due.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Start runs the driver loop until the context is cancelled. It is meant
// to be started once, at process initialization, on its own goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	logrus.Info("Reminder scheduler started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Reminder scheduler stopped")
			return
		case <-ticker.C:
			s.runDue(time.Now())
		}
	}
}

// runDue removes every due job from the registry, then executes each
// exactly once. Removal happens before execution so a job can never fire
// twice, whatever the send outcome.
func (s *Scheduler) runDue(now time.Time) {
	for _, job := range s.popDue(now) {
		if err := s.send(job.Recipient, job.Subject, job.Body); err != nil {
			logrus.WithFields(logrus.Fields{
				"job_id":    job.ID,
				"recipient": job.Recipient,
			}).Errorf("Reminder job failed: %v", err)
			continue
		}

		logrus.WithField("job_id", job.ID).Info("Reminder job executed")
	}
}

func (s *Scheduler) popDue(now time.Time) []*Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []*Job
	for id, job := range s.jobs {
		if !job.RunAt.After(now) {
			due = append(due, job)
			delete(s.jobs, id)
		}
	}
	return due
}
