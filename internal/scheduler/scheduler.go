// Package scheduler runs recurring jobs, such as the daily broadcast, from
// standard 5-field cron expressions.
package scheduler

import (
	"github.com/robfig/cron/v3"
)

// Scheduler wraps a running cron instance.
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler returns a started scheduler. Panicking jobs are recovered and
// logged rather than taking the process down.
func NewScheduler() *Scheduler {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	c := cron.New(cron.WithParser(parser), cron.WithChain(cron.Recover(cron.DefaultLogger)))
	c.Start()
	return &Scheduler{cron: c}
}

// AddJob registers task under the cron expression expr, erroring on an
// expression the 5-field parser rejects.
func (s *Scheduler) AddJob(expr string, task func()) error {
	_, err := s.cron.AddFunc(expr, task)
	return err
}

// Stop halts scheduling; jobs already running finish on their own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
