package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"

	"github.com/manav03panchal/stardeck/internal/logging"
)

// dayChangeMsg is sent at local midnight so the habits reset while the
// dashboard stays open.
type dayChangeMsg struct{}

// midnightSpec fires at 00:00:00 every day.
const midnightSpec = "0 0 0 * * *"

// Scheduler runs wall-clock jobs for a running dashboard.
type Scheduler struct {
	cron *cron.Cron
	send func(tea.Msg)
	log  *logging.ContextLogger
}

// NewScheduler creates a scheduler that delivers messages through send,
// usually (*tea.Program).Send.
func NewScheduler(send func(tea.Msg)) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		send: send,
		log:  logging.ForStore("dashboard").With(logging.KeyOperation, "scheduler"),
	}
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(midnightSpec, func() {
		s.log.Info("day changed, reloading")
		s.send(dayChangeMsg{})
	})
	if err != nil {
		return fmt.Errorf("failed to add midnight reload: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
