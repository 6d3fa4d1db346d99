package cron

import (
	"Minbar/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine            *cron.Cron
	engagementSyncJob *job.EngagementSyncJob
}

func NewCronManager(engagementSyncJob *job.EngagementSyncJob) *Manager {
	return &Manager{
		engine:            cron.New(cron.WithSeconds()),
		engagementSyncJob: engagementSyncJob,
	}
}

// RegisterJobs wires the scheduled jobs.
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.engagementSyncJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
