package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/cyclehub/inventoryman/internal/config"
	"github.com/cyclehub/inventoryman/internal/repository/sheets"
	"github.com/cyclehub/inventoryman/internal/service/reporting"
)

// Scheduler runs the daily sales export into the bookkeeping spreadsheet.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	exporter     sheets.Exporter
	cfg          config.ExportConfig
	location     *time.Location
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. The cron runs in the
// configured timezone so "end of day" means the shop's end of day.
func NewScheduler(cfg config.ExportConfig, reportingSvc *reporting.Service, exporter sheets.Exporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(location)),
		reportingSvc: reportingSvc,
		exporter:     exporter,
		cfg:          cfg,
		location:     location,
		logger:       logger,
	}
}

// Start schedules the daily export and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.exportDailySales); err != nil {
		s.logger.Error("failed to schedule daily sales export", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) exportDailySales() {
	s.logger.Info("exporting daily sales snapshot")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snapshot, err := s.reportingSvc.DailySnapshot(ctx, time.Now().In(s.location))
	if err != nil {
		s.logger.Error("failed to compute daily snapshot", zap.Error(err))
		return
	}

	if err := s.exporter.AppendDailySummary(ctx, *snapshot); err != nil {
		s.logger.Error("failed to export daily snapshot", zap.Error(err))
		return
	}

	s.logger.Info("daily snapshot exported",
		zap.String("date", snapshot.Date),
		zap.Int("count", snapshot.Count),
		zap.Float64("amount", snapshot.Amount))
}
