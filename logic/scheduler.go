package logic

import (
	"context"
	"fmt"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"mood_parrot/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_scheduler.go -package mocks mood_parrot/logic IScheduler

const schedulerStopTimeoutSec = 5

type IScheduler interface {
	NextRun() time.Time
}

type scheduler struct {
	cfg     *shared.Config
	logger  shared.ILogger
	syncer  IAvatarSyncer
	loc     *time.Location
	cron    *cron.Cron
	job     cron.Job
	entryId cron.EntryID
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewScheduler(
	cfg *shared.Config,
	logger shared.ILogger,
	lc fx.Lifecycle,
	syncer IAvatarSyncer,
) (IScheduler, error) {

	loc := time.Local
	if cfg.TimeZone != "" {
		var err error
		if loc, err = time.LoadLocation(cfg.TimeZone); err != nil {
			return nil, fmt.Errorf("invalid time zone '%s': %w", cfg.TimeZone, err)
		}
	}

	cronLogger := cron.PrintfLogger(logger)
	sch := scheduler{
		cfg:    cfg,
		logger: logger,
		syncer: syncer,
		loc:    loc,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLogger),
		),
	}
	// Scheduled and start-up ticks both go through the same panic recovery
	sch.job = cron.NewChain(cron.Recover(cronLogger)).Then(cron.FuncJob(sch.tick))
	sch.ctx, sch.cancel = context.WithCancel(context.Background())

	var err error
	if sch.entryId, err = sch.cron.AddJob(cfg.Schedule, sch.job); err != nil {
		sch.cancel()
		return nil, fmt.Errorf("invalid schedule '%s': %w", cfg.Schedule, err)
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			sch.cron.Start()
			logger.Printf("Scheduler started with '%s' (%s); next run at %v", cfg.Schedule, loc, sch.NextRun())
			if cfg.RunOnStart {
				go sch.job.Run()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sch.cancel()
			stopCtx := sch.cron.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			case <-time.After(schedulerStopTimeoutSec * time.Second):
				logger.Warnf("Scheduler stop timed out waiting for running tick")
			}
			logger.Printf("Scheduler stopped")
			return nil
		},
	})

	return &sch, nil
}

func (sch *scheduler) tick() {
	outcome := sch.syncer.RunTick(sch.ctx)
	sch.logger.Infof("Tick finished: %s", outcome)
}

// NextRun is computed from the schedule, so it is valid before the cron loop has started.
func (sch *scheduler) NextRun() time.Time {
	entry := sch.cron.Entry(sch.entryId)
	if entry.Schedule == nil {
		return time.Time{}
	}
	return entry.Schedule.Next(time.Now().In(sch.loc))
}
