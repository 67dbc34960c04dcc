package logic

import (
	"mood_parrot/dal"
	"mood_parrot/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_tick_history.go -package mocks mood_parrot/logic ITickHistory

type ITickHistory interface {
	Record(startedAt time.Time, outcome TickOutcome)
	Recent(limit int) ([]*dal.TickRecord, error)
}

type tickHistory struct {
	cfg    *shared.Config
	logger shared.ILogger
	repo   dal.IRepo
}

func NewTickHistory(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo) ITickHistory {
	return &tickHistory{cfg, logger, repo}
}

// Record stores the outcome and trims old rows. Failures are logged only: history never affects a tick.
func (th *tickHistory) Record(startedAt time.Time, outcome TickOutcome) {
	rec := dal.TickRecord{
		TickId:           outcome.TickId,
		StartedAt:        startedAt.UTC(),
		FinishedAt:       time.Now().UTC(),
		Outcome:          string(outcome.Kind),
		MoodKey:          outcome.MoodKey,
		AvatarHash:       outcome.NewHash,
		ImageFingerprint: outcome.ImageFingerprint,
	}
	if outcome.Err != nil {
		rec.Error = shared.TruncateWithEllipsis(shared.StripHtml(outcome.Err.Error()), shared.MaxLoggedTextLen)
	}
	if err := th.repo.AddTickRecord(&rec); err != nil {
		th.logger.Errorf("Failed to record tick %s: %v", outcome.TickId, err)
		return
	}
	if err := th.repo.PruneTickHistory(th.cfg.HistoryKeep); err != nil {
		th.logger.Errorf("Failed to prune tick history: %v", err)
	}
}

func (th *tickHistory) Recent(limit int) ([]*dal.TickRecord, error) {
	return th.repo.GetRecentTicks(limit)
}
