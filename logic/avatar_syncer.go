package logic

import (
	"context"
	"github.com/google/uuid"
	"mood_parrot/shared"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_avatar_syncer.go -package mocks mood_parrot/logic IAvatarSyncer

type IAvatarSyncer interface {
	RunTick(ctx context.Context) TickOutcome
}

type avatarSyncer struct {
	logger  shared.ILogger
	moods   *MoodTable
	slack   ISlackClient
	images  IImageLoader
	store   IMoodStateStore
	history ITickHistory
	metrics IMetrics
	muTick  sync.Mutex
}

func NewAvatarSyncer(
	logger shared.ILogger,
	moods *MoodTable,
	slack ISlackClient,
	images IImageLoader,
	store IMoodStateStore,
	history ITickHistory,
	metrics IMetrics,
) IAvatarSyncer {
	return &avatarSyncer{
		logger:  logger,
		moods:   moods,
		slack:   slack,
		images:  images,
		store:   store,
		history: history,
		metrics: metrics,
	}
}

// RunTick fetches the status, resolves the mood and uploads that mood's avatar unless Slack already shows it.
// It never fails: every problem ends up logged and reflected in the outcome.
func (as *avatarSyncer) RunTick(ctx context.Context) TickOutcome {

	if !as.muTick.TryLock() {
		as.logger.Warnf("Previous tick is still running; skipping")
		as.metrics.TickFinished(OkBusy)
		return TickOutcome{Kind: OkBusy}
	}
	defer as.muTick.Unlock()

	startedAt := time.Now()
	outcome := as.sync(ctx, uuid.NewString())
	as.history.Record(startedAt, outcome)
	as.metrics.TickFinished(outcome.Kind)
	return outcome
}

func (as *avatarSyncer) sync(ctx context.Context, tickId string) TickOutcome {

	res := TickOutcome{TickId: tickId}

	status, err := as.slack.GetProfile(ctx)
	if err != nil {
		as.logger.Errorf("Tick %s: %v", tickId, err)
		res.Kind = OkFetchFailed
		res.Err = err
		return res
	}

	res.MoodKey = as.moods.Resolve(status.StatusText, status.StatusEmoji)
	as.metrics.CurrentMood(res.MoodKey)
	as.logger.Debugf("Tick %s: status '%s' %s resolves to mood '%s'", tickId,
		shared.TruncateWithEllipsis(status.StatusText, shared.MaxLoggedTextLen), status.StatusEmoji, res.MoodKey)

	// Absent never equals anything, not even an empty avatar hash
	lastHash, found := as.store.Get(res.MoodKey)
	if found && lastHash == status.AvatarHash {
		as.logger.Infof("Tick %s: avatar for mood '%s' is current", tickId, res.MoodKey)
		res.Kind = OkUnchanged
		return res
	}

	entry, _ := as.moods.Entry(res.MoodKey)
	image, err := as.images.Load(entry.ImagePath)
	if err != nil {
		as.logger.Errorf("Tick %s: mood '%s': %v", tickId, res.MoodKey, err)
		res.Kind = OkSkippedNoImage
		res.Err = err
		return res
	}
	res.ImageFingerprint = ImageFingerprint(image)

	as.logger.Infof("Tick %s: uploading %s (%s) for mood '%s'; Slack has %s, last set %s",
		tickId, entry.ImagePath, res.ImageFingerprint, res.MoodKey, status.AvatarHash, lastHash)
	newHash, err := as.slack.SetPhoto(ctx, image)
	if err != nil {
		as.logger.Errorf("Tick %s: mood '%s': %v", tickId, res.MoodKey, err)
		res.Kind = OkUploadFailed
		res.Err = err
		return res
	}
	as.metrics.AvatarUploaded()

	// Slack's echoed hash is what the next profile read will report, so that is what we keep
	res.Kind = OkUpdated
	res.NewHash = newHash
	if err = as.store.Set(res.MoodKey, newHash); err != nil {
		// The avatar did change; the next tick will simply upload it again
		as.logger.Errorf("Tick %s: %v", tickId, err)
		res.Err = err
	}
	as.logger.Infof("Tick %s: avatar updated for mood '%s': %s", tickId, res.MoodKey, newHash)
	return res
}
