package logic

import (
	"fmt"
	"mood_parrot/dal"
	"mood_parrot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_mood_state_store.go -package mocks mood_parrot/logic IMoodStateStore

const avatarHashKeyPrefix = "avatar_hash_"

// IMoodStateStore remembers, per mood, the avatar hash Slack reported after the last successful upload.
type IMoodStateStore interface {
	Get(moodKey string) (hash string, found bool)
	Set(moodKey, hash string) error
}

type moodStateStore struct {
	logger shared.ILogger
	repo   dal.IRepo
}

func NewMoodStateStore(logger shared.ILogger, repo dal.IRepo) IMoodStateStore {
	return &moodStateStore{logger, repo}
}

func AvatarHashKey(moodKey string) string {
	return avatarHashKeyPrefix + moodKey
}

// Get reports a read failure as "not found": the caller then re-uploads, which is always safe.
func (ms *moodStateStore) Get(moodKey string) (string, bool) {
	hash, found, err := ms.repo.GetValue(AvatarHashKey(moodKey))
	if err != nil {
		ms.logger.Errorf("%v: reading hash for mood '%s': %v", ErrStore, moodKey, err)
		return "", false
	}
	return hash, found
}

func (ms *moodStateStore) Set(moodKey, hash string) error {
	if err := ms.repo.SetValue(AvatarHashKey(moodKey), hash); err != nil {
		return fmt.Errorf("%w: writing hash for mood '%s': %v", ErrStore, moodKey, err)
	}
	return nil
}
