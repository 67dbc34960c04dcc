package logic_test

import (
	"github.com/charmbracelet/log"
	"go.uber.org/mock/gomock"
	"io"
	"mood_parrot/logic"
	"mood_parrot/mocks"
	"mood_parrot/shared"
)

type nopObserver struct{}

func (nopObserver) Finish() {}

func discardLogger() shared.ILogger {
	return log.New(io.Discard)
}

func stubMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().StartSlackRequestOut(gomock.Any()).Return(logic.IRequestObserver(nopObserver{})).AnyTimes()
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(logic.IRequestObserver(nopObserver{})).AnyTimes()
	mockMetrics.EXPECT().TickFinished(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().AvatarUploaded().AnyTimes()
	mockMetrics.EXPECT().CurrentMood(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
}

// fakeStore is an in-memory mood state store that counts writes.
type fakeStore struct {
	hashes map[string]string
	writes int
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{hashes: make(map[string]string)}
}

func (fs *fakeStore) Get(moodKey string) (string, bool) {
	hash, found := fs.hashes[moodKey]
	return hash, found
}

func (fs *fakeStore) Set(moodKey, hash string) error {
	if fs.setErr != nil {
		return fs.setErr
	}
	fs.writes++
	fs.hashes[moodKey] = hash
	return nil
}
