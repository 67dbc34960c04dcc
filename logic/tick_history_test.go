package logic_test

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"mood_parrot/dal"
	"mood_parrot/logic"
	"mood_parrot/mocks"
	"mood_parrot/shared"
	"testing"
	"time"
)

func TestTickHistory_Record(t *testing.T) {

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIRepo(ctrl)
	th := logic.NewTickHistory(&shared.Config{HistoryKeep: 3}, discardLogger(), mockRepo)

	var saved *dal.TickRecord
	startedAt := time.Date(2026, 3, 3, 9, 0, 0, 0, time.FixedZone("CET", 3600))
	gomock.InOrder(
		mockRepo.EXPECT().AddTickRecord(gomock.Any()).
			DoAndReturn(func(rec *dal.TickRecord) error { saved = rec; return nil }),
		mockRepo.EXPECT().PruneTickHistory(3).Return(nil),
	)

	th.Record(startedAt, logic.TickOutcome{
		TickId:           "t1",
		Kind:             logic.OkUpdated,
		MoodKey:          "sad",
		NewHash:          "h2",
		ImageFingerprint: "0badf00d",
	})

	assert.Equal(t, "t1", saved.TickId)
	assert.Equal(t, "updated", saved.Outcome)
	assert.Equal(t, "sad", saved.MoodKey)
	assert.Equal(t, "h2", saved.AvatarHash)
	assert.Equal(t, "0badf00d", saved.ImageFingerprint)
	assert.Equal(t, "", saved.Error)
	assert.True(t, saved.StartedAt.Equal(startedAt))
	assert.Equal(t, time.UTC, saved.StartedAt.Location())
	assert.False(t, saved.FinishedAt.Before(saved.StartedAt))
}

func TestTickHistory_FailuresAreSwallowed(t *testing.T) {

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIRepo(ctrl)
	th := logic.NewTickHistory(&shared.Config{HistoryKeep: 3}, discardLogger(), mockRepo)

	var saved *dal.TickRecord
	mockRepo.EXPECT().AddTickRecord(gomock.Any()).
		DoAndReturn(func(rec *dal.TickRecord) error { saved = rec; return errors.New("readonly database") })
	mockRepo.EXPECT().PruneTickHistory(gomock.Any()).Times(0)

	th.Record(time.Now(), logic.TickOutcome{TickId: "t2", Kind: logic.OkFetchFailed, Err: logic.ErrFetch})
	assert.Equal(t, logic.ErrFetch.Error(), saved.Error)
}

func TestTickHistory_Recent(t *testing.T) {

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIRepo(ctrl)
	th := logic.NewTickHistory(&shared.Config{}, discardLogger(), mockRepo)

	recs := []*dal.TickRecord{{TickId: "t2"}, {TickId: "t1"}}
	mockRepo.EXPECT().GetRecentTicks(10).Return(recs, nil)
	got, err := th.Recent(10)
	assert.Nil(t, err)
	assert.Equal(t, recs, got)
}

func TestTickHistory_ErrorMarkupStripped(t *testing.T) {

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIRepo(ctrl)
	th := logic.NewTickHistory(&shared.Config{HistoryKeep: 3}, discardLogger(), mockRepo)

	var saved *dal.TickRecord
	mockRepo.EXPECT().AddTickRecord(gomock.Any()).
		DoAndReturn(func(rec *dal.TickRecord) error { saved = rec; return nil })
	mockRepo.EXPECT().PruneTickHistory(3).Return(nil)

	err := errors.New("users.setPhoto failed: <html><body>502 Bad Gateway</body></html>")
	th.Record(time.Now(), logic.TickOutcome{TickId: "t3", Kind: logic.OkUploadFailed, Err: err})
	assert.Equal(t, "users.setPhoto failed: 502 Bad Gateway", saved.Error)
}
