package server_test

import (
	"encoding/json"
	"errors"
	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"io"
	"mood_parrot/dal"
	"mood_parrot/dto"
	"mood_parrot/logic"
	"mood_parrot/mocks"
	"mood_parrot/server"
	"mood_parrot/shared"
	"mood_parrot/texts"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const (
	testApiKey      = "sesame-1234"
	testMetricsAuth = "scrape-me"
)

type nopObserver struct{}

func (nopObserver) Finish() {}

type serverHarness struct {
	mockSyncer    *mocks.MockIAvatarSyncer
	mockHistory   *mocks.MockITickHistory
	mockScheduler *mocks.MockIScheduler
	router        *mux.Router
	nextRun       time.Time
}

func setupServerTest(t *testing.T) *serverHarness {

	ctrl := gomock.NewController(t)
	logger := log.New(io.Discard)

	cfg := &shared.Config{
		Secrets: shared.Secrets{
			ApiKeys:     []string{testApiKey},
			MetricsAuth: testMetricsAuth,
		},
	}
	moods, err := logic.NewMoodTable(logic.DefaultMoods())
	if err != nil {
		t.Fatal(err)
	}

	h := &serverHarness{
		mockSyncer:    mocks.NewMockIAvatarSyncer(ctrl),
		mockHistory:   mocks.NewMockITickHistory(ctrl),
		mockScheduler: mocks.NewMockIScheduler(ctrl),
		nextRun:       time.Date(2026, 3, 3, 9, 2, 0, 0, time.UTC),
	}
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(logic.IRequestObserver(nopObserver{})).AnyTimes()
	h.mockScheduler.EXPECT().NextRun().Return(h.nextRun).AnyTimes()

	groups := []server.IHandlerGroup{
		server.NewApiHandlerGroup(cfg, logger, mockMetrics, moods, h.mockSyncer, h.mockHistory, h.mockScheduler),
		server.NewMetricsHandlerGroup(cfg, logger, mockMetrics),
		server.NewWebHandlerGroup(cfg, logger, mockMetrics, shared.NewUserAgent(), texts.NewTexts(),
			h.mockHistory, h.mockScheduler),
	}
	h.router = server.NewMux(groups, logger)
	return h
}

func (h *serverHarness) do(method, path string, hdrs map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range hdrs {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

var withKey = map[string]string{"X-API-KEY": testApiKey}

func TestApi_RequiresKey(t *testing.T) {

	h := setupServerTest(t)
	h.mockHistory.EXPECT().Recent(gomock.Any()).Times(0)
	h.mockSyncer.EXPECT().RunTick(gomock.Any()).Times(0)

	for _, path := range []string{"/api/status", "/api/moods"} {
		assert.Equal(t, http.StatusUnauthorized, h.do("GET", path, nil).Code, path)
		assert.Equal(t, http.StatusUnauthorized, h.do("GET", path, map[string]string{"X-API-KEY": "nope"}).Code, path)
	}
	assert.Equal(t, http.StatusUnauthorized, h.do("POST", "/api/tick", nil).Code)
}

func TestApi_Status(t *testing.T) {

	h := setupServerTest(t)
	recs := []*dal.TickRecord{
		{TickId: "t2", Outcome: "unchanged", MoodKey: "default"},
		{TickId: "t1", Outcome: "updated", MoodKey: "default", AvatarHash: "h1"},
	}
	h.mockHistory.EXPECT().Recent(20).Return(recs, nil)
	h.mockHistory.EXPECT().Recent(200).Return(nil, nil)

	rec := h.do("GET", "/api/status", withKey)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var status dto.Status
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.NextRun.Equal(h.nextRun))
	assert.Equal(t, 2, len(status.Ticks))
	assert.Equal(t, "t2", status.Ticks[0].TickId)
	assert.Equal(t, "h1", status.Ticks[1].AvatarHash)

	// Limit is capped
	rec = h.do("GET", "/api/status?limit=5000", withKey)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.NotNil(t, status.Ticks)
	assert.Equal(t, 0, len(status.Ticks))

	assert.Equal(t, http.StatusBadRequest, h.do("GET", "/api/status?limit=zero", withKey).Code)
	assert.Equal(t, http.StatusBadRequest, h.do("GET", "/api/status?limit=0", withKey).Code)
}

func TestApi_StatusHistoryError(t *testing.T) {
	h := setupServerTest(t)
	h.mockHistory.EXPECT().Recent(gomock.Any()).Return(nil, errors.New("database is locked"))
	assert.Equal(t, http.StatusInternalServerError, h.do("GET", "/api/status", withKey).Code)
}

func TestApi_Tick(t *testing.T) {

	h := setupServerTest(t)
	gomock.InOrder(
		h.mockSyncer.EXPECT().RunTick(gomock.Any()).Return(logic.TickOutcome{
			TickId:  "t9",
			Kind:    logic.OkUploadFailed,
			MoodKey: "eating",
			Err:     logic.ErrUpload,
		}),
		h.mockSyncer.EXPECT().RunTick(gomock.Any()).Return(logic.TickOutcome{Kind: logic.OkBusy}),
	)

	rec := h.do("POST", "/api/tick", withKey)
	assert.Equal(t, http.StatusOK, rec.Code)
	var res dto.TickResult
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "t9", res.TickId)
	assert.Equal(t, "upload_failed", res.Outcome)
	assert.Equal(t, "eating", res.MoodKey)
	assert.Equal(t, logic.ErrUpload.Error(), res.Error)

	assert.Equal(t, http.StatusConflict, h.do("POST", "/api/tick", withKey).Code)
}

func TestApi_Moods(t *testing.T) {

	h := setupServerTest(t)
	rec := h.do("GET", "/api/moods", withKey)
	assert.Equal(t, http.StatusOK, rec.Code)

	var moods []*dto.Mood
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &moods))
	assert.Equal(t, len(logic.DefaultMoods()), len(moods))
	assert.Equal(t, "eating", moods[0].Key)
	fallbacks := 0
	for _, m := range moods {
		assert.NotNil(t, m.TriggerWords)
		if m.IsFallback {
			fallbacks++
			assert.Equal(t, "default", m.Key)
			assert.Equal(t, 0, len(m.TriggerWords))
		}
	}
	assert.Equal(t, 1, fallbacks)
}

func TestMetrics_Auth(t *testing.T) {

	h := setupServerTest(t)
	assert.Equal(t, http.StatusUnauthorized, h.do("GET", "/metrics", nil).Code)
	assert.Equal(t, http.StatusUnauthorized,
		h.do("GET", "/metrics", map[string]string{"Authorization": "Bearer wrong"}).Code)
	// The API key is not a metrics secret
	assert.Equal(t, http.StatusUnauthorized, h.do("GET", "/metrics", withKey).Code)

	rec := h.do("GET", "/metrics", map[string]string{"Authorization": "Bearer " + testMetricsAuth})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestWeb_StatusPage(t *testing.T) {

	h := setupServerTest(t)
	h.mockHistory.EXPECT().Recent(gomock.Any()).Return([]*dal.TickRecord{
		{TickId: "t3", Outcome: "fetch_failed", Error: "failed to fetch status"},
		{TickId: "t2", Outcome: "updated", MoodKey: "eating", AvatarHash: "h2"},
	}, nil)

	rec := h.do("GET", "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	body := rec.Body.String()
	// Latest tick with a mood wins
	assert.Contains(t, body, "Current mood: <strong>eating</strong>")
	assert.Contains(t, body, "failed to fetch status")
	assert.Contains(t, body, "Mood-Parrot-Bot/")
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
}

func TestWeb_RobotsAndNotFound(t *testing.T) {

	h := setupServerTest(t)
	rec := h.do("GET", "/robots.txt", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Disallow: /")

	assert.Equal(t, http.StatusNotFound, h.do("GET", "/no/such/page", nil).Code)
}

type countingObserver struct {
	finished *int
}

func (co countingObserver) Finish() { *co.finished++ }

func TestMetrics_ScrapeIsObserved(t *testing.T) {

	ctrl := gomock.NewController(t)
	logger := log.New(io.Discard)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	finished := 0
	mockMetrics.EXPECT().StartWebRequestIn("metrics").
		Return(logic.IRequestObserver(countingObserver{&finished})).Times(1)

	cfg := &shared.Config{Secrets: shared.Secrets{MetricsAuth: testMetricsAuth}}
	router := server.NewMux([]server.IHandlerGroup{server.NewMetricsHandlerGroup(cfg, logger, mockMetrics)}, logger)

	// Refused scrapes are not observed
	req := httptest.NewRequest("GET", "/metrics", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, finished)

	req = httptest.NewRequest("GET", "/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+testMetricsAuth)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, finished)
}

func TestMetrics_NoSecretConfigured(t *testing.T) {

	ctrl := gomock.NewController(t)
	logger := log.New(io.Discard)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Times(0)

	router := server.NewMux([]server.IHandlerGroup{
		server.NewMetricsHandlerGroup(&shared.Config{}, logger, mockMetrics),
	}, logger)
	req := httptest.NewRequest("GET", "/metrics", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
