package server

import (
	"context"
	"mood_parrot/dal"
	"mood_parrot/dto"
	"mood_parrot/logic"
	"mood_parrot/shared"
	"net/http"
	"strconv"
)

const (
	defaultStatusTicks = 20
	maxStatusTicks     = 200
)

type apiHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	metrics   logic.IMetrics
	moods     *logic.MoodTable
	syncer    logic.IAvatarSyncer
	history   logic.ITickHistory
	scheduler logic.IScheduler
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	moods *logic.MoodTable,
	syncer logic.IAvatarSyncer,
	history logic.ITickHistory,
	scheduler logic.IScheduler,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		moods:     moods,
		syncer:    syncer,
		history:   history,
		scheduler: scheduler,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/status", func(w http.ResponseWriter, r *http.Request) { hg.getStatus(w, r) }},
		{"POST", "/tick", func(w http.ResponseWriter, r *http.Request) { hg.postTick(w, r) }},
		{"GET", "/moods", func(w http.ResponseWriter, r *http.Request) { hg.getMoods(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey != "" && apiKey == key {
				found = true
			}
		}
		if !found {
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", secretPrefix(apiKey), r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) getStatus(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling status GET: %s", r.URL.Path)
	obs := hg.metrics.StartWebRequestIn("api/status")
	defer obs.Finish()

	limit := defaultStatusTicks
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		if limit, err = strconv.Atoi(limitStr); err != nil || limit < 1 {
			hg.logger.Infof("Invalid 'limit' param: '%s'", limitStr)
			writeErrorResponse(w, "Invalid 'limit' param", http.StatusBadRequest)
			return
		}
		limit = min(limit, maxStatusTicks)
	}

	recs, err := hg.history.Recent(limit)
	if err != nil {
		hg.logger.Errorf("Failed to retrieve tick history: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	resp := dto.Status{
		NextRun: hg.scheduler.NextRun(),
		Ticks:   make([]*dto.Tick, 0, len(recs)),
	}
	for _, rec := range recs {
		resp.Ticks = append(resp.Ticks, tickRecordToDto(rec))
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) postTick(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling tick POST: %s", r.URL.Path)
	obs := hg.metrics.StartWebRequestIn("api/tick")
	defer obs.Finish()

	// A client hanging up does not abort an upload halfway
	outcome := hg.syncer.RunTick(context.WithoutCancel(r.Context()))
	if outcome.Kind == logic.OkBusy {
		writeErrorResponse(w, "409 Tick Already Running", http.StatusConflict)
		return
	}

	resp := dto.TickResult{
		TickId:           outcome.TickId,
		Outcome:          string(outcome.Kind),
		MoodKey:          outcome.MoodKey,
		AvatarHash:       outcome.NewHash,
		ImageFingerprint: outcome.ImageFingerprint,
	}
	if outcome.Err != nil {
		resp.Error = outcome.Err.Error()
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) getMoods(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling moods GET: %s", r.URL.Path)
	obs := hg.metrics.StartWebRequestIn("api/moods")
	defer obs.Finish()

	fallbackKey := hg.moods.FallbackKey()
	resp := []*dto.Mood{}
	for _, entry := range hg.moods.Entries() {
		triggers := entry.TriggerWords
		if triggers == nil {
			triggers = []string{}
		}
		resp = append(resp, &dto.Mood{
			Key:          entry.Key,
			ImagePath:    entry.ImagePath,
			TriggerWords: triggers,
			IsFallback:   entry.Key == fallbackKey,
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}

func tickRecordToDto(rec *dal.TickRecord) *dto.Tick {
	return &dto.Tick{
		TickId:           rec.TickId,
		StartedAt:        rec.StartedAt,
		FinishedAt:       rec.FinishedAt,
		Outcome:          rec.Outcome,
		MoodKey:          rec.MoodKey,
		AvatarHash:       rec.AvatarHash,
		ImageFingerprint: rec.ImageFingerprint,
		Error:            rec.Error,
	}
}
