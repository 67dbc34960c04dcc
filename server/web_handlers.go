package server

import (
	"fmt"
	"mood_parrot/dto"
	"mood_parrot/logic"
	"mood_parrot/shared"
	"mood_parrot/texts"
	"net/http"
	"time"
)

const (
	statusPageSnippet = "status_page.html"
	robotsSnippet     = "robots.txt"
	statusPageTicks   = 10
)

type webHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	metrics   logic.IMetrics
	userAgent shared.IUserAgent
	txt       texts.ITexts
	history   logic.ITickHistory
	scheduler logic.IScheduler
}

func NewWebHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	userAgent shared.IUserAgent,
	txt texts.ITexts,
	history logic.ITickHistory,
	scheduler logic.IScheduler,
) IHandlerGroup {
	res := webHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		userAgent: userAgent,
		txt:       txt,
		history:   history,
		scheduler: scheduler,
	}
	return &res
}

func (hg *webHandlerGroup) Prefix() string {
	return ""
}

func (hg *webHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/robots.txt", func(w http.ResponseWriter, r *http.Request) { hg.getRobots(w, r) }},
		{"GET", rootPlacholder, func(w http.ResponseWriter, r *http.Request) { hg.getRoot(w, r) }},
	}
}

func (hg *webHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

type statusPageModel struct {
	Version     string
	CurrentMood string
	NextRun     time.Time
	Ticks       []*dto.Tick
}

func (hg *webHandlerGroup) getRoot(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling root GET: %s", r.URL.Path)
	obs := hg.metrics.StartWebRequestIn("root")
	defer obs.Finish()

	recs, err := hg.history.Recent(statusPageTicks)
	if err != nil {
		hg.logger.Errorf("Failed to retrieve tick history: %v", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	model := statusPageModel{
		Version: hg.userAgent.String(),
		NextRun: hg.scheduler.NextRun(),
	}
	for _, rec := range recs {
		model.Ticks = append(model.Ticks, tickRecordToDto(rec))
		if model.CurrentMood == "" && rec.MoodKey != "" {
			model.CurrentMood = rec.MoodKey
		}
	}

	var page string
	if page, err = hg.txt.Render(statusPageSnippet, &model); err != nil {
		hg.logger.Errorf("Failed to render status page: %v", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprint(w, page)
}

func (hg *webHandlerGroup) getRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprint(w, hg.txt.Get(robotsSnippet))
}
