package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"mood_parrot/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_metrics.go -package mocks mood_parrot/logic IMetrics

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartSlackRequestOut(label string) IRequestObserver
	TickFinished(outcome OutcomeKind)
	AvatarUploaded()
	CurrentMood(moodKey string)
	ServiceStarted()
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg              *shared.Config
	webRequestsIn    *prometheus.HistogramVec
	slackRequestsOut *prometheus.HistogramVec
	ticks            *prometheus.CounterVec
	avatarsUploaded  prometheus.Counter
	serviceStarted   prometheus.Counter
	currentMood      *prometheus.GaugeVec
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of Web requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.slackRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "slack_requests_out_duration",
		Help: "Duration in seconds of Slack API requests made.",
	}, []string{"label"})
	prometheus.Register(res.slackRequestsOut)

	res.ticks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ticks_total",
		Help: "Number of sync ticks run, by outcome",
	}, []string{"outcome"})
	prometheus.Register(res.ticks)

	res.avatarsUploaded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "avatar_uploads_total",
		Help: "Number of avatar images uploaded successfully",
	})
	prometheus.Register(res.avatarsUploaded)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.currentMood = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "current_mood",
		Help: "Mood resolved in the most recent tick (value is always 1)",
	}, []string{"mood"})
	prometheus.Register(res.currentMood)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	elapsed := time.Since(ro.start).Seconds()
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webRequestsIn}
}

func (m *metrics) StartSlackRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.slackRequestsOut}
}

func (m *metrics) TickFinished(outcome OutcomeKind) {
	m.ticks.WithLabelValues(string(outcome)).Add(1)
}

func (m *metrics) AvatarUploaded() {
	m.avatarsUploaded.Add(1)
}

func (m *metrics) CurrentMood(moodKey string) {
	m.currentMood.Reset()
	m.currentMood.WithLabelValues(moodKey).Set(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}
