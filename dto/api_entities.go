package dto

import "time"

type Tick struct {
	TickId           string    `json:"tick_id"`
	StartedAt        time.Time `json:"started_at"`
	FinishedAt       time.Time `json:"finished_at"`
	Outcome          string    `json:"outcome"`
	MoodKey          string    `json:"mood_key,omitempty"`
	AvatarHash       string    `json:"avatar_hash,omitempty"`
	ImageFingerprint string    `json:"image_fingerprint,omitempty"`
	Error            string    `json:"error,omitempty"`
}

type Status struct {
	NextRun time.Time `json:"next_run"`
	Ticks   []*Tick   `json:"ticks"`
}

type Mood struct {
	Key          string   `json:"key"`
	ImagePath    string   `json:"image_path"`
	TriggerWords []string `json:"trigger_words"`
	IsFallback   bool     `json:"is_fallback"`
}

// TickResult is the answer to a manually triggered tick.
type TickResult struct {
	TickId           string `json:"tick_id,omitempty"`
	Outcome          string `json:"outcome"`
	MoodKey          string `json:"mood_key,omitempty"`
	AvatarHash       string `json:"avatar_hash,omitempty"`
	ImageFingerprint string `json:"image_fingerprint,omitempty"`
	Error            string `json:"error,omitempty"`
}
