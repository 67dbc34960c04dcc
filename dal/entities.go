package dal

import (
	"time"
)

type TickRecord struct {
	Id               int
	TickId           string // 5f0c2b6e-3d1e-4f0a-9b8c-0d2b1f7a9e44
	StartedAt        time.Time
	FinishedAt       time.Time
	Outcome          string // updated, unchanged, fetch_failed, ...
	MoodKey          string // eating
	AvatarHash       string // Hash reported by Slack after upload; empty unless updated
	ImageFingerprint string // murmur3 of the uploaded bytes, for diagnostics only
	Error            string
}
