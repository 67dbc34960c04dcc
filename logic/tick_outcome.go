package logic

import "fmt"

type OutcomeKind string

const (
	OkUpdated        OutcomeKind = "updated"
	OkUnchanged      OutcomeKind = "unchanged"
	OkFetchFailed    OutcomeKind = "fetch_failed"
	OkUploadFailed   OutcomeKind = "upload_failed"
	OkSkippedNoImage OutcomeKind = "skipped_no_image"
	OkBusy           OutcomeKind = "busy" // Another tick was still running
)

// TickOutcome is the result of one sync tick. Only OkUpdated has side effects.
type TickOutcome struct {
	TickId           string
	Kind             OutcomeKind
	MoodKey          string // Empty for OkFetchFailed and OkBusy
	NewHash          string // Set for OkUpdated only
	ImageFingerprint string // Set once an image was loaded
	Err              error
}

func (o TickOutcome) String() string {
	switch o.Kind {
	case OkUpdated:
		return fmt.Sprintf("updated(%s, %s)", o.MoodKey, o.NewHash)
	case OkFetchFailed, OkBusy:
		return string(o.Kind)
	default:
		return fmt.Sprintf("%s(%s)", o.Kind, o.MoodKey)
	}
}
