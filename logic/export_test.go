package logic

import "time"

// SetSlackClientClock replaces the clock used to decide whether a status has expired.
func SetSlackClientClock(sc ISlackClient, now func() time.Time) {
	sc.(*slackClient).now = now
}
