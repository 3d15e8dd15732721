package model

import "time"

// ToEpochSeconds returns whole seconds since the Unix epoch, discarding
// any sub-second component. The result does not depend on t's location.
func ToEpochSeconds(t time.Time) int64 {
	return t.Unix()
}

// FromEpochSeconds returns the UTC instant exactly n seconds after the
// Unix epoch.
func FromEpochSeconds(n int64) time.Time {
	return time.Unix(n, 0).UTC()
}
