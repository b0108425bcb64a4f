package domain

import "time"

// TimestampPrecision is the resolution both supported stores keep.
const TimestampPrecision = time.Microsecond

func Now() time.Time {
	return time.Now().UTC().Truncate(TimestampPrecision)
}

// NextTimestamp returns now, or the smallest representable instant after
// previous when the clock did not move past it.
func NextTimestamp(previous, now time.Time) time.Time {
	now = now.UTC().Truncate(TimestampPrecision)

	if !now.After(previous) {
		return previous.Add(TimestampPrecision)
	}

	return now
}
