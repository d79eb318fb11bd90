package filter

import (
	"time"
	_ "time/tzdata" //zone lookups must not depend on host zoneinfo
)

//expiry timestamps arrive in exactly this shape; anything else is malformed
const expiryLayout = "2006-01-02T15:04:05Z"

// TimeFallback is returned whenever an expiry timestamp cannot be
// normalized. A bad timestamp never aborts the batch.
const TimeFallback = "N/A"

// ConvertTime parses a UTC timestamp and returns its calendar date in the
// target timezone, "2006-01-02". Malformed input, an empty string or an
// unknown timezone all yield TimeFallback.
func ConvertTime(utcString, targetTZ string) string {
	t, err := time.Parse(expiryLayout, utcString)
	if err != nil {
		return TimeFallback
	}

	loc, err := time.LoadLocation(targetTZ)
	if err != nil {
		return TimeFallback
	}

	return t.In(loc).Format("2006-01-02")
}
