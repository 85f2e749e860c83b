package service

import "time"

// TimezoneName is the exchange's local timezone identifier.
const TimezoneName = "Asia/Seoul"

var seoul = loadSeoul()

func loadSeoul() *time.Location {
	loc, err := time.LoadLocation(TimezoneName)
	if err != nil {
		// KST has no DST, a fixed offset is an exact fallback.
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// Seoul returns the exchange's local timezone.
func Seoul() *time.Location { return seoul }
