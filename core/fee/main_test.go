package fee_test

import "time"

var nowFunc = time.Now

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
}
