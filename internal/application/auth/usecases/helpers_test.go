package usecases

import "time"

func timeNow() time.Time {
	return time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
}
