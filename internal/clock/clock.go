package clock

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/KirkDiggler/skill-seeder/internal/clock TimeProvider

import "time"

// TimeProvider supplies the timestamps stamped on stored records
type TimeProvider interface {
	Now() time.Time
}

// UTC returns the current time in UTC
type UTC struct{}

func (UTC) Now() time.Time {
	return time.Now().UTC()
}
