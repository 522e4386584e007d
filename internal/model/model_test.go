package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationExpiry(t *testing.T) {
	from := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		duration Duration
		want     time.Time
	}{
		{DurationOneMonth, time.Date(2024, time.April, 15, 10, 0, 0, 0, time.UTC)},
		{DurationThreeMonths, time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)},
		{DurationSixMonths, time.Date(2024, time.September, 15, 10, 0, 0, 0, time.UTC)},
		{DurationOneYear, time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)},
		{Duration("2 Weeks"), time.Date(2024, time.April, 15, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.duration), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.duration.Expiry(from))
		})
	}
}

func TestDurationValid(t *testing.T) {
	for _, d := range Durations() {
		assert.True(t, d.Valid(), d)
	}
	assert.False(t, Duration("2 Weeks").Valid())
}

func TestAccountRemaining(t *testing.T) {
	var a Account
	assert.Zero(t, a.Remaining())

	ms := int64(1500)
	a.RemainingTimeMs = &ms
	assert.Equal(t, 1500*time.Millisecond, a.Remaining())
}
