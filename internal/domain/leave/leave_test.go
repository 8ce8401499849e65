package leave

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"same day", date(2024, 3, 4), date(2024, 3, 4), 1},
		{"inclusive range", date(2024, 3, 4), date(2024, 3, 6), 3},
		{"spans weekend", date(2024, 3, 8), date(2024, 3, 11), 4},
		{"leap day", date(2024, 2, 28), date(2024, 3, 1), 3},
		{"ignores time of day", time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC), time.Date(2024, 3, 5, 1, 0, 0, 0, time.UTC), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateDays(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateDays_EndBeforeStart(t *testing.T) {
	_, err := CalculateDays(date(2024, 3, 6), date(2024, 3, 4))
	assert.True(t, errors.Is(err, ErrEndBeforeStart))
}

func TestLeaveBalance_Consume(t *testing.T) {
	b := NewLeaveBalance("e1", LeaveType{ID: "lt1", DefaultDaysPerYear: 10}, 2024, "System")

	b.Consume(decimal.NewFromInt(3))
	assert.True(t, b.UsedDays.Equal(decimal.NewFromInt(3)))
	assert.True(t, b.AvailableDays.Equal(decimal.NewFromInt(7)))

	b.Consume(decimal.NewFromInt(9))
	assert.True(t, b.AvailableDays.Equal(decimal.NewFromInt(-2)))
	assert.True(t, b.TotalDays.Sub(b.UsedDays).Equal(b.AvailableDays))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusApproved))
	assert.True(t, CanTransition(StatusPending, StatusRejected))
	assert.True(t, CanTransition(StatusPending, StatusCancelled))

	for _, from := range []RequestStatus{StatusApproved, StatusRejected, StatusCancelled} {
		for _, to := range []RequestStatus{StatusPending, StatusApproved, StatusRejected, StatusCancelled} {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
	assert.False(t, CanTransition(StatusPending, StatusPending))
}
