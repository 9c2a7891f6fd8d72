package Models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDelayed(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	overdue := TransportRequest{Status: StatusPending, ScheduledFor: "2026-03-10T09:00"}
	assert.True(t, overdue.IsDelayed(now))

	future := TransportRequest{Status: StatusPending, ScheduledFor: "2026-03-11T09:00"}
	assert.False(t, future.IsDelayed(now))

	// Completed requests are never delayed, no matter the schedule.
	done := TransportRequest{Status: StatusCompleted, ScheduledFor: "2026-03-01T09:00"}
	assert.False(t, done.IsDelayed(now))

	unscheduled := TransportRequest{Status: StatusInProgress}
	assert.False(t, unscheduled.IsDelayed(now))

	garbled := TransportRequest{Status: StatusPending, ScheduledFor: "amanhã"}
	assert.False(t, garbled.IsDelayed(now))
}

func TestParseTimestampShapes(t *testing.T) {
	full, err := ParseTimestamp("2026-03-10T09:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 9, full.Hour())

	local, err := ParseTimestamp("2026-03-10T09:30")
	require.NoError(t, err)
	assert.Equal(t, 30, local.Minute())

	dateOnly, err := ParseTimestamp("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.March, dateOnly.Month())

	_, err = ParseTimestamp("10/03/2026")
	require.Error(t, err)
}
