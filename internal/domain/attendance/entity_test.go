package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"present", StatusPresent},
		{"LATE", StatusLate},
		{" absent ", StatusAbsent},
		{"on_leave", StatusOnLeave},
		{"half_day", StatusHalfDay},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseStatus("vacation")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNewResponse(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	checkOut := time.Date(2025, 3, 10, 18, 2, 5, 0, ist)
	hours := 8.95

	rec := Record{
		ID:          7,
		EmployeeID:  3,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, ist),
		CheckIn:     time.Date(2025, 3, 10, 9, 5, 0, 0, ist),
		CheckOut:    &checkOut,
		HoursWorked: &hours,
		Status:      StatusLate,
	}

	resp := NewResponse(rec, "Aarav Sharma")
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "09:05:00", resp.CheckIn)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, "18:02:05", *resp.CheckOut)
	assert.Equal(t, "late", resp.Status)
	assert.Equal(t, "Aarav Sharma", resp.EmployeeName)
}

func TestNewResponseOpenRecord(t *testing.T) {
	rec := Record{
		Date:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckIn: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Status:  StatusPresent,
	}

	resp := NewResponse(rec, "Unknown")
	assert.Nil(t, resp.CheckOut)
	assert.Nil(t, resp.HoursWorked)
	assert.Equal(t, "present", resp.Status)
}
