package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"casual", TypeCasual, false},
		{"SICK", TypeSick, false},
		{" earned ", TypeEarned, false},
		{"Unpaid", TypeUnpaid, false},
		{"maternity", TypeMaternity, false},
		{"paternity", TypePaternity, false},
		{"sabbatical", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidLeaveType, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseDecision(t *testing.T) {
	got, err := ParseDecision("approved")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got)

	got, err = ParseDecision("REJECTED")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, got)

	// PENDING is the initial state, never a transition target.
	_, err = ParseDecision("pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseDecision("cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSpanDaysInclusive(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", time.Date(2025, 3, 10, 0, 0, 0, 0, ist), time.Date(2025, 3, 10, 0, 0, 0, 0, ist), 1},
		{"work week", time.Date(2025, 3, 17, 0, 0, 0, 0, ist), time.Date(2025, 3, 21, 0, 0, 0, 0, ist), 5},
		{"across month end", time.Date(2025, 2, 27, 0, 0, 0, 0, ist), time.Date(2025, 3, 2, 0, 0, 0, 0, ist), 4},
		{"mixed zones", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 12, 0, 0, 0, 0, ist), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, req.SpanDays())
		})
	}
}

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()

	assert.Equal(t, 12, policy[PolicyCasualLeave])
	assert.Equal(t, 10, policy[PolicySickLeave])
	assert.Equal(t, 15, policy[PolicyEarnedLeave])
	assert.Equal(t, 180, policy[PolicyMaternity])
	assert.Equal(t, 5, policy[PolicyPaternity])
	assert.Equal(t, 0, policy[PolicyCompensatoryOff])
}

func TestLowerForms(t *testing.T) {
	assert.Equal(t, "casual", TypeCasual.Lower())
	assert.Equal(t, "pending", StatusPending.Lower())
}
