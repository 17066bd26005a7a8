package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZoneClock(t *testing.T) {
	clk, err := NewZoneClock("Asia/Kolkata")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", clk.Location().String())

	today := clk.Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, clk.Location(), today.Location())
}

func TestNewZoneClockUnknownZone(t *testing.T) {
	_, err := NewZoneClock("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestFixedClock(t *testing.T) {
	zone := time.FixedZone("IST", 5*3600+1800)
	instant := time.Date(2025, 3, 10, 10, 45, 30, 0, zone)
	clk := Fixed{Instant: instant}

	assert.Equal(t, instant, clk.Now())
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, zone), clk.Today())
	assert.Equal(t, zone, clk.Location())
}

func TestMidnight(t *testing.T) {
	zone := time.FixedZone("IST", 5*3600+1800)
	got := Midnight(time.Date(2025, 3, 10, 23, 59, 59, 1, zone))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, zone), got)
}
