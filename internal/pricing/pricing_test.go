package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"10:30", 630, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:00", 0, true},
		{"10:60", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "01:00", FormatClock(MinutesPerDay+60))
}

func TestDurationHours(t *testing.T) {
	h, err := DurationHours("10:00", "12:00")
	require.NoError(t, err)
	assert.Equal(t, 2.0, h)

	h, err = DurationHours("18:15", "19:45")
	require.NoError(t, err)
	assert.Equal(t, 1.5, h)

	_, err = DurationHours("12:00", "12:00")
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = DurationHours("12:00", "11:00")
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestSpanHours_RollsOverMidnight(t *testing.T) {
	h, err := SpanHours("23:00", "01:00")
	require.NoError(t, err)
	assert.Equal(t, 2.0, h)

	start, end, err := SpanMinutes("22:00", "22:00")
	require.NoError(t, err)
	assert.Equal(t, 22*60, start)
	assert.Equal(t, 22*60+MinutesPerDay, end)
}

func TestComputePrice(t *testing.T) {
	assert.Equal(t, 80.00, ComputePrice(2.0, 40.0))
	assert.Equal(t, 45.00, ComputePrice(1.5, 30.0))
	assert.Equal(t, 12.51, ComputePrice(0.5, 25.015))
	assert.Equal(t, 33.33, ComputePrice(1.0/3.0, 100))
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 2.68, RoundCents(2.675))
	assert.Equal(t, 0.13, RoundCents(0.125))
	assert.Equal(t, -0.13, RoundCents(-0.125))
	assert.Equal(t, 10.0, RoundCents(9.999))
}

func TestRefundPercentage(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  int
	}{
		{"well ahead", 72, 100},
		{"25 hours", 25, 100},
		{"just over 24 hours", 24.01, 100},
		{"exactly 24 hours", 24, 50},
		{"18 hours", 18, 50},
		{"exactly 12 hours", 12, 50},
		{"just under 12 hours", 11.99, 0},
		{"already started", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RefundPercentage(tt.hours))
		})
	}
}

func TestRefundAmount(t *testing.T) {
	assert.Equal(t, 80.00, RefundAmount(80, 100))
	assert.Equal(t, 40.00, RefundAmount(80, 50))
	assert.Equal(t, 0.0, RefundAmount(80, 0))
	assert.Equal(t, 22.63, RefundAmount(45.25, 50))
}
