package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const MinutesPerDay = 24 * 60

var (
	ErrInvalidClock    = errors.New("time must be in HH:MM format")
	ErrInvalidInterval = errors.New("end time must be after start time")
)

// ParseClock converts an "HH:MM" wall-clock string into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return hours*60 + minutes, nil
}

func FormatClock(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DurationHours returns the length of [start, end) in hours. Both times are on the
// same date, so end must be strictly after start.
func DurationHours(start, end string) (float64, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	if endMin <= startMin {
		return 0, ErrInvalidInterval
	}
	return float64(endMin-startMin) / 60, nil
}

// SpanMinutes returns start and end in minutes since midnight of the slot date.
// An end at or before start rolls over into the next day.
func SpanMinutes(start, end string) (int, int, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return 0, 0, err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return 0, 0, err
	}
	if endMin <= startMin {
		endMin += MinutesPerDay
	}
	return startMin, endMin, nil
}

// SpanHours is DurationHours with next-day rollover.
func SpanHours(start, end string) (float64, error) {
	startMin, endMin, err := SpanMinutes(start, end)
	if err != nil {
		return 0, err
	}
	return float64(endMin-startMin) / 60, nil
}
