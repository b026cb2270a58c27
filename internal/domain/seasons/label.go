package seasons

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinYear is the first season the league recorded (1945-46).
	MinYear = 1946
	// MaxYear is the most recent season accepted by the front ends.
	MaxYear = 2025
)

var (
	// ErrYearRequired is returned for a blank season value.
	ErrYearRequired = errors.New("season year required")
	// ErrYearInvalid is returned when a season value is not an integer.
	ErrYearInvalid = errors.New("season must be a valid year")
	// ErrYearOutOfRange is returned when a season falls outside [MinYear, MaxYear].
	ErrYearOutOfRange = fmt.Errorf("season must be between %d and %d", MinYear, MaxYear)
)

// Label converts the year a season ends in to the provider's "YYYY-YY" label.
// 2020 -> "2019-20".
func Label(year int) string {
	return fmt.Sprintf("%d-%02d", year-1, mod100(year))
}

// ParseYear parses a user-supplied season year.
func ParseYear(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrYearRequired
	}
	year, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, ErrYearInvalid
	}
	return year, nil
}

// ValidateYear checks the accepted season range.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return ErrYearOutOfRange
	}
	return nil
}

func mod100(year int) int {
	m := year % 100
	if m < 0 {
		m = -m
	}
	return m
}
