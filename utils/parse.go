package utils

import (
	"strconv"
	"time"
)

func ParseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func ParseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// ParseDate accepts YYYY-MM-DD or RFC3339; returns nil when unparseable.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}
