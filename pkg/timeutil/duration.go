package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	offsetPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"s":       time.Second,
		"sec":     time.Second,
		"secs":    time.Second,
		"second":  time.Second,
		"seconds": time.Second,
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
		"d":       24 * time.Hour,
		"day":     24 * time.Hour,
		"days":    24 * time.Hour,
		"w":       7 * 24 * time.Hour,
		"wk":      7 * 24 * time.Hour,
		"wks":     7 * 24 * time.Hour,
		"week":    7 * 24 * time.Hour,
		"weeks":   7 * 24 * time.Hour,
	}
)

// ParseOffset parses a human-friendly duration string (for example "1w",
// "3d", or "1w2d6h") into a duration, typically added to now to produce a
// deadline.
func ParseOffset(input string) (time.Duration, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("empty duration")
	}

	remaining := strings.ToLower(trimmed)
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := offsetPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid duration segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported duration unit %q", matches[2])
		}
		total += time.Duration(value) * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("duration must be greater than zero")
	}
	return total, nil
}

// FormatOffset renders a duration using week/day/hour/minute/second tokens,
// for example "1w2d" or "6h30m".
func FormatOffset(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	type unit struct {
		label string
		value time.Duration
	}
	units := []unit{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, "")
}

// Distance renders how far then is from now, for example "3d" for an
// upcoming deadline or "2h overdue" for a missed one.
func Distance(now, then time.Time) string {
	if then.IsZero() {
		return ""
	}
	if then.Before(now) {
		return FormatOffset(now.Sub(then)) + " overdue"
	}
	return FormatOffset(then.Sub(now))
}
