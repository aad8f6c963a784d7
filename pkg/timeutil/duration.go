package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the fallback listing window used when none is provided.
	DefaultWindow = "1w"

	layoutISO = "2006-01-02"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"d":     24 * time.Hour,
		"day":   24 * time.Hour,
		"days":  24 * time.Hour,
		"w":     7 * 24 * time.Hour,
		"wk":    7 * 24 * time.Hour,
		"wks":   7 * 24 * time.Hour,
		"week":  7 * 24 * time.Hour,
		"weeks": 7 * 24 * time.Hour,
		"mo":    30 * 24 * time.Hour,
		"month": 30 * 24 * time.Hour,
		"y":     365 * 24 * time.Hour,
		"yr":    365 * 24 * time.Hour,
		"year":  365 * 24 * time.Hour,
	}
)

// ParseWindow parses a human-friendly lookback string (for example "1w",
// "3d", or "1w2d") and returns the equivalent duration along with a
// canonical, compact representation. Dreams are dated to the day, so the
// smallest unit is a day. When the input is empty, the default window of one
// week is used.
func ParseWindow(input string) (time.Duration, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	lower := strings.ToLower(trimmed)
	remaining := lower
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		valueStr := matches[1]
		unitStr := matches[2]

		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", valueStr, err)
		}
		base, ok := unitMap[unitStr]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", unitStr)
		}
		total += time.Duration(value) * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}

	return total, FormatWindow(total), nil
}

// WindowStartDate resolves a lookback window against now and returns the
// first date (YYYY-MM-DD) still inside it. "1w" on 2024-03-09 gives
// "2024-03-02".
func WindowStartDate(now time.Time, input string) (string, error) {
	d, _, err := ParseWindow(input)
	if err != nil {
		return "", err
	}
	return now.Add(-d).Format(layoutISO), nil
}

// FormatWindow renders a duration using year/month/week/day tokens.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0d"
	}

	type unit struct {
		label string
		value time.Duration
	}
	units := []unit{
		{"y", 365 * 24 * time.Hour},
		{"mo", 30 * 24 * time.Hour},
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
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
		return "0d"
	}
	return strings.Join(parts, "")
}
