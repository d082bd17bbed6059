// Package parser turns natural language date expressions into timestamps.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/errors"
)

// relativeRegex matches relative expressions like "+5m", "+1h", "+2d", "+1w".
var relativeRegex = regexp.MustCompile(`^\+(\d+)([smhdw])$`)

// ParseWhen parses a date expression for due dates and event dates.
// Supports formats like:
//   - "+1h", "+2d", "+1w" (relative to now)
//   - "tomorrow 5pm", "friday" (natural language)
//   - "2026-09-15" or "2026-09-15 14:00" (ISO format)
func ParseWhen(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, errors.Wrap(errors.ErrInvalidDate, "empty date")
	}

	if match := relativeRegex.FindStringSubmatch(input); match != nil {
		return parseRelative(match[1], match[2])
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.ErrInvalidDate, "%q", input)
	}
	return result.Time, nil
}

func parseRelative(numStr, unit string) (time.Time, error) {
	num, _ := strconv.Atoi(numStr)
	if num <= 0 {
		return time.Time{}, errors.Wrap(errors.ErrInvalidDate, "duration must be positive")
	}

	now := time.Now()
	switch unit {
	case "s":
		return now.Add(time.Duration(num) * time.Second), nil
	case "m":
		return now.Add(time.Duration(num) * time.Minute), nil
	case "h":
		return now.Add(time.Duration(num) * time.Hour), nil
	case "d":
		return now.AddDate(0, 0, num), nil
	case "w":
		return now.AddDate(0, 0, num*7), nil
	}
	return time.Time{}, errors.Wrapf(errors.ErrInvalidDate, "unknown unit %q", unit)
}
