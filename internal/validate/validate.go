// Package validate provides input validation helpers for the SkillHub CLI.
package validate

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/errors"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
)

const (
	// MaxTitleLength is the maximum length for a title.
	MaxTitleLength = 128
	// MaxBodyLength is the maximum length for note content or a description.
	MaxBodyLength = 8192
)

// timeOfDayRegex validates HH:MM times.
var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Title validates an entity title.
func Title(title string) error {
	if title == "" {
		return errors.NewUserError("Title cannot be empty", "Provide a title as the first argument")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewUserErrorWithField("title", title,
			"Title too long",
			"Titles must be 128 characters or fewer")
	}
	return nil
}

// Body validates note content or a description.
func Body(body string) error {
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return errors.NewUserError("Content too long", "Content must be 8192 characters or fewer")
	}
	return nil
}

// Priority validates a task priority string and returns the typed value.
func Priority(s string) (model.Priority, error) {
	p := model.Priority(s)
	if !p.Valid() {
		return "", errors.NewUserErrorWithField("priority", s,
			"Invalid priority",
			"Use one of: low, medium, high")
	}
	return p, nil
}

// Attendees validates an attendee count argument.
func Attendees(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, errors.NewUserErrorWithField("attendees", s,
			"Invalid attendee count",
			"Attendees must be a positive number")
	}
	return n, nil
}

// TimeOfDay validates an HH:MM time string.
func TimeOfDay(s string) error {
	if !timeOfDayRegex.MatchString(s) {
		return errors.NewUserErrorWithField("time", s,
			"Invalid time of day",
			"Use 24-hour HH:MM, like 09:30 or 15:00")
	}
	return nil
}
