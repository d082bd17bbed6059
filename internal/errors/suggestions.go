package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrTitleRequired:    "Provide a title as the first argument.",
	ErrInvalidPriority:  "Use one of: low, medium, high.",
	ErrInvalidAttendees: "Attendees must be 1 or more.",
	ErrInvalidDate:      "Try formats like 'tomorrow 5pm', 'friday', or '2026-09-15'.",
	ErrRecordNotFound:   "Use the list command to see available records and their ids.",

	// System errors
	ErrPersistFailed:     "The change is kept for this session but was not saved. Check disk space and permissions.",
	ErrDiskFull:          "Free up disk space and try again.",
	ErrDatabaseCorrupted: "Your local store could not be read; affected collections start empty.",
	ErrPermissionDenied:  "Check file permissions in your data directory (~/.local/share/skillhub/).",
}

// SuggestionFor returns a suggestion for the given error, if one exists.
func SuggestionFor(err error) string {
	if err == nil {
		return ""
	}

	// Check typed errors first - they carry their own suggestions
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	// Check sentinel errors
	for sentinel, suggestion := range Suggestions {
		if errors.Is(err, sentinel) {
			return suggestion
		}
	}

	return ""
}
