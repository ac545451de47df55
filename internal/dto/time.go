package dto

import (
	"time"

	"github.com/pennywise-app/pennywise-backend/internal/errs"
)

// Accepted client time layouts, in the order they are tried. The second is
// what an HTML datetime-local control submits, the third a bare date picker.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseEventTime is the single conversion point between client-supplied
// time strings and time.Time. An empty value means "not provided" and
// returns the zero time with no error; callers decide the default.
func ParseEventTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, errs.NewValidationError("unrecognized time value: " + value)
}
