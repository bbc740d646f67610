package cli

import (
	"errors"
	"fmt"

	"github.com/example/task/internal/models"
)

// Describe turns an error returned by a command into the message shown to
// the user, adding a hint where one helps.
func Describe(err error) string {
	msg := "Error: " + err.Error()
	switch {
	case errors.Is(err, models.ErrInvalidExpiration):
		return msg + "\nHint: use 1d2h, 3w, 1mo, 90min, 14:30, 2403 or 240315-09:00"
	case errors.Is(err, models.ErrAmbiguousProject):
		return msg + "\nHint: add more of the path, e.g. `task list work/api`"
	case errors.Is(err, models.ErrProjectExists):
		return msg + "\nHint: see `task project list`"
	case errors.Is(err, models.ErrPersistence):
		return fmt.Sprintf("%s\nHint: check the data directory, or run with --verbose", msg)
	default:
		return msg
	}
}
