// Package timeexpr converts between typed time expressions and instants.
//
// Parse accepts three grammars, tried in order:
//
//	relative duration  1y2mo3w4d5h6min (any subset, in that order, case-insensitive)
//	clock time         HH:MM            (today, local)
//	compact date       DDMM[YY][-HH:MM] (local; year defaults to the current one)
//
// Render turns an instant back into a short countdown such as "2d 3h" or
// "Overdue 50s". Both functions take "now" as an argument and never read the
// clock themselves.
package timeexpr

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/example/task/internal/models"
)

const day = 24 * time.Hour

// Fixed approximations; no calendar awareness.
const (
	Year  = 365 * day
	Month = 30 * day
	Week  = 7 * day
)

var (
	relativeRe = regexp.MustCompile(`(?i)^(?:(\d+)y)?(?:(\d+)mo)?(?:(\d+)w)?(?:(\d+)d)?(?:(\d+)h)?(?:(\d+)min)?$`)
	clockRe    = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
	compactRe  = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})?(?:-(\d{2}):(\d{2}))?$`)
)

// relativeUnits lines up with the capture groups of relativeRe.
var relativeUnits = [...]time.Duration{Year, Month, Week, day, time.Hour, time.Minute}

// Parse resolves input to an absolute instant in now's location. The error
// wraps models.ErrInvalidExpiration when no grammar accepts the input.
func Parse(input string, now time.Time) (time.Time, error) {
	if t, ok := parseRelative(input, now); ok {
		return t, nil
	}
	if m := clockRe.FindStringSubmatch(input); m != nil {
		return parseClock(input, m, now)
	}
	if m := compactRe.FindStringSubmatch(input); m != nil {
		return parseCompact(input, m, now)
	}
	return time.Time{}, invalid(input)
}

// parseRelative reports ok=false for an all-zero match so that a bare clock
// time or date falls through to the next grammar.
func parseRelative(input string, now time.Time) (time.Time, bool) {
	m := relativeRe.FindStringSubmatch(input)
	if m == nil {
		return time.Time{}, false
	}

	var total time.Duration
	for i, unit := range relativeUnits {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil || n > int64(maxDuration/unit) {
			return time.Time{}, false
		}
		step := time.Duration(n) * unit
		if total > maxDuration-step {
			return time.Time{}, false
		}
		total += step
	}
	if total == 0 {
		return time.Time{}, false
	}
	return now.Add(total).Truncate(time.Second), true
}

const maxDuration = time.Duration(1<<63 - 1)

func parseClock(input string, m []string, now time.Time) (time.Time, error) {
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return localDate(input, now.Year(), now.Month(), now.Day(), hour, minute, now.Location())
}

func parseCompact(input string, m []string, now time.Time) (time.Time, error) {
	d, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])

	year := now.Year()
	if m[3] != "" {
		yy, _ := strconv.Atoi(m[3])
		year = 2000 + yy
	}

	var hour, minute int
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
	}
	return localDate(input, year, time.Month(mo), d, hour, minute, now.Location())
}

// localDate builds the instant and rejects any field that time.Date had to
// normalize: out-of-range values, impossible days and wall times skipped by
// a DST transition all fail here.
func localDate(input string, year int, month time.Month, d, hour, minute int, loc *time.Location) (time.Time, error) {
	if month < time.January || month > time.December || hour > 23 || minute > 59 {
		return time.Time{}, invalid(input)
	}
	t := time.Date(year, month, d, hour, minute, 0, 0, loc)
	if t.Year() != year || t.Month() != month || t.Day() != d || t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, invalid(input)
	}
	return t, nil
}

func invalid(input string) error {
	return fmt.Errorf("%q: %w", input, models.ErrInvalidExpiration)
}
