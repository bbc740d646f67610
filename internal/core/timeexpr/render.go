package timeexpr

import (
	"strconv"
	"strings"
	"time"
)

// Buckets holds a duration split into display units, largest first:
// years, months, weeks, days, hours, minutes, seconds.
type Buckets [7]int64

var (
	bucketSeconds = Buckets{
		int64(Year / time.Second),
		int64(Month / time.Second),
		int64(Week / time.Second),
		int64(day / time.Second),
		3600,
		60,
		1,
	}
	bucketSuffix = [7]string{"y", "mo", "w", "d", "h", "m", "s"}

	// carryAt[i] is the value at which bucket i overflows into bucket i-1.
	carryAt = [7]int64{0, 12, 4, 7, 24, 60, 60}
)

// Render formats instant relative to now using the two most significant
// non-zero units, e.g. "1d 1h". Instants in the past are prefixed with
// "Overdue ".
func Render(instant, now time.Time) string {
	delta := instant.Unix() - now.Unix()
	negative := delta < 0
	if negative {
		delta = -delta
	}

	out := Format(Normalize(Decompose(delta)))
	if negative {
		return "Overdue " + out
	}
	return out
}

// Decompose splits a non-negative number of seconds into buckets by
// successive division, largest unit first.
func Decompose(seconds int64) Buckets {
	var b Buckets
	for i, size := range bucketSeconds {
		b[i] = seconds / size
		seconds %= size
	}
	return b
}

// Normalize carries overflowing buckets into the next larger unit, smallest
// first, until no bucket reaches its threshold.
func Normalize(b Buckets) Buckets {
	for changed := true; changed; {
		changed = false
		for i := len(b) - 1; i > 0; i-- {
			if b[i] >= carryAt[i] {
				b[i-1] += b[i] / carryAt[i]
				b[i] %= carryAt[i]
				changed = true
			}
		}
	}
	return b
}

// Format renders the two most significant non-zero buckets, or "0s".
func Format(b Buckets) string {
	parts := make([]string, 0, 2)
	for i, v := range b {
		if v == 0 {
			continue
		}
		parts = append(parts, strconv.FormatInt(v, 10)+bucketSuffix[i])
		if len(parts) == 2 {
			break
		}
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}
