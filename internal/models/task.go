// Package models contains the domain types shared by services and storage adapters.
package models

import "time"

// Task is one item in a project's bucket.
//
// ID is positional: within a bucket ids always run 1..N in display order and
// are re-derived after every deletion, so they must never be cached across
// commands.
type Task struct {
	ID       int
	Name     string
	Finished bool
	// Expiration is a unix timestamp in seconds, nil when the task never expires.
	Expiration *int64
}

// HasExpiration reports whether the task carries an expiration instant.
func (t Task) HasExpiration() bool {
	return t.Expiration != nil
}

// ExpiresAt returns the expiration as a local time. Only meaningful when
// HasExpiration is true.
func (t Task) ExpiresAt() time.Time {
	if t.Expiration == nil {
		return time.Time{}
	}
	return time.Unix(*t.Expiration, 0)
}

// Unix returns a pointer to the seconds value of ts, for use as Task.Expiration.
func Unix(ts time.Time) *int64 {
	v := ts.Unix()
	return &v
}
