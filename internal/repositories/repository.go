package repositories

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a lookup matches no row. Handlers translate it
// to a 404; every other repository error is a server-side storage failure.
var ErrNotFound = errors.New("record not found")

const (
	DefaultListLimit = 100

	recordCacheExpiry = 1 * time.Hour
)

// ListParams are the optional filter dimensions for list operations. The
// dimensions compose with AND; an unset dimension imposes no constraint.
type ListParams struct {
	UserEmail string
	Search    string
	Skip      int
	Limit     int
}

// normalized applies the pagination defaults: skip 0, limit 100.
func (p ListParams) normalized() ListParams {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	}
	return p
}

// searchTerm builds the case-insensitive substring pattern used with
// LOWER(col) LIKE, which behaves the same on sqlite and postgres.
func searchTerm(search string) string {
	return "%" + strings.ToLower(search) + "%"
}
