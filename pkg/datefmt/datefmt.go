// Package datefmt renders calendar dates for profile display. The output
// format is fixed (dd/mm/yyyy, UTC) regardless of server locale so the same
// record always renders the same string.
package datefmt

import "time"

// Placeholder is returned when no timestamp is available.
const Placeholder = "Date unavailable"

const layout = "02/01/2006"

// Date formats t as dd/mm/yyyy in UTC. A nil t yields Placeholder.
func Date(t *time.Time) string {
	if t == nil {
		return Placeholder
	}
	return t.UTC().Format(layout)
}

// Millis formats a Unix-millisecond timestamp as dd/mm/yyyy in UTC.
func Millis(ms int64) string {
	t := time.UnixMilli(ms)
	return Date(&t)
}
