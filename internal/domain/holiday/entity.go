package holiday

import "time"

// Holiday is a date-only calendar entry. Backend-declared public holidays and
// locally configured custom holidays share this shape.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      *string
	CreatedAt time.Time
}

// Set is membership by ISO date, deduplicated across sources.
type Set map[string]struct{}

// Add records an ISO date, dropping any time component.
func (s Set) Add(date time.Time) {
	s[date.Format("2006-01-02")] = struct{}{}
}

// Contains reports membership for the date portion of t.
func (s Set) Contains(t time.Time) bool {
	_, ok := s[t.Format("2006-01-02")]
	return ok
}

// ContainsISO reports membership for an already formatted ISO date.
func (s Set) ContainsISO(isoDate string) bool {
	_, ok := s[isoDate]
	return ok
}
