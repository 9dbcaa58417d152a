package search

import "github.com/veslaw/casefolio/internal/domain"

// FilterYear keeps cases whose conclusion date parses to the target year.
// While a year filter is active, cases with a missing or unparseable
// conclusion date are excluded; with year == 0 everything passes through.
func FilterYear(cases []domain.Case, year int) []domain.Case {
	if year == 0 {
		return cases
	}
	out := make([]domain.Case, 0, len(cases))
	for _, c := range cases {
		y, ok := c.ConclusionYear()
		if ok && y == year {
			out = append(out, c)
		}
	}
	return out
}

// FilterCourt keeps cases heard by the given court. Empty court passes
// everything through.
func FilterCourt(cases []domain.Case, court string) []domain.Case {
	if court == "" {
		return cases
	}
	out := make([]domain.Case, 0, len(cases))
	for _, c := range cases {
		if c.Court == court {
			out = append(out, c)
		}
	}
	return out
}

// FilterDateRange keeps records whose publish timestamp falls inside the
// inclusive [start, end] bounds. A zero bound is open on that side.
func FilterDateRange[T Record](records []T, start, end int64) []T {
	if start == 0 && end == 0 {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		ts := r.PublishDate()
		if start != 0 && ts < start {
			continue
		}
		if end != 0 && ts > end {
			continue
		}
		out = append(out, r)
	}
	return out
}
