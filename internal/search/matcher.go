package search

import "strings"

// Record is anything the pipeline can match, filter and sort.
type Record interface {
	SearchFields() []string
	PublishDate() int64
	DisplayTitle() string
}

// NormalizeTerm lower-cases and trims a raw query term. Callers treat an
// empty result as "match everything" and skip matching entirely.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Matches reports whether the normalized term is a substring of any of the
// record's search fields. Empty fields simply never match; they are not an
// error. An empty term matches every record.
func Matches(r Record, term string) bool {
	if term == "" {
		return true
	}
	for _, f := range r.SearchFields() {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
