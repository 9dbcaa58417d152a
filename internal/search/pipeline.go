package search

import "github.com/veslaw/casefolio/internal/domain"

// SearchFetchLimit bounds how many records a single search pulls from
// storage. Results past the cap are silently unreachable; that is an accepted
// limitation of the brute-force pipeline, not an error.
const SearchFetchLimit = 500

// ArticleFetchLimit is the default bound for article listings.
const ArticleFetchLimit = 20

// CaseQuery carries every knob of the case search bar. Zero values mean
// "filter not active".
type CaseQuery struct {
	Term      string
	Year      int
	Court     string
	StartDate int64
	EndDate   int64
	Sort      SortKey
}

// ArticleQuery carries the article search bar knobs.
type ArticleQuery struct {
	Term      string
	StartDate int64
	EndDate   int64
	Sort      SortKey
}

// Cases runs the fixed facet -> match -> sort pipeline over an already
// fetched record set. It is read-only: the input slice is never mutated and
// every call returns a fresh list.
func Cases(all []domain.Case, q CaseQuery) []domain.Case {
	filtered := FilterYear(all, q.Year)
	filtered = FilterCourt(filtered, q.Court)
	filtered = FilterDateRange(filtered, q.StartDate, q.EndDate)

	term := NormalizeTerm(q.Term)
	if term != "" {
		matched := make([]domain.Case, 0, len(filtered))
		for _, c := range filtered {
			if Matches(c, term) {
				matched = append(matched, c)
			}
		}
		filtered = matched
	}

	return Sort(filtered, q.Sort)
}

// Articles runs the article variant of the pipeline: date-range facet,
// then matching, then sorting.
func Articles(all []domain.Article, q ArticleQuery) []domain.Article {
	filtered := FilterDateRange(all, q.StartDate, q.EndDate)

	term := NormalizeTerm(q.Term)
	if term != "" {
		matched := make([]domain.Article, 0, len(filtered))
		for _, a := range filtered {
			if Matches(a, term) {
				matched = append(matched, a)
			}
		}
		filtered = matched
	}

	return Sort(filtered, q.Sort)
}
