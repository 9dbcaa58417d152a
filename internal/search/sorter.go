package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/veslaw/casefolio/internal/domain"
)

type SortKey string

const (
	SortNewest SortKey = "newest"
	SortOldest SortKey = "oldest"
	SortAZ     SortKey = "az"
)

// ParseSortKey maps a raw query value to a sort key, defaulting to newest.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortOldest:
		return SortOldest
	case SortAZ:
		return SortAZ
	default:
		return SortNewest
	}
}

// Sort returns a freshly ordered copy of records. The input slice is never
// mutated and ties keep their encounter order.
func Sort[T Record](records []T, key SortKey) []T {
	out := make([]T, len(records))
	copy(out, records)

	switch key {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PublishDate() < out[j].PublishDate()
		})
	case SortAZ:
		coll := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return coll.CompareString(out[i].DisplayTitle(), out[j].DisplayTitle()) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PublishDate() > out[j].PublishDate()
		})
	}
	return out
}

// SortTimeline orders events newest date first. This is the display order
// and also the order persisted back on every timeline save, regardless of
// the insertion order of the events.
func SortTimeline(events []domain.TimelineEvent) []domain.TimelineEvent {
	out := make([]domain.TimelineEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
