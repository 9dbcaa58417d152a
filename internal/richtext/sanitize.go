// Package richtext defines the sanitized HTML subset allowed in summaries,
// comments, article bodies and timeline descriptions. All markup is cleaned
// on write; storage never holds unsanitized user HTML.
package richtext

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/veslaw/casefolio/internal/domain"
)

type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds the shared write-path policy: basic formatting,
// superscript, headings, lists and safe links. Everything else is stripped.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "sup", "p", "br", "ul", "ol", "li", "h1", "h2", "h3")
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	return &Sanitizer{policy: p}
}

func (s *Sanitizer) Clean(html string) string {
	return s.policy.Sanitize(html)
}

// CleanCase sanitizes every rich-text field of a case in place, including
// embedded timeline descriptions.
func (s *Sanitizer) CleanCase(c *domain.Case) {
	c.Summary = s.Clean(c.Summary)
	c.Comments = s.Clean(c.Comments)
	for i := range c.Timeline {
		c.Timeline[i].Description = s.Clean(c.Timeline[i].Description)
	}
}

// CleanArticle sanitizes every rich-text field of an article in place.
func (s *Sanitizer) CleanArticle(a *domain.Article) {
	a.Intro = s.Clean(a.Intro)
	a.Content = s.Clean(a.Content)
}

// CleanTimeline sanitizes descriptions of a standalone event list, used by
// the timeline-only update path.
func (s *Sanitizer) CleanTimeline(events []domain.TimelineEvent) {
	for i := range events {
		events[i].Description = s.Clean(events[i].Description)
	}
}
