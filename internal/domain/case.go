package domain

import (
	"time"

	"github.com/google/uuid"
)

// Case is a published legal case summary. Text fields marked as rich text
// (Summary, Comments, timeline descriptions) hold a sanitized HTML subset.
type Case struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	CaseNumber     string          `json:"caseNumber,omitempty"`
	Court          string          `json:"court,omitempty"`
	ConclusionDate string          `json:"conclusionDate,omitempty"`
	OriginalLink   string          `json:"originalLink,omitempty"`
	Summary        string          `json:"summary"`
	Comments       string          `json:"comments,omitempty"`
	Keywords       []string        `json:"keywords"`
	RelatedCases   []RelatedCase   `json:"relatedCases"`
	Timeline       []TimelineEvent `json:"timeline"`
	PublishedAt    int64           `json:"publishedAt"`
	CreatedAt      int64           `json:"createdAt"`
	UpdatedAt      int64           `json:"updatedAt"`
}

// RelatedCase is a named cross-reference attached to a Case or Article.
type RelatedCase struct {
	Name string `json:"name"`
	Link string `json:"link,omitempty"`
}

// TimelineEvent lives inside its parent Case and has no identity beyond
// position. The whole list is replaced on every edit.
type TimelineEvent struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Normalize guarantees that list fields read back as empty lists, never null.
func (c *Case) Normalize() {
	if c.Keywords == nil {
		c.Keywords = []string{}
	}
	if c.RelatedCases == nil {
		c.RelatedCases = []RelatedCase{}
	}
	if c.Timeline == nil {
		c.Timeline = []TimelineEvent{}
	}
}

// ConclusionYear parses the year out of ConclusionDate. A missing or
// unparseable date reports ok=false; year filters exclude such cases.
func (c Case) ConclusionYear() (int, bool) {
	d := c.ConclusionDate
	if len(d) > len(isoDateLayout) {
		d = d[:len(isoDateLayout)]
	}
	t, err := time.Parse(isoDateLayout, d)
	if err != nil {
		return 0, false
	}
	return t.Year(), true
}

const isoDateLayout = "2006-01-02"

// SearchFields lists every text field the matcher scans for a case.
func (c Case) SearchFields() []string {
	fields := []string{c.Title, c.Summary, c.Comments, c.CaseNumber, c.Court}
	fields = append(fields, c.Keywords...)
	if len(c.ConclusionDate) >= len(isoDateLayout) {
		fields = append(fields, c.ConclusionDate[:len(isoDateLayout)])
	}
	return fields
}

func (c Case) PublishDate() int64 { return c.PublishedAt }

func (c Case) DisplayTitle() string { return c.Title }
