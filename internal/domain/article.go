package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is an editorial piece ("thought"). Intro and Content are rich text.
// Articles are hard-deleted; there is no soft-delete state.
type Article struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Excerpt      string        `json:"excerpt"`
	Intro        string        `json:"intro"`
	Content      string        `json:"content"`
	Keywords     []string      `json:"keywords"`
	RelatedCases []RelatedCase `json:"relatedCases"`
	PublishedAt  int64         `json:"publishedAt"`
	UpdatedAt    int64         `json:"updatedAt"`
}

// Normalize guarantees that list fields read back as empty lists, never null.
func (a *Article) Normalize() {
	if a.Keywords == nil {
		a.Keywords = []string{}
	}
	if a.RelatedCases == nil {
		a.RelatedCases = []RelatedCase{}
	}
}

// SearchFields lists every text field the matcher scans for an article,
// including the ISO date prefix of the publish timestamp.
func (a Article) SearchFields() []string {
	fields := []string{a.Title, a.Excerpt, a.Intro, a.Content}
	fields = append(fields, a.Keywords...)
	if a.PublishedAt > 0 {
		fields = append(fields, time.UnixMilli(a.PublishedAt).UTC().Format(isoDateLayout))
	}
	return fields
}

func (a Article) PublishDate() int64 { return a.PublishedAt }

func (a Article) DisplayTitle() string { return a.Title }
