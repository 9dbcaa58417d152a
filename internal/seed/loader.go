// Package seed loads YAML fixture files used by the data import tool to
// populate a fresh store with demo cases and articles.
package seed

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/veslaw/casefolio/internal/domain"
)

type File struct {
	Cases    []CaseFixture    `yaml:"cases"`
	Articles []ArticleFixture `yaml:"articles"`
}

type CaseFixture struct {
	Title          string           `yaml:"title"`
	CaseNumber     string           `yaml:"caseNumber"`
	Court          string           `yaml:"court"`
	ConclusionDate string           `yaml:"conclusionDate"`
	OriginalLink   string           `yaml:"originalLink"`
	Summary        string           `yaml:"summary"`
	Comments       string           `yaml:"comments"`
	Keywords       []string         `yaml:"keywords"`
	RelatedCases   []RelatedFixture `yaml:"relatedCases"`
	Timeline       []EventFixture   `yaml:"timeline"`
}

type ArticleFixture struct {
	Title        string           `yaml:"title"`
	Excerpt      string           `yaml:"excerpt"`
	Intro        string           `yaml:"intro"`
	Content      string           `yaml:"content"`
	Keywords     []string         `yaml:"keywords"`
	RelatedCases []RelatedFixture `yaml:"relatedCases"`
}

type RelatedFixture struct {
	Name string `yaml:"name"`
	Link string `yaml:"link"`
}

type EventFixture struct {
	Date        string `yaml:"date"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Loader struct {
	reader io.Reader
}

func NewLoader(reader io.Reader) *Loader {
	return &Loader{reader: reader}
}

func (l *Loader) Load(validate bool) (*File, error) {
	decoder := yaml.NewDecoder(l.reader)
	var f File
	if err := decoder.Decode(&f); err != nil {
		return nil, err
	}
	if validate {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

func (f *File) Validate() error {
	for i, c := range f.Cases {
		if c.Title == "" {
			return fmt.Errorf("case %d: title is required", i)
		}
	}
	for i, a := range f.Articles {
		if a.Title == "" {
			return fmt.Errorf("article %d: title is required", i)
		}
	}
	return nil
}

func (c CaseFixture) ToDomain() domain.Case {
	out := domain.Case{
		Title:          c.Title,
		CaseNumber:     c.CaseNumber,
		Court:          c.Court,
		ConclusionDate: c.ConclusionDate,
		OriginalLink:   c.OriginalLink,
		Summary:        c.Summary,
		Comments:       c.Comments,
		Keywords:       c.Keywords,
		RelatedCases:   toRelated(c.RelatedCases),
	}
	for _, ev := range c.Timeline {
		out.Timeline = append(out.Timeline, domain.TimelineEvent{
			Date:        ev.Date,
			Title:       ev.Title,
			Description: ev.Description,
		})
	}
	out.Normalize()
	return out
}

func (a ArticleFixture) ToDomain() domain.Article {
	out := domain.Article{
		Title:        a.Title,
		Excerpt:      a.Excerpt,
		Intro:        a.Intro,
		Content:      a.Content,
		Keywords:     a.Keywords,
		RelatedCases: toRelated(a.RelatedCases),
	}
	out.Normalize()
	return out
}

func toRelated(fixtures []RelatedFixture) []domain.RelatedCase {
	out := make([]domain.RelatedCase, 0, len(fixtures))
	for _, r := range fixtures {
		out = append(out, domain.RelatedCase{Name: r.Name, Link: r.Link})
	}
	return out
}
