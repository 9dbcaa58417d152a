package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veslaw/casefolio/internal/domain"
	"github.com/veslaw/casefolio/internal/search"
)

func TestNormalizeTerm(t *testing.T) {
	assert.Equal(t, "brown", search.NormalizeTerm("  BroWn "))
	assert.Equal(t, "", search.NormalizeTerm("   "))
	assert.Equal(t, "", search.NormalizeTerm(""))
}

func TestMatches_EmptyTermMatchesEverything(t *testing.T) {
	records := []domain.Case{
		{},
		{Title: "Brown v Board"},
		{Title: "Roe v Wade", Court: "Supreme Court"},
	}
	for _, c := range records {
		assert.True(t, search.Matches(c, search.NormalizeTerm("   ")))
	}
}

func TestMatches_CaseFields(t *testing.T) {
	c := domain.Case{
		Title:          "Brown v Board of Education",
		CaseNumber:     "347 U.S. 483",
		Court:          "Supreme Court",
		ConclusionDate: "1954-05-17",
		Summary:        "Racial segregation in public schools is unconstitutional.",
		Comments:       "Landmark ruling.",
		Keywords:       []string{"segregation", "equal protection"},
	}

	tests := []struct {
		term string
		want bool
	}{
		{"brown", true},
		{"BOARD", true},
		{"347", true},
		{"supreme", true},
		{"1954-05", true},
		{"unconstitutional", true},
		{"landmark", true},
		{"equal prot", true},
		{"plessy", false},
	}
	for _, tt := range tests {
		got := search.Matches(c, search.NormalizeTerm(tt.term))
		assert.Equal(t, tt.want, got, "term %q", tt.term)
	}
}

func TestMatches_AbsentFieldsAreNotErrors(t *testing.T) {
	c := domain.Case{Title: "Untitled"}
	assert.False(t, search.Matches(c, "supreme"))
	assert.True(t, search.Matches(c, "untitled"))
}

func TestMatches_ArticleDatePrefix(t *testing.T) {
	// 2020-06-15T00:00:00Z in millis
	a := domain.Article{
		Title:       "On standing doctrine",
		PublishedAt: 1592179200000,
	}
	assert.True(t, search.Matches(a, "2020-06-15"))
	assert.True(t, search.Matches(a, "2020-06"))
	assert.False(t, search.Matches(a, "2021"))
}

func TestMatches_ArticleKeywords(t *testing.T) {
	a := domain.Article{
		Title:    "Quiet term",
		Excerpt:  "A look back",
		Keywords: []string{"appellate review"},
	}
	assert.True(t, search.Matches(a, "appellate"))
	assert.True(t, search.Matches(a, "look"))
	assert.False(t, search.Matches(a, "certiorari"))
}
