package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/backoffice/internal/domain"
)

var contentSchema = Schema[domain.Content]{
	Search: []Accessor[domain.Content]{
		func(c *domain.Content) string { return c.Title },
		func(c *domain.Content) string { return c.Body },
		func(c *domain.Content) string { return c.Category },
		func(c *domain.Content) string { return c.Excerpt },
	},
	Facets: map[string]Accessor[domain.Content]{
		"status":   func(c *domain.Content) string { return string(c.Status) },
		"category": func(c *domain.Content) string { return c.Category },
		"type":     func(c *domain.Content) string { return string(c.Type) },
	},
}

func content(id, title, category string, status domain.ContentStatus) domain.Content {
	c := domain.Content{Title: title, Category: category, Status: status, Type: domain.ContentTypeArticle}
	c.ID = id
	return c
}

func fixtures() []domain.Content {
	return []domain.Content{
		content("1", "금리 인상 소식", "뉴스", domain.ContentStatusPublished),
		content("2", "Release Notes", "공지", domain.ContentStatusPublished),
		content("3", "시장 동향", "뉴스", domain.ContentStatusDraft),
		content("4", "ABC Weekly", "뉴스", domain.ContentStatusPublished),
		content("5", "Event Banner", "이벤트", domain.ContentStatusScheduled),
	}
}

func ids(items []domain.Content) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

func TestApplyConjunctiveFacetsPreserveOrder(t *testing.T) {
	got := Apply(fixtures(), contentSchema, Filter{Facets: map[string]string{
		"status":   string(domain.ContentStatusPublished),
		"category": "뉴스",
	}})
	assert.Equal(t, []string{"1", "4"}, ids(got))
}

func TestApplyEmptyFilterIsIdentity(t *testing.T) {
	items := fixtures()
	assert.Equal(t, items, Apply(items, contentSchema, Filter{}))
	assert.Equal(t, items, Apply(items, contentSchema, Filter{Search: "   ", Facets: map[string]string{"status": ""}}))
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	items := fixtures()
	upper := Apply(items, contentSchema, Filter{Search: "ABC"})
	lower := Apply(items, contentSchema, Filter{Search: "abc"})
	assert.Equal(t, upper, lower)
	assert.Equal(t, []string{"4"}, ids(lower))
}

func TestApplySearchAnyFieldMatches(t *testing.T) {
	items := fixtures()
	items[1].Excerpt = "contains needle"
	items[2].Body = "NEEDLE in body"

	got := Apply(items, contentSchema, Filter{Search: "needle"})
	assert.Equal(t, []string{"2", "3"}, ids(got))

	none := Apply(items, contentSchema, Filter{Search: "haystack"})
	assert.Empty(t, none)
}

func TestApplySearchAndFacetCombine(t *testing.T) {
	got := Apply(fixtures(), contentSchema, Filter{
		Search: "뉴스",
		Facets: map[string]string{"status": string(domain.ContentStatusDraft)},
	})
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestApplyNarrowsMonotonically(t *testing.T) {
	items := fixtures()
	steps := []Filter{
		{},
		{Facets: map[string]string{"category": "뉴스"}},
		{Facets: map[string]string{"category": "뉴스", "status": "published"}},
		{Search: "abc", Facets: map[string]string{"category": "뉴스", "status": "published"}},
	}
	prev := len(items)
	for _, f := range steps {
		n := len(Apply(items, contentSchema, f))
		assert.LessOrEqual(t, n, prev)
		prev = n
	}
}

func TestApplyResultIsSubsequence(t *testing.T) {
	items := fixtures()
	got := Apply(items, contentSchema, Filter{Search: "e"})
	j := 0
	for _, c := range got {
		for j < len(items) && items[j].ID != c.ID {
			j++
		}
		if !assert.Less(t, j, len(items), "result is not an ordered subsequence") {
			return
		}
		j++
	}
}

func TestApplyUnknownFacetMatchesNothing(t *testing.T) {
	got := Apply(fixtures(), contentSchema, Filter{Facets: map[string]string{"colour": "red"}})
	assert.Empty(t, got)
}

func TestFilterWithCopies(t *testing.T) {
	base := Filter{Facets: map[string]string{"status": "draft"}}
	next := base.With("category", "뉴스")
	assert.Len(t, base.Facets, 1)
	assert.Equal(t, "뉴스", next.Facets["category"])
	assert.False(t, next.IsEmpty())
	assert.True(t, Filter{}.IsEmpty())
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name          string
		limit, offset int
		want          []int
	}{
		{name: "all", want: []int{1, 2, 3, 4, 5}},
		{name: "first page", limit: 2, want: []int{1, 2}},
		{name: "second page", limit: 2, offset: 2, want: []int{3, 4}},
		{name: "tail", limit: 2, offset: 4, want: []int{5}},
		{name: "past end", limit: 2, offset: 10, want: []int{}},
		{name: "negative offset", limit: 1, offset: -3, want: []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Page(items, tt.limit, tt.offset))
		})
	}
}

func TestFacetNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"category", "status", "type"}, contentSchema.FacetNames())
	assert.True(t, contentSchema.HasFacet("status"))
	assert.False(t, contentSchema.HasFacet("author"))
}
