package entity

import "encoding/json"

// SearchScope restricts a search to one resource.
type SearchScope string

const (
	SearchScopeAll           SearchScope = ""
	SearchScopeOportunidades SearchScope = "oportunidades"
	SearchScopeArticulos     SearchScope = "articulos"
)

// Search caps.
const (
	SearchOpportunityLimit = 10
	SearchArticleLimit     = 5
)

func (s SearchScope) IsValid() bool {
	switch s {
	case SearchScopeAll, SearchScopeOportunidades, SearchScopeArticulos:
		return true
	}
	return false
}

// IncludesOpportunities reports whether opportunities are searched.
func (s SearchScope) IncludesOpportunities() bool {
	return s == SearchScopeAll || s == SearchScopeOportunidades
}

// IncludesArticles reports whether articles are searched.
func (s SearchScope) IncludesArticles() bool {
	return s == SearchScopeAll || s == SearchScopeArticulos
}

// SearchResult holds the lists that were searched. A nil slice means the
// resource was not searched and its key is left out of the JSON object.
type SearchResult struct {
	Opportunities []*Opportunity
	Articles      []*Article
}

func (r SearchResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, 2)
	if r.Opportunities != nil {
		out["opportunities"] = r.Opportunities
	}
	if r.Articles != nil {
		out["articles"] = r.Articles
	}
	return json.Marshal(out)
}
