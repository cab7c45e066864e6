package services

import (
	"context"
	"strings"

	"github.com/yashasvi9199/MatchFind/models"
)

// SearchQuery holds the free-text facets of the search screen. Every empty
// facet means no constraint; set facets AND together.
type SearchQuery struct {
	Name  string `json:"name"`
	Caste string `json:"caste"`
	Gotra string `json:"gotra"`
	City  string `json:"city"`
}

// FacetFilter narrows a browsing result set. Empty string facets and false
// booleans mean no constraint on that facet.
type FacetFilter struct {
	Caste            string `json:"caste"`
	Gotra            string `json:"gotra"`
	SkinColor        string `json:"skinColor"`
	SiblingsNone     bool   `json:"siblingsNone"`
	HealthIssuesNone bool   `json:"healthIssuesNone"`
}

// SearchService answers the search screen over the caller's potential
// matches, so decided-upon candidates never resurface there either.
type SearchService struct {
	Matches *MatchService
}

func NewSearchService(matches *MatchService) *SearchService {
	return &SearchService{Matches: matches}
}

// Search narrows the caller's potential matches by case-insensitive
// substring on each set facet.
func (ss *SearchService) Search(ctx context.Context, userID, gender string, q SearchQuery) ([]models.CandidateProfile, error) {
	pool, err := ss.Matches.PotentialMatches(ctx, userID, gender)
	if err != nil {
		return nil, err
	}

	contains := func(haystack, needle string) bool {
		return needle == "" || strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}

	out := []models.CandidateProfile{}
	for _, p := range pool {
		if contains(p.Name, q.Name) && contains(p.Caste, q.Caste) &&
			contains(p.Gotra, q.Gotra) && contains(p.CurrentCity, q.City) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ApplyFilters narrows whatever result set is in view by the facet
// conjunction. Pure function.
func ApplyFilters(profiles []models.CandidateProfile, f FacetFilter) []models.CandidateProfile {
	out := []models.CandidateProfile{}
	for _, p := range profiles {
		if f.Caste != "" && p.Caste != f.Caste {
			continue
		}
		if f.Gotra != "" && p.Gotra != f.Gotra {
			continue
		}
		if f.SkinColor != "" && p.SkinColor != f.SkinColor {
			continue
		}
		if f.SiblingsNone && len(p.Siblings) > 0 {
			continue
		}
		if f.HealthIssuesNone && len(p.HealthIssues) > 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}
