package training

import (
	"fmt"

	"github.com/alexanderramin/tableside/internal/catalog"
	"github.com/alexanderramin/tableside/internal/domain"
)

// pickScenario chooses the next scenario for a category and tier. Scenarios
// the trainee has not seen this session come first, in catalog order; once
// everything at the tier has been seen the rotation index cycles through
// them again. When the tier has no scenarios the whole category is
// considered, so a promotion never strands the session.
func pickScenario(cat *catalog.Catalog, category domain.Category, tier domain.Tier, seen map[string]bool, rotation int) (domain.Scenario, error) {
	candidates := cat.List(catalog.Filter{Category: category, Tier: tier})
	if len(candidates) == 0 {
		candidates = cat.List(catalog.Filter{Category: category})
	}
	if len(candidates) == 0 {
		return domain.Scenario{}, fmt.Errorf("category %s: %w", category, catalog.ErrNotFound)
	}

	for _, s := range candidates {
		if !seen[s.ID] {
			return s, nil
		}
	}
	return candidates[rotation%len(candidates)], nil
}
