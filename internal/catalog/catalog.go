package catalog

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/tableside/internal/domain"
)

// ErrNotFound is returned when no scenario matches the requested id or filter.
var ErrNotFound = errors.New("scenario not found")

// Filter narrows a catalog listing. Zero values mean "no filter" on that
// dimension.
type Filter struct {
	Category domain.Category
	Tier     domain.Tier
}

func (f Filter) matches(s domain.Scenario) bool {
	if f.Category != "" && s.Category != f.Category {
		return false
	}
	if f.Tier != "" && s.Tier != f.Tier {
		return false
	}
	return true
}

// Catalog is a read-only collection of training scenarios. Construct with
// New or Builtin; the catalog never changes after construction.
type Catalog struct {
	scenarios []domain.Scenario
	byID      map[string]domain.Scenario
}

// New builds a catalog from the given scenarios, validating each and
// rejecting duplicate ids.
func New(scenarios []domain.Scenario) (*Catalog, error) {
	c := &Catalog{
		scenarios: make([]domain.Scenario, 0, len(scenarios)),
		byID:      make(map[string]domain.Scenario, len(scenarios)),
	}
	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scenario id %q", s.ID)
		}
		c.byID[s.ID] = s
		c.scenarios = append(c.scenarios, s)
	}
	return c, nil
}

// List returns all scenarios matching the filter, in catalog order.
func (c *Catalog) List(f Filter) []domain.Scenario {
	var out []domain.Scenario
	for _, s := range c.scenarios {
		if f.matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// Get returns the scenario with the given id.
func (c *Catalog) Get(id string) (domain.Scenario, error) {
	s, ok := c.byID[id]
	if !ok {
		return domain.Scenario{}, fmt.Errorf("scenario %q: %w", id, ErrNotFound)
	}
	return s, nil
}

// Len reports the number of scenarios in the catalog.
func (c *Catalog) Len() int {
	return len(c.scenarios)
}

// Merge returns a new catalog containing this catalog's scenarios plus the
// given extras. Extras may not reuse existing ids.
func (c *Catalog) Merge(extras []domain.Scenario) (*Catalog, error) {
	combined := make([]domain.Scenario, 0, len(c.scenarios)+len(extras))
	combined = append(combined, c.scenarios...)
	combined = append(combined, extras...)
	return New(combined)
}
