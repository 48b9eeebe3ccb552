package domain

import "fmt"

// Scenario is a single scripted service situation. Scenarios are immutable
// once loaded into the catalog.
type Scenario struct {
	ID       string
	Category Category
	Tier     Tier
	Prompt   string
	Rubric   []string
}

// Validate checks that the scenario is well-formed for catalog use.
func (s Scenario) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scenario id is required")
	}
	if !validCategories[s.Category] {
		return fmt.Errorf("scenario %s: unknown category %q", s.ID, s.Category)
	}
	if _, ok := tierRank[s.Tier]; !ok {
		return fmt.Errorf("scenario %s: unknown tier %q", s.ID, s.Tier)
	}
	if s.Prompt == "" {
		return fmt.Errorf("scenario %s: prompt is required", s.ID)
	}
	return nil
}

// Assessment is the structured judgment of one trainee response.
type Assessment struct {
	Score           int
	Feedback        string
	MatchedCriteria []string
	MissedCriteria  []string
}

// Validate checks assessment invariants (score range).
func (a Assessment) Validate() error {
	if a.Score < 0 || a.Score > 100 {
		return fmt.Errorf("assessment score %d out of range 0-100", a.Score)
	}
	return nil
}
