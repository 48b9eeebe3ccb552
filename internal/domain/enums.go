package domain

import "fmt"

// Category identifies a family of service scenarios.
type Category string

const (
	CategoryGreeting          Category = "greeting"
	CategoryMenuKnowledge     Category = "menu-knowledge"
	CategoryOrderTaking       Category = "order-taking"
	CategoryUpselling         Category = "upselling"
	CategoryProblemResolution Category = "problem-resolution"
	CategoryServiceRecovery   Category = "service-recovery"
)

// Categories returns all categories in canonical display order.
func Categories() []Category {
	return []Category{
		CategoryGreeting,
		CategoryMenuKnowledge,
		CategoryOrderTaking,
		CategoryUpselling,
		CategoryProblemResolution,
		CategoryServiceRecovery,
	}
}

var validCategories = map[Category]bool{
	CategoryGreeting: true, CategoryMenuKnowledge: true, CategoryOrderTaking: true,
	CategoryUpselling: true, CategoryProblemResolution: true, CategoryServiceRecovery: true,
}

var categoryDescriptions = map[Category]string{
	CategoryGreeting:          "First impressions and welcoming guests to the restaurant",
	CategoryMenuKnowledge:     "Understanding dishes, ingredients, and dietary requirements",
	CategoryOrderTaking:       "Efficiently processing orders and managing guest preferences",
	CategoryUpselling:         "Suggesting additional items to enhance the dining experience",
	CategoryProblemResolution: "Handling complaints and service issues professionally",
	CategoryServiceRecovery:   "Turning negative experiences into positive outcomes",
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !validCategories[c] {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Description returns a one-line summary of what the category covers.
func (c Category) Description() string {
	return categoryDescriptions[c]
}

// Tier is a scenario difficulty level.
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// Tiers returns all tiers from easiest to hardest.
func Tiers() []Tier {
	return []Tier{TierBeginner, TierIntermediate, TierAdvanced}
}

var tierRank = map[Tier]int{
	TierBeginner:     0,
	TierIntermediate: 1,
	TierAdvanced:     2,
}

// ParseTier validates a raw tier string.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if _, ok := tierRank[t]; !ok {
		return "", fmt.Errorf("unknown difficulty tier %q", s)
	}
	return t, nil
}

// Harder reports whether t is a more difficult level than other.
func (t Tier) Harder(other Tier) bool {
	return tierRank[t] > tierRank[other]
}

// Promote returns the next harder tier, clamped at advanced.
func (t Tier) Promote() Tier {
	switch t {
	case TierBeginner:
		return TierIntermediate
	case TierIntermediate:
		return TierAdvanced
	default:
		return TierAdvanced
	}
}

// Demote returns the next easier tier, clamped at beginner.
func (t Tier) Demote() Tier {
	switch t {
	case TierAdvanced:
		return TierIntermediate
	case TierIntermediate:
		return TierBeginner
	default:
		return TierBeginner
	}
}

// SessionState is the lifecycle state of a training session.
type SessionState string

const (
	SessionOpen       SessionState = "open"
	SessionInProgress SessionState = "in_progress"
	SessionClosed     SessionState = "closed"
)
