package catalog

import "github.com/alexanderramin/tableside/internal/domain"

// Builtin returns the curated scenario set shipped with the binary. The set
// covers every category at every tier.
func Builtin() *Catalog {
	c, err := New(builtinScenarios)
	if err != nil {
		// The builtin set is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}

var builtinScenarios = []domain.Scenario{
	{
		ID:       "greeting-walkin",
		Category: domain.CategoryGreeting,
		Tier:     domain.TierBeginner,
		Prompt: "A guest enters during a busy dinner service, looks around uncertainly, " +
			"and seems to be waiting for someone to acknowledge them. Describe, step by " +
			"step, how you would greet this guest and make them feel welcome.",
		Rubric: []string{
			"approaches the guest promptly",
			"offers a warm, professional greeting",
			"handles the busy-room context calmly",
			"explains the next step (seating or wait time)",
		},
	},
	{
		ID:       "greeting-large-party",
		Category: domain.CategoryGreeting,
		Tier:     domain.TierIntermediate,
		Prompt: "A group of six arrives: two children and an elderly guest who has " +
			"difficulty walking. The restaurant is moderately busy and you are the first " +
			"staff member they meet. How do you handle the greeting and seating?",
		Rubric: []string{
			"greets the whole group and identifies the host",
			"accommodates the elderly guest's mobility needs",
			"manages the group efficiently without rushing",
			"chooses appropriate seating arrangements",
		},
	},
	{
		ID:       "greeting-returning-complaint",
		Category: domain.CategoryGreeting,
		Tier:     domain.TierAdvanced,
		Prompt: "A well-dressed couple enters and you recognize them as returning guests " +
			"who previously complained about slow service. They seem tense, and the room " +
			"is at 90% capacity. How do you handle this greeting?",
		Rubric: []string{
			"acknowledges the previous experience tactfully",
			"rebuilds trust without over-promising",
			"sets realistic expectations for tonight",
			"coordinates with colleagues to protect the experience",
		},
	},
	{
		ID:       "menu-unknown-ingredients",
		Category: domain.CategoryMenuKnowledge,
		Tier:     domain.TierBeginner,
		Prompt: "A guest asks about the ingredients in the Chef's Special Pasta. You are " +
			"not entirely sure of all of them but want to be helpful. What do you say and do?",
		Rubric: []string{
			"admits uncertainty honestly",
			"commits to getting accurate information from the kitchen",
			"avoids guessing about ingredients",
			"follows up with the guest promptly",
		},
	},
	{
		ID:       "menu-nut-allergy",
		Category: domain.CategoryMenuKnowledge,
		Tier:     domain.TierIntermediate,
		Prompt: "A guest with a severe nut allergy asks detailed questions about several " +
			"dishes: preparation methods, cross-contamination risk, ingredient sourcing. " +
			"They are visibly worried about their safety. How do you respond?",
		Rubric: []string{
			"treats the allergy as a safety issue, not a preference",
			"gathers precise information rather than reassuring blindly",
			"involves the kitchen on cross-contamination",
			"offers safe alternatives",
		},
	},
	{
		ID:       "menu-food-critic",
		Category: domain.CategoryMenuKnowledge,
		Tier:     domain.TierAdvanced,
		Prompt: "A food critic is dining with a companion, asking extremely detailed " +
			"questions about every dish: techniques, ingredient origins, wine pairings, the " +
			"chef's inspiration. They are taking notes. How do you handle the evaluation?",
		Rubric: []string{
			"stays composed under scrutiny",
			"provides detailed, accurate answers or escalates gracefully",
			"brings in the kitchen or sommelier where appropriate",
			"keeps the overall experience flowing",
		},
	},
	{
		ID:       "order-indecisive-table",
		Category: domain.CategoryOrderTaking,
		Tier:     domain.TierBeginner,
		Prompt: "You are taking an order from a table of four. One person is still " +
			"deciding, another keeps changing their mind, and two are ready and getting " +
			"impatient. How do you manage the table?",
		Rubric: []string{
			"gives the undecided guest space without stalling the table",
			"keeps the ready guests engaged",
			"maintains order accuracy despite the changes",
			"defuses rising tension politely",
		},
	},
	{
		ID:       "order-dietary-matrix",
		Category: domain.CategoryOrderTaking,
		Tier:     domain.TierIntermediate,
		Prompt: "A table of eight has multiple dietary restrictions: two vegetarians, one " +
			"gluten-free, one dairy-free, and one severe shellfish allergy, all ordering " +
			"different dishes. How do you take and verify this order?",
		Rubric: []string{
			"tracks each restriction against each dish",
			"communicates the restrictions clearly to the kitchen",
			"double-checks the order back to the table",
			"handles the allergy with explicit safety steps",
		},
	},
	{
		ID:       "order-vip-offmenu",
		Category: domain.CategoryOrderTaking,
		Tier:     domain.TierAdvanced,
		Prompt: "A celebrity and an entourage of six are making last-minute changes to a " +
			"pre-arranged menu, requesting off-menu items for an important business dinner " +
			"while the kitchen is already slammed. How do you handle it?",
		Rubric: []string{
			"manages VIP expectations professionally",
			"coordinates changes with kitchen and management",
			"negotiates off-menu requests realistically",
			"protects service quality for other tables",
		},
	},
	{
		ID:       "upsell-main-only",
		Category: domain.CategoryUpselling,
		Tier:     domain.TierBeginner,
		Prompt: "A guest orders only a main course: no appetizer, drink, or dessert. How " +
			"do you suggest additions without being pushy?",
		Rubric: []string{
			"suggests specific, fitting items",
			"presents options naturally in conversation",
			"reads the guest's interest level",
			"stops gracefully when declined",
		},
	},
	{
		ID:       "upsell-anniversary",
		Category: domain.CategoryUpselling,
		Tier:     domain.TierIntermediate,
		Prompt: "A couple celebrating their anniversary has ordered a mid-range bottle of " +
			"wine and is clearly in a festive mood. How do you enhance their evening while " +
			"growing the bill?",
		Rubric: []string{
			"ties suggestions to the occasion",
			"offers a wine upgrade or pairing tastefully",
			"times dessert and digestif suggestions well",
			"keeps it celebratory rather than transactional",
		},
	},
	{
		ID:       "upsell-business-dinner",
		Category: domain.CategoryUpselling,
		Tier:     domain.TierAdvanced,
		Prompt: "Eight executives are deep in deal talk over premium wine and appetizers, " +
			"focused on business rather than food. How do you find upselling opportunities " +
			"in this setting?",
		Rubric: []string{
			"reads the room before interrupting",
			"suggests premium options discreetly",
			"identifies the decision-maker",
			"creates a celebration opening if the deal closes",
		},
	},
	{
		ID:       "problem-cold-food",
		Category: domain.CategoryProblemResolution,
		Tier:     domain.TierBeginner,
		Prompt: "A guest receives their order and immediately says the food is too cold. " +
			"They seem disappointed but not angry. What do you say and do?",
		Rubric: []string{
			"apologizes sincerely without over-apologizing",
			"offers a concrete fix (re-fire or replace)",
			"keeps the rest of the table's experience intact",
			"follows up after the fix",
		},
	},
	{
		ID:       "problem-lost-reservation",
		Category: domain.CategoryProblemResolution,
		Tier:     domain.TierIntermediate,
		Prompt: "A guest is furious: their reservation was lost, they have waited thirty " +
			"minutes, it is a special occasion, and they are threatening a bad online " +
			"review. How do you de-escalate and resolve this?",
		Rubric: []string{
			"de-escalates before problem-solving",
			"offers immediate, meaningful options",
			"makes amends proportionate to the failure",
			"addresses the review threat without bargaining over it",
		},
	},
	{
		ID:       "problem-allergic-reaction",
		Category: domain.CategoryProblemResolution,
		Tier:     domain.TierAdvanced,
		Prompt: "A guest is having an allergic reaction to a dish that was supposed to be " +
			"allergen-free. They are frightened and symptomatic, other guests are noticing, " +
			"and the room is getting chaotic. Walk through your response.",
		Rubric: []string{
			"treats it as a medical emergency first",
			"gets help and informs management immediately",
			"keeps other guests calm",
			"preserves information for follow-up and accountability",
		},
	},
	{
		ID:       "recovery-slow-lunch",
		Category: domain.CategoryServiceRecovery,
		Tier:     domain.TierBeginner,
		Prompt: "A guest's order took much longer than expected and they mention they are " +
			"in a hurry to get back to work. How do you recover the visit?",
		Rubric: []string{
			"acknowledges the delay without excuses",
			"speeds up the remaining service",
			"offers a concrete gesture of amends",
			"ensures they leave on a positive note",
		},
	},
	{
		ID:       "recovery-ruined-anniversary",
		Category: domain.CategoryServiceRecovery,
		Tier:     domain.TierIntermediate,
		Prompt: "An anniversary dinner went wrong end to end: wrong wine, overcooked " +
			"steak, forty-five minutes between courses. The couple has already paid and is " +
			"clearly unhappy. What is your recovery attempt?",
		Rubric: []string{
			"owns the full chain of failures",
			"offers compensation that fits the damage",
			"works to restore trust, not just refund money",
			"commits to specific follow-up",
		},
	},
	{
		ID:       "recovery-evacuated-event",
		Category: domain.CategoryServiceRecovery,
		Tier:     domain.TierAdvanced,
		Prompt: "A kitchen fire forced the evacuation of a high-profile private dining " +
			"event booked for a major business deal. The host is furious about the lost " +
			"opportunity and the embarrassment in front of clients. How do you respond, " +
			"immediately and over the following days?",
		Rubric: []string{
			"handles the immediate crisis safely and calmly",
			"proposes alternative arrangements fast",
			"scales compensation to the stakes",
			"plans long-term relationship repair",
		},
	},
}
