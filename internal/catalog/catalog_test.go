package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tableside/internal/domain"
)

func TestBuiltin_CoversEveryCategoryAndTier(t *testing.T) {
	c := Builtin()

	for _, category := range domain.Categories() {
		for _, tier := range domain.Tiers() {
			matches := c.List(Filter{Category: category, Tier: tier})
			assert.NotEmpty(t, matches, "no builtin scenario for %s/%s", category, tier)
		}
	}
}

func TestBuiltin_ScenariosAreValid(t *testing.T) {
	for _, s := range Builtin().List(Filter{}) {
		assert.NoError(t, s.Validate())
		assert.NotEmpty(t, s.Rubric, "scenario %s has no rubric", s.ID)
	}
}

func TestCatalog_ListFilters(t *testing.T) {
	c := Builtin()

	all := c.List(Filter{})
	assert.Equal(t, c.Len(), len(all))

	greeting := c.List(Filter{Category: domain.CategoryGreeting})
	require.NotEmpty(t, greeting)
	for _, s := range greeting {
		assert.Equal(t, domain.CategoryGreeting, s.Category)
	}

	advanced := c.List(Filter{Tier: domain.TierAdvanced})
	require.NotEmpty(t, advanced)
	for _, s := range advanced {
		assert.Equal(t, domain.TierAdvanced, s.Tier)
	}
}

func TestCatalog_Get(t *testing.T) {
	c := Builtin()

	s, err := c.Get("greeting-walkin")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryGreeting, s.Category)

	_, err = c.Get("no-such-scenario")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNew_RejectsDuplicatesAndInvalid(t *testing.T) {
	valid := domain.Scenario{
		ID: "x1", Category: domain.CategoryGreeting, Tier: domain.TierBeginner, Prompt: "p",
	}

	_, err := New([]domain.Scenario{valid, valid})
	assert.ErrorContains(t, err, "duplicate scenario id")

	_, err = New([]domain.Scenario{{ID: "x2", Category: "bogus", Tier: domain.TierBeginner, Prompt: "p"}})
	assert.Error(t, err)
}

func TestLoadPackDir(t *testing.T) {
	dir := t.TempDir()
	pack := `scenarios:
  - id: custom-wine-pairing
    category: menu-knowledge
    difficulty: advanced
    prompt: |
      A guest asks for a pairing across a five course tasting menu.
    rubric:
      - suggests pairings per course
      - involves the sommelier
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wine.yaml"), []byte(pack), 0o644))

	scenarios, err := LoadPackDir(dir)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "custom-wine-pairing", scenarios[0].ID)
	assert.Equal(t, domain.TierAdvanced, scenarios[0].Tier)

	merged, err := Builtin().Merge(scenarios)
	require.NoError(t, err)
	_, err = merged.Get("custom-wine-pairing")
	assert.NoError(t, err)
}

func TestLoadPackDir_MissingDirIsNotAnError(t *testing.T) {
	scenarios, err := LoadPackDir(filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, err)
	assert.Empty(t, scenarios)
}

func TestLoadPackFile_RejectsUnknownCategory(t *testing.T) {
	dir := t.TempDir()
	pack := `scenarios:
  - id: bad
    category: barista
    difficulty: beginner
    prompt: p
`
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pack), 0o644))

	_, err := LoadPackFile(path)
	assert.ErrorContains(t, err, "unknown category")
}
