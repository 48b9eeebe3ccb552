package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/tableside/internal/domain"
)

// packFile is the YAML layout of an operator-supplied scenario pack.
type packFile struct {
	Scenarios []packScenario `yaml:"scenarios"`
}

type packScenario struct {
	ID         string   `yaml:"id"`
	Category   string   `yaml:"category"`
	Difficulty string   `yaml:"difficulty"`
	Prompt     string   `yaml:"prompt"`
	Rubric     []string `yaml:"rubric"`
}

// LoadPackFile parses one YAML scenario pack. Validation of individual
// scenarios happens when they are merged into a catalog.
func LoadPackFile(path string) ([]domain.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario pack: %w", err)
	}

	var pack packFile
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parsing scenario pack %s: %w", filepath.Base(path), err)
	}

	scenarios := make([]domain.Scenario, 0, len(pack.Scenarios))
	for _, ps := range pack.Scenarios {
		category, err := domain.ParseCategory(ps.Category)
		if err != nil {
			return nil, fmt.Errorf("scenario pack %s: scenario %q: %w", filepath.Base(path), ps.ID, err)
		}
		tier, err := domain.ParseTier(ps.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("scenario pack %s: scenario %q: %w", filepath.Base(path), ps.ID, err)
		}
		scenarios = append(scenarios, domain.Scenario{
			ID:       ps.ID,
			Category: category,
			Tier:     tier,
			Prompt:   strings.TrimSpace(ps.Prompt),
			Rubric:   ps.Rubric,
		})
	}
	return scenarios, nil
}

// LoadPackDir loads every *.yaml/*.yml file in dir, in lexical order. A
// missing directory is not an error; packs are optional.
func LoadPackDir(dir string) ([]domain.Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading scenario pack dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	var all []domain.Scenario
	for _, f := range files {
		scenarios, err := LoadPackFile(f)
		if err != nil {
			return nil, err
		}
		all = append(all, scenarios...)
	}
	return all, nil
}

// Load builds the runtime catalog: the builtin set merged with any packs
// found under dir. An empty dir skips pack loading entirely.
func Load(dir string) (*Catalog, error) {
	base := Builtin()
	if dir == "" {
		return base, nil
	}
	extras, err := LoadPackDir(dir)
	if err != nil {
		return nil, err
	}
	if len(extras) == 0 {
		return base, nil
	}
	merged, err := base.Merge(extras)
	if err != nil {
		return nil, fmt.Errorf("merging scenario packs: %w", err)
	}
	return merged, nil
}
