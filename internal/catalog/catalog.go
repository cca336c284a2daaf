// Package catalog holds the level-indexed registry of advanced patterns and
// their element pools. A Catalog is built once, validated, and never mutated,
// so concurrent reads are always safe.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"svw.info/flowfinder/internal/domain"
	"svw.info/flowfinder/internal/verifier"
)

//go:embed data/patterns.yaml
var defaultData []byte

// Catalog is the immutable pattern registry. Slices returned from it are
// shared and must be treated as read-only; challenge construction copies
// whatever it keeps.
type Catalog struct {
	patterns []domain.AdvancedPattern
}

type dataset struct {
	Patterns []domain.AdvancedPattern `yaml:"patterns"`
}

// Default builds the catalog from the embedded hand-authored dataset.
func Default() (*Catalog, error) {
	return Load(defaultData)
}

// LoadFile builds a catalog from a YAML file, for deployments that override
// the embedded dataset.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Load(data)
}

// Load parses and validates a YAML dataset. Validation establishes the
// contract the verifier relies on at play time: declared dimensions exactly
// equal the non-empty axis fields, and every pool element satisfies every
// active dimension. Nothing is re-validated after this point.
func Load(data []byte) (*Catalog, error) {
	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(ds.Patterns) == 0 {
		return nil, fmt.Errorf("catalog has no patterns")
	}
	seen := make(map[string]bool, len(ds.Patterns))
	for i := range ds.Patterns {
		p := &ds.Patterns[i]
		if err := validatePattern(p); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p.ID, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate pattern id %q", p.ID)
		}
		seen[p.ID] = true
		// Heavier elements surface first when only a subset is shown.
		sort.SliceStable(p.Elements, func(a, b int) bool {
			return p.Elements[a].Weight > p.Elements[b].Weight
		})
	}
	sort.SliceStable(ds.Patterns, func(a, b int) bool {
		if ds.Patterns[a].UserLevel != ds.Patterns[b].UserLevel {
			return ds.Patterns[a].UserLevel < ds.Patterns[b].UserLevel
		}
		return ds.Patterns[a].ID < ds.Patterns[b].ID
	})
	return &Catalog{patterns: ds.Patterns}, nil
}

func validatePattern(p *domain.AdvancedPattern) error {
	if p.ID == "" {
		return fmt.Errorf("missing id")
	}
	if p.UserLevel < 1 {
		return fmt.Errorf("userLevel must be >= 1, got %d", p.UserLevel)
	}
	if p.Complexity.Load < 1 || p.Complexity.Load > 5 {
		return fmt.Errorf("load must be 1..5, got %d", p.Complexity.Load)
	}
	if len(p.Elements) == 0 {
		return fmt.Errorf("no elements")
	}

	declared := make(map[domain.DimensionKind]bool, len(p.Complexity.Dimensions))
	for _, d := range p.Complexity.Dimensions {
		declared[d] = true
	}
	active := p.ActiveDimensions()
	if len(declared) != len(active) {
		return fmt.Errorf("declared %d dimensions, axes define %d", len(declared), len(active))
	}
	for _, d := range active {
		if !declared[d] {
			return fmt.Errorf("axis dimension %s not declared", d)
		}
	}

	ids := make(map[string]bool, len(p.Elements))
	for i := range p.Elements {
		e := &p.Elements[i]
		if e.ID == "" || e.Text == "" {
			return fmt.Errorf("element %d missing id or text", i)
		}
		if ids[e.ID] {
			return fmt.Errorf("duplicate element id %q", e.ID)
		}
		ids[e.ID] = true
		for _, d := range p.Complexity.Dimensions {
			if !verifier.Satisfies(d, p, e) {
				return fmt.Errorf("element %q fails dimension %s", e.ID, d)
			}
		}
	}
	return nil
}

// PatternsUpTo returns every pattern whose minimum level does not exceed
// level. When the range is empty the nearest lower level with content is
// served instead, so player progress never blocks play.
func (c *Catalog) PatternsUpTo(level int) []domain.AdvancedPattern {
	n := sort.Search(len(c.patterns), func(i int) bool {
		return c.patterns[i].UserLevel > level
	})
	if n > 0 {
		return c.patterns[:n]
	}
	if len(c.patterns) == 0 {
		return nil
	}
	// Fall back to the lowest authored level.
	lowest := c.patterns[0].UserLevel
	m := sort.Search(len(c.patterns), func(i int) bool {
		return c.patterns[i].UserLevel > lowest
	})
	return c.patterns[:m]
}

// Len reports the total number of patterns.
func (c *Catalog) Len() int { return len(c.patterns) }
