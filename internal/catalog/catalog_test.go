package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/flowfinder/internal/domain"
	"svw.info/flowfinder/internal/verifier"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c.Len(), 15)
}

func TestComplexityInvariant(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, p := range c.PatternsUpTo(1 << 30) {
		declared := make(map[domain.DimensionKind]bool)
		for _, d := range p.Complexity.Dimensions {
			declared[d] = true
		}
		active := p.ActiveDimensions()
		require.Len(t, active, len(declared), "pattern %s", p.ID)
		for _, d := range active {
			assert.True(t, declared[d], "pattern %s misses %s", p.ID, d)
		}
	}
}

func TestElementsSatisfyTheirPattern(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	v := verifier.New()

	for _, p := range c.PatternsUpTo(1 << 30) {
		p := p
		ok, err := v.CheckMatch(context.Background(), p.Elements, &p)
		require.NoError(t, err)
		assert.True(t, ok, "pattern %s pool should satisfy itself", p.ID)
	}
}

// Permissive verification (unimplemented dimensions pass) must not let one
// catalog pattern's words claim another pattern.
func TestNoCrossPatternFalsePositives(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	v := verifier.New()
	all := c.PatternsUpTo(1 << 30)

	for i := range all {
		for j := range all {
			if i == j {
				continue
			}
			ok, err := v.CheckMatch(context.Background(), all[i].Elements, &all[j])
			require.NoError(t, err)
			assert.False(t, ok, "%s pool must not match %s", all[i].ID, all[j].ID)
		}
	}
}

func TestPatternsUpTo(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	t.Run("filters by minimum level", func(t *testing.T) {
		for _, p := range c.PatternsUpTo(3) {
			assert.LessOrEqual(t, p.UserLevel, 3)
		}
		assert.NotEmpty(t, c.PatternsUpTo(3))
	})

	t.Run("falls back to the lowest authored level", func(t *testing.T) {
		got := c.PatternsUpTo(0)
		require.NotEmpty(t, got, "level must never block play")
		for _, p := range got {
			assert.Equal(t, got[0].UserLevel, p.UserLevel)
		}
	})

	t.Run("grows monotonically with level", func(t *testing.T) {
		assert.LessOrEqual(t, len(c.PatternsUpTo(5)), len(c.PatternsUpTo(15)))
	})
}

func TestLoadRejectsBadData(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty dataset", `patterns: []`},
		{"undeclared axis dimension", `
patterns:
  - id: bad
    name: Bad
    userLevel: 1
    complexity: {dimensions: [], load: 1}
    phonetic: {endRhyme: ight}
    elements:
      - {id: a, text: a, phonetic: {endRhyme: ight}}
`},
		{"element failing a dimension", `
patterns:
  - id: bad
    name: Bad
    userLevel: 1
    complexity: {dimensions: [phonetic.endRhyme], load: 1}
    phonetic: {endRhyme: ight}
    elements:
      - {id: a, text: a, phonetic: {endRhyme: ime}}
`},
		{"duplicate pattern ids", `
patterns:
  - id: dup
    name: One
    userLevel: 1
    complexity: {dimensions: [phonetic.endRhyme], load: 1}
    phonetic: {endRhyme: ight}
    elements:
      - {id: a, text: a, phonetic: {endRhyme: ight}}
  - id: dup
    name: Two
    userLevel: 1
    complexity: {dimensions: [phonetic.endRhyme], load: 1}
    phonetic: {endRhyme: ay}
    elements:
      - {id: b, text: b, phonetic: {endRhyme: ay}}
`},
		{"load out of range", `
patterns:
  - id: bad
    name: Bad
    userLevel: 1
    complexity: {dimensions: [phonetic.endRhyme], load: 6}
    phonetic: {endRhyme: ight}
    elements:
      - {id: a, text: a, phonetic: {endRhyme: ight}}
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestElementsOrderedByWeight(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	for _, p := range c.PatternsUpTo(1 << 30) {
		for i := 1; i < len(p.Elements); i++ {
			assert.GreaterOrEqual(t, p.Elements[i-1].Weight, p.Elements[i].Weight,
				"pattern %s: display priority order", p.ID)
		}
	}
}
