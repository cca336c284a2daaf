package verifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/flowfinder/internal/domain"
)

func rhymePattern(key string) *domain.AdvancedPattern {
	return &domain.AdvancedPattern{
		ID:       "test-" + key,
		Phonetic: domain.Phonetics{EndRhyme: key},
		Complexity: domain.Complexity{
			Dimensions: []domain.DimensionKind{domain.DimEndRhyme},
			Load:       1,
		},
	}
}

func rhymeElem(text, key string) domain.PatternElement {
	return domain.PatternElement{ID: text, Text: text, Phonetic: &domain.Phonetics{EndRhyme: key}}
}

func TestCheckMatch(t *testing.T) {
	ctx := context.Background()
	v := New()

	t.Run("all elements share the rhyme key", func(t *testing.T) {
		ok, err := v.CheckMatch(ctx, []domain.PatternElement{
			rhymeElem("bright", "ight"),
			rhymeElem("night", "ight"),
		}, rhymePattern("ight"))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("one off-key element fails the set", func(t *testing.T) {
		ok, err := v.CheckMatch(ctx, []domain.PatternElement{
			rhymeElem("bright", "ight"),
			rhymeElem("time", "ime"),
		}, rhymePattern("ight"))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("single element is checked, not waved through", func(t *testing.T) {
		ok, err := v.CheckMatch(ctx, []domain.PatternElement{
			rhymeElem("time", "ime"),
		}, rhymePattern("ight"))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty set matches vacuously", func(t *testing.T) {
		ok, err := v.CheckMatch(ctx, nil, rhymePattern("ight"))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("zero-dimension pattern matches any input", func(t *testing.T) {
		p := &domain.AdvancedPattern{ID: "empty"}
		ok, err := v.CheckMatch(ctx, []domain.PatternElement{rhymeElem("anything", "ing")}, p)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("nil pattern never matches", func(t *testing.T) {
		ok, err := v.CheckMatch(ctx, []domain.PatternElement{rhymeElem("x", "x")}, nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing phonetics fail a phonetic dimension", func(t *testing.T) {
		ok, err := v.CheckMatch(ctx, []domain.PatternElement{{ID: "bare", Text: "bare"}}, rhymePattern("ight"))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown dimension kind defaults to passing", func(t *testing.T) {
		p := &domain.AdvancedPattern{
			ID:         "future",
			Complexity: domain.Complexity{Dimensions: []domain.DimensionKind{domain.DimensionKind(99)}, Load: 1},
		}
		ok, err := v.CheckMatch(ctx, []domain.PatternElement{{ID: "bare", Text: "bare"}}, p)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestThemeOverlap(t *testing.T) {
	p := &domain.AdvancedPattern{
		ID:       "theme",
		Semantic: domain.Semantics{Themes: []string{"street", "city"}},
		Complexity: domain.Complexity{
			Dimensions: []domain.DimensionKind{domain.DimTheme},
			Load:       2,
		},
	}
	elem := func(themes ...string) domain.PatternElement {
		return domain.PatternElement{ID: "e", Text: "e", Semantic: &domain.Semantics{Themes: themes}}
	}

	ok, err := New().CheckMatch(context.Background(), []domain.PatternElement{elem("city")}, p)
	require.NoError(t, err)
	assert.True(t, ok, "one shared tag satisfies a set-valued dimension")

	ok, err = New().CheckMatch(context.Background(), []domain.PatternElement{elem("garden")}, p)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConjunctiveAcrossDimensions(t *testing.T) {
	p := &domain.AdvancedPattern{
		ID:       "both",
		Phonetic: domain.Phonetics{EndRhyme: "ire"},
		Semantic: domain.Semantics{Themes: []string{"ambition"}},
		Complexity: domain.Complexity{
			Dimensions: []domain.DimensionKind{domain.DimEndRhyme, domain.DimTheme},
			Load:       3,
		},
	}
	e := domain.PatternElement{
		ID:       "desire",
		Text:     "desire",
		Phonetic: &domain.Phonetics{EndRhyme: "ire"},
	}
	// Rhyme holds, theme is missing: the conjunction fails.
	ok, err := New().CheckMatch(context.Background(), []domain.PatternElement{e}, p)
	require.NoError(t, err)
	assert.False(t, ok)

	e.Semantic = &domain.Semantics{Themes: []string{"ambition"}}
	ok, err = New().CheckMatch(context.Background(), []domain.PatternElement{e}, p)
	require.NoError(t, err)
	assert.True(t, ok)
}
