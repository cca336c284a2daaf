package verifier

import (
	"context"
	"strings"

	"svw.info/flowfinder/internal/domain"
)

// DimensionVerifier checks revealed word sets against a pattern's declared
// dimensions. The match is conjunctive: every active dimension must hold for
// every supplied element.
type DimensionVerifier struct{}

func New() *DimensionVerifier { return &DimensionVerifier{} }

// CheckMatch reports whether all elements jointly satisfy the pattern. An
// empty element list matches vacuously; a single element is checked like any
// other set, so one revealed decoy can never claim a group. A pattern with
// zero active dimensions matches any input.
func (v *DimensionVerifier) CheckMatch(ctx context.Context, elements []domain.PatternElement, pattern *domain.AdvancedPattern) (bool, error) {
	if pattern == nil {
		return false, nil
	}
	for _, dim := range pattern.Complexity.Dimensions {
		for i := range elements {
			if !Satisfies(dim, pattern, &elements[i]) {
				return false, nil
			}
		}
	}
	return true, nil
}

// Satisfies checks one element against one active dimension of the pattern.
// Unrecognized dimension kinds pass, so catalog data ahead of the code never
// stalls gameplay; the default catalog is covered by tests proving this
// permissiveness admits no false positives there.
func Satisfies(dim domain.DimensionKind, p *domain.AdvancedPattern, e *domain.PatternElement) bool {
	switch dim {
	case domain.DimEndRhyme:
		return e.Phonetic != nil && strings.EqualFold(e.Phonetic.EndRhyme, p.Phonetic.EndRhyme)
	case domain.DimInternalRhyme:
		return e.Phonetic != nil && overlaps(e.Phonetic.InternalRhymes, p.Phonetic.InternalRhymes)
	case domain.DimAssonance:
		return e.Phonetic != nil && overlaps(e.Phonetic.Assonance, p.Phonetic.Assonance)
	case domain.DimConsonance:
		return e.Phonetic != nil && overlaps(e.Phonetic.Consonance, p.Phonetic.Consonance)
	case domain.DimAlliteration:
		return e.Phonetic != nil && strings.EqualFold(e.Phonetic.Alliteration, p.Phonetic.Alliteration)
	case domain.DimStress:
		return e.Phonetic != nil && e.Phonetic.Stress == p.Phonetic.Stress
	case domain.DimSyllables:
		return e.Phonetic != nil && e.Phonetic.Syllables == p.Phonetic.Syllables
	case domain.DimTheme:
		return e.Semantic != nil && overlaps(e.Semantic.Themes, p.Semantic.Themes)
	case domain.DimSemanticField:
		return e.Semantic != nil && strings.EqualFold(e.Semantic.Field, p.Semantic.Field)
	case domain.DimRegister:
		return e.Semantic != nil && strings.EqualFold(e.Semantic.Register, p.Semantic.Register)
	case domain.DimMood:
		return e.Semantic != nil && strings.EqualFold(e.Semantic.Mood, p.Semantic.Mood)
	case domain.DimCulture:
		return e.Semantic != nil && strings.EqualFold(e.Semantic.Culture, p.Semantic.Culture)
	default:
		return true
	}
}

// overlaps reports whether the element values contain at least one entry from
// the pattern's declared set, case-insensitively.
func overlaps(elem, pattern []string) bool {
	for _, pv := range pattern {
		for _, ev := range elem {
			if strings.EqualFold(ev, pv) {
				return true
			}
		}
	}
	return false
}
