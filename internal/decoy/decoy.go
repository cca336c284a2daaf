// Package decoy manufactures near-miss board elements: words that resemble a
// target pattern along its dominant dimension while provably failing the
// pattern's match predicate.
package decoy

import (
	"context"
	"math/rand"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/google/uuid"

	"svw.info/flowfinder/internal/domain"
	"svw.info/flowfinder/internal/verifier"
)

const decoyWeight = 0.3

// offThemes tags decoys for theme-carrying patterns. Disjoint from every
// catalog theme so the theme dimension fails as well, which keeps the decoy
// safe if the pattern later gains dimensions.
var offThemes = []string{"household", "kitchen", "workshop", "garden"}

// Forge builds decoys from the curated tables with a generic fallback pool,
// so it never comes up empty for any pattern shape.
type Forge struct{}

func New() *Forge { return &Forge{} }

type candidate struct {
	text string
	phon domain.Phonetics
	sem  domain.Semantics
}

// CreateDecoyFor returns an element that superficially resembles the
// pattern's dominant dimension but fails at least one active dimension.
// index varies the pick across repeated calls for the same pattern; taken
// board texts are avoided while any alternative remains.
func (f *Forge) CreateDecoyFor(ctx context.Context, rng *rand.Rand, pattern *domain.AdvancedPattern, index int, taken map[string]bool) (domain.PatternElement, error) {
	cands := curatedFor(pattern)
	rankByPlausibility(cands, pattern)
	cands = append(cands, genericFor(pattern)...)

	chosen := choose(rng, cands, index, taken)
	elem := build(pattern, chosen)

	// Belt and braces: if the element would still satisfy a non-trivial
	// pattern, strip its descriptors so every implemented comparator fails.
	if len(pattern.Complexity.Dimensions) > 0 && matchesAlone(pattern, &elem) {
		elem.Phonetic = nil
		elem.Semantic = nil
	}
	return elem, nil
}

// curatedFor pulls candidates from the table matching the pattern's dominant
// phonetic hook: end-rhyme first, then alliteration.
func curatedFor(p *domain.AdvancedPattern) []candidate {
	var out []candidate
	switch {
	case p.Phonetic.EndRhyme != "":
		for _, nr := range nearRhymes[strings.ToLower(p.Phonetic.EndRhyme)] {
			if strings.EqualFold(nr.key, p.Phonetic.EndRhyme) {
				continue
			}
			out = append(out, candidate{text: nr.text, phon: domain.Phonetics{EndRhyme: nr.key}})
		}
	case p.Phonetic.Alliteration != "":
		for _, ad := range allitDecoys[strings.ToLower(p.Phonetic.Alliteration)] {
			if strings.EqualFold(ad.letter, p.Phonetic.Alliteration) {
				continue
			}
			out = append(out, candidate{text: ad.text, phon: domain.Phonetics{Alliteration: ad.letter}})
		}
	}
	return out
}

// genericFor adapts the distractor pool to the pattern, skipping entries
// whose rhyme key happens to collide with the pattern's.
func genericFor(p *domain.AdvancedPattern) []candidate {
	out := make([]candidate, 0, len(genericPool))
	for _, g := range genericPool {
		if p.Phonetic.EndRhyme != "" && strings.EqualFold(g.key, p.Phonetic.EndRhyme) {
			continue
		}
		out = append(out, candidate{
			text: g.text,
			phon: domain.Phonetics{EndRhyme: g.key},
			sem:  domain.Semantics{Themes: []string{g.theme}},
		})
	}
	return out
}

// rankByPlausibility orders curated candidates by Jaro-Winkler similarity to
// the pattern's highest-priority element, most confusable first.
func rankByPlausibility(cands []candidate, p *domain.AdvancedPattern) {
	if len(p.Elements) == 0 {
		return
	}
	ref := strings.ToLower(p.Elements[0].Text)
	sort.SliceStable(cands, func(i, j int) bool {
		return matchr.JaroWinkler(cands[i].text, ref, false) > matchr.JaroWinkler(cands[j].text, ref, false)
	})
}

// choose walks the candidate list starting at a rotated offset and returns
// the first unused entry. When everything is taken the rotated entry is
// reused rather than failing: a duplicate beats a hole in the board.
func choose(rng *rand.Rand, cands []candidate, index int, taken map[string]bool) candidate {
	if len(cands) == 0 {
		// Unreachable with the shipped tables; a bare distractor still
		// fails every implemented dimension.
		return candidate{text: "trinket", phon: domain.Phonetics{EndRhyme: "inket"}}
	}
	start := (index + rng.Intn(len(cands))) % len(cands)
	for i := 0; i < len(cands); i++ {
		c := cands[(start+i)%len(cands)]
		if taken == nil || !taken[c.text] {
			return c
		}
	}
	return cands[start%len(cands)]
}

func build(p *domain.AdvancedPattern, c candidate) domain.PatternElement {
	elem := domain.PatternElement{
		ID:     "decoy_" + uuid.NewString()[:8],
		Text:   c.text,
		Weight: decoyWeight,
		Decoy:  true,
	}
	phon := c.phon
	elem.Phonetic = &phon

	sem := c.sem
	if len(p.Semantic.Themes) > 0 && len(sem.Themes) == 0 {
		sem.Themes = []string{offThemes[len(c.text)%len(offThemes)]}
	}
	if len(sem.Themes) > 0 {
		elem.Semantic = &sem
	}
	return elem
}

func matchesAlone(p *domain.AdvancedPattern, e *domain.PatternElement) bool {
	for _, d := range p.Complexity.Dimensions {
		if !verifier.Satisfies(d, p, e) {
			return false
		}
	}
	return true
}
