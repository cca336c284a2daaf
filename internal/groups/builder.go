// Package groups turns selected patterns into per-challenge groups with
// display names and level-gated hint descriptions.
package groups

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"svw.info/flowfinder/internal/domain"
)

// Hint unlock levels. Lower-level players solve by phonetic cues alone;
// semantic hints arrive late on purpose.
const (
	rhymeHintLevel    = 1
	stressHintLevel   = 8
	themeHintLevel    = 10
	registerHintLevel = 12
)

type Builder struct{}

func New() *Builder { return &Builder{} }

// ElementCountFor returns how many pool elements a group shows at a level.
func ElementCountFor(level int) int {
	if level < 10 {
		return 4
	}
	return 6
}

// Build instantiates one group per pattern. Elements keep the pool's display
// priority order rather than being shuffled, so easier words surface first
// when only a subset is shown.
func (b *Builder) Build(ctx context.Context, patterns []domain.AdvancedPattern, level int) ([]domain.PatternGroup, error) {
	out := make([]domain.PatternGroup, 0, len(patterns))
	for _, p := range patterns {
		n := ElementCountFor(level)
		if n > len(p.Elements) {
			n = len(p.Elements)
		}
		elems := make([]domain.PatternElement, n)
		copy(elems, p.Elements[:n])
		out = append(out, domain.PatternGroup{
			ID:          uuid.NewString(),
			Pattern:     p,
			Name:        DisplayName(&p),
			Description: Description(&p, level),
			Elements:    elems,
		})
	}
	return out, nil
}

// DisplayName derives a deterministic name from the pattern's most salient
// active dimension: end-rhyme, then alliteration, then theme.
func DisplayName(p *domain.AdvancedPattern) string {
	switch {
	case p.Phonetic.EndRhyme != "":
		return fmt.Sprintf("The %q Sound", "-"+p.Phonetic.EndRhyme)
	case p.Phonetic.Alliteration != "":
		return fmt.Sprintf("Leading %s", strings.ToUpper(p.Phonetic.Alliteration))
	case len(p.Semantic.Themes) > 0:
		return titleWord(p.Semantic.Themes[0]) + " Words"
	default:
		return p.Name
	}
}

// Description assembles the hint text from whatever the level has unlocked.
func Description(p *domain.AdvancedPattern, level int) string {
	var hints []string
	if level >= rhymeHintLevel && p.Phonetic.EndRhyme != "" {
		hints = append(hints, "these words share one end-rhyme sound")
	}
	if level >= stressHintLevel && p.Phonetic.Stress != "" {
		hints = append(hints, "they carry the same stress pattern")
	}
	if level >= themeHintLevel && len(p.Semantic.Themes) > 0 {
		hints = append(hints, "they share a theme: "+strings.Join(p.Semantic.Themes, " / "))
	}
	if level >= registerHintLevel && p.Semantic.Register != "" {
		hints = append(hints, "the register matches: "+p.Semantic.Register)
	}
	if len(hints) == 0 {
		return "Find the words that belong together."
	}
	return titleWord(strings.Join(hints, "; ")) + "."
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
