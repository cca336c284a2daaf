package domain

import "fmt"

// Phonetics holds sound features. On an element it describes the word; on a
// pattern it declares the target value every member of a matching set must
// share for each active dimension.
type Phonetics struct {
	EndRhyme       string   `json:"endRhyme,omitempty" yaml:"endRhyme,omitempty"`
	InternalRhymes []string `json:"internalRhymes,omitempty" yaml:"internalRhymes,omitempty"`
	Assonance      []string `json:"assonance,omitempty" yaml:"assonance,omitempty"`
	Consonance     []string `json:"consonance,omitempty" yaml:"consonance,omitempty"`
	Alliteration   string   `json:"alliteration,omitempty" yaml:"alliteration,omitempty"`
	Stress         string   `json:"stress,omitempty" yaml:"stress,omitempty"`
	Syllables      int      `json:"syllables,omitempty" yaml:"syllables,omitempty"`
}

// Semantics holds meaning features, mirroring Phonetics.
type Semantics struct {
	Themes   []string `json:"themes,omitempty" yaml:"themes,omitempty"`
	Field    string   `json:"field,omitempty" yaml:"field,omitempty"`
	Register string   `json:"register,omitempty" yaml:"register,omitempty"`
	Mood     string   `json:"mood,omitempty" yaml:"mood,omitempty"`
	Culture  string   `json:"culture,omitempty" yaml:"culture,omitempty"`
}

// PatternElement is one candidate word or phrase. Immutable once built;
// catalog elements are owned by the catalog, decoys by their challenge.
type PatternElement struct {
	ID       string     `json:"id" yaml:"id"`
	Text     string     `json:"text" yaml:"text"`
	Phonetic *Phonetics `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	Semantic *Semantics `json:"semantic,omitempty" yaml:"semantic,omitempty"`
	// Weight orders display priority only; heavier surfaces first.
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Decoy  bool    `json:"decoy,omitempty" yaml:"-"`
}

// Complexity declares which dimension paths are active plus a 1-5 cognitive
// load score. Dimensions must exactly equal the non-empty fields across both
// axes; the catalog enforces this at build time and the verifier relies on it.
type Complexity struct {
	Dimensions []DimensionKind `json:"dimensions" yaml:"dimensions"`
	Load       int             `json:"load" yaml:"load"`
}

// AdvancedPattern is a named bundle of constraints along the phonetic and
// semantic axes, with the element pool eligible for its boards.
type AdvancedPattern struct {
	ID         string           `json:"id" yaml:"id"`
	Name       string           `json:"name" yaml:"name"`
	Phonetic   Phonetics        `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	Semantic   Semantics        `json:"semantic,omitempty" yaml:"semantic,omitempty"`
	Complexity Complexity       `json:"complexity" yaml:"complexity"`
	Frequency  float64          `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	UserLevel  int              `json:"userLevel" yaml:"userLevel"`
	Elements   []PatternElement `json:"elements,omitempty" yaml:"elements,omitempty"`
}

// ActiveDimensions derives the dimension kinds implied by the pattern's
// non-empty axis fields, in declaration order of the kinds.
func (p *AdvancedPattern) ActiveDimensions() []DimensionKind {
	var dims []DimensionKind
	if p.Phonetic.EndRhyme != "" {
		dims = append(dims, DimEndRhyme)
	}
	if len(p.Phonetic.InternalRhymes) > 0 {
		dims = append(dims, DimInternalRhyme)
	}
	if len(p.Phonetic.Assonance) > 0 {
		dims = append(dims, DimAssonance)
	}
	if len(p.Phonetic.Consonance) > 0 {
		dims = append(dims, DimConsonance)
	}
	if p.Phonetic.Alliteration != "" {
		dims = append(dims, DimAlliteration)
	}
	if p.Phonetic.Stress != "" {
		dims = append(dims, DimStress)
	}
	if p.Phonetic.Syllables > 0 {
		dims = append(dims, DimSyllables)
	}
	if len(p.Semantic.Themes) > 0 {
		dims = append(dims, DimTheme)
	}
	if p.Semantic.Field != "" {
		dims = append(dims, DimSemanticField)
	}
	if p.Semantic.Register != "" {
		dims = append(dims, DimRegister)
	}
	if p.Semantic.Mood != "" {
		dims = append(dims, DimMood)
	}
	if p.Semantic.Culture != "" {
		dims = append(dims, DimCulture)
	}
	return dims
}

// PatternGroup instantiates one pattern for a single challenge. Pattern and
// Elements are value copies so challenges stay independent of the catalog and
// of each other; play-state fields are the only mutable part.
type PatternGroup struct {
	ID          string           `json:"id"`
	Pattern     AdvancedPattern  `json:"pattern"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Elements    []PatternElement `json:"elements"`

	// Play state, mutated by the owning game loop only.
	Attempts  int      `json:"attempts"`
	HintsUsed int      `json:"hintsUsed"`
	Completed bool     `json:"completed"`
	Revealed  []string `json:"revealed,omitempty"`
}

// ChallengeSettings sizes one challenge.
type ChallengeSettings struct {
	GridSize     int `json:"gridSize"`
	TimeLimitSec int `json:"timeLimitSec"`
	MaxStrikes   int `json:"maxStrikes"`
	MaxHints     int `json:"maxHints"`
}

// Cells is the number of board positions.
func (s ChallengeSettings) Cells() int { return s.GridSize * s.GridSize }

// Grid renders the size as "4x4" for display.
func (s ChallengeSettings) Grid() string { return fmt.Sprintf("%dx%d", s.GridSize, s.GridSize) }

// ChallengeScoring carries the multipliers applied when a group completes.
type ChallengeScoring struct {
	BasePoints        int     `json:"basePoints"`
	LevelMultiplier   float64 `json:"levelMultiplier"`
	PremiumMultiplier float64 `json:"premiumMultiplier"`
}

// GameChallenge is one generated puzzle: the groups, the full shuffled board
// (group elements plus decoys), and the per-level settings. Immutable after
// creation except for the groups' play state.
type GameChallenge struct {
	ID        string            `json:"id"`
	Level     int               `json:"level"`
	Seed      int64             `json:"seed"`
	Premium   bool              `json:"premium"`
	Groups    []PatternGroup    `json:"groups"`
	Board     []PatternElement  `json:"board"`
	Settings  ChallengeSettings `json:"settings"`
	Scoring   ChallengeScoring  `json:"scoring"`
	CreatedAt int64             `json:"createdAt"`
}

// ElementByID finds a board element, decoys included.
func (c *GameChallenge) ElementByID(id string) (PatternElement, bool) {
	for i := range c.Board {
		if c.Board[i].ID == id {
			return c.Board[i], true
		}
	}
	return PatternElement{}, false
}

// HintsLeft is the remaining hint allowance across all groups.
func (c *GameChallenge) HintsLeft() int {
	used := 0
	for i := range c.Groups {
		used += c.Groups[i].HintsUsed
	}
	if left := c.Settings.MaxHints - used; left > 0 {
		return left
	}
	return 0
}
