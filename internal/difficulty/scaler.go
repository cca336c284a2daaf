// Package difficulty derives board sizing, time, strike and hint allowances,
// and scoring multipliers from the player level. All functions are pure step
// functions of level; level is user-facing progress and must never block
// play, so every input yields playable settings.
package difficulty

import "svw.info/flowfinder/internal/domain"

// minTimeLimitSec keeps the time formula from going non-positive at very
// high levels.
const minTimeLimitSec = 30

const basePoints = 100

// GridSizeFor returns the board edge length for a level.
func GridSizeFor(level int) int {
	switch {
	case level < 5:
		return 4
	case level < 15:
		return 6
	default:
		return 8
	}
}

func baseTimeForGrid(grid int) int {
	switch grid {
	case 4:
		return 120
	case 6:
		return 180
	default:
		return 240
	}
}

// TimeLimitFor scales the grid's base time down by 1% per level, floored,
// clamped to a 30 second minimum.
func TimeLimitFor(level int) int {
	base := baseTimeForGrid(GridSizeFor(level))
	t := int(float64(base) * (1 - float64(level)*0.01))
	if t < minTimeLimitSec {
		return minTimeLimitSec
	}
	return t
}

// MaxStrikesFor returns the allowed wrong guesses.
func MaxStrikesFor(level int) int {
	if level < 10 {
		return 4
	}
	return 3
}

// MaxHintsFor returns the hint allowance; premium players get one extra.
func MaxHintsFor(level int, premium bool) int {
	var h int
	switch {
	case level < 5:
		h = 3
	case level < 15:
		h = 2
	default:
		h = 1
	}
	if premium {
		h++
	}
	return h
}

// SettingsFor bundles the per-level sizing into one record.
func SettingsFor(level int, premium bool) domain.ChallengeSettings {
	return domain.ChallengeSettings{
		GridSize:     GridSizeFor(level),
		TimeLimitSec: TimeLimitFor(level),
		MaxStrikes:   MaxStrikesFor(level),
		MaxHints:     MaxHintsFor(level, premium),
	}
}

// ScoringFor derives the score multipliers for a level.
func ScoringFor(level int, premium bool) domain.ChallengeScoring {
	s := domain.ChallengeScoring{
		BasePoints:        basePoints,
		LevelMultiplier:   1 + float64(level)*0.05,
		PremiumMultiplier: 1,
	}
	if premium {
		s.PremiumMultiplier = 1.5
	}
	return s
}
