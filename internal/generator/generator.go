// Package generator assembles complete challenges: selected patterns become
// groups, decoys fill the remaining cells, and the board is shuffled so
// position carries no hint of group membership.
package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/flowfinder/internal/difficulty"
	"svw.info/flowfinder/internal/domain"
	"svw.info/flowfinder/internal/ports"
)

// ChallengeGenerator wires the selection, group and decoy stages.
type ChallengeGenerator struct {
	Selector ports.Selector
	Groups   ports.GroupBuilder
	Decoys   ports.DecoyForge
}

func New(sel ports.Selector, gb ports.GroupBuilder, df ports.DecoyForge) *ChallengeGenerator {
	return &ChallengeGenerator{Selector: sel, Groups: gb, Decoys: df}
}

// Generate builds one challenge. All randomness derives from seed, so equal
// seeds reproduce equal boards. Levels below 1 are treated as 1; level is
// player progress and must never block play.
func (g *ChallengeGenerator) Generate(ctx context.Context, seed int64, level int, premium bool) (*domain.GameChallenge, ports.Stats, error) {
	start := time.Now()
	if level < 1 {
		level = 1
	}
	rng := rand.New(rand.NewSource(seed))
	settings := difficulty.SettingsFor(level, premium)

	patterns, err := g.Selector.Select(ctx, rng, level)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	groups, err := g.Groups.Build(ctx, patterns, level)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	if len(groups) == 0 {
		return nil, ports.Stats{}, errors.New("no patterns available for level")
	}

	cells := settings.Cells()
	total := 0
	for i := range groups {
		total += len(groups[i].Elements)
	}
	// The scaler guarantees the grid holds every group; trim trailing groups
	// if a future misconfiguration breaks that.
	for total > cells && len(groups) > 1 {
		last := &groups[len(groups)-1]
		total -= len(last.Elements)
		groups = groups[:len(groups)-1]
	}

	board := make([]domain.PatternElement, 0, cells)
	taken := make(map[string]bool, cells)
	for i := range groups {
		for _, e := range groups[i].Elements {
			board = append(board, e)
			taken[e.Text] = true
		}
	}

	decoyCount := cells - total
	for i := 0; i < decoyCount; i++ {
		grp := &groups[i%len(groups)]
		d, err := g.Decoys.CreateDecoyFor(ctx, rng, &grp.Pattern, i, taken)
		if err != nil {
			return nil, ports.Stats{}, err
		}
		taken[d.Text] = true
		board = append(board, d)
	}

	// Fisher-Yates; every permutation equally likely.
	rng.Shuffle(len(board), func(i, j int) {
		board[i], board[j] = board[j], board[i]
	})

	ch := &domain.GameChallenge{
		ID:        uuid.NewString(),
		Level:     level,
		Seed:      seed,
		Premium:   premium,
		Groups:    groups,
		Board:     board,
		Settings:  settings,
		Scoring:   difficulty.ScoringFor(level, premium),
		CreatedAt: time.Now().UnixNano(),
	}
	return ch, ports.Stats{Decoys: decoyCount, Duration: time.Since(start)}, nil
}
