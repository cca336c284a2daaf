// Package selector chooses a level-appropriate pattern mixture for one
// challenge: mostly current-level material, some stretch, a little review.
package selector

import (
	"context"
	"math/rand"

	"svw.info/flowfinder/internal/domain"
	"svw.info/flowfinder/internal/ports"
)

// stretchReach is how many levels above the player stretch patterns may sit.
const stretchReach = 3

// BandSelector partitions catalog-eligible patterns into review, current and
// stretch bands and samples each without replacement.
type BandSelector struct {
	Catalog ports.Catalog
}

func New(c ports.Catalog) *BandSelector { return &BandSelector{Catalog: c} }

// TargetCountFor returns how many patterns one challenge carries.
func TargetCountFor(level int) int {
	switch {
	case level < 5:
		return 2
	case level < 10:
		return 3
	default:
		return 4
	}
}

// Select picks patterns for the level. Quotas are 60% current / 30% stretch /
// 10% review, floored, remainder absorbed by review. An empty band silently
// hands its quota to whatever remains, so the total only falls short when the
// whole catalog does.
func (s *BandSelector) Select(ctx context.Context, rng *rand.Rand, level int) ([]domain.AdvancedPattern, error) {
	eligible := s.Catalog.PatternsUpTo(level + stretchReach)

	var review, current, stretch []domain.AdvancedPattern
	for _, p := range eligible {
		switch {
		case p.UserLevel < level-2:
			review = append(review, p)
		case p.UserLevel <= level:
			current = append(current, p)
		default:
			stretch = append(stretch, p)
		}
	}

	target := TargetCountFor(level)
	if len(eligible) < target {
		target = len(eligible)
	}
	nCur := target * 60 / 100
	nStr := target * 30 / 100
	nRev := target - nCur - nStr

	picked := pick(rng, current, nCur)
	picked = append(picked, pick(rng, stretch, nStr)...)
	picked = append(picked, pick(rng, review, nRev)...)

	if len(picked) < target {
		taken := make(map[string]bool, len(picked))
		for _, p := range picked {
			taken[p.ID] = true
		}
		var leftovers []domain.AdvancedPattern
		for _, p := range eligible {
			if !taken[p.ID] {
				leftovers = append(leftovers, p)
			}
		}
		picked = append(picked, pick(rng, leftovers, target-len(picked))...)
	}
	return picked, nil
}

// pick samples up to n patterns uniformly without replacement.
func pick(rng *rand.Rand, pool []domain.AdvancedPattern, n int) []domain.AdvancedPattern {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}
	idx := rng.Perm(len(pool))[:n]
	out := make([]domain.AdvancedPattern, 0, n)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}
