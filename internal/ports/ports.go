package ports

import (
	"context"
	"math/rand"
	"time"

	"svw.info/flowfinder/internal/domain"
)

// Stats captures performance characteristics of a generation run.
type Stats struct {
	Decoys   int
	Duration time.Duration
}

// Catalog is the read-only pattern registry. Implementations are built once
// and never mutated, so concurrent reads need no locking.
type Catalog interface {
	PatternsUpTo(level int) []domain.AdvancedPattern
}

// Selector picks a level-appropriate pattern mixture for one challenge.
// The rng carries all randomness so boards reproduce from a seed.
type Selector interface {
	Select(ctx context.Context, rng *rand.Rand, level int) ([]domain.AdvancedPattern, error)
}

// GroupBuilder turns selected patterns into per-challenge groups.
type GroupBuilder interface {
	Build(ctx context.Context, patterns []domain.AdvancedPattern, level int) ([]domain.PatternGroup, error)
}

// DecoyForge manufactures near-miss elements for a target pattern. Every
// returned element must fail at least one of the pattern's active dimensions.
// taken holds board texts already in use; forges avoid them when possible.
type DecoyForge interface {
	CreateDecoyFor(ctx context.Context, rng *rand.Rand, pattern *domain.AdvancedPattern, index int, taken map[string]bool) (domain.PatternElement, error)
}

// Verifier decides whether a set of revealed elements jointly satisfies a
// pattern's full dimension set.
type Verifier interface {
	CheckMatch(ctx context.Context, elements []domain.PatternElement, pattern *domain.AdvancedPattern) (bool, error)
}

// Generator assembles complete challenges at a target level.
type Generator interface {
	Generate(ctx context.Context, seed int64, level int, premium bool) (*domain.GameChallenge, Stats, error)
}
