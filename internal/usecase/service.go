package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/flowfinder/internal/domain"
	"svw.info/flowfinder/internal/ports"
)

// Service is the engine's in-process API surface, dependency-injected so
// hosts and tests can swap any stage.
type Service struct {
	Generator ports.Generator
	Verifier  ports.Verifier
	Catalog   ports.Catalog
}

func NewService(g ports.Generator, v ports.Verifier, c ports.Catalog) *Service {
	return &Service{Generator: g, Verifier: v, Catalog: c}
}

var (
	errNotConfigured = errors.New("usecase dependency not configured")

	// ErrNoHints is returned when the challenge's hint allowance is spent.
	ErrNoHints = errors.New("no hints left")
)

// Generate builds a fresh challenge. A zero seed picks the wall clock;
// callers wanting reproducible boards pass their own.
func (u *Service) Generate(ctx context.Context, seed int64, level int, premium bool) (*domain.GameChallenge, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return u.Generator.Generate(ctx, seed, level, premium)
}

// CheckMatch reports whether the elements jointly satisfy the pattern.
func (u *Service) CheckMatch(ctx context.Context, elements []domain.PatternElement, pattern *domain.AdvancedPattern) (bool, error) {
	if u.Verifier == nil {
		return false, errNotConfigured
	}
	return u.Verifier.CheckMatch(ctx, elements, pattern)
}

// Patterns lists the catalog patterns available up to a level.
func (u *Service) Patterns(ctx context.Context, level int) ([]domain.AdvancedPattern, error) {
	if u.Catalog == nil {
		return nil, errNotConfigured
	}
	return u.Catalog.PatternsUpTo(level), nil
}

// PatternByID resolves a catalog pattern regardless of level.
func (u *Service) PatternByID(ctx context.Context, id string) (*domain.AdvancedPattern, error) {
	if u.Catalog == nil {
		return nil, errNotConfigured
	}
	all := u.Catalog.PatternsUpTo(1 << 30)
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("unknown pattern %q", id)
}

// SubmitGuess applies a revealed word set to the challenge. A group only
// completes when the guess size equals the group size and the verifier
// accepts the set; every incomplete group actually tested records the
// attempt. Mutates nothing outside the challenge's own play state.
func (u *Service) SubmitGuess(ctx context.Context, ch *domain.GameChallenge, elementIDs []string) (*domain.PatternGroup, bool, error) {
	if u.Verifier == nil {
		return nil, false, errNotConfigured
	}
	elems := make([]domain.PatternElement, 0, len(elementIDs))
	for _, id := range elementIDs {
		e, ok := ch.ElementByID(id)
		if !ok {
			return nil, false, fmt.Errorf("unknown element %q", id)
		}
		elems = append(elems, e)
	}
	for i := range ch.Groups {
		grp := &ch.Groups[i]
		if grp.Completed || len(elems) != len(grp.Elements) {
			continue
		}
		ok, err := u.Verifier.CheckMatch(ctx, elems, &grp.Pattern)
		if err != nil {
			return nil, false, err
		}
		if ok {
			grp.Completed = true
			grp.Revealed = append([]string(nil), elementIDs...)
			return grp, true, nil
		}
		grp.Attempts++
	}
	return nil, false, nil
}

// UseHint consumes one hint from the challenge allowance and returns the
// group's level-gated description.
func (u *Service) UseHint(ctx context.Context, ch *domain.GameChallenge, groupID string) (string, error) {
	if ch.HintsLeft() == 0 {
		return "", ErrNoHints
	}
	for i := range ch.Groups {
		grp := &ch.Groups[i]
		if grp.ID != groupID {
			continue
		}
		if grp.Completed {
			return "", fmt.Errorf("group %q already completed", groupID)
		}
		grp.HintsUsed++
		return grp.Description, nil
	}
	return "", fmt.Errorf("unknown group %q", groupID)
}
