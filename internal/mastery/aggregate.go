package mastery

import (
	"context"
	"fmt"

	"github.com/abhisek/mathskills/internal/skilltree"
)

type cacheKey struct {
	user  string
	skill string
}

type cacheEntry struct {
	value     float64
	hasRecord bool // the user holds a record on this node itself
}

// Aggregator rolls a user's raw deltas up the parent chain. Results are
// memoized per (user, skill) for the lifetime of the Aggregator, which is
// one render pass: create a new one for every pass and never share it
// between concurrent passes.
type Aggregator struct {
	store skilltree.Store
	cache map[cacheKey]cacheEntry
	reads int
	hits  int
}

// NewAggregator creates an Aggregator with an empty cache.
func NewAggregator(store skilltree.Store) *Aggregator {
	return &Aggregator{
		store: store,
		cache: make(map[cacheKey]cacheEntry),
	}
}

// Aggregate returns the sum of the user's deltas on the named skill and
// every ancestor up to its root. A node without a record contributes 0.
// Fails with an error wrapping skilltree.ErrNotFound if any skill on the
// chain does not exist.
func (a *Aggregator) Aggregate(ctx context.Context, user, skillName string) (float64, error) {
	e, err := a.lookup(ctx, user, skillName)
	if err != nil {
		return 0, err
	}
	return e.value, nil
}

// AggregateUserSkill rolls up a record that was already fetched, adding
// its own value to the parent's aggregate. The result is cached under the
// same key Aggregate uses.
func (a *Aggregator) AggregateUserSkill(ctx context.Context, us skilltree.UserSkill) (float64, error) {
	key := cacheKey{user: us.User, skill: us.Skill.Name}
	if e, ok := a.cache[key]; ok {
		a.hits++
		return e.value, nil
	}

	v := us.Value
	if !us.Skill.IsRoot() {
		pv, err := a.Aggregate(ctx, us.User, us.Skill.Parent)
		if err != nil {
			return 0, fmt.Errorf("aggregate %q: %w", us.Skill.Name, err)
		}
		v += pv
	}
	a.cache[key] = cacheEntry{value: v, hasRecord: true}
	return v, nil
}

// Score aggregates the named skill and converts it to a display score.
// Skills on which the user holds no record get the no-data score.
func (a *Aggregator) Score(ctx context.Context, user, skillName string) (Score, error) {
	e, err := a.lookup(ctx, user, skillName)
	if err != nil {
		return Score{}, err
	}
	if !e.hasRecord {
		return NoDataScore(), nil
	}
	return ScoreOf(e.value), nil
}

// Reads returns how many store calls the Aggregator has made.
func (a *Aggregator) Reads() int {
	return a.reads
}

// Hits returns how many lookups were answered from the cache.
func (a *Aggregator) Hits() int {
	return a.hits
}

func (a *Aggregator) lookup(ctx context.Context, user, skillName string) (cacheEntry, error) {
	key := cacheKey{user: user, skill: skillName}
	if e, ok := a.cache[key]; ok {
		a.hits++
		return e, nil
	}

	a.reads++
	skill, err := a.store.FindSkill(ctx, skillName)
	if err != nil {
		return cacheEntry{}, fmt.Errorf("aggregate %q: %w", skillName, err)
	}

	a.reads++
	us, ok, err := a.store.FindUserSkill(ctx, user, skillName)
	if err != nil {
		return cacheEntry{}, fmt.Errorf("aggregate %q: %w", skillName, err)
	}

	e := cacheEntry{hasRecord: ok}
	if ok {
		e.value = us.Value
	}
	if !skill.IsRoot() {
		pv, err := a.Aggregate(ctx, user, skill.Parent)
		if err != nil {
			return cacheEntry{}, err
		}
		e.value += pv
	}

	a.cache[key] = e
	return e, nil
}
