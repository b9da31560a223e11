package tables

import (
	"context"
	"fmt"

	"github.com/abhisek/mathskills/internal/mastery"
	"github.com/abhisek/mathskills/internal/skilltree"
)

// Cell is one slot of a category grid.
type Cell struct {
	Label       string // skill name the slot stands for
	DisplayName string // empty when no skill exists for the slot
	Trackable   bool
	Score       mastery.Score
}

// TierScore is the score of one difficulty tier below a category root.
type TierScore struct {
	Skill skilltree.Skill
	Score mastery.Score
}

// Table is the resolved grid of one category.
type Table struct {
	Category skilltree.Category
	Grid     [][]Cell
	Tiers    []TierScore
}

// Builder builds the table of one category for one user.
type Builder interface {
	Category() skilltree.Category
	Build(ctx context.Context, st skilltree.Store, agg *mastery.Aggregator, user string) (*Table, error)
}

// gridBuilder resolves a fixed label grid against the facts below a
// category's tiers.
type gridBuilder struct {
	category skilltree.Category
	tiers    []string
	labels   func() [][]string
}

var _ Builder = gridBuilder{}

func (b gridBuilder) Category() skilltree.Category {
	return b.category
}

// Labels returns the grid of cell labels without resolving any scores.
func (b gridBuilder) Labels() [][]string {
	return b.labels()
}

func (b gridBuilder) Build(ctx context.Context, st skilltree.Store, agg *mastery.Aggregator, user string) (*Table, error) {
	facts, err := st.FindSkills(ctx, b.tiers)
	if err != nil {
		return nil, fmt.Errorf("find %s facts: %w", b.category, err)
	}
	tracked := make(map[string]skilltree.Skill, len(facts))
	for _, s := range facts {
		tracked[s.Name] = s
	}

	records, err := st.FindUserSkills(ctx, user, facts)
	if err != nil {
		return nil, fmt.Errorf("find %s records: %w", b.category, err)
	}
	byName := make(map[string]skilltree.UserSkill, len(records))
	for _, us := range records {
		byName[us.Skill.Name] = us
	}

	labels := b.labels()
	grid := make([][]Cell, len(labels))
	for r, row := range labels {
		grid[r] = make([]Cell, len(row))
		for c, label := range row {
			cell, err := resolveCell(ctx, agg, label, tracked, byName)
			if err != nil {
				return nil, err
			}
			grid[r][c] = cell
		}
	}

	tiers, err := st.FindSkills(ctx, []string{string(b.category)})
	if err != nil {
		return nil, fmt.Errorf("find %s tiers: %w", b.category, err)
	}
	tierScores := make([]TierScore, 0, len(tiers))
	for _, t := range tiers {
		s, err := agg.Score(ctx, user, t.Name)
		if err != nil {
			return nil, err
		}
		tierScores = append(tierScores, TierScore{Skill: t, Score: s})
	}

	return &Table{Category: b.category, Grid: grid, Tiers: tierScores}, nil
}

func resolveCell(
	ctx context.Context,
	agg *mastery.Aggregator,
	label string,
	tracked map[string]skilltree.Skill,
	records map[string]skilltree.UserSkill,
) (Cell, error) {
	if _, ok := tracked[label]; !ok {
		return Cell{Label: label, Score: mastery.UntrackableScore()}, nil
	}

	cell := Cell{Label: label, DisplayName: label, Trackable: true, Score: mastery.NoDataScore()}
	us, ok := records[label]
	if !ok {
		return cell, nil
	}
	v, err := agg.AggregateUserSkill(ctx, us)
	if err != nil {
		return Cell{}, err
	}
	cell.Score = mastery.ScoreOf(v)
	return cell, nil
}
