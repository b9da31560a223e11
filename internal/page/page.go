package page

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/mathskills/internal/mastery"
	"github.com/abhisek/mathskills/internal/skilltree"
	"github.com/abhisek/mathskills/internal/tables"
)

// DefaultCategory is the tab shown when no target selects another one.
const DefaultCategory = skilltree.CategoryNumbers

// CategoryPage is the payload of one category tab.
type CategoryPage struct {
	Category skilltree.Category
	Skill    skilltree.Skill // category root
	Summary  mastery.Score
	Table    *tables.Table
	Active   bool
}

// PageModel is everything a renderer needs to draw a user's skill page.
type PageModel struct {
	User       string
	PassID     string
	Categories []CategoryPage // fixed order, one per category
	Active     skilltree.Category
}

// ActivePage returns the payload of the active tab.
func (m *PageModel) ActivePage() *CategoryPage {
	for i := range m.Categories {
		if m.Categories[i].Category == m.Active {
			return &m.Categories[i]
		}
	}
	return nil
}

// Assembler orchestrates one render pass per call. It keeps no state
// between calls and is safe for concurrent use.
type Assembler struct {
	store  skilltree.Store
	logger zerolog.Logger
}

// NewAssembler creates an Assembler reading from store.
func NewAssembler(store skilltree.Store, logger zerolog.Logger) *Assembler {
	return &Assembler{store: store, logger: logger}
}

// RenderMySkills scores every category for user. If targetID names a skill
// listed in a category's children list, that category becomes the active
// tab; otherwise numbers is active. A missing category root fails the
// whole pass.
func (a *Assembler) RenderMySkills(ctx context.Context, user, targetID string) (*PageModel, error) {
	start := time.Now()
	passID := uuid.New().String()
	log := a.logger.With().Str("user", user).Str("pass_id", passID).Logger()

	// Fresh aggregation cache for this pass only.
	agg := mastery.NewAggregator(a.store)

	model := &PageModel{
		User:   user,
		PassID: passID,
		Active: DefaultCategory,
	}

	for _, c := range skilltree.Categories() {
		cp, err := a.renderCategory(ctx, agg, c, user)
		if err != nil {
			log.Error().Err(err).Str("category", string(c)).Msg("render skill page")
			return nil, err
		}
		if targetID != "" && cp.Skill.HasChild(targetID) {
			model.Active = c
		}
		model.Categories = append(model.Categories, cp)
	}

	for i := range model.Categories {
		model.Categories[i].Active = model.Categories[i].Category == model.Active
	}

	log.Debug().
		Str("target", targetID).
		Str("active", string(model.Active)).
		Int("store_reads", agg.Reads()).
		Int("cache_hits", agg.Hits()).
		Dur("elapsed", time.Since(start)).
		Msg("rendered skill page")

	return model, nil
}

func (a *Assembler) renderCategory(ctx context.Context, agg *mastery.Aggregator, c skilltree.Category, user string) (CategoryPage, error) {
	root, err := a.store.FindSkill(ctx, string(c))
	if err != nil {
		return CategoryPage{}, fmt.Errorf("category %s: %w", c, err)
	}

	builder, err := tables.For(c)
	if err != nil {
		return CategoryPage{}, err
	}
	table, err := builder.Build(ctx, a.store, agg, user)
	if err != nil {
		return CategoryPage{}, fmt.Errorf("category %s: %w", c, err)
	}

	summary, err := agg.Score(ctx, user, root.Name)
	if err != nil {
		return CategoryPage{}, fmt.Errorf("category %s: %w", c, err)
	}

	return CategoryPage{
		Category: c,
		Skill:    root,
		Summary:  summary,
		Table:    table,
	}, nil
}
