package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmoiron/sqlx"

	"github.com/abhisek/mathskills/internal/skilltree"
)

// SkillRepo gives read access to skills and user records for scoring, plus
// the writes used by seeding and practice recording.
type SkillRepo interface {
	skilltree.Store

	// AllSkills returns every skill in insertion order.
	AllSkills(ctx context.Context) ([]skilltree.Skill, error)

	// UpsertSkills inserts or updates skills by name. Parents must come
	// before their children. Returns the number of skills written.
	UpsertSkills(ctx context.Context, skills []skilltree.Skill) (int, error)

	// AddDelta adds delta to the user's record on the named skill, creating
	// the record if needed, and returns the new raw value.
	AddDelta(ctx context.Context, user, skillName string, delta float64) (float64, error)

	// SetValue overwrites the user's raw value on the named skill.
	SetValue(ctx context.Context, user, skillName string, value float64) error
}

// skillRepo implements SkillRepo with the ent SQL builder.
type skillRepo struct {
	db      *sqlx.DB
	builder *entsql.DialectBuilder
}

var _ SkillRepo = (*skillRepo)(nil)

type skillRow struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	ChildrenList string         `db:"children_list"`
	ParentName   sql.NullString `db:"parent_name"`
}

func (r skillRow) toSkill() skilltree.Skill {
	return skilltree.Skill{
		ID:           r.ID,
		Name:         r.Name,
		Parent:       r.ParentName.String,
		ChildrenList: skilltree.SplitChildren(r.ChildrenList),
	}
}

type userSkillRow struct {
	User  string  `db:"user_id"`
	Value float64 `db:"value"`
	skillRow
}

// selectSkills starts a query over skills (s) joined to their parent (p).
func (r *skillRepo) selectSkills() (sel *entsql.Selector, s, p *entsql.SelectTable) {
	s = r.builder.Table(skillsTable.Name).As("s")
	p = r.builder.Table(skillsTable.Name).As("p")
	sel = r.builder.Select(
		s.C("id"),
		s.C("name"),
		s.C("children_list"),
		entsql.As(p.C("name"), "parent_name"),
	).
		From(s).
		LeftJoin(p).On(s.C("parent_id"), p.C("id"))
	return sel, s, p
}

func (r *skillRepo) FindSkill(ctx context.Context, name string) (skilltree.Skill, error) {
	sel, s, _ := r.selectSkills()
	query, args := sel.Where(entsql.EQ(s.C("name"), name)).Query()

	var row skillRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return skilltree.Skill{}, fmt.Errorf("%w: %q", skilltree.ErrNotFound, name)
		}
		return skilltree.Skill{}, fmt.Errorf("query skill %q: %w", name, err)
	}
	return row.toSkill(), nil
}

func (r *skillRepo) FindSkills(ctx context.Context, parentNames []string) ([]skilltree.Skill, error) {
	if len(parentNames) == 0 {
		return nil, nil
	}
	sel, s, p := r.selectSkills()
	query, args := sel.
		Where(entsql.In(p.C("name"), toArgs(parentNames)...)).
		OrderBy(s.C("id")).
		Query()

	var rows []skillRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query skills by parent: %w", err)
	}
	return toSkills(rows), nil
}

func (r *skillRepo) AllSkills(ctx context.Context) ([]skilltree.Skill, error) {
	sel, s, _ := r.selectSkills()
	query, args := sel.OrderBy(s.C("id")).Query()

	var rows []skillRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	return toSkills(rows), nil
}

// selectUserSkills starts a query over user records joined to their skill
// and the skill's parent name.
func (r *skillRepo) selectUserSkills(user string) (*entsql.Selector, *entsql.SelectTable) {
	us := r.builder.Table(userSkillsTable.Name).As("us")
	s := r.builder.Table(skillsTable.Name).As("s")
	p := r.builder.Table(skillsTable.Name).As("p")
	sel := r.builder.Select(
		us.C("user_id"),
		us.C("value"),
		s.C("id"),
		s.C("name"),
		s.C("children_list"),
		entsql.As(p.C("name"), "parent_name"),
	).
		From(us).
		Join(s).On(us.C("skill_id"), s.C("id")).
		LeftJoin(p).On(s.C("parent_id"), p.C("id")).
		Where(entsql.EQ(us.C("user_id"), user))
	return sel, s
}

func (r *skillRepo) FindUserSkill(ctx context.Context, user, skillName string) (skilltree.UserSkill, bool, error) {
	sel, s := r.selectUserSkills(user)
	query, args := sel.Where(entsql.EQ(s.C("name"), skillName)).Query()

	var row userSkillRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return skilltree.UserSkill{}, false, nil
		}
		return skilltree.UserSkill{}, false, fmt.Errorf("query user skill %q: %w", skillName, err)
	}
	return row.toUserSkill(), true, nil
}

func (r *skillRepo) FindUserSkills(ctx context.Context, user string, skills []skilltree.Skill) ([]skilltree.UserSkill, error) {
	if len(skills) == 0 {
		return nil, nil
	}
	names := make([]string, len(skills))
	for i, sk := range skills {
		names[i] = sk.Name
	}

	sel, s := r.selectUserSkills(user)
	query, args := sel.Where(entsql.In(s.C("name"), toArgs(names)...)).OrderBy(s.C("id")).Query()

	var rows []userSkillRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query user skills: %w", err)
	}
	out := make([]skilltree.UserSkill, len(rows))
	for i, row := range rows {
		out[i] = row.toUserSkill()
	}
	return out, nil
}

func (r *skillRepo) UpsertSkills(ctx context.Context, skills []skilltree.Skill) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	ids := make(map[string]int64, len(skills))
	for _, sk := range skills {
		var parentID any
		if !sk.IsRoot() {
			id, ok := ids[sk.Parent]
			if !ok {
				if err := r.lookupID(ctx, tx, sk.Parent, &id); err != nil {
					return 0, fmt.Errorf("skill %q: %w", sk.Name, err)
				}
			}
			parentID = id
		}

		query, args := r.builder.Insert(skillsTable.Name).
			Columns("name", "children_list", "parent_id").
			Values(sk.Name, skilltree.JoinChildren(sk.ChildrenList), parentID).
			OnConflict(
				entsql.ConflictColumns("name"),
				entsql.ResolveWithNewValues(),
			).
			Returning("id").
			Query()

		var id int64
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("upsert skill %q: %w", sk.Name, err)
		}
		ids[sk.Name] = id
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(skills), nil
}

func (r *skillRepo) AddDelta(ctx context.Context, user, skillName string, delta float64) (float64, error) {
	sk, err := r.FindSkill(ctx, skillName)
	if err != nil {
		return 0, err
	}

	query, args := r.builder.Insert(userSkillsTable.Name).
		Columns("user_id", "skill_id", "value").
		Values(user, sk.ID, delta).
		OnConflict(
			entsql.ConflictColumns("user_id", "skill_id"),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.Add("value", delta)
			}),
		).
		Returning("value").
		Query()

	var value float64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&value); err != nil {
		return 0, fmt.Errorf("add delta to %q: %w", skillName, err)
	}
	return value, nil
}

func (r *skillRepo) SetValue(ctx context.Context, user, skillName string, value float64) error {
	sk, err := r.FindSkill(ctx, skillName)
	if err != nil {
		return err
	}

	query, args := r.builder.Insert(userSkillsTable.Name).
		Columns("user_id", "skill_id", "value").
		Values(user, sk.ID, value).
		OnConflict(
			entsql.ConflictColumns("user_id", "skill_id"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set value on %q: %w", skillName, err)
	}
	return nil
}

func (r *skillRepo) lookupID(ctx context.Context, tx *sqlx.Tx, name string, id *int64) error {
	query, args := r.builder.Select("id").
		From(r.builder.Table(skillsTable.Name)).
		Where(entsql.EQ("name", name)).
		Query()
	if err := tx.GetContext(ctx, id, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: parent %q", skilltree.ErrNotFound, name)
		}
		return fmt.Errorf("query skill id %q: %w", name, err)
	}
	return nil
}

func (r userSkillRow) toUserSkill() skilltree.UserSkill {
	return skilltree.UserSkill{
		User:  r.User,
		Skill: r.skillRow.toSkill(),
		Value: r.Value,
	}
}

func toSkills(rows []skillRow) []skilltree.Skill {
	out := make([]skilltree.Skill, len(rows))
	for i, row := range rows {
		out[i] = row.toSkill()
	}
	return out
}

func toArgs(ss []string) []any {
	args := make([]any, len(ss))
	for i, s := range ss {
		args[i] = s
	}
	return args
}
