package skilltree

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a referenced skill does not exist in the store.
var ErrNotFound = errors.New("skill not found")

// Category is one of the five top-level skill domains.
type Category string

const (
	CategoryNumbers        Category = "numbers"
	CategoryAddition       Category = "addition"
	CategorySubtraction    Category = "subtraction"
	CategoryMultiplication Category = "multiplication"
	CategoryDivision       Category = "division"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryNumbers,
		CategoryAddition,
		CategorySubtraction,
		CategoryMultiplication,
		CategoryDivision,
	}
}

// DisplayName returns a human-readable name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryNumbers:
		return "Numbers"
	case CategoryAddition:
		return "Addition"
	case CategorySubtraction:
		return "Subtraction"
	case CategoryMultiplication:
		return "Multiplication"
	case CategoryDivision:
		return "Division"
	default:
		return string(c)
	}
}

// ParseCategory maps a category name to its Category.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}

// Skill is a named node in the skill forest. The root of each tree carries
// the category name; tiers hang below it and single facts below the tiers.
type Skill struct {
	ID           int64
	Name         string
	Parent       string   // empty for roots
	ChildrenList []string // names that activate this skill's tab
}

// IsRoot reports whether the skill has no parent.
func (s Skill) IsRoot() bool {
	return s.Parent == ""
}

// HasChild reports whether name appears in the skill's children list.
func (s Skill) HasChild(name string) bool {
	for _, c := range s.ChildrenList {
		if c == name {
			return true
		}
	}
	return false
}

// JoinChildren encodes a children list the way it is stored.
func JoinChildren(names []string) string {
	return strings.Join(names, ",")
}

// SplitChildren decodes a stored children list.
func SplitChildren(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// UserSkill is the raw delta one user holds on one skill node. The value
// is not rolled up; ancestors contribute through aggregation.
type UserSkill struct {
	User  string
	Skill Skill
	Value float64
}

// Store is the read-only data access the scoring core depends on.
type Store interface {
	// FindSkill returns the skill with the given name, or an error
	// wrapping ErrNotFound.
	FindSkill(ctx context.Context, name string) (Skill, error)

	// FindSkills returns every skill whose parent is one of parentNames.
	FindSkills(ctx context.Context, parentNames []string) ([]Skill, error)

	// FindUserSkill returns the user's record for the named skill. The
	// boolean is false when the user has no record; that is not an error.
	FindUserSkill(ctx context.Context, user, skillName string) (UserSkill, bool, error)

	// FindUserSkills returns the user's records among the given skills.
	FindUserSkills(ctx context.Context, user string, skills []Skill) ([]UserSkill, error)
}
