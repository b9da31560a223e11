package skilltree

import (
	_ "embed"
	"fmt"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed forest.yaml
var defaultForestYAML []byte

// forestFile is the on-disk shape of a forest definition.
type forestFile struct {
	Categories []struct {
		Name  string     `yaml:"name"`
		Tiers []tierSpec `yaml:"tiers"`
	} `yaml:"categories"`
}

type tierSpec struct {
	Name string `yaml:"name"`
	From int    `yaml:"from"`
	To   int    `yaml:"to"`
}

// Forest is a validated skill forest with a name index.
type Forest struct {
	skills []Skill // parents always precede their children
	byName map[string]int
}

// DefaultForest parses the embedded seed forest.
func DefaultForest() (*Forest, error) {
	return LoadForest(defaultForestYAML)
}

// LoadForest parses a forest definition, expands tier facts and validates
// the result.
func LoadForest(data []byte) (*Forest, error) {
	var ff forestFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("parse forest: %w", err)
	}

	var skills []Skill
	for _, fc := range ff.Categories {
		cat, err := ParseCategory(fc.Name)
		if err != nil {
			return nil, err
		}

		root := Skill{Name: fc.Name}
		var tiers, leaves []Skill
		for _, ts := range fc.Tiers {
			if ts.From > ts.To {
				return nil, fmt.Errorf("tier %q: from %d > to %d", ts.Name, ts.From, ts.To)
			}
			names := factNames(cat, ts.From, ts.To)
			tiers = append(tiers, Skill{Name: ts.Name, Parent: root.Name, ChildrenList: names})
			for _, n := range names {
				leaves = append(leaves, Skill{Name: n, Parent: ts.Name})
			}
			root.ChildrenList = append(root.ChildrenList, ts.Name)
			root.ChildrenList = append(root.ChildrenList, names...)
		}

		skills = append(skills, root)
		skills = append(skills, tiers...)
		skills = append(skills, leaves...)
	}

	return NewForest(skills)
}

// NewForest validates skills and builds a Forest from them. Skills may be
// given in any order.
func NewForest(skills []Skill) (*Forest, error) {
	if err := validateSkills(skills); err != nil {
		return nil, err
	}

	f := &Forest{byName: make(map[string]int, len(skills))}
	depth := make(map[string]int, len(skills))
	byName := make(map[string]Skill, len(skills))
	for _, s := range skills {
		byName[s.Name] = s
	}
	var depthOf func(name string) int
	depthOf = func(name string) int {
		if d, ok := depth[name]; ok {
			return d
		}
		d := 0
		if p := byName[name].Parent; p != "" {
			d = depthOf(p) + 1
		}
		depth[name] = d
		return d
	}

	ordered := slices.Clone(skills)
	slices.SortStableFunc(ordered, func(a, b Skill) int {
		return depthOf(a.Name) - depthOf(b.Name)
	})
	f.skills = ordered
	for i, s := range f.skills {
		f.byName[s.Name] = i
	}
	return f, nil
}

// Skills returns all skills, parents before children.
func (f *Forest) Skills() []Skill {
	return slices.Clone(f.skills)
}

// Get returns a skill by name.
func (f *Forest) Get(name string) (Skill, error) {
	i, ok := f.byName[name]
	if !ok {
		return Skill{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return f.skills[i], nil
}

// CategoryOf returns the category whose tree contains the named skill.
func (f *Forest) CategoryOf(name string) (Category, error) {
	s, err := f.Get(name)
	if err != nil {
		return "", err
	}
	for !s.IsRoot() {
		if s, err = f.Get(s.Parent); err != nil {
			return "", err
		}
	}
	return ParseCategory(s.Name)
}

// ByCategory returns the skills of one category tree, parents first.
func (f *Forest) ByCategory(c Category) []Skill {
	var out []Skill
	for _, s := range f.skills {
		if cat, err := f.CategoryOf(s.Name); err == nil && cat == c {
			out = append(out, s)
		}
	}
	return out
}

// factNames expands a tier's bounds into the names of its single facts.
// The naming scheme matches the cell labels of the category's table.
func factNames(c Category, from, to int) []string {
	var names []string
	switch c {
	case CategoryNumbers:
		for n := from; n <= to; n++ {
			names = append(names, strconv.Itoa(n))
		}
	case CategoryAddition:
		for sum := from; sum <= to; sum++ {
			for a := 1; a < sum; a++ {
				names = append(names, fmt.Sprintf("%d+%d", a, sum-a))
			}
		}
	case CategorySubtraction:
		for a := from; a <= to; a++ {
			for b := 1; b <= a; b++ {
				names = append(names, fmt.Sprintf("%d-%d", a, b))
			}
		}
	case CategoryMultiplication:
		for b := from; b <= to; b++ {
			for a := 0; a <= 10; a++ {
				names = append(names, fmt.Sprintf("%dx%d", a, b))
			}
		}
	case CategoryDivision:
		for b := from; b <= to; b++ {
			if b == 0 {
				continue
			}
			for a := 0; a <= 10; a++ {
				names = append(names, fmt.Sprintf("%d/%d", a*b, b))
			}
		}
	}
	return names
}
