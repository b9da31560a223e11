package skilltree

import (
	"context"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store. It counts every read so callers can
// check how often the store was consulted.
type MemStore struct {
	mu     sync.Mutex
	skills map[string]Skill
	order  []string
	values map[string]map[string]float64 // user -> skill name -> delta
	reads  int
}

var _ Store = (*MemStore)(nil)

// NewMemStore creates a store holding the given skills.
func NewMemStore(skills ...Skill) *MemStore {
	m := &MemStore{
		skills: make(map[string]Skill, len(skills)),
		values: make(map[string]map[string]float64),
	}
	for _, s := range skills {
		if _, dup := m.skills[s.Name]; !dup {
			m.order = append(m.order, s.Name)
		}
		m.skills[s.Name] = s
	}
	return m
}

// NewMemStoreFromForest creates a store holding every skill of the forest.
func NewMemStoreFromForest(f *Forest) *MemStore {
	return NewMemStore(f.Skills()...)
}

// SetValue sets a user's raw delta on a skill. It panics if the skill is
// unknown, since that is a setup mistake.
func (m *MemStore) SetValue(user, skillName string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.skills[skillName]; !ok {
		panic(fmt.Sprintf("memstore: unknown skill %q", skillName))
	}
	if m.values[user] == nil {
		m.values[user] = make(map[string]float64)
	}
	m.values[user][skillName] = value
}

// Reads returns the number of store calls made so far.
func (m *MemStore) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

func (m *MemStore) FindSkill(_ context.Context, name string) (Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	s, ok := m.skills[name]
	if !ok {
		return Skill{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s, nil
}

func (m *MemStore) FindSkills(_ context.Context, parentNames []string) ([]Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	parents := make(map[string]bool, len(parentNames))
	for _, p := range parentNames {
		parents[p] = true
	}
	var out []Skill
	for _, name := range m.order {
		s := m.skills[name]
		if s.Parent != "" && parents[s.Parent] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemStore) FindUserSkill(_ context.Context, user, skillName string) (UserSkill, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	s, ok := m.skills[skillName]
	if !ok {
		return UserSkill{}, false, nil
	}
	v, ok := m.values[user][skillName]
	if !ok {
		return UserSkill{}, false, nil
	}
	return UserSkill{User: user, Skill: s, Value: v}, true, nil
}

func (m *MemStore) FindUserSkills(_ context.Context, user string, skills []Skill) ([]UserSkill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	var out []UserSkill
	for _, s := range skills {
		v, ok := m.values[user][s.Name]
		if !ok {
			continue
		}
		out = append(out, UserSkill{User: user, Skill: m.skills[s.Name], Value: v})
	}
	return out, nil
}
