package skilltree

import (
	"fmt"
	"strings"
)

// validateSkills performs all structural checks on the given skill set.
// Returns a combined error describing all problems found, or nil if valid.
func validateSkills(skills []Skill) error {
	var errs []string

	byName := make(map[string]Skill, len(skills))

	// Check for duplicate and empty names
	for _, s := range skills {
		if s.Name == "" {
			errs = append(errs, "skill with empty name")
			continue
		}
		if _, dup := byName[s.Name]; dup {
			errs = append(errs, fmt.Sprintf("duplicate skill name: %q", s.Name))
		}
		byName[s.Name] = s
	}

	// Check for dangling parents
	for _, s := range skills {
		if s.Parent != "" {
			if _, ok := byName[s.Parent]; !ok {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent parent %q", s.Name, s.Parent))
			}
		}
	}

	// Check for cycles by walking each parent chain. A chain longer than the
	// skill count must revisit a node.
	var cycleNodes []string
	for _, s := range skills {
		cur := s
		for steps := 0; cur.Parent != ""; steps++ {
			if steps > len(skills) {
				cycleNodes = append(cycleNodes, s.Name)
				break
			}
			next, ok := byName[cur.Parent]
			if !ok {
				break
			}
			cur = next
		}
	}
	if len(cycleNodes) > 0 {
		errs = append(errs, fmt.Sprintf("cycle detected involving skills: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check every category has a root skill
	for _, c := range Categories() {
		s, ok := byName[string(c)]
		switch {
		case !ok:
			errs = append(errs, fmt.Sprintf("category %q has no root skill", c))
		case !s.IsRoot():
			errs = append(errs, fmt.Sprintf("category %q root has parent %q", c, s.Parent))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill forest validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
