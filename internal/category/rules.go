package category

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Uncategorized is returned by Classify when no rule claims an extension.
const Uncategorized = ""

// Rule binds a category name to the extensions it claims.
type Rule struct {
	Name       string
	Extensions []string
}

// RuleSet is an ordered, read-only collection of rules.
type RuleSet struct {
	rules []Rule
	index map[string][]int // extension → rule positions, ascending
}

// Conflict describes an extension claimed by more than one category.
type Conflict struct {
	Extension  string
	Categories []string
	Winner     string
}

// New builds a RuleSet from rules in the given order. Extensions are
// lowercased and stripped of a leading dot; duplicate category names keep the
// first occurrence.
func New(rules []Rule) *RuleSet {
	rs := &RuleSet{index: make(map[string][]int)}
	seen := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		name := strings.TrimSpace(rule.Name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		pos := len(rs.rules)
		exts := make([]string, 0, len(rule.Extensions))
		claimed := make(map[string]struct{}, len(rule.Extensions))
		for _, ext := range rule.Extensions {
			norm := normalizeExt(ext)
			if norm == "" {
				continue
			}
			if _, ok := claimed[norm]; ok {
				continue
			}
			claimed[norm] = struct{}{}
			exts = append(exts, norm)
			rs.index[norm] = append(rs.index[norm], pos)
		}
		rs.rules = append(rs.rules, Rule{Name: name, Extensions: exts})
	}
	return rs
}

// Classify returns the category for ext, or Uncategorized. Case is ignored
// and a leading dot is tolerated. When several rules claim the extension the
// last one in declaration order wins.
func (rs *RuleSet) Classify(ext string) string {
	if rs == nil {
		return Uncategorized
	}
	positions := rs.index[normalizeExt(ext)]
	if len(positions) == 0 {
		return Uncategorized
	}
	return rs.rules[positions[len(positions)-1]].Name
}

// Names lists category names in declaration order.
func (rs *RuleSet) Names() []string {
	if rs == nil {
		return nil
	}
	names := make([]string, len(rs.rules))
	for i, rule := range rs.rules {
		names[i] = rule.Name
	}
	return names
}

// Rules returns a copy of the rule table.
func (rs *RuleSet) Rules() []Rule {
	if rs == nil {
		return nil
	}
	out := make([]Rule, len(rs.rules))
	for i, rule := range rs.rules {
		exts := make([]string, len(rule.Extensions))
		copy(exts, rule.Extensions)
		out[i] = Rule{Name: rule.Name, Extensions: exts}
	}
	return out
}

// Conflicts reports every extension claimed by more than one category,
// sorted by extension.
func (rs *RuleSet) Conflicts() []Conflict {
	if rs == nil {
		return nil
	}
	var out []Conflict
	for ext, positions := range rs.index {
		if len(positions) < 2 {
			continue
		}
		names := make([]string, len(positions))
		for i, pos := range positions {
			names[i] = rs.rules[pos].Name
		}
		out = append(out, Conflict{
			Extension:  ext,
			Categories: names,
			Winner:     names[len(names)-1],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Extension < out[j].Extension })
	return out
}

func normalizeExt(ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		return ""
	}
	// Caser values carry state, so one per call.
	return cases.Lower(language.Und).String(ext)
}
