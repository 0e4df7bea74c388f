package usage

import (
	"slices"
	"strings"
)

// ScopeKind classifies the scope a function is declared in.
type ScopeKind int

// Scope kinds.
const (
	ScopeFree ScopeKind = iota
	ScopeMember
	ScopeOperator
	ScopeVirtual
	ScopeTemplate
)

// String returns the name of the scope kind.
func (k ScopeKind) String() string {
	switch k {
	case ScopeFree:
		return "free"
	case ScopeMember:
		return "member"
	case ScopeOperator:
		return "operator"
	case ScopeVirtual:
		return "virtual"
	case ScopeTemplate:
		return "template"
	default:
		return "unknown"
	}
}

// Symbol is one function definition seen during analysis.
type Symbol struct {
	Name string
	File string
	Line int
	Kind ScopeKind
}

// Group is the ambiguity group of all symbols sharing one name.
// Usage events increment the group as a whole: every member observes the
// same usage count because calls cannot be resolved to a single member.
type Group struct {
	Name    string
	members []Symbol
	uses    int
}

// Members returns the group members sorted by file, then line.
func (g *Group) Members() []Symbol {
	members := slices.Clone(g.members)
	slices.SortFunc(members, compareSymbols)
	return members
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.members)
}

// Ambiguous reports whether more than one symbol shares the name.
func (g *Group) Ambiguous() bool {
	return len(g.members) > 1
}

// Uses returns the usage count shared by every member.
func (g *Group) Uses() int {
	return g.uses
}

// add registers sym once per (file, kind). Of several definitions in one
// file, the one on the lowest line is kept.
func (g *Group) add(sym Symbol) {
	for i, m := range g.members {
		if m.File == sym.File && m.Kind == sym.Kind {
			if sym.Line < m.Line {
				g.members[i] = sym
			}
			return
		}
	}
	g.members = append(g.members, sym)
}

// Registry maps function names to their ambiguity groups.
// It is not safe for concurrent use.
type Registry struct {
	groups map[string]*Group
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		groups: make(map[string]*Group),
	}
}

func (r *Registry) group(name string) *Group {
	g, ok := r.groups[name]
	if !ok {
		g = &Group{Name: name}
		r.groups[name] = g
	}
	return g
}

// Declare registers sym in the group of its name.
func (r *Registry) Declare(sym Symbol) {
	r.group(sym.Name).add(sym)
}

// Use records n references to name. References to names not declared yet
// are kept so that a later declaration observes them.
func (r *Registry) Use(name string, n int) {
	if n <= 0 {
		return
	}
	r.group(name).uses += n
}

// Group returns the group registered under name.
func (r *Registry) Group(name string) (*Group, bool) {
	g, ok := r.groups[name]
	return g, ok
}

// Groups returns all groups sorted by name.
func (r *Registry) Groups() []*Group {
	groups := make([]*Group, 0, len(r.groups))
	for _, g := range r.groups {
		groups = append(groups, g)
	}
	slices.SortFunc(groups, func(a, b *Group) int {
		return strings.Compare(a.Name, b.Name)
	})
	return groups
}

// Symbols returns the number of registered symbols.
func (r *Registry) Symbols() int {
	n := 0
	for _, g := range r.groups {
		n += len(g.members)
	}
	return n
}

// Merge folds other into r. Merging is commutative: the resulting groups and
// counts do not depend on the order partial registries are merged in.
func (r *Registry) Merge(other *Registry) {
	if other == nil {
		return
	}
	for name, og := range other.groups {
		g := r.group(name)
		for _, m := range og.members {
			g.add(m)
		}
		g.uses += og.uses
	}
}

func compareSymbols(a, b Symbol) int {
	if c := strings.Compare(a.File, b.File); c != 0 {
		return c
	}
	if a.Line != b.Line {
		return a.Line - b.Line
	}
	return strings.Compare(a.Name, b.Name)
}
