package domain

import (
	"math"
	"strings"
)

// Registry is an immutable, ordered table of categories.
// Build it once with NewRegistry; every accessor returns copies.
type Registry struct {
	order []string
	cats  map[string]Category
	units map[string]map[string]int
}

// NewRegistry validates the categories and freezes them into a Registry.
func NewRegistry(categories ...Category) (*Registry, error) {
	if len(categories) == 0 {
		return nil, invalidRegistry("no categories")
	}

	r := &Registry{
		order: make([]string, 0, len(categories)),
		cats:  make(map[string]Category, len(categories)),
		units: make(map[string]map[string]int, len(categories)),
	}

	for _, c := range categories {
		if err := validateCategory(c); err != nil {
			return nil, err
		}
		if _, dup := r.cats[c.Name]; dup {
			return nil, invalidRegistry("duplicate category %q", c.Name)
		}

		c = c.clone()
		if c.Phrasing == "" {
			c.Phrasing = PhrasingRatio
		}

		idx := make(map[string]int, len(c.Units))
		for i, u := range c.Units {
			idx[u.Name] = i
		}

		r.order = append(r.order, c.Name)
		r.cats[c.Name] = c
		r.units[c.Name] = idx
	}

	return r, nil
}

func validateCategory(c Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return invalidRegistry("category name is required")
	}
	if len(c.Units) == 0 {
		return invalidRegistry("category %q has no units", c.Name)
	}
	switch c.Phrasing {
	case "", PhrasingRatio, PhrasingRate:
	default:
		return invalidRegistry("category %q: unsupported phrasing %q", c.Name, c.Phrasing)
	}

	seen := make(map[string]bool, len(c.Units))
	affine := c.Units[0].Def.IsAffine()
	for _, u := range c.Units {
		if strings.TrimSpace(u.Name) == "" {
			return invalidRegistry("category %q: unit name is required", c.Name)
		}
		if seen[u.Name] {
			return invalidRegistry("category %q: duplicate unit %q", c.Name, u.Name)
		}
		seen[u.Name] = true

		// Linear and inverse-linear units may share a category; affine units may not mix.
		if u.Def.IsAffine() != affine {
			return invalidRegistry("category %q: unit %q mixes affine and linear definitions", c.Name, u.Name)
		}

		switch u.Def.Kind {
		case UnitLinear, UnitInverseLinear:
			if !isFinite(u.Def.Base) || u.Def.Base < 0 {
				return invalidRegistry("category %q: unit %q has invalid base %v", c.Name, u.Name, u.Def.Base)
			}
		case UnitAffine:
			if !isFinite(u.Def.Scale) || !isFinite(u.Def.Offset) {
				return invalidRegistry("category %q: unit %q has invalid scale/offset", c.Name, u.Name)
			}
		default:
			return invalidRegistry("category %q: unit %q has unsupported kind %q", c.Name, u.Name, u.Def.Kind)
		}
	}
	return nil
}

// ListCategories returns category names in declaration order.
func (r *Registry) ListCategories() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ListUnits returns the unit names of a category in declaration order.
func (r *Registry) ListUnits(category string) ([]string, error) {
	c, ok := r.cats[category]
	if !ok {
		return nil, unknownCategory("registry.listunits", category)
	}
	return c.UnitNames(), nil
}

// Category returns a copy of the named category.
func (r *Registry) Category(name string) (Category, error) {
	c, ok := r.cats[name]
	if !ok {
		return Category{}, unknownCategory("registry.category", name)
	}
	return c.clone(), nil
}

// Definition looks up a single unit definition.
func (r *Registry) Definition(category, unit string) (UnitDefinition, error) {
	c, ok := r.cats[category]
	if !ok {
		return UnitDefinition{}, unknownCategory("registry.definition", category)
	}
	i, ok := r.units[category][unit]
	if !ok {
		return UnitDefinition{}, unknownUnit("registry.definition", category, unit)
	}
	return c.Units[i].Def, nil
}

// Merge returns a new registry with overrides applied: a category with an existing
// name replaces it in place, others are appended. The receiver is left untouched.
func (r *Registry) Merge(overrides ...Category) (*Registry, error) {
	if len(overrides) == 0 {
		return r, nil
	}

	replaced := make(map[string]Category, len(overrides))
	var appended []Category
	for _, c := range overrides {
		if _, ok := r.cats[c.Name]; ok {
			replaced[c.Name] = c
			continue
		}
		appended = append(appended, c)
	}

	all := make([]Category, 0, len(r.order)+len(appended))
	for _, name := range r.order {
		if c, ok := replaced[name]; ok {
			all = append(all, c)
			continue
		}
		all = append(all, r.cats[name])
	}
	all = append(all, appended...)

	return NewRegistry(all...)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
