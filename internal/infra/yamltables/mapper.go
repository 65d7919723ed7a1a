package yamltables

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/unitix/internal/domain"
)

// MapTables converts a parsed tables file into domain categories.
// Structural checks that span categories are left to domain.NewRegistry.
func MapTables(path string, yt YAMLTables) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(yt.Categories))

	for i, yc := range yt.Categories {
		prefix := fmt.Sprintf("categories[%d]", i)
		if strings.TrimSpace(yc.Name) == "" {
			return nil, invalidField(path, prefix+".name", "category name is required")
		}
		if len(yc.Units) == 0 {
			return nil, invalidField(path, prefix+".units", "at least one unit is required")
		}

		phrasing, err := parsePhrasing(yc.Phrasing)
		if err != nil {
			return nil, invalidField(path, prefix+".phrasing", err.Error())
		}

		cat := domain.Category{
			Name:     strings.TrimSpace(yc.Name),
			Phrasing: phrasing,
			Units:    make([]domain.Unit, 0, len(yc.Units)),
		}

		for j, yu := range yc.Units {
			unitPrefix := fmt.Sprintf("%s.units[%d]", prefix, j)
			u, err := mapUnit(path, unitPrefix, yu)
			if err != nil {
				return nil, err
			}
			cat.Units = append(cat.Units, u)
		}

		out = append(out, cat)
	}

	return out, nil
}

func mapUnit(path, prefix string, yu YAMLUnit) (domain.Unit, error) {
	if strings.TrimSpace(yu.Name) == "" {
		return domain.Unit{}, invalidField(path, prefix+".name", "unit name is required")
	}

	kind, err := parseKind(yu.Kind)
	if err != nil {
		return domain.Unit{}, invalidField(path, prefix+".kind", err.Error())
	}

	u := domain.Unit{Name: strings.TrimSpace(yu.Name)}
	switch kind {
	case domain.UnitLinear, domain.UnitInverseLinear:
		if yu.Base == nil {
			return domain.Unit{}, invalidField(path, prefix+".base", "base is required")
		}
		if *yu.Base <= 0 {
			return domain.Unit{}, invalidField(path, prefix+".base", "base must be positive")
		}
		u.Def = domain.UnitDefinition{Kind: kind, Base: *yu.Base}

	case domain.UnitAffine:
		if yu.Scale == nil {
			return domain.Unit{}, invalidField(path, prefix+".scale", "scale is required")
		}
		if *yu.Scale == 0 {
			return domain.Unit{}, invalidField(path, prefix+".scale", "scale must not be zero")
		}
		offset := 0.0
		if yu.Offset != nil {
			offset = *yu.Offset
		}
		u.Def = domain.Affine(*yu.Scale, offset)
	}

	return u, nil
}

func parseKind(k string) (domain.UnitKind, error) {
	switch strings.ToLower(strings.TrimSpace(k)) {
	case "", string(domain.UnitLinear):
		return domain.UnitLinear, nil
	case string(domain.UnitInverseLinear), "inverse":
		return domain.UnitInverseLinear, nil
	case string(domain.UnitAffine):
		return domain.UnitAffine, nil
	default:
		return "", fmt.Errorf("unsupported kind %q", k)
	}
}

func parsePhrasing(p string) (domain.Phrasing, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "", string(domain.PhrasingRatio):
		return domain.PhrasingRatio, nil
	case string(domain.PhrasingRate):
		return domain.PhrasingRate, nil
	default:
		return "", fmt.Errorf("unsupported phrasing %q", p)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamltables.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
