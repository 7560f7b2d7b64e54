// Package catalog adapts raw product-attribute data into canonical
// calculator parameters.
//
// Upstream catalog sources attach geometric data as loosely named attribute
// pairs: the same field arrives as "roll_w" or "roll_width" from different
// imports, package coverage may only exist as a raw "package_area" value,
// and some stores label attributes in Persian. All alias handling lives
// here, at the boundary; the calculation core only ever sees the canonical
// model.CalculatorParameters shape.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decorline/quantity-service/internal/domain/model"
)

// fieldAliases maps every accepted attribute spelling to its canonical field.
var fieldAliases = map[string]string{
	"roll_w":           "roll_width",
	"roll_width":       "roll_width",
	"عرض رول":          "roll_width",
	"roll_l":           "roll_length",
	"roll_len":         "roll_length",
	"roll_length":      "roll_length",
	"طول رول":          "roll_length",
	"roll_allowance":   "roll_fixed_allowance",
	"pkg_cov":          "package_coverage",
	"package_coverage": "package_coverage",
	"coverage":         "package_coverage",
	"package_area":     "package_area",
	"مساحت":            "package_area",
	"area":             "package_area",
	"branch_l":         "branch_length",
	"branch_len":       "branch_length",
	"branch_length":    "branch_length",
	"طول شاخه":         "branch_length",
	"tile_area":        "tile_area",
	"tile_w":           "tile_width",
	"tile_width":       "tile_width",
	"tile_l":           "tile_length",
	"tile_len":         "tile_length",
	"tile_length":      "tile_length",
	"price":            "unit_price",
	"unit_price":       "unit_price",
	"قیمت":             "unit_price",
	"waste":            "waste_percentage",
	"waste_pct":        "waste_percentage",
	"waste_percentage": "waste_percentage",
}

// modeAliases maps accepted mode spellings to canonical modes.
var modeAliases = map[string]model.Mode{
	"roll":         model.ModeRoll,
	"rolls":        model.ModeRoll,
	"رول":          model.ModeRoll,
	"package":      model.ModePackage,
	"pkg":          model.ModePackage,
	"بسته":         model.ModePackage,
	"branch":       model.ModeBranch,
	"شاخه":         model.ModeBranch,
	"tile":         model.ModeTile,
	"کاشی":         model.ModeTile,
	"square_meter": model.ModeSquareMeter,
	"sqm":          model.ModeSquareMeter,
	"متر مربع":     model.ModeSquareMeter,
	"length":       model.ModeLength,
	"متر":          model.ModeLength,
}

// NormalizeMode resolves a raw mode label to a canonical mode. The zero Mode
// and false are returned for labels outside the alias table.
func NormalizeMode(raw string) (model.Mode, bool) {
	mode, ok := modeAliases[strings.ToLower(strings.TrimSpace(raw))]
	return mode, ok
}

// Normalize converts a raw attribute map into canonical calculator
// parameters for the given mode. Unknown attributes are ignored;
// unparseable numeric values are reported, since dropping them would turn a
// catalog defect into a silent missing-parameter error later.
func Normalize(rawMode string, attrs map[string]string) (model.CalculatorParameters, error) {
	mode, ok := NormalizeMode(rawMode)
	if !ok {
		// Preserve the raw label so the calculator reports UnsupportedMode.
		mode = model.Mode(strings.TrimSpace(rawMode))
	}
	params := model.CalculatorParameters{Mode: mode}

	var packageArea *float64
	for key, raw := range attrs {
		canonical, ok := fieldAliases[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			continue
		}
		value, err := parseNumber(raw)
		if err != nil {
			return model.CalculatorParameters{}, fmt.Errorf("attribute %q: %w", key, err)
		}

		switch canonical {
		case "roll_width":
			params.RollWidth = &value
		case "roll_length":
			params.RollLength = &value
		case "roll_fixed_allowance":
			params.RollFixedAllowance = &value
		case "package_coverage":
			params.PackageCoverage = &value
		case "package_area":
			packageArea = &value
		case "branch_length":
			params.BranchLength = &value
		case "tile_area":
			params.TileArea = &value
		case "tile_width":
			params.TileWidth = &value
		case "tile_length":
			params.TileLength = &value
		case "unit_price":
			params.UnitPrice = &value
		case "waste_percentage":
			waste := normalizeWaste(value)
			params.WastePercentage = &waste
		}
	}

	// Raw package_area doubles as coverage when no explicit coverage exists.
	if params.PackageCoverage == nil && packageArea != nil {
		params.PackageCoverage = packageArea
	}

	return params, nil
}

// normalizeWaste accepts both fraction (0.1) and percent (10) spellings.
// Catalog imports use either convention interchangeably.
func normalizeWaste(v float64) float64 {
	if v >= 1 {
		return v / 100
	}
	return v
}

// parseNumber parses an attribute value, tolerating surrounding whitespace,
// thousands separators, and the Persian decimal separator.
func parseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "٫", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return v, nil
}
