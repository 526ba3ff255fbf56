// Package stats models the per-game statistics groups found in Hypixel player payloads.
//
// Packages act as flags marking that something has been unlocked. For
// mini-games they record which cosmetics the player bought in the game's shop.
// Some obscure packages (such as achievement_flag_n) are only used internally
// by certain games and can be ignored.
package stats

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"exusiai.dev/hystats/internal/pkg/unstable"
)

const propertyPackages = "packages"

// Category is a grouping of stats belonging to one mini-game or other area of
// the server. It is read-only and safe for concurrent use.
type Category struct {
	unstable.Object
}

func NewCategory(raw gjson.Result) Category {
	return Category{Object: unstable.New(raw)}
}

// Packages returns every unlocked package in the category, in payload order
// and with duplicates kept. The result is empty, never nil, when nothing is
// unlocked. Errors from reading the packages array are returned unchanged.
func (c Category) Packages() ([]string, error) {
	elements, err := c.ArrayProperty(propertyPackages)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return []string{}, nil
	}

	return lo.Map(elements, func(pkg gjson.Result, _ int) string {
		return stringifyPackage(pkg)
	}), nil
}

// HasPackage reports whether the package named name is unlocked. The
// comparison is exact and case-sensitive.
func (c Category) HasPackage(name string) (bool, error) {
	elements, err := c.ArrayProperty(propertyPackages)
	if err != nil {
		return false, err
	}

	return lo.ContainsBy(elements, func(pkg gjson.Result) bool {
		return stringifyPackage(pkg) == name
	}), nil
}

// stringifyPackage converts an element of the packages array into its name.
// Primitives yield their plain text (strings unquoted). Anything else, null
// included, yields its compact JSON text; upstream data has never been seen
// to contain such elements.
func stringifyPackage(pkg gjson.Result) string {
	switch pkg.Type {
	case gjson.String:
		return pkg.Str
	case gjson.Number:
		return pkg.Raw
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(pkg.Raw)); err != nil {
		return pkg.Raw
	}
	return buf.String()
}
