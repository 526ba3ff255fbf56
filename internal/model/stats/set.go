package stats

import (
	"github.com/tidwall/gjson"

	"exusiai.dev/hystats/internal/pkg/unstable"
)

const propertyStats = "stats"

// Set is the "stats" object of a player, keyed by game name (Bedwars, SkyWars, ...).
type Set struct {
	unstable.Object
}

func NewSet(raw gjson.Result) Set {
	return Set{Object: unstable.New(raw)}
}

// PlayerStats returns the stats set of a player payload. A player who never
// joined a game has no stats object and gets an empty set.
func PlayerStats(player unstable.Object) (Set, error) {
	obj, err := player.ObjectProperty(propertyStats)
	if err != nil {
		return Set{}, err
	}
	return Set{Object: obj}, nil
}

// Names lists the categories in payload order. Members that are not objects
// are skipped.
func (s Set) Names() []string {
	names := []string{}
	s.Raw().ForEach(func(key, value gjson.Result) bool {
		if value.IsObject() {
			names = append(names, key.Str)
		}
		return true
	})
	return names
}

func (s Set) Category(name string) (Category, bool) {
	v := s.Property(name)
	if !v.IsObject() {
		return Category{}, false
	}
	return NewCategory(v), true
}

func (s Set) Categories() map[string]Category {
	categories := make(map[string]Category)
	s.Raw().ForEach(func(key, value gjson.Result) bool {
		if _, ok := categories[key.Str]; !ok && value.IsObject() {
			categories[key.Str] = NewCategory(value)
		}
		return true
	})
	return categories
}
