package taxonomy

import (
	"fmt"
	"strings"
)

// Level is a taxonomic level at which ancestors of a label are looked up.
type Level int

const (
	UnknownLevel Level = iota
	Species
	Genus
	Family
	Order
	Class
	Kingdom
)

var levelNames = map[Level]string{
	Species: "species",
	Genus:   "genus",
	Family:  "family",
	Order:   "order",
	Class:   "class",
	Kingdom: "kingdom",
}

// Levels returns all known levels from the most specific to the most
// general.
func Levels() []Level {
	return []Level{Species, Genus, Family, Order, Class, Kingdom}
}

// LevelNames returns names of all known levels, species first.
func LevelNames() []string {
	lvls := Levels()
	res := make([]string, len(lvls))
	for i, v := range lvls {
		res[i] = v.String()
	}
	return res
}

// NewLevel converts a level name to Level. Names are case-sensitive.
func NewLevel(s string) (Level, error) {
	for k, v := range levelNames {
		if v == s {
			return k, nil
		}
	}
	return UnknownLevel, InvalidTaxonomyLevelError(s)
}

func (l Level) String() string {
	if res, ok := levelNames[l]; ok {
		return res
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// field returns the position of the level's own field among
// class;order;family;genus;species. Kingdom has no field of its own.
func (l Level) field() int {
	switch l {
	case Class:
		return 0
	case Order:
		return 1
	case Family:
		return 2
	case Genus:
		return 3
	case Species:
		return 4
	default:
		return -1
	}
}

// ancestorKey truncates taxa to the first n fields and pads the result
// with empty fields, so it always has 5 fields.
func ancestorKey(taxa []string, n int) string {
	parts := make([]string, len(taxa))
	copy(parts, taxa[:n])
	return strings.Join(parts, ";")
}
