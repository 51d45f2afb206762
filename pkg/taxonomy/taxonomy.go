// Package taxonomy finds ancestors of classifier labels. It keeps a
// lookup table from ancestor keys to canonical labels. The table is built
// once and is read-only afterwards, so an Index is safe for concurrent
// use.
package taxonomy

import (
	"github.com/gnames/gncamtrap/pkg/label"
)

// Index maps ancestor keys (class;order;family;genus;species with
// unresolved fields left empty) to canonical labels.
type Index struct {
	data map[string]string
}

// Ancestor is a label's ancestor at a particular level.
type Ancestor struct {
	Level Level
	Label string
}

// New creates an Index from taxonomy labels. Blank, Vehicle and Unknown
// sentinels are skipped, as they have no taxonomic ancestry. If several
// labels share the same full class string, the last one wins.
func New(labels []string) (*Index, error) {
	res := Index{data: make(map[string]string, len(labels))}
	for _, v := range labels {
		switch v {
		case label.Blank, label.Vehicle, label.Unknown:
			continue
		}
		key, err := label.FullClass(v)
		if err != nil {
			return nil, err
		}
		res.data[key] = v
	}
	return &res, nil
}

// Len returns the number of keys in the index.
func (idx *Index) Len() int {
	return len(idx.data)
}

// Ancestor returns the canonical label of the lbl's ancestor at the given
// level. The boolean result is false when there is no such ancestor: the
// label is not resolved down to the level, or the ancestor was never seen
// in the taxonomy source.
//
// At kingdom level every label with a class has an ancestor, and so does
// the Animal sentinel, which means "unclassified animal".
func (idx *Index) Ancestor(lbl string, lvl Level) (string, bool, error) {
	l, err := label.Parse(lbl)
	if err != nil {
		return "", false, err
	}
	taxa := l.Taxa()

	var key string
	switch lvl {
	case Species, Genus, Family, Order, Class:
		i := lvl.field()
		if taxa[i] == "" {
			return "", false, nil
		}
		key = ancestorKey(taxa, i+1)
	case Kingdom:
		if l.Class == "" && lbl != label.Animal {
			return "", false, nil
		}
		key = ancestorKey(taxa, 0)
	default:
		return "", false, InvalidTaxonomyLevelError(lvl.String())
	}

	res, ok := idx.data[key]
	return res, ok, nil
}

// Ancestors returns ancestors of a label at all levels where they exist,
// from species to kingdom.
func (idx *Index) Ancestors(lbl string) ([]Ancestor, error) {
	var res []Ancestor
	for _, lvl := range Levels() {
		anc, ok, err := idx.Ancestor(lbl, lvl)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, Ancestor{Level: lvl, Label: anc})
		}
	}
	return res, nil
}
