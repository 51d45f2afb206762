// Package geofence keeps geographic constraints on where a taxon may be
// predicted. Rules are keyed by the full class string of a label and
// consist of optional allow and block sections. Each section maps an
// ISO-3166-1 alpha-3 country code to a list of first-level administrative
// regions; an empty list covers the whole country.
//
// A RuleStore is never modified after creation. Fixes produce a patched
// copy, so the same store can be shared by concurrent evaluations.
package geofence

import (
	"maps"
	"slices"
)

// Rule types.
const (
	Allow = "allow"
	Block = "block"
)

// Regions maps a country code to a list of admin1 region codes.
type Regions map[string][]string

// RawRules is the shape of the geofence JSON document:
// full class string -> rule type -> country -> admin1 regions.
type RawRules map[string]map[string]map[string][]string

// Rule is a set of constraints for one full class string. A nil section
// is absent, an empty non-nil section is present but has no countries.
type Rule struct {
	Allow Regions
	Block Regions
}

// Location is where an image was taken. Empty Country means the location
// is unknown. Admin1 is optional.
type Location struct {
	Country string
	Admin1  string
}

// RuleStore is an immutable table of geofence rules.
type RuleStore struct {
	rules map[string]Rule
}

// NewRuleStore creates a RuleStore from raw rules. The raw data is copied.
// Rule types other than allow and block are ignored.
func NewRuleStore(raw RawRules) *RuleStore {
	res := RuleStore{rules: make(map[string]Rule, len(raw))}
	for k, v := range raw {
		var rule Rule
		if allow, ok := v[Allow]; ok {
			rule.Allow = Regions(allow).clone()
		}
		if block, ok := v[Block]; ok {
			rule.Block = Regions(block).clone()
		}
		res.rules[k] = rule
	}
	return &res
}

// Len returns the number of full class strings with rules.
func (s *RuleStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Rule returns a copy of the rule for a full class string.
func (s *RuleStore) Rule(fullClass string) (Rule, bool) {
	if s == nil {
		return Rule{}, false
	}
	rule, ok := s.rules[fullClass]
	if !ok {
		return Rule{}, false
	}
	return rule.clone(), true
}

// Raw converts the store back to the shape of the geofence JSON document.
func (s *RuleStore) Raw() RawRules {
	res := make(RawRules, s.Len())
	if s == nil {
		return res
	}
	for k, v := range s.rules {
		sections := make(map[string]map[string][]string, 2)
		if v.Allow != nil {
			sections[Allow] = v.Allow.clone()
		}
		if v.Block != nil {
			sections[Block] = v.Block.clone()
		}
		res[k] = sections
	}
	return res
}

func (s *RuleStore) clone() *RuleStore {
	res := RuleStore{rules: make(map[string]Rule, len(s.rules))}
	for k, v := range s.rules {
		res.rules[k] = v.clone()
	}
	return &res
}

func (r Rule) clone() Rule {
	return Rule{Allow: r.Allow.clone(), Block: r.Block.clone()}
}

func (r Regions) clone() Regions {
	if r == nil {
		return nil
	}
	res := make(Regions, len(r))
	for k, v := range r {
		if v == nil {
			v = []string{}
		}
		res[k] = slices.Clone(v)
	}
	return res
}

// Countries returns sorted country codes of the section.
func (r Regions) Countries() []string {
	return slices.Sorted(maps.Keys(r))
}
