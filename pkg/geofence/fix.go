package geofence

import (
	"slices"
	"strings"

	"github.com/gnames/gncamtrap/pkg/label"
)

// Fix is a manual correction of geofence rules. Species is a full class
// string of a species-level label.
type Fix struct {
	Species          string
	Rule             string
	CountryCode      string
	Admin1RegionCode string
}

// WithFixes returns a copy of the store patched with fixes. Fixes are
// validated before any change is made; one invalid fix rejects the whole
// batch and the original store stays as it was.
//
// An allow fix only extends labels that already have an allow section.
// A block fix creates the block section if it is missing.
func (s *RuleStore) WithFixes(fixes []Fix) (*RuleStore, error) {
	norm := make([]Fix, len(fixes))
	for i, v := range fixes {
		v.Species = strings.ToLower(v.Species)
		v.Rule = strings.ToLower(v.Rule)
		if len(strings.Split(v.Species, label.Sep)) != label.ClassFieldsNum {
			return nil, GeofenceFixError(i, v, notSpeciesMsg)
		}
		if v.Rule != Allow && v.Rule != Block {
			return nil, GeofenceFixError(i, v, badRuleMsg)
		}
		norm[i] = v
	}

	var res *RuleStore
	if s == nil {
		res = &RuleStore{rules: make(map[string]Rule)}
	} else {
		res = s.clone()
	}

	for _, v := range norm {
		rule, ok := res.rules[v.Species]
		switch v.Rule {
		case Allow:
			if !ok || rule.Allow == nil {
				continue
			}
			rule.Allow.add(v.CountryCode, v.Admin1RegionCode)
		case Block:
			if rule.Block == nil {
				rule.Block = Regions{}
			}
			rule.Block.add(v.CountryCode, v.Admin1RegionCode)
		}
		res.rules[v.Species] = rule
	}
	return res, nil
}

// add merges a country and an optional region into the section. A country
// with an empty list already covers all its regions and is left as is.
func (r Regions) add(country, region string) {
	regions, ok := r[country]
	if region == "" {
		if !ok {
			r[country] = []string{}
		}
		return
	}
	if !ok {
		r[country] = []string{region}
		return
	}
	if len(regions) == 0 || slices.Contains(regions, region) {
		return
	}
	r[country] = append(regions, region)
}
