package geofence

import (
	"slices"

	"github.com/gnames/gncamtrap/pkg/label"
)

// ShouldGeofence tells if a label must be excluded at the given location.
// It is always false when geofencing is disabled, when the country is
// unknown, or when the label has no rules.
//
// The allow section is checked first. If it is not empty, the country
// must be listed, and if the country has a list of regions and an admin1
// region is given, the region must be listed too. Then the block section
// is checked: a listed country with an empty list of regions is blocked
// entirely, otherwise only the listed regions are blocked.
func (s *RuleStore) ShouldGeofence(
	lbl string,
	loc Location,
	enabled bool,
) (bool, error) {
	if !enabled || loc.Country == "" {
		return false, nil
	}

	fullClass, err := label.FullClass(lbl)
	if err != nil {
		return false, err
	}

	rule, ok := s.lookup(fullClass)
	if !ok {
		return false, nil
	}

	if len(rule.Allow) > 0 {
		regions, ok := rule.Allow[loc.Country]
		if !ok {
			return true, nil
		}
		if loc.Admin1 != "" && len(regions) > 0 &&
			!slices.Contains(regions, loc.Admin1) {
			return true, nil
		}
	}

	if len(rule.Block) > 0 {
		regions, ok := rule.Block[loc.Country]
		if ok {
			if len(regions) == 0 {
				return true, nil
			}
			if loc.Admin1 != "" && slices.Contains(regions, loc.Admin1) {
				return true, nil
			}
		}
	}

	return false, nil
}

func (s *RuleStore) lookup(fullClass string) (Rule, bool) {
	if s == nil {
		return Rule{}, false
	}
	rule, ok := s.rules[fullClass]
	return rule, ok
}
