// Package rollup aggregates classifier scores up the taxonomic tree. When
// no single label is confident enough, the scores of labels that share an
// ancestor are summed, and the ancestor is predicted instead.
package rollup

import (
	"github.com/gnames/gncamtrap/pkg/geofence"
	"github.com/gnames/gncamtrap/pkg/prediction"
	"github.com/gnames/gncamtrap/pkg/taxonomy"
)

// Engine rolls up classifier candidates using a taxonomy index and
// geofence rules. It holds no mutable state.
type Engine struct {
	idx   *taxonomy.Index
	rules *geofence.RuleStore
}

// New creates an Engine. The rules can be nil, then nothing is geofenced.
func New(idx *taxonomy.Index, rules *geofence.RuleStore) *Engine {
	return &Engine{idx: idx, rules: rules}
}

// RollUp tries levels in the given order. At each level scores of
// candidates are summed per ancestor, and the ancestor with the highest
// sum that is not geofenced at the location is picked. The first level
// where this sum exceeds the threshold wins. The boolean result is false
// if no level succeeded.
//
// Levels must be names of taxonomic levels, otherwise
// InvalidConfigurationError is returned before any work is done.
func (e *Engine) RollUp(
	cands []prediction.Candidate,
	loc geofence.Location,
	levels []string,
	threshold float64,
	geofenceEnabled bool,
) (prediction.Result, bool, error) {
	var res prediction.Result
	lvls, err := parseLevels(levels)
	if err != nil {
		return res, false, err
	}

	for _, lvl := range lvls {
		lbl, score, err := e.bestAncestor(cands, loc, lvl, geofenceEnabled)
		if err != nil {
			return res, false, err
		}
		if score > threshold && lbl != "" {
			res = prediction.Result{
				Label: lbl,
				Score: score,
				Source: prediction.Source{
					Stage:       prediction.Classifier,
					RollupLevel: lvl,
				},
			}
			return res, true, nil
		}
	}
	return res, false, nil
}

// bestAncestor sums scores per ancestor at a level. Ancestors are visited
// in the order of their first appearance among candidates; on equal sums
// the earlier one stays.
func (e *Engine) bestAncestor(
	cands []prediction.Candidate,
	loc geofence.Location,
	lvl taxonomy.Level,
	geofenceEnabled bool,
) (string, float64, error) {
	scores := make(map[string]float64)
	var order []string
	for _, v := range cands {
		anc, ok, err := e.idx.Ancestor(v.Label, lvl)
		if err != nil {
			return "", 0, err
		}
		if !ok {
			continue
		}
		if _, seen := scores[anc]; !seen {
			order = append(order, anc)
		}
		scores[anc] += v.Score
	}

	var res string
	var maxScore float64
	for _, anc := range order {
		score := scores[anc]
		if score <= maxScore {
			continue
		}
		fenced, err := e.rules.ShouldGeofence(anc, loc, geofenceEnabled)
		if err != nil {
			return "", 0, err
		}
		if !fenced {
			res, maxScore = anc, score
		}
	}
	return res, maxScore, nil
}

func parseLevels(levels []string) ([]taxonomy.Level, error) {
	res := make([]taxonomy.Level, 0, len(levels))
	var bad []string
	for _, v := range levels {
		lvl, err := taxonomy.NewLevel(v)
		if err != nil {
			bad = append(bad, v)
			continue
		}
		res = append(res, lvl)
	}
	if len(bad) > 0 {
		return nil, InvalidRollupLevelsError(bad)
	}
	return res, nil
}
