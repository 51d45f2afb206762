// Package pipeline runs the ensemble over many images concurrently.
// Every image is processed independently. Errors of one image are recorded
// in its prediction record and never stop the batch.
package pipeline

import (
	"context"
	"log/slog"
	"slices"

	"github.com/gnames/gncamtrap/pkg/config"
	"github.com/gnames/gncamtrap/pkg/ensemble"
	"github.com/gnames/gncamtrap/pkg/geofence"
	"github.com/gnames/gncamtrap/pkg/label"
	"github.com/gnames/gncamtrap/pkg/parserpool"
	"github.com/gnames/gncamtrap/pkg/prediction"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Failure markers saved in prediction records.
const (
	ClassifierFailure = "CLASSIFIER"
	EnsembleFailure   = "ENSEMBLE"
)

// Pipeline ensembles prediction records.
type Pipeline struct {
	cfg   *config.Config
	ens   *ensemble.Ensembler
	pool  parserpool.Pool
	runID string
}

// New creates a Pipeline. The parser pool is optional, without it
// scientific names are not generated.
func New(
	cfg *config.Config,
	ens *ensemble.Ensembler,
	pool parserpool.Pool,
) *Pipeline {
	return &Pipeline{
		cfg:   cfg,
		ens:   ens,
		pool:  pool,
		runID: uuid.NewString(),
	}
}

// RunID is a random UUID that identifies results of one pipeline.
func (p *Pipeline) RunID() string {
	return p.runID
}

// Run ensembles records using Config.JobsNumber workers. The output has
// the same order as the input. The progress function, if given, is
// called concurrently after each record is done.
//
// Run returns an error only if the context is canceled.
func (p *Pipeline) Run(
	ctx context.Context,
	preds []prediction.Prediction,
	progress func(),
) ([]prediction.Prediction, error) {
	res := make([]prediction.Prediction, len(preds))
	chIn := make(chan int)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		for i := range preds {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			case chIn <- i:
			}
		}
		return nil
	})

	workerCount := p.cfg.JobsNumber
	if workerCount <= 0 {
		workerCount = 1
	}
	for range workerCount {
		g.Go(func() error {
			for i := range chIn {
				res[i] = p.Process(preds[i])
				if progress != nil {
					progress()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// Process ensembles one record. It adds an ID generated from the file
// path, fills in the default location from the config if the record has
// no country, and sets the prediction fields.
func (p *Pipeline) Process(pred prediction.Prediction) prediction.Prediction {
	pred.ID = gnuuid.New(pred.Filepath).String()
	if pred.Country == "" && p.cfg.Ensemble.Country != "" {
		pred.Country = p.cfg.Ensemble.Country
		pred.Admin1Region = p.cfg.Ensemble.Admin1Region
	}

	var cands []prediction.Candidate
	if pred.Classifications == nil {
		pred.Failures = appendFailure(pred.Failures, ClassifierFailure)
	} else {
		cands = pred.Classifications.Candidates()
	}

	loc := geofence.Location{
		Country: pred.Country,
		Admin1:  pred.Admin1Region,
	}
	res, err := p.ens.Ensemble(pred.Detections, cands, loc)
	if err != nil {
		slog.Warn("Cannot ensemble predictions",
			"filepath", pred.Filepath,
			"error", err,
		)
		pred.Failures = appendFailure(pred.Failures, EnsembleFailure)
		return pred
	}

	pred.Prediction = res.Label
	pred.PredictionScore = &res.Score
	pred.PredictionSource = res.Source.String()
	pred.ScientificName = p.scientificName(res.Label)
	return pred
}

func (p *Pipeline) scientificName(lbl string) string {
	if p.pool == nil {
		return ""
	}
	switch lbl {
	case label.Blank, label.Vehicle, label.Animal, label.Unknown:
		return ""
	}
	l, err := label.Parse(lbl)
	if err != nil {
		return ""
	}
	res, _ := p.pool.Canonical(l.ScientificName())
	return res
}

func appendFailure(failures []string, f string) []string {
	if slices.Contains(failures, f) {
		return failures
	}
	return append(failures, f)
}
