/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/internal/ioinput"
	"github.com/gnames/gncamtrap/internal/iooutput"
	"github.com/gnames/gncamtrap/internal/iostore"
	"github.com/gnames/gncamtrap/pkg/config"
	"github.com/gnames/gncamtrap/pkg/ensemble"
	"github.com/gnames/gncamtrap/pkg/parserpool"
	"github.com/gnames/gncamtrap/pkg/pipeline"
	"github.com/gnames/gncamtrap/pkg/schema"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// ensembleStats summarizes one ensemble run.
type ensembleStats struct {
	runID     string
	imagesNum int
	failedNum int
	duration  time.Duration
}

// getEnsembleCmd returns the ensemble command.
func getEnsembleCmd() *cobra.Command {
	res := &cobra.Command{
		Use:   "ensemble",
		Short: "Combine detector and classifier outputs into predictions",
		Long: `Combine detector and classifier outputs into one prediction
per image.

Detector and classifier outputs are JSON files with a "predictions"
list. Records are joined by file path. An optional instances file
provides country and admin1 region for each image, images without a
country use --country and --admin1-region.

Predictions are written as JSON, CSV or TSV to standard output or to
--predictions-json file, and can be saved to SQLite or PostgreSQL.

Examples:
  gncamtrap ensemble -d detections.json -k classifications.json
  gncamtrap ensemble -i instances.json -d det.json -k cls.json \
    -o predictions.json --store sqlite
  gncamtrap ensemble -d det.json -k cls.json -c USA -r CA -f csv`,
		RunE: runEnsembleCmd,
	}

	res.Flags().StringP("instances-json", "i", "",
		"JSON file with images and their locations")
	res.Flags().StringP("detections-json", "d", "",
		"JSON file with detector output")
	res.Flags().StringP("classifications-json", "k", "",
		"JSON file with classifier output")
	res.Flags().StringP("predictions-json", "o", "",
		"output file (default: standard output)")
	res.Flags().StringP("format", "f", "",
		"output format: pretty, compact, csv, tsv")
	res.Flags().String("store", "",
		"save predictions to: none, sqlite, postgres")
	res.Flags().String("sqlite-path", "",
		"SQLite file for --store sqlite")
	res.Flags().Bool("geofence", true,
		"check predictions against geographic ranges of taxa")
	ensembleDataFlags(res)
	locationFlags(res)

	_ = res.MarkFlagRequired("detections-json")
	_ = res.MarkFlagRequired("classifications-json")
	return res
}

func runEnsembleCmd(cmd *cobra.Command, _ []string) error {
	cfg.Update(flagOptions(cmd))

	instPath, _ := cmd.Flags().GetString("instances-json")
	detPath, _ := cmd.Flags().GetString("detections-json")
	clsPath, _ := cmd.Flags().GetString("classifications-json")
	outPath, _ := cmd.Flags().GetString("predictions-json")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	in := ioinput.Paths{
		InstancesPath:  instPath,
		DetectorPath:   detPath,
		ClassifierPath: clsPath,
	}
	stats, err := runEnsemble(ctx, cfg, in, outPath, isTerminal(os.Stderr))
	if err != nil {
		printError(err)
		return err
	}

	slog.Info("Ensemble finished",
		"run_id", stats.runID,
		"images", stats.imagesNum,
		"failed", stats.failedNum,
		"duration", gnfmt.TimeString(stats.duration.Seconds()),
	)
	if outPath != "" {
		gn.Info(
			"Ensembled <em>%s</em> images (%s with failures) in %s",
			humanize.Comma(int64(stats.imagesNum)),
			humanize.Comma(int64(stats.failedNum)),
			gnfmt.TimeString(stats.duration.Seconds()),
		)
	}
	return nil
}

// runEnsemble reads input files, ensembles predictions, writes them to
// outPath and saves them to the configured store.
func runEnsemble(
	ctx context.Context,
	cfg *config.Config,
	in ioinput.Paths,
	outPath string,
	progress bool,
) (ensembleStats, error) {
	var res ensembleStats
	start := time.Now()

	format, err := gnfmt.NewFormat(cfg.Output.Format)
	if err != nil || format == gnfmt.FormatNone {
		return res, iooutput.OutputFormatError(cfg.Output.Format)
	}

	idx, rules, err := loadData(cfg)
	if err != nil {
		return res, err
	}

	preds, err := ioinput.Read(in)
	if err != nil {
		return res, err
	}

	ens := ensemble.New(idx, rules,
		ensemble.OptGeofence(cfg.Ensemble.GeofenceEnabled))
	pool := parserpool.NewPool(cfg.JobsNumber)
	defer pool.Close()
	p := pipeline.New(cfg, ens, pool)

	var tick func()
	if progress {
		bar := pb.Full.Start(len(preds))
		bar.Set("prefix", "Ensembling: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
		tick = func() { bar.Increment() }
	}

	preds, err = p.Run(ctx, preds, tick)
	if err != nil {
		return res, err
	}

	if err = iooutput.WriteFile(outPath, preds, format); err != nil {
		return res, err
	}

	run := schema.NewRun(p.RunID(), cfg.Ensemble.GeofenceEnabled, start, preds)
	st, err := iostore.New(ctx, cfg, progress)
	if err != nil {
		return res, err
	}
	if st != nil {
		err = st.Save(ctx, run, preds)
		if cerr := st.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return res, err
		}
	}

	res = ensembleStats{
		runID:     run.ID,
		imagesNum: run.ImagesNum,
		failedNum: run.FailuresNum,
		duration:  time.Since(start),
	}
	return res, nil
}
