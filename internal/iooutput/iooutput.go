// Package iooutput writes prediction records as JSON, CSV or TSV.
package iooutput

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gnames/gncamtrap/pkg/prediction"
	"github.com/gnames/gnfmt"
)

// Header lists CSV/TSV columns.
var Header = []string{
	"id", "filepath", "country", "admin1_region", "prediction",
	"scientific_name", "prediction_score", "prediction_source",
	"failures",
}

// Write outputs prediction records to w in the given format.
func Write(
	w io.Writer,
	preds []prediction.Prediction,
	f gnfmt.Format,
) error {
	switch f {
	case gnfmt.CompactJSON, gnfmt.PrettyJSON:
		enc := gnfmt.GNjson{Pretty: f == gnfmt.PrettyJSON}
		out := prediction.Output{Predictions: preds}
		if out.Predictions == nil {
			out.Predictions = []prediction.Prediction{}
		}
		bs, err := enc.Encode(out)
		if err != nil {
			return OutputWriteError(err)
		}
		bs = append(bs, '\n')
		if _, err = w.Write(bs); err != nil {
			return OutputWriteError(err)
		}
		return nil
	case gnfmt.CSV, gnfmt.TSV:
		return writeRows(w, preds, f)
	default:
		return OutputFormatError(fmt.Sprintf("%v", f))
	}
}

// WriteFile outputs prediction records to a file. Empty path means
// standard output.
func WriteFile(
	path string,
	preds []prediction.Prediction,
	f gnfmt.Format,
) error {
	if path == "" {
		return Write(os.Stdout, preds, f)
	}

	file, err := os.Create(path)
	if err != nil {
		return OutputWriteError(err)
	}
	err = Write(file, preds, f)
	if cerr := file.Close(); err == nil && cerr != nil {
		err = OutputWriteError(cerr)
	}
	return err
}

func writeRows(
	w io.Writer,
	preds []prediction.Prediction,
	f gnfmt.Format,
) error {
	sep := ','
	if f == gnfmt.TSV {
		sep = '\t'
	}

	bw := bufio.NewWriter(w)
	rows := make([]string, 0, len(preds)+1)
	rows = append(rows, gnfmt.ToCSV(Header, sep))
	for _, v := range preds {
		rows = append(rows, gnfmt.ToCSV(Row(v), sep))
	}
	for _, v := range rows {
		v = strings.TrimRight(v, "\r\n")
		if _, err := bw.WriteString(v + "\n"); err != nil {
			return OutputWriteError(err)
		}
	}
	if err := bw.Flush(); err != nil {
		return OutputWriteError(err)
	}
	return nil
}

// Row converts a prediction record to CSV fields in Header order.
func Row(p prediction.Prediction) []string {
	var score string
	if p.PredictionScore != nil {
		score = strconv.FormatFloat(*p.PredictionScore, 'f', -1, 64)
	}
	return []string{
		p.ID,
		p.Filepath,
		p.Country,
		p.Admin1Region,
		p.Prediction,
		p.ScientificName,
		score,
		p.PredictionSource,
		strings.Join(p.Failures, ","),
	}
}
