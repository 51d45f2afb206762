// Package schema provides database models for stored ensemble runs.
// The same models serve PostgreSQL (via GORM AutoMigrate) and the local
// SQLite store (via DDL generated from struct tags).
package schema

import (
	"encoding/json"
	"strings"
	"time"

	app "github.com/gnames/gncamtrap/pkg"
	"github.com/gnames/gncamtrap/pkg/prediction"
)

// DDLGenerator defines how Go models generate SQLite DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Run is metadata of one ensemble invocation.
type Run struct {
	// ID is a random UUID of the run.
	ID string `db:"id" ddl:"TEXT PRIMARY KEY" gorm:"type:uuid;primaryKey"`

	// Version of gncamtrap that produced the run.
	Version string `db:"version" ddl:"TEXT" gorm:"type:varchar(50)"`

	// ImagesNum is the number of processed images.
	ImagesNum int `db:"images_num" ddl:"INTEGER" gorm:"not null;default:0"`

	// FailuresNum is the number of images with at least one failure.
	FailuresNum int `db:"failures_num" ddl:"INTEGER" gorm:"not null;default:0"`

	GeofenceEnabled bool `db:"geofence_enabled" ddl:"BOOLEAN" gorm:"not null"`

	// CreatedAt is the time the run started.
	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP" gorm:"type:timestamp without time zone"`
}

// NewRun creates metadata of a run from its prediction records.
func NewRun(
	id string,
	geofenceEnabled bool,
	createdAt time.Time,
	preds []prediction.Prediction,
) Run {
	res := Run{
		ID:              id,
		Version:         app.Version,
		ImagesNum:       len(preds),
		GeofenceEnabled: geofenceEnabled,
		CreatedAt:       createdAt.UTC(),
	}
	for i := range preds {
		if len(preds[i].Failures) > 0 {
			res.FailuresNum++
		}
	}
	return res
}

// Prediction is a stored prediction record of one image.
type Prediction struct {
	// ID is a UUID v5 of the image file path.
	ID string `db:"id" ddl:"TEXT NOT NULL" gorm:"type:uuid;primaryKey;autoIncrement:false"`

	// RunID links the record to its Run.
	RunID string `db:"run_id" ddl:"TEXT NOT NULL" gorm:"type:uuid;primaryKey;autoIncrement:false;index"`

	Filepath         string   `db:"filepath" ddl:"TEXT NOT NULL" gorm:"type:text;not null"`
	Country          string   `db:"country" ddl:"TEXT" gorm:"type:varchar(3)"`
	Admin1Region     string   `db:"admin1_region" ddl:"TEXT" gorm:"type:varchar(10)"`
	Prediction       string   `db:"prediction" ddl:"TEXT" gorm:"type:text;index"`
	ScientificName   string   `db:"scientific_name" ddl:"TEXT" gorm:"type:varchar(255);index"`
	PredictionScore  *float64 `db:"prediction_score" ddl:"REAL" gorm:"type:double precision"`
	PredictionSource string   `db:"prediction_source" ddl:"TEXT" gorm:"type:varchar(100)"`

	// Failures is a comma-separated list of failed stages.
	Failures string `db:"failures" ddl:"TEXT" gorm:"type:varchar(100)"`

	// Detections is the JSON array of detector output.
	Detections string `db:"detections" ddl:"TEXT" gorm:"type:text"`

	// Classifications is the JSON object of classifier output.
	Classifications string `db:"classifications" ddl:"TEXT" gorm:"type:text"`
}

// NewPrediction converts a prediction record of a run into a database
// row.
func NewPrediction(
	runID string,
	p prediction.Prediction,
) (Prediction, error) {
	res := Prediction{
		ID:               p.ID,
		RunID:            runID,
		Filepath:         p.Filepath,
		Country:          p.Country,
		Admin1Region:     p.Admin1Region,
		Prediction:       p.Prediction,
		ScientificName:   p.ScientificName,
		PredictionScore:  p.PredictionScore,
		PredictionSource: p.PredictionSource,
		Failures:         strings.Join(p.Failures, ","),
	}

	if len(p.Detections) > 0 {
		bs, err := json.Marshal(p.Detections)
		if err != nil {
			return res, err
		}
		res.Detections = string(bs)
	}

	if p.Classifications != nil {
		bs, err := json.Marshal(p.Classifications)
		if err != nil {
			return res, err
		}
		res.Classifications = string(bs)
	}
	return res, nil
}
