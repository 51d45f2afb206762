// Package prediction contains data shared by detector, classifier and
// ensemble stages: detections, classifier candidates, ensemble results and
// per-image prediction records.
package prediction

// Detection is an object found by the detector.
type Detection struct {
	// Category is the class of the object.
	Category Category `json:"category"`

	// Label is a human-readable name of the category.
	Label string `json:"label,omitempty"`

	// Confidence is the detector's score in [0, 1).
	Confidence float64 `json:"conf"`

	// BBox is a bounding box as x, y, width, height normalized to the
	// image size.
	BBox [4]float64 `json:"bbox"`
}

// NoDetection substitutes the top detection of images where the detector
// found nothing.
var NoDetection = Detection{Category: AnimalCategory}

// Top returns the first detection, or NoDetection if there are none.
// Detections are expected to be sorted by confidence, highest first.
func Top(dets []Detection) Detection {
	if len(dets) == 0 {
		return NoDetection
	}
	return dets[0]
}

// Candidate is a label with a score from the classifier.
type Candidate struct {
	Label string
	Score float64
}

// Classifications is the classifier output for one image. Classes and
// Scores have the same length and are sorted by score, highest first.
type Classifications struct {
	Classes []string  `json:"classes"`
	Scores  []float64 `json:"scores"`
}

// Candidates converts classifications to a ranked list of candidates.
func (c Classifications) Candidates() []Candidate {
	n := min(len(c.Classes), len(c.Scores))
	res := make([]Candidate, n)
	for i := range n {
		res[i] = Candidate{Label: c.Classes[i], Score: c.Scores[i]}
	}
	return res
}

// Result is the final prediction for an image.
type Result struct {
	Label  string
	Score  float64
	Source Source
}

// Prediction is a record of everything known about one image.
type Prediction struct {
	// ID is a UUID v5 generated from Filepath.
	ID string `json:"id,omitempty"`

	Filepath     string `json:"filepath"`
	Country      string `json:"country,omitempty"`
	Admin1Region string `json:"admin1_region,omitempty"`

	Detections      []Detection      `json:"detections,omitempty"`
	Classifications *Classifications `json:"classifications,omitempty"`

	Prediction string `json:"prediction,omitempty"`

	// PredictionScore is nil when there is no prediction. A prediction
	// can have a zero score.
	PredictionScore  *float64 `json:"prediction_score,omitempty"`
	PredictionSource string   `json:"prediction_source,omitempty"`

	// ScientificName is a canonical form of the predicted taxon.
	ScientificName string `json:"scientific_name,omitempty"`

	// Failures lists stages that failed for the image.
	Failures []string `json:"failures,omitempty"`
}

// Output is a JSON document with prediction records.
type Output struct {
	Predictions []Prediction `json:"predictions"`
}
