package ioinput

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
	"github.com/gnames/gnlib"
)

// InputReadError is returned when an input file cannot be read or
// decoded.
func InputReadError(path string, err error) error {
	msg := "Cannot read input file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.InputReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read input %s: %w", path, err),
	}
}

// EmptyDetectorError is returned when the detector output has no
// records.
type EmptyDetectorError struct {
	error
	gnlib.MessageBase
}

// NewEmptyDetectorError creates an error for empty detector output.
func NewEmptyDetectorError() error {
	msgBase := gnlib.NewMessage(
		`<title>Empty Detector Output</title>
<warning>The detector output file has no predictions.</warning>

<em>How to fix:</em>
  Run the detector on the same images as the classifier
  and use its output with <em>--detections-json</em>
`,
		nil,
	)

	return EmptyDetectorError{
		error:       fmt.Errorf("detector output cannot be empty"),
		MessageBase: msgBase,
	}
}

// EmptyClassifierError is returned when the classifier output has no
// records.
type EmptyClassifierError struct {
	error
	gnlib.MessageBase
}

// NewEmptyClassifierError creates an error for empty classifier output.
func NewEmptyClassifierError() error {
	msgBase := gnlib.NewMessage(
		`<title>Empty Classifier Output</title>
<warning>The classifier output file has no predictions.</warning>

<em>How to fix:</em>
  Run the classifier on the same images as the detector
  and use its output with <em>--classifications-json</em>
`,
		nil,
	)

	return EmptyClassifierError{
		error:       fmt.Errorf("classifier output cannot be empty"),
		MessageBase: msgBase,
	}
}

// MismatchError is returned when the detector and classifier outputs
// have different numbers of records.
type MismatchError struct {
	error
	gnlib.MessageBase
}

// NewMismatchError creates an error for outputs of different sizes.
func NewMismatchError(detNum, clsNum int) error {
	msgBase := gnlib.NewMessage(
		`<title>Detector and Classifier Outputs Differ</title>
<warning>Detector has %d predictions, classifier has %d.</warning>

<em>How to fix:</em>
  Both outputs must come from the same set of images
`,
		[]any{detNum, clsNum},
	)

	return MismatchError{
		error: fmt.Errorf(
			"detections and classifications sizes are not equal: %d vs %d",
			detNum, clsNum,
		),
		MessageBase: msgBase,
	}
}

// ScoresLengthError is returned when a classifier record has different
// numbers of classes and scores.
type ScoresLengthError struct {
	error
	gnlib.MessageBase
}

// NewScoresLengthError creates an error for a malformed classifier
// record.
func NewScoresLengthError(path string, classesNum, scoresNum int) error {
	msgBase := gnlib.NewMessage(
		`<title>Malformed Classifier Output</title>
<warning>Record <em>%s</em> has %d classes and %d scores.</warning>
`,
		[]any{path, classesNum, scoresNum},
	)

	return ScoresLengthError{
		error: fmt.Errorf(
			"classes and scores of %s differ in length: %d vs %d",
			path, classesNum, scoresNum,
		),
		MessageBase: msgBase,
	}
}
