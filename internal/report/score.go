package report

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNoMetrics is returned when the aggregate score is requested over an
// index with no metrics: the mean is undefined, and an empty metric list
// is a configuration error.
var ErrNoMetrics = errors.New("no metrics configured")

// AggregationError signals an inconsistency between what Report wrote and
// what Index read back: a missing or malformed score node. It indicates
// an internal bug, not a user error.
type AggregationError struct {
	Metric string
	Reason string
}

// Error implements the error interface.
func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregating metric %s: %s", e.Metric, e.Reason)
}

// AggregateScore computes the project score: the unweighted arithmetic
// mean of every metric's score in the index.
func AggregateScore(doc *IndexDocument) (float64, error) {
	if len(doc.Metrics) == 0 {
		return 0, ErrNoMetrics
	}

	var sum float64
	for _, md := range doc.Metrics {
		value, err := strconv.ParseFloat(md.Score, 64)
		if err != nil {
			return 0, &AggregationError{Metric: md.Name, Reason: fmt.Sprintf("unparseable score %q", md.Score)}
		}
		sum += value
	}
	return sum / float64(len(doc.Metrics)), nil
}

// StampScore records the aggregate on the index document. The index is
// immutable afterwards.
func StampScore(doc *IndexDocument, score float64) {
	doc.Score = FormatScore(score)
}
