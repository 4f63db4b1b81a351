// Package adakgc scores structured information-extraction output (entities,
// relations, events) against gold annotations, aggregating precision, recall
// and F1 across a corpus on parallel offset and string comparison axes.
//
// The matching engine lives in the extraction subpackage and the payload
// types in the api subpackage; this package re-exports both surfaces so most
// callers only import the module root.
package adakgc

import (
	"github.com/hongbinye/AdaKGC/api"
	"github.com/hongbinye/AdaKGC/extraction"
)

type Offset = api.Offset
type EntitySpan = api.EntitySpan
type Argument = api.Argument
type RelationRecord = api.RelationRecord
type EventRecord = api.EventRecord
type LabeledOffset = api.LabeledOffset
type LabeledText = api.LabeledText
type EntityPrediction = api.EntityPrediction
type RelationOffsetPrediction = api.RelationOffsetPrediction
type RelationStringPrediction = api.RelationStringPrediction
type RelationPrediction = api.RelationPrediction
type RoleOffset = api.RoleOffset
type RoleText = api.RoleText
type EventOffsetPrediction = api.EventOffsetPrediction
type EventStringPrediction = api.EventStringPrediction
type EventPrediction = api.EventPrediction
type MatchMode = api.MatchMode
type Result = api.Result

const (
	MatchModeSet        = api.MatchModeSet
	MatchModeNormal     = api.MatchModeNormal
	MatchModeMultiMatch = api.MatchModeMultiMatch
)

type Options = extraction.Options
type Tuple = extraction.Tuple
type Instance = extraction.Instance
type Metric = extraction.Metric
type Counts = extraction.Counts
type Record = extraction.Record
type Asoc = extraction.Asoc
type RecordMetric = extraction.RecordMetric
type EntityScorer = extraction.EntityScorer
type RelationScorer = extraction.RelationScorer
type EventScorer = extraction.EventScorer

// NewMetric returns a fresh tuple accumulator.
func NewMetric(opts Options) (*Metric, error) {
	return extraction.NewMetric(opts)
}

// NewRecordMetric returns a record accumulator ignoring association order.
func NewRecordMetric(opts Options) (*RecordMetric, error) {
	return extraction.NewRecordMetric(opts)
}

// NewOrderedRecordMetric returns a record accumulator that compares
// associations in their original order.
func NewOrderedRecordMetric(opts Options) (*RecordMetric, error) {
	return extraction.NewOrderedRecordMetric(opts)
}

// NewEntityScorer returns a scorer for flat mention annotations.
func NewEntityScorer(opts Options) *EntityScorer {
	return extraction.NewEntityScorer(opts)
}

// NewRelationScorer returns a scorer for binary relations.
func NewRelationScorer(opts Options) *RelationScorer {
	return extraction.NewRelationScorer(opts)
}

// NewEventScorer returns a scorer for event structures with role arguments.
func NewEventScorer(opts Options) *EventScorer {
	return extraction.NewEventScorer(opts)
}
