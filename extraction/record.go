package extraction

import (
	"slices"
	"strings"

	"github.com/hongbinye/AdaKGC/api"
)

// Record is a composite comparison unit: a typed anchor span plus a bag of
// role associations. Spot holds the canonical form of the anchor, either an
// offset field (see OffsetField) or literal text depending on the axis.
type Record struct {
	Type  string
	Spot  string
	Asocs []Asoc
}

// Asoc is one (role type, role value) association of a Record.
type Asoc struct {
	Type  string
	Value string
}

// RecordMetric matches composite records structurally instead of by flat
// tuple equality. Two records match when their types and spots are equal and
// their association bags are pairwise equal; whether bag order matters is
// decided at construction.
//
// The set match mode is rejected: structural equality has no value-based
// set identity.
type RecordMetric struct {
	metric  *Metric
	ordered bool
}

// NewRecordMetric returns a record accumulator that ignores association
// order, as event argument bags require.
func NewRecordMetric(opts Options) (*RecordMetric, error) {
	m, err := NewMetric(opts)
	if err != nil {
		return nil, err
	}
	return &RecordMetric{metric: m}, nil
}

// NewOrderedRecordMetric returns a record accumulator that compares
// associations in their original order, as relation argument positions
// require.
func NewOrderedRecordMetric(opts Options) (*RecordMetric, error) {
	m, err := NewMetric(opts)
	if err != nil {
		return nil, err
	}
	return &RecordMetric{metric: m, ordered: true}, nil
}

// CountInstance consumes one example's gold and predicted records. Every
// prediction scans the gold list in order; a gold record is consumed by its
// first structural match. In normal mode a prediction stops at its first
// match, in multimatch it keeps scanning and may consume several golds.
func (rm *RecordMetric) CountInstance(goldList, predList []Record) error {
	m := rm.metric
	if m.matchMode == api.MatchModeSet {
		return ErrSetMatchUnsupported
	}

	if m.verbose {
		m.logger.Debug().
			Interface("gold", goldList).
			Interface("pred", predList).
			Msg("count record instance")
	}

	m.goldNum += float64(len(goldList))
	m.predNum += float64(len(predList))

	consumed := make([]bool, len(goldList))
	for _, pred := range predList {
		for i := range goldList {
			if consumed[i] || !rm.equal(goldList[i], pred) {
				continue
			}
			m.tp++
			consumed[i] = true
			if m.matchMode == api.MatchModeNormal {
				break
			}
		}
	}
	return nil
}

// CountBatchInstance applies CountInstance to parallel per-example
// collections.
func (rm *RecordMetric) CountBatchInstance(batchGold, batchPred [][]Record) error {
	for i := 0; i < len(batchGold) && i < len(batchPred); i++ {
		if err := rm.CountInstance(batchGold[i], batchPred[i]); err != nil {
			return err
		}
	}
	return nil
}

// TP returns the accumulated true-positive count.
func (rm *RecordMetric) TP() float64 { return rm.metric.TP() }

// ComputeF1 finalizes the accumulator into precision, recall and F1.
func (rm *RecordMetric) ComputeF1() Counts {
	return rm.metric.ComputeF1()
}

func (rm *RecordMetric) equal(gold, pred Record) bool {
	if gold.Type != pred.Type || gold.Spot != pred.Spot {
		return false
	}
	if len(gold.Asocs) != len(pred.Asocs) {
		return false
	}
	goldAsocs, predAsocs := gold.Asocs, pred.Asocs
	if !rm.ordered {
		goldAsocs = sortedAsocs(goldAsocs)
		predAsocs = sortedAsocs(predAsocs)
	}
	for i := range goldAsocs {
		if goldAsocs[i] != predAsocs[i] {
			return false
		}
	}
	return true
}

func sortedAsocs(asocs []Asoc) []Asoc {
	out := slices.Clone(asocs)
	slices.SortFunc(out, func(a, b Asoc) int {
		if c := strings.Compare(a.Type, b.Type); c != 0 {
			return c
		}
		return strings.Compare(a.Value, b.Value)
	})
	return out
}
