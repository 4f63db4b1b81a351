package extraction

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/hongbinye/AdaKGC/api"
)

var defaultLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Options configures the accumulators and the scorers built on top of them.
type Options struct {
	// MatchMode selects set, normal or multimatch semantics.
	// Empty means normal.
	MatchMode api.MatchMode
	// Verbose enables per-example debug dumps and the offset/string
	// consistency warnings.
	Verbose bool
	// Logger receives verbose output. Defaults to a stderr logger.
	Logger *zerolog.Logger
}

func (o Options) matchMode() api.MatchMode {
	if o.MatchMode == "" {
		return api.MatchModeNormal
	}
	return o.MatchMode
}

func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return defaultLogger
}

// Metric accumulates true-positive, gold and prediction counts across a
// corpus and finalizes them into precision, recall and F1.
//
// A Metric is good for exactly one evaluation pass: create it, feed every
// example through CountInstance, call ComputeF1 once, then discard it.
type Metric struct {
	tp      float64
	goldNum float64
	predNum float64

	verbose   bool
	matchMode api.MatchMode
	logger    zerolog.Logger
}

// NewMetric returns a fresh accumulator. The match mode is validated here
// and fixed for the accumulator's lifetime.
func NewMetric(opts Options) (*Metric, error) {
	mode := opts.matchMode()
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatchMode, mode)
	}
	return &Metric{
		verbose:   opts.Verbose,
		matchMode: mode,
		logger:    opts.logger(),
	}, nil
}

// TP returns the accumulated true-positive count.
func (m *Metric) TP() float64 { return m.tp }

// GoldNum returns the accumulated gold count.
func (m *Metric) GoldNum() float64 { return m.goldNum }

// PredNum returns the accumulated prediction count.
func (m *Metric) PredNum() float64 { return m.predNum }

// CountInstance consumes one example's gold and predicted tuples.
//
// In set mode both lists are deduplicated and the intersection is counted.
// Otherwise every prediction is scanned against the gold list in order:
// normal mode consumes the matched gold item so it can satisfy at most one
// prediction, multimatch leaves it available for further predictions.
func (m *Metric) CountInstance(goldList, predList []Tuple) error {
	if m.verbose {
		m.logger.Debug().
			Strs("gold", tupleStrings(goldList)).
			Strs("pred", tupleStrings(predList)).
			Msg("count instance")
	}

	if m.matchMode == api.MatchModeSet {
		goldSet := tupleSet(goldList)
		predSet := tupleSet(predList)
		m.goldNum += float64(len(goldSet))
		m.predNum += float64(len(predSet))
		for key := range predSet {
			if _, ok := goldSet[key]; ok {
				m.tp++
			}
		}
		return nil
	}

	m.goldNum += float64(len(goldList))
	m.predNum += float64(len(predList))

	if len(goldList) > 0 && len(predList) > 0 && goldList[0].Arity() != predList[0].Arity() {
		return fmt.Errorf("%w: gold arity %d, pred arity %d",
			ErrArityMismatch, goldList[0].Arity(), predList[0].Arity())
	}

	consumed := make([]bool, len(goldList))
	for _, pred := range predList {
		for i := range goldList {
			if consumed[i] || !goldList[i].Equal(pred) {
				continue
			}
			m.tp++
			if m.matchMode == api.MatchModeNormal {
				consumed[i] = true
			}
			break
		}
	}
	return nil
}

// CountBatchInstance applies CountInstance to parallel per-example
// collections. Matching never crosses example boundaries.
func (m *Metric) CountBatchInstance(batchGold, batchPred [][]Tuple) error {
	for i := 0; i < len(batchGold) && i < len(batchPred); i++ {
		if err := m.CountInstance(batchGold[i], batchPred[i]); err != nil {
			return err
		}
	}
	return nil
}

func tupleSet(tuples []Tuple) map[string]struct{} {
	set := make(map[string]struct{}, len(tuples))
	for _, t := range tuples {
		set[t.Key()] = struct{}{}
	}
	return set
}

// Counts is a finalized accumulator snapshot. Precision, recall and F1 are
// 0-100 scaled; zero denominators yield zero instead of an error.
type Counts struct {
	TP        float64
	Gold      float64
	Pred      float64
	Precision float64
	Recall    float64
	F1        float64
}

// ComputeF1 finalizes the accumulator into precision, recall and F1.
func (m *Metric) ComputeF1() Counts {
	p := safeDiv(m.tp, m.predNum)
	r := safeDiv(m.tp, m.goldNum)
	return Counts{
		TP:        m.tp,
		Gold:      m.goldNum,
		Pred:      m.predNum,
		Precision: p * 100,
		Recall:    r * 100,
		F1:        safeDiv(2*p*r, p+r) * 100,
	}
}

// WriteResult stores the snapshot into res under the given metric prefix,
// producing the keys {prefix}tp, {prefix}gold, {prefix}pred, {prefix}P,
// {prefix}R and {prefix}F1. All key construction lives here so new axes
// cannot collide by accident.
func (c Counts) WriteResult(res api.Result, prefix string) {
	res[prefix+"tp"] = c.TP
	res[prefix+"gold"] = c.Gold
	res[prefix+"pred"] = c.Pred
	res[prefix+"P"] = c.Precision
	res[prefix+"R"] = c.Recall
	res[prefix+"F1"] = c.F1
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
