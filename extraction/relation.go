package extraction

import (
	"fmt"

	"github.com/hongbinye/AdaKGC/api"
)

// RelationScorer canonicalizes binary relations into 5-tuples
// (relation type, arg1 type, arg1 value, arg2 type, arg2 value) and scores
// them strictly and on span boundaries only, each on both axes.
type RelationScorer struct {
	opts Options
}

// NewRelationScorer returns a relation scorer with the given options.
func NewRelationScorer(opts Options) *RelationScorer {
	return &RelationScorer{opts: opts}
}

// LoadGoldList canonicalizes per-example gold relations. Records with an
// argument count other than two abort the load.
func (s *RelationScorer) LoadGoldList(goldList [][]api.RelationRecord) ([]Instance, error) {
	instances := make([]Instance, 0, len(goldList))
	for i, gold := range goldList {
		offset := make([]Tuple, 0, len(gold))
		text := make([]Tuple, 0, len(gold))
		for _, record := range gold {
			if len(record.Args) != 2 {
				return nil, fmt.Errorf("%w: example %d relation %q has %d",
					ErrMalformedRelation, i, record.Type, len(record.Args))
			}
			offset = append(offset, NewTuple(
				record.Type,
				record.Args[0].Type, OffsetField(record.Args[0].Offset),
				record.Args[1].Type, OffsetField(record.Args[1].Offset),
			))
			text = append(text, NewTuple(
				record.Type,
				record.Args[0].Type, record.Args[0].Text,
				record.Args[1].Type, record.Args[1].Text,
			))
		}
		instances = append(instances, Instance{
			axisOffset: offset,
			axisString: text,
		})
	}
	return instances, nil
}

// LoadPredList canonicalizes per-example predicted relations into the same
// two-axis 5-tuple shape as LoadGoldList.
func (s *RelationScorer) LoadPredList(predList []api.RelationPrediction) []Instance {
	instances := make([]Instance, 0, len(predList))
	for _, pred := range predList {
		offset := make([]Tuple, 0, len(pred.Offset))
		for _, p := range pred.Offset {
			offset = append(offset, NewTuple(
				p.Type,
				p.Arg1Type, OffsetField(p.Arg1Offset),
				p.Arg2Type, OffsetField(p.Arg2Offset),
			))
		}
		text := make([]Tuple, 0, len(pred.String))
		for _, p := range pred.String {
			text = append(text, NewTuple(
				p.Type,
				p.Arg1Type, p.Arg1Text,
				p.Arg2Type, p.Arg2Text,
			))
		}
		instances = append(instances, Instance{
			axisOffset: offset,
			axisString: text,
		})
	}
	return instances
}

// EvalInstanceList scores parallel gold and prediction instance lists under
// four accumulator pairs and merges their results:
//
//	offset-rel-strict-* / string-rel-strict-*     full 5-tuple matching
//	offset-rel-boundary-* / string-rel-boundary-* argument types stripped
//
// The boundary view projects (relation type, arg1 value, arg2 value) out of
// the same canonical tuples the strict view matches on, so stripping the
// type labels can only relax matching: boundary tp >= strict tp per example.
func (s *RelationScorer) EvalInstanceList(goldInstances, predInstances []Instance) (api.Result, error) {
	strict, err := newAxisPair(s.opts)
	if err != nil {
		return nil, err
	}
	boundary, err := newAxisPair(s.opts)
	if err != nil {
		return nil, err
	}

	logger := s.opts.logger()
	for i := 0; i < len(goldInstances) && i < len(predInstances); i++ {
		gold, pred := goldInstances[i], predInstances[i]

		preOffset, preString := strict.offset.TP(), strict.str.TP()
		if err := strict.offset.CountInstance(gold[axisOffset], pred[axisOffset]); err != nil {
			return nil, err
		}
		if err := strict.str.CountInstance(gold[axisString], pred[axisString]); err != nil {
			return nil, err
		}
		if s.opts.Verbose && strict.offset.TP()-preOffset != strict.str.TP()-preString {
			warnTPIncrement(logger, "Relation Strict", gold, pred, axisOffset, axisString)
		}

		preOffset, preString = boundary.offset.TP(), boundary.str.TP()
		if err := boundary.offset.CountInstance(boundaryView(gold[axisOffset]), boundaryView(pred[axisOffset])); err != nil {
			return nil, err
		}
		if err := boundary.str.CountInstance(boundaryView(gold[axisString]), boundaryView(pred[axisString])); err != nil {
			return nil, err
		}
		if s.opts.Verbose && boundary.offset.TP()-preOffset != boundary.str.TP()-preString {
			warnTPIncrement(logger, "Relation Boundary", gold, pred, axisOffset, axisString)
		}
	}

	results := make(api.Result)
	strict.offset.ComputeF1().WriteResult(results, "offset-rel-strict-")
	strict.str.ComputeF1().WriteResult(results, "string-rel-strict-")
	boundary.offset.ComputeF1().WriteResult(results, "offset-rel-boundary-")
	boundary.str.ComputeF1().WriteResult(results, "string-rel-boundary-")
	return results, nil
}

// boundaryView strips both argument-type fields from relation 5-tuples,
// keeping (relation type, arg1 value, arg2 value).
func boundaryView(tuples []Tuple) []Tuple {
	out := make([]Tuple, len(tuples))
	for i, t := range tuples {
		out[i] = t.Project(0, 2, 4)
	}
	return out
}

// axisPair bundles the offset and string accumulators of one metric view.
type axisPair struct {
	offset *Metric
	str    *Metric
}

func newAxisPair(opts Options) (axisPair, error) {
	offset, err := NewMetric(opts)
	if err != nil {
		return axisPair{}, err
	}
	str, err := NewMetric(opts)
	if err != nil {
		return axisPair{}, err
	}
	return axisPair{offset: offset, str: str}, nil
}
