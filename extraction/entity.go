package extraction

import "github.com/hongbinye/AdaKGC/api"

// EntityScorer canonicalizes flat mention annotations and scores them on the
// offset and string axes with prefixes "offset-ent-" and "string-ent-".
type EntityScorer struct {
	opts Options
}

// NewEntityScorer returns an entity scorer with the given options.
func NewEntityScorer(opts Options) *EntityScorer {
	return &EntityScorer{opts: opts}
}

// LoadGoldList canonicalizes per-example gold mentions into offset and
// string axis tuples, preserving input order.
func (s *EntityScorer) LoadGoldList(goldList [][]api.EntitySpan) []Instance {
	instances := make([]Instance, 0, len(goldList))
	for _, gold := range goldList {
		offset := make([]Tuple, 0, len(gold))
		text := make([]Tuple, 0, len(gold))
		for _, span := range gold {
			offset = append(offset, NewTuple(span.Type, OffsetField(span.Offset)))
			text = append(text, NewTuple(span.Type, span.Text))
		}
		instances = append(instances, Instance{
			axisOffset: offset,
			axisString: text,
		})
	}
	return instances
}

// LoadPredList canonicalizes per-example predicted mentions into the same
// two-axis shape as LoadGoldList.
func (s *EntityScorer) LoadPredList(predList []api.EntityPrediction) []Instance {
	instances := make([]Instance, 0, len(predList))
	for _, pred := range predList {
		offset := make([]Tuple, 0, len(pred.Offset))
		for _, p := range pred.Offset {
			offset = append(offset, NewTuple(p.Type, OffsetField(p.Offset)))
		}
		text := make([]Tuple, 0, len(pred.String))
		for _, p := range pred.String {
			text = append(text, NewTuple(p.Type, p.Text))
		}
		instances = append(instances, Instance{
			axisOffset: offset,
			axisString: text,
		})
	}
	return instances
}

// EvalInstanceList scores parallel gold and prediction instance lists and
// returns the merged offset-ent-* / string-ent-* result mapping. Examples
// are processed sequentially in input order so verbose diagnostics come out
// deterministically.
func (s *EntityScorer) EvalInstanceList(goldInstances, predInstances []Instance) (api.Result, error) {
	offsetMetric, err := NewMetric(s.opts)
	if err != nil {
		return nil, err
	}
	stringMetric, err := NewMetric(s.opts)
	if err != nil {
		return nil, err
	}

	logger := s.opts.logger()
	for i := 0; i < len(goldInstances) && i < len(predInstances); i++ {
		gold, pred := goldInstances[i], predInstances[i]

		preOffset, preString := offsetMetric.TP(), stringMetric.TP()
		if err := offsetMetric.CountInstance(gold[axisOffset], pred[axisOffset]); err != nil {
			return nil, err
		}
		if err := stringMetric.CountInstance(gold[axisString], pred[axisString]); err != nil {
			return nil, err
		}
		if s.opts.Verbose && offsetMetric.TP()-preOffset != stringMetric.TP()-preString {
			warnTPIncrement(logger, "Entity", gold, pred, axisOffset, axisString)
		}
	}

	results := make(api.Result)
	offsetMetric.ComputeF1().WriteResult(results, "offset-ent-")
	stringMetric.ComputeF1().WriteResult(results, "string-ent-")
	return results, nil
}
