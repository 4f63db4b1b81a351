package extraction

import "github.com/hongbinye/AdaKGC/api"

// EventScorer canonicalizes event structures with nested role arguments.
// Each event contributes one trigger tuple (event type, trigger value) and
// one role tuple (event type, role type, role value) per argument; triggers
// and roles are scored by independent accumulators on both axes.
type EventScorer struct {
	opts Options
}

// NewEventScorer returns an event scorer with the given options.
func NewEventScorer(opts Options) *EventScorer {
	return &EventScorer{opts: opts}
}

// LoadGoldList canonicalizes per-example gold events into the four axes
// offset_trigger, string_trigger, offset_role and string_role.
func (s *EventScorer) LoadGoldList(goldList [][]api.EventRecord) []Instance {
	instances := make([]Instance, 0, len(goldList))
	for _, gold := range goldList {
		instance := Instance{
			axisOffsetTrigger: {},
			axisStringTrigger: {},
			axisOffsetRole:    {},
			axisStringRole:    {},
		}
		for _, record := range gold {
			instance[axisOffsetTrigger] = append(instance[axisOffsetTrigger],
				NewTuple(record.Type, OffsetField(record.Offset)))
			instance[axisStringTrigger] = append(instance[axisStringTrigger],
				NewTuple(record.Type, record.Text))
			for _, arg := range record.Args {
				instance[axisOffsetRole] = append(instance[axisOffsetRole],
					NewTuple(record.Type, arg.Type, OffsetField(arg.Offset)))
				instance[axisStringRole] = append(instance[axisStringRole],
					NewTuple(record.Type, arg.Type, arg.Text))
			}
		}
		instances = append(instances, instance)
	}
	return instances
}

// LoadPredList flattens per-example predicted events into the same four-axis
// shape as LoadGoldList.
func (s *EventScorer) LoadPredList(predList []api.EventPrediction) []Instance {
	instances := make([]Instance, 0, len(predList))
	for _, pred := range predList {
		instance := Instance{
			axisOffsetTrigger: {},
			axisStringTrigger: {},
			axisOffsetRole:    {},
			axisStringRole:    {},
		}
		for _, p := range pred.Offset {
			instance[axisOffsetTrigger] = append(instance[axisOffsetTrigger],
				NewTuple(p.Type, OffsetField(p.Trigger)))
			for _, role := range p.Roles {
				instance[axisOffsetRole] = append(instance[axisOffsetRole],
					NewTuple(p.Type, role.Type, OffsetField(role.Offset)))
			}
		}
		for _, p := range pred.String {
			instance[axisStringTrigger] = append(instance[axisStringTrigger],
				NewTuple(p.Type, p.Trigger))
			for _, role := range p.Roles {
				instance[axisStringRole] = append(instance[axisStringRole],
					NewTuple(p.Type, role.Type, role.Text))
			}
		}
		instances = append(instances, instance)
	}
	return instances
}

// EvalInstanceList scores parallel gold and prediction instance lists with
// four independent accumulators and merges their results under the prefixes
// offset-evt-trigger-*, string-evt-trigger-*, offset-evt-role-* and
// string-evt-role-*. Trigger and role consistency diagnostics run
// separately.
func (s *EventScorer) EvalInstanceList(goldInstances, predInstances []Instance) (api.Result, error) {
	trigger, err := newAxisPair(s.opts)
	if err != nil {
		return nil, err
	}
	role, err := newAxisPair(s.opts)
	if err != nil {
		return nil, err
	}

	logger := s.opts.logger()
	for i := 0; i < len(goldInstances) && i < len(predInstances); i++ {
		gold, pred := goldInstances[i], predInstances[i]

		preOffset, preString := trigger.offset.TP(), trigger.str.TP()
		if err := trigger.offset.CountInstance(gold[axisOffsetTrigger], pred[axisOffsetTrigger]); err != nil {
			return nil, err
		}
		if err := trigger.str.CountInstance(gold[axisStringTrigger], pred[axisStringTrigger]); err != nil {
			return nil, err
		}
		if s.opts.Verbose && trigger.offset.TP()-preOffset != trigger.str.TP()-preString {
			warnTPIncrement(logger, "Trigger", gold, pred, axisOffsetTrigger, axisStringTrigger)
		}

		preOffset, preString = role.offset.TP(), role.str.TP()
		if err := role.offset.CountInstance(gold[axisOffsetRole], pred[axisOffsetRole]); err != nil {
			return nil, err
		}
		if err := role.str.CountInstance(gold[axisStringRole], pred[axisStringRole]); err != nil {
			return nil, err
		}
		if s.opts.Verbose && role.offset.TP()-preOffset != role.str.TP()-preString {
			warnTPIncrement(logger, "Role", gold, pred, axisOffsetRole, axisStringRole)
		}
	}

	results := make(api.Result)
	trigger.offset.ComputeF1().WriteResult(results, "offset-evt-trigger-")
	trigger.str.ComputeF1().WriteResult(results, "string-evt-trigger-")
	role.offset.ComputeF1().WriteResult(results, "offset-evt-role-")
	role.str.ComputeF1().WriteResult(results, "string-evt-role-")
	return results, nil
}
