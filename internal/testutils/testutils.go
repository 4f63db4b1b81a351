package testutils

import (
	"bytes"

	"github.com/rs/zerolog"

	"github.com/hongbinye/AdaKGC/api"
)

// NewBufferLogger returns a zerolog logger writing to the returned buffer,
// for asserting on diagnostic output.
func NewBufferLogger() (*zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	return &logger, &buf
}

// EntityGold returns a one-example gold corpus with a single PER mention.
func EntityGold() [][]api.EntitySpan {
	return [][]api.EntitySpan{
		{{Type: "PER", Offset: api.Offset{0, 1}, Text: "Bob"}},
	}
}

// EntityPredMatching returns predictions agreeing with EntityGold on both
// axes.
func EntityPredMatching() []api.EntityPrediction {
	return []api.EntityPrediction{
		{
			Offset: []api.LabeledOffset{{Type: "PER", Offset: api.Offset{0, 1}}},
			String: []api.LabeledText{{Type: "PER", Text: "Bob"}},
		},
	}
}

// RelationGold returns a one-example gold corpus with a single
// PER-(0,1) / ORG-(2,3) relation.
func RelationGold() [][]api.RelationRecord {
	return [][]api.RelationRecord{
		{{
			Type: "REL",
			Args: []api.Argument{
				{Type: "PER", Offset: api.Offset{0, 1}, Text: "Bob"},
				{Type: "ORG", Offset: api.Offset{2, 3}, Text: "Acme"},
			},
		}},
	}
}

// RelationPredSwappedTypes returns predictions identical to RelationGold but
// with the two argument-type labels exchanged, so strict matching fails
// while boundary matching succeeds.
func RelationPredSwappedTypes() []api.RelationPrediction {
	return []api.RelationPrediction{
		{
			Offset: []api.RelationOffsetPrediction{{
				Type:     "REL",
				Arg1Type: "ORG", Arg1Offset: api.Offset{0, 1},
				Arg2Type: "PER", Arg2Offset: api.Offset{2, 3},
			}},
			String: []api.RelationStringPrediction{{
				Type:     "REL",
				Arg1Type: "ORG", Arg1Text: "Bob",
				Arg2Type: "PER", Arg2Text: "Acme",
			}},
		},
	}
}

// EventGold returns a one-example gold corpus with a single ATTACK event
// carrying two role arguments.
func EventGold() [][]api.EventRecord {
	return [][]api.EventRecord{
		{{
			Type:   "ATTACK",
			Offset: api.Offset{3, 4},
			Text:   "fired",
			Args: []api.Argument{
				{Type: "Attacker", Offset: api.Offset{0, 1}, Text: "Bob"},
				{Type: "Target", Offset: api.Offset{5, 6}, Text: "base"},
			},
		}},
	}
}

// EventPredMatching returns predictions agreeing with EventGold on both
// axes.
func EventPredMatching() []api.EventPrediction {
	return []api.EventPrediction{
		{
			Offset: []api.EventOffsetPrediction{{
				Type:    "ATTACK",
				Trigger: api.Offset{3, 4},
				Roles: []api.RoleOffset{
					{Type: "Attacker", Offset: api.Offset{0, 1}},
					{Type: "Target", Offset: api.Offset{5, 6}},
				},
			}},
			String: []api.EventStringPrediction{{
				Type:    "ATTACK",
				Trigger: "fired",
				Roles: []api.RoleText{
					{Type: "Attacker", Text: "Bob"},
					{Type: "Target", Text: "base"},
				},
			}},
		},
	}
}
