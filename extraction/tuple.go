// Package extraction implements the matching and scoring engine for
// structured information extraction: a generic tuple accumulator with
// set, greedy one-to-one and multi-match semantics, structural equality
// for composite records, and the entity, relation and event scorers that
// canonicalize raw annotation payloads into matchable form.
package extraction

import (
	"strconv"
	"strings"

	"github.com/hongbinye/AdaKGC/api"
)

// Tuple is an immutable flat comparison unit: a fixed-arity sequence of
// canonical string fields. Offsets are folded into a single field when the
// tuple is built, so equality inside the matching loops is plain field
// comparison with no type checks.
type Tuple struct {
	fields []string
}

// NewTuple builds a tuple from already-canonical fields.
func NewTuple(fields ...string) Tuple {
	return Tuple{fields: fields}
}

// OffsetField canonicalizes a span offset into a single tuple field.
func OffsetField(off api.Offset) string {
	parts := make([]string, len(off))
	for i, p := range off {
		parts[i] = strconv.Itoa(p)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Arity returns the number of fields.
func (t Tuple) Arity() int {
	return len(t.fields)
}

// Equal reports field-wise equality with other.
func (t Tuple) Equal(other Tuple) bool {
	if len(t.fields) != len(other.fields) {
		return false
	}
	for i := range t.fields {
		if t.fields[i] != other.fields[i] {
			return false
		}
	}
	return true
}

// Key returns a collision-free string form of the tuple, usable as a map key
// for set-mode deduplication.
func (t Tuple) Key() string {
	return strings.Join(t.fields, "\x1f")
}

// Project returns a new tuple keeping only the fields at the given indexes,
// in the given order.
func (t Tuple) Project(indexes ...int) Tuple {
	fields := make([]string, len(indexes))
	for i, idx := range indexes {
		fields[i] = t.fields[idx]
	}
	return Tuple{fields: fields}
}

// String renders the tuple for diagnostics.
func (t Tuple) String() string {
	return "(" + strings.Join(t.fields, ", ") + ")"
}

func tupleStrings(tuples []Tuple) []string {
	out := make([]string, len(tuples))
	for i, t := range tuples {
		out[i] = t.String()
	}
	return out
}

// Instance is one example's canonical form: metric-axis name to the ordered
// tuples extracted for that axis. Instances are built by the scorers'
// LoadGoldList/LoadPredList, never by hand.
type Instance map[string][]Tuple

// Metric-axis names used by the scorers.
const (
	axisOffset        = "offset"
	axisString        = "string"
	axisOffsetTrigger = "offset_trigger"
	axisStringTrigger = "string_trigger"
	axisOffsetRole    = "offset_role"
	axisStringRole    = "string_role"
)
