package api

// Offset identifies a text span by its token or character positions.
// It is canonicalized into an immutable tuple field exactly once, at the
// scorer boundary; nothing downstream compares raw offsets.
type Offset []int

// EntitySpan is one gold entity mention.
type EntitySpan struct {
	Type   string `json:"type"`
	Offset Offset `json:"offset"`
	Text   string `json:"text"`
}

// Argument is a typed argument span of a relation or event record.
type Argument struct {
	Type   string `json:"type"`
	Offset Offset `json:"offset"`
	Text   string `json:"text"`
}

// RelationRecord is one gold relation. Args must hold exactly two
// arguments; the canonicalizer rejects anything else.
type RelationRecord struct {
	Type string     `json:"type"`
	Args []Argument `json:"args"`
}

// EventRecord is one gold event: the trigger span plus its role arguments.
type EventRecord struct {
	Type   string     `json:"type"`
	Offset Offset     `json:"offset"`
	Text   string     `json:"text"`
	Args   []Argument `json:"args"`
}

// LabeledOffset pairs a label with a span offset. It is the offset-axis
// prediction unit for entities.
type LabeledOffset struct {
	Type   string `json:"type"`
	Offset Offset `json:"offset"`
}

// LabeledText pairs a label with literal span text. It is the string-axis
// prediction unit for entities.
type LabeledText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// EntityPrediction is one example's predicted mentions, pre-split into the
// offset and string axes by the inference layer.
type EntityPrediction struct {
	Offset []LabeledOffset `json:"offset"`
	String []LabeledText   `json:"string"`
}

// RelationOffsetPrediction is one predicted relation on the offset axis.
type RelationOffsetPrediction struct {
	Type       string `json:"type"`
	Arg1Type   string `json:"arg1_type"`
	Arg1Offset Offset `json:"arg1_offset"`
	Arg2Type   string `json:"arg2_type"`
	Arg2Offset Offset `json:"arg2_offset"`
}

// RelationStringPrediction is one predicted relation on the string axis.
type RelationStringPrediction struct {
	Type     string `json:"type"`
	Arg1Type string `json:"arg1_type"`
	Arg1Text string `json:"arg1_text"`
	Arg2Type string `json:"arg2_type"`
	Arg2Text string `json:"arg2_text"`
}

// RelationPrediction is one example's predicted relations, pre-split by axis.
type RelationPrediction struct {
	Offset []RelationOffsetPrediction `json:"offset"`
	String []RelationStringPrediction `json:"string"`
}

// RoleOffset is one predicted event role on the offset axis.
type RoleOffset struct {
	Type   string `json:"type"`
	Offset Offset `json:"offset"`
}

// RoleText is one predicted event role on the string axis.
type RoleText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// EventOffsetPrediction is one predicted event on the offset axis.
type EventOffsetPrediction struct {
	Type    string       `json:"type"`
	Trigger Offset       `json:"trigger"`
	Roles   []RoleOffset `json:"roles"`
}

// EventStringPrediction is one predicted event on the string axis.
type EventStringPrediction struct {
	Type    string     `json:"type"`
	Trigger string     `json:"trigger"`
	Roles   []RoleText `json:"roles"`
}

// EventPrediction is one example's predicted events, pre-split by axis.
type EventPrediction struct {
	Offset []EventOffsetPrediction `json:"offset"`
	String []EventStringPrediction `json:"string"`
}

// MatchMode selects the matching semantics of an accumulator. It is fixed at
// construction for the accumulator's lifetime.
type MatchMode string

const (
	// MatchModeSet deduplicates both sides and counts the intersection.
	MatchModeSet MatchMode = "set"
	// MatchModeNormal greedily matches each prediction against at most one
	// gold item, consuming the gold item on match.
	MatchModeNormal MatchMode = "normal"
	// MatchModeMultiMatch lets a single gold item satisfy any number of
	// predictions.
	MatchModeMultiMatch MatchMode = "multimatch"
)

// Valid reports whether m names a supported matching mode.
func (m MatchMode) Valid() bool {
	switch m {
	case MatchModeSet, MatchModeNormal, MatchModeMultiMatch:
		return true
	}
	return false
}

// Result is the flat metrics mapping produced by a scorer: prefixed metric
// names (for example "offset-rel-strict-F1") to float values. Counts are
// floats, precision/recall/F1 are 0-100 scaled.
type Result map[string]float64

// Merge copies all entries of other into r.
func (r Result) Merge(other Result) {
	for k, v := range other {
		r[k] = v
	}
}
