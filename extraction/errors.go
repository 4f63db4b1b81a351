package extraction

import "errors"

var (
	// ErrUnknownMatchMode is returned when an accumulator is constructed
	// with a match mode outside {set, normal, multimatch}.
	ErrUnknownMatchMode = errors.New("unknown match mode")
	// ErrArityMismatch is returned when gold and predicted tuples disagree
	// on arity; it means the upstream canonicalization is broken.
	ErrArityMismatch = errors.New("gold/pred tuple arity mismatch")
	// ErrMalformedRelation is returned for a relation record whose argument
	// count is not exactly two.
	ErrMalformedRelation = errors.New("relation record must have exactly two arguments")
	// ErrSetMatchUnsupported is returned when the set match mode is used
	// with record-based matching, which has no value-based set identity.
	ErrSetMatchUnsupported = errors.New("record metrics do not support the set match mode")
)
