package adakgc

import "github.com/hongbinye/AdaKGC/extraction"

var (
	// ErrUnknownMatchMode is returned for a match mode outside
	// {set, normal, multimatch}.
	ErrUnknownMatchMode = extraction.ErrUnknownMatchMode
	// ErrArityMismatch is returned when gold and predicted tuples disagree
	// on arity.
	ErrArityMismatch = extraction.ErrArityMismatch
	// ErrMalformedRelation is returned for a relation record whose argument
	// count is not exactly two.
	ErrMalformedRelation = extraction.ErrMalformedRelation
	// ErrSetMatchUnsupported is returned when the set match mode is used
	// with record-based matching.
	ErrSetMatchUnsupported = extraction.ErrSetMatchUnsupported
)
