package extraction

import "github.com/rs/zerolog"

// warnTPIncrement reports a per-example disagreement between the offset and
// string axes on how many matches were found. The two axes compare different
// values but a consistent corpus yields the same match count on both; a
// divergence points at inconsistent or duplicated span annotation. Scoring
// continues normally, this is a signal for the corpus curator.
func warnTPIncrement(logger zerolog.Logger, scope string, gold, pred Instance, offsetAxis, stringAxis string) {
	logger.Warn().
		Str("scope", scope).
		Strs("gold_offset", tupleStrings(gold[offsetAxis])).
		Strs("pred_offset", tupleStrings(pred[offsetAxis])).
		Strs("gold_string", tupleStrings(gold[stringAxis])).
		Strs("pred_string", tupleStrings(pred[stringAxis])).
		Msg("tp increment mismatch between offset and string axes")
}
