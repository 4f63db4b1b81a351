package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchModeValid(t *testing.T) {
	assert.True(t, MatchModeSet.Valid())
	assert.True(t, MatchModeNormal.Valid())
	assert.True(t, MatchModeMultiMatch.Valid())
	assert.False(t, MatchMode("fuzzy").Valid())
	assert.False(t, MatchMode("").Valid())
}

func TestResultMerge(t *testing.T) {
	r := Result{"offset-ent-F1": 100}
	r.Merge(Result{"string-ent-F1": 50})
	assert.Equal(t, Result{"offset-ent-F1": 100, "string-ent-F1": 50}, r)
}
