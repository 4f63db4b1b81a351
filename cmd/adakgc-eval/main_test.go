package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adakgc "github.com/hongbinye/AdaKGC"
)

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func TestEvaluateEntity(t *testing.T) {
	results, err := evaluate("entity", testdata("entity_gold.json"), testdata("entity_pred.json"), adakgc.Options{})
	require.NoError(t, err)

	assert.Equal(t, 1.0, results["offset-ent-tp"])
	assert.InDelta(t, 100.0, results["offset-ent-F1"], 1e-9)
	assert.InDelta(t, 100.0, results["string-ent-F1"], 1e-9)
}

func TestEvaluateRelation(t *testing.T) {
	// prediction has the argument-type labels swapped relative to gold
	results, err := evaluate("relation", testdata("relation_gold.json"), testdata("relation_pred.json"), adakgc.Options{})
	require.NoError(t, err)

	assert.Zero(t, results["offset-rel-strict-tp"])
	assert.Equal(t, 1.0, results["offset-rel-boundary-tp"])
	assert.Equal(t, 1.0, results["string-rel-boundary-tp"])
}

func TestEvaluateUnknownTask(t *testing.T) {
	_, err := evaluate("coref", testdata("entity_gold.json"), testdata("entity_pred.json"), adakgc.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown task")
}

func TestEvaluateLengthMismatch(t *testing.T) {
	_, err := evaluate("entity", testdata("entity_gold.json"), testdata("empty_pred.json"), adakgc.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "examples")
}

func TestEvaluateMissingFile(t *testing.T) {
	_, err := evaluate("entity", testdata("missing.json"), testdata("entity_pred.json"), adakgc.Options{})
	require.Error(t, err)
}
