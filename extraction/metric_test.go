package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongbinye/AdaKGC/api"
)

func newTestMetric(t *testing.T, mode api.MatchMode) *Metric {
	t.Helper()
	m, err := NewMetric(Options{MatchMode: mode})
	require.NoError(t, err)
	return m
}

func TestNewMetricRejectsUnknownMode(t *testing.T) {
	_, err := NewMetric(Options{MatchMode: "fuzzy"})
	require.ErrorIs(t, err, ErrUnknownMatchMode)
}

func TestNewMetricDefaultsToNormal(t *testing.T) {
	m, err := NewMetric(Options{})
	require.NoError(t, err)

	gold := []Tuple{NewTuple("PER", "a")}
	pred := []Tuple{NewTuple("PER", "a"), NewTuple("PER", "a")}
	require.NoError(t, m.CountInstance(gold, pred))
	// normal mode: the single gold item is consumed by the first prediction
	assert.Equal(t, 1.0, m.TP())
}

func TestMetricNormalConsumesGoldOnce(t *testing.T) {
	m := newTestMetric(t, api.MatchModeNormal)
	gold := []Tuple{NewTuple("PER", "a"), NewTuple("PER", "a")}
	pred := []Tuple{NewTuple("PER", "a")}
	require.NoError(t, m.CountInstance(gold, pred))

	counts := m.ComputeF1()
	assert.Equal(t, 1.0, counts.TP)
	assert.Equal(t, 2.0, counts.Gold)
	assert.Equal(t, 1.0, counts.Pred)
	assert.InDelta(t, 100.0, counts.Precision, 1e-9)
	assert.InDelta(t, 50.0, counts.Recall, 1e-9)
}

func TestMetricMultiMatchKeepsGoldAvailable(t *testing.T) {
	m := newTestMetric(t, api.MatchModeMultiMatch)
	gold := []Tuple{NewTuple("PER", "a"), NewTuple("PER", "a")}
	require.NoError(t, m.CountInstance(gold, []Tuple{NewTuple("PER", "a")}))
	assert.Equal(t, 1.0, m.TP())

	m = newTestMetric(t, api.MatchModeMultiMatch)
	require.NoError(t, m.CountInstance(gold, []Tuple{NewTuple("PER", "a"), NewTuple("PER", "a")}))
	assert.Equal(t, 2.0, m.TP())
}

func TestMetricSetModeDeduplicates(t *testing.T) {
	m := newTestMetric(t, api.MatchModeSet)
	gold := []Tuple{NewTuple("PER", "a"), NewTuple("PER", "a"), NewTuple("ORG", "b")}
	pred := []Tuple{NewTuple("PER", "a"), NewTuple("PER", "a"), NewTuple("LOC", "c")}
	require.NoError(t, m.CountInstance(gold, pred))

	counts := m.ComputeF1()
	assert.Equal(t, 1.0, counts.TP)
	assert.Equal(t, 2.0, counts.Gold)
	assert.Equal(t, 2.0, counts.Pred)
}

func TestMetricArityMismatch(t *testing.T) {
	m := newTestMetric(t, api.MatchModeNormal)
	err := m.CountInstance([]Tuple{NewTuple("PER", "a")}, []Tuple{NewTuple("PER")})
	require.ErrorIs(t, err, ErrArityMismatch)
}

func TestMetricEmptyInputsComputeZero(t *testing.T) {
	for _, mode := range []api.MatchMode{api.MatchModeSet, api.MatchModeNormal, api.MatchModeMultiMatch} {
		t.Run(string(mode), func(t *testing.T) {
			m := newTestMetric(t, mode)
			require.NoError(t, m.CountInstance(nil, nil))

			counts := m.ComputeF1()
			assert.Zero(t, counts.TP)
			assert.Zero(t, counts.Gold)
			assert.Zero(t, counts.Pred)
			assert.Zero(t, counts.Precision)
			assert.Zero(t, counts.Recall)
			assert.Zero(t, counts.F1)
		})
	}
}

func TestMetricTPBounded(t *testing.T) {
	for _, mode := range []api.MatchMode{api.MatchModeSet, api.MatchModeNormal, api.MatchModeMultiMatch} {
		t.Run(string(mode), func(t *testing.T) {
			m := newTestMetric(t, mode)
			instances := [][2][]Tuple{
				{{NewTuple("PER", "a")}, {NewTuple("PER", "a"), NewTuple("PER", "b")}},
				{{NewTuple("ORG", "c"), NewTuple("ORG", "c")}, {NewTuple("ORG", "c")}},
				{{}, {NewTuple("LOC", "d")}},
				{{NewTuple("LOC", "e")}, {}},
			}
			for _, inst := range instances {
				require.NoError(t, m.CountInstance(inst[0], inst[1]))
			}
			bound := m.GoldNum()
			if m.PredNum() < bound {
				bound = m.PredNum()
			}
			assert.LessOrEqual(t, m.TP(), bound)
		})
	}
}

func TestCountBatchInstanceStaysPerExample(t *testing.T) {
	m := newTestMetric(t, api.MatchModeNormal)
	batchGold := [][]Tuple{{NewTuple("PER", "a")}, {NewTuple("ORG", "b")}}
	batchPred := [][]Tuple{{NewTuple("ORG", "b")}, {NewTuple("PER", "a")}}
	require.NoError(t, m.CountBatchInstance(batchGold, batchPred))
	// each prediction only sees its own example's gold
	assert.Zero(t, m.TP())
	assert.Equal(t, 2.0, m.GoldNum())
	assert.Equal(t, 2.0, m.PredNum())
}

func TestWriteResultKeys(t *testing.T) {
	m := newTestMetric(t, api.MatchModeNormal)
	gold := []Tuple{NewTuple("PER", "a")}
	require.NoError(t, m.CountInstance(gold, gold))

	res := make(api.Result)
	m.ComputeF1().WriteResult(res, "offset-ent-")

	assert.Equal(t, 1.0, res["offset-ent-tp"])
	assert.Equal(t, 1.0, res["offset-ent-gold"])
	assert.Equal(t, 1.0, res["offset-ent-pred"])
	assert.InDelta(t, 100.0, res["offset-ent-P"], 1e-9)
	assert.InDelta(t, 100.0, res["offset-ent-R"], 1e-9)
	assert.InDelta(t, 100.0, res["offset-ent-F1"], 1e-9)
}

func TestTupleProjectAndKey(t *testing.T) {
	full := NewTuple("REL", "PER", "(0,1)", "ORG", "(2,3)")
	boundary := full.Project(0, 2, 4)
	assert.Equal(t, 3, boundary.Arity())
	assert.True(t, boundary.Equal(NewTuple("REL", "(0,1)", "(2,3)")))
	assert.NotEqual(t, NewTuple("a", "b").Key(), NewTuple("ab").Key())
}

func TestOffsetField(t *testing.T) {
	assert.Equal(t, "(0,1)", OffsetField(api.Offset{0, 1}))
	assert.Equal(t, "()", OffsetField(nil))
}
