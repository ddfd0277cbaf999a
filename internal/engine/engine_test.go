package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingshu-dev/yaocast/internal/dataset"
	"github.com/mingshu-dev/yaocast/internal/fortune"
	"github.com/mingshu-dev/yaocast/internal/hexagram"
	"github.com/mingshu-dev/yaocast/internal/lookup"
	"github.com/mingshu-dev/yaocast/internal/textscan"
)

func trainedEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := Train(dataset.Records(), DefaultConfig(), textscan.DefaultConfig(), lookup.DefaultBuildConfig())
	require.NoError(t, err)
	return e
}

func TestTrainReproducesCorpus(t *testing.T) {
	e := trainedEngine(t)
	for _, l := range dataset.Lines() {
		res, err := e.Classify(l.Hexagram, l.Position, l.Text)
		require.NoError(t, err)
		assert.Equal(t, l.Label, res.Label, "line %d-%d %q", l.Hexagram, l.Position, l.Text)
	}
}

func TestCascadeRuleSelection(t *testing.T) {
	e := trainedEngine(t)

	cases := []struct {
		name     string
		hexagram int
		position int
		rule     Rule
		label    fortune.Label
	}{
		// 利見大人 alone is weak evidence; the heaven-over-heaven cell
		// carries the decision.
		{"structural", 1, 5, RuleStructural, fortune.Auspicious},
		// 凶 plus 災眚 saturates the keyword score regardless of cell.
		{"strong keyword", 24, 6, RuleStrongKeyword, fortune.Inauspicious},
		// 厲吉 is a conditional construction, not two keywords.
		{"conditional", 27, 6, RuleConditional, fortune.Auspicious},
		// 无不利 reads auspicious on the surface; the reconciled
		// override pins the received neutral reading.
		{"override", 15, 5, RuleOverride, fortune.Neutral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line, err := dataset.Get(tc.hexagram, tc.position)
			require.NoError(t, err)
			res, err := e.Classify(tc.hexagram, tc.position, line.Text)
			require.NoError(t, err)
			assert.Equal(t, tc.rule, res.Rule)
			assert.Equal(t, tc.label, res.Label)
		})
	}
}

func TestClassifyEmptyTextFallsToStructure(t *testing.T) {
	e := trainedEngine(t)

	res, err := e.Classify(2, 5, "")
	require.NoError(t, err)
	assert.Equal(t, RuleStructural, res.Rule)
	assert.Equal(t, fortune.Auspicious, res.Label)
	assert.Equal(t, fortune.Auspicious, res.Baseline)
	assert.Zero(t, res.TextScore)
}

func TestClassifyRejectsBadIndex(t *testing.T) {
	e := trainedEngine(t)

	_, err := e.Classify(65, 1, "")
	assert.ErrorIs(t, err, hexagram.ErrInvalidNumber)

	_, err = e.Classify(1, 0, "")
	assert.ErrorIs(t, err, hexagram.ErrInvalidPosition)

	_, err = e.Classify(1, 7, "")
	assert.ErrorIs(t, err, hexagram.ErrInvalidPosition)
}

func TestPartialTableFallsToDefault(t *testing.T) {
	// A fold table missing the cell must not guess: the cascade falls
	// through to neutral and flags the fallback.
	records := []lookup.Record{
		{Hexagram: 1, Position: 1, Text: "初九：潛龍勿用。", Label: fortune.Neutral},
	}
	scanner, err := textscan.NewScanner(textscan.DefaultConfig())
	require.NoError(t, err)
	table, err := lookup.Build(records, lookup.BuildConfig{AllowPartial: true})
	require.NoError(t, err)
	e, err := New(DefaultConfig(), scanner, table)
	require.NoError(t, err)

	res, err := e.Classify(2, 3, "六三：含章可貞，或從王事，无成有終。")
	require.NoError(t, err)
	assert.Equal(t, RuleDefault, res.Rule)
	assert.Equal(t, fortune.Neutral, res.Label)
	assert.True(t, res.Fallback)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.UpperCut = -1
	bad.LowerCut = 1
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.StrongKeywordThreshold = 0
	assert.Error(t, bad.Validate())
}
