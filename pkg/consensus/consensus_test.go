/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: consensus_test.go
Description: Tests for consensus-based role resolution. Covers unambiguous evidence,
cross-example disambiguation, day-first preference, month names, time sequences,
and the 12-hour clock rule.
*/

package consensus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-dateinfer/pkg/consensus"
	"github.com/kleascm/akaylee-dateinfer/pkg/constraints"
	"github.com/kleascm/akaylee-dateinfer/pkg/tokenizer"
)

func mustTokenize(t *testing.T, inputs ...string) [][]tokenizer.Token {
	t.Helper()
	out := make([][]tokenizer.Token, 0, len(inputs))
	for _, s := range inputs {
		tokens, err := tokenizer.Tokenize(s)
		require.NoError(t, err)
		out = append(out, tokens)
	}
	return out
}

func TestConsensusUnambiguous(t *testing.T) {
	dates := mustTokenize(t, "15/03/2025", "20/04/2025")
	resolved, confidence, err := consensus.Resolve(dates, true)
	require.NoError(t, err)

	assert.Equal(t, constraints.Day, resolved[0])
	assert.Equal(t, constraints.Month, resolved[2])
	assert.Equal(t, constraints.Year4, resolved[4])
	assert.Greater(t, confidence, 0.9)
}

func TestConsensusWithAmbiguous(t *testing.T) {
	// First date is ambiguous, second proves DD/MM
	dates := mustTokenize(t, "01/02/2025", "15/03/2025")
	resolved, _, err := consensus.Resolve(dates, true)
	require.NoError(t, err)

	assert.Equal(t, constraints.Day, resolved[0])
	assert.Equal(t, constraints.Month, resolved[2])
}

func TestConsensusAllAmbiguousDayfirst(t *testing.T) {
	dates := mustTokenize(t, "01/02/2025", "03/04/2025")
	resolved, _, err := consensus.Resolve(dates, true)
	require.NoError(t, err)

	assert.Equal(t, constraints.Day, resolved[0])
	assert.Equal(t, constraints.Month, resolved[2])
}

func TestConsensusAllAmbiguousMonthfirst(t *testing.T) {
	dates := mustTokenize(t, "01/02/2025", "03/04/2025")
	resolved, _, err := consensus.Resolve(dates, false)
	require.NoError(t, err)

	assert.Equal(t, constraints.Month, resolved[0])
	assert.Equal(t, constraints.Day, resolved[2])
}

func TestConsensusWithMonthName(t *testing.T) {
	dates := mustTokenize(t, "15 Jan 2025", "20 Mar 2025")
	resolved, _, err := consensus.Resolve(dates, true)
	require.NoError(t, err)

	assert.Equal(t, constraints.Day, resolved[0])
	assert.Equal(t, constraints.MonthNameShort, resolved[2])
	assert.Equal(t, constraints.Year4, resolved[4])
}

func TestConsensusTimeSequence(t *testing.T) {
	dates := mustTokenize(t, "2025-01-15 10:30:00")
	resolved, _, err := consensus.Resolve(dates, true)
	require.NoError(t, err)

	assert.Equal(t, constraints.Hour24, resolved[6])
	assert.Equal(t, constraints.Minute, resolved[8])
	assert.Equal(t, constraints.Second, resolved[10])
}

func TestConsensusDotTimeNeedsBoundary(t *testing.T) {
	// Dot-joined numbers after a space are a time; the same shape without a
	// boundary stays a date
	withBoundary := mustTokenize(t, "10/06/24 12.25.10")
	resolved, _, err := consensus.Resolve(withBoundary, true)
	require.NoError(t, err)
	assert.Equal(t, constraints.Hour24, resolved[6])
	assert.Equal(t, constraints.Minute, resolved[8])
	assert.Equal(t, constraints.Second, resolved[10])

	noBoundary := mustTokenize(t, "15.03.2025")
	resolved, _, err = consensus.Resolve(noBoundary, true)
	require.NoError(t, err)
	assert.Equal(t, constraints.Day, resolved[0])
	assert.Equal(t, constraints.Month, resolved[2])
	assert.Equal(t, constraints.Year4, resolved[4])
}

func TestConsensusHour12WithMeridiem(t *testing.T) {
	dates := mustTokenize(t, "09:30 AM", "11:45 PM")
	resolved, _, err := consensus.Resolve(dates, true)
	require.NoError(t, err)

	assert.Equal(t, constraints.Hour12, resolved[0])
	assert.Equal(t, constraints.Minute, resolved[2])
	assert.Equal(t, constraints.AmPm, resolved[4])
}

func TestConsensusYear2TrailingPosition(t *testing.T) {
	dates := mustTokenize(t, "10/06/24", "11/06/24")
	resolved, _, err := consensus.Resolve(dates, true)
	require.NoError(t, err)

	assert.Equal(t, constraints.Day, resolved[0])
	assert.Equal(t, constraints.Month, resolved[2])
	assert.Equal(t, constraints.Year2, resolved[4])
}

func TestConsensusISOOrderingBeatsDayfirst(t *testing.T) {
	// A leading 4-digit year reads month-first even under the day-first
	// preference
	dates := mustTokenize(t, "2025-01-05", "2025-02-07")
	resolved, _, err := consensus.Resolve(dates, true)
	require.NoError(t, err)

	assert.Equal(t, constraints.Year4, resolved[0])
	assert.Equal(t, constraints.Month, resolved[2])
	assert.Equal(t, constraints.Day, resolved[4])
}

func TestConsensusEmptyInput(t *testing.T) {
	_, _, err := consensus.Resolve(nil, true)
	assert.ErrorIs(t, err, consensus.ErrNoExamples)
}
