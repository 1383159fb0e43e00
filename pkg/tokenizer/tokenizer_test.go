/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tokenizer_test.go
Description: Tests for the date string tokenizer. Covers numeric/text/separator splits,
the standalone-T separator rule, timezone offsets, and structure signatures.
*/

package tokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-dateinfer/pkg/constraints"
	"github.com/kleascm/akaylee-dateinfer/pkg/tokenizer"
)

func TestTokenizeDMYSlash(t *testing.T) {
	tokens, err := tokenizer.Tokenize("15/03/2025")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	assert.Equal(t, "15", tokens[0].Value)
	assert.True(t, tokens[0].MustBeDay()) // 15 > 12
	assert.Equal(t, "/", tokens[1].Value)
	assert.Equal(t, "03", tokens[2].Value)
	assert.True(t, tokens[2].CouldBeMonth())
	assert.Equal(t, "2025", tokens[4].Value)
}

func TestTokenizeISO(t *testing.T) {
	tokens, err := tokenizer.Tokenize("2025-01-15")
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.True(t, tokens[0].PossibleTypes.Contains(constraints.Year4))
}

func TestTokenizeWithMonthName(t *testing.T) {
	tokens, err := tokenizer.Tokenize("15 Jan 2025")
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.True(t, tokens[2].PossibleTypes.Contains(constraints.MonthNameShort))
}

func TestTokenizeStandaloneTIsSeparator(t *testing.T) {
	tokens, err := tokenizer.Tokenize("2025-01-15T10:30:00")
	require.NoError(t, err)
	require.Len(t, tokens, 11)
	assert.Equal(t, "T", tokens[5].Value)
	assert.True(t, tokens[5].IsSeparator())
}

func TestTokenizeTInWeekdayStaysAlpha(t *testing.T) {
	// Tue and Thu must not split at the leading T
	for _, input := range []string{"Tue", "Thu"} {
		tokens, err := tokenizer.Tokenize(input)
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, input, tokens[0].Value)
		assert.True(t, tokens[0].PossibleTypes.Contains(constraints.WeekdayShort))
	}
}

func TestTokenizeTimezoneOffset(t *testing.T) {
	tokens, err := tokenizer.Tokenize("2025-01-15T10:30:00+05:30")
	require.NoError(t, err)
	last := tokens[len(tokens)-1]
	assert.Equal(t, "+05:30", last.Value)
	assert.True(t, last.PossibleTypes.Contains(constraints.TzOffset))
}

func TestTokenizeZuluSuffix(t *testing.T) {
	tokens, err := tokenizer.Tokenize("2025-01-15T10:30:00Z")
	require.NoError(t, err)
	last := tokens[len(tokens)-1]
	assert.Equal(t, "Z", last.Value)
	assert.True(t, last.PossibleTypes.Contains(constraints.TzZ))
}

func TestTokenizeEmptyFails(t *testing.T) {
	_, err := tokenizer.Tokenize("")
	assert.Error(t, err)
}

func TestTokenizePreservesDigitCount(t *testing.T) {
	tokens, err := tokenizer.Tokenize("5/03/2025")
	require.NoError(t, err)
	assert.Equal(t, "5", tokens[0].Value)
	assert.Equal(t, "03", tokens[2].Value)
	// Single-digit 5 has no 2-digit year candidacy, padded 03 does
	assert.False(t, tokens[0].PossibleTypes.Contains(constraints.Year2))
	assert.True(t, tokens[2].PossibleTypes.Contains(constraints.Year2))
}

func TestSignatureProjection(t *testing.T) {
	a, err := tokenizer.Tokenize("15/03/2025")
	require.NoError(t, err)
	b, err := tokenizer.Tokenize("5/1/2024")
	require.NoError(t, err)
	c, err := tokenizer.Tokenize("2025-01-15")
	require.NoError(t, err)

	// Digit counts do not split structures, separator literals do
	assert.Equal(t, tokenizer.Signature(a), tokenizer.Signature(b))
	assert.NotEqual(t, tokenizer.Signature(a), tokenizer.Signature(c))
}

func TestSignatureDistinguishesAlphaFromNumeric(t *testing.T) {
	a, err := tokenizer.Tokenize("15/03/2025")
	require.NoError(t, err)
	b, err := tokenizer.Tokenize("not-a-date")
	require.NoError(t, err)
	assert.NotEqual(t, tokenizer.Signature(a), tokenizer.Signature(b))
}
