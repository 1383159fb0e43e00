/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rules_test.go
Description: Tests for the pattern rewrite rules. Covers duplicate day-or-month
resolution, month-month sequences, ISO year hints, time sequences, and month
name adjacency.
*/

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kleascm/akaylee-dateinfer/pkg/constraints"
	"github.com/kleascm/akaylee-dateinfer/pkg/rules"
)

func TestDuplicateDayOrMonth(t *testing.T) {
	tokens := []constraints.TokenType{
		constraints.DayOrMonth,
		constraints.Separator('/'),
		constraints.DayOrMonth,
		constraints.Separator('/'),
		constraints.Year4,
	}
	rules.Apply(tokens)
	assert.Equal(t, constraints.Day, tokens[0])
	assert.Equal(t, constraints.Month, tokens[2])
}

func TestMonthMonthSequence(t *testing.T) {
	tokens := []constraints.TokenType{
		constraints.Month,
		constraints.Separator('/'),
		constraints.Month,
		constraints.Separator('/'),
		constraints.Year4,
	}
	rules.Apply(tokens)
	assert.Equal(t, constraints.Month, tokens[0])
	assert.Equal(t, constraints.Day, tokens[2])
}

func TestISOFormatYearFirst(t *testing.T) {
	tokens := []constraints.TokenType{
		constraints.Year4,
		constraints.Separator('-'),
		constraints.DayOrMonth,
		constraints.Separator('-'),
		constraints.DayOrMonth,
	}
	rules.Apply(tokens)
	assert.Equal(t, constraints.Month, tokens[2])
	assert.Equal(t, constraints.Day, tokens[4])
}

func TestTimeSequence(t *testing.T) {
	tokens := []constraints.TokenType{
		constraints.Unknown,
		constraints.Separator(':'),
		constraints.Unknown,
		constraints.Separator(':'),
		constraints.Unknown,
	}
	rules.Apply(tokens)
	assert.Equal(t, constraints.Hour24, tokens[0])
	assert.Equal(t, constraints.Minute, tokens[2])
	assert.Equal(t, constraints.Second, tokens[4])
}

func TestMonthNameAdjacency(t *testing.T) {
	tokens := []constraints.TokenType{
		constraints.DayOrMonth,
		constraints.Separator(' '),
		constraints.MonthNameShort,
		constraints.Separator(' '),
		constraints.Year4,
	}
	rules.Apply(tokens)
	assert.Equal(t, constraints.Day, tokens[0])
}

func TestMonthNameAdjacencyRightNeighbor(t *testing.T) {
	tokens := []constraints.TokenType{
		constraints.MonthName,
		constraints.Separator(' '),
		constraints.DayOrMonth,
		constraints.Separator(' '),
		constraints.Year4,
	}
	rules.Apply(tokens)
	assert.Equal(t, constraints.Day, tokens[2])
}
