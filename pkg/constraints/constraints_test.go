/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: constraints_test.go
Description: Tests for token type constraints. Covers numeric role enumeration,
name table lookups, and strptime projections.
*/

package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kleascm/akaylee-dateinfer/pkg/constraints"
)

func TestNumberConstraints(t *testing.T) {
	// 15 can only be a day, never a month
	types := constraints.PossibleTypesForNumber(15, 2)
	assert.True(t, types.Contains(constraints.Day))
	assert.False(t, types.Contains(constraints.DayOrMonth))

	// 5 is ambiguous
	types = constraints.PossibleTypesForNumber(5, 2)
	assert.True(t, types.Contains(constraints.DayOrMonth))

	// 45 can be minute or second but not day
	types = constraints.PossibleTypesForNumber(45, 2)
	assert.True(t, types.Contains(constraints.Minute))
	assert.True(t, types.Contains(constraints.Second))
	assert.False(t, types.Contains(constraints.Day))
}

func TestYearDetection(t *testing.T) {
	types := constraints.PossibleTypesForNumber(2025, 4)
	assert.True(t, types.Contains(constraints.Year4))

	// Out of the plausible year range
	types = constraints.PossibleTypesForNumber(800, 4)
	assert.True(t, types.Contains(constraints.Unknown))

	// 2-digit year candidacy requires the padded form
	types = constraints.PossibleTypesForNumber(7, 1)
	assert.False(t, types.Contains(constraints.Year2))
	types = constraints.PossibleTypesForNumber(7, 2)
	assert.True(t, types.Contains(constraints.Year2))
}

func TestSubsecondDetection(t *testing.T) {
	types := constraints.PossibleTypesForNumber(123, 3)
	assert.True(t, types.Contains(constraints.Subsecond))
	types = constraints.PossibleTypesForNumber(123456, 6)
	assert.True(t, types.Contains(constraints.Subsecond))
	// 5-digit runs are not date components
	types = constraints.PossibleTypesForNumber(12345, 5)
	assert.True(t, types.Contains(constraints.Unknown))
}

func TestMonthNameDetection(t *testing.T) {
	assert.Equal(t, constraints.MonthNameShort, constraints.TypeForText("Jan"))
	assert.Equal(t, constraints.MonthName, constraints.TypeForText("January"))
	assert.Equal(t, constraints.MonthNameShort, constraints.TypeForText("JAN"))
	assert.Equal(t, constraints.MonthNameShort, constraints.TypeForText("May"))
}

func TestWeekdayAndMeridiemDetection(t *testing.T) {
	assert.Equal(t, constraints.WeekdayShort, constraints.TypeForText("Mon"))
	assert.Equal(t, constraints.WeekdayName, constraints.TypeForText("Saturday"))
	assert.Equal(t, constraints.AmPm, constraints.TypeForText("PM"))
	assert.Equal(t, constraints.AmPm, constraints.TypeForText("a.m."))
}

func TestTimezoneDetection(t *testing.T) {
	assert.Equal(t, constraints.TzName, constraints.TypeForText("UTC"))
	assert.Equal(t, constraints.TzName, constraints.TypeForText("mst"))
	assert.Equal(t, constraints.TzZ, constraints.TypeForText("Z"))
	assert.Equal(t, constraints.Unknown, constraints.TypeForText("XYZ"))
}

func TestStrptimeProjections(t *testing.T) {
	cases := map[constraints.TokenType]string{
		constraints.Year4:          "%Y",
		constraints.Year2:          "%y",
		constraints.Month:          "%m",
		constraints.Day:            "%d",
		constraints.MonthName:      "%B",
		constraints.MonthNameShort: "%b",
		constraints.WeekdayName:    "%A",
		constraints.WeekdayShort:   "%a",
		constraints.Hour24:         "%H",
		constraints.Hour12:         "%I",
		constraints.Minute:         "%M",
		constraints.Second:         "%S",
		constraints.Subsecond:      "%f",
		constraints.AmPm:           "%p",
		constraints.TzOffset:       "%z",
		constraints.TzName:         "%Z",
	}
	for tt, want := range cases {
		assert.Equal(t, want, tt.Strptime(), tt.String())
	}
}

func TestRoleNames(t *testing.T) {
	assert.Equal(t, "Year4", constraints.Year4.String())
	assert.Equal(t, "MonthNameLong", constraints.MonthName.String())
	assert.Equal(t, "Microsecond", constraints.Subsecond.String())
	assert.Equal(t, "Literal('/')", constraints.Separator('/').String())
}

func TestSeparatorChars(t *testing.T) {
	for _, c := range "/-.: ,_" {
		assert.True(t, constraints.IsSeparatorChar(c), string(c))
	}
	// T is handled by the tokenizer, not the separator set
	assert.False(t, constraints.IsSeparatorChar('T'))
	assert.False(t, constraints.IsSeparatorChar('5'))
}
