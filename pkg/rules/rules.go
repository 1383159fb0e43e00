/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rules.go
Description: Pattern rewrite rules for date disambiguation. Applied after consensus
voting to handle cases voting alone cannot settle, such as single-example inference
and residual duplicate day-or-month slots.
*/

package rules

import "github.com/kleascm/akaylee-dateinfer/pkg/constraints"

// Apply runs the rewrite rules over a resolved sequence, most specific
// first: the ISO year hint must claim its pair before the generic duplicate
// fallback does.
func Apply(tokens []constraints.TokenType) {
	ruleMonthNameAdjacency(tokens)
	ruleYearPositionHints(tokens)
	ruleDuplicateDayOrMonth(tokens)
	ruleMonthMonthSequence(tokens)
	ruleTimeSequence(tokens)
}

// nextComponent returns the index of the first non-separator position at or
// after start, or -1
func nextComponent(tokens []constraints.TokenType, start int) int {
	for i := start; i < len(tokens); i++ {
		if !tokens[i].IsSeparator() {
			return i
		}
	}
	return -1
}

// prevComponent returns the index of the last non-separator position at or
// before start, or -1
func prevComponent(tokens []constraints.TokenType, start int) int {
	for i := start; i >= 0; i-- {
		if !tokens[i].IsSeparator() {
			return i
		}
	}
	return -1
}

// ruleMonthNameAdjacency: a number adjacent to a month name is the day.
//
// Pattern: MonthName number -> MonthName Day
// Pattern: number MonthName -> Day MonthName
func ruleMonthNameAdjacency(tokens []constraints.TokenType) {
	for i, t := range tokens {
		if t != constraints.MonthName && t != constraints.MonthNameShort {
			continue
		}
		if left := prevComponent(tokens, i-1); left >= 0 && tokens[left] == constraints.DayOrMonth {
			tokens[left] = constraints.Day
		}
		if right := nextComponent(tokens, i+1); right >= 0 && tokens[right] == constraints.DayOrMonth {
			tokens[right] = constraints.Day
		}
	}
}

// ruleDuplicateDayOrMonth: when exactly two ambiguous slots remain, the
// first is the day and the second the month. Consensus with the day-first
// preference normally settles this already; this is the fallback.
func ruleDuplicateDayOrMonth(tokens []constraints.TokenType) {
	var ambiguous []int
	for i, t := range tokens {
		if t == constraints.DayOrMonth {
			ambiguous = append(ambiguous, i)
		}
	}
	if len(ambiguous) == 2 {
		tokens[ambiguous[0]] = constraints.Day
		tokens[ambiguous[1]] = constraints.Month
	}
}

// ruleMonthMonthSequence: two month slots in a row cannot both be months;
// the second becomes the day.
func ruleMonthMonthSequence(tokens []constraints.TokenType) {
	for i, t := range tokens {
		if t != constraints.Month {
			continue
		}
		if next := nextComponent(tokens, i+1); next >= 0 && tokens[next] == constraints.Month {
			tokens[next] = constraints.Day
		}
	}
}

// ruleYearPositionHints: a leading 4-digit year marks ISO ordering, so the
// two ambiguous slots after it are month then day.
func ruleYearPositionHints(tokens []constraints.TokenType) {
	yearPos := -1
	for i, t := range tokens {
		if t == constraints.Year4 {
			yearPos = i
			break
		}
	}
	if yearPos != 0 {
		return
	}

	var ambiguous []int
	for i, t := range tokens {
		if t == constraints.DayOrMonth {
			ambiguous = append(ambiguous, i)
		}
	}
	if len(ambiguous) == 2 {
		tokens[ambiguous[0]] = constraints.Month
		tokens[ambiguous[1]] = constraints.Day
	}
}

// ruleTimeSequence: colon-joined numbers form hour:minute[:second]. An hour
// slot that consensus already resolved as 12-hour keeps that resolution.
func ruleTimeSequence(tokens []constraints.TokenType) {
	couldBeHour := func(t constraints.TokenType) bool {
		return t == constraints.Hour24 || t == constraints.Hour12 ||
			t == constraints.DayOrMonth || t == constraints.Unknown
	}
	couldBeMinSec := func(t constraints.TokenType) bool {
		return t == constraints.Minute || t == constraints.Second ||
			t == constraints.DayOrMonth || t == constraints.Unknown
	}

	for i := 0; i+2 < len(tokens); i++ {
		if tokens[i+1] != constraints.Separator(':') {
			continue
		}
		if !couldBeHour(tokens[i]) || !couldBeMinSec(tokens[i+2]) {
			continue
		}
		if tokens[i] != constraints.Hour12 {
			tokens[i] = constraints.Hour24
		}
		tokens[i+2] = constraints.Minute

		if i+4 < len(tokens) && tokens[i+3] == constraints.Separator(':') {
			tokens[i+4] = constraints.Second
			i += 4 - 1 // loop increment lands on the seconds slot
		}
	}
}
