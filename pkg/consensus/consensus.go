/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: consensus.go
Description: Consensus-based resolution of ambiguous date tokens. Tallies role votes per
positional slot across all sampled examples, locks positions forced by hard evidence
(values > 12, name tables, time sequences), and resolves the remaining day/month
ambiguity from cross-example context or the caller's day-first preference.
*/

package consensus

import (
	"errors"

	"github.com/kleascm/akaylee-dateinfer/pkg/constraints"
	"github.com/kleascm/akaylee-dateinfer/pkg/tokenizer"
)

// ErrNoExamples is returned when resolution is invoked on an empty bucket
var ErrNoExamples = errors.New("no tokenized examples to resolve")

// positionConstraint accumulates hard per-position evidence across examples
type positionConstraint struct {
	mustBeDay bool // some example holds a value only a day can explain
	separator rune // separator literal, 0 for component positions
}

// Resolve determines the token type for every position of the winning
// signature by consensus voting, and returns the resolved sequence together
// with a raw confidence: the mean fraction of examples supporting each
// resolved component position.
func Resolve(tokenized [][]tokenizer.Token, preferDayfirst bool) ([]constraints.TokenType, float64, error) {
	if len(tokenized) == 0 {
		return nil, 0, ErrNoExamples
	}

	numPositions := len(tokenized[0])
	numExamples := len(tokenized)

	// Collect votes and hard constraints from every example
	votes := make([]map[constraints.TokenType]int, numPositions)
	for i := range votes {
		votes[i] = make(map[constraints.TokenType]int, 8)
	}
	cons := make([]positionConstraint, numPositions)

	for _, tokens := range tokenized {
		for pos := range tokens {
			token := &tokens[pos]
			if token.MustBeDay() {
				cons[pos].mustBeDay = true
			}
			for _, tt := range token.PossibleTypes {
				votes[pos][tt]++
			}
			if c := token.SeparatorChar(); c != 0 {
				cons[pos].separator = c
			}
		}
	}

	hasKind := func(pos int, k constraints.Kind) bool {
		for tt := range votes[pos] {
			if tt.Kind == k {
				return true
			}
		}
		return false
	}

	// Detect time sequences: component positions joined by ':' (always time)
	// or by '.' when a space or 'T' boundary precedes (date/time split).
	isTimePosition := make([]bool, numPositions)
	for i := 0; i < numPositions; {
		if i+2 < numPositions {
			sep := cons[i+1].separator
			if sep == ':' || sep == '.' {
				timePositions := []int{i, i + 2}
				j := i + 2
				for j+2 < numPositions {
					if cons[j+1].separator == sep {
						timePositions = append(timePositions, j+2)
						j += 2
					} else {
						break
					}
				}

				afterSpace := false
				for p := 0; p < i; p++ {
					if cons[p].separator == ' ' {
						afterSpace = true
						break
					}
				}
				afterT := i > 0 && cons[i-1].separator == 'T'

				if sep == ':' || afterSpace || afterT {
					for _, p := range timePositions {
						isTimePosition[p] = true
					}
					i = timePositions[len(timePositions)-1] + 1
					continue
				}
			}
		}
		i++
	}

	// The hour slot is 12-hour iff a meridiem token is part of the signature
	hasAmPm := false
	for pos := 0; pos < numPositions; pos++ {
		if hasKind(pos, constraints.KindAmPm) {
			hasAmPm = true
			break
		}
	}

	// Collect pure date-numeric positions: no separator, no time slot,
	// no name/timezone/meridiem evidence
	var numericPositions []int
	for pos := 0; pos < numPositions; pos++ {
		if cons[pos].separator != 0 || isTimePosition[pos] {
			continue
		}
		if hasKind(pos, constraints.KindMonthName) || hasKind(pos, constraints.KindMonthNameShort) ||
			hasKind(pos, constraints.KindWeekdayName) || hasKind(pos, constraints.KindWeekdayShort) ||
			hasKind(pos, constraints.KindTzName) || hasKind(pos, constraints.KindTzZ) ||
			hasKind(pos, constraints.KindTzOffset) || hasKind(pos, constraints.KindAmPm) {
			continue
		}
		numericPositions = append(numericPositions, pos)
	}

	hasMonthName := false
	hasYear4 := false
	for pos := 0; pos < numPositions; pos++ {
		if hasKind(pos, constraints.KindMonthName) || hasKind(pos, constraints.KindMonthNameShort) {
			hasMonthName = true
		}
		if hasKind(pos, constraints.KindYear4) {
			hasYear4 = true
		}
	}

	// A trailing 2-digit year needs day+month+year to be plausible: three
	// date numerics, or two when a month name supplies the month slot.
	likelyYear2Pos := -1
	minNumericForYear := 3
	if hasMonthName {
		minNumericForYear = 2
	}
	if len(numericPositions) >= minNumericForYear {
		last := numericPositions[len(numericPositions)-1]
		if hasKind(last, constraints.KindYear2) && !hasYear4 {
			likelyYear2Pos = last
		}
	}

	// First pass: lock every position forced by hard evidence
	resolved := make([]constraints.TokenType, 0, numPositions)
	dayAssigned := -1
	monthAssigned := -1
	timeComponentIndex := 0

	for pos := 0; pos < numPositions; pos++ {
		if c := cons[pos].separator; c != 0 {
			resolved = append(resolved, constraints.Separator(c))
			continue
		}

		if isTimePosition[pos] {
			var tt constraints.TokenType
			switch timeComponentIndex {
			case 0:
				if hasAmPm {
					tt = constraints.Hour12
				} else {
					tt = constraints.Hour24
				}
			case 1:
				tt = constraints.Minute
			default:
				tt = constraints.Second
			}
			resolved = append(resolved, tt)
			timeComponentIndex++
			continue
		}

		if pos == likelyYear2Pos {
			resolved = append(resolved, constraints.Year2)
			continue
		}

		if cons[pos].mustBeDay {
			resolved = append(resolved, constraints.Day)
			dayAssigned = pos
			continue
		}

		switch {
		case hasKind(pos, constraints.KindMonthName):
			resolved = append(resolved, constraints.MonthName)
			monthAssigned = pos
		case hasKind(pos, constraints.KindMonthNameShort):
			resolved = append(resolved, constraints.MonthNameShort)
			monthAssigned = pos
		case hasKind(pos, constraints.KindWeekdayName):
			resolved = append(resolved, constraints.WeekdayName)
		case hasKind(pos, constraints.KindWeekdayShort):
			resolved = append(resolved, constraints.WeekdayShort)
		case hasKind(pos, constraints.KindTzName):
			resolved = append(resolved, constraints.TzName)
		case hasKind(pos, constraints.KindTzZ):
			resolved = append(resolved, constraints.TzZ)
		case hasKind(pos, constraints.KindTzOffset):
			resolved = append(resolved, constraints.TzOffset)
		case hasKind(pos, constraints.KindAmPm):
			resolved = append(resolved, constraints.AmPm)
		case hasKind(pos, constraints.KindYear4):
			resolved = append(resolved, constraints.Year4)
		case hasKind(pos, constraints.KindSubsecond):
			resolved = append(resolved, constraints.Subsecond)
		case hasKind(pos, constraints.KindYear2) && !hasKind(pos, constraints.KindDayOrMonth):
			resolved = append(resolved, constraints.Year2)
		default:
			// Pending for the second pass
			resolved = append(resolved, constraints.Unknown)
		}
	}

	// Second pass: resolve the remaining ambiguity from context or preference
	for pos := 0; pos < numPositions; pos++ {
		if resolved[pos] != constraints.Unknown || cons[pos].separator != 0 {
			continue
		}

		if hasKind(pos, constraints.KindDayOrMonth) || hasKind(pos, constraints.KindDay) {
			// A month assigned elsewhere forces this slot to day, and vice versa
			if monthAssigned >= 0 && dayAssigned < 0 {
				resolved[pos] = constraints.Day
				dayAssigned = pos
				continue
			}
			if dayAssigned >= 0 && monthAssigned < 0 {
				resolved[pos] = constraints.Month
				monthAssigned = pos
				continue
			}

			if dayAssigned < 0 && monthAssigned < 0 {
				var otherAmbiguous []int
				for p := 0; p < numPositions; p++ {
					if p == pos || resolved[p] != constraints.Unknown || cons[p].separator != 0 {
						continue
					}
					if hasKind(p, constraints.KindDayOrMonth) || hasKind(p, constraints.KindDay) {
						otherAmbiguous = append(otherAmbiguous, p)
					}
				}

				// A leading 4-digit year marks ISO ordering: the pair after
				// it reads month then day, whatever the caller prefers.
				year4First := len(resolved) > 0 && resolved[0] == constraints.Year4

				if preferDayfirst && !year4First {
					resolved[pos] = constraints.Day
					dayAssigned = pos
					for _, other := range otherAmbiguous {
						if resolved[other] == constraints.Unknown {
							resolved[other] = constraints.Month
							monthAssigned = other
							break
						}
					}
				} else {
					resolved[pos] = constraints.Month
					monthAssigned = pos
					for _, other := range otherAmbiguous {
						if resolved[other] == constraints.Unknown {
							resolved[other] = constraints.Day
							dayAssigned = other
							break
						}
					}
				}
				continue
			}
		}

		switch {
		case hasKind(pos, constraints.KindHour24):
			resolved[pos] = constraints.Hour24
		case hasKind(pos, constraints.KindMinute):
			resolved[pos] = constraints.Minute
		case hasKind(pos, constraints.KindSecond):
			resolved[pos] = constraints.Second
		}
	}

	// Confidence: mean per-position support among the resolved components
	totalConfidence := 0.0
	confidenceCount := 0
	for pos := 0; pos < numPositions; pos++ {
		tt := resolved[pos]
		if tt.IsSeparator() || tt == constraints.Unknown {
			continue
		}

		supporting := votes[pos][tt]
		if tt == constraints.Day || tt == constraints.Month {
			// DayOrMonth votes back either resolution; cap to avoid
			// counting an example twice
			supporting += votes[pos][constraints.DayOrMonth]
			if supporting > numExamples {
				supporting = numExamples
			}
		}
		totalConfidence += float64(supporting) / float64(numExamples)
		confidenceCount++
	}

	overall := 0.0
	if confidenceCount > 0 {
		overall = totalConfidence / float64(confidenceCount)
	}

	return resolved, overall, nil
}
