/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: constraints.go
Description: Token type model and constraint logic for date components. Defines the closed
set of semantic roles a token can play, the strptime projection for each role, and the
value/shape rules that determine which roles a numeric or text token may legally occupy.
*/

package constraints

import "strings"

// Kind identifies the semantic role of a token
type Kind uint8

const (
	KindUnknown Kind = iota

	// Date components
	KindYear4          // 2025 (4 digits, 1900-2100 range)
	KindYear2          // 25 (2 digits)
	KindMonth          // 01-12
	KindDay            // 01-31
	KindMonthName      // January, February, etc.
	KindMonthNameShort // Jan, Feb, etc.
	KindWeekdayName    // Monday, Tuesday, etc.
	KindWeekdayShort   // Mon, Tue, etc.

	// Time components
	KindHour24    // 00-23
	KindHour12    // 01-12
	KindMinute    // 00-59
	KindSecond    // 00-59
	KindSubsecond // fractional seconds (3 or 6 digit runs)
	KindAmPm      // AM, PM

	// Timezone
	KindTzOffset // +05:30, -0800
	KindTzName   // UTC, EST, IST
	KindTzZ      // Z (UTC indicator)

	// Separators
	KindSeparator // /, -, ., :, space, T, comma

	// Ambiguous (to be resolved by consensus)
	KindDayOrMonth // Could be day or month (value 1-12)
)

// TokenType is a tagged role value. Only separator roles carry a payload:
// the literal separator character. TokenType is comparable, so it can be
// used directly as a map key for vote tallies.
type TokenType struct {
	Kind Kind
	Sep  rune // separator literal, set only when Kind == KindSeparator
}

// Role singletons for every payload-free kind. Using shared values keeps
// call sites close to an enum: constraints.Day, constraints.Year4, etc.
var (
	Unknown        = TokenType{Kind: KindUnknown}
	Year4          = TokenType{Kind: KindYear4}
	Year2          = TokenType{Kind: KindYear2}
	Month          = TokenType{Kind: KindMonth}
	Day            = TokenType{Kind: KindDay}
	MonthName      = TokenType{Kind: KindMonthName}
	MonthNameShort = TokenType{Kind: KindMonthNameShort}
	WeekdayName    = TokenType{Kind: KindWeekdayName}
	WeekdayShort   = TokenType{Kind: KindWeekdayShort}
	Hour24         = TokenType{Kind: KindHour24}
	Hour12         = TokenType{Kind: KindHour12}
	Minute         = TokenType{Kind: KindMinute}
	Second         = TokenType{Kind: KindSecond}
	Subsecond      = TokenType{Kind: KindSubsecond}
	AmPm           = TokenType{Kind: KindAmPm}
	TzOffset       = TokenType{Kind: KindTzOffset}
	TzName         = TokenType{Kind: KindTzName}
	TzZ            = TokenType{Kind: KindTzZ}
	DayOrMonth     = TokenType{Kind: KindDayOrMonth}
)

// Separator constructs the separator role carrying the literal character
func Separator(c rune) TokenType {
	return TokenType{Kind: KindSeparator, Sep: c}
}

// IsSeparator reports whether this role is a separator
func (t TokenType) IsSeparator() bool {
	return t.Kind == KindSeparator
}

// IsDateComponent reports whether this role is a real date/time component
// (not a separator and not unknown)
func (t TokenType) IsDateComponent() bool {
	return t.Kind != KindSeparator && t.Kind != KindUnknown
}

// Strptime returns the strptime format specifier for this token type.
// Separators are handled by the assembler, which emits the literal bytes.
func (t TokenType) Strptime() string {
	switch t.Kind {
	case KindYear4:
		return "%Y"
	case KindYear2:
		return "%y"
	case KindMonth:
		return "%m"
	case KindDay:
		return "%d"
	case KindMonthName:
		return "%B"
	case KindMonthNameShort:
		return "%b"
	case KindWeekdayName:
		return "%A"
	case KindWeekdayShort:
		return "%a"
	case KindHour24:
		return "%H"
	case KindHour12:
		return "%I"
	case KindMinute:
		return "%M"
	case KindSecond:
		return "%S"
	case KindSubsecond:
		return "%f"
	case KindAmPm:
		return "%p"
	case KindTzOffset:
		return "%z"
	case KindTzName:
		return "%Z"
	case KindTzZ:
		return "Z"
	case KindDayOrMonth:
		return "%d" // default to day
	default:
		return ""
	}
}

// String returns the role name used in results and reports.
// Separators render as Literal('<char>') to preserve the exact byte.
func (t TokenType) String() string {
	switch t.Kind {
	case KindYear4:
		return "Year4"
	case KindYear2:
		return "Year2"
	case KindMonth:
		return "Month"
	case KindDay:
		return "Day"
	case KindMonthName:
		return "MonthNameLong"
	case KindMonthNameShort:
		return "MonthNameShort"
	case KindWeekdayName:
		return "WeekdayLong"
	case KindWeekdayShort:
		return "WeekdayShort"
	case KindHour24:
		return "Hour24"
	case KindHour12:
		return "Hour12"
	case KindMinute:
		return "Minute"
	case KindSecond:
		return "Second"
	case KindSubsecond:
		return "Microsecond"
	case KindAmPm:
		return "AmPm"
	case KindTzOffset:
		return "TzOffset"
	case KindTzName:
		return "Timezone"
	case KindTzZ:
		return "TzZ"
	case KindSeparator:
		return "Literal('" + string(t.Sep) + "')"
	case KindDayOrMonth:
		return "DayOrMonth"
	default:
		return "Unknown"
	}
}

// TypeSet holds the candidate roles for one token. Candidate sets are tiny
// (at most seven roles), so a plain slice beats a map for both allocation and
// iteration cost.
type TypeSet []TokenType

// Contains reports whether the set holds the given role
func (s TypeSet) Contains(t TokenType) bool {
	for _, v := range s {
		if v == t {
			return true
		}
	}
	return false
}

// ContainsKind reports whether the set holds any role of the given kind
func (s TypeSet) ContainsKind(k Kind) bool {
	for _, v := range s {
		if v.Kind == k {
			return true
		}
	}
	return false
}

// MonthNamesShort holds abbreviated English month names (lowercase)
var MonthNamesShort = [12]string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// MonthNamesFull holds full English month names (lowercase)
var MonthNamesFull = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// WeekdayNamesShort holds abbreviated English weekday names (lowercase)
var WeekdayNamesShort = [7]string{
	"mon", "tue", "wed", "thu", "fri", "sat", "sun",
}

// WeekdayNamesFull holds full English weekday names (lowercase)
var WeekdayNamesFull = [7]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// AmPmIndicators holds the recognized meridiem spellings (lowercase)
var AmPmIndicators = [4]string{"am", "pm", "a.m.", "p.m."}

// timezone abbreviation allow-list; widened as real datasets demand
var tzNames = map[string]struct{}{
	"utc": {}, "gmt": {}, "est": {}, "pst": {}, "cst": {},
	"mst": {}, "ist": {}, "cet": {}, "wet": {}, "eet": {},
}

// PossibleTypesForNumber determines the candidate roles for a numeric token
// given its parsed value and original digit count. Leading zeros matter:
// a 2-digit 03 keeps Year2 candidacy that a bare 3 does not.
func PossibleTypesForNumber(value uint32, numDigits int) TypeSet {
	types := make(TypeSet, 0, 6)

	switch numDigits {
	case 1, 2:
		// Could be day, month, hour, minute, second, or 2-digit year
		if value >= 1 && value <= 12 {
			types = append(types, DayOrMonth, Hour12)
		}
		if value >= 1 && value <= 31 {
			types = append(types, Day)
		}
		if value <= 23 {
			types = append(types, Hour24)
		}
		if value <= 59 {
			types = append(types, Minute, Second)
		}
		if numDigits == 2 && value <= 99 {
			types = append(types, Year2)
		}
	case 4:
		// Almost always a year
		if value >= 1900 && value <= 2100 {
			types = append(types, Year4)
		}
	case 3, 6:
		// Millisecond or microsecond fraction after a seconds field
		if value < 1_000_000 {
			types = append(types, Subsecond)
		}
	}

	if len(types) == 0 {
		types = append(types, Unknown)
	}

	return types
}

// TypeForText determines the role of a text token via the fixed English
// name tables. Unrecognized text yields Unknown.
func TypeForText(text string) TokenType {
	lower := strings.ToLower(text)

	for _, m := range MonthNamesShort {
		if m == lower {
			if len(text) == 3 {
				return MonthNameShort
			}
			break
		}
	}

	for _, m := range MonthNamesFull {
		if m == lower {
			return MonthName
		}
	}

	for _, w := range WeekdayNamesShort {
		if w == lower {
			return WeekdayShort
		}
	}

	for _, w := range WeekdayNamesFull {
		if w == lower {
			return WeekdayName
		}
	}

	for _, a := range AmPmIndicators {
		if a == lower {
			return AmPm
		}
	}

	if lower == "z" {
		return TzZ
	}

	if _, ok := tzNames[lower]; ok {
		return TzName
	}

	return Unknown
}

// IsSeparatorChar reports whether a character is a common date/time separator.
// The letter T is NOT in this set: the tokenizer promotes a standalone T run
// to a separator (ISO datetime join) while leaving Tue/Thu alpha runs intact.
func IsSeparatorChar(c rune) bool {
	switch c {
	case '/', '-', '.', ':', ' ', ',', '_':
		return true
	}
	return false
}
