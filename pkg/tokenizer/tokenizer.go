/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tokenizer.go
Description: Tokenizer for date strings. Splits a single example into an ordered sequence
of numeric, text, timezone-offset, and separator tokens, and attaches the candidate role
set computed from each token's lexical shape and numeric value.
*/

package tokenizer

import (
	"fmt"

	"github.com/kleascm/akaylee-dateinfer/pkg/constraints"
)

// Token is one component extracted from a date string
type Token struct {
	Value         string               `json:"value"`          // The original string value
	Position      int                  `json:"position"`       // Byte offset in the original string
	PossibleTypes constraints.TypeSet  `json:"possible_types"` // Candidate roles from shape/value constraints
	NumericValue  *uint32              `json:"numeric_value"`  // Parsed value for numeric tokens
}

// separatorToken builds a separator token for a single character
func separatorToken(c rune, position int) Token {
	return Token{
		Value:         string(c),
		Position:      position,
		PossibleTypes: constraints.TypeSet{constraints.Separator(c)},
	}
}

// numericToken builds a numeric token, deriving candidate roles from the
// decimal value and the original digit count
func numericToken(value string, position int) Token {
	var parsed uint32
	overflow := len(value) > 9
	if !overflow {
		for i := 0; i < len(value); i++ {
			parsed = parsed*10 + uint32(value[i]-'0')
		}
	}

	t := Token{Value: value, Position: position}
	if overflow {
		t.PossibleTypes = constraints.TypeSet{constraints.Unknown}
	} else {
		v := parsed
		t.NumericValue = &v
		t.PossibleTypes = constraints.PossibleTypesForNumber(parsed, len(value))
	}
	return t
}

// textToken builds a text token classified via the English name tables
func textToken(value string, position int) Token {
	return Token{
		Value:         value,
		Position:      position,
		PossibleTypes: constraints.TypeSet{constraints.TypeForText(value)},
	}
}

// IsSeparator reports whether this token is a separator
func (t *Token) IsSeparator() bool {
	return t.PossibleTypes.ContainsKind(constraints.KindSeparator)
}

// SeparatorChar returns the separator literal, or 0 if not a separator
func (t *Token) SeparatorChar() rune {
	for _, p := range t.PossibleTypes {
		if p.Kind == constraints.KindSeparator {
			return p.Sep
		}
	}
	return 0
}

// CouldBeDay reports whether this token could occupy the day slot
func (t *Token) CouldBeDay() bool {
	return t.PossibleTypes.ContainsKind(constraints.KindDay) ||
		t.PossibleTypes.ContainsKind(constraints.KindDayOrMonth)
}

// CouldBeMonth reports whether this token could occupy a month slot
func (t *Token) CouldBeMonth() bool {
	return t.PossibleTypes.ContainsKind(constraints.KindMonth) ||
		t.PossibleTypes.ContainsKind(constraints.KindDayOrMonth) ||
		t.PossibleTypes.ContainsKind(constraints.KindMonthName) ||
		t.PossibleTypes.ContainsKind(constraints.KindMonthNameShort)
}

// MustBeDay reports whether this token can ONLY be a day (value > 12).
// These tokens are the disambiguating evidence consensus voting relies on.
func (t *Token) MustBeDay() bool {
	return t.PossibleTypes.ContainsKind(constraints.KindDay) &&
		!t.PossibleTypes.ContainsKind(constraints.KindDayOrMonth) &&
		!t.PossibleTypes.ContainsKind(constraints.KindMonth)
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Tokenize splits a date string into components. Runs of digits form one
// numeric token, runs of letters form one text token, and each separator
// character forms its own token with the literal preserved. A '+' followed
// by digits absorbs the digit/colon run as a timezone offset. A standalone
// single-letter T run becomes a separator (the ISO 8601 date/time join);
// a T inside a longer run such as Tue or Thu stays part of the text token.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	b := []byte(input)
	i := 0

	for i < len(b) {
		c := b[i]
		switch {
		case constraints.IsSeparatorChar(rune(c)):
			tokens = append(tokens, separatorToken(rune(c), i))
			i++

		case isASCIIDigit(c):
			start := i
			for i < len(b) && isASCIIDigit(b[i]) {
				i++
			}
			tokens = append(tokens, numericToken(input[start:i], start))

		case isASCIILetter(c):
			start := i
			for i < len(b) && isASCIILetter(b[i]) {
				i++
			}
			run := input[start:i]
			if run == "T" {
				tokens = append(tokens, separatorToken('T', start))
			} else {
				tokens = append(tokens, textToken(run, start))
			}

		case c == '+':
			// Could be a timezone offset like +05:30
			start := i
			i++
			if i < len(b) && isASCIIDigit(b[i]) {
				for i < len(b) && (isASCIIDigit(b[i]) || b[i] == ':') {
					i++
				}
				tokens = append(tokens, Token{
					Value:         input[start:i],
					Position:      start,
					PossibleTypes: constraints.TypeSet{constraints.TzOffset},
				})
			} else {
				// Standalone sign, treat as separator
				tokens = append(tokens, separatorToken('+', start))
			}

		default:
			// Skip unknown characters
			i++
		}
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("failed to tokenize date string: %q", input)
	}

	return tokens, nil
}

// Signature projects a tokenization onto its structural skeleton: token
// kinds plus the literal separator characters. Two examples share a
// signature iff their tokenizations agree pointwise on this projection.
func Signature(tokens []Token) string {
	sig := make([]byte, 0, len(tokens))
	for i := range tokens {
		t := &tokens[i]
		switch {
		case t.IsSeparator():
			sig = append(sig, byte(t.SeparatorChar()))
		case t.NumericValue != nil:
			sig = append(sig, 'N')
		case t.PossibleTypes.ContainsKind(constraints.KindTzOffset):
			sig = append(sig, 'O')
		default:
			sig = append(sig, 'A')
		}
	}
	return string(sig)
}
