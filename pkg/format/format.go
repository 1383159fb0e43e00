/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: format.go
Description: strptime format assembly. Walks a resolved token sequence in order and
emits each role's directive or the preserved separator literal, producing the final
format string returned to callers.
*/

package format

import (
	"strings"

	"github.com/kleascm/akaylee-dateinfer/pkg/constraints"
	"github.com/kleascm/akaylee-dateinfer/pkg/tokenizer"
)

// ToStrptime converts resolved tokens to a strptime format string. Separator
// literals are preserved byte-exact ('%' escapes to '%%'); positions that
// stayed unknown keep their original text as a literal.
func ToStrptime(tokens []tokenizer.Token, resolved []constraints.TokenType) string {
	var b strings.Builder

	for i, tt := range resolved {
		switch {
		case tt.IsSeparator():
			if tt.Sep == '%' {
				b.WriteString("%%")
			} else {
				b.WriteRune(tt.Sep)
			}
		case tt == constraints.Unknown:
			if i < len(tokens) {
				b.WriteString(tokens[i].Value)
			}
		default:
			b.WriteString(tt.Strptime())
		}
	}

	return b.String()
}
