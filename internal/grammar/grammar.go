// Package grammar holds the ABNF rules of the ESRI ASCII grid header values.
package grammar

import (
	"github.com/ghettovoice/abnf"
)

func init() {
	abnf.EnableNodeCache(1024)
}

var digit = abnf.Range("DIGIT", []byte("0"), []byte("9"))

// numeral = [ "+" / "-" ] 1*DIGIT [ "." *DIGIT ]
var numeral = abnf.Concat(
	"numeral",
	abnf.Optional("[sign]", abnf.Alt(
		"sign",
		abnf.Literal(`"+"`, []byte("+")),
		abnf.Literal(`"-"`, []byte("-")),
	)),
	abnf.Repeat1Inf("1*DIGIT", digit),
	abnf.Optional("[fraction]", abnf.Concat(
		"fraction",
		abnf.Literal(`"."`, []byte(".")),
		abnf.Repeat0Inf("*DIGIT", digit),
	)),
)

// IsNumeral reports whether s as a whole is a signed decimal numeral
// with an optional fraction, e.g. "-9999", "+1.", "0.000289614900".
// Exponents and a missing integer part (".5") are rejected.
func IsNumeral[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := numeral([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
