package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount reports a numeric token that cannot be a plausible
// amount (negative, or unparseable after separator handling). Callers
// surface it as a clarification question, never as a hard failure.
var ErrInvalidAmount = errors.New("invalid amount")

var amountPattern = regexp.MustCompile(`-?\d+(?:[.,]\d+)*`)

// FindAmount locates the first numeric token in text and parses it as a
// monetary amount. The boolean is false when text carries no numeric
// token at all.
//
// Separator policy (deterministic, locale-tolerant):
//   - both "." and "," present: the kind that appears last is the
//     decimal separator, the other kind is thousands (1.234,56 and
//     1,234.56 both parse as 1234.56);
//   - a single kind appearing once is the decimal separator (50,5 and
//     50.5 both parse as 50.5);
//   - a single kind appearing more than once groups thousands
//     (1.234.567 parses as 1234567).
//
// Negative tokens are rejected with ErrInvalidAmount rather than being
// coerced into an expense.
func FindAmount(text string) (decimal.Decimal, bool, error) {
	token := amountPattern.FindString(Normalize(text))
	if token == "" {
		return decimal.Zero, false, nil
	}

	if strings.HasPrefix(token, "-") {
		return decimal.Zero, true, fmt.Errorf("%w: negative token %q", ErrInvalidAmount, token)
	}

	canonical := canonicalizeSeparators(token)
	amount, err := decimal.NewFromString(canonical)
	if err != nil {
		return decimal.Zero, true, fmt.Errorf("%w: token %q", ErrInvalidAmount, token)
	}
	if !amount.IsPositive() {
		return decimal.Zero, true, fmt.Errorf("%w: non-positive token %q", ErrInvalidAmount, token)
	}
	return amount, true, nil
}

// ContainsAmount reports whether text carries a numeric token, parseable
// or not. The classifier uses presence alone; parsing happens later.
func ContainsAmount(text string) bool {
	return amountPattern.MatchString(Normalize(text))
}

// canonicalizeSeparators rewrites a numeric token into decimal.NewFromString
// form: no thousands separators, "." as the decimal point.
func canonicalizeSeparators(token string) string {
	lastDot := strings.LastIndex(token, ".")
	lastComma := strings.LastIndex(token, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			token = strings.ReplaceAll(token, ".", "")
			token = strings.Replace(token, ",", ".", 1)
		} else {
			token = strings.ReplaceAll(token, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(token, ",") > 1 {
			token = strings.ReplaceAll(token, ",", "")
		} else {
			token = strings.Replace(token, ",", ".", 1)
		}
	case lastDot >= 0:
		if strings.Count(token, ".") > 1 {
			token = strings.ReplaceAll(token, ".", "")
		}
	}
	return token
}
