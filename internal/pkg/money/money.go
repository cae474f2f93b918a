// Package money converts monetary inputs crossing into the cost engine.
//
// Inputs come from form fields ("7,12"), JSON numbers and programmatic callers,
// so every amount is normalised to a decimal.Decimal here, rounded to Places so
// that an amount reads back from storage exactly as it went in. Coerce never
// fails; Parse is the strict variant for values that must be present and numeric.
package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places kept for derived cost figures.
const Places int32 = 6

var (
	ErrEmpty       = errors.New("amount is empty")
	ErrNotANumber  = errors.New("amount is not a number")
	ErrUnsupported = errors.New("amount type is not supported")
)

// Coerce returns v as a decimal, or zero when v is nil, empty or unparseable.
func Coerce(v any) decimal.Decimal {
	return CoerceOr(v, decimal.Zero)
}

// CoerceOr is Coerce with a caller supplied default.
func CoerceOr(v any, def decimal.Decimal) decimal.Decimal {
	d, err := Parse(v)
	if err != nil {
		return def
	}
	return d
}

// Parse converts v to a decimal rounded to Places. Strings may use either '.'
// or ',' as the decimal separator and may carry surrounding whitespace.
func Parse(v any) (decimal.Decimal, error) {
	d, err := parse(v)
	if err != nil {
		return decimal.Zero, err
	}
	return Round(d), nil
}

func parse(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, ErrEmpty
	case decimal.Decimal:
		return x, nil
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, ErrEmpty
		}
		return *x, nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt32(x), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case json.Number:
		return parseString(x.String())
	case string:
		return parseString(x)
	case *string:
		if x == nil {
			return decimal.Zero, ErrEmpty
		}
		return parseString(*x)
	default:
		return decimal.Zero, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// Round rounds d to Places decimal places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

func fromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, ErrNotANumber
	}
	return decimal.NewFromFloat(f), nil
}

func parseString(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrEmpty
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return d, nil
}
