package moneywords

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

var errAmountOverflow = errors.New("amount overflow")

// Amount type represents a monetary amount.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	curr  Currency        // ISO 4217 currency
	value decimal.Decimal // monetary value
}

// newAmountUnsafe creates a new amount without padding it to the scale of
// the currency.
func newAmountUnsafe(c Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: d}
}

// newAmountSafe creates a new amount and checks the scale.
func newAmountSafe(c Currency, d decimal.Decimal) (Amount, error) {
	if d.Scale() < c.Scale() {
		d = d.Pad(c.Scale())
		if d.Scale() < c.Scale() {
			return Amount{}, fmt.Errorf("padding amount: %w", errAmountOverflow)
		}
	}
	return newAmountUnsafe(c, d), nil
}

// NewAmountFromDecimal returns an amount with the specified currency and value.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right.
//
// NewAmountFromDecimal returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Currency.Scale]) digits.
func NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	return newAmountSafe(curr, amount)
}

// NewAmountFromFloat64 converts a float to a (possibly rounded) amount.
//
// NewAmountFromFloat64 returns an error if:
//   - the currency code is not valid;
//   - the float is a special value (NaN or Inf);
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Scale]) digits.
func NewAmountFromFloat64(curr string, amount float64) (Amount, error) {
	// Float
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Amount{}, fmt.Errorf("converting float: special value %v: %w", amount, ErrInvalidArgument)
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	// Amount
	a, err := ParseAmount(curr, s)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return a, nil
}

// ParseAmount converts currency and decimal strings to a (possibly rounded) amount.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right.
// See also constructors [ParseCurr] and [decimal.Parse].
func ParseAmount(curr, amount string) (Amount, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Decimal
	d, err := decimal.ParseExact(amount, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	// Amount
	return newAmountSafe(c, d)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.Decimal().IsNeg()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Decimal().IsZero()
}

// Quo returns the (possibly rounded) quotient of amount a and decimal e.
// See also method [Amount.RoundToCurr].
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Quo(e decimal.Decimal) (Amount, error) {
	c, d := a.Curr(), a.Decimal()
	d, err := d.QuoExact(e, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return newAmountSafe(c, d)
}

// Round returns an amount rounded to the specified number of digits after
// the decimal point using [rounding half to even] (banker's rounding).
// See also method [Amount.RoundToCurr].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) Round(scale int) Amount {
	c, d := a.Curr(), a.Decimal()
	d = d.Round(scale).Pad(c.Scale())
	return newAmountUnsafe(c, d)
}

// RoundToCurr returns an amount rounded to the scale of its currency
// using [rounding half to even] (banker's rounding).
// See also method [Amount.Round].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) RoundToCurr() Amount {
	return a.Round(a.Curr().Scale())
}

// Words returns the English words for the amount, using the unit names and
// the scale of its currency:
//
//	GBP 1234.50 → One Thousand Two Hundred and Thirty Four Pounds and Fifty Pence
//	JPY 500     → Five Hundred Yen
//	OMR 1.250   → One Rials and Two Hundred and Fifty Baisa
//
// The amount is first rounded to the scale of its currency using
// rounding half to even, and the minor unit clause is omitted when the
// rounded amount has no fractional part.
// See also function [CurrencyToWords].
//
// Words returns an error if:
//   - the amount is negative ([ErrInvalidArgument]);
//   - the integer part of the rounded amount is greater than [MaxInt] ([ErrOutOfRange]).
func (a Amount) Words() (string, error) {
	c := a.Curr()
	s, err := spellDecimal(a.Decimal(), c.Scale(), c.MajorUnit(), c.MinorUnit())
	if err != nil {
		return "", fmt.Errorf("spelling [%v]: %w", a, err)
	}
	return s, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, such as "GBP 1234.50".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Curr().Code() + " " + a.Decimal().String()
}

// Text returns the amount the way it is printed in prose, prefixed with the
// symbol of its currency and rounded to the scale of its currency:
//
//	GBP 1234.5 → £1234.50
//	OMR 12     → OMR 12.000
func (a Amount) Text() string {
	c, d := a.Curr(), a.RoundToCurr().Decimal()
	if sym := c.Symbol(); sym != "" {
		return sym + d.String()
	}
	return c.Code() + " " + d.String()
}
