package moneywords

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	// ErrInvalidArgument is returned for negative numbers and for special
	// float values (NaN and infinities).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned when the integer part exceeds [MaxInt].
	ErrOutOfRange = errors.New("out of range")
)

// MaxInt is the largest integer that can be spelled out.
// Larger numbers would need a billion tier, whose meaning differs between the
// short and the long scale, so they are rejected instead.
const MaxInt = 999_999_999

const (
	// DefaultMajorUnit is used by [CurrencyToWords] when no major unit is given.
	DefaultMajorUnit = "Pounds"
	// DefaultMinorUnit is used by [CurrencyToWords] when no minor unit is given.
	DefaultMinorUnit = "Pence"
)

var (
	onesWords  = [...]string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teensWords = [...]string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensWords  = [...]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// IntToWords returns the English words for n, for example
// 1234 becomes "One Thousand Two Hundred and Thirty Four".
// Words are capitalized and separated by single spaces, and "and" links the
// hundreds to the rest of a group.
//
// IntToWords returns an error if:
//   - n is negative ([ErrInvalidArgument]);
//   - n is greater than [MaxInt] ([ErrOutOfRange]).
func IntToWords(n int64) (string, error) {
	switch {
	case n < 0:
		return "", fmt.Errorf("spelling %v: negative number: %w", n, ErrInvalidArgument)
	case n > MaxInt:
		return "", fmt.Errorf("spelling %v: %w", n, ErrOutOfRange)
	case n == 0:
		return "Zero", nil
	}
	return spellInt(n), nil
}

// spellInt spells out n in the range [1, MaxInt].
func spellInt(n int64) string {
	words := make([]string, 0, 5)
	if m := n / 1_000_000; m > 0 {
		words = append(words, spellBelowThousand(m), "Million")
		n %= 1_000_000
	}
	if t := n / 1000; t > 0 {
		words = append(words, spellBelowThousand(t), "Thousand")
		n %= 1000
	}
	if n > 0 {
		words = append(words, spellBelowThousand(n))
	}
	return strings.Join(words, " ")
}

// spellBelowThousand spells out n in the range [1, 999].
func spellBelowThousand(n int64) string {
	switch {
	case n < 10:
		return onesWords[n]
	case n < 20:
		return teensWords[n-10]
	case n < 100:
		if n%10 == 0 {
			return tensWords[n/10]
		}
		return tensWords[n/10] + " " + onesWords[n%10]
	}
	s := onesWords[n/100] + " Hundred"
	if r := n % 100; r != 0 {
		s += " and " + spellBelowThousand(r)
	}
	return s
}

// CurrencyToWords returns the English words for a monetary amount given in
// major units, for example 1234.50 becomes
// "One Thousand Two Hundred and Thirty Four Pounds and Fifty Pence".
// Empty unit names are replaced with [DefaultMajorUnit] and [DefaultMinorUnit].
//
// The amount is rounded to 2 digits after the decimal point using
// [rounding half to even] (banker's rounding) before it is split into
// major and minor units, so 1.995 becomes "Two Pounds".
// The minor unit clause is omitted when the minor part is zero.
//
// CurrencyToWords returns an error if:
//   - d is negative ([ErrInvalidArgument]);
//   - the integer part of the rounded amount is greater than [MaxInt] ([ErrOutOfRange]).
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func CurrencyToWords(d decimal.Decimal, major, minor string) (string, error) {
	if major == "" {
		major = DefaultMajorUnit
	}
	if minor == "" {
		minor = DefaultMinorUnit
	}
	s, err := spellDecimal(d, 2, major, minor)
	if err != nil {
		return "", fmt.Errorf("spelling %v: %w", d, err)
	}
	return s, nil
}

// Float64ToWords is like [CurrencyToWords] but takes a float.
// The float is converted using its shortest decimal representation, so 1.995
// is treated as exactly 1.995 rather than as the nearest binary fraction.
//
// Float64ToWords returns an error if:
//   - f is NaN, an infinity, or negative ([ErrInvalidArgument]);
//   - the integer part of the rounded amount is greater than [MaxInt] ([ErrOutOfRange]).
func Float64ToWords(f float64, major, minor string) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("spelling %v: special value: %w", f, ErrInvalidArgument)
	}
	if f < 0 {
		return "", fmt.Errorf("spelling %v: negative amount: %w", f, ErrInvalidArgument)
	}
	d, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return "", fmt.Errorf("spelling %v: %w: %w", f, ErrOutOfRange, err)
	}
	return CurrencyToWords(d, major, minor)
}

// spellDecimal rounds d to the given scale and spells out its whole part in
// major units and its fractional part in minor units.
func spellDecimal(d decimal.Decimal, scale int, major, minor string) (string, error) {
	if d.IsNeg() {
		return "", fmt.Errorf("negative amount: %w", ErrInvalidArgument)
	}
	whole, frac, ok := d.Round(scale).Int64(scale)
	if !ok || whole > MaxInt {
		return "", ErrOutOfRange
	}
	s, err := IntToWords(whole)
	if err != nil {
		return "", err
	}
	s += " " + major
	if frac > 0 {
		t, err := IntToWords(frac)
		if err != nil {
			return "", err
		}
		s += " and " + t + " " + minor
	}
	return s, nil
}
