package moneywords

import (
	"errors"
	"fmt"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency together with the English names of its
// major and minor units.
// The zero value is [XXX], which indicates an unknown currency.
//
// Currency is implemented as an integer index into in-memory arrays that
// store the ISO 4217 code and scale of the currency, its symbol, and the
// names used when the amount is spelled out in words.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Currency value.
//
// When persisting a currency value, use the alphabetic code returned by
// the [Currency.Code] method, rather than the integer index, as mapping between
// index and a particular currency may change in future versions.
type Currency uint8

var errInvalidCurrency = errors.New("invalid currency")

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	GBP
//	gbp
//	826
//
// ParseCurr returns an error if the string does not represent a supported
// currency code.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return XXX, fmt.Errorf("%w %q", errInvalidCurrency, curr)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// String method implements the [fmt.Stringer] interface and returns
// the 3-letter code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of a currency.
// The currently supported currencies use scales of 0, 2, or 3:
//   - A scale of 0 indicates currencies without minor units, such as the yen.
//     Amounts in these currencies are spelled out without a minor unit clause.
//   - A scale of 2 indicates currencies with 100 minor units, such as the
//     pound sterling (100 pence).
//   - A scale of 3 indicates currencies with 1000 minor units, such as the
//     Omani rial (1000 baisa).
func (c Currency) Scale() int {
	return int(scaleLookup[c])
}

// Num returns the 3-digit code assigned to the currency by the ISO 4217 standard.
func (c Currency) Num() string {
	return numLookup[c]
}

// Code returns the 3-letter code assigned to the currency by the ISO 4217 standard.
// This method always returns a valid code.
func (c Currency) Code() string {
	return codeLookup[c]
}

// Symbol returns the symbol commonly printed in front of amounts, such as "£".
// If the currency has no widely used symbol, the method returns an empty string.
func (c Currency) Symbol() string {
	return symbolLookup[c]
}

// MajorUnit returns the plural English name of the major unit, such as "Pounds".
func (c Currency) MajorUnit() string {
	return majorLookup[c]
}

// MinorUnit returns the plural English name of the minor unit, such as "Pence".
// For currencies with a scale of 0 the method returns an empty string.
func (c Currency) MinorUnit() string {
	return minorLookup[c]
}
