/*
Package moneywords spells out monetary amounts in English words, the way they
are written on quotations, invoices and cheques.
It leverages the [decimal] package for exact handling of decimal amounts and
combines it with a [Currency] type carrying the names of major and minor units.

# Features

  - Conversion of non-negative integers to words, such as
    "One Thousand Two Hundred and Thirty Four"
  - Conversion of decimal and float amounts to a major/minor unit phrase, such as
    "Five Pounds and Fifty Pence"
  - Currency-aware conversion, using the scale and unit names of the currency
  - Pure functions, safe for concurrent use by multiple goroutines

# Representation

An Amount consists of a Currency and a decimal.Decimal value.
The Currency type is implemented as an integer index into in-memory arrays
containing information such as code, scale, symbol and unit names.

# Number Names

Numbers are grouped by thousands, each group spelled out with its own
"Hundred and" phrase, followed by "Thousand" or "Million".
Words are capitalized and joined by single spaces.
The largest supported integer is [MaxInt] (999,999,999).

# Rounding

Before an amount is split into major and minor units it is rounded to
the scale of the currency (2 for [CurrencyToWords]) using rounding half to even.
Rounding is applied to the whole amount, so a minor part that rounds up to
a full major unit is carried into the major part.

# Errors

Negative numbers and special float values fail with [ErrInvalidArgument].
Numbers above [MaxInt] fail with [ErrOutOfRange].
Errors are wrapped with context, use [errors.Is] to test for them.
*/
package moneywords
