package moneywords_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/govalues/decimal"
	"github.com/govalues/moneywords"
)

// InstalmentWords splits a total into equal instalments and spells out
// a single instalment, rounded to the scale of the currency.
func InstalmentWords(total moneywords.Amount, instalments int) (string, error) {
	n, err := decimal.New(int64(instalments), 0)
	if err != nil {
		return "", err
	}
	part, err := total.Quo(n)
	if err != nil {
		return "", err
	}
	return part.RoundToCurr().Words()
}

// In this example, a quotation total is paid in three monthly instalments
// and each instalment is written out in words, as required on a cheque.
func Example_instalments() {
	total := moneywords.MustParseAmount("GBP", "1000")

	words, err := InstalmentWords(total, 3)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Total       = %v\n", total)
	fmt.Printf("Instalment  = %v\n", words)

	// Output:
	// Total       = GBP 1000.00
	// Instalment  = Three Hundred and Thirty Three Pounds and Thirty Three Pence
}

func ExampleIntToWords() {
	for _, n := range []int64{0, 15, 42, 101, 1234, 2500000} {
		s, err := moneywords.IntToWords(n)
		if err != nil {
			panic(err)
		}
		fmt.Println(s)
	}
	// Output:
	// Zero
	// Fifteen
	// Forty Two
	// One Hundred and One
	// One Thousand Two Hundred and Thirty Four
	// Two Million Five Hundred Thousand
}

func ExampleIntToWords_errors() {
	_, err := moneywords.IntToWords(-1)
	fmt.Println(err)
	fmt.Println(errors.Is(err, moneywords.ErrInvalidArgument))
	_, err = moneywords.IntToWords(1_000_000_000)
	fmt.Println(err)
	fmt.Println(errors.Is(err, moneywords.ErrOutOfRange))
	// Output:
	// spelling -1: negative number: invalid argument
	// true
	// spelling 1000000000: out of range
	// true
}

func ExampleCurrencyToWords() {
	for _, s := range []string{"1234.50", "5.00", "0.99", "1.995"} {
		d := decimal.MustParse(s)
		fmt.Println(moneywords.CurrencyToWords(d, "", ""))
	}
	// Output:
	// One Thousand Two Hundred and Thirty Four Pounds and Fifty Pence <nil>
	// Five Pounds <nil>
	// Zero Pounds and Ninety Nine Pence <nil>
	// Two Pounds <nil>
}

func ExampleCurrencyToWords_units() {
	d := decimal.MustParse("12.05")
	fmt.Println(moneywords.CurrencyToWords(d, "Dollars", "Cents"))
	// Output: Twelve Dollars and Five Cents <nil>
}

func ExampleFloat64ToWords() {
	fmt.Println(moneywords.Float64ToWords(1.995, "", ""))
	_, err := moneywords.Float64ToWords(math.NaN(), "", "")
	fmt.Println(err)
	// Output:
	// Two Pounds <nil>
	// spelling NaN: special value: invalid argument
}

func ExampleMustParseAmount() {
	fmt.Println(moneywords.MustParseAmount("GBP", "-1.2"))
	// Output: GBP -1.20
}

func ExampleParseAmount() {
	fmt.Println(moneywords.ParseAmount("GBP", "1234.5"))
	// Output: GBP 1234.50 <nil>
}

func ExampleNewAmountFromFloat64() {
	fmt.Println(moneywords.NewAmountFromFloat64("USD", 12.3))
	// Output: USD 12.30 <nil>
}

func ExampleAmount_Words() {
	a := moneywords.MustParseAmount("GBP", "1234.5")
	b := moneywords.MustParseAmount("JPY", "500")
	c := moneywords.MustParseAmount("OMR", "1.25")
	d := moneywords.MustParseAmount("USD", "0.07")
	fmt.Println(a.Words())
	fmt.Println(b.Words())
	fmt.Println(c.Words())
	fmt.Println(d.Words())
	// Output:
	// One Thousand Two Hundred and Thirty Four Pounds and Fifty Pence <nil>
	// Five Hundred Yen <nil>
	// One Rials and Two Hundred and Fifty Baisa <nil>
	// Zero Dollars and Seven Cents <nil>
}

func ExampleAmount_Text() {
	a := moneywords.MustParseAmount("GBP", "1234.5")
	b := moneywords.MustParseAmount("OMR", "12")
	c := moneywords.MustParseAmount("JPY", "1.5")
	fmt.Println(a.Text())
	fmt.Println(b.Text())
	fmt.Println(c.Text())
	// Output:
	// £1234.50
	// OMR 12.000
	// ¥2
}

func ExampleAmount_RoundToCurr() {
	a := moneywords.MustParseAmount("JPY", "1.5678")
	b := moneywords.MustParseAmount("GBP", "1.5678")
	c := moneywords.MustParseAmount("OMR", "1.5678")
	fmt.Println(a.RoundToCurr())
	fmt.Println(b.RoundToCurr())
	fmt.Println(c.RoundToCurr())
	// Output:
	// JPY 2
	// GBP 1.57
	// OMR 1.568
}

func ExampleAmount_Quo() {
	a := moneywords.MustParseAmount("GBP", "1000")
	e := decimal.MustParse("4")
	fmt.Println(a.Quo(e))
	// Output: GBP 250.00 <nil>
}

func ExampleParseCurr() {
	c, err := moneywords.ParseCurr("gbp")
	if err != nil {
		panic(err)
	}
	fmt.Println(c)
	// Output: GBP
}

func ExampleCurrency_MajorUnit() {
	g := moneywords.GBP
	u := moneywords.USD
	j := moneywords.JPY
	fmt.Println(g.MajorUnit(), g.MinorUnit())
	fmt.Println(u.MajorUnit(), u.MinorUnit())
	fmt.Printf("%q %q\n", j.MajorUnit(), j.MinorUnit())
	// Output:
	// Pounds Pence
	// Dollars Cents
	// "Yen" ""
}

func ExampleCurrency_Scale() {
	j := moneywords.JPY
	g := moneywords.GBP
	o := moneywords.OMR
	fmt.Println(j.Scale())
	fmt.Println(g.Scale())
	fmt.Println(o.Scale())
	// Output:
	// 0
	// 2
	// 3
}
