package main

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
	"github.com/govalues/moneywords"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type spellCommand struct {
	Currency string `short:"c" long:"currency" default:"GBP" description:"ISO 4217 currency of the amounts"`
	Major    string `long:"major" description:"Name of the major unit, overrides the currency"`
	Minor    string `long:"minor" description:"Name of the minor unit, overrides the currency"`
	Args     struct {
		Amounts []string `positional-arg-name:"amount" required:"1"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *spellCommand) Execute(_ []string) error {
	curr, err := moneywords.ParseCurr(c.Currency)
	if err != nil {
		return errors.Wrap(err, "spell")
	}
	for _, s := range c.Args.Amounts {
		words, err := c.spell(curr, s)
		if err != nil {
			return errors.Wrapf(err, "spell %q", s)
		}
		c.app.log.Debug("spelled amount",
			zap.String("amount", s),
			zap.Stringer("currency", curr),
			zap.String("words", words),
		)
		fmt.Fprintln(c.app.stdout, words)
	}
	return nil
}

// spell spells out an amount in the units of the currency, or in the units
// given by --major and --minor.
// Amounts of currencies without a minor unit are rounded to whole units
// unless --minor is given.
// A leading currency symbol, such as "£", is ignored.
func (c *spellCommand) spell(curr moneywords.Currency, s string) (string, error) {
	s = strings.TrimSpace(s)
	if sym := curr.Symbol(); sym != "" {
		s = strings.TrimPrefix(s, sym)
	}

	if c.Major == "" && c.Minor == "" {
		a, err := moneywords.ParseAmount(curr.Code(), s)
		if err != nil {
			return "", err
		}
		return a.Words()
	}

	d, err := decimal.Parse(s)
	if err != nil {
		return "", err
	}
	major, minor := c.Major, c.Minor
	if major == "" {
		major = curr.MajorUnit()
	}
	if minor == "" {
		minor = curr.MinorUnit()
	}
	if minor == "" {
		// The currency has no minor unit to name, so only whole units are spelled.
		d = d.Round(curr.Scale())
	}
	return moneywords.CurrencyToWords(d, major, minor)
}
