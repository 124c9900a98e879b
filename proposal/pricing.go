package proposal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
	"github.com/govalues/moneywords"
)

var (
	errInvalidPeriods     = errors.New("number of periods must be positive")
	errInvalidShifts      = errors.New("number of shifts must be positive")
	errNoConsultants      = errors.New("no consultants")
	errNegativeAmount     = errors.New("negative amount")
	errMissingDescription = errors.New("missing description")
)

// PriceStatement returns the sentence that states the price in figures and
// in words, for example:
//
//	Our price for the work is £1234.50 (One Thousand Two Hundred and Thirty Four Pounds and Fifty Pence). Excluding VAT.
//
// The price is rounded to the scale of its currency before it is printed.
func PriceStatement(price moneywords.Amount) (string, error) {
	price = price.RoundToCurr()
	words, err := price.Words()
	if err != nil {
		return "", fmt.Errorf("stating price: %w", err)
	}
	return fmt.Sprintf("Our price for the work is %v (%v). Excluding VAT.", price.Text(), words), nil
}

// Pricing describes how the price of a proposal is built up.
type Pricing interface {
	Text() (string, error)
}

// PeriodPricing spreads the price of deliverables evenly over a number of
// weeks or months.
type PeriodPricing struct {
	Price   moneywords.Amount
	Periods int
	Unit    string // "week" or "month"
}

// Rate returns the price per period, rounded to the scale of the currency.
func (p PeriodPricing) Rate() (moneywords.Amount, error) {
	if p.Periods <= 0 {
		return moneywords.Amount{}, fmt.Errorf("computing rate: %w, got %v", errInvalidPeriods, p.Periods)
	}
	n, err := decimal.New(int64(p.Periods), 0)
	if err != nil {
		return moneywords.Amount{}, fmt.Errorf("computing rate: %w", err)
	}
	rate, err := p.Price.Quo(n)
	if err != nil {
		return moneywords.Amount{}, fmt.Errorf("computing rate: %w", err)
	}
	return rate.RoundToCurr(), nil
}

// Text returns the pricing sentence, for example:
//
//	The price covers a 4-week period, based upon £250.00 per week.
func (p PeriodPricing) Text() (string, error) {
	unit := strings.TrimSpace(p.Unit)
	if unit == "" {
		return "", fmt.Errorf("describing period pricing: unit: %w", errMissingDescription)
	}
	if p.Price.IsNeg() {
		return "", fmt.Errorf("describing period pricing: %w %v", errNegativeAmount, p.Price)
	}
	rate, err := p.Rate()
	if err != nil {
		return "", fmt.Errorf("describing period pricing: %w", err)
	}
	return fmt.Sprintf("The price covers a %d-%v period, based upon %v per %v.", p.Periods, unit, rate.Text(), unit), nil
}

// Consultant is a single line of a timesheet based price.
type Consultant struct {
	JobTitle    string
	ChargeRate  moneywords.Amount // per shift
	TotalShifts int
}

func (c Consultant) line() (string, error) {
	title := strings.TrimSpace(c.JobTitle)
	switch {
	case title == "":
		return "", fmt.Errorf("job title: %w", errMissingDescription)
	case c.ChargeRate.IsNeg():
		return "", fmt.Errorf("charge rate of %v: %w %v", title, errNegativeAmount, c.ChargeRate)
	case c.TotalShifts <= 0:
		return "", fmt.Errorf("shifts of %v: %w, got %v", title, errInvalidShifts, c.TotalShifts)
	}
	return fmt.Sprintf("%v for %v per shift and an anticipated combined number of %d total shifts.",
		title, c.ChargeRate.Text(), c.TotalShifts), nil
}

// TimesheetPricing bases the price on charge out rates and shifts of consultants.
type TimesheetPricing struct {
	Consultants []Consultant
}

// Text returns the pricing paragraph: an introductory sentence, a blank line
// and one line per consultant.
func (p TimesheetPricing) Text() (string, error) {
	if len(p.Consultants) == 0 {
		return "", fmt.Errorf("describing timesheet pricing: %w", errNoConsultants)
	}
	lines := make([]string, 0, len(p.Consultants))
	for _, c := range p.Consultants {
		l, err := c.line()
		if err != nil {
			return "", fmt.Errorf("describing timesheet pricing: %w", err)
		}
		lines = append(lines, l)
	}
	return "The price is based upon the below charge out rates and shifts:\n\n" + strings.Join(lines, "\n"), nil
}
