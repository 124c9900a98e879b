package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/govalues/moneywords"
	"github.com/govalues/moneywords/proposal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type quoteCommand struct {
	Currency    string   `short:"c" long:"currency" default:"GBP" description:"ISO 4217 currency of the prices"`
	Price       string   `short:"p" long:"price" required:"yes" description:"Final price, excluding VAT"`
	Periods     int      `long:"periods" description:"Number of weeks or months the price of deliverables covers"`
	Unit        string   `long:"unit" default:"week" description:"Unit of the periods (week or month)"`
	Consultants []string `long:"consultant" description:"Consultant of a timesheet price as title:rate:shifts, may be repeated"`
	Duration    string   `long:"duration" description:"Duration of the work, such as \"4 weeks\""`
	Start       string   `long:"start" description:"Starting date (YYYY-MM-DD)"`
	End         string   `long:"end" description:"Ending date (YYYY-MM-DD)"`
	Contract    string   `long:"contract" required:"yes" description:"Contract type: 1 NR26, 2 NEC4, 3 NR3, 4 PSR:SOW"`
	Supplier    string   `long:"supplier" description:"Name of the supplier holding the insurance"`

	app *app
}

func (c *quoteCommand) Execute(_ []string) error {
	q, err := c.quote()
	if err != nil {
		return errors.Wrap(err, "quote")
	}
	paras, err := q.Paragraphs()
	if err != nil {
		return errors.Wrap(err, "quote")
	}
	c.app.log.Debug("composed quote",
		zap.Stringer("price", q.Price),
		zap.Stringer("contract", q.Contract),
		zap.Int("paragraphs", len(paras)),
	)
	fmt.Fprintln(c.app.stdout, strings.Join(paras, "\n\n"))
	return nil
}

func (c *quoteCommand) quote() (proposal.Quote, error) {
	q := proposal.Quote{Supplier: c.Supplier}
	var err error

	q.Price, err = moneywords.ParseAmount(c.Currency, c.Price)
	if err != nil {
		return q, errors.Wrap(err, "price")
	}

	q.Contract, err = proposal.ParseContractType(c.Contract)
	if err != nil {
		return q, errors.Wrap(err, "contract")
	}

	switch {
	case len(c.Consultants) > 0 && c.Periods != 0:
		return q, errors.New("--periods and --consultant cannot be used together")
	case len(c.Consultants) > 0:
		p := proposal.TimesheetPricing{}
		for _, s := range c.Consultants {
			cons, err := parseConsultant(c.Currency, s)
			if err != nil {
				return q, errors.Wrapf(err, "consultant %q", s)
			}
			p.Consultants = append(p.Consultants, cons)
		}
		q.Pricing = p
	case c.Periods != 0:
		q.Pricing = proposal.PeriodPricing{
			Price:   q.Price,
			Periods: c.Periods,
			Unit:    c.Unit,
		}
	}

	if c.Duration != "" || c.Start != "" || c.End != "" {
		if c.Start == "" || c.End == "" {
			return q, errors.New("--start and --end are required with --duration")
		}
		d := proposal.Duration{Length: c.Duration}
		d.Start, err = time.Parse(proposal.DateLayout, c.Start)
		if err != nil {
			return q, errors.Wrap(err, "start date")
		}
		d.End, err = time.Parse(proposal.DateLayout, c.End)
		if err != nil {
			return q, errors.Wrap(err, "end date")
		}
		q.Duration = &d
	}

	return q, nil
}

// parseConsultant parses "title:rate:shifts".
// The job title may itself contain colons.
func parseConsultant(curr, s string) (proposal.Consultant, error) {
	var cons proposal.Consultant

	i := strings.LastIndex(s, ":")
	if i < 0 {
		return cons, errors.New("want title:rate:shifts")
	}
	j := strings.LastIndex(s[:i], ":")
	if j < 0 {
		return cons, errors.New("want title:rate:shifts")
	}

	shifts, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return cons, errors.Wrap(err, "shifts")
	}
	rate, err := moneywords.ParseAmount(curr, strings.TrimSpace(s[j+1:i]))
	if err != nil {
		return cons, errors.Wrap(err, "rate")
	}

	cons.JobTitle = strings.TrimSpace(s[:j])
	cons.ChargeRate = rate
	cons.TotalShifts = shifts
	return cons, nil
}
