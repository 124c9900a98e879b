package proposal_test

import (
	"strings"
	"testing"
	"time"

	"github.com/govalues/moneywords"
	"github.com/govalues/moneywords/proposal"
	"github.com/matryer/is"
	"github.com/pkg/errors"
)

func date(s string) time.Time {
	t, err := time.Parse(proposal.DateLayout, s)
	if err != nil {
		panic(err)
	}

	return t
}

func TestDuration_Text(t *testing.T) {
	t.Parallel()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		d := proposal.Duration{
			Length: "4 weeks",
			Start:  date("2024-03-04"),
			End:    date("2024-03-29"),
		}

		s, err := d.Text()
		i.NoErr(err)

		i.Equal("The duration of the work is 4 weeks, commencing on 2024-03-04 and concluding on 2024-03-29. "+
			"The project will be billed periodically with the payment application being supported "+
			"by an up-to-date delivery programme.", s)
	})

	t.Run("SameDay", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		d := proposal.Duration{
			Length: "1 day",
			Start:  date("2024-03-04"),
			End:    date("2024-03-04"),
		}

		_, err := d.Text()
		i.NoErr(err)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		d := proposal.Duration{
			Length: "4 weeks",
			Start:  date("2024-02-01"),
			End:    date("2024-01-01"),
		}

		_, err := d.Text()

		i.Equal("describing duration: end date before start date: 2024-01-01 < 2024-02-01", err.Error())
	})

	t.Run("MissingLength", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := proposal.Duration{}.Text()

		i.Equal("describing duration: length: missing description", err.Error())
	})
}

func TestQuote_Paragraphs(t *testing.T) {
	t.Parallel()

	t.Run("Full", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		price := moneywords.MustParseAmount("GBP", "12000")

		q := proposal.Quote{
			Price: price,
			Pricing: proposal.PeriodPricing{
				Price:   price,
				Periods: 6,
				Unit:    "month",
			},
			Duration: &proposal.Duration{
				Length: "6 months",
				Start:  date("2024-01-01"),
				End:    date("2024-06-28"),
			},
			Contract: proposal.NEC4,
			Supplier: "Acme Rail",
		}

		paras, err := q.Paragraphs()
		i.NoErr(err)

		i.Equal(6, len(paras))
		i.Equal("Our price for the work is £12000.00 (Twelve Thousand Pounds). Excluding VAT.", paras[0])
		i.Equal("The price covers a 6-month period, based upon £2000.00 per month.", paras[1])
		i.Equal("The duration of the work is 6 months, commencing on 2024-01-01 and concluding on 2024-06-28. "+
			"The project will be billed periodically with the payment application being supported "+
			"by an up-to-date delivery programme.", paras[2])
		i.Equal("Our offer is conditional upon the use of the NEC4 Professional Service Short Contract.", paras[3])
		i.Equal("The law of the contract is the Law of England and Wales.\n"+
			"The assessment day is within 28 days from the starting date.\n"+
			"The rate for delay damages is £0 per day.\n"+
			"The period for reply is 2 weeks.", paras[4])
		i.Equal("Acme Rail holds Professional Indemnity insurance of up to £5 million and Public Liability insurance "+
			"of up to £5 million. Our liability for any matter is limited to 10% of the contract Price.", paras[5])
	})

	t.Run("PriceOnly", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		q := proposal.Quote{
			Price:    moneywords.MustParseAmount("GBP", "0.99"),
			Contract: proposal.NR3,
		}

		paras, err := q.Paragraphs()
		i.NoErr(err)

		i.Equal([]string{
			"Our price for the work is £0.99 (Zero Pounds and Ninety Nine Pence). Excluding VAT.",
			"Our offer is conditional upon the use of the NR3 Contract.",
			proposal.CommercialTerms(),
			proposal.Liability(""),
		}, paras)
	})

	t.Run("MissingContract", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := proposal.Quote{Price: moneywords.MustParseAmount("GBP", "1")}.Paragraphs()

		i.Equal("quoting: invalid contract type 0", err.Error())
	})

	t.Run("NegativePrice", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := proposal.Quote{
			Price:    moneywords.MustParseAmount("GBP", "-5"),
			Contract: proposal.NR26,
		}.Paragraphs()

		i.True(errors.Is(err, moneywords.ErrInvalidArgument))
	})
}

func TestLiability(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":            "We hold Professional Indemnity insurance",
		"  ":          "We hold Professional Indemnity insurance",
		"Acme Rail":   "Acme Rail holds Professional Indemnity insurance",
		" Acme Rail ": "Acme Rail holds Professional Indemnity insurance",
	}

	for supplier, want := range tests {
		supplier, want := supplier, want

		t.Run(supplier, func(t *testing.T) {
			t.Parallel()

			i := is.New(t)

			got := proposal.Liability(supplier)
			i.True(strings.HasPrefix(got, want))
			i.True(strings.HasSuffix(got, "limited to 10% of the contract Price."))
		})
	}
}

func TestCommercialTerms(t *testing.T) {
	t.Parallel()

	i := is.New(t)

	lines := strings.Split(proposal.CommercialTerms(), "\n")
	i.Equal(4, len(lines))
	i.Equal("The law of the contract is the Law of England and Wales.", lines[0])
	i.Equal("The period for reply is 2 weeks.", lines[3])
}
