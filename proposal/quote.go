package proposal

import (
	"fmt"

	"github.com/govalues/moneywords"
)

// Quote holds the commercial terms of a proposal.
// Pricing and Duration are optional, the contract type is required.
type Quote struct {
	Price    moneywords.Amount
	Pricing  Pricing
	Duration *Duration
	Contract ContractType
	Supplier string // name used in the liability paragraph
}

// Paragraphs returns the paragraphs of the quote in the order they appear in
// the letter: price statement, pricing basis, duration, contract clause,
// standing commercial terms and the liability paragraph.
func (q Quote) Paragraphs() ([]string, error) {
	paras := make([]string, 0, 6)

	s, err := PriceStatement(q.Price)
	if err != nil {
		return nil, fmt.Errorf("quoting: %w", err)
	}
	paras = append(paras, s)

	if q.Pricing != nil {
		s, err = q.Pricing.Text()
		if err != nil {
			return nil, fmt.Errorf("quoting: %w", err)
		}
		paras = append(paras, s)
	}

	if q.Duration != nil {
		s, err = q.Duration.Text()
		if err != nil {
			return nil, fmt.Errorf("quoting: %w", err)
		}
		paras = append(paras, s)
	}

	s, err = q.Contract.Clause()
	if err != nil {
		return nil, fmt.Errorf("quoting: %w", err)
	}
	return append(paras, s, CommercialTerms(), Liability(q.Supplier)), nil
}
