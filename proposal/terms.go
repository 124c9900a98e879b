package proposal

import "strings"

var commercialTerms = [...]string{
	"The law of the contract is the Law of England and Wales.",
	"The assessment day is within 28 days from the starting date.",
	"The rate for delay damages is £0 per day.",
	"The period for reply is 2 weeks.",
}

// CommercialTerms returns the standing terms that follow the contract clause,
// one term per line.
func CommercialTerms() string {
	return strings.Join(commercialTerms[:], "\n")
}

// Liability returns the insurance and liability paragraph, for example:
//
//	Acme Rail holds Professional Indemnity insurance of up to £5 million and Public Liability insurance of up to £5 million. Our liability for any matter is limited to 10% of the contract Price.
//
// An empty supplier name is written in the first person ("We hold ...").
func Liability(supplier string) string {
	holder := "We hold"
	if s := strings.TrimSpace(supplier); s != "" {
		holder = s + " holds"
	}
	return holder + " Professional Indemnity insurance of up to £5 million and Public Liability insurance of up to £5 million. " +
		"Our liability for any matter is limited to 10% of the contract Price."
}
