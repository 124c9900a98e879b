// Package proposal composes the commercial paragraphs of a proposal letter:
// the price statement with the price in words, the pricing basis, the
// duration of the work, the contract clause and the standing terms.
package proposal

import (
	"errors"
	"fmt"
	"strings"
)

var errInvalidContract = errors.New("invalid contract type")

// ContractType identifies the contract under which a proposal is offered.
// The zero value is not a valid contract type.
type ContractType uint8

const (
	NR26   ContractType = iota + 1 // NR26 Professional Service Short Contract
	NEC4                           // NEC4 Professional Service Short Contract
	NR3                            // NR3 Contract
	PSRSOW                         // PSR:SOW framework
)

var contractNames = [...]string{
	NR26:   "NR26",
	NEC4:   "NEC4",
	NR3:    "NR3",
	PSRSOW: "PSR:SOW",
}

var contractClauses = [...]string{
	NR26:   "Our offer is conditional upon the use of the NR26 Professional Service Short Contract (PSSC).",
	NEC4:   "Our offer is conditional upon the use of the NEC4 Professional Service Short Contract.",
	NR3:    "Our offer is conditional upon the use of the NR3 Contract.",
	PSRSOW: "The proposal has been built on the basis that it will be instructed via the PSR:SOW framework and fall under the associated contractual terms. All fees associated with the use of the framework have been incorporated into the prices presented within this proposal.",
}

// ParseContractType converts a menu number ("1" to "4") or a contract name
// ("NR26", "nec4", "PSR:SOW", ...) to a contract type.
func ParseContractType(s string) (ContractType, error) {
	s = strings.TrimSpace(s)
	for c := NR26; c <= PSRSOW; c++ {
		if s == fmt.Sprint(uint8(c)) || strings.EqualFold(s, contractNames[c]) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w %q", errInvalidContract, s)
}

func (c ContractType) valid() bool {
	return c >= NR26 && c <= PSRSOW
}

// String returns the short name of the contract, such as "NEC4".
func (c ContractType) String() string {
	if !c.valid() {
		return fmt.Sprintf("ContractType(%d)", uint8(c))
	}
	return contractNames[c]
}

// Clause returns the paragraph that makes the offer conditional upon the contract.
func (c ContractType) Clause() (string, error) {
	if !c.valid() {
		return "", fmt.Errorf("%w %v", errInvalidContract, uint8(c))
	}
	return contractClauses[c], nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseContractType].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *ContractType) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseContractType(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", NR26, err)
	}
	return nil
}
