package financing

import "github.com/raterudder/solarledger/pkg/types"

// Cash is a system paid for upfront. There are no monthly payments.
type Cash struct {
	terms types.CashTerms
}

// NewCash returns the schedule for a cash purchase.
func NewCash(t types.CashTerms) *Cash {
	return &Cash{terms: t}
}

func (c *Cash) Payment(int) float64 { return 0 }

// TaxCredit returns the override or 30% of the gross cost implied by the
// post-credit net cost.
func (c *Cash) TaxCredit() float64 {
	credit := c.terms.TaxCredit
	if credit == 0 {
		credit = c.terms.NetCost / (1 - TaxCreditRate) * TaxCreditRate
	}
	if credit > 0 {
		return credit
	}
	return 0
}

func (c *Cash) CalculatedTaxCredit() float64 { return c.TaxCredit() }

func (c *Cash) Payoff() float64 { return 0 }

func (c *Cash) TotalInvestment() float64 { return c.terms.NetCost }

func (c *Cash) Structure() types.PaymentStructure { return types.PaymentStructure{} }
