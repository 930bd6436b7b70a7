package financing

import "github.com/raterudder/solarledger/pkg/types"

// Other is a flat monthly payment with no term or escalation.
type Other struct {
	terms types.OtherTerms
}

// NewOther returns the schedule for a flat monthly payment.
func NewOther(t types.OtherTerms) *Other {
	return &Other{terms: t}
}

func (o *Other) Payment(int) float64 { return o.terms.MonthlyPayment }

func (o *Other) TaxCredit() float64 { return 0 }

func (o *Other) CalculatedTaxCredit() float64 { return 0 }

func (o *Other) Payoff() float64 { return 0 }

func (o *Other) TotalInvestment() float64 {
	return o.terms.MonthlyPayment * 12 * OtherInvestmentYears
}

func (o *Other) Structure() types.PaymentStructure { return types.PaymentStructure{} }
