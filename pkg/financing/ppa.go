package financing

import (
	"math"

	"github.com/raterudder/solarledger/pkg/solar"
	"github.com/raterudder/solarledger/pkg/types"
)

// PPA bills produced kWh at a rate that escalates every year. Production is
// degraded each year. Billing ends after types.PPATermYears or at buyout.
type PPA struct {
	terms         types.PPATerms
	productionKWH float64

	payoffYear int
	paidOff    bool
}

// NewPPA returns the schedule for a PPA or lease.
func NewPPA(t types.PPATerms, productionKWH float64, installed, now types.YearMonth) *PPA {
	p := &PPA{
		terms:         t,
		productionKWH: productionKWH,
	}
	p.payoffYear, p.paidOff = payoffOffset(t.PaidOff, t.PaidOffYear, installed, now)
	return p
}

// annual returns the scheduled payments for year index y, ignoring payoff.
func (p *PPA) annual(y int) float64 {
	if y < 0 || y >= types.PPATermYears {
		return 0
	}
	produced := solar.Degrade(p.productionKWH, float64(y))
	return produced * p.terms.InitialRate * math.Pow(1+p.terms.EscalatorPercent/100, float64(y))
}

// Payment implements Schedule.
func (p *PPA) Payment(month int) float64 {
	y := month / 12
	if p.terms.PaidOff && y >= p.payoffYear {
		return 0
	}
	return p.annual(y) / 12
}

func (p *PPA) TaxCredit() float64 { return 0 }

// CalculatedTaxCredit is 0, the system owner claims the credit.
func (p *PPA) CalculatedTaxCredit() float64 { return 0 }

// Payoff returns the buyout, BuyoutFactor of the payments that were still
// scheduled from the payoff year to the end of the term.
func (p *PPA) Payoff() float64 {
	if !p.paidOff {
		return 0
	}
	return p.buyout()
}

func (p *PPA) buyout() float64 {
	var remaining float64
	for y := p.payoffYear; y < types.PPATermYears; y++ {
		remaining += p.annual(y)
	}
	return remaining * BuyoutFactor
}

// TotalInvestment is every scheduled payment plus the down payment. A paid
// off PPA counts the payments made and the buyout instead.
func (p *PPA) TotalInvestment() float64 {
	end := types.PPATermYears
	var total float64
	if p.terms.PaidOff {
		end = min(p.payoffYear, types.PPATermYears)
		total += p.buyout()
	}
	for y := 0; y < end; y++ {
		total += p.annual(y)
	}
	return total + p.terms.DownPayment
}

func (p *PPA) Structure() types.PaymentStructure { return types.PaymentStructure{} }
