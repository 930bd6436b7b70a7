package financing

import "github.com/raterudder/solarledger/pkg/types"

// Loan is an amortized loan. When the tax credit is applied to the principal
// the payment is re-amortized on the reduced balance after
// MonthsBeforeCredit months.
type Loan struct {
	terms   types.LoanTerms
	months  int
	credit  float64
	initial float64
	reduced float64

	payoffYear int
	paidOff    bool
}

// NewLoan returns the schedule for a loan taken at installed and evaluated at
// now.
func NewLoan(t types.LoanTerms, installed, now types.YearMonth) *Loan {
	l := &Loan{
		terms:  t,
		months: t.TermYears * 12,
		credit: t.TaxCredit,
	}
	if l.credit == 0 {
		l.credit = t.Principal * TaxCreditRate
	}
	l.initial = MonthlyPayment(t.Principal, t.AnnualRatePercent, l.months)
	l.reduced = l.initial
	if t.TaxCreditApplied {
		l.reduced = MonthlyPayment(t.Principal-l.credit, t.AnnualRatePercent, l.months-MonthsBeforeCredit)
	}
	l.payoffYear, l.paidOff = payoffOffset(t.PaidOff, t.PaidOffYear, installed, now)
	return l
}

func (l *Loan) stopped(month int) bool {
	if month >= l.months {
		return true
	}
	return l.terms.PaidOff && month/12 >= l.payoffYear
}

// Payment implements Schedule.
func (l *Loan) Payment(month int) float64 {
	if l.stopped(month) {
		return 0
	}
	if l.terms.TaxCreditApplied && month >= MonthsBeforeCredit {
		return l.reduced
	}
	return l.initial
}

// TaxCredit returns the credit when the homeowner keeps it as cash.
func (l *Loan) TaxCredit() float64 {
	if l.terms.TaxCreditApplied || l.credit <= 0 {
		return 0
	}
	return l.credit
}

// Payoff returns the balance paid off early, 0 if the loan hasn't been paid
// off as of now.
func (l *Loan) Payoff() float64 {
	if !l.paidOff {
		return 0
	}
	paid := min(l.payoffYear*12, l.months)
	if l.terms.TaxCreditApplied && paid > MonthsBeforeCredit {
		return RemainingPrincipal(
			l.terms.Principal-l.credit,
			l.terms.AnnualRatePercent,
			l.months-MonthsBeforeCredit,
			paid-MonthsBeforeCredit,
		)
	}
	return RemainingPrincipal(l.terms.Principal, l.terms.AnnualRatePercent, l.months, paid)
}

// TotalInvestment is the amount borrowed plus the down payment.
func (l *Loan) TotalInvestment() float64 {
	return l.terms.Principal + l.terms.DownPayment
}

// Structure implements Schedule.
func (l *Loan) Structure() types.PaymentStructure {
	return types.PaymentStructure{
		InitialPayment:           l.initial,
		ReducedPayment:           l.reduced,
		MonthsBeforeCredit:       MonthsBeforeCredit,
		CreditAppliedToPrincipal: l.terms.TaxCreditApplied,
	}
}

// CalculatedTaxCredit implements Schedule.
func (l *Loan) CalculatedTaxCredit() float64 {
	return l.credit
}
