// Package financing models what a homeowner pays for their system under each
// financing program.
package financing

import (
	"fmt"

	"github.com/raterudder/solarledger/pkg/types"
)

const (
	// TaxCreditRate is the federal investment tax credit.
	TaxCreditRate = 0.30
	// MonthsBeforeCredit is how long after install the tax credit is
	// received and, for loans that apply it, paid into the principal.
	MonthsBeforeCredit = 18
	// BuyoutFactor is the share of remaining PPA payments owed on buyout.
	BuyoutFactor = 0.70
	// OtherInvestmentYears is how many years of payments an Other program is
	// assumed to run for.
	OtherInvestmentYears = 20
)

// Schedule is a financing program's cash flows from install onward.
type Schedule interface {
	// Payment returns the solar payment for the month that is month months
	// after install, starting at 0.
	Payment(month int) float64
	// TaxCredit returns the credit added once to cumulative savings. It is 0
	// when the credit is kept by the lender.
	TaxCredit() float64
	// CalculatedTaxCredit returns the credit the program earns whether or
	// not it is paid out to the homeowner.
	CalculatedTaxCredit() float64
	// Payoff returns the one-time loan payoff or PPA buyout already paid.
	Payoff() float64
	// TotalInvestment returns the program's total cost used for payback and
	// ROI.
	TotalInvestment() float64
	// Structure describes how the payment changes over time.
	Structure() types.PaymentStructure
}

// New returns the schedule for the profile's financing program.
func New(p types.InstallationProfile) (Schedule, error) {
	switch t := p.Financing.Program.(type) {
	case types.CashTerms:
		return NewCash(t), nil
	case types.LoanTerms:
		return NewLoan(t, p.Installed, p.Now), nil
	case types.PPATerms:
		return NewPPA(t, p.AnnualProductionKWH, p.Installed, p.Now), nil
	case types.OtherTerms:
		return NewOther(t), nil
	}
	return nil, fmt.Errorf("%w: %v", types.ErrUnknownProgram, p.Financing.Type())
}

// payoffOffset returns the year index the program stops billing at and
// whether the payoff has already happened as of now. A payoff year before
// the install year, including an unset one, is paid off at install: nothing
// is billed and the whole balance or every PPA payment is bought out.
func payoffOffset(paidOff bool, paidOffYear int, installed, now types.YearMonth) (int, bool) {
	if !paidOff {
		return 0, false
	}
	return max(paidOffYear-installed.Year, 0), paidOffYear <= now.Year
}
