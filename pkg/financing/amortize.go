package financing

import "math"

// MonthlyPayment returns the fixed payment that amortizes principal over
// months at annualRatePercent. A 0% loan is principal split evenly.
func MonthlyPayment(principal, annualRatePercent float64, months int) float64 {
	if principal <= 0 || months <= 0 {
		return 0
	}
	c := annualRatePercent / 100 / 12
	n := float64(months)
	if c == 0 {
		return principal / n
	}
	growth := math.Pow(1+c, n)
	return principal * c * growth / (growth - 1)
}

// RemainingPrincipal returns the balance left after paid monthly payments.
func RemainingPrincipal(principal, annualRatePercent float64, months, paid int) float64 {
	if paid <= 0 {
		return principal
	}
	if paid >= months {
		return 0
	}
	payment := MonthlyPayment(principal, annualRatePercent, months)
	c := annualRatePercent / 100 / 12
	if c == 0 {
		return math.Max(0, principal-payment*float64(paid))
	}
	growth := math.Pow(1+c, float64(paid))
	return math.Max(0, principal*growth-payment*(growth-1)/c)
}
