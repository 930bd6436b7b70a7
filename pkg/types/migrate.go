package types

import "fmt"

// CurrentProfileVersion is the current version of the InstallationProfile.
// Increment this value when adding new fields that require default values.
const CurrentProfileVersion = 3

// MigrateProfile migrates a profile saved at currentVersion to the current
// version. It returns the migrated profile and whether anything changed.
//
// Version 1 is the oldest saved format. A profile without a version is
// treated as current and returned as is, a missing field in it is input and
// not something to default.
func MigrateProfile(p InstallationProfile, currentVersion int) (InstallationProfile, bool, error) {
	if currentVersion <= 0 || currentVersion >= CurrentProfileVersion {
		return p, false, nil
	}

	migrated := false
	for version := currentVersion + 1; version <= CurrentProfileVersion; version++ {
		switch version {
		case 2:
			// version 2: loans always carry a term and appliedToLoan was
			// renamed to taxCreditApplied
			if l, ok := p.Financing.Program.(LoanTerms); ok {
				if l.TermYears == 0 {
					l.TermYears = DefaultLoanTermYears
					migrated = true
				}
				if l.LegacyAppliedToLoan != nil {
					l.TaxCreditApplied = *l.LegacyAppliedToLoan
					l.LegacyAppliedToLoan = nil
					migrated = true
				}
				p.Financing.Program = l
			}
		case 3:
			// version 3: paid off programs record the payoff year, older
			// profiles assumed the evaluation year
			switch t := p.Financing.Program.(type) {
			case LoanTerms:
				if t.PaidOff && t.PaidOffYear == 0 {
					t.PaidOffYear = p.Now.Year
					p.Financing.Program = t
					migrated = true
				}
			case PPATerms:
				if t.PaidOff && t.PaidOffYear == 0 {
					t.PaidOffYear = p.Now.Year
					p.Financing.Program = t
					migrated = true
				}
			}
		default:
			return p, false, fmt.Errorf("unknown profile version: %d", version)
		}
	}
	p.Version = CurrentProfileVersion

	return p, migrated, nil
}
