package types

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultLoanTermYears is used when a loan omits its term.
	DefaultLoanTermYears = 20
	// PPATermYears is the assumed length of every PPA/lease contract.
	PPATermYears = 25
)

// ProgramType is the financing program used to pay for the system.
type ProgramType string

const (
	ProgramCash  ProgramType = "Cash"
	ProgramLoan  ProgramType = "Loan"
	ProgramPPA   ProgramType = "PPA"
	ProgramOther ProgramType = "Other"
)

// ParseProgramType accepts the program names plus the "Lease" alias which is
// modeled the same as a PPA.
func ParseProgramType(s string) (ProgramType, error) {
	switch s {
	case "Cash":
		return ProgramCash, nil
	case "Loan":
		return ProgramLoan, nil
	case "PPA", leaseName, "PPA/Lease":
		return ProgramPPA, nil
	case "Other":
		return ProgramOther, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProgram, s)
}

// Program is implemented by each financing program's terms. Only the fields
// relevant to a program exist on its terms.
type Program interface {
	ProgramType() ProgramType
}

// CashTerms is a system bought outright.
type CashTerms struct {
	// NetCost is the out-of-pocket cost after the federal tax credit.
	NetCost float64 `json:"netCost" yaml:"netCost"`
	// TaxCredit overrides the credit derived from NetCost when non-zero.
	TaxCredit float64 `json:"taxCredit" yaml:"taxCredit"`
}

func (CashTerms) ProgramType() ProgramType { return ProgramCash }

// LoanTerms is a system financed with an amortized loan.
type LoanTerms struct {
	Principal         float64 `json:"principal" yaml:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	TermYears         int     `json:"termYears" yaml:"termYears"`
	DownPayment       float64 `json:"downPayment" yaml:"downPayment"`
	// TaxCredit overrides 30% of Principal when non-zero.
	TaxCredit float64 `json:"taxCredit" yaml:"taxCredit"`
	// TaxCreditApplied means the credit is paid into the loan principal after
	// 18 months, re-amortizing the remaining term. Otherwise the customer
	// keeps the credit as cash.
	TaxCreditApplied bool `json:"taxCreditApplied" yaml:"taxCreditApplied"`
	PaidOff          bool `json:"paidOff" yaml:"paidOff"`
	PaidOffYear      int  `json:"paidOffYear" yaml:"paidOffYear"`

	// LegacyAppliedToLoan is the version 1 name of TaxCreditApplied. It is
	// moved onto TaxCreditApplied and cleared by MigrateProfile.
	LegacyAppliedToLoan *bool `json:"appliedToLoan,omitempty" yaml:"appliedToLoan,omitempty"`
}

func (LoanTerms) ProgramType() ProgramType { return ProgramLoan }

// PPATerms is a power purchase agreement or lease billed per produced kWh.
type PPATerms struct {
	InitialRate      float64 `json:"initialRate" yaml:"initialRate"` // $/kWh in the first year
	EscalatorPercent float64 `json:"escalatorPercent" yaml:"escalatorPercent"`
	DownPayment      float64 `json:"downPayment" yaml:"downPayment"`
	PaidOff          bool    `json:"paidOff" yaml:"paidOff"`
	PaidOffYear      int     `json:"paidOffYear" yaml:"paidOffYear"`

	// Lease is set when the program was given as "Lease". It only changes
	// the name the program is reported under.
	Lease bool `json:"-" yaml:"-"`
}

func (PPATerms) ProgramType() ProgramType { return ProgramPPA }

// OtherTerms is any arrangement with a flat monthly payment.
type OtherTerms struct {
	MonthlyPayment float64 `json:"monthlyPayment" yaml:"monthlyPayment"`
}

func (OtherTerms) ProgramType() ProgramType { return ProgramOther }

// Financing holds exactly one program's terms. It is encoded as
// {"program": "Loan", "terms": {...}}.
type Financing struct {
	Program
}

// Type returns the program type or the empty string if unset.
func (f Financing) Type() ProgramType {
	if f.Program == nil {
		return ""
	}
	return f.Program.ProgramType()
}

// Name returns the program name as the homeowner gave it, which is "Lease"
// for a PPA decoded from that name.
func (f Financing) Name() string {
	if t, ok := f.Program.(PPATerms); ok && t.Lease {
		return leaseName
	}
	return string(f.Type())
}

const leaseName = "Lease"

type financingEnvelope struct {
	Program string `json:"program" yaml:"program"`
	Terms   any    `json:"terms" yaml:"terms"`
}

// newTerms returns a pointer to zero terms for the given program name.
func newTerms(name string) (any, error) {
	pt, err := ParseProgramType(name)
	if err != nil {
		return nil, err
	}
	switch pt {
	case ProgramCash:
		return &CashTerms{}, nil
	case ProgramLoan:
		return &LoanTerms{}, nil
	case ProgramPPA:
		return &PPATerms{}, nil
	default:
		return &OtherTerms{}, nil
	}
}

func derefTerms(name string, v any) Program {
	switch t := v.(type) {
	case *CashTerms:
		return *t
	case *LoanTerms:
		return *t
	case *PPATerms:
		t.Lease = name == leaseName
		return *t
	case *OtherTerms:
		return *t
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Financing) MarshalJSON() ([]byte, error) {
	return json.Marshal(financingEnvelope{Program: f.Name(), Terms: f.Program})
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Financing) UnmarshalJSON(b []byte) error {
	var raw struct {
		Program string          `json:"program"`
		Terms   json.RawMessage `json:"terms"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	terms, err := newTerms(raw.Program)
	if err != nil {
		return err
	}
	if len(raw.Terms) > 0 {
		if err := json.Unmarshal(raw.Terms, terms); err != nil {
			return fmt.Errorf("invalid %s terms: %w", raw.Program, err)
		}
	}
	f.Program = derefTerms(raw.Program, terms)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Financing) MarshalYAML() (any, error) {
	return financingEnvelope{Program: f.Name(), Terms: f.Program}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Financing) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Program string    `yaml:"program"`
		Terms   yaml.Node `yaml:"terms"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	terms, err := newTerms(raw.Program)
	if err != nil {
		return err
	}
	if raw.Terms.Kind != 0 {
		if err := raw.Terms.Decode(terms); err != nil {
			return fmt.Errorf("invalid %s terms: %w", raw.Program, err)
		}
	}
	f.Program = derefTerms(raw.Program, terms)
	return nil
}
