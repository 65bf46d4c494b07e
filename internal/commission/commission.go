// Package commission implements the revenue and commission calculation
// applied to every meter reading. It is pure arithmetic on pre-validated
// inputs and never fails.
package commission

import "github.com/shopspring/decimal"

// PolicyType discriminates the two commission models.
type PolicyType string

const (
	// PolicyPercentage takes a percentage of gross value and follows its sign.
	PolicyPercentage PolicyType = "percentage"
	// PolicyFixed takes a constant amount regardless of gross value.
	PolicyFixed PolicyType = "fixed"
)

// Policy is a commission rule held by a client or an operator.
type Policy struct {
	Type  PolicyType
	Value float64
}

// Apply returns the commission this policy yields on the given gross value.
// A percentage policy scales with gross (a loss period yields a negative,
// refund-like commission); a fixed policy returns its value unchanged even
// when gross is zero or negative.
func (p Policy) Apply(gross float64) float64 {
	if p.Type == PolicyPercentage {
		return gross * (p.Value / 100)
	}
	return p.Value
}

// Meters is the raw counter quadruple submitted with a reading. Current
// values are expected to be >= previous but this is not enforced; a negative
// delta is a legitimate paying-out period.
type Meters struct {
	PreviousIn  float64
	PreviousOut float64
	CurrentIn   float64
	CurrentOut  float64
}

// Result carries the four derived monetary fields of a reading, each rounded
// to 2 decimal places.
type Result struct {
	GrossValue         float64
	ClientCommission   float64
	OperatorCommission float64
	NetValue           float64
}

// Calculate derives gross value, both commissions and net value from a meter
// quadruple, the owning machine's multiplier and the applicable policies.
// operator is nil when the machine has no operator linked, in which case the
// operator commission is zero. The multiplier is assumed validated positive
// upstream. No floor is applied to net value; it may be negative.
func Calculate(m Meters, multiplier float64, client Policy, operator *Policy) Result {
	netPlay := (m.CurrentIn - m.PreviousIn) - (m.CurrentOut - m.PreviousOut)
	gross := netPlay * multiplier

	clientCommission := client.Apply(gross)

	var operatorCommission float64
	if operator != nil {
		operatorCommission = operator.Apply(gross)
	}

	net := gross - clientCommission - operatorCommission

	return Result{
		GrossValue:         Round2(gross),
		ClientCommission:   Round2(clientCommission),
		OperatorCommission: Round2(operatorCommission),
		NetValue:           Round2(net),
	}
}

// Round2 rounds to 2 decimal places, half away from zero. Report aggregation
// uses the same rounding so per-reading and summed figures stay consistent.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
