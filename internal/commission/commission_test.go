package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var standardMeters = Meters{
	PreviousIn:  1000,
	PreviousOut: 800,
	CurrentIn:   1300,
	CurrentOut:  900,
}

func TestCalculate_PercentageClientNoOperator(t *testing.T) {
	// net_play = (1300-1000) - (900-800) = 200, gross = 200 * 0.10 = 20.00
	result := Calculate(standardMeters, 0.10, Policy{Type: PolicyPercentage, Value: 10}, nil)

	assert.Equal(t, 20.00, result.GrossValue)
	assert.Equal(t, 2.00, result.ClientCommission)
	assert.Equal(t, 0.00, result.OperatorCommission)
	assert.Equal(t, 18.00, result.NetValue)
}

func TestCalculate_FixedClientWithPercentageOperator(t *testing.T) {
	operator := Policy{Type: PolicyPercentage, Value: 50}
	result := Calculate(standardMeters, 0.10, Policy{Type: PolicyFixed, Value: 5.00}, &operator)

	assert.Equal(t, 20.00, result.GrossValue)
	assert.Equal(t, 5.00, result.ClientCommission)
	assert.Equal(t, 10.00, result.OperatorCommission)
	assert.Equal(t, 5.00, result.NetValue)
}

func TestCalculate_NegativeNetPlay(t *testing.T) {
	// The in counter went backwards while out held still, a paying-out period.
	meters := Meters{
		PreviousIn:  1000,
		PreviousOut: 800,
		CurrentIn:   900,
		CurrentOut:  800,
	}
	result := Calculate(meters, 0.10, Policy{Type: PolicyFixed, Value: 5.00}, nil)

	assert.Equal(t, -10.00, result.GrossValue)
	assert.Equal(t, 5.00, result.ClientCommission, "fixed commission does not follow sign")
	assert.Equal(t, -15.00, result.NetValue)
	assert.Less(t, result.NetValue, result.GrossValue)
}

func TestCalculate_PercentageFollowsNegativeGross(t *testing.T) {
	meters := Meters{
		PreviousIn:  1000,
		PreviousOut: 800,
		CurrentIn:   900,
		CurrentOut:  800,
	}
	result := Calculate(meters, 0.10, Policy{Type: PolicyPercentage, Value: 10}, nil)

	assert.Equal(t, -10.00, result.GrossValue)
	assert.Equal(t, -1.00, result.ClientCommission)
	assert.Equal(t, -9.00, result.NetValue)
}

func TestCalculate_PercentageScalesLinearly(t *testing.T) {
	client := Policy{Type: PolicyPercentage, Value: 10}

	small := Calculate(standardMeters, 0.10, client, nil)
	large := Calculate(standardMeters, 1.00, client, nil)

	assert.Equal(t, 10*small.GrossValue, large.GrossValue)
	assert.Equal(t, 10*small.ClientCommission, large.ClientCommission)
}

func TestCalculate_FixedInvariantToGross(t *testing.T) {
	client := Policy{Type: PolicyFixed, Value: 7.50}

	small := Calculate(standardMeters, 0.01, client, nil)
	large := Calculate(standardMeters, 1.00, client, nil)

	assert.Equal(t, 7.50, small.ClientCommission)
	assert.Equal(t, 7.50, large.ClientCommission)
}

func TestCalculate_RoundsHalfAwayFromZero(t *testing.T) {
	// net_play = 1, gross = 0.125 rounds up to 0.13
	meters := Meters{PreviousIn: 0, PreviousOut: 0, CurrentIn: 1, CurrentOut: 0}
	result := Calculate(meters, 0.125, Policy{Type: PolicyPercentage, Value: 0}, nil)

	assert.Equal(t, 0.13, result.GrossValue)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -0.13, Round2(-0.125))
	assert.Equal(t, 2.00, Round2(2.004))
	assert.Equal(t, 2.01, Round2(2.005))
	assert.Equal(t, 18.00, Round2(18.000000000001))
}

func TestApply_ZeroGross(t *testing.T) {
	assert.Equal(t, 0.0, Policy{Type: PolicyPercentage, Value: 25}.Apply(0))
	assert.Equal(t, 3.0, Policy{Type: PolicyFixed, Value: 3}.Apply(0))
}
