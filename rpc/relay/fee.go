package relay

import (
	"math/big"

	"github.com/gasrelay/relay-contract/contracts/relay/relayconst"
)

var feeRateDenominator = big.NewInt(relayconst.FeeRateDenominator)

// ComputeFee returns fee charged by the Relay contract for the gas amount at
// the given rate. It matches `computeFee` contract method.
func ComputeFee(gasAmount, rate *big.Int) *big.Int {
	fee := new(big.Int).Mul(gasAmount, rate)
	return fee.Quo(fee, feeRateDenominator)
}

// TotalCost returns amount debited from the owner balance for a relayed call
// with the given gas amount.
func TotalCost(gasAmount, rate *big.Int) *big.Int {
	return new(big.Int).Add(gasAmount, ComputeFee(gasAmount, rate))
}
