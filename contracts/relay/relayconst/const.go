// Package relayconst contains constants shared between the Relay contract and
// its off-chain users.
package relayconst

// Exception messages thrown by the Relay contract.
const (
	// ErrUnauthorized is thrown when a privileged method is not witnessed by
	// the contract administrator.
	ErrUnauthorized = "unauthorized"
	// ErrUnregistered is thrown when a target or an owner is not known to the
	// contract.
	ErrUnregistered = "unregistered"
	// ErrInsufficientBalance is thrown when an owner balance can't cover the
	// requested gas amount together with the fee.
	ErrInsufficientBalance = "insufficient balance"
	// ErrInsufficientAmount is thrown when the relay purse can't cover the
	// amount paid to the target.
	ErrInsufficientAmount = "insufficient amount"
	// ErrNegativeAmount is thrown when any amount or rate argument is negative.
	ErrNegativeAmount = "negative amount"
	// ErrFeeRateTooBig is thrown when the fee rate exceeds MaxFeeRate.
	ErrFeeRateTooBig = "fee rate too big"
	// ErrAmountTooBig is thrown when the gas amount exceeds MaxGASAmount.
	ErrAmountTooBig = "amount too big"
)

const (
	// FeeRateDenominator is the divisor of the fee rate: the rate is set in
	// parts per thousand of the gas amount.
	FeeRateDenominator = 1000

	// MaxFeeRate is the highest accepted fee rate, the fee is at most 1000
	// times the gas amount.
	MaxFeeRate = 1_000_000

	// MaxGASAmount is the highest gas amount the fee is computed for. Together
	// with MaxFeeRate it keeps the fee product far below the NeoVM integer
	// limit.
	MaxGASAmount = 1<<63 - 1
)
