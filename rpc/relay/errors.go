package relay

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gasrelay/relay-contract/contracts/relay/relayconst"
)

// Errors returned by Relay contract methods.
var (
	ErrUnauthorized        = errors.New(relayconst.ErrUnauthorized)
	ErrUnregistered        = errors.New(relayconst.ErrUnregistered)
	ErrInsufficientBalance = errors.New(relayconst.ErrInsufficientBalance)
	ErrInsufficientAmount  = errors.New(relayconst.ErrInsufficientAmount)
	ErrNegativeAmount      = errors.New(relayconst.ErrNegativeAmount)
	ErrFeeRateTooBig       = errors.New(relayconst.ErrFeeRateTooBig)
	ErrAmountTooBig        = errors.New(relayconst.ErrAmountTooBig)
)

var faults = []error{
	ErrUnauthorized,
	ErrUnregistered,
	ErrInsufficientBalance,
	ErrInsufficientAmount,
	ErrNegativeAmount,
	ErrFeeRateTooBig,
	ErrAmountTooBig,
}

// unhandledException precedes the quoted message of the uncaught exception in
// the FAULT exception text.
const unhandledException = "unhandled exception: "

// ParseFault maps FAULT exception of the Relay contract invocation to one of
// the errors above. Only uncaught exceptions with exactly the same message are
// mapped. Nil is returned for an empty exception. Other exceptions are
// returned as is.
func ParseFault(exception string) error {
	if exception == "" {
		return nil
	}

	if i := strings.LastIndex(exception, unhandledException); i >= 0 {
		msg, err := strconv.Unquote(exception[i+len(unhandledException):])
		if err == nil {
			for _, known := range faults {
				if msg == known.Error() {
					return known
				}
			}
		}
	}

	return errors.New(exception)
}
