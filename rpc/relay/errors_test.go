package relay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFault(t *testing.T) {
	require.NoError(t, ParseFault(""))

	for exc, expected := range map[string]error{
		`at instruction 1234 (THROW): unhandled exception: "unauthorized"`:         ErrUnauthorized,
		`at instruction 1234 (THROW): unhandled exception: "unregistered"`:         ErrUnregistered,
		`at instruction 1234 (THROW): unhandled exception: "insufficient balance"`: ErrInsufficientBalance,
		`at instruction 1234 (THROW): unhandled exception: "insufficient amount"`:  ErrInsufficientAmount,
		`at instruction 1234 (THROW): unhandled exception: "negative amount"`:      ErrNegativeAmount,
		`at instruction 1234 (THROW): unhandled exception: "fee rate too big"`:     ErrFeeRateTooBig,
		`at instruction 1234 (THROW): unhandled exception: "amount too big"`:       ErrAmountTooBig,
	} {
		require.ErrorIs(t, ParseFault(exc), expected, exc)
	}

	for _, exc := range []string{
		"some other failure",
		"unauthorized",
		`at instruction 1234 (THROW): unhandled exception: "owner unregistered in the target"`,
		`at instruction 1234 (THROW): unhandled exception: "unauthorized caller"`,
		`at instruction 1234 (THROW): unhandled exception: "insufficient amount`,
		`at instruction 77 (SYSCALL): method not found: unregistered/1`,
	} {
		err := ParseFault(exc)
		require.EqualError(t, err, exc)
		for _, known := range faults {
			require.False(t, errors.Is(err, known), exc)
		}
	}
}
