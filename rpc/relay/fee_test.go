package relay

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeFee(t *testing.T) {
	for _, tc := range []struct {
		gas, rate, fee int64
	}{
		{1000, 50, 50},
		{999, 50, 49},
		{100, 50, 5},
		{1000, 0, 0},
		{0, 50, 0},
		{19, 50, 0},
		{1000, 1000, 1000},
		{7, 2500, 17},
	} {
		fee := ComputeFee(big.NewInt(tc.gas), big.NewInt(tc.rate))
		require.Equal(t, tc.fee, fee.Int64(), "gas %d, rate %d", tc.gas, tc.rate)
	}

	t.Run("no overflow", func(t *testing.T) {
		gas := new(big.Int).Lsh(big.NewInt(1), 255)
		fee := ComputeFee(gas, big.NewInt(1000))
		require.Equal(t, 0, gas.Cmp(fee))
	})
}

func TestTotalCost(t *testing.T) {
	require.Equal(t, int64(105), TotalCost(big.NewInt(100), big.NewInt(50)).Int64())
	require.Equal(t, int64(100), TotalCost(big.NewInt(100), big.NewInt(0)).Int64())
}
