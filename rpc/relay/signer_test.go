package relay

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestPaymasterSigner(t *testing.T) {
	acc := util.Uint160{1, 2, 3}

	s := PaymasterSigner(acc)
	require.Equal(t, acc, s.Account)
	require.Equal(t, transaction.CalledByEntry, s.Scopes)
	require.Empty(t, s.AllowedContracts)
	require.Empty(t, s.Rules)
}
