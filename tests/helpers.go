package tests

import (
	"testing"

	"github.com/gasrelay/relay-contract/rpc/relay"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

// txEvents returns notifications with the given name emitted by the contract
// during the transaction execution.
func txEvents(t testing.TB, e *neotest.Executor, h util.Uint256, contract util.Uint160, name string) []state.NotificationEvent {
	aer := e.GetTxExecResult(t, h)

	var res []state.NotificationEvent
	for i := range aer.Events {
		if aer.Events[i].ScriptHash.Equals(contract) && aer.Events[i].Name == name {
			res = append(res, aer.Events[i])
		}
	}

	return res
}

func callOnBehalfEvent(t testing.TB, e *neotest.Executor, h util.Uint256, contract util.Uint160) relay.CallOnBehalfEvent {
	evs := txEvents(t, e, h, contract, "CallOnBehalf")
	require.Len(t, evs, 1)

	var res relay.CallOnBehalfEvent
	require.NoError(t, res.FromStackItem(evs[0].Item))

	return res
}

func depositEvent(t testing.TB, e *neotest.Executor, h util.Uint256, contract util.Uint160) relay.DepositEvent {
	evs := txEvents(t, e, h, contract, "Deposit")
	require.Len(t, evs, 1)

	var res relay.DepositEvent
	require.NoError(t, res.FromStackItem(evs[0].Item))

	return res
}

func registerEvent(t testing.TB, e *neotest.Executor, h util.Uint256, contract util.Uint160) relay.RegisterEvent {
	evs := txEvents(t, e, h, contract, "Register")
	require.Len(t, evs, 1)

	var res relay.RegisterEvent
	require.NoError(t, res.FromStackItem(evs[0].Item))

	return res
}
