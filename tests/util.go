package tests

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	relayPath   = "../contracts/relay"
	depositPath = "../contracts/deposit"
	samplePath  = "../contracts/sample"

	drainerPath = "../internal/testcontracts/drainer"
)

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func compile(t *testing.T, e *neotest.Executor, ctrPath string) *neotest.Contract {
	return neotest.CompileFile(t, e.CommitteeHash, ctrPath, path.Join(ctrPath, "config.yml"))
}

// deployRelayContract deploys the Relay contract administrated by admin.
func deployRelayContract(t *testing.T, e *neotest.Executor, admin util.Uint160) util.Uint160 {
	c := compile(t, e, relayPath)
	e.DeployContract(t, c, []any{admin})
	return c.Hash
}

// deploySampleContract deploys the Sample contract trusting calls from the
// forwarders.
func deploySampleContract(t *testing.T, e *neotest.Executor, forwarders ...util.Uint160) util.Uint160 {
	args := make([]any, len(forwarders))
	for i := range forwarders {
		args[i] = forwarders[i]
	}

	c := compile(t, e, samplePath)
	e.DeployContract(t, c, args)
	return c.Hash
}

func deployDepositContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := compile(t, e, depositPath)
	e.DeployContract(t, c, nil)
	return c.Hash
}

// transferGAS sends amount of GAS from the signer to the contract with data.
func transferGAS(t *testing.T, e *neotest.Executor, from neotest.Signer, to util.Uint160, amount int64, data any) util.Uint256 {
	gasInvoker := e.NewInvoker(e.NativeHash(t, nativenames.Gas), from)
	return gasInvoker.Invoke(t, true, "transfer", from.ScriptHash(), to, amount, data)
}

// gasBalance returns current GAS balance of the account.
func gasBalance(e *neotest.Executor, acc util.Uint160) *big.Int {
	return e.Chain.GetUtilityTokenBalance(acc)
}

// txFee returns total GAS paid by the sender of the transaction.
func txFee(t *testing.T, e *neotest.Executor, h util.Uint256) *big.Int {
	tx, _ := e.GetTransaction(t, h)
	return big.NewInt(tx.SystemFee + tx.NetworkFee)
}

// checkInts calls safe method returning array of integers and checks the
// result.
func checkInts(t *testing.T, c *neotest.ContractInvoker, expected []int64, method string, args ...any) {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	arr, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, arr, len(expected))

	for i := range arr {
		v, err := arr[i].TryInteger()
		require.NoError(t, err)
		require.Equal(t, expected[i], v.Int64(), "%s: element #%d", method, i)
	}
}

// invokeSigned sends the transaction calling the contract method signed by
// acc with the given signer scope and returns its hash. Execution result is
// not checked.
func invokeSigned(t *testing.T, e *neotest.Executor, acc neotest.Signer, signer transaction.Signer,
	contract util.Uint160, method string, args ...any) util.Uint256 {
	tx := e.NewUnsignedTx(t, contract, method, args...)
	tx.Signers = []transaction.Signer{signer}

	neotest.AddNetworkFee(e.Chain, tx, acc)
	neotest.AddSystemFee(e.Chain, tx, -1)
	require.NoError(t, acc.SignTx(e.Chain.GetConfig().Magic, tx))

	e.AddNewBlock(t, tx)

	return tx.Hash()
}
