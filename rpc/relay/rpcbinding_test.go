package relay

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke

	method string
	params []any
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	t.method, t.params = operation, params
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	t.method, t.params = operation, params
	return t.res, t.err
}
func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}
func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{State: "HALT", Stack: items}
}

func TestReader(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	owner := util.Uint160{4, 5, 6}

	t.Run("invoker error", func(t *testing.T) {
		ti.err = errors.New("bad")
		_, err := r.Admin()
		require.Error(t, err)
		ti.err = nil
	})

	t.Run("fault", func(t *testing.T) {
		ti.res = &result.Invoke{State: "FAULT", FaultException: `unhandled exception: "negative amount"`}
		_, err := r.ComputeFee(big.NewInt(-1))
		require.Error(t, err)
		require.ErrorIs(t, ParseFault(err.Error()), ErrNegativeAmount)
	})

	t.Run("admin", func(t *testing.T) {
		ti.res = halt(stackitem.Make(owner.BytesBE()))
		res, err := r.Admin()
		require.NoError(t, err)
		require.Equal(t, owner, res)
		require.Equal(t, "admin", ti.method)
	})

	t.Run("balance", func(t *testing.T) {
		ti.res = halt(stackitem.Make(895))
		res, err := r.BalanceOf(owner)
		require.NoError(t, err)
		require.Equal(t, int64(895), res.Int64())
		require.Equal(t, "balanceOf", ti.method)
		require.Equal(t, []any{owner}, ti.params)
	})

	t.Run("owner of", func(t *testing.T) {
		ti.res = halt(stackitem.Null{})
		res, err := r.OwnerOf(util.Uint160{7})
		require.NoError(t, err)
		require.True(t, res.Equals(util.Uint160{}))

		ti.res = halt(stackitem.Make(owner.BytesBE()))
		res, err = r.OwnerOf(util.Uint160{7})
		require.NoError(t, err)
		require.Equal(t, owner, res)

		ti.res = halt(stackitem.Make([]byte{1, 2, 3}))
		_, err = r.OwnerOf(util.Uint160{7})
		require.Error(t, err)
	})

	t.Run("purses", func(t *testing.T) {
		ti.res = halt(stackitem.Make([]stackitem.Item{
			stackitem.Make(0), stackitem.Make(895), stackitem.Make(5),
		}))
		res, err := r.Purses()
		require.NoError(t, err)
		require.Equal(t, []*big.Int{big.NewInt(0), big.NewInt(895), big.NewInt(5)}, res)
	})
}

func TestEventsFromApplicationLog(t *testing.T) {
	target := util.Uint160{1}
	owner := util.Uint160{2}
	caller := util.Uint160{3}

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					Name: "Register",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(target.BytesBE()),
						stackitem.Make(owner.BytesBE()),
					}),
				},
				{
					Name: "Deposit",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(owner.BytesBE()),
						stackitem.Make(1000),
					}),
				},
				{
					Name: "CallOnBehalf",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(target.BytesBE()),
						stackitem.Make(owner.BytesBE()),
						stackitem.Make(caller.BytesBE()),
						stackitem.Make("setMessage"),
						stackitem.Make(100),
						stackitem.Null{},
					}),
				},
			},
		}},
	}

	regs, err := RegisterEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*RegisterEvent{{Target: target, Owner: owner}}, regs)

	deps, err := DepositEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*DepositEvent{{Owner: owner, Amount: big.NewInt(1000)}}, deps)

	calls, err := CallOnBehalfEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	require.Equal(t, target, calls[0].Target)
	require.Equal(t, owner, calls[0].Owner)
	require.Equal(t, caller, calls[0].Caller)
	require.Equal(t, "setMessage", calls[0].Method)
	require.Equal(t, int64(100), calls[0].GasAmount.Int64())
	require.True(t, calls[0].TokenHash.Equals(util.Uint160{}))

	_, err = DepositEventsFromApplicationLog(nil)
	require.Error(t, err)

	log.Executions[0].Events[1].Item = stackitem.NewArray([]stackitem.Item{stackitem.Make(1)})
	_, err = DepositEventsFromApplicationLog(log)
	require.Error(t, err)
}
