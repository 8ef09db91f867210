package deposit

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

type matchContext struct {
	calling util.Uint160
	entry   bool
}

func (x matchContext) GetCallingScriptHash() util.Uint160 { return x.calling }

func (x matchContext) GetCurrentScriptHash() util.Uint160 { return util.Uint160{} }

func (x matchContext) CallingScriptHasGroup(*keys.PublicKey) (bool, error) { return false, nil }

func (x matchContext) CurrentScriptHasGroup(*keys.PublicKey) (bool, error) { return false, nil }

func (x matchContext) IsCalledByEntry() bool { return x.entry }

func TestDepositorSigner(t *testing.T) {
	acc := util.Uint160{1}
	helper := util.Uint160{2}

	s := DepositorSigner(acc, helper)
	require.Equal(t, acc, s.Account)
	require.Equal(t, transaction.Rules, s.Scopes)
	require.Len(t, s.Rules, 1)
	require.Equal(t, transaction.WitnessAllow, s.Rules[0].Action)

	for _, tc := range []struct {
		name  string
		ctx   matchContext
		allow bool
	}{
		{name: "entry", ctx: matchContext{entry: true}, allow: true},
		{name: "called by helper", ctx: matchContext{calling: helper}, allow: true},
		{name: "called by other contract", ctx: matchContext{calling: util.Uint160{3}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := s.Rules[0].Condition.Match(tc.ctx)
			require.NoError(t, err)
			require.Equal(t, tc.allow, ok)
		})
	}
}
