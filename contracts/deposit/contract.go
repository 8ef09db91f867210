package deposit

import (
	"github.com/gasrelay/relay-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	runtime.Log("deposit contract initialized")
}

// Deposit transfers amount of GAS from the `from` account to the purse of the
// Relay contract and credits it to the owner balance in the same invocation.
// The `from` account must witness the transaction with the scope allowing GAS
// transfer from this contract.
func Deposit(from, relay, owner interop.Hash160, amount int) {
	common.CheckOwnerWitness(from)

	if amount <= 0 {
		panic("amount must be positive")
	}

	purse := contract.Call(relay, "getPurse", contract.ReadOnly).(interop.Hash160)

	if !gas.Transfer(from, purse, amount, nil) {
		panic("failed to transfer funds, aborting")
	}

	contract.Call(relay, "deposit", contract.All, owner)

	runtime.Log("funds have been deposited")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
