package sample

import (
	"github.com/gasrelay/relay-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	messageKey = 'm'
	callerKey  = 'c'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	ctx := storage.GetContext()

	if data != nil {
		forwarders := data.([]any)
		for i := range forwarders {
			common.AddTrustedForwarder(ctx, forwarders[i].(interop.Hash160))
		}
	}

	runtime.Log("sample contract initialized")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("sample contract accepts GAS only")
	}
}

// SetMessage stores the message together with its author. When invoked by a
// trusted forwarder, caller argument is taken as the author. Otherwise caller
// must witness the transaction.
//
// It produces MessageSet notification.
func SetMessage(message string, caller interop.Hash160) {
	ctx := storage.GetContext()

	if !common.IsTrustedForwarder(ctx, runtime.GetCallingScriptHash()) {
		common.CheckOwnerWitness(caller)
	}

	storage.Put(ctx, messageKey, message)
	storage.Put(ctx, callerKey, caller)

	runtime.Notify("MessageSet", caller, message)
}

// Message returns the last stored message.
func Message() string {
	data := storage.Get(storage.GetReadOnlyContext(), messageKey)
	if data == nil {
		return ""
	}

	return data.(string)
}

// Caller returns author of the last stored message.
func Caller() interop.Hash160 {
	data := storage.Get(storage.GetReadOnlyContext(), callerKey)
	if data == nil {
		return nil
	}

	return data.(interop.Hash160)
}

// GetPurse returns the account receiving payments for the contract calls.
func GetPurse() interop.Hash160 {
	return runtime.GetExecutingScriptHash()
}

// IsTrustedForwarder checks whether the contract trusts caller argument
// passed by h.
func IsTrustedForwarder(h interop.Hash160) bool {
	return common.IsTrustedForwarder(storage.GetReadOnlyContext(), h)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
