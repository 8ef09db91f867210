package relay

import (
	"github.com/gasrelay/relay-contract/common"
	"github.com/gasrelay/relay-contract/contracts/relay/relayconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	ctx := storage.GetContext()

	var admin interop.Hash160
	if data != nil {
		args := data.([]any)
		if len(args) > 0 {
			admin = args[0].(interop.Hash160)
		}
	}

	if len(admin) != interop.Hash160Len {
		admin = runtime.GetScriptContainer().Sender
	}

	storage.Put(ctx, adminKey, admin)
	storage.Put(ctx, feeRateKey, 0)
	storage.Put(ctx, relayPurseKey, 0)
	storage.Put(ctx, depositPurseKey, 0)
	storage.Put(ctx, feePurseKey, 0)
	storage.Put(ctx, ledgerTotalKey, 0)

	runtime.Log("relay contract initialized")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Without data, received GAS is kept in the relay purse until the next
// Deposit call. If data is an owner script hash, received GAS is credited to
// that owner right away. The owner must be registered in both cases.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("relay contract accepts GAS only")
	}

	ctx := storage.GetContext()

	storage.Put(ctx, relayPurseKey, getInt(ctx, relayPurseKey)+amount)

	if data == nil {
		runtime.Log("funds have been put into relay purse")
		return
	}

	owner := data.(interop.Hash160)
	if len(owner) != interop.Hash160Len {
		common.AbortWithMessage("invalid data argument, expected Hash160")
	}

	credit(ctx, owner, amount)

	runtime.Notify("Deposit", owner, amount)
}

// Register binds target contract to the owner paying for its calls. If the
// owner has no balance yet, zero balance is created for it. Target can be
// re-bound to another owner by a repeated call. It can be invoked only by the
// administrator.
//
// It produces Register notification.
func Register(target, owner interop.Hash160) {
	ctx := storage.GetContext()

	requireAdmin(ctx)

	if len(target) != interop.Hash160Len || len(owner) != interop.Hash160Len {
		panic("invalid script hash")
	}

	initBalance(ctx, owner)
	storage.Put(ctx, registryKey(target), owner)

	runtime.Notify("Register", target, owner)
}

// Deposit moves everything stored in the relay purse to the deposit purse
// and credits the owner with this amount. The owner must be registered.
//
// It produces Deposit notification.
func Deposit(owner interop.Hash160) {
	ctx := storage.GetContext()

	if !hasBalance(ctx, owner) {
		panic(relayconst.ErrUnregistered)
	}

	amount := getInt(ctx, relayPurseKey)
	credit(ctx, owner, amount)

	runtime.Notify("Deposit", owner, amount)
}

// CallOnBehalf invokes method of the registered target contract paying for
// it from the target owner balance. Gas amount and fee are debited from the
// owner balance and gas amount is transferred to the administrator (the
// paymaster fronting transaction fees). If payAmount is positive, it is
// transferred from the relay purse to the account returned by `getPurse`
// method of the target. Caller is appended to the args as the last argument.
// It can be invoked only by the administrator.
//
// Any failure including the one of the target method aborts the whole
// invocation.
//
// It produces CallOnBehalf notification.
func CallOnBehalf(target interop.Hash160, method string, caller interop.Hash160,
	gasAmount, payAmount int, args []any) {
	ctx := storage.GetContext()

	admin := requireAdmin(ctx)

	if gasAmount < 0 || payAmount < 0 {
		panic(relayconst.ErrNegativeAmount)
	}

	owner := resolveOwner(ctx, target)
	fee := computeFee(gasAmount, getInt(ctx, feeRateKey))

	debit(ctx, owner, gasAmount, fee)

	self := runtime.GetExecutingScriptHash()

	if gasAmount > 0 && !gas.Transfer(self, admin, gasAmount, nil) {
		panic("failed to transfer gas amount, aborting")
	}

	if payAmount > 0 {
		relayPurse := getInt(ctx, relayPurseKey)
		if relayPurse < payAmount {
			panic(relayconst.ErrInsufficientAmount)
		}

		recipient := contract.Call(target, "getPurse", contract.ReadOnly).(interop.Hash160)
		if len(recipient) != interop.Hash160Len {
			panic("invalid target purse")
		}

		storage.Put(ctx, relayPurseKey, relayPurse-payAmount)

		if !gas.Transfer(self, recipient, payAmount, nil) {
			panic("failed to transfer pay amount, aborting")
		}
	}

	if args == nil {
		args = []any{}
	}

	args = append(args, caller)
	contract.Call(target, method, contract.All, args...)

	var tokenHash interop.Hash160

	runtime.Notify("CallOnBehalf", target, owner, caller, method, gasAmount, tokenHash)
}

// GetPurse returns the account receiving deposits of the relay purse.
func GetPurse() interop.Hash160 {
	return runtime.GetExecutingScriptHash()
}

// SetFeeRate sets fee rate in parts per thousand of the gas amount. The rate
// must not exceed relayconst.MaxFeeRate. It can be invoked only by the
// administrator.
func SetFeeRate(rate int) {
	ctx := storage.GetContext()

	requireAdmin(ctx)

	if rate < 0 {
		panic(relayconst.ErrNegativeAmount)
	}

	if rate > relayconst.MaxFeeRate {
		panic(relayconst.ErrFeeRateTooBig)
	}

	storage.Put(ctx, feeRateKey, rate)
	runtime.Log("fee rate has been set to " + std.Itoa10(rate))
}

// ClaimFee transfers all GAS collected in the fee purse to the administrator.
// It can be invoked only by the administrator.
func ClaimFee() {
	ctx := storage.GetContext()

	admin := requireAdmin(ctx)

	amount := getInt(ctx, feePurseKey)
	storage.Put(ctx, feePurseKey, 0)

	if amount > 0 && !gas.Transfer(runtime.GetExecutingScriptHash(), admin, amount, nil) {
		panic("failed to transfer fee, aborting")
	}

	runtime.Log("fee has been claimed")
}

// Admin returns the administrator of the contract.
func Admin() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), adminKey).(interop.Hash160)
}

// FeeRate returns current fee rate in parts per thousand.
func FeeRate() int {
	return getInt(storage.GetReadOnlyContext(), feeRateKey)
}

// ComputeFee returns fee charged at the current fee rate for the gas amount.
func ComputeFee(gasAmount int) int {
	if gasAmount < 0 {
		panic(relayconst.ErrNegativeAmount)
	}

	return computeFee(gasAmount, FeeRate())
}

// BalanceOf returns balance of the owner. Zero is returned for unknown
// owners.
func BalanceOf(owner interop.Hash160) int {
	return getInt(storage.GetReadOnlyContext(), balanceKey(owner))
}

// OwnerOf returns owner of the registered target or nil if the target is
// unknown.
func OwnerOf(target interop.Hash160) interop.Hash160 {
	data := storage.Get(storage.GetReadOnlyContext(), registryKey(target))
	if data == nil {
		return nil
	}

	return data.(interop.Hash160)
}

// Purses returns balances of the relay, deposit and fee purses in this order.
func Purses() []int {
	ctx := storage.GetReadOnlyContext()

	return []int{
		getInt(ctx, relayPurseKey),
		getInt(ctx, depositPurseKey),
		getInt(ctx, feePurseKey),
	}
}

// LedgerTotal returns sum of all owner balances.
func LedgerTotal() int {
	return getInt(storage.GetReadOnlyContext(), ledgerTotalKey)
}

// IterateRegistry iterates over registered targets. Iteration is through
// key-value pair, where key is target script hash, value is owner script hash.
func IterateRegistry() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{registryPrefix}, storage.RemovePrefix)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func computeFee(gasAmount, rate int) int {
	if gasAmount > relayconst.MaxGASAmount {
		panic(relayconst.ErrAmountTooBig)
	}

	return gasAmount * rate / relayconst.FeeRateDenominator
}
