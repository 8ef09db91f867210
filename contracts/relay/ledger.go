package relay

import (
	"github.com/gasrelay/relay-contract/contracts/relay/relayconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	adminKey        = 'a'
	feeRateKey      = 'r'
	relayPurseKey   = 'p'
	depositPurseKey = 'd'
	feePurseKey     = 'f'
	ledgerTotalKey  = 's'

	registryPrefix = 't'
	balancePrefix  = 'o'
)

func registryKey(target interop.Hash160) []byte {
	return append([]byte{registryPrefix}, target...)
}

func balanceKey(owner interop.Hash160) []byte {
	return append([]byte{balancePrefix}, owner...)
}

// resolveOwner returns owner of the registered target or panics with
// ErrUnregistered.
func resolveOwner(ctx storage.Context, target interop.Hash160) interop.Hash160 {
	data := storage.Get(ctx, registryKey(target))
	if data == nil {
		panic(relayconst.ErrUnregistered)
	}

	return data.(interop.Hash160)
}

// hasBalance checks whether ledger entry of the owner exists.
func hasBalance(ctx storage.Context, owner interop.Hash160) bool {
	return storage.Get(ctx, balanceKey(owner)) != nil
}

// mustBalance returns balance of the owner which must already have a ledger
// entry, otherwise it panics with ErrUnregistered.
func mustBalance(ctx storage.Context, owner interop.Hash160) int {
	data := storage.Get(ctx, balanceKey(owner))
	if data == nil {
		panic(relayconst.ErrUnregistered)
	}

	return data.(int)
}

// initBalance creates zero ledger entry for the owner if it is missing.
func initBalance(ctx storage.Context, owner interop.Hash160) {
	if !hasBalance(ctx, owner) {
		storage.Put(ctx, balanceKey(owner), 0)
	}
}

// credit moves amount from the relay purse into the deposit purse and
// credits the owner.
func credit(ctx storage.Context, owner interop.Hash160, amount int) {
	balance := mustBalance(ctx, owner)

	relayPurse := getInt(ctx, relayPurseKey)
	if relayPurse < amount {
		panic(relayconst.ErrInsufficientAmount)
	}

	storage.Put(ctx, relayPurseKey, relayPurse-amount)
	storage.Put(ctx, depositPurseKey, getInt(ctx, depositPurseKey)+amount)
	storage.Put(ctx, balanceKey(owner), balance+amount)
	storage.Put(ctx, ledgerTotalKey, getInt(ctx, ledgerTotalKey)+amount)

	checkEscrow(ctx)
}

// debit withdraws gas amount and fee from the owner balance. Gas amount
// leaves the deposit purse, fee goes to the fee purse.
func debit(ctx storage.Context, owner interop.Hash160, gasAmount, fee int) {
	balance := mustBalance(ctx, owner)

	total := gasAmount + fee
	if balance < total {
		panic(relayconst.ErrInsufficientBalance)
	}

	storage.Put(ctx, balanceKey(owner), balance-total)
	storage.Put(ctx, ledgerTotalKey, getInt(ctx, ledgerTotalKey)-total)
	storage.Put(ctx, depositPurseKey, getInt(ctx, depositPurseKey)-total)
	if fee > 0 {
		storage.Put(ctx, feePurseKey, getInt(ctx, feePurseKey)+fee)
	}

	checkEscrow(ctx)
}

// checkEscrow panics if the ledger promises more than the deposit purse holds.
func checkEscrow(ctx storage.Context) {
	if getInt(ctx, ledgerTotalKey) > getInt(ctx, depositPurseKey) {
		panic("ledger exceeds escrowed funds")
	}
}

func getInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}
