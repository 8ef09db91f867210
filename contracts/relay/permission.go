package relay

import (
	"github.com/gasrelay/relay-contract/contracts/relay/relayconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// requireAdmin panics with ErrUnauthorized unless the administrator witnessed
// the transaction. It returns the administrator on success.
func requireAdmin(ctx storage.Context) interop.Hash160 {
	admin := storage.Get(ctx, adminKey).(interop.Hash160)
	if !runtime.CheckWitness(admin) {
		panic(relayconst.ErrUnauthorized)
	}

	return admin
}
