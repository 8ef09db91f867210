package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// ForwarderPrefix is a storage prefix of the trusted forwarder allow-list.
// Contracts using the allow-list must not use this byte for other keys.
const ForwarderPrefix = 'F'

// AddTrustedForwarder puts h into the trusted forwarder allow-list.
// It panics if h is not a valid script hash.
func AddTrustedForwarder(ctx storage.Context, h interop.Hash160) {
	if len(h) != interop.Hash160Len {
		panic("invalid forwarder script hash")
	}

	storage.Put(ctx, append([]byte{ForwarderPrefix}, h...), []byte{1})
}

// IsTrustedForwarder checks whether h is present in the trusted forwarder
// allow-list.
func IsTrustedForwarder(ctx storage.Context, h interop.Hash160) bool {
	if len(h) != interop.Hash160Len {
		return false
	}

	return storage.Get(ctx, append([]byte{ForwarderPrefix}, h...)) != nil
}
