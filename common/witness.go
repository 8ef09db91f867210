package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

// ErrOwnerWitnessFailed appears when the method must be called by an owner
// of some assets but was not.
const ErrOwnerWitnessFailed = "owner witness check failed"

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller []byte) {
	if !runtime.CheckWitness(caller) {
		panic(ErrOwnerWitnessFailed)
	}
}
