package runtime

import (
	"context"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/filecoin-project/go-state-types/rt"
	"github.com/ipfs/go-cid"
)

// Runtime is the node-supplied execution context for actor methods: the
// current chain position, the message caller, the state store, and the
// abort/log channels. One block is fully processed before the next begins,
// so implementations need no internal synchronisation.
type Runtime interface {
	// The epoch of the block currently being processed.
	CurrEpoch() abi.ChainEpoch

	// The immediate caller of the current method.
	Caller() addr.Address

	// The address of the actor receiving the current call.
	Receiver() addr.Address

	// Validates that the immediate caller is one of the given addresses,
	// aborting otherwise. Every method must validate its caller exactly once.
	ValidateImmediateCallerIs(addrs ...addr.Address)

	// Validates the caller against no requirement.
	ValidateImmediateCallerAcceptAny()

	// The author of the block currently being processed, decoded from the
	// consensus pre-runtime digest by the node. Absent when the digest
	// carries no recognizable author identity.
	BlockAuthor() (addr.Address, bool)

	// Initializes the receiver's state object.
	StateCreate(obj cbor.Marshaler)

	// Loads a read-only copy of the receiver's state into obj.
	StateReadonly(obj cbor.Unmarshaler)

	// Loads the receiver's state into obj, runs f, and commits the mutated
	// obj back. All-or-nothing: an abort inside f discards the mutation.
	StateTransaction(obj cbor.Er, f func())

	// Direct access to the underlying state store.
	StoreGet(c cid.Cid, o cbor.Unmarshaler) bool
	StorePut(x cbor.Marshaler) cid.Cid
	Context() context.Context

	// Abortf halts the current call with an exit code, discarding any state
	// changes made inside an open transaction.
	Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{})

	// Log writes through to the node's logger.
	Log(level rt.LogLevel, msg string, args ...interface{})
}

// VMActor is the interface all actor implementations satisfy: numbered
// method exports, a code CID, and a state factory.
type VMActor = rt.VMActor
