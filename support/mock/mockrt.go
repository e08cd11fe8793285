package mock

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"
	ipldcbor "github.com/ipfs/go-ipld-cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poscan-project/rewards-actors/actors/runtime"
	"github.com/poscan-project/rewards-actors/support/ipld"
)

// A mock runtime for unit testing of actors in isolation.
// The mock allows direct driving of epoch, caller, and block author, and
// captures aborts for assertion.
type Runtime struct {
	ctx      context.Context
	receiver addr.Address
	caller   addr.Address
	epoch    abi.ChainEpoch

	blockAuthor     *addr.Address
	callerValidated bool

	store ipldcbor.IpldStore
	state cid.Cid

	inTransaction bool

	t testing.TB
}

var _ runtime.Runtime = (*Runtime)(nil)

type RuntimeBuilder struct {
	ctx      context.Context
	receiver addr.Address
	caller   addr.Address
	epoch    abi.ChainEpoch
}

func NewBuilder(ctx context.Context, receiver addr.Address) RuntimeBuilder {
	return RuntimeBuilder{ctx: ctx, receiver: receiver}
}

func (b RuntimeBuilder) WithCaller(caller addr.Address) RuntimeBuilder {
	b.caller = caller
	return b
}

func (b RuntimeBuilder) WithEpoch(epoch abi.ChainEpoch) RuntimeBuilder {
	b.epoch = epoch
	return b
}

func (b RuntimeBuilder) Build(t testing.TB) *Runtime {
	return &Runtime{
		ctx:      b.ctx,
		receiver: b.receiver,
		caller:   b.caller,
		epoch:    b.epoch,
		store:    ipldcbor.NewCborStore(ipld.NewBlockStoreInMemory()),
		t:        t,
	}
}

///// Test driving methods /////

func (rt *Runtime) SetEpoch(epoch abi.ChainEpoch) {
	rt.epoch = epoch
}

func (rt *Runtime) SetCaller(address addr.Address) {
	rt.caller = address
	rt.callerValidated = false
}

func (rt *Runtime) SetBlockAuthor(author *addr.Address) {
	rt.blockAuthor = author
}

// Reset clears per-call bookkeeping before the next method invocation.
func (rt *Runtime) Reset() {
	rt.callerValidated = false
}

// GetState loads the current state root into out.
func (rt *Runtime) GetState(out cbor.Unmarshaler) {
	found := rt.StoreGet(rt.state, out)
	require.True(rt.t, found, "state not found")
}

///// Runtime interface /////

func (rt *Runtime) CurrEpoch() abi.ChainEpoch {
	return rt.epoch
}

func (rt *Runtime) Caller() addr.Address {
	return rt.caller
}

func (rt *Runtime) Receiver() addr.Address {
	return rt.receiver
}

func (rt *Runtime) ValidateImmediateCallerIs(addrs ...addr.Address) {
	if rt.callerValidated {
		rt.Abortf(exitcode.SysErrorIllegalActor, "caller has already been validated")
	}
	rt.callerValidated = true
	for _, a := range addrs {
		if rt.caller == a {
			return
		}
	}
	rt.Abortf(exitcode.SysErrForbidden, "caller address %v forbidden, allowed: %v", rt.caller, addrs)
}

func (rt *Runtime) ValidateImmediateCallerAcceptAny() {
	if rt.callerValidated {
		rt.Abortf(exitcode.SysErrorIllegalActor, "caller has already been validated")
	}
	rt.callerValidated = true
}

func (rt *Runtime) BlockAuthor() (addr.Address, bool) {
	if rt.blockAuthor == nil {
		return addr.Undef, false
	}
	return *rt.blockAuthor, true
}

func (rt *Runtime) StateCreate(obj cbor.Marshaler) {
	if rt.state.Defined() {
		rt.Abortf(exitcode.SysErrorIllegalActor, "state already constructed")
	}
	rt.state = rt.StorePut(obj)
}

func (rt *Runtime) StateReadonly(obj cbor.Unmarshaler) {
	found := rt.StoreGet(rt.state, obj)
	require.True(rt.t, found, "actor state not found")
}

func (rt *Runtime) StateTransaction(obj cbor.Er, f func()) {
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "nested state transaction")
	}
	rt.StateReadonly(obj)
	rt.inTransaction = true
	defer func() {
		rt.inTransaction = false
	}()
	f()
	rt.state = rt.StorePut(obj)
}

func (rt *Runtime) StoreGet(c cid.Cid, o cbor.Unmarshaler) bool {
	if err := rt.store.Get(rt.ctx, c, o); err != nil {
		return false
	}
	return true
}

func (rt *Runtime) StorePut(x cbor.Marshaler) cid.Cid {
	c, err := rt.store.Put(rt.ctx, x)
	require.NoError(rt.t, err, "storing object")
	return c
}

func (rt *Runtime) Context() context.Context {
	return rt.ctx
}

func (rt *Runtime) Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	rt.t.Logf("Mock Runtime Abort: (%v) %s", errExitCode, fmt.Sprintf(msg, args...))
	panic(abort{errExitCode, fmt.Sprintf(msg, args...)})
}

func (rt *Runtime) Log(level rtt.LogLevel, msg string, args ...interface{}) {
	rt.t.Logf("%v: %s", level, fmt.Sprintf(msg, args...))
}

type abort struct {
	code exitcode.ExitCode
	msg  string
}

func (a abort) String() string {
	return fmt.Sprintf("abort(%v): %s", a.code, a.msg)
}

// ExpectAbort runs a function and asserts it aborts with the given code.
func (rt *Runtime) ExpectAbort(expected exitcode.ExitCode, f func()) {
	prevState := rt.state
	defer func() {
		r := recover()
		if r == nil {
			rt.t.Errorf("expected abort with code %v but call succeeded", expected)
			return
		}
		a, ok := r.(abort)
		if !ok {
			panic(r)
		}
		if a.code != expected {
			rt.t.Fatalf("abort expected code %v, actual (%v) %s", expected, a.code, a.msg)
		}
		// an aborted transaction leaves state untouched
		rt.state = prevState
		rt.callerValidated = false
		rt.inTransaction = false
	}()
	f()
}

// Call invokes a method deserializing nothing; the mock drives actors in
// process so params and returns are passed as Go values.
func (rt *Runtime) Call(method interface{}, params interface{}) interface{} {
	rt.callerValidated = false
	meth := reflect.ValueOf(method)
	ret := meth.Call([]reflect.Value{
		reflect.ValueOf(rt),
		reflect.ValueOf(params),
	})
	return ret[0].Interface()
}

// CheckActorExports asserts that all exported methods follow the calling
// convention: a runtime first parameter, one deserializable params pointer,
// and one deserializable return.
func CheckActorExports(t *testing.T, act interface{ Exports() []interface{} }) {
	for i, m := range act.Exports() {
		if i == 0 {
			assert.Nil(t, m, "send method must be nil")
			continue
		}
		if m == nil {
			continue
		}

		mType := reflect.TypeOf(m)
		require.Equal(t, reflect.Func, mType.Kind(), "method %d is not a function", i)
		require.Equal(t, 2, mType.NumIn(), "method %d has wrong number of parameters", i)
		require.Equal(t, 1, mType.NumOut(), "method %d has wrong number of returns", i)

		rtType := reflect.TypeOf((*runtime.Runtime)(nil)).Elem()
		require.True(t, rtType.AssignableTo(mType.In(0)), "method %d first parameter is not a runtime", i)

		paramType := mType.In(1)
		require.Equal(t, reflect.Ptr, paramType.Kind(), "method %d parameter is not a pointer", i)
		checkMarshalable(t, i, paramType)

		retType := mType.Out(0)
		require.Equal(t, reflect.Ptr, retType.Kind(), "method %d return is not a pointer", i)
		checkMarshalable(t, i, retType)
	}
}

func checkMarshalable(t *testing.T, method int, typ reflect.Type) {
	marshaler := reflect.TypeOf((*cbor.Marshaler)(nil)).Elem()
	unmarshaler := reflect.TypeOf((*cbor.Unmarshaler)(nil)).Elem()
	require.True(t, typ.Implements(marshaler), "method %d type %v is not marshalable", method, typ)
	require.True(t, typ.Implements(unmarshaler), "method %d type %v is not unmarshalable", method, typ)
}
