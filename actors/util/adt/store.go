package adt

import (
	"context"

	"github.com/filecoin-project/go-state-types/cbor"
	cid "github.com/ipfs/go-cid"
	ipldcbor "github.com/ipfs/go-ipld-cbor"
	"github.com/pkg/errors"
)

// Store defines an interface required to back the ADTs in this package.
type Store interface {
	Context() context.Context
	ipldcbor.IpldStore
}

// Adapts a vanilla IPLD store as an ADT store.
func WrapStore(ctx context.Context, store ipldcbor.IpldStore) Store {
	return &wstore{
		ctx:       ctx,
		IpldStore: store,
	}
}

type wstore struct {
	ctx context.Context
	ipldcbor.IpldStore
}

var _ Store = &wstore{}

func (s *wstore) Context() context.Context {
	return s.ctx
}

// Runtime is the subset of the actor runtime this package needs to reach
// the state store.
type Runtime interface {
	StoreGet(c cid.Cid, o cbor.Unmarshaler) bool
	StorePut(x cbor.Marshaler) cid.Cid
	Context() context.Context
}

// Adapts a Runtime as an ADT store.
func AsStore(rt Runtime) Store {
	return rtStore{rt}
}

type rtStore struct {
	Runtime
}

var _ Store = &rtStore{}

func (r rtStore) Get(_ context.Context, c cid.Cid, out interface{}) error {
	if !r.StoreGet(c, out.(cbor.Unmarshaler)) {
		return errors.Errorf("not found %v", c)
	}
	return nil
}

func (r rtStore) Put(_ context.Context, v interface{}) (cid.Cid, error) {
	return r.StorePut(v.(cbor.Marshaler)), nil
}
