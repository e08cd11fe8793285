package adt

import (
	"bytes"

	amt "github.com/filecoin-project/go-amt-ipld/v2"
	"github.com/filecoin-project/go-state-types/cbor"
	cid "github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// Array stores a sparse sequence of values in an AMT.
// Keys are uint64 indices; iteration is in ascending index order, which the
// schedule queues rely on.
type Array struct {
	root  *amt.Root
	store Store
}

// AsArray interprets a store as an AMT-based array with root `r`.
func AsArray(s Store, r cid.Cid) (*Array, error) {
	root, err := amt.LoadAMT(s.Context(), s, r)
	if err != nil {
		return nil, xerrors.Errorf("failed to root: %w", err)
	}

	return &Array{
		root:  root,
		store: s,
	}, nil
}

// Creates a new array backed by an empty AMT.
func MakeEmptyArray(s Store) *Array {
	root := amt.NewAMT(s)
	return &Array{
		root:  root,
		store: s,
	}
}

// Creates and stores a new empty array, returning its CID.
func StoreEmptyArray(s Store) (cid.Cid, error) {
	arr := MakeEmptyArray(s)
	return arr.Root()
}

// Returns the root CID of the underlying AMT.
func (a *Array) Root() (cid.Cid, error) {
	return a.root.Flush(a.store.Context())
}

// Set adds value `v` with index `i` to the AMT store.
func (a *Array) Set(i uint64, value cbor.Marshaler) error {
	if err := a.root.Set(a.store.Context(), i, value); err != nil {
		return xerrors.Errorf("array set failed to set index %v in root %v: %w", i, a.root, err)
	}
	return nil
}

// Removes index `i` from the AMT, expecting it to exist.
func (a *Array) Delete(i uint64) error {
	if err := a.root.Delete(a.store.Context(), i); err != nil {
		return xerrors.Errorf("array delete failed to delete index %v in root %v: %w", i, a.root, err)
	}
	return nil
}

// Get retrieves array element into the 'out' unmarshaler, returning a boolean
//  indicating whether the element was found in the array
func (a *Array) Get(i uint64, out cbor.Unmarshaler) (bool, error) {
	if err := a.root.Get(a.store.Context(), i, out); err != nil {
		if _, nf := err.(*amt.ErrNotFound); nf {
			return false, nil
		}
		return false, xerrors.Errorf("failed to get index %v in root %v: %w", i, a.root, err)
	}
	return true, nil
}

// Number of entries in the array.
func (a *Array) Length() uint64 {
	return a.root.Count
}

// Iterates all entries in the array, deserializing each value in turn into `out` and then calling a function.
// Iteration halts if the function returns an error.
// If the output parameter is nil, deserialization is skipped.
func (a *Array) ForEach(out cbor.Unmarshaler, fn func(i int64) error) error {
	return a.root.ForEach(a.store.Context(), func(k uint64, val *cbg.Deferred) error {
		if out != nil {
			if err := out.UnmarshalCBOR(bytes.NewReader(val.Raw)); err != nil {
				return err
			}
		}
		return fn(int64(k))
	})
}
