package adt_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/require"

	"github.com/poscan-project/rewards-actors/actors/util/adt"
	"github.com/poscan-project/rewards-actors/support/mock"
)

func TestArrayNotFound(t *testing.T) {
	rt := mock.NewBuilder(context.Background(), address.Undef).Build(t)
	store := adt.AsStore(rt)
	arr := adt.MakeEmptyArray(store)

	found, err := arr.Get(7, nil)
	require.NoError(t, err)
	require.False(t, found)
}

// Sparse epoch-keyed entries come back in ascending key order, the access
// pattern the pending-change queues rely on.
func TestArraySparseKeysIterateAscending(t *testing.T) {
	rt := mock.NewBuilder(context.Background(), address.Undef).Build(t)
	store := adt.AsStore(rt)
	arr := adt.MakeEmptyArray(store)

	for _, k := range []uint64{120, 3, 47} {
		v := big.NewIntUnsigned(k)
		require.NoError(t, arr.Set(k, &v))
	}

	root, err := arr.Root()
	require.NoError(t, err)
	reloaded, err := adt.AsArray(store, root)
	require.NoError(t, err)

	var keys []int64
	var out big.Int
	require.NoError(t, reloaded.ForEach(&out, func(i int64) error {
		keys = append(keys, i)
		require.Equal(t, big.NewInt(i), out)
		return nil
	}))
	require.Equal(t, []int64{3, 47, 120}, keys)

	require.NoError(t, reloaded.Delete(47))
	found, err := reloaded.Get(47, &out)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, uint64(2), reloaded.Length())
}
