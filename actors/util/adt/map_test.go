package adt_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/require"

	"github.com/poscan-project/rewards-actors/actors/util/adt"
	"github.com/poscan-project/rewards-actors/support/mock"
)

func TestMapNotFound(t *testing.T) {
	rt := mock.NewBuilder(context.Background(), address.Undef).Build(t)
	store := adt.AsStore(rt)
	m := adt.MakeEmptyMap(store, 5)

	k, err := address.NewIDAddress(100)
	require.NoError(t, err)

	var out big.Int
	found, err := m.Get(abi.AddrKey(k), &out)
	require.NoError(t, err)
	require.False(t, found)
}

func TestMapPutGetRoundtrip(t *testing.T) {
	rt := mock.NewBuilder(context.Background(), address.Undef).Build(t)
	store := adt.AsStore(rt)
	m := adt.MakeEmptyMap(store, 5)

	k, err := address.NewIDAddress(101)
	require.NoError(t, err)

	v := big.NewInt(42)
	require.NoError(t, m.Put(abi.AddrKey(k), &v))

	root, err := m.Root()
	require.NoError(t, err)

	reloaded, err := adt.AsMap(store, root, 5)
	require.NoError(t, err)

	var out big.Int
	found, err := reloaded.Get(abi.AddrKey(k), &out)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, v.Equals(out))
}
