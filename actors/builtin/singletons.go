package builtin

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// Addresses of singleton actors, defined for all networks.
var (
	SystemActorAddr   = mustMakeAddress(0)
	RewardsActorAddr  = mustMakeAddress(2)
	TreasuryActorAddr = mustMakeAddress(3)
)

func mustMakeAddress(id uint64) addr.Address {
	address, err := addr.NewIDAddress(id)
	if err != nil {
		panic(err)
	}
	return address
}

// Identities of builtin actor code, used by the exports contract.
var (
	SystemActorCodeID  cid.Cid
	RewardsActorCodeID cid.Cid
)

func init() {
	builder := cid.V1Builder{Codec: cid.Raw, MhType: mh.IDENTITY}
	makeBuiltin := func(s string) cid.Cid {
		c, err := builder.Sum([]byte(s))
		if err != nil {
			panic(err)
		}
		return c
	}

	SystemActorCodeID = makeBuiltin("poscan/1/system")
	RewardsActorCodeID = makeBuiltin("poscan/1/rewards")
}
