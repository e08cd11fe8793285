package main

import (
	"github.com/poscan-project/rewards-actors/actors/builtin/rewards"
	"github.com/poscan-project/rewards-actors/actors/builtin/system"
	gen "github.com/whyrusleeping/cbor-gen"
)

func main() {
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/system/cbor_gen.go", "system",
		// actor state
		system.State{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/rewards/cbor_gen.go", "rewards",
		// actor state
		rewards.State{},
		rewards.LockParameters{},
		rewards.MinerShare{},
		rewards.MintEntry{},
		rewards.MintScheduleEntry{},
		rewards.RewardChange{},
		rewards.RewardLock{},
		rewards.LockSchedule{},
		// method params and returns
		rewards.ConstructorParams{},
		rewards.SetScheduleParams{},
		rewards.ForceUnlockParams{},
		rewards.LockedBalanceParams{},
		rewards.LockedBalanceReturn{},
	); err != nil {
		panic(err)
	}
}
