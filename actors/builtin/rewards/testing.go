package rewards

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/poscan-project/rewards-actors/actors/builtin"
	"github.com/poscan-project/rewards-actors/actors/util/adt"
)

type StateSummary struct {
	Reward             abi.TokenAmount
	PendingRewardCount int
	PendingMintCount   int
	LockedAccounts     int
	TotalLocked        abi.TokenAmount
}

// Checks internal invariants of the rewards state.
func CheckStateInvariants(st *State, store adt.Store, now abi.ChainEpoch) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}

	summary := &StateSummary{
		Reward:      st.Reward,
		TotalLocked: big.Zero(),
	}

	acc.Require(st.Reward.GreaterThanEqual(big.Zero()), "negative reward %v", st.Reward)
	acc.Require(st.TotalLocked.GreaterThanEqual(big.Zero()), "negative total locked %v", st.TotalLocked)
	for _, m := range st.Mints {
		acc.Require(m.Amount.GreaterThan(big.Zero()), "non-positive mint %v to %v", m.Amount, m.To)
	}

	if changes, err := adt.AsArray(store, st.RewardChanges); err != nil {
		acc.Addf("error loading reward change queue: %v", err)
	} else {
		var rc RewardChange
		err = changes.ForEach(&rc, func(i int64) error {
			acc.Require(abi.ChainEpoch(i) == rc.Activation, "reward change keyed %d has activation %d", i, rc.Activation)
			acc.Require(rc.Activation > now, "reward change at %d not yet drained at %d", rc.Activation, now)
			summary.PendingRewardCount++
			return nil
		})
		acc.RequireNoError(err, "error iterating reward change queue")
	}

	if changes, err := adt.AsArray(store, st.MintChanges); err != nil {
		acc.Addf("error loading mint change queue: %v", err)
	} else {
		var ms MintScheduleEntry
		err = changes.ForEach(&ms, func(i int64) error {
			acc.Require(abi.ChainEpoch(i) == ms.Activation, "mint change keyed %d has activation %d", i, ms.Activation)
			acc.Require(ms.Activation > now, "mint change at %d not yet drained at %d", ms.Activation, now)
			summary.PendingMintCount++
			return nil
		})
		acc.RequireNoError(err, "error iterating mint change queue")
	}

	if locks, err := adt.AsMap(store, st.RewardLocks, builtin.DefaultHamtBitwidth); err != nil {
		acc.Addf("error loading lock table: %v", err)
	} else {
		var schedule LockSchedule
		err = locks.ForEach(&schedule, func(key string) error {
			account, err := addr.NewFromBytes([]byte(key))
			acc.RequireNoError(err, "error deserializing lock table key %x", []byte(key))

			acc.Require(len(schedule.Entries) > 0, "empty lock schedule stored for %v", account)
			prev := abi.ChainEpoch(-1)
			for _, e := range schedule.Entries {
				acc.Require(e.UnlockAt > prev, "lock entries of %v not strictly ascending at %d", account, e.UnlockAt)
				acc.Require(e.Amount.GreaterThan(big.Zero()), "non-positive lock %v of %v at %d", e.Amount, account, e.UnlockAt)
				prev = e.UnlockAt
				summary.TotalLocked = big.Add(summary.TotalLocked, e.Amount)
			}
			summary.LockedAccounts++
			return nil
		})
		acc.RequireNoError(err, "error iterating lock table")
	}

	acc.Require(st.TotalLocked.Equals(summary.TotalLocked),
		"total locked %v does not match sum of lock entries %v", st.TotalLocked, summary.TotalLocked)

	return summary, acc
}
