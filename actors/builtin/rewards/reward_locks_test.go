package rewards_test

import (
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poscan-project/rewards-actors/actors/builtin/rewards"
)

func TestGenerateRewardLocks(t *testing.T) {
	gen := rewards.DefaultLockGenerator{}

	t.Run("nil params produce no locks", func(t *testing.T) {
		schedule := gen.GenerateRewardLocks(10, big.NewInt(1000), nil)
		assert.Empty(t, schedule.Entries)
	})

	t.Run("zero amount produces no locks", func(t *testing.T) {
		schedule := gen.GenerateRewardLocks(10, big.Zero(), &rewards.LockParameters{Period: 30, Divide: 3})
		assert.Empty(t, schedule.Entries)
	})

	t.Run("buckets conserve total", func(t *testing.T) {
		amount := big.NewInt(1000)
		schedule := gen.GenerateRewardLocks(10, amount, &rewards.LockParameters{Period: 30, Divide: 3})

		require.Len(t, schedule.Entries, 3)
		assert.Equal(t, abi.ChainEpoch(20), schedule.Entries[0].UnlockAt)
		assert.Equal(t, abi.ChainEpoch(30), schedule.Entries[1].UnlockAt)
		assert.Equal(t, abi.ChainEpoch(40), schedule.Entries[2].UnlockAt)
		assert.Equal(t, amount, schedule.Total())
	})

	t.Run("remainder lands in the last bucket", func(t *testing.T) {
		schedule := gen.GenerateRewardLocks(0, big.NewInt(1001), &rewards.LockParameters{Period: 30, Divide: 3})

		require.Len(t, schedule.Entries, 3)
		assert.Equal(t, big.NewInt(333), schedule.Entries[0].Amount)
		assert.Equal(t, big.NewInt(333), schedule.Entries[1].Amount)
		assert.Equal(t, big.NewInt(335), schedule.Entries[2].Amount)
	})

	t.Run("tiny amounts skip empty buckets", func(t *testing.T) {
		schedule := gen.GenerateRewardLocks(0, big.NewInt(2), &rewards.LockParameters{Period: 30, Divide: 3})

		// 2/3 truncates to zero per bucket, everything vests at the end
		require.Len(t, schedule.Entries, 1)
		assert.Equal(t, abi.ChainEpoch(30), schedule.Entries[0].UnlockAt)
		assert.Equal(t, big.NewInt(2), schedule.Entries[0].Amount)
	})
}

func TestLockScheduleMerge(t *testing.T) {
	t.Run("disjoint epochs interleave sorted", func(t *testing.T) {
		a := rewards.LockSchedule{Entries: []rewards.RewardLock{
			{UnlockAt: 10, Amount: big.NewInt(1)},
			{UnlockAt: 30, Amount: big.NewInt(3)},
		}}
		a.Merge(rewards.LockSchedule{Entries: []rewards.RewardLock{
			{UnlockAt: 20, Amount: big.NewInt(2)},
			{UnlockAt: 40, Amount: big.NewInt(4)},
		}})

		require.Len(t, a.Entries, 4)
		for i, exp := range []abi.ChainEpoch{10, 20, 30, 40} {
			assert.Equal(t, exp, a.Entries[i].UnlockAt)
		}
		assert.Equal(t, big.NewInt(10), a.Total())
	})

	t.Run("coinciding epochs accumulate", func(t *testing.T) {
		a := rewards.LockSchedule{Entries: []rewards.RewardLock{
			{UnlockAt: 10, Amount: big.NewInt(1)},
		}}
		a.Merge(rewards.LockSchedule{Entries: []rewards.RewardLock{
			{UnlockAt: 10, Amount: big.NewInt(5)},
		}})

		require.Len(t, a.Entries, 1)
		assert.Equal(t, big.NewInt(6), a.Entries[0].Amount)
	})

	t.Run("merge into empty", func(t *testing.T) {
		var a rewards.LockSchedule
		a.Merge(rewards.LockSchedule{Entries: []rewards.RewardLock{
			{UnlockAt: 10, Amount: big.NewInt(1)},
		}})
		require.Len(t, a.Entries, 1)
	})
}

func TestLockScheduleExpire(t *testing.T) {
	newSchedule := func() *rewards.LockSchedule {
		return &rewards.LockSchedule{Entries: []rewards.RewardLock{
			{UnlockAt: 10, Amount: big.NewInt(1)},
			{UnlockAt: 20, Amount: big.NewInt(2)},
			{UnlockAt: 30, Amount: big.NewInt(3)},
		}}
	}

	t.Run("nothing matured", func(t *testing.T) {
		s := newSchedule()
		retained := s.Expire(5, false)
		assert.Equal(t, big.NewInt(6), retained)
		assert.Len(t, s.Entries, 3)
	})

	t.Run("entries at or before now are dropped", func(t *testing.T) {
		s := newSchedule()
		retained := s.Expire(20, false)
		assert.Equal(t, big.NewInt(3), retained)
		require.Len(t, s.Entries, 1)
		assert.Equal(t, abi.ChainEpoch(30), s.Entries[0].UnlockAt)
	})

	t.Run("force drops everything", func(t *testing.T) {
		s := newSchedule()
		retained := s.Expire(5, true)
		assert.Equal(t, big.Zero(), retained)
		assert.Empty(t, s.Entries)
	})
}
