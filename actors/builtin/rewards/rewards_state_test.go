package rewards_test

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poscan-project/rewards-actors/actors/builtin/rewards"
	"github.com/poscan-project/rewards-actors/actors/util/adt"
	"github.com/poscan-project/rewards-actors/support/ipld"
	tutil "github.com/poscan-project/rewards-actors/support/testing"
)

func newStore(t *testing.T) adt.Store {
	return ipld.NewADTStore(context.Background())
}

func mustConstruct(t *testing.T, store adt.Store, reward int64, mints []rewards.MintEntry) *rewards.State {
	st, err := rewards.ConstructState(store, big.NewInt(reward), mints, big.NewInt(10))
	require.NoError(t, err)
	return st
}

func TestConstructState(t *testing.T) {
	store := newStore(t)
	beneficiary := tutil.NewIDAddr(t, 500)

	t.Run("valid construction", func(t *testing.T) {
		st := mustConstruct(t, store, 1000, []rewards.MintEntry{{To: beneficiary, Amount: big.NewInt(50)}})
		assert.Equal(t, big.NewInt(1000), st.Reward)
		assert.Equal(t, big.Zero(), st.TotalLocked)
		require.Len(t, st.Mints, 1)
	})

	t.Run("reward below minimum rejected", func(t *testing.T) {
		_, err := rewards.ConstructState(store, big.NewInt(5), nil, big.NewInt(10))
		assert.Equal(t, rewards.ErrRewardTooLow, err)
	})

	t.Run("mint below minimum rejected", func(t *testing.T) {
		_, err := rewards.ConstructState(store, big.NewInt(1000),
			[]rewards.MintEntry{{To: beneficiary, Amount: big.NewInt(5)}}, big.NewInt(10))
		assert.Equal(t, rewards.ErrMintTooLow, err)
	})

	t.Run("duplicate mints keep the last entry", func(t *testing.T) {
		st := mustConstruct(t, store, 1000, []rewards.MintEntry{
			{To: beneficiary, Amount: big.NewInt(50)},
			{To: beneficiary, Amount: big.NewInt(70)},
		})
		require.Len(t, st.Mints, 1)
		assert.Equal(t, big.NewInt(70), st.Mints[0].Amount)
	})
}

func TestSchedule(t *testing.T) {
	beneficiary := tutil.NewIDAddr(t, 500)

	setSchedule := func(t *testing.T, store adt.Store, st *rewards.State) {
		err := st.SetSchedule(store,
			big.NewInt(1000), nil,
			[]rewards.RewardChange{
				{Activation: 10, Amount: big.NewInt(2000)},
				{Activation: 12, Amount: big.NewInt(3000)},
			},
			[]rewards.MintScheduleEntry{
				{Activation: 11, Mints: []rewards.MintEntry{{To: beneficiary, Amount: big.NewInt(90)}}},
			},
			big.NewInt(10))
		require.NoError(t, err)
	}

	t.Run("changes apply in activation order and drain", func(t *testing.T) {
		store := newStore(t)
		st := mustConstruct(t, store, 1000, nil)
		setSchedule(t, store, st)

		applied, mints, err := st.ApplyScheduledChanges(store, 15)
		require.NoError(t, err)
		require.Len(t, applied, 2)
		assert.Equal(t, abi.ChainEpoch(10), applied[0].Activation)
		assert.Equal(t, abi.ChainEpoch(12), applied[1].Activation)
		require.Len(t, mints, 1)

		// the later change wins
		assert.Equal(t, big.NewInt(3000), st.Reward)
		require.Len(t, st.Mints, 1)
		assert.Equal(t, big.NewInt(90), st.Mints[0].Amount)

		// queues are drained, reapplying is a no-op
		applied, mints, err = st.ApplyScheduledChanges(store, 20)
		require.NoError(t, err)
		assert.Empty(t, applied)
		assert.Empty(t, mints)
		assert.Equal(t, big.NewInt(3000), st.Reward)
	})

	t.Run("future changes stay queued", func(t *testing.T) {
		store := newStore(t)
		st := mustConstruct(t, store, 1000, nil)
		setSchedule(t, store, st)

		applied, mints, err := st.ApplyScheduledChanges(store, 10)
		require.NoError(t, err)
		require.Len(t, applied, 1)
		assert.Empty(t, mints)
		assert.Equal(t, big.NewInt(2000), st.Reward)

		applied, mints, err = st.ApplyScheduledChanges(store, 12)
		require.NoError(t, err)
		require.Len(t, applied, 1)
		require.Len(t, mints, 1)
		assert.Equal(t, big.NewInt(3000), st.Reward)
	})

	t.Run("schedule replaces the active values", func(t *testing.T) {
		store := newStore(t)
		st := mustConstruct(t, store, 1000, nil)

		err := st.SetSchedule(store,
			big.NewInt(5000),
			[]rewards.MintEntry{{To: beneficiary, Amount: big.NewInt(60)}},
			nil, nil, big.NewInt(10))
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(5000), st.Reward)
		require.Len(t, st.Mints, 1)
		assert.Equal(t, big.NewInt(60), st.Mints[0].Amount)
	})

	t.Run("invalid schedule leaves state untouched", func(t *testing.T) {
		store := newStore(t)
		st := mustConstruct(t, store, 1000, nil)

		err := st.SetSchedule(store, big.NewInt(5), nil, nil, nil, big.NewInt(10))
		assert.Equal(t, rewards.ErrRewardTooLow, err)

		err = st.SetSchedule(store, big.NewInt(1000), nil,
			[]rewards.RewardChange{{Activation: 10, Amount: big.NewInt(5)}},
			nil, big.NewInt(10))
		assert.Equal(t, rewards.ErrRewardTooLow, err)

		err = st.SetSchedule(store, big.NewInt(1000), nil, nil,
			[]rewards.MintScheduleEntry{
				{Activation: 11, Mints: []rewards.MintEntry{{To: beneficiary, Amount: big.NewInt(5)}}},
			},
			big.NewInt(10))
		assert.Equal(t, rewards.ErrMintTooLow, err)

		applied, mints, err := st.ApplyScheduledChanges(store, 100)
		require.NoError(t, err)
		assert.Empty(t, applied)
		assert.Empty(t, mints)
		assert.Equal(t, big.NewInt(1000), st.Reward)
	})
}

func TestSetLockParams(t *testing.T) {
	bounds := rewards.DefaultLockBounds
	store := newStore(t)
	st := mustConstruct(t, store, 1000, nil)

	t.Run("valid params accepted", func(t *testing.T) {
		err := st.SetLockParams(&rewards.LockParameters{Period: 60, Divide: 6}, bounds)
		require.NoError(t, err)
		require.NotNil(t, st.LockParams)
		assert.Equal(t, uint64(60), st.LockParams.Period)
	})

	t.Run("nil clears params", func(t *testing.T) {
		require.NoError(t, st.SetLockParams(nil, bounds))
		assert.Nil(t, st.LockParams)
	})

	t.Run("out of bounds rejected", func(t *testing.T) {
		err := st.SetLockParams(&rewards.LockParameters{Period: bounds.PeriodMax + 1, Divide: 6}, bounds)
		assert.Equal(t, rewards.ErrLockParamsOutOfBounds, err)

		err = st.SetLockParams(&rewards.LockParameters{Period: 60, Divide: bounds.DivideMax + 1}, bounds)
		assert.Equal(t, rewards.ErrLockParamsOutOfBounds, err)

		err = st.SetLockParams(&rewards.LockParameters{Period: bounds.PeriodMin - 1, Divide: 2}, bounds)
		assert.Equal(t, rewards.ErrLockParamsOutOfBounds, err)
	})

	t.Run("indivisible period rejected", func(t *testing.T) {
		err := st.SetLockParams(&rewards.LockParameters{Period: 61, Divide: 6}, bounds)
		assert.Equal(t, rewards.ErrLockPeriodNotDivisible, err)
	})
}

func TestRewardLocksTable(t *testing.T) {
	store := newStore(t)
	st := mustConstruct(t, store, 1000, nil)
	account := tutil.NewIDAddr(t, 600)

	t.Run("absent account reads empty", func(t *testing.T) {
		schedule, err := st.LoadRewardLocks(store, account)
		require.NoError(t, err)
		assert.Empty(t, schedule.Entries)
	})

	t.Run("save and reload", func(t *testing.T) {
		schedule := &rewards.LockSchedule{Entries: []rewards.RewardLock{
			{UnlockAt: 20, Amount: big.NewInt(7)},
			{UnlockAt: 40, Amount: big.NewInt(9)},
		}}
		require.NoError(t, st.SaveRewardLocks(store, account, schedule))

		reloaded, err := st.LoadRewardLocks(store, account)
		require.NoError(t, err)
		assert.Equal(t, schedule.Entries, reloaded.Entries)
	})

	t.Run("locked balance excludes matured entries", func(t *testing.T) {
		locked, err := st.LockedBalance(store, account, 10)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(16), locked)

		locked, err = st.LockedBalance(store, account, 20)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(9), locked)

		locked, err = st.LockedBalance(store, account, 40)
		require.NoError(t, err)
		assert.Equal(t, big.Zero(), locked)
	})

	t.Run("empty schedule removes the table entry", func(t *testing.T) {
		require.NoError(t, st.SaveRewardLocks(store, account, &rewards.LockSchedule{}))

		schedule, err := st.LoadRewardLocks(store, account)
		require.NoError(t, err)
		assert.Empty(t, schedule.Entries)

		locks, err := adt.AsMap(store, st.RewardLocks, 5)
		require.NoError(t, err)
		keys, err := locks.CollectKeys()
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}

func TestLockedBalanceUnknownAddress(t *testing.T) {
	store := newStore(t)
	st := mustConstruct(t, store, 1000, nil)

	unknown, err := addr.NewIDAddress(999)
	require.NoError(t, err)

	locked, err := st.LockedBalance(store, unknown, 10)
	require.NoError(t, err)
	assert.Equal(t, big.Zero(), locked)
}
