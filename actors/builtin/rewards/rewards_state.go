package rewards

import (
	"bytes"
	"sort"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/poscan-project/rewards-actors/actors/builtin"
	"github.com/poscan-project/rewards-actors/actors/util/adt"
	"github.com/poscan-project/rewards-actors/actors/util/math"
)

// LockParameters shape the vesting schedule generated for each payout.
type LockParameters struct {
	// Total vesting span in epochs.
	Period uint64
	// Number of equal unlock buckets the span is cut into.
	Divide uint64
}

// MinerShare is the fraction of the block reward paid to the mining side
// before pool and validator splits.
type MinerShare struct {
	Pct math.Percent
}

// MintEntry is one recurring per-block issuance to a fixed beneficiary.
type MintEntry struct {
	To     addr.Address
	Amount abi.TokenAmount
}

// MintSet is the full recurring issuance list active at some epoch.
type MintSet struct {
	Mints []MintEntry
}

// RewardChange schedules a new base block reward from a future epoch.
type RewardChange struct {
	Activation abi.ChainEpoch
	Amount     abi.TokenAmount
}

// MintScheduleEntry schedules a replacement issuance list from a future epoch.
type MintScheduleEntry struct {
	Activation abi.ChainEpoch
	Mints      []MintEntry
}

type State struct {
	// Base block reward in force right now.
	Reward abi.TokenAmount

	// Pending reward changes, an AMT keyed by activation epoch.
	RewardChanges cid.Cid // AMT[ChainEpoch]RewardChange

	// Recurring issuances in force right now, sorted by beneficiary bytes.
	Mints []MintEntry

	// Pending issuance replacements, an AMT keyed by activation epoch.
	MintChanges cid.Cid // AMT[ChainEpoch]MintScheduleEntry

	// Per-account vesting ledgers, a HAMT keyed by address.
	RewardLocks cid.Cid // HAMT[Address]LockSchedule

	// Sum of all amounts held in RewardLocks.
	TotalLocked abi.TokenAmount

	// Vesting shape for future payouts, nil disables lock generation.
	LockParams *LockParameters

	// Miner fraction override, nil means the configured default.
	MinerShare *MinerShare
}

var (
	ErrRewardTooLow           = xerrors.New("scheduled reward below minimum balance")
	ErrMintTooLow             = xerrors.New("scheduled mint below minimum balance")
	ErrLockParamsOutOfBounds  = xerrors.New("lock parameters out of bounds")
	ErrLockPeriodNotDivisible = xerrors.New("lock period not divisible by divide")
)

func ConstructState(store adt.Store, reward abi.TokenAmount, mints []MintEntry, minimum abi.TokenAmount) (*State, error) {
	if reward.LessThan(minimum) {
		return nil, ErrRewardTooLow
	}
	mints, err := normalizeMints(mints, minimum)
	if err != nil {
		return nil, err
	}

	emptyChangesCid, err := adt.StoreEmptyArray(store)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty array: %w", err)
	}
	emptyMintChangesCid, err := adt.StoreEmptyArray(store)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty array: %w", err)
	}
	emptyLocksCid, err := adt.StoreEmptyMap(store, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty map: %w", err)
	}

	return &State{
		Reward:        reward,
		RewardChanges: emptyChangesCid,
		Mints:         mints,
		MintChanges:   emptyMintChangesCid,
		RewardLocks:   emptyLocksCid,
		TotalLocked:   big.Zero(),
		LockParams:    nil,
		MinerShare:    nil,
	}, nil
}

// normalizeMints validates amounts against the currency minimum, keeps the
// last entry per beneficiary, and sorts by address bytes.
func normalizeMints(mints []MintEntry, minimum abi.TokenAmount) ([]MintEntry, error) {
	byAddr := make(map[addr.Address]abi.TokenAmount, len(mints))
	for _, m := range mints {
		if m.Amount.LessThan(minimum) {
			return nil, ErrMintTooLow
		}
		byAddr[m.To] = m.Amount
	}
	out := make([]MintEntry, 0, len(byAddr))
	for to, amt := range byAddr {
		out = append(out, MintEntry{To: to, Amount: amt})
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].To.Bytes(), out[j].To.Bytes()) < 0
	})
	return out, nil
}

// SetSchedule replaces the active reward, the active issuance list, and both
// pending-change queues wholesale. Every amount involved must clear the
// currency minimum, otherwise nothing is changed.
func (st *State) SetSchedule(store adt.Store, reward abi.TokenAmount, mints []MintEntry, rewardChanges []RewardChange, mintChanges []MintScheduleEntry, minimum abi.TokenAmount) error {
	if reward.LessThan(minimum) {
		return ErrRewardTooLow
	}
	activeMints, err := normalizeMints(mints, minimum)
	if err != nil {
		return err
	}
	for _, rc := range rewardChanges {
		if rc.Amount.LessThan(minimum) {
			return ErrRewardTooLow
		}
	}
	normalized := make([]MintScheduleEntry, 0, len(mintChanges))
	for _, ms := range mintChanges {
		nm, err := normalizeMints(ms.Mints, minimum)
		if err != nil {
			return err
		}
		normalized = append(normalized, MintScheduleEntry{Activation: ms.Activation, Mints: nm})
	}

	changes := adt.MakeEmptyArray(store)
	for i := range rewardChanges {
		rc := rewardChanges[i] // copy
		if err := changes.Set(uint64(rc.Activation), &rc); err != nil {
			return xerrors.Errorf("failed to enqueue reward change: %w", err)
		}
	}
	changesRoot, err := changes.Root()
	if err != nil {
		return xerrors.Errorf("failed to flush reward change queue: %w", err)
	}

	mintQueue := adt.MakeEmptyArray(store)
	for i := range normalized {
		ms := normalized[i]
		if err := mintQueue.Set(uint64(ms.Activation), &ms); err != nil {
			return xerrors.Errorf("failed to enqueue mint change: %w", err)
		}
	}
	mintChangesRoot, err := mintQueue.Root()
	if err != nil {
		return xerrors.Errorf("failed to flush mint change queue: %w", err)
	}

	st.Reward = reward
	st.Mints = activeMints
	st.RewardChanges = changesRoot
	st.MintChanges = mintChangesRoot
	return nil
}

// ApplyScheduledChanges drains every queued change whose activation epoch has
// arrived, in ascending epoch order, updating Reward and Mints as it goes.
// The returned slices report what was applied, newest last.
func (st *State) ApplyScheduledChanges(store adt.Store, now abi.ChainEpoch) ([]RewardChange, []MintSet, error) {
	changes, err := adt.AsArray(store, st.RewardChanges)
	if err != nil {
		return nil, nil, xerrors.Errorf("failed to load reward change queue: %w", err)
	}

	var dueRewards []RewardChange
	var rc RewardChange
	if err = changes.ForEach(&rc, func(i int64) error {
		if abi.ChainEpoch(i) > now {
			return errStopIteration
		}
		dueRewards = append(dueRewards, rc)
		return nil
	}); err != nil && err != errStopIteration {
		return nil, nil, xerrors.Errorf("failed to walk reward change queue: %w", err)
	}
	for _, due := range dueRewards {
		if err = changes.Delete(uint64(due.Activation)); err != nil {
			return nil, nil, xerrors.Errorf("failed to dequeue reward change: %w", err)
		}
		st.Reward = due.Amount
	}
	if st.RewardChanges, err = changes.Root(); err != nil {
		return nil, nil, xerrors.Errorf("failed to flush reward change queue: %w", err)
	}

	mintChanges, err := adt.AsArray(store, st.MintChanges)
	if err != nil {
		return nil, nil, xerrors.Errorf("failed to load mint change queue: %w", err)
	}

	var dueMints []MintScheduleEntry
	var ms MintScheduleEntry
	if err = mintChanges.ForEach(&ms, func(i int64) error {
		if abi.ChainEpoch(i) > now {
			return errStopIteration
		}
		dueMints = append(dueMints, MintScheduleEntry{Activation: ms.Activation, Mints: ms.Mints})
		return nil
	}); err != nil && err != errStopIteration {
		return nil, nil, xerrors.Errorf("failed to walk mint change queue: %w", err)
	}
	var appliedMints []MintSet
	for _, due := range dueMints {
		if err = mintChanges.Delete(uint64(due.Activation)); err != nil {
			return nil, nil, xerrors.Errorf("failed to dequeue mint change: %w", err)
		}
		st.Mints = due.Mints
		appliedMints = append(appliedMints, MintSet{Mints: due.Mints})
	}
	if st.MintChanges, err = mintChanges.Root(); err != nil {
		return nil, nil, xerrors.Errorf("failed to flush mint change queue: %w", err)
	}

	return dueRewards, appliedMints, nil
}

var errStopIteration = xerrors.New("stop iteration")

// SetLockParams validates against bounds and installs the parameters.
func (st *State) SetLockParams(params *LockParameters, bounds LockBounds) error {
	if params == nil {
		st.LockParams = nil
		return nil
	}
	if params.Period > bounds.PeriodMax || params.Period < bounds.PeriodMin ||
		params.Divide > bounds.DivideMax || params.Divide < bounds.DivideMin {
		return ErrLockParamsOutOfBounds
	}
	if params.Period%params.Divide != 0 {
		return ErrLockPeriodNotDivisible
	}
	st.LockParams = &LockParameters{Period: params.Period, Divide: params.Divide}
	return nil
}

func (st *State) LoadRewardLocks(store adt.Store, account addr.Address) (*LockSchedule, error) {
	locks, err := adt.AsMap(store, st.RewardLocks, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to load lock table: %w", err)
	}
	var schedule LockSchedule
	found, err := locks.Get(abi.AddrKey(account), &schedule)
	if err != nil {
		return nil, xerrors.Errorf("failed to get locks of %s: %w", account, err)
	}
	if !found {
		return emptyLockSchedule(), nil
	}
	return &schedule, nil
}

// SaveRewardLocks writes the schedule back, deleting the account's entry
// when the schedule has drained.
func (st *State) SaveRewardLocks(store adt.Store, account addr.Address, schedule *LockSchedule) error {
	locks, err := adt.AsMap(store, st.RewardLocks, builtin.DefaultHamtBitwidth)
	if err != nil {
		return xerrors.Errorf("failed to load lock table: %w", err)
	}
	if len(schedule.Entries) == 0 {
		var existing LockSchedule
		found, err := locks.Get(abi.AddrKey(account), &existing)
		if err != nil {
			return xerrors.Errorf("failed to get locks of %s: %w", account, err)
		}
		if found {
			if err = locks.Delete(abi.AddrKey(account)); err != nil {
				return xerrors.Errorf("failed to delete locks of %s: %w", account, err)
			}
		}
	} else if err = locks.Put(abi.AddrKey(account), schedule); err != nil {
		return xerrors.Errorf("failed to put locks of %s: %w", account, err)
	}
	if st.RewardLocks, err = locks.Root(); err != nil {
		return xerrors.Errorf("failed to flush lock table: %w", err)
	}
	return nil
}

// LockedBalance sums the account's entries that are still immature at now.
// Matured-but-unsettled entries do not count as locked.
func (st *State) LockedBalance(store adt.Store, account addr.Address, now abi.ChainEpoch) (abi.TokenAmount, error) {
	schedule, err := st.LoadRewardLocks(store, account)
	if err != nil {
		return big.Zero(), err
	}
	total := big.Zero()
	for _, e := range schedule.Entries {
		if e.UnlockAt > now {
			total = big.Add(total, e.Amount)
		}
	}
	return total, nil
}

var _ cbg.CBORMarshaler = (*State)(nil)
