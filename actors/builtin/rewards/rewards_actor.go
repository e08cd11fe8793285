package rewards

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"

	"github.com/poscan-project/rewards-actors/actors/builtin"
	"github.com/poscan-project/rewards-actors/actors/runtime"
	"github.com/poscan-project/rewards-actors/actors/util/adt"
	"github.com/poscan-project/rewards-actors/actors/util/math"
)

// Actor distributes block rewards, runs the recurring issuance schedule, and
// manages per-account vesting locks over deposited rewards.
type Actor struct {
	config Config

	// Author of the block being processed, recorded at block start and
	// cleared at block end. Never persisted.
	blockAuthor *addr.Address
}

// New builds the actor around the injected capabilities. Zero-valued policy
// fields fall back to the package defaults.
func New(cfg Config) *Actor {
	if cfg.Events == nil {
		cfg.Events = discardEvents{}
	}
	if cfg.LockGen == nil {
		cfg.LockGen = DefaultLockGenerator{}
	}
	if cfg.MinerShare == 0 {
		cfg.MinerShare = DefaultMinerSharePercent
	}
	if cfg.PoolRateLimit == 0 {
		cfg.PoolRateLimit = DefaultMiningPoolMaxRate
	}
	if cfg.LockBounds == (LockBounds{}) {
		cfg.LockBounds = DefaultLockBounds
	}
	return &Actor{config: cfg}
}

func (a *Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.OnBlockInitialize,
		3:                         a.OnBlockFinalize,
		4:                         a.SetSchedule,
		5:                         a.SetLockParams,
		6:                         a.SetMinerShare,
		7:                         a.Unlock,
		8:                         a.ForceUnlock,
		9:                         a.LockedBalance,
	}
}

func (a *Actor) Code() cid.Cid {
	return builtin.RewardsActorCodeID
}

func (a *Actor) IsSingleton() bool {
	return true
}

func (a *Actor) State() cbor.Er {
	return new(State)
}

var _ runtime.VMActor = (*Actor)(nil)

type ConstructorParams struct {
	Reward abi.TokenAmount
	Mints  []MintEntry
}

func (a *Actor) Constructor(rt runtime.Runtime, params *ConstructorParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	st, err := ConstructState(adt.AsStore(rt), params.Reward, params.Mints, a.config.Currency.MinimumBalance())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to construct state")
	rt.StateCreate(st)
	return nil
}

// OnBlockInitialize runs at the start of every block. It records the block
// author, refreshes the base reward from the curve, and applies every queued
// schedule change whose activation epoch has arrived.
func (a *Actor) OnBlockInitialize(rt runtime.Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	if author, ok := rt.BlockAuthor(); ok {
		a.blockAuthor = &author
	}

	now := rt.CurrEpoch()
	var appliedRewards []RewardChange
	var appliedMints []MintSet
	var st State
	rt.StateTransaction(&st, func() {
		curved := a.config.Curve.BlockReward(now)
		if !curved.Equals(st.Reward) {
			rt.Log(rtt.DEBUG, "block reward moved by curve from %v to %v at %d", st.Reward, curved, now)
			st.Reward = curved
		}

		var err error
		appliedRewards, appliedMints, err = st.ApplyScheduledChanges(adt.AsStore(rt), now)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to apply scheduled changes")
	})

	for _, rc := range appliedRewards {
		a.config.Events.Emit(RewardChanged{Reward: rc.Amount})
	}
	for _, ms := range appliedMints {
		a.config.Events.Emit(MintsChanged{Mints: ms.Mints})
	}
	return nil
}

// OnBlockFinalize runs at the end of every block. It pays out the block
// reward to the recorded author and their pool, deposits the recurring
// issuances, and forgets the author.
func (a *Actor) OnBlockFinalize(rt runtime.Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	var st State
	rt.StateTransaction(&st, func() {
		if a.blockAuthor != nil {
			a.distributeBlockReward(rt, &st, *a.blockAuthor)
		}
		for _, m := range st.Mints {
			a.config.Currency.Deposit(m.To, m.Amount)
			a.config.Events.Emit(Minted{To: m.To, Amount: m.Amount})
		}
	})

	a.blockAuthor = nil
	return nil
}

func (a *Actor) distributeBlockReward(rt runtime.Runtime, st *State, author addr.Address) {
	minerShare := a.config.MinerShare
	if st.MinerShare != nil {
		minerShare = st.MinerShare.Pct
	}

	pool := a.config.Pools.GetStat(author)
	validators := a.config.Validators.Validators()
	d := computeDistribution(st.Reward, minerShare, a.config.PoolRateLimit, pool, validators)

	if d.Slash.GreaterThan(big.Zero()) {
		a.config.Currency.Deposit(a.config.Treasury, d.Slash)
		a.config.Events.Emit(PoolExceedsLimit{Author: author, Slashed: d.Slash})
	}

	for _, mp := range d.MemberPayouts {
		a.payRewardTo(rt, st, mp.Member, mp.Amount)
	}
	a.payRewardTo(rt, st, author, d.MinerTotal)
	for _, v := range d.Validators {
		a.payRewardTo(rt, st, v, d.PerValidator)
	}

	if d.Undistributed.GreaterThan(big.Zero()) {
		rt.Log(rtt.WARN, "no validators to receive %v at %d", d.Undistributed, rt.CurrEpoch())
	}
}

// payRewardTo deposits a payout, vests the locked portion per the current
// lock parameters, and settles matured locks along the way.
func (a *Actor) payRewardTo(rt runtime.Runtime, st *State, account addr.Address, amount abi.TokenAmount) {
	if amount.LessThanEqual(big.Zero()) {
		return
	}

	now := rt.CurrEpoch()
	generated := a.config.LockGen.GenerateRewardLocks(now, amount, st.LockParams)

	a.config.Currency.Deposit(account, amount)
	a.config.Events.Emit(Rewarded{To: account, Amount: amount})

	if len(generated.Entries) == 0 {
		return
	}

	store := adt.AsStore(rt)
	schedule, err := st.LoadRewardLocks(store, account)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load locks of %s", account)

	before := schedule.Total()
	schedule.Merge(generated)
	a.updateRewardLocks(rt, st, account, schedule, before, now, false)
}

// updateRewardLocks settles an account's ledger: matured entries are dropped,
// the currency lock is rewritten to the retained total (or removed when
// forcing), and the aggregate is adjusted by the before/after delta.
func (a *Actor) updateRewardLocks(rt runtime.Runtime, st *State, account addr.Address, schedule *LockSchedule, before abi.TokenAmount, now abi.ChainEpoch, force bool) {
	retained := schedule.Expire(now, force)

	if force {
		a.config.Currency.RemoveLock(RewardsLockID, account)
	} else {
		a.config.Currency.SetLock(RewardsLockID, account, retained, WithdrawReasonsExcept(WithdrawTransactionPayment))
	}

	err := st.SaveRewardLocks(adt.AsStore(rt), account, schedule)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to save locks of %s", account)

	st.TotalLocked = big.Add(math.SaturatingSub(st.TotalLocked, before), retained)
}

type SetScheduleParams struct {
	Reward        abi.TokenAmount
	Mints         []MintEntry
	RewardChanges []RewardChange
	MintChanges   []MintScheduleEntry
}

// SetSchedule replaces the active reward and issuances plus both queued
// change sets wholesale, all-or-nothing.
func (a *Actor) SetSchedule(rt runtime.Runtime, params *SetScheduleParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	var st State
	rt.StateTransaction(&st, func() {
		err := st.SetSchedule(adt.AsStore(rt), params.Reward, params.Mints, params.RewardChanges, params.MintChanges, a.config.Currency.MinimumBalance())
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to set schedule")
	})

	a.config.Events.Emit(RewardChanged{Reward: st.Reward})
	a.config.Events.Emit(MintsChanged{Mints: st.Mints})
	a.config.Events.Emit(ScheduleSet{})
	return nil
}

// SetLockParams installs new vesting parameters for future payouts.
// Existing ledgers keep the schedules they were generated with.
func (a *Actor) SetLockParams(rt runtime.Runtime, params *LockParameters) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	var st State
	rt.StateTransaction(&st, func() {
		err := st.SetLockParams(params, a.config.LockBounds)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to set lock params")
	})

	if params != nil {
		a.config.Events.Emit(LockParamsChanged{Params: *params})
	}
	return nil
}

// SetMinerShare overrides the miner fraction of the block reward. Values
// above one hundred percent are ignored without error.
func (a *Actor) SetMinerShare(rt runtime.Runtime, params *MinerShare) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	if params != nil && !params.Pct.IsValid() {
		return nil
	}

	var st State
	rt.StateTransaction(&st, func() {
		st.MinerShare = params
	})

	if params != nil {
		a.config.Events.Emit(MinerShareChanged{Pct: params.Pct})
	}
	return nil
}

// Unlock settles the caller's own ledger, releasing everything matured.
func (a *Actor) Unlock(rt runtime.Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()

	account := rt.Caller()
	a.settle(rt, account, false)
	return nil
}

type ForceUnlockParams struct {
	Account addr.Address
}

// ForceUnlock clears an account's ledger entirely, matured or not.
func (a *Actor) ForceUnlock(rt runtime.Runtime, params *ForceUnlockParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	a.settle(rt, params.Account, true)
	return nil
}

func (a *Actor) settle(rt runtime.Runtime, account addr.Address, force bool) {
	var st State
	rt.StateTransaction(&st, func() {
		schedule, err := st.LoadRewardLocks(adt.AsStore(rt), account)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load locks of %s", account)

		before := schedule.Total()
		a.updateRewardLocks(rt, &st, account, schedule, before, rt.CurrEpoch(), force)
	})
}

type LockedBalanceParams struct {
	Account addr.Address
}

type LockedBalanceReturn struct {
	Amount abi.TokenAmount
}

// LockedBalance reports the account's still-immature locked total. Matured
// entries awaiting settlement are excluded.
func (a *Actor) LockedBalance(rt runtime.Runtime, params *LockedBalanceParams) *LockedBalanceReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.StateReadonly(&st)
	amount, err := st.LockedBalance(adt.AsStore(rt), params.Account, rt.CurrEpoch())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to sum locks of %s", params.Account)

	return &LockedBalanceReturn{Amount: amount}
}
