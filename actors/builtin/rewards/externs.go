package rewards

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"

	"github.com/poscan-project/rewards-actors/actors/util/math"
)

// Capabilities the rewards actor consumes from the rest of the node. All of
// them are injected at construction so tests can substitute deterministic
// implementations.

// Currency is the on-chain balance primitive. The rewards actor is the
// monetary-issuance authority: Deposit creates new balance and never fails.
type Currency interface {
	Deposit(to addr.Address, amount abi.TokenAmount)

	// SetLock establishes or replaces the lock recorded under id for the
	// account, restricting the given withdrawal reasons up to amount.
	SetLock(id []byte, who addr.Address, amount abi.TokenAmount, reasons WithdrawReasons)

	// RemoveLock deletes the lock record entirely.
	RemoveLock(id []byte, who addr.Address)

	// MinimumBalance is the smallest amount the currency can account for;
	// scheduled rewards and mints below it are rejected.
	MinimumBalance() abi.TokenAmount
}

// ValidatorSet yields the current validator identities, in a stable order.
type ValidatorSet interface {
	Validators() []addr.Address
}

// MemberWeight is one pool member's declared share weight.
type MemberWeight struct {
	Member addr.Address
	Weight uint32
}

// PoolStat describes a mining pool: its share of recent block production and
// its member weights, in the stable order payouts must follow.
type PoolStat struct {
	Rate    math.Percent
	Members []MemberWeight
}

// MiningPoolStats resolves pool statistics for a block author. A nil result
// means the author does not operate a pool.
type MiningPoolStats interface {
	GetStat(author addr.Address) *PoolStat
}

// RewardCurve converts a block number into the nominal block reward, before
// any splitting.
type RewardCurve interface {
	BlockReward(at abi.ChainEpoch) abi.TokenAmount
}

// GenerateRewardLocks partitions a payout into future unlock points derived
// from the lock parameters. Nil params mean no vesting: the full amount is
// immediately liquid and the returned schedule is empty. The sum of the
// produced entries must equal amount exactly.
type GenerateRewardLocks interface {
	GenerateRewardLocks(current abi.ChainEpoch, amount abi.TokenAmount, params *LockParameters) LockSchedule
}

// Event is a notification emitted by the rewards actor.
type Event interface {
	rewardsEvent()
}

// EventSink receives actor notifications. A nil sink discards them.
type EventSink interface {
	Emit(e Event)
}

// A new schedule has been set.
type ScheduleSet struct{}

// Reward has been sent.
type Rewarded struct {
	To     addr.Address
	Amount abi.TokenAmount
}

// Reward has been changed.
type RewardChanged struct {
	Reward abi.TokenAmount
}

// Mint has been sent.
type Minted struct {
	To     addr.Address
	Amount abi.TokenAmount
}

// Mints have been changed.
type MintsChanged struct {
	Mints []MintEntry
}

// Lock parameters have been changed.
type LockParamsChanged struct {
	Params LockParameters
}

// Miner share has been changed.
type MinerShareChanged struct {
	Pct math.Percent
}

// A pool exceeded the production-rate ceiling and part of its reward was
// slashed to the treasury.
type PoolExceedsLimit struct {
	Author  addr.Address
	Slashed abi.TokenAmount
}

func (ScheduleSet) rewardsEvent()       {}
func (Rewarded) rewardsEvent()          {}
func (RewardChanged) rewardsEvent()     {}
func (Minted) rewardsEvent()            {}
func (MintsChanged) rewardsEvent()      {}
func (LockParamsChanged) rewardsEvent() {}
func (MinerShareChanged) rewardsEvent() {}
func (PoolExceedsLimit) rewardsEvent()  {}

type discardEvents struct{}

func (discardEvents) Emit(Event) {}

// Config collects the injected capabilities and static policy of the
// rewards actor.
type Config struct {
	Currency   Currency
	Curve      RewardCurve
	Validators ValidatorSet
	Pools      MiningPoolStats
	LockGen    GenerateRewardLocks
	Events     EventSink

	// Destination for slashed amounts.
	Treasury addr.Address

	// Default author share of the block reward, used when no on-chain
	// override is set.
	MinerShare math.Percent

	// Maximum pool production rate before claw-back starts.
	PoolRateLimit math.Percent

	LockBounds LockBounds
}
