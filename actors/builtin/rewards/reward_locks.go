package rewards

import (
	"sort"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
)

// RewardLock is one not-yet-liquid part of past payouts: Amount becomes
// spendable once the chain passes UnlockAt.
type RewardLock struct {
	UnlockAt abi.ChainEpoch
	Amount   abi.TokenAmount
}

// LockSchedule is an account's vesting ledger: lock entries ordered by
// ascending unlock epoch, epochs unique, amounts strictly positive.
type LockSchedule struct {
	Entries []RewardLock
}

func emptyLockSchedule() *LockSchedule {
	return &LockSchedule{Entries: nil}
}

// Total sums every entry, regardless of maturity.
func (ls *LockSchedule) Total() abi.TokenAmount {
	total := big.Zero()
	for _, e := range ls.Entries {
		total = big.Add(total, e.Amount)
	}
	return total
}

// Merge folds a newly generated schedule into the ledger, adding amounts at
// coinciding unlock epochs. Successive payouts routinely land on the same
// future block, so collision is the common case, not the exception.
func (ls *LockSchedule) Merge(other LockSchedule) {
	for _, n := range other.Entries {
		i := sort.Search(len(ls.Entries), func(i int) bool {
			return ls.Entries[i].UnlockAt >= n.UnlockAt
		})
		if i < len(ls.Entries) && ls.Entries[i].UnlockAt == n.UnlockAt {
			ls.Entries[i].Amount = big.Add(ls.Entries[i].Amount, n.Amount)
			continue
		}
		ls.Entries = append(ls.Entries, RewardLock{})
		copy(ls.Entries[i+1:], ls.Entries[i:])
		ls.Entries[i] = n
	}
}

// Expire drops matured entries in place and returns the total still locked.
// With force set, every entry is treated as matured regardless of epoch.
func (ls *LockSchedule) Expire(now abi.ChainEpoch, force bool) abi.TokenAmount {
	if force {
		ls.Entries = nil
		return big.Zero()
	}

	retained := ls.Entries[:0]
	total := big.Zero()
	for _, e := range ls.Entries {
		if e.UnlockAt <= now {
			continue
		}
		retained = append(retained, e)
		total = big.Add(total, e.Amount)
	}
	ls.Entries = retained
	return total
}

// DefaultLockGenerator spreads a payout over Divide equal buckets spaced
// Period/Divide epochs apart, starting one step after the current epoch.
// The division remainder is folded into the last bucket so that the bucket
// sum equals the payout exactly.
type DefaultLockGenerator struct{}

var _ GenerateRewardLocks = DefaultLockGenerator{}

func (DefaultLockGenerator) GenerateRewardLocks(current abi.ChainEpoch, amount abi.TokenAmount, params *LockParameters) LockSchedule {
	if params == nil || params.Divide == 0 || amount.LessThanEqual(big.Zero()) {
		return LockSchedule{}
	}

	divide := big.NewIntUnsigned(params.Divide)
	perBucket := big.Div(amount, divide)
	remainder := big.Sub(amount, big.Mul(perBucket, divide))
	step := abi.ChainEpoch(params.Period / params.Divide)

	var entries []RewardLock
	for i := uint64(1); i <= params.Divide; i++ {
		locked := perBucket
		if i == params.Divide {
			locked = big.Add(locked, remainder)
		}
		if locked.LessThanEqual(big.Zero()) {
			continue
		}
		entries = append(entries, RewardLock{
			UnlockAt: current + abi.ChainEpoch(i)*step,
			Amount:   locked,
		})
	}
	return LockSchedule{Entries: entries}
}
