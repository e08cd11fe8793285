package rewards

import (
	"github.com/poscan-project/rewards-actors/actors/util/math"
)

// Identifier under which the vesting lock is recorded against an account's
// currency balance. Must be the same as in the validator-set module.
var RewardsLockID = []byte("rewards ")

// Share of each block reward attributed to the block author (and, through
// the author, to pool members) when no on-chain override is set.
var DefaultMinerSharePercent = math.FromPercent(70) // PARAM_SPEC

// Soft ceiling for a mining pool's share of recent block production. A pool
// producing above this rate has part of its reward clawed back; at twice
// this rate the claw-back reaches the whole miner share.
var DefaultMiningPoolMaxRate = math.FromPercent(30) // PARAM_SPEC

// Bounds on admissible lock parameters.
type LockBounds struct {
	PeriodMax uint64
	PeriodMin uint64
	DivideMax uint64
	DivideMin uint64
}

var DefaultLockBounds = LockBounds{ // PARAM_SPEC
	PeriodMax: 60480,
	PeriodMin: 12,
	DivideMax: 180,
	DivideMin: 2,
}

// Reasons an account may withdraw locked balance. Mirrors the restriction
// set of the currency primitive.
type WithdrawReasons uint8

const (
	WithdrawTransactionPayment WithdrawReasons = 1 << iota
	WithdrawTransfer
	WithdrawReserve
	WithdrawFee
	WithdrawTip

	WithdrawAll = WithdrawTransactionPayment | WithdrawTransfer | WithdrawReserve | WithdrawFee | WithdrawTip
)

// WithdrawReasonsExcept returns the full restriction set minus the given
// reasons. Vesting locks exempt only transaction-fee payment.
func WithdrawReasonsExcept(r WithdrawReasons) WithdrawReasons {
	return WithdrawAll &^ r
}
