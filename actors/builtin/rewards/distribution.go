package rewards

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/poscan-project/rewards-actors/actors/util/math"
)

// memberPayout is one pool member's computed cut of the miner reward.
type memberPayout struct {
	Member addr.Address
	Amount abi.TokenAmount
}

// blockDistribution is the fully resolved split of one block reward.
type blockDistribution struct {
	// Paid to the block author after slash and pool cut.
	MinerTotal abi.TokenAmount
	// Burned (redirected to treasury) for overmining.
	Slash abi.TokenAmount
	// Per-member payouts, same order as the reported member list.
	MemberPayouts []memberPayout
	// Equal share for each validator.
	PerValidator abi.TokenAmount
	// Validators receiving PerValidator each.
	Validators []addr.Address
	// Reward that no one could receive, zero unless the validator set is empty.
	Undistributed abi.TokenAmount
}

// overminingSlash ramps from zero at the rate limit to the full miner share
// at twice the limit, rounding to nearest with ties broken down.
func overminingSlash(rate, limit math.Percent) math.Perbill {
	if rate <= limit {
		return 0
	}
	if rate >= 2*limit {
		return math.PerbillOne
	}
	return math.DivPerbill(rate.Perbill().SaturatingSub(limit.Perbill()), limit.Perbill(), math.RoundNearestPrefDown)
}

// computeDistribution splits a block reward among the author, the author's
// mining pool members, and the validator set. All arithmetic truncates; any
// remainder of the member split is folded back into the author's total, and
// the validator side is sized off the author's final total.
func computeDistribution(reward abi.TokenAmount, minerShare math.Percent, poolRateLimit math.Percent, pool *PoolStat, validators []addr.Address) blockDistribution {
	minerTotal := minerShare.Mul(reward)

	d := blockDistribution{
		MinerTotal:    minerTotal,
		Slash:         big.Zero(),
		PerValidator:  big.Zero(),
		Validators:    validators,
		Undistributed: big.Zero(),
	}

	if pool != nil {
		slashRatio := overminingSlash(pool.Rate, poolRateLimit)
		if slashRatio > 0 {
			d.Slash = slashRatio.Mul(d.MinerTotal)
			d.MinerTotal = big.Sub(d.MinerTotal, d.Slash)
		}

		poolTotal := pool.Rate.Mul(d.MinerTotal)
		membersTotal := big.Sub(d.MinerTotal, poolTotal)

		// A pool reporting all-zero weights splits evenly; otherwise declared
		// weights apply as-is and a zero-weight member receives nothing.
		sumWeight := uint64(0)
		for _, m := range pool.Members {
			sumWeight += uint64(m.Weight)
		}
		totalWeight := sumWeight
		if sumWeight == 0 {
			totalWeight = uint64(len(pool.Members))
		}

		paid := big.Zero()
		if len(pool.Members) > 0 {
			d.MemberPayouts = make([]memberPayout, len(pool.Members))
			for i, m := range pool.Members {
				w := uint64(m.Weight)
				if sumWeight == 0 {
					w = 1
				}
				amount := math.PerbillFromRational(w, totalWeight).Mul(membersTotal)
				d.MemberPayouts[i] = memberPayout{Member: m.Member, Amount: amount}
				paid = big.Add(paid, amount)
			}
		}

		// Truncation leftovers from the weighted split go back to the author.
		d.MinerTotal = big.Add(poolTotal, big.Sub(membersTotal, paid))
	}

	// Validators split the reward net of the author's final total, so slash
	// and pool cuts enlarge the validator side.
	validatorTotal := big.Sub(reward, d.MinerTotal)
	if len(validators) > 0 {
		d.PerValidator = math.PerbillFromRational(1, uint64(len(validators))).Mul(validatorTotal)
	} else {
		d.Undistributed = validatorTotal
	}

	return d
}
