package rewards

import (
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poscan-project/rewards-actors/actors/util/math"
)

func idAddr(t *testing.T, id uint64) addr.Address {
	a, err := addr.NewIDAddress(id)
	require.NoError(t, err)
	return a
}

func TestOverminingSlash(t *testing.T) {
	limit := math.FromPercent(30)

	assert.Equal(t, math.Perbill(0), overminingSlash(math.FromPercent(10), limit))
	assert.Equal(t, math.Perbill(0), overminingSlash(math.FromPercent(30), limit))
	assert.Equal(t, math.FromPercent(50).Perbill(), overminingSlash(math.FromPercent(45), limit))
	assert.Equal(t, math.PerbillOne, overminingSlash(math.FromPercent(60), limit))
	assert.Equal(t, math.PerbillOne, overminingSlash(math.FromPercent(90), limit))

	// with a zero limit any production at all sits past the hard ceiling
	assert.Equal(t, math.Perbill(0), overminingSlash(0, 0))
	assert.Equal(t, math.PerbillOne, overminingSlash(math.FromPercent(1), 0))
	assert.Equal(t, math.PerbillOne, overminingSlash(math.FromPercent(90), 0))
}

func TestComputeDistributionNoPool(t *testing.T) {
	validators := []addr.Address{idAddr(t, 100), idAddr(t, 101)}
	d := computeDistribution(big.NewInt(1000), math.FromPercent(50), math.FromPercent(30), nil, validators)

	assert.Equal(t, big.NewInt(500), d.MinerTotal)
	assert.Equal(t, big.Zero(), d.Slash)
	assert.Empty(t, d.MemberPayouts)
	assert.Equal(t, big.NewInt(250), d.PerValidator)
	assert.Equal(t, big.Zero(), d.Undistributed)
}

func TestComputeDistributionOverminedPool(t *testing.T) {
	members := []MemberWeight{
		{Member: idAddr(t, 200), Weight: 1},
		{Member: idAddr(t, 201), Weight: 1},
	}
	pool := &PoolStat{Rate: math.FromPercent(45), Members: members}
	validators := []addr.Address{idAddr(t, 100), idAddr(t, 101)}

	d := computeDistribution(big.NewInt(1000), math.FromPercent(50), math.FromPercent(30), pool, validators)

	// 50% miner cut is 500; at 45% production against a 30% ceiling half of
	// it is slashed, leaving 250
	assert.Equal(t, big.NewInt(250), d.Slash)

	// pool keeps 45% of the remaining 250 (truncated to 112), members split
	// the rest by weight
	require.Len(t, d.MemberPayouts, 2)
	assert.Equal(t, big.NewInt(69), d.MemberPayouts[0].Amount)
	assert.Equal(t, big.NewInt(69), d.MemberPayouts[1].Amount)
	assert.Equal(t, big.NewInt(112), d.MinerTotal)

	// validators split the reward net of the author's final total
	assert.Equal(t, big.NewInt(444), d.PerValidator)
	total := big.Sum(d.MinerTotal, big.Mul(d.PerValidator, big.NewInt(int64(len(validators)))))
	assert.Equal(t, big.NewInt(1000), total)
}

func TestComputeDistributionZeroWeights(t *testing.T) {
	members := []MemberWeight{
		{Member: idAddr(t, 200), Weight: 0},
		{Member: idAddr(t, 201), Weight: 0},
	}
	pool := &PoolStat{Rate: math.FromPercent(20), Members: members}

	d := computeDistribution(big.NewInt(1000), math.FromPercent(50), math.FromPercent(30), pool, nil)

	// an all-zero weight set splits evenly
	require.Len(t, d.MemberPayouts, 2)
	assert.Equal(t, d.MemberPayouts[0].Amount, d.MemberPayouts[1].Amount)
	assert.Equal(t, big.NewInt(200), d.MemberPayouts[0].Amount)
}

func TestComputeDistributionMixedWeights(t *testing.T) {
	members := []MemberWeight{
		{Member: idAddr(t, 200), Weight: 0},
		{Member: idAddr(t, 201), Weight: 1},
	}
	pool := &PoolStat{Rate: math.FromPercent(20), Members: members}

	d := computeDistribution(big.NewInt(1000), math.FromPercent(50), math.FromPercent(30), pool, nil)

	// declared weights apply as soon as any member carries one
	require.Len(t, d.MemberPayouts, 2)
	assert.Equal(t, big.Zero(), d.MemberPayouts[0].Amount)
	assert.Equal(t, big.NewInt(400), d.MemberPayouts[1].Amount)
}

func TestComputeDistributionWeightRemainder(t *testing.T) {
	members := []MemberWeight{
		{Member: idAddr(t, 200), Weight: 1},
		{Member: idAddr(t, 201), Weight: 1},
		{Member: idAddr(t, 202), Weight: 1},
	}
	pool := &PoolStat{Rate: math.FromPercent(0), Members: members}

	d := computeDistribution(big.NewInt(200), math.FromPercent(50), math.FromPercent(30), pool, nil)

	// member split truncates, the leftover unit returns to the author
	assert.Equal(t, big.NewInt(33), d.MemberPayouts[0].Amount)
	assert.Equal(t, big.NewInt(1), d.MinerTotal)
}

func TestComputeDistributionEmptyValidators(t *testing.T) {
	d := computeDistribution(big.NewInt(1000), math.FromPercent(50), math.FromPercent(30), nil, nil)

	assert.Equal(t, big.Zero(), d.PerValidator)
	assert.Equal(t, big.NewInt(500), d.Undistributed)
}
