package math_test

import (
	"testing"

	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"

	"github.com/poscan-project/rewards-actors/actors/util/math"
)

func TestPercentMulTruncates(t *testing.T) {
	assert.Equal(t, big.NewInt(500), math.FromPercent(50).Mul(big.NewInt(1000)))
	assert.Equal(t, big.NewInt(112), math.FromPercent(45).Mul(big.NewInt(250)))
	assert.Equal(t, big.Zero(), math.FromPercent(0).Mul(big.NewInt(1000)))
	assert.Equal(t, big.NewInt(1000), math.PercentOne.Mul(big.NewInt(1000)))
}

func TestFromPercentSaturates(t *testing.T) {
	assert.Equal(t, math.PercentOne, math.FromPercent(150))
	assert.True(t, math.FromPercent(100).IsValid())
	assert.False(t, math.Percent(101).IsValid())
}

func TestPercentToPerbill(t *testing.T) {
	assert.Equal(t, math.Perbill(500_000_000), math.FromPercent(50).Perbill())
	assert.Equal(t, math.PerbillOne, math.PercentOne.Perbill())
}

func TestPerbillFromRational(t *testing.T) {
	assert.Equal(t, math.Perbill(500_000_000), math.PerbillFromRational(1, 2))
	assert.Equal(t, math.Perbill(333_333_333), math.PerbillFromRational(1, 3))
	// saturation
	assert.Equal(t, math.PerbillOne, math.PerbillFromRational(3, 2))
	assert.Equal(t, math.PerbillOne, math.PerbillFromRational(1, 0))
}

func TestDivPerbillRounding(t *testing.T) {
	half := math.FromPercent(50).Perbill()
	full := math.PercentOne.Perbill()

	assert.Equal(t, half, math.DivPerbill(half, full, math.RoundDown))

	// one third rounds down, two thirds rounds to nearest
	third := math.DivPerbill(math.Perbill(1), math.Perbill(3), math.RoundNearestPrefDown)
	assert.Equal(t, math.Perbill(333_333_333), third)
	twoThirds := math.DivPerbill(math.Perbill(2), math.Perbill(3), math.RoundNearestPrefDown)
	assert.Equal(t, math.Perbill(666_666_667), twoThirds)

	// exact tie prefers down
	tie := math.DivPerbill(math.Perbill(1), math.Perbill(2), math.RoundNearestPrefDown)
	assert.Equal(t, math.Perbill(500_000_000), tie)

	// saturation
	assert.Equal(t, math.PerbillOne, math.DivPerbill(full, half, math.RoundDown))
	assert.Equal(t, math.PerbillOne, math.DivPerbill(half, 0, math.RoundDown))
}

func TestPerbillSaturatingSub(t *testing.T) {
	assert.Equal(t, math.Perbill(1), math.Perbill(3).SaturatingSub(math.Perbill(2)))
	assert.Equal(t, math.Perbill(0), math.Perbill(2).SaturatingSub(math.Perbill(3)))
}

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, big.NewInt(1), math.SaturatingSub(big.NewInt(3), big.NewInt(2)))
	assert.Equal(t, big.Zero(), math.SaturatingSub(big.NewInt(2), big.NewInt(3)))
}
