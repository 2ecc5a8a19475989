package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLamportsToSOL(t *testing.T) {
	assert.Equal(t, "0.000000000", LamportsToSOL(0))
	assert.Equal(t, "0.024981836", LamportsToSOL(24981836))
	assert.Equal(t, "1.000000000", LamportsToSOL(1_000_000_000))
	assert.Equal(t, "12.345678901", LamportsToSOL(12_345_678_901))
}

func TestWeiToETH(t *testing.T) {
	assert.Equal(t, "0.000000000000000000", WeiToETH(nil))
	assert.Equal(t, "0.000000000000000000", WeiToETH(big.NewInt(0)))
	assert.Equal(t, "1.000000000000000000", WeiToETH(big.NewInt(1_000_000_000_000_000_000)))

	wei, ok := new(big.Int).SetString("123456789012345678901", 10)
	assert.True(t, ok)
	assert.Equal(t, "123.456789012345678901", WeiToETH(wei))
}
