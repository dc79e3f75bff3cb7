package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatToBigInt(t *testing.T) {
	assert.Equal(t, big.NewInt(10000), FloatToBigInt(1, 4))
	assert.Equal(t, big.NewInt(12340), FloatToBigInt(1.234, 4))
	assert.Equal(t, "20000000000000000", EthToWei(0.02).String())
	assert.Equal(t, "22000000000000000", EthToWei(0.022).String())
	assert.Equal(t, "3000000000", GweiToWei(3).String())
}

func TestBigToFloatString(t *testing.T) {
	assert.Equal(t, "2000", BigToFloatString(big.NewInt(200000000000), 8))
	assert.Equal(t, "0.025", BigToFloatString(big.NewInt(25000000000000000), 18))
	assert.Equal(t, "42", BigToFloatString(big.NewInt(42), 0))
}
