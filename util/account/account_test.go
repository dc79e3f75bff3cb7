package account_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/lottery/util/account"
)

const (
	testMnemonic = "test test test test test test test test test test test junk"
	testKey      = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress  = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestPrivateKeyFromHexAcceptsBothForms(t *testing.T) {
	addr, _, err := account.PrivateKeyFromHex(testKey)
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr)

	addr, _, err = account.PrivateKeyFromHex(testKey[2:])
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr)
}

func TestPrivateKeyFromHexRejectsGarbage(t *testing.T) {
	_, _, err := account.PrivateKeyFromHex("0xnot-a-key")
	assert.Error(t, err)
}

func TestDeriveDevAccounts(t *testing.T) {
	accs, err := account.DeriveDevAccounts(testMnemonic, 2)
	require.NoError(t, err)
	require.Len(t, accs, 2)

	assert.Equal(t, common.HexToAddress(testAddress), accs[0].Address())
	assert.Equal(t, common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), accs[1].Address())
	assert.Equal(t, account.SourceDefault, accs[0].Source())
}

func TestDeriveDevAccountsAcceptsNonBIP39Phrase(t *testing.T) {
	first, err := account.DeriveDevAccounts("brownie", 1)
	require.NoError(t, err)
	second, err := account.DeriveDevAccounts("brownie", 1)
	require.NoError(t, err)
	assert.Equal(t, first[0].Address(), second[0].Address())
}

func TestSignTxRecoversSender(t *testing.T) {
	acc, err := account.NewPrivateKeyAccount(testKey)
	require.NoError(t, err)

	chainID := big.NewInt(1337)
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     0,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		Gas:       21000,
		Value:     big.NewInt(0),
	})
	signed, err := acc.SignTx(tx, chainID)
	require.NoError(t, err)

	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, acc.Address(), sender)
}
