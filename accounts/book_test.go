package accounts_test

import (
	"errors"
	"testing"

	gethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/lottery/accounts"
	"github.com/tranvictor/lottery/util/account"
)

const (
	testMnemonic = "test test test test test test test test test test test junk"
	testKey      = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress  = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	otherKey     = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	otherAddress = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

func init() {
	accounts.KeystoreScryptN = gethkeystore.LightScryptN
	accounts.KeystoreScryptP = gethkeystore.LightScryptP
}

func TestDevBookAt(t *testing.T) {
	book, err := accounts.NewDevBook(testMnemonic, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, book.Len())

	first, err := book.At(0)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testAddress), first.Address())

	_, err = book.At(3)
	assert.True(t, errors.Is(err, accounts.ErrAccountIndex))
	_, err = book.At(-1)
	assert.True(t, errors.Is(err, accounts.ErrAccountIndex))
}

func TestBookAddAppendsOnce(t *testing.T) {
	book := accounts.NewBook()

	acc, err := book.Add(otherKey)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(otherAddress), acc.Address())
	assert.Equal(t, account.SourceKey, acc.Source())

	again, err := book.Add("0x" + otherKey)
	require.NoError(t, err)
	assert.Same(t, acc, again)
	assert.Equal(t, 1, book.Len())
}

func TestBookAddBadKey(t *testing.T) {
	_, err := accounts.NewBook().Add("0x1234")
	assert.Error(t, err)
}

func TestStoreAndLoadKeystore(t *testing.T) {
	dir := t.TempDir()
	path, err := accounts.StoreKeystore(dir, "deployer", testKey, "secret")
	require.NoError(t, err)

	addr, err := accounts.VerifyKeystore(path)
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr)

	_, err = accounts.StoreKeystore(dir, "deployer", otherKey, "secret")
	assert.Error(t, err)

	book := accounts.NewBook()
	book.SetKeystoreDir(dir)
	book.SetPasswordPrompt(func(string) (string, error) { return "secret", nil })

	acc, err := book.Load("deployer")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testAddress), acc.Address())
	assert.Equal(t, account.SourceKeystore, acc.Source())
	assert.Equal(t, "deployer", acc.Description())
	assert.Equal(t, 1, book.Len())
}

func TestLoadKeystoreWrongPassphrase(t *testing.T) {
	dir := t.TempDir()
	_, err := accounts.StoreKeystore(dir, "deployer", testKey, "secret")
	require.NoError(t, err)

	book := accounts.NewBook()
	book.SetKeystoreDir(dir)
	book.SetPasswordPrompt(func(string) (string, error) { return "wrong", nil })

	_, err = book.Load("deployer")
	assert.Error(t, err)
}

func TestFindKeystore(t *testing.T) {
	dir := t.TempDir()
	_, err := accounts.StoreKeystore(dir, "lottery-deployer", testKey, "secret")
	require.NoError(t, err)
	_, err = accounts.StoreKeystore(dir, "treasury", otherKey, "secret")
	require.NoError(t, err)

	desc, err := accounts.FindKeystore(dir, "treasury")
	require.NoError(t, err)
	assert.Equal(t, otherAddress, desc.Address)

	desc, err = accounts.FindKeystore(dir, "lotdep")
	require.NoError(t, err)
	assert.Equal(t, "lottery-deployer", desc.ID)

	_, err = accounts.FindKeystore(dir, "qqqq")
	assert.True(t, errors.Is(err, accounts.ErrAccountNotFound))

	assert.Len(t, accounts.ListKeystores(dir), 2)
}
