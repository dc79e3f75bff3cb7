package account

import (
	"crypto/sha512"
	"fmt"

	hdwallet "github.com/ethereum-optimism/go-ethereum-hdwallet"
	"golang.org/x/crypto/pbkdf2"
)

const DEV_DERIVATION_PATH string = "m/44'/60'/0'/0/%d"

// mnemonicSeed is the BIP-39 seed of a mnemonic. Ganache accepts any phrase
// (brownie launches it with "brownie") so the word list checksum is not
// verified.
func mnemonicSeed(mnemonic string, passphrase string) []byte {
	return pbkdf2.Key([]byte(mnemonic), []byte("mnemonic"+passphrase), 2048, 64, sha512.New)
}

// DeriveDevAccounts returns the first n accounts a development node
// started with the mnemonic funds.
func DeriveDevAccounts(mnemonic string, n int) ([]*Account, error) {
	wallet, err := hdwallet.NewFromSeed(mnemonicSeed(mnemonic, ""))
	if err != nil {
		return nil, fmt.Errorf("couldn't create hd wallet from mnemonic: %w", err)
	}
	result := make([]*Account, 0, n)
	for i := 0; i < n; i++ {
		path, err := hdwallet.ParseDerivationPath(fmt.Sprintf(DEV_DERIVATION_PATH, i))
		if err != nil {
			return nil, err
		}
		acc, err := wallet.Derive(path, false)
		if err != nil {
			return nil, fmt.Errorf("couldn't derive %s: %w", path, err)
		}
		key, err := wallet.PrivateKey(acc)
		if err != nil {
			return nil, err
		}
		result = append(result, NewKeyAccount(key, SourceDefault, fmt.Sprintf("#%d", i)))
	}
	return result, nil
}
