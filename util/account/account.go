package account

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Source tells where an account came from.
type Source string

const (
	SourceDefault  Source = "default"
	SourceKeystore Source = "keystore"
	SourceKey      Source = "private key"
)

type Account struct {
	signer  Signer
	address common.Address
	source  Source
	desc    string
}

func NewKeyAccount(key *ecdsa.PrivateKey, source Source, desc string) *Account {
	return &Account{
		signer:  NewKeySigner(key),
		address: crypto.PubkeyToAddress(key.PublicKey),
		source:  source,
		desc:    desc,
	}
}

// NewPrivateKeyAccount builds an account from a hex private key, with or
// without 0x prefix. Malformed keys fail with go-ethereum's error.
func NewPrivateKeyAccount(hex string) (*Account, error) {
	_, key, err := PrivateKeyFromHex(hex)
	if err != nil {
		return nil, err
	}
	return NewKeyAccount(key, SourceKey, ""), nil
}

func NewKeystoreAccount(file string, password string, desc string) (*Account, error) {
	_, key, err := PrivateKeyFromKeystore(file, password)
	if err != nil {
		return nil, err
	}
	return NewKeyAccount(key, SourceKeystore, desc), nil
}

func (self *Account) Address() common.Address {
	return self.address
}

func (self *Account) AddressHex() string {
	return self.address.Hex()
}

func (self *Account) Source() Source {
	return self.source
}

func (self *Account) Description() string {
	return self.desc
}

func (self *Account) String() string {
	if self.desc == "" {
		return fmt.Sprintf("%s (%s)", self.address.Hex(), self.source)
	}
	return fmt.Sprintf("%s (%s: %s)", self.address.Hex(), self.source, self.desc)
}

func (self *Account) SignTx(tx *types.Transaction, chainId *big.Int) (*types.Transaction, error) {
	signedTx, err := self.signer.SignTx(tx, chainId)
	if err != nil {
		return tx, fmt.Errorf("couldn't sign the tx: %w", err)
	}
	return signedTx, nil
}
