package accounts

import (
	"errors"
	"fmt"

	"github.com/tranvictor/lottery/util/account"
)

const DEFAULT_DEV_ACCOUNTS int = 10

var ErrAccountIndex = errors.New("account index out of range")

// PasswordFunc asks for the passphrase of a keystore.
type PasswordFunc func(prompt string) (string, error)

// Book is the ordered list of accounts scripts can sign with: the default
// accounts of a development node first, then everything added or loaded.
type Book struct {
	accounts    []*account.Account
	keystoreDir string
	password    PasswordFunc
}

func NewBook(accs ...*account.Account) *Book {
	return &Book{
		accounts:    accs,
		keystoreDir: KeystoreDir(),
		password:    getPassword,
	}
}

// NewDevBook derives the n default accounts of a node started with the
// mnemonic.
func NewDevBook(mnemonic string, n int) (*Book, error) {
	accs, err := account.DeriveDevAccounts(mnemonic, n)
	if err != nil {
		return nil, err
	}
	return NewBook(accs...), nil
}

func (b *Book) SetKeystoreDir(dir string) {
	b.keystoreDir = dir
}

func (b *Book) SetPasswordPrompt(f PasswordFunc) {
	b.password = f
}

func (b *Book) Len() int {
	return len(b.accounts)
}

func (b *Book) At(index int) (*account.Account, error) {
	if index < 0 || index >= len(b.accounts) {
		return nil, fmt.Errorf("index %d of %d accounts: %w", index, len(b.accounts), ErrAccountIndex)
	}
	return b.accounts[index], nil
}

// Add appends the account of a hex private key and returns it. Adding a
// key already in the book returns the existing account.
func (b *Book) Add(privateKey string) (*account.Account, error) {
	acc, err := account.NewPrivateKeyAccount(privateKey)
	if err != nil {
		return nil, err
	}
	for _, existing := range b.accounts {
		if existing.Address() == acc.Address() {
			return existing, nil
		}
	}
	b.accounts = append(b.accounts, acc)
	return acc, nil
}

// Load unlocks the keystore stored with id and appends its account.
func (b *Book) Load(id string) (*account.Account, error) {
	desc, err := FindKeystore(b.keystoreDir, id)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Using keystore: %s\n", desc.Path)
	pwd, err := b.password(fmt.Sprintf("Enter passphrase for '%s': ", desc.ID))
	if err != nil {
		return nil, err
	}
	acc, err := account.NewKeystoreAccount(desc.Path, pwd, desc.ID)
	if err != nil {
		return nil, fmt.Errorf("unlocking keystore '%s' failed: %w", desc.Path, err)
	}
	b.accounts = append(b.accounts, acc)
	return acc, nil
}
