package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	gethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
	"golang.org/x/term"

	lotterycommon "github.com/tranvictor/lottery/common"
	"github.com/tranvictor/lottery/util/account"
)

var (
	ErrAccountNotFound = errors.New("account not found")

	// scrypt cost of stored keystores
	KeystoreScryptN = gethkeystore.StandardScryptN
	KeystoreScryptP = gethkeystore.StandardScryptP
)

// KeystoreDesc describes a stored keystore. Id is the name it was stored
// with, the file is <id>.json in the keystore dir.
type KeystoreDesc struct {
	ID      string
	Address string
	Path    string
}

type keystore struct {
	Address string `json:"address"`
}

func KeystoreDir() string {
	return filepath.Join(lotterycommon.DataDir(), "accounts")
}

func getPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Printf("\n")
	if err != nil {
		return "", fmt.Errorf("couldn't read passphrase: %w", err)
	}
	return string(bytePassword), nil
}

// StoreKeystore encrypts the private key with the passphrase and stores it
// as <id>.json in dir.
func StoreKeystore(dir string, id string, privateKey string, passphrase string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("account id must not be empty")
	}
	_, priv, err := account.PrivateKeyFromHex(privateKey)
	if err != nil {
		return "", err
	}
	kid, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	key := &gethkeystore.Key{
		Id:         kid,
		Address:    crypto.PubkeyToAddress(priv.PublicKey),
		PrivateKey: priv,
	}

	keystoreJson, err := gethkeystore.EncryptKey(
		key,
		passphrase,
		KeystoreScryptN,
		KeystoreScryptP,
	)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.json", id))
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("account '%s' already exists at %s", id, path)
	}
	return path, os.WriteFile(path, keystoreJson, 0600)
}

func VerifyKeystore(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	k := &keystore{}
	err = json.Unmarshal(content, k)
	if err != nil {
		return "", err
	}
	if !common.IsHexAddress(k.Address) {
		return "", fmt.Errorf("%s is not a keystore", path)
	}
	return common.HexToAddress(k.Address).Hex(), nil
}

// ListKeystores returns the stored keystores ordered by id. Files that are
// not keystores are skipped.
func ListKeystores(dir string) []KeystoreDesc {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		fmt.Printf("Getting accounts failed: %s.\n", err)
		return []KeystoreDesc{}
	}
	result := []KeystoreDesc{}
	for _, p := range paths {
		addr, err := VerifyKeystore(p)
		if err != nil {
			fmt.Printf("Reading keystore %s failed: %s. Ignore and continue.\n", p, err)
			continue
		}
		result = append(result, KeystoreDesc{
			ID:      strings.TrimSuffix(filepath.Base(p), ".json"),
			Address: addr,
			Path:    p,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// FindKeystore returns the keystore stored with exactly this id, otherwise
// the best fuzzy match on ids and addresses.
func FindKeystore(dir string, input string) (KeystoreDesc, error) {
	source := NewFuzzySource(dir)
	for _, desc := range source {
		if desc.ID == input {
			return desc, nil
		}
	}
	matches := fuzzy.FindFrom(strings.Replace(input, " ", "_", -1), source)
	if len(matches) == 0 {
		return KeystoreDesc{}, fmt.Errorf("no account is found with '%s': %w", input, ErrAccountNotFound)
	}
	return source[matches[0].Index], nil
}
