package contracts

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/tranvictor/lottery/chain"
	"github.com/tranvictor/lottery/util/account"
)

// ContractType is a compiled contract together with the deployments of it
// made or found on the active chain, oldest first.
type ContractType struct {
	name     string
	abi      *abi.ABI
	bytecode []byte

	mu          sync.Mutex
	history     []*Contract
	deployments *Deployments
	chainID     uint64
}

func NewContractType(name string, a *abi.ABI, bytecode []byte) *ContractType {
	return &ContractType{
		name:     name,
		abi:      a,
		bytecode: bytecode,
	}
}

// LoadContractType builds the contract type from its artifact. Without an
// artifact the embedded abi is used and the type can only be bound to
// existing deployments.
func LoadContractType(buildDir string, name string) (*ContractType, error) {
	artifact, err := LoadArtifact(buildDir, name)
	if err == nil {
		return NewContractType(name, artifact.ABI, artifact.Bytecode), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	a, embErr := EmbeddedABI(name)
	if embErr != nil {
		return nil, err
	}
	log.Debug("Using embedded abi", "contract", name, "buildDir", buildDir)
	return NewContractType(name, a, nil), nil
}

func (ct *ContractType) Name() string {
	return ct.name
}

func (ct *ContractType) ABI() *abi.ABI {
	return ct.abi
}

func (ct *ContractType) Bytecode() []byte {
	return ct.bytecode
}

func (ct *ContractType) Len() int {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return len(ct.history)
}

// Last returns the most recent deployment, nil if there is none.
func (ct *ContractType) Last() *Contract {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	if len(ct.history) == 0 {
		return nil
	}
	return ct.history[len(ct.history)-1]
}

func (ct *ContractType) Deployed() []*Contract {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return append([]*Contract{}, ct.history...)
}

// Track makes new deployments get recorded in d and brings back the ones d
// already has for the chain, skipping addresses that no longer have code.
func (ct *ContractType) Track(ctx context.Context, tx *chain.Transactor, d *Deployments) error {
	chainID, err := tx.ChainID(ctx)
	if err != nil {
		return err
	}
	saved := d.Get(chainID.Uint64(), ct.name)
	restored := []*Contract{}
	for i := len(saved) - 1; i >= 0; i-- {
		code, err := tx.CodeAt(ctx, saved[i])
		if err != nil {
			return fmt.Errorf("couldn't get code of %s: %w", saved[i].Hex(), err)
		}
		if len(code) == 0 {
			log.Debug("Skipping deployment without code", "contract", ct.name, "address", saved[i])
			continue
		}
		restored = append(restored, FromABI(ct.name, saved[i], ct.abi, tx))
	}

	ct.mu.Lock()
	defer ct.mu.Unlock()
	ct.deployments = d
	ct.chainID = chainID.Uint64()
	ct.history = append(restored, ct.history...)
	return nil
}

// Deploy sends the creation tx of the contract type with the abi encoded
// constructor args and records the new contract as the most recent one.
func (ct *ContractType) Deploy(
	ctx context.Context,
	tx *chain.Transactor,
	from *account.Account,
	args ...interface{},
) (*Contract, error) {
	if len(ct.bytecode) == 0 {
		return nil, fmt.Errorf("%s has no bytecode, compile the project first", ct.name)
	}
	packed, err := ct.abi.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("couldn't pack constructor args of %s: %w", ct.name, err)
	}
	data := append(common.CopyBytes(ct.bytecode), packed...)

	receipt, err := tx.Send(ctx, from, nil, nil, data)
	if err != nil {
		return nil, fmt.Errorf("couldn't deploy %s: %w", ct.name, err)
	}
	result := FromABI(ct.name, receipt.ContractAddress, ct.abi, tx)

	ct.mu.Lock()
	defer ct.mu.Unlock()
	ct.history = append(ct.history, result)
	if ct.deployments != nil {
		if err := ct.deployments.Add(ct.chainID, ct.name, result.Address()); err != nil {
			return result, fmt.Errorf("%s deployed at %s but couldn't be saved: %w", ct.name, result.Address().Hex(), err)
		}
	}
	return result, nil
}
