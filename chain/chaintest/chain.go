// Package chaintest provides an in-memory stand-in for a node so scripts
// can be tested without ganache. Contracts are Go programs registered
// against the creation bytecode that deploys them.
package chaintest

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/tranvictor/lottery/chain"
)

var _ chain.Client = &Chain{}

// Program is the behaviour of a deployed contract.
type Program interface {
	Call(ctx *CallContext, input []byte) ([]byte, error)
}

// Constructor builds a program from the abi encoded constructor args.
type Constructor func(ctx *CallContext, args []byte) (Program, error)

// CallContext lets a program see who called it and call other programs.
type CallContext struct {
	chain *Chain
	From  common.Address
	Self  common.Address
	Value *big.Int
}

// Call runs input against the program at addr, as eth_call would from
// inside a contract. Calling an address without code returns no data.
func (c *CallContext) Call(to common.Address, input []byte) ([]byte, error) {
	return c.chain.call(c.Self, to, input)
}

type constructor struct {
	bytecode []byte
	ctor     Constructor
}

type Chain struct {
	mu sync.Mutex

	chainID *big.Int
	baseFee *big.Int
	block   uint64

	nonces       map[common.Address]uint64
	code         map[common.Address][]byte
	programs     map[common.Address]Program
	constructors []constructor
	receipts     map[common.Hash]*types.Receipt
	txs          []*types.Transaction
}

// New returns an empty london chain.
func New(chainID int64) *Chain {
	return &Chain{
		chainID:  big.NewInt(chainID),
		baseFee:  big.NewInt(1_000_000_000),
		nonces:   map[common.Address]uint64{},
		code:     map[common.Address][]byte{},
		programs: map[common.Address]Program{},
		receipts: map[common.Hash]*types.Receipt{},
	}
}

// WithLegacyFees makes the chain report no base fee, like a pre london
// ganache.
func (c *Chain) WithLegacyFees() *Chain {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseFee = nil
	return c
}

// Register makes creation txs whose data starts with bytecode deploy the
// program built by ctor.
func (c *Chain) Register(bytecode []byte, ctor Constructor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.constructors = append(c.constructors, constructor{common.CopyBytes(bytecode), ctor})
}

// Install puts a program at a fixed address, for contracts that already
// exist on the chain being forked.
func (c *Chain) Install(addr common.Address, p Program) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.programs[addr] = p
	c.code[addr] = []byte{0x60, 0x80}
}

// Reset forgets all deployed code, like restarting a development node.
func (c *Chain) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.code = map[common.Address][]byte{}
	c.programs = map[common.Address]Program{}
}

func (c *Chain) Transactions() []*types.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*types.Transaction{}, c.txs...)
}

// Creations returns the contract creation txs in send order.
func (c *Chain) Creations() []*types.Transaction {
	result := []*types.Transaction{}
	for _, tx := range c.Transactions() {
		if tx.To() == nil {
			result = append(result, tx)
		}
	}
	return result
}

func (c *Chain) Program(addr common.Address) Program {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.programs[addr]
}

func (c *Chain) ChainID(ctx context.Context) (*big.Int, error) {
	return new(big.Int).Set(c.chainID), nil
}

func (c *Chain) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nonces[account], nil
}

func (c *Chain) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(2_000_000_000), nil
}

func (c *Chain) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (c *Chain) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	header := &types.Header{Number: new(big.Int).SetUint64(c.block)}
	if c.baseFee != nil {
		header.BaseFee = new(big.Int).Set(c.baseFee)
	}
	return header, nil
}

func (c *Chain) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if msg.To == nil {
		return 3_000_000, nil
	}
	return 100_000, nil
}

func (c *Chain) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.CopyBytes(c.code[contract]), nil
}

func (c *Chain) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if msg.To == nil {
		return nil, fmt.Errorf("call without target")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.call(msg.From, *msg.To, msg.Data)
}

func (c *Chain) call(from common.Address, to common.Address, input []byte) ([]byte, error) {
	p, found := c.programs[to]
	if !found {
		return []byte{}, nil
	}
	return p.Call(&CallContext{chain: c, From: from, Self: to, Value: new(big.Int)}, input)
}

func (c *Chain) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	receipt, found := c.receipts[txHash]
	if !found {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

// SendTransaction mines the tx right away in its own block.
func (c *Chain) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	from, err := types.Sender(types.LatestSignerForChainID(c.chainID), tx)
	if err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	if tx.ChainId() != nil && tx.ChainId().Sign() != 0 && tx.ChainId().Cmp(c.chainID) != 0 {
		return fmt.Errorf("invalid chain id %s, expected %s", tx.ChainId(), c.chainID)
	}
	if tx.Nonce() != c.nonces[from] {
		return fmt.Errorf("invalid nonce %d, expected %d", tx.Nonce(), c.nonces[from])
	}
	c.nonces[from]++
	c.block++
	c.txs = append(c.txs, tx)

	receipt := &types.Receipt{
		Type:        tx.Type(),
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      tx.Hash(),
		GasUsed:     tx.Gas(),
		BlockNumber: new(big.Int).SetUint64(c.block),
	}
	if tx.To() == nil {
		addr := crypto.CreateAddress(from, tx.Nonce())
		receipt.ContractAddress = addr
		if err := c.create(from, addr, tx.Value(), tx.Data()); err != nil {
			receipt.Status = types.ReceiptStatusFailed
		}
	} else if p, found := c.programs[*tx.To()]; found {
		cc := &CallContext{chain: c, From: from, Self: *tx.To(), Value: tx.Value()}
		if _, err := p.Call(cc, tx.Data()); err != nil {
			receipt.Status = types.ReceiptStatusFailed
		}
	}
	c.receipts[tx.Hash()] = receipt
	return nil
}

func (c *Chain) create(from common.Address, addr common.Address, value *big.Int, data []byte) error {
	for _, ctor := range c.constructors {
		if !bytes.HasPrefix(data, ctor.bytecode) {
			continue
		}
		cc := &CallContext{chain: c, From: from, Self: addr, Value: value}
		p, err := ctor.ctor(cc, data[len(ctor.bytecode):])
		if err != nil {
			return err
		}
		c.programs[addr] = p
		c.code[addr] = common.CopyBytes(ctor.bytecode)
		return nil
	}
	return fmt.Errorf("no program registered for the deployed bytecode")
}
