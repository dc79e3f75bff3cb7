package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"

	lotterycommon "github.com/tranvictor/lottery/common"
	"github.com/tranvictor/lottery/util/account"
)

var ErrTxReverted = errors.New("transaction reverted")

type Config struct {
	// GasPrice is the legacy gas price, or the max fee of a dynamic fee tx,
	// in gwei. 0 means asking the node.
	GasPrice float64
	// TipGas is the priority fee in gwei. 0 means asking the node.
	TipGas float64
	// GasLimit of 0 means estimating it with the node.
	GasLimit      uint64
	ExtraGasLimit uint64

	ReceiptQueryInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		ExtraGasLimit:        0,
		ReceiptQueryInterval: time.Second,
	}
}

// Transactor builds, signs and sends transactions and waits for them to be
// mined. Everything blocks until the node answers.
type Transactor struct {
	client Client
	cfg    Config
	l      log.Logger

	mu      sync.Mutex
	chainID *big.Int
}

func NewTransactor(client Client, cfg Config, l log.Logger) *Transactor {
	if cfg.ReceiptQueryInterval <= 0 {
		cfg.ReceiptQueryInterval = time.Second
	}
	if l == nil {
		l = log.Root()
	}
	return &Transactor{
		client: client,
		cfg:    cfg,
		l:      l,
	}
}

func (t *Transactor) ChainID(ctx context.Context) (*big.Int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.chainID != nil {
		return t.chainID, nil
	}
	id, err := t.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't get chain id: %w", err)
	}
	t.chainID = id
	return id, nil
}

func (t *Transactor) buildTx(
	ctx context.Context,
	from common.Address,
	to *common.Address,
	value *big.Int,
	data []byte,
) (*types.Transaction, error) {
	chainID, err := t.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	nonce, err := t.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("couldn't get nonce of %s: %w", from.Hex(), err)
	}

	gas := t.cfg.GasLimit
	if gas == 0 {
		gas, err = t.client.EstimateGas(ctx, ethereum.CallMsg{
			From:  from,
			To:    to,
			Value: value,
			Data:  data,
		})
		if err != nil {
			return nil, fmt.Errorf("couldn't estimate gas: %w", err)
		}
	}
	gas += t.cfg.ExtraGasLimit

	header, err := t.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("couldn't get latest header: %w", err)
	}

	if header.BaseFee == nil {
		gasPrice := lotterycommon.GweiToWei(t.cfg.GasPrice)
		if t.cfg.GasPrice == 0 {
			if gasPrice, err = t.client.SuggestGasPrice(ctx); err != nil {
				return nil, fmt.Errorf("couldn't get gas price: %w", err)
			}
		}
		return types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: gasPrice,
			Gas:      gas,
			To:       to,
			Value:    value,
			Data:     data,
		}), nil
	}

	tip := lotterycommon.GweiToWei(t.cfg.TipGas)
	if t.cfg.TipGas == 0 {
		if tip, err = t.client.SuggestGasTipCap(ctx); err != nil {
			return nil, fmt.Errorf("couldn't get tip cap: %w", err)
		}
	}
	feeCap := lotterycommon.GweiToWei(t.cfg.GasPrice)
	if t.cfg.GasPrice == 0 {
		feeCap = new(big.Int).Add(tip, new(big.Int).Mul(header.BaseFee, big.NewInt(2)))
	}
	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        to,
		Value:     value,
		Data:      data,
	}), nil
}

// Send signs a tx from the account and blocks until it is mined. A nil to
// creates a contract. A reverted tx returns its receipt with ErrTxReverted.
func (t *Transactor) Send(
	ctx context.Context,
	from *account.Account,
	to *common.Address,
	value *big.Int,
	data []byte,
) (*types.Receipt, error) {
	if value == nil {
		value = big.NewInt(0)
	}
	tx, err := t.buildTx(ctx, from.Address(), to, value, data)
	if err != nil {
		return nil, err
	}
	chainID, err := t.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	signed, err := from.SignTx(tx, chainID)
	if err != nil {
		return nil, err
	}

	l := t.l.New("tx", signed.Hash(), "from", from.Address(), "nonce", signed.Nonce())
	l.Debug("Publishing transaction", "gas", signed.Gas(), "type", signed.Type())
	if err := t.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("couldn't broadcast tx %s: %w", signed.Hash().Hex(), err)
	}

	receipt, err := t.WaitMined(ctx, signed.Hash())
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		l.Warn("Transaction reverted", "block", receipt.BlockNumber)
		return receipt, fmt.Errorf("tx %s: %w", signed.Hash().Hex(), ErrTxReverted)
	}
	l.Debug("Transaction mined", "block", receipt.BlockNumber, "gasUsed", receipt.GasUsed)
	return receipt, nil
}

// WaitMined polls for the receipt until it shows up or ctx is done.
func (t *Transactor) WaitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(t.cfg.ReceiptQueryInterval)
	defer ticker.Stop()
	for {
		receipt, err := t.client.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			t.l.Trace("Receipt query failed", "tx", hash, "err", err)
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for tx %s: %w", hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// Call runs a read only call against the latest block.
func (t *Transactor) Call(ctx context.Context, from common.Address, to common.Address, data []byte) ([]byte, error) {
	out, err := t.client.CallContract(ctx, ethereum.CallMsg{
		From: from,
		To:   &to,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("call to %s failed: %w", to.Hex(), err)
	}
	return out, nil
}

func (t *Transactor) CodeAt(ctx context.Context, addr common.Address) ([]byte, error) {
	return t.client.CodeAt(ctx, addr, nil)
}
