package chain_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/lottery/chain"
	"github.com/tranvictor/lottery/chain/chaintest"
	"github.com/tranvictor/lottery/util/account"
)

const testKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var creationCode = []byte{0x60, 0x80, 0x60, 0x40, 0x52}

type echo struct{}

func (echo) Call(ctx *chaintest.CallContext, input []byte) ([]byte, error) {
	if len(input) > 0 && input[0] == 0xff {
		return nil, errors.New("revert")
	}
	return input, nil
}

func newTransactor(t *testing.T, c *chaintest.Chain, cfg chain.Config) (*chain.Transactor, *account.Account) {
	t.Helper()
	acc, err := account.NewPrivateKeyAccount(testKey)
	require.NoError(t, err)
	cfg.ReceiptQueryInterval = time.Millisecond
	return chain.NewTransactor(c, cfg, nil), acc
}

func TestSendCreatesContract(t *testing.T) {
	c := chaintest.New(1337)
	c.Register(creationCode, func(*chaintest.CallContext, []byte) (chaintest.Program, error) {
		return echo{}, nil
	})
	tr, acc := newTransactor(t, c, chain.DefaultConfig())

	receipt, err := tr.Send(context.Background(), acc, nil, nil, creationCode)
	require.NoError(t, err)
	assert.NotEqual(t, common.Address{}, receipt.ContractAddress)

	txs := c.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, uint8(types.DynamicFeeTxType), txs[0].Type())
	assert.Equal(t, uint64(0), txs[0].Nonce())

	out, err := tr.Call(context.Background(), acc.Address(), receipt.ContractAddress, []byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, out)
}

func TestSendUsesLegacyTxWithoutBaseFee(t *testing.T) {
	c := chaintest.New(1337).WithLegacyFees()
	c.Register(creationCode, func(*chaintest.CallContext, []byte) (chaintest.Program, error) {
		return echo{}, nil
	})
	tr, acc := newTransactor(t, c, chain.Config{GasPrice: 3, GasLimit: 500000, ExtraGasLimit: 1000})

	_, err := tr.Send(context.Background(), acc, nil, nil, creationCode)
	require.NoError(t, err)

	tx := c.Transactions()[0]
	assert.Equal(t, uint8(types.LegacyTxType), tx.Type())
	assert.Equal(t, big.NewInt(3_000_000_000), tx.GasPrice())
	assert.Equal(t, uint64(501000), tx.Gas())
}

func TestSendIncrementsNonce(t *testing.T) {
	c := chaintest.New(1337)
	c.Register(creationCode, func(*chaintest.CallContext, []byte) (chaintest.Program, error) {
		return echo{}, nil
	})
	tr, acc := newTransactor(t, c, chain.DefaultConfig())

	first, err := tr.Send(context.Background(), acc, nil, nil, creationCode)
	require.NoError(t, err)
	second, err := tr.Send(context.Background(), acc, nil, nil, creationCode)
	require.NoError(t, err)
	assert.NotEqual(t, first.ContractAddress, second.ContractAddress)
	assert.Equal(t, uint64(1), c.Transactions()[1].Nonce())
}

func TestSendReverted(t *testing.T) {
	c := chaintest.New(1337)
	c.Register(creationCode, func(*chaintest.CallContext, []byte) (chaintest.Program, error) {
		return echo{}, nil
	})
	tr, acc := newTransactor(t, c, chain.DefaultConfig())

	receipt, err := tr.Send(context.Background(), acc, nil, nil, creationCode)
	require.NoError(t, err)

	to := receipt.ContractAddress
	receipt, err = tr.Send(context.Background(), acc, &to, nil, []byte{0xff})
	assert.True(t, errors.Is(err, chain.ErrTxReverted))
	require.NotNil(t, receipt)
	assert.Equal(t, types.ReceiptStatusFailed, receipt.Status)
}

func TestWaitMinedHonoursContext(t *testing.T) {
	tr, _ := newTransactor(t, chaintest.New(1337), chain.DefaultConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := tr.WaitMined(ctx, common.HexToHash("0x01"))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
