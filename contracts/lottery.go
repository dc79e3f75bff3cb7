package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tranvictor/lottery/util/account"
)

type Lottery struct {
	*Contract
}

func NewLottery(c *Contract) *Lottery {
	return &Lottery{c}
}

// EntranceFee is the wei worth of the usd entry fee at the price feed's
// latest answer.
func (l *Lottery) EntranceFee(ctx context.Context) (*big.Int, error) {
	out, err := l.Call(ctx, "getEntranceFee")
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

// UsdEntryFee is in usd with 18 decimals.
func (l *Lottery) UsdEntryFee(ctx context.Context) (*big.Int, error) {
	out, err := l.Call(ctx, "usdEntryFee")
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (l *Lottery) Player(ctx context.Context, index int64) (common.Address, error) {
	out, err := l.Call(ctx, "players", big.NewInt(index))
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (l *Lottery) StartLottery(ctx context.Context, from *account.Account) (*types.Receipt, error) {
	return l.Transact(ctx, from, nil, "startLottery")
}

func (l *Lottery) Enter(ctx context.Context, from *account.Account, value *big.Int) (*types.Receipt, error) {
	return l.Transact(ctx, from, value, "enter")
}
