package scripts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/lottery/contracts"
	"github.com/tranvictor/lottery/util/account"
)

// DeployLottery deploys a Lottery reading prices from priceFeed.
func (h *Helper) DeployLottery(ctx context.Context, from *account.Account, priceFeed common.Address) (*contracts.Lottery, error) {
	ct, err := h.ContractType(ctx, contracts.LOTTERY)
	if err != nil {
		return nil, err
	}
	stop := h.ui.Spinner("Deploying Lottery...")
	c, err := ct.Deploy(ctx, h.tx, from, priceFeed)
	stop()
	if err != nil {
		return nil, err
	}
	h.ui.Info("Lottery deployed at: %s", c.Address().Hex())
	return contracts.NewLottery(c), nil
}

// EntranceFee deploys a Lottery against the eth_usd_price_feed of the
// active network and returns its entrance fee in wei.
func (h *Helper) EntranceFee(ctx context.Context) (*big.Int, error) {
	acc, err := h.GetAccount()
	if err != nil {
		return nil, err
	}
	feed, err := h.GetContract(ctx, "eth_usd_price_feed")
	if err != nil {
		return nil, err
	}
	lottery, err := h.DeployLottery(ctx, acc, feed.Address())
	if err != nil {
		return nil, err
	}
	return lottery.EntranceFee(ctx)
}

// EntranceFeeWithin checks min < fee < max.
func EntranceFeeWithin(fee *big.Int, min *big.Int, max *big.Int) error {
	if fee.Cmp(min) <= 0 || fee.Cmp(max) >= 0 {
		return fmt.Errorf("entrance fee %s is not strictly between %s and %s", fee, min, max)
	}
	return nil
}
