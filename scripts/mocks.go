package scripts

import (
	"context"
	"math/big"

	"github.com/tranvictor/lottery/contracts"
)

// DeployMocks deploys one MockV3Aggregator from the default account.
func (h *Helper) DeployMocks(ctx context.Context, decimals uint8, startingPrice *big.Int) (*contracts.Contract, error) {
	acc, err := h.GetAccount()
	if err != nil {
		return nil, err
	}
	ct, err := h.ContractType(ctx, contracts.MOCK_V3_AGGREGATOR)
	if err != nil {
		return nil, err
	}

	stop := h.ui.Spinner("Deploying MockV3Aggregator...")
	mock, err := ct.Deploy(ctx, h.tx, acc, decimals, startingPrice)
	stop()
	if err != nil {
		return nil, err
	}
	h.ui.Info("MockV3Aggregator deployed at: %s", mock.Address().Hex())
	h.ui.Success("Deployed Mocks")
	return mock, nil
}

func (h *Helper) DeployDefaultMocks(ctx context.Context) (*contracts.Contract, error) {
	return h.DeployMocks(ctx, DECIMALS, big.NewInt(STARTING_PRICE))
}
