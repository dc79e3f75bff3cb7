package contracts

import (
	"context"
	"fmt"
	"math/big"
)

// RoundData is the answer of latestRoundData.
type RoundData struct {
	RoundID         *big.Int
	Answer          *big.Int
	StartedAt       *big.Int
	UpdatedAt       *big.Int
	AnsweredInRound *big.Int
}

// PriceFeed reads a chainlink aggregator, or the mock of one.
type PriceFeed struct {
	*Contract
}

func NewPriceFeed(c *Contract) *PriceFeed {
	return &PriceFeed{c}
}

func (pf *PriceFeed) Decimals(ctx context.Context) (uint8, error) {
	out, err := pf.Call(ctx, "decimals")
	if err != nil {
		return 0, err
	}
	return out[0].(uint8), nil
}

func (pf *PriceFeed) Description(ctx context.Context) (string, error) {
	out, err := pf.Call(ctx, "description")
	if err != nil {
		return "", err
	}
	return out[0].(string), nil
}

func (pf *PriceFeed) Version(ctx context.Context) (*big.Int, error) {
	out, err := pf.Call(ctx, "version")
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (pf *PriceFeed) LatestRoundData(ctx context.Context) (*RoundData, error) {
	out, err := pf.Call(ctx, "latestRoundData")
	if err != nil {
		return nil, err
	}
	if len(out) != 5 {
		return nil, fmt.Errorf("latestRoundData returned %d values", len(out))
	}
	return &RoundData{
		RoundID:         out[0].(*big.Int),
		Answer:          out[1].(*big.Int),
		StartedAt:       out[2].(*big.Int),
		UpdatedAt:       out[3].(*big.Int),
		AnsweredInRound: out[4].(*big.Int),
	}, nil
}
