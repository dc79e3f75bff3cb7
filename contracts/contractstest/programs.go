// Package contractstest runs MockV3Aggregator and Lottery as chaintest
// programs and writes build artifacts for them.
package contractstest

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/lottery/chain/chaintest"
	"github.com/tranvictor/lottery/contracts"
)

// Creation code of the emulated contracts. They only have to be distinct
// prefixes of the creation tx data.
var (
	MockV3AggregatorBytecode = common.FromHex("0x608060405234801561001057600080fd5b5060aa")
	LotteryBytecode          = common.FromHex("0x608060405234801561001057600080fd5b5060bb")
)

var (
	aggregatorABI = contracts.MustEmbeddedABI(contracts.MOCK_V3_AGGREGATOR)
	lotteryABI    = contracts.MustEmbeddedABI(contracts.LOTTERY)
)

// Register makes c deploy the emulations for their creation code.
func Register(c *chaintest.Chain) {
	c.Register(MockV3AggregatorBytecode, newAggregatorFromArgs)
	c.Register(LotteryBytecode, newLotteryFromArgs)
}

type handler func(ctx *chaintest.CallContext, args []interface{}) ([]interface{}, error)

func dispatch(a *abi.ABI, handlers map[string]handler, ctx *chaintest.CallContext, input []byte) ([]byte, error) {
	if len(input) < 4 {
		return nil, fmt.Errorf("no selector")
	}
	method, err := a.MethodById(input[:4])
	if err != nil {
		return nil, err
	}
	h, found := handlers[method.Name]
	if !found {
		return nil, fmt.Errorf("%s is not emulated", method.Name)
	}
	args, err := method.Inputs.Unpack(input[4:])
	if err != nil {
		return nil, err
	}
	if !method.IsPayable() && ctx.Value != nil && ctx.Value.Sign() > 0 {
		return nil, fmt.Errorf("%s is not payable", method.Name)
	}
	out, err := h(ctx, args)
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(out...)
}

type round struct {
	answer    *big.Int
	timestamp *big.Int
	startedAt *big.Int
}

// Aggregator behaves like chainlink's MockV3Aggregator.
type Aggregator struct {
	mu       sync.Mutex
	decimals uint8
	latest   *big.Int
	rounds   map[string]round
}

func NewAggregator(decimals uint8, initialAnswer *big.Int) *Aggregator {
	a := &Aggregator{
		decimals: decimals,
		latest:   big.NewInt(0),
		rounds:   map[string]round{},
	}
	a.UpdateAnswer(initialAnswer)
	return a
}

func newAggregatorFromArgs(ctx *chaintest.CallContext, input []byte) (chaintest.Program, error) {
	args, err := aggregatorABI.Constructor.Inputs.Unpack(input)
	if err != nil {
		return nil, err
	}
	return NewAggregator(args[0].(uint8), args[1].(*big.Int)), nil
}

func (a *Aggregator) Decimals() uint8 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.decimals
}

func (a *Aggregator) LatestAnswer() *big.Int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return new(big.Int).Set(a.rounds[a.latest.String()].answer)
}

func (a *Aggregator) UpdateAnswer(answer *big.Int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.latest = new(big.Int).Add(a.latest, big.NewInt(1))
	now := big.NewInt(int64(1_700_000_000) + a.latest.Int64())
	a.rounds[a.latest.String()] = round{answer: new(big.Int).Set(answer), timestamp: now, startedAt: now}
}

func (a *Aggregator) Call(ctx *chaintest.CallContext, input []byte) ([]byte, error) {
	return dispatch(aggregatorABI, map[string]handler{
		"decimals": func(*chaintest.CallContext, []interface{}) ([]interface{}, error) {
			return []interface{}{a.Decimals()}, nil
		},
		"description": func(*chaintest.CallContext, []interface{}) ([]interface{}, error) {
			return []interface{}{"v0.6/tests/MockV3Aggregator.sol"}, nil
		},
		"version": func(*chaintest.CallContext, []interface{}) ([]interface{}, error) {
			return []interface{}{big.NewInt(0)}, nil
		},
		"latestAnswer": func(*chaintest.CallContext, []interface{}) ([]interface{}, error) {
			return []interface{}{a.LatestAnswer()}, nil
		},
		"latestRound": func(*chaintest.CallContext, []interface{}) ([]interface{}, error) {
			a.mu.Lock()
			defer a.mu.Unlock()
			return []interface{}{new(big.Int).Set(a.latest)}, nil
		},
		"latestRoundData": func(*chaintest.CallContext, []interface{}) ([]interface{}, error) {
			a.mu.Lock()
			defer a.mu.Unlock()
			r := a.rounds[a.latest.String()]
			return []interface{}{a.latest, r.answer, r.startedAt, r.timestamp, a.latest}, nil
		},
		"getRoundData": func(_ *chaintest.CallContext, args []interface{}) ([]interface{}, error) {
			a.mu.Lock()
			defer a.mu.Unlock()
			id := args[0].(*big.Int)
			r, found := a.rounds[id.String()]
			if !found {
				return []interface{}{id, big.NewInt(0), big.NewInt(0), big.NewInt(0), id}, nil
			}
			return []interface{}{id, r.answer, r.startedAt, r.timestamp, id}, nil
		},
		"updateAnswer": func(_ *chaintest.CallContext, args []interface{}) ([]interface{}, error) {
			a.UpdateAnswer(args[0].(*big.Int))
			return nil, nil
		},
	}, ctx, input)
}

// USD_ENTRY_FEE is 50 usd with 18 decimals.
var USD_ENTRY_FEE = new(big.Int).Mul(big.NewInt(50), big.NewInt(1e18))

// Lottery behaves like the Lottery contract up to picking a winner.
type Lottery struct {
	mu        sync.Mutex
	owner     common.Address
	priceFeed common.Address
	open      bool
	players   []common.Address
}

func newLotteryFromArgs(ctx *chaintest.CallContext, input []byte) (chaintest.Program, error) {
	args, err := lotteryABI.Constructor.Inputs.Unpack(input)
	if err != nil {
		return nil, err
	}
	return &Lottery{owner: ctx.From, priceFeed: args[0].(common.Address)}, nil
}

func (l *Lottery) PriceFeed() common.Address {
	return l.priceFeed
}

func (l *Lottery) Players() []common.Address {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]common.Address{}, l.players...)
}

// entranceFee is usdEntryFee * 1e18 / (price * 1e10) with the price read
// from the feed, which has 8 decimals.
func (l *Lottery) entranceFee(ctx *chaintest.CallContext) (*big.Int, error) {
	data, err := aggregatorABI.Pack("latestRoundData")
	if err != nil {
		return nil, err
	}
	out, err := ctx.Call(l.priceFeed, data)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("price feed %s has no code", l.priceFeed.Hex())
	}
	values, err := aggregatorABI.Unpack("latestRoundData", out)
	if err != nil {
		return nil, err
	}
	adjusted := new(big.Int).Mul(values[1].(*big.Int), big.NewInt(1e10))
	if adjusted.Sign() <= 0 {
		return nil, fmt.Errorf("price feed answered %s", values[1])
	}
	fee := new(big.Int).Mul(USD_ENTRY_FEE, big.NewInt(1e18))
	return fee.Div(fee, adjusted), nil
}

func (l *Lottery) Call(ctx *chaintest.CallContext, input []byte) ([]byte, error) {
	return dispatch(lotteryABI, map[string]handler{
		"usdEntryFee": func(*chaintest.CallContext, []interface{}) ([]interface{}, error) {
			return []interface{}{new(big.Int).Set(USD_ENTRY_FEE)}, nil
		},
		"getEntranceFee": func(ctx *chaintest.CallContext, _ []interface{}) ([]interface{}, error) {
			fee, err := l.entranceFee(ctx)
			if err != nil {
				return nil, err
			}
			return []interface{}{fee}, nil
		},
		"players": func(_ *chaintest.CallContext, args []interface{}) ([]interface{}, error) {
			l.mu.Lock()
			defer l.mu.Unlock()
			i := args[0].(*big.Int)
			if !i.IsInt64() || i.Int64() >= int64(len(l.players)) {
				return nil, fmt.Errorf("index out of bounds")
			}
			return []interface{}{l.players[i.Int64()]}, nil
		},
		"startLottery": func(ctx *chaintest.CallContext, _ []interface{}) ([]interface{}, error) {
			l.mu.Lock()
			defer l.mu.Unlock()
			if ctx.From != l.owner {
				return nil, fmt.Errorf("only owner")
			}
			if l.open {
				return nil, fmt.Errorf("can't start a new lottery yet")
			}
			l.open = true
			return nil, nil
		},
		"enter": func(ctx *chaintest.CallContext, _ []interface{}) ([]interface{}, error) {
			fee, err := l.entranceFee(ctx)
			if err != nil {
				return nil, err
			}
			l.mu.Lock()
			defer l.mu.Unlock()
			if !l.open {
				return nil, fmt.Errorf("lottery is not open")
			}
			if ctx.Value.Cmp(fee) < 0 {
				return nil, fmt.Errorf("not enough ETH")
			}
			l.players = append(l.players, ctx.From)
			return nil, nil
		},
	}, ctx, input)
}
