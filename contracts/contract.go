package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tranvictor/lottery/chain"
	"github.com/tranvictor/lottery/util/account"
)

// DEFAULT_ADDRESS is the sender of read only calls.
var DEFAULT_ADDRESS = common.Address{}

// Contract is a deployed contract the scripts can call.
type Contract struct {
	name    string
	address common.Address
	abi     *abi.ABI
	tx      *chain.Transactor
}

// FromABI binds a contract at address without checking that its code
// matches the abi.
func FromABI(name string, address common.Address, a *abi.ABI, tx *chain.Transactor) *Contract {
	return &Contract{
		name:    name,
		address: address,
		abi:     a,
		tx:      tx,
	}
}

func (c *Contract) Name() string {
	return c.name
}

func (c *Contract) Address() common.Address {
	return c.address
}

func (c *Contract) ABI() *abi.ABI {
	return c.abi
}

func (c *Contract) String() string {
	return fmt.Sprintf("%s (%s)", c.name, c.address.Hex())
}

// Call runs a view method and returns its unpacked outputs.
func (c *Contract) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("couldn't pack %s.%s: %w", c.name, method, err)
	}
	out, err := c.tx.Call(ctx, DEFAULT_ADDRESS, c.address, data)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s.%s returned no data, is %s a %s?", c.name, method, c.address.Hex(), c.name)
	}
	result, err := c.abi.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("couldn't unpack %s.%s: %w", c.name, method, err)
	}
	return result, nil
}

// Transact sends a tx calling method from the account and waits for it to
// be mined.
func (c *Contract) Transact(
	ctx context.Context,
	from *account.Account,
	value *big.Int,
	method string,
	args ...interface{},
) (*types.Receipt, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("couldn't pack %s.%s: %w", c.name, method, err)
	}
	receipt, err := c.tx.Send(ctx, from, &c.address, value, data)
	if err != nil {
		return receipt, fmt.Errorf("%s.%s: %w", c.name, method, err)
	}
	return receipt, nil
}
