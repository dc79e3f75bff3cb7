package scripts

import (
	"context"
	"fmt"

	"github.com/tranvictor/lottery/contracts"
	"github.com/tranvictor/lottery/networks"
)

// GetContract returns the contract the project config names on the active
// network. On local networks there is nothing to configure, the most
// recent mock is returned and deployed first if there is none.
func (h *Helper) GetContract(ctx context.Context, name string) (*contracts.Contract, error) {
	typeName, found := ContractToMock[name]
	if !found {
		return nil, fmt.Errorf("'%s': %w", name, ErrUnknownContract)
	}
	ct, err := h.ContractType(ctx, typeName)
	if err != nil {
		return nil, err
	}

	if networks.IsLocal(h.network) {
		if ct.Len() <= 0 {
			if _, err := h.DeployDefaultMocks(ctx); err != nil {
				return nil, err
			}
		}
		return ct.Last(), nil
	}

	addr, err := h.project.ContractAddress(h.network, name)
	if err != nil {
		return nil, err
	}
	return contracts.FromABI(ct.Name(), addr, ct.ABI(), h.tx), nil
}
