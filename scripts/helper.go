// Package scripts resolves the account and contracts a deployment script
// works with on the active network, deploying mocks where the network has
// no real contracts.
package scripts

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tranvictor/lottery/accounts"
	"github.com/tranvictor/lottery/chain"
	"github.com/tranvictor/lottery/config"
	"github.com/tranvictor/lottery/contracts"
	"github.com/tranvictor/lottery/networks"
	"github.com/tranvictor/lottery/ui"
)

const (
	DECIMALS       uint8 = 8
	STARTING_PRICE int64 = 200000000000
)

var ErrUnknownContract = errors.New("unknown contract")

// ContractToMock maps the name a contract has in the project config to the
// contract type mocking it on local networks.
var ContractToMock = map[string]string{
	"eth_usd_price_feed": contracts.MOCK_V3_AGGREGATOR,
}

// Helper holds everything the scripts need to know about the active
// network.
type Helper struct {
	network  string
	project  *config.Project
	book     *accounts.Book
	tx       *chain.Transactor
	ui       ui.UI
	buildDir string

	mu          sync.Mutex
	types       map[string]*contracts.ContractType
	deployments *contracts.Deployments
}

func NewHelper(
	network string,
	project *config.Project,
	book *accounts.Book,
	tx *chain.Transactor,
	u ui.UI,
	buildDir string,
) *Helper {
	if buildDir == "" {
		buildDir = contracts.DEFAULT_BUILD_DIR
	}
	return &Helper{
		network:  network,
		project:  project,
		book:     book,
		tx:       tx,
		ui:       u,
		buildDir: buildDir,
		types:    map[string]*contracts.ContractType{},
	}
}

func (h *Helper) Network() string {
	return h.network
}

func (h *Helper) Kind() networks.Kind {
	return networks.KindOf(h.network)
}

func (h *Helper) Project() *config.Project {
	return h.project
}

func (h *Helper) Transactor() *chain.Transactor {
	return h.tx
}

// persistDeployments tells whether deployments outlive the session: always
// on live networks, on local ones only when the project asks for it.
func (h *Helper) persistDeployments() bool {
	if h.Kind() == networks.Live {
		return true
	}
	return h.project.DevDeploymentArtifacts
}

// ContractType returns the contract type with name, loaded from the build
// directory once per helper.
func (h *Helper) ContractType(ctx context.Context, name string) (*contracts.ContractType, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ct, found := h.types[name]; found {
		return ct, nil
	}
	ct, err := contracts.LoadContractType(h.buildDir, name)
	if err != nil {
		return nil, err
	}
	if h.persistDeployments() {
		if h.deployments == nil {
			h.deployments = contracts.LoadDeployments(h.buildDir)
		}
		if err := ct.Track(ctx, h.tx, h.deployments); err != nil {
			return nil, fmt.Errorf("couldn't restore deployments of %s: %w", name, err)
		}
	}
	h.types[name] = ct
	return ct, nil
}
