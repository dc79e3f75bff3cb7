package networks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tranvictor/lottery/common"
)

// Insert more Network implementation here to support
// more chains
var supportedNetworks = []Network{
	Development,
	GanacheLocal,
	MainnetFork,
	MainnetForkDev,
	EthereumMainnet,
	Sepolia,
	Rinkeby,
	Kovan,
	BSCMainnet,
	BSCTestnet,
	Polygon,
	Mumbai,
	Avalanche,
	Fantom,
	Arbitrum,
	OptimismMainnet,
}

var globalSupportedNetworks = newSupportedNetworks()
var ErrNetworkNotFound = fmt.Errorf("network not found")

type networks struct {
	networks map[string]Network
}

func (n *networks) getSupportedNetworkNames() []string {
	res := []string{}
	for name := range n.networks {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// getNetworkByID returns the first network, ordered by name, with the chain
// id. Local and forked networks share ids with live chains so the order
// matters: only the registered names are unique.
func (n *networks) getNetworkByID(id uint64) (Network, error) {
	for _, name := range n.getSupportedNetworkNames() {
		if n.networks[name].GetChainID() == id {
			return n.networks[name], nil
		}
	}
	return nil, fmt.Errorf("network id %d: %w", id, ErrNetworkNotFound)
}

func (n *networks) getNetwork(name string) (Network, error) {
	res, found := n.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) add(network Network) error {
	names := append([]string{network.GetName()}, network.GetAlternativeNames()...)
	for _, an := range network.GetAlternativeNames() {
		if existing, found := n.networks[an]; found && existing.GetName() != network.GetName() {
			return fmt.Errorf("network with name or alternative name of '%s' already exists", an)
		}
	}
	for _, name := range names {
		n.networks[name] = network
	}
	return nil
}

func newSupportedNetworks() *networks {
	result := networks{
		map[string]Network{},
	}
	for _, n := range supportedNetworks {
		if _, found := result.networks[n.GetName()]; found {
			panic(
				fmt.Errorf(
					"network with name or alternative name of '%s' already exists",
					n.GetName(),
				),
			)
		}
		if err := result.add(n); err != nil {
			panic(err)
		}
	}

	// load custom networks from ~/.lottery/networks/
	customNetworks, err := loadCustomNetworks(customNetworksDir())
	if err != nil {
		fmt.Printf("WARNING: Failed to load custom networks: %s. Ignore and continue with built-in networks.\n", err)
		return &result
	}

	for _, n := range customNetworks {
		if _, nameFound := result.networks[n.GetName()]; nameFound {
			fmt.Printf("Network with name '%s' already exists. Using custom network.\n", n.GetName())
		}
		if err := result.add(n); err != nil {
			fmt.Printf("Couldn't add custom network '%s': %s. Ignore and continue.\n", n.GetName(), err)
		}
	}
	return &result
}

func customNetworksDir() string {
	return filepath.Join(common.DataDir(), "networks")
}

func loadCustomNetworks(dir string) ([]Network, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob json files in %s: %w", dir, err)
	}

	networks := []Network{}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}

		network, err := NewNetworkFromJSON(content)
		if err != nil {
			fmt.Printf("failed to parse network from file %s: %s. Ignore and continue with other custom networks.\n", file, err)
			continue
		}

		networks = append(networks, network)
	}

	return networks, nil
}

func NewNetworkFromJSON(content []byte) (Network, error) {
	networkConfig := GenericNetworkConfig{}
	err := json.Unmarshal(content, &networkConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal network config: %w", err)
	}
	if networkConfig.Name == "" {
		return nil, fmt.Errorf("network config has no name")
	}

	return NewGenericNetwork(networkConfig), nil
}

// GetSupportedNetworks returns every registered network once, ordered by name.
func GetSupportedNetworks() []Network {
	mu.Lock()
	defer mu.Unlock()

	seen := map[string]bool{}
	res := []Network{}
	for _, name := range globalSupportedNetworks.getSupportedNetworkNames() {
		n := globalSupportedNetworks.networks[name]
		if seen[n.GetName()] {
			continue
		}
		seen[n.GetName()] = true
		res = append(res, n)
	}
	return res
}

func GetNetwork(name string) (Network, error) {
	mu.Lock()
	defer mu.Unlock()
	return globalSupportedNetworks.getNetwork(name)
}

func GetNetworkByID(id uint64) (Network, error) {
	mu.Lock()
	defer mu.Unlock()
	return globalSupportedNetworks.getNetworkByID(id)
}

func GetSupportedNetworkNames() []string {
	mu.Lock()
	defer mu.Unlock()
	return globalSupportedNetworks.getSupportedNetworkNames()
}

// AddNetwork registers the network and stores it to ~/.lottery/networks/
// so it is available on the next run.
func AddNetwork(network Network) error {
	mu.Lock()
	err := globalSupportedNetworks.add(network)
	mu.Unlock()
	if err != nil {
		return err
	}

	dir := customNetworksDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	content, err := network.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal network: %w", err)
	}

	err = os.WriteFile(filepath.Join(dir, fmt.Sprintf("%s.json", network.GetName())), content, 0644)
	if err != nil {
		return fmt.Errorf("failed to write the new network to file: %w", err)
	}

	return nil
}
