package networks

var (
	MainnetFork    Network = NewMainnetFork()
	MainnetForkDev Network = NewMainnetForkDev()
)

// NewMainnetFork is a local node forking mainnet state, started by the
// network runner.
func NewMainnetFork() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:             "mainnet-fork",
		ChainID:          1,
		Kind:             Forked,
		BlockTime:        0,
		NodeVariableName: "MAINNET_FORK_NODE",
		DefaultNodes: map[string]string{
			"ganache-fork": "http://127.0.0.1:8545",
		},
	})
}

// NewMainnetForkDev is a user managed fork, usually hosted on a remote
// development node.
func NewMainnetForkDev() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:             "mainnet-fork-dev",
		ChainID:          1,
		Kind:             Forked,
		BlockTime:        0,
		NodeVariableName: "MAINNET_FORK_DEV_NODE",
		DefaultNodes: map[string]string{
			"fork-dev": "http://127.0.0.1:8545",
		},
	})
}
