package networks

var Arbitrum Network = NewArbitrum()

func NewArbitrum() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:             "arbitrum-main",
		AlternativeNames: []string{"arbitrum"},
		ChainID:          42161,
		Kind:             Live,
		BlockTime:        2,
		NodeVariableName: "ARBITRUM_MAINNET_NODE",
		DefaultNodes: map[string]string{
			"arbitrum": "https://arb1.arbitrum.io/rpc",
		},
	})
}
