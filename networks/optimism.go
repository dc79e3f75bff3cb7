package networks

var OptimismMainnet Network = NewOptimismMainnet()

func NewOptimismMainnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:             "optimism-main",
		AlternativeNames: []string{"optimism"},
		ChainID:          10,
		Kind:             Live,
		BlockTime:        2,
		NodeVariableName: "OPTIMISM_MAINNET_NODE",
		DefaultNodes: map[string]string{
			"mainnet-optimism": "https://mainnet.optimism.io",
		},
	})
}
