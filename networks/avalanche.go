package networks

var Avalanche Network = NewAvalanche()

func NewAvalanche() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:               "avax-main",
		AlternativeNames:   []string{"avalanche"},
		ChainID:            43114,
		Kind:               Live,
		NativeTokenSymbol:  "AVAX",
		NativeTokenDecimal: 18,
		BlockTime:          2,
		NodeVariableName:   "AVALANCHE_MAINNET_NODE",
		DefaultNodes: map[string]string{
			"avalanche": "https://api.avax.network/ext/bc/C/rpc",
		},
	})
}
