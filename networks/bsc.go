package networks

var BSCMainnet Network = NewBSCMainnet()

func NewBSCMainnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:               "bsc-main",
		AlternativeNames:   []string{"bsc"},
		ChainID:            56,
		Kind:               Live,
		NativeTokenSymbol:  "BNB",
		NativeTokenDecimal: 18,
		BlockTime:          2,
		NodeVariableName:   "BSC_MAINNET_NODE",
		DefaultNodes: map[string]string{
			"binance":  "https://bsc-dataseed.binance.org",
			"defibit":  "https://bsc-dataseed1.defibit.io",
			"ninicoin": "https://bsc-dataseed1.ninicoin.io",
		},
	})
}
