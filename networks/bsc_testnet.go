package networks

var BSCTestnet Network = NewBSCTestnet()

func NewBSCTestnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:               "bsc-test",
		AlternativeNames:   []string{"bsc-testnet"},
		ChainID:            97,
		Kind:               Live,
		NativeTokenSymbol:  "BNB",
		NativeTokenDecimal: 18,
		BlockTime:          2,
		NodeVariableName:   "BSC_TESTNET_NODE",
		DefaultNodes: map[string]string{
			"binance1": "https://data-seed-prebsc-1-s1.binance.org:8545",
			"binance2": "https://data-seed-prebsc-2-s1.binance.org:8545",
		},
	})
}
