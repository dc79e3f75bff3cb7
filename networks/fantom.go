package networks

var Fantom Network = NewFantom()

func NewFantom() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:               "ftm-main",
		AlternativeNames:   []string{"fantom", "ftm"},
		ChainID:            250,
		Kind:               Live,
		NativeTokenSymbol:  "FTM",
		NativeTokenDecimal: 18,
		BlockTime:          1,
		NodeVariableName:   "FANTOM_MAINNET_NODE",
		DefaultNodes: map[string]string{
			"fantom": "https://rpc.ftm.tools/",
		},
	})
}
