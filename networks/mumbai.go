package networks

var Mumbai Network = NewMumbai()

func NewMumbai() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:               "polygon-test",
		AlternativeNames:   []string{"mumbai"},
		ChainID:            80001,
		Kind:               Live,
		NativeTokenSymbol:  "MATIC",
		NativeTokenDecimal: 18,
		BlockTime:          2,
		NodeVariableName:   "MATIC_MUMBAI_NODE",
		DefaultNodes: map[string]string{
			"infura": "https://polygon-mumbai.infura.io/v3/${WEB3_INFURA_PROJECT_ID}",
		},
	})
}
