package networks

var Polygon Network = NewPolygon()

func NewPolygon() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:               "polygon-main",
		AlternativeNames:   []string{"polygon", "matic"},
		ChainID:            137,
		Kind:               Live,
		NativeTokenSymbol:  "MATIC",
		NativeTokenDecimal: 18,
		BlockTime:          2,
		NodeVariableName:   "MATIC_MAINNET_NODE",
		DefaultNodes: map[string]string{
			"infura": "https://polygon-mainnet.infura.io/v3/${WEB3_INFURA_PROJECT_ID}",
		},
	})
}
