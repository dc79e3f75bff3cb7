package networks

var Kovan Network = NewKovan()

func NewKovan() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:             "kovan",
		ChainID:          42,
		Kind:             Live,
		BlockTime:        4,
		NodeVariableName: "ETHEREUM_KOVAN_NODE",
		DefaultNodes: map[string]string{
			"kovan-infura": "https://kovan.infura.io/v3/${WEB3_INFURA_PROJECT_ID}",
		},
	})
}
