package networks

var Rinkeby Network = NewRinkeby()

func NewRinkeby() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:             "rinkeby",
		ChainID:          4,
		Kind:             Live,
		BlockTime:        15,
		NodeVariableName: "ETHEREUM_RINKEBY_NODE",
		DefaultNodes: map[string]string{
			"rinkeby-infura": "https://rinkeby.infura.io/v3/${WEB3_INFURA_PROJECT_ID}",
		},
	})
}
