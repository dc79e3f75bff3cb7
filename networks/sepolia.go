package networks

var Sepolia Network = NewSepolia()

func NewSepolia() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:             "sepolia",
		ChainID:          11155111,
		Kind:             Live,
		BlockTime:        12,
		NodeVariableName: "ETHEREUM_SEPOLIA_NODE",
		DefaultNodes: map[string]string{
			"sepolia-infura": "https://sepolia.infura.io/v3/${WEB3_INFURA_PROJECT_ID}",
		},
	})
}
