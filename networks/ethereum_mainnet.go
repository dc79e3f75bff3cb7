package networks

var EthereumMainnet Network = NewEthereumMainnet()

func NewEthereumMainnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:             "mainnet",
		AlternativeNames: []string{"ethereum"},
		ChainID:          1,
		Kind:             Live,
		BlockTime:        12,
		NodeVariableName: "ETHEREUM_MAINNET_NODE",
		DefaultNodes: map[string]string{
			"mainnet-infura": "https://mainnet.infura.io/v3/${WEB3_INFURA_PROJECT_ID}",
		},
	})
}
