package networks

var Development Network = NewDevelopment()

// NewDevelopment is the throwaway ganache chain that local scripts and
// tests run against.
func NewDevelopment() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:             "development",
		AlternativeNames: []string{"dev"},
		ChainID:          1337,
		Kind:             Local,
		BlockTime:        0,
		NodeVariableName: "DEVELOPMENT_NODE",
		DefaultNodes: map[string]string{
			"ganache-cli": "http://127.0.0.1:8545",
		},
	})
}
