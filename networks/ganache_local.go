package networks

var GanacheLocal Network = NewGanacheLocal()

func NewGanacheLocal() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:             "ganache-local",
		AlternativeNames: []string{"ganache"},
		ChainID:          5777,
		Kind:             Local,
		BlockTime:        0,
		NodeVariableName: "GANACHE_LOCAL_NODE",
		DefaultNodes: map[string]string{
			"ganache-ui": "http://127.0.0.1:7545",
		},
	})
}
