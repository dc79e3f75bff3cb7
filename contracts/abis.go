package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	MOCK_V3_AGGREGATOR = "MockV3Aggregator"
	LOTTERY            = "Lottery"
)

//go:embed abis/*.json
var embedded embed.FS

// EmbeddedABIJSON returns the raw json abi shipped for the contract type.
func EmbeddedABIJSON(name string) (json.RawMessage, error) {
	content, err := embedded.ReadFile("abis/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("no embedded abi for %s", name)
	}
	return content, nil
}

// EmbeddedABI returns the abi shipped with the binary for the contract
// type. Only the contracts the scripts talk to are shipped.
func EmbeddedABI(name string) (*abi.ABI, error) {
	content, err := EmbeddedABIJSON(name)
	if err != nil {
		return nil, err
	}
	result, err := abi.JSON(strings.NewReader(string(content)))
	if err != nil {
		return nil, fmt.Errorf("couldn't parse embedded abi of %s: %w", name, err)
	}
	return &result, nil
}

// MustEmbeddedABI is EmbeddedABI for contract types known to be shipped.
func MustEmbeddedABI(name string) *abi.ABI {
	result, err := EmbeddedABI(name)
	if err != nil {
		panic(err)
	}
	return result
}
