package networks

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind classifies a network by how contracts are resolved on it.
type Kind uint8

const (
	Live Kind = iota
	Local
	Forked
)

var (
	LocalBlockchainEnvironments = []string{"development", "ganache-local"}
	ForkedLocalEnvironments     = []string{"mainnet-fork", "mainnet-fork-dev"}
)

func (k Kind) String() string {
	switch k {
	case Local:
		return "local"
	case Forked:
		return "forked"
	default:
		return "live"
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "live":
		return Live, nil
	case "local", "dev", "development":
		return Local, nil
	case "forked", "fork":
		return Forked, nil
	}
	return Live, fmt.Errorf("unknown network kind '%s'", s)
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// KindOf classifies a network name. The fixed environment lists win over
// whatever a registered network declares.
func KindOf(name string) Kind {
	if contains(LocalBlockchainEnvironments, name) {
		return Local
	}
	if contains(ForkedLocalEnvironments, name) {
		return Forked
	}
	if n, err := GetNetwork(name); err == nil {
		return n.GetKind()
	}
	return Live
}

func IsLocal(name string) bool {
	return KindOf(name) == Local
}

func IsForked(name string) bool {
	return KindOf(name) == Forked
}

// IsLocalOrForked reports whether default development accounts are usable
// on the network.
func IsLocalOrForked(name string) bool {
	k := KindOf(name)
	return k == Local || k == Forked
}
