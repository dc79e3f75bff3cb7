package networks

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	for name, kind := range map[string]Kind{
		"development":      Local,
		"ganache-local":    Local,
		"mainnet-fork":     Forked,
		"mainnet-fork-dev": Forked,
		"mainnet":          Live,
		"sepolia":          Live,
		"polygon-main":     Live,
		"not-registered":   Live,
	} {
		assert.Equal(t, kind, KindOf(name), name)
	}
	assert.True(t, IsLocal("development"))
	assert.False(t, IsLocal("mainnet-fork"))
	assert.True(t, IsForked("mainnet-fork-dev"))
	assert.True(t, IsLocalOrForked("ganache-local"))
	assert.False(t, IsLocalOrForked("kovan"))
}

func TestKindJSON(t *testing.T) {
	n, err := NewNetworkFromJSON([]byte(`{"name": "anvil", "chain_id": 31337, "kind": "local"}`))
	require.NoError(t, err)
	assert.Equal(t, Local, n.GetKind())
	assert.Equal(t, "ETH", n.GetNativeTokenSymbol())
	assert.Equal(t, uint64(18), n.GetNativeTokenDecimal())

	content, err := n.MarshalJSON()
	require.NoError(t, err)
	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, "local", decoded["kind"])

	_, err = NewNetworkFromJSON([]byte(`{"name": "x", "kind": "orbital"}`))
	assert.Error(t, err)
	_, err = NewNetworkFromJSON([]byte(`{"chain_id": 1}`))
	assert.Error(t, err)
}

func TestGetNetworkByAlternativeName(t *testing.T) {
	n, err := GetNetwork("dev")
	require.NoError(t, err)
	assert.Equal(t, "development", n.GetName())

	n, err = GetNetwork("bsc")
	require.NoError(t, err)
	assert.Equal(t, "bsc-main", n.GetName())

	_, err = GetNetwork("nowhere")
	assert.True(t, errors.Is(err, ErrNetworkNotFound))
}

func TestGetSupportedNetworksListsEachOnce(t *testing.T) {
	seen := map[string]bool{}
	for _, n := range GetSupportedNetworks() {
		assert.False(t, seen[n.GetName()], n.GetName())
		seen[n.GetName()] = true
	}
	assert.True(t, seen["development"])
	assert.True(t, seen["mainnet-fork"])
}

func TestGetNetworkByID(t *testing.T) {
	n, err := GetNetworkByID(1)
	require.NoError(t, err)
	assert.Equal(t, "mainnet", n.GetName())

	n, err = GetNetworkByID(1337)
	require.NoError(t, err)
	assert.Equal(t, "development", n.GetName())

	_, err = GetNetworkByID(424242424242)
	assert.True(t, errors.Is(err, ErrNetworkNotFound))

	assert.Contains(t, GetSupportedNetworkNames(), "dev")
}

func TestNodeURL(t *testing.T) {
	t.Setenv("WEB3_INFURA_PROJECT_ID", "abc")
	t.Setenv("ETHEREUM_SEPOLIA_NODE", "")
	url, err := NodeURL(Sepolia)
	require.NoError(t, err)
	assert.Equal(t, "https://sepolia.infura.io/v3/abc", url)

	t.Setenv("ETHEREUM_SEPOLIA_NODE", "http://localhost:9545")
	url, err = NodeURL(Sepolia)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9545", url)

	_, err = NodeURL(NewGenericNetwork(GenericNetworkConfig{Name: "empty", NodeVariableName: "EMPTY_NODE"}))
	assert.Error(t, err)
}

func TestSetNetwork(t *testing.T) {
	require.NoError(t, SetNetwork("ganache"))
	assert.Equal(t, "ganache-local", CurrentNetwork().GetName())
	assert.Error(t, SetNetwork("nowhere"))
	assert.Equal(t, "ganache-local", CurrentNetwork().GetName())
	require.NoError(t, SetNetwork("development"))
}

func TestAddNetworkPersists(t *testing.T) {
	home := t.TempDir()
	t.Setenv("LOTTERY_HOME", home)

	n := NewGenericNetwork(GenericNetworkConfig{
		Name:         "lottery-test-chain",
		ChainID:      424242,
		Kind:         Live,
		DefaultNodes: map[string]string{"local": "http://127.0.0.1:8545"},
	})
	require.NoError(t, AddNetwork(n))

	got, err := GetNetwork("lottery-test-chain")
	require.NoError(t, err)
	assert.Equal(t, uint64(424242), got.GetChainID())

	loaded, err := loadCustomNetworks(filepath.Join(home, "networks"))
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "lottery-test-chain", loaded[0].GetName())

	_, err = os.Stat(filepath.Join(home, "networks", "lottery-test-chain.json"))
	assert.NoError(t, err)
}
