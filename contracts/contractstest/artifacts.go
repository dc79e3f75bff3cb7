package contractstest

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tranvictor/lottery/contracts"
)

// WriteArtifacts writes brownie style artifacts of the emulated contracts
// into buildDir/contracts.
func WriteArtifacts(t testing.TB, buildDir string) {
	t.Helper()
	dir := filepath.Join(buildDir, "contracts")
	require.NoError(t, os.MkdirAll(dir, 0755))
	for name, code := range map[string][]byte{
		contracts.MOCK_V3_AGGREGATOR: MockV3AggregatorBytecode,
		contracts.LOTTERY:            LotteryBytecode,
	} {
		abiJSON, err := contracts.EmbeddedABIJSON(name)
		require.NoError(t, err)
		content, err := json.MarshalIndent(map[string]interface{}{
			"contractName": name,
			"abi":          abiJSON,
			"bytecode":     hex.EncodeToString(code),
		}, "", "  ")
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), content, 0644))
	}
}
