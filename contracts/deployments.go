package contracts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Deployments is the build/deployments/map.json file: chain id to contract
// type name to addresses, newest first.
type Deployments struct {
	path string
	mu   sync.Mutex

	Data map[string]map[string][]string
}

func DeploymentsPath(buildDir string) string {
	return filepath.Join(buildDir, "deployments", "map.json")
}

// LoadDeployments reads the deployment map of a build directory. A missing
// or broken map is read as an empty one and replaced on the next write.
func LoadDeployments(buildDir string) *Deployments {
	d := &Deployments{
		path: DeploymentsPath(buildDir),
		Data: map[string]map[string][]string{},
	}
	content, err := os.ReadFile(d.path)
	if err != nil {
		return d
	}
	if err = json.Unmarshal(content, &d.Data); err != nil || d.Data == nil {
		d.Data = map[string]map[string][]string{}
	}
	return d
}

func (d *Deployments) Get(chainID uint64, name string) []common.Address {
	d.mu.Lock()
	defer d.mu.Unlock()
	result := []common.Address{}
	for _, addr := range d.Data[strconv.FormatUint(chainID, 10)][name] {
		result = append(result, common.HexToAddress(addr))
	}
	return result
}

// Add records addr as the newest deployment of name and writes the map.
func (d *Deployments) Add(chainID uint64, name string, addr common.Address) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	key := strconv.FormatUint(chainID, 10)
	if d.Data[key] == nil {
		d.Data[key] = map[string][]string{}
	}
	d.Data[key][name] = append([]string{addr.Hex()}, d.Data[key][name]...)
	return d.persist()
}

func (d *Deployments) persist() error {
	jsonData, err := json.MarshalIndent(d.Data, "", "  ")
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(d.path), 0755); err != nil {
		return fmt.Errorf("couldn't create %s: %w", filepath.Dir(d.path), err)
	}
	return os.WriteFile(d.path, jsonData, 0644)
}
