package contracts

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const DEFAULT_BUILD_DIR = "build"

// Artifact is the compiler output the scripts need for a contract type.
type Artifact struct {
	Name     string
	ABI      *abi.ABI
	Bytecode []byte
}

type artifactFile struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
}

type bytecodeObject struct {
	Object string `json:"object"`
}

// artifactPaths are the places a compiler leaves the artifact of name,
// brownie first then foundry.
func artifactPaths(buildDir string, name string) []string {
	return []string{
		filepath.Join(buildDir, "contracts", name+".json"),
		filepath.Join(buildDir, name+".sol", name+".json"),
	}
}

// LoadArtifact reads the artifact of a contract type from the build
// directory. Brownie artifacts keep the bytecode as a hex string while
// foundry and hardhat ones wrap it as {"object": "0x.."}. When the artifact
// has no abi the embedded one is used.
func LoadArtifact(buildDir string, name string) (*Artifact, error) {
	var content []byte
	var err error
	for _, path := range artifactPaths(buildDir, name) {
		content, err = os.ReadFile(path)
		if err == nil {
			break
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("couldn't read artifact of %s: %w", name, err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("no artifact of %s in %s: %w", name, buildDir, os.ErrNotExist)
	}
	return ParseArtifact(name, content)
}

func ParseArtifact(name string, content []byte) (*Artifact, error) {
	file := artifactFile{}
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("couldn't parse artifact of %s: %w", name, err)
	}
	result := &Artifact{Name: name}
	if file.ContractName != "" {
		result.Name = file.ContractName
	}

	if len(file.ABI) == 0 || string(file.ABI) == "null" || string(file.ABI) == "[]" {
		a, err := EmbeddedABI(result.Name)
		if err != nil {
			return nil, fmt.Errorf("artifact of %s has no abi: %w", name, err)
		}
		result.ABI = a
	} else {
		a, err := abi.JSON(strings.NewReader(string(file.ABI)))
		if err != nil {
			return nil, fmt.Errorf("couldn't parse abi of %s: %w", name, err)
		}
		result.ABI = &a
	}

	code, err := parseBytecode(file.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse bytecode of %s: %w", name, err)
	}
	result.Bytecode = code
	return result, nil
}

func parseBytecode(raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		obj := bytecodeObject{}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
		str = obj.Object
	}
	str = strings.TrimPrefix(strings.TrimSpace(str), "0x")
	if strings.Contains(str, "__") {
		return nil, fmt.Errorf("bytecode has unlinked libraries")
	}
	return hex.DecodeString(str)
}
