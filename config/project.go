package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_PROJECT_FILE string = "brownie-config.yaml"
	DEFAULT_MNEMONIC     string = "brownie"
)

var ErrMissingConfig = errors.New("missing config entry")

// Project is the project config file: which key signs on live networks and
// which contract lives where on which network.
type Project struct {
	Dotenv                 string   `yaml:"dotenv"`
	DevDeploymentArtifacts bool     `yaml:"dev_deployment_artifacts"`
	Wallets                Wallets  `yaml:"wallets"`
	Networks               Networks `yaml:"networks"`

	dir string
}

type Wallets struct {
	FromKey string `yaml:"from_key"`
}

// Networks holds the per network sections plus the optional
// `default: <network>` entry.
type Networks struct {
	Default  string
	Settings map[string]NetworkSettings
}

// NetworkSettings is one `networks.<name>` section. Known keys are lifted
// out, every other scalar is a contract name to address entry.
type NetworkSettings struct {
	Verify   bool
	Host     string
	Mnemonic string
	Entries  map[string]string
}

func (n *Networks) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: networks must be a mapping", value.Line)
	}
	n.Settings = map[string]NetworkSettings{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i].Value, value.Content[i+1]
		if key == "default" && val.Kind == yaml.ScalarNode {
			n.Default = val.Value
			continue
		}
		settings := NetworkSettings{}
		if err := val.Decode(&settings); err != nil {
			return fmt.Errorf("networks.%s: %w", key, err)
		}
		n.Settings[key] = settings
	}
	return nil
}

func (s *NetworkSettings) UnmarshalYAML(value *yaml.Node) error {
	s.Entries = map[string]string{}
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: network settings must be a mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i].Value, value.Content[i+1]
		switch key {
		case "verify":
			if err := val.Decode(&s.Verify); err != nil {
				return fmt.Errorf("verify: %w", err)
			}
		case "host":
			s.Host = val.Value
		case "mnemonic":
			s.Mnemonic = val.Value
		default:
			if val.Kind == yaml.ScalarNode {
				s.Entries[key] = val.Value
			}
		}
	}
	return nil
}

var posixVar = regexp.MustCompile(`\$\{([^}]*)\}`)

// expandVars replaces ${VAR} with the environment value. Unset variables
// expand to an empty string.
func expandVars(s string) string {
	return posixVar.ReplaceAllStringFunc(s, func(m string) string {
		return os.Getenv(posixVar.FindStringSubmatch(m)[1])
	})
}

func expandNode(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		n.Value = expandVars(n.Value)
	}
	for _, c := range n.Content {
		expandNode(c)
	}
}

// LoadProject reads the project config. The dotenv file it names is loaded
// before ${VAR} references are expanded.
func LoadProject(path string) (*Project, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read project config: %w", err)
	}
	return ParseProject(content, filepath.Dir(path))
}

// ParseProject parses config content; dir is where a relative dotenv path
// is resolved from.
func ParseProject(content []byte, dir string) (*Project, error) {
	root := yaml.Node{}
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("couldn't parse project config: %w", err)
	}

	pre := struct {
		Dotenv string `yaml:"dotenv"`
	}{}
	if err := root.Decode(&pre); err != nil && len(root.Content) > 0 {
		return nil, fmt.Errorf("couldn't parse project config: %w", err)
	}
	if pre.Dotenv != "" {
		envPath := pre.Dotenv
		if !filepath.IsAbs(envPath) {
			envPath = filepath.Join(dir, envPath)
		}
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("couldn't load dotenv %s: %w", envPath, err)
		}
	}

	expandNode(&root)
	result := &Project{dir: dir}
	if len(root.Content) > 0 {
		if err := root.Decode(result); err != nil {
			return nil, fmt.Errorf("couldn't parse project config: %w", err)
		}
	}
	if result.Networks.Settings == nil {
		result.Networks.Settings = map[string]NetworkSettings{}
	}
	return result, nil
}

func (p *Project) Dir() string {
	return p.dir
}

// FromKey is `wallets.from_key`, the key that signs on live networks.
func (p *Project) FromKey() (string, error) {
	key := strings.TrimSpace(p.Wallets.FromKey)
	if key == "" {
		return "", fmt.Errorf("wallets.from_key: %w", ErrMissingConfig)
	}
	return key, nil
}

func (p *Project) Network(network string) (NetworkSettings, error) {
	settings, found := p.Networks.Settings[network]
	if !found {
		return NetworkSettings{}, fmt.Errorf("networks.%s: %w", network, ErrMissingConfig)
	}
	return settings, nil
}

// ContractAddress is `networks.<network>.<name>`.
func (p *Project) ContractAddress(network string, name string) (common.Address, error) {
	settings, err := p.Network(network)
	if err != nil {
		return common.Address{}, err
	}
	value, found := settings.Entries[name]
	if !found || strings.TrimSpace(value) == "" {
		return common.Address{}, fmt.Errorf("networks.%s.%s: %w", network, name, ErrMissingConfig)
	}
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("networks.%s.%s: '%s' is not an address", network, name, value)
	}
	return common.HexToAddress(value), nil
}

func (p *Project) Mnemonic(network string) string {
	if settings, found := p.Networks.Settings[network]; found && settings.Mnemonic != "" {
		return settings.Mnemonic
	}
	return DEFAULT_MNEMONIC
}

func (p *Project) Host(network string) string {
	if settings, found := p.Networks.Settings[network]; found {
		return settings.Host
	}
	return ""
}
