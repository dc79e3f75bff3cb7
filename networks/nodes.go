package networks

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// GetNodes returns the rpc nodes of the network with env vars expanded. A
// non empty node variable adds a "custom-node" entry.
func GetNodes(n Network) (map[string]string, error) {
	nodes := map[string]string{}
	for name, url := range n.GetDefaultNodes() {
		nodes[name] = os.ExpandEnv(url)
	}
	customNode := strings.Trim(os.Getenv(n.GetNodeVariableName()), " ")
	if n.GetNodeVariableName() != "" && customNode != "" {
		nodes["custom-node"] = customNode
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("network '%s' has no rpc node, set %s", n.GetName(), n.GetNodeVariableName())
	}
	return nodes, nil
}

// NodeURL picks the node to talk to: the custom node if set, otherwise the
// first default node by name.
func NodeURL(n Network) (string, error) {
	nodes, err := GetNodes(n)
	if err != nil {
		return "", err
	}
	if custom, found := nodes["custom-node"]; found {
		return custom, nil
	}
	names := []string{}
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return nodes[names[0]], nil
}
