package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/lottery/common"
	"github.com/tranvictor/lottery/networks"
)

var (
	NetworkConfig string
	NetworkForce  bool
)

var addNetworkCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new network to the supported networks list locally",
	Long: `--json flag is supported to pass a new network config json filepath OR pass a json string. The json should be in the following format:
	{
		"name": "network_name",
		"alternative_names": ["alternative_name_1", "alternative_name_2"],
		"chain_id": 1,
		"kind": "live",
		"native_token_symbol": "ETH",
		"native_token_decimal": 18,
		"block_time": 12,
		"node_variable_name": "LOTTERY_NODE_1",
		"default_nodes": {
			"node_name_1": "node_url_1",
			"node_name_2": "node_url_2"
		}
	}
kind is one of "live", "local" or "forked". development, ganache-local,
mainnet-fork and mainnet-fork-dev keep their kind whatever the json says.`,
	Run: func(cmd *cobra.Command, args []string) {
		// check if the network config json is passed via --json flag
		config, err := cmd.Flags().GetString("json")
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			return
		}

		var newNetwork networks.Network
		config = strings.TrimSpace(config)
		if config != "" && strings.HasPrefix(config, "{") && strings.HasSuffix(config, "}") {
			newNetwork, err = networks.NewNetworkFromJSON([]byte(config))
			if err != nil {
				fmt.Printf("The provided json is not valid: %s\n", err)
				return
			}
		} else if config != "" {
			// in this case, config is supposed to be a path to a json file
			jsonFile, err := os.Open(config)
			if err != nil {
				fmt.Printf("Couldn't open the provided json file: %s\n", err)
				return
			}
			defer jsonFile.Close()

			jsonBytes, err := io.ReadAll(jsonFile)
			if err != nil {
				fmt.Printf("Couldn't read the provided json file: %s\n", err)
				return
			}
			newNetwork, err = networks.NewNetworkFromJSON(jsonBytes)
			if err != nil {
				fmt.Printf("The provided json is not a valid network config: %s\n", err)
				return
			}
		} else {
			fmt.Printf("Please pass the network config with --json.\n")
			return
		}

		allNames := []string{newNetwork.GetName()}
		allNames = append(allNames, newNetwork.GetAlternativeNames()...)

		var willReplace bool
		for _, name := range allNames {
			_, err = networks.GetNetwork(name)
			if err == nil && !NetworkForce {
				fmt.Printf("Network with name %s already exists. Abort. If you want to update the network, use flag --force.\n", name)
				return
			}

			if err == nil && NetworkForce {
				fmt.Printf("Network with name %s already exists. We will replace it with the new network.\n", name)
				willReplace = true
				continue
			}

			// err is not nil means the network is not found, hence we can add it
			if err != nil {
				willReplace = true
				continue
			}
		}

		if willReplace {
			err = networks.AddNetwork(newNetwork)
			if err != nil {
				fmt.Printf("Failed to add the new network: %s\n", err)
				return
			}
			fmt.Printf("Network %s with chain ID %d added and saved to %s.\n", newNetwork.GetName(), newNetwork.GetChainID(), filepath.Join(common.DataDir(), "networks"))
		}
	},
}

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		supported := networks.GetSupportedNetworks()
		for i, n := range supported {
			appUI.Info("%d. Name: %s, Chain ID: %d, Kind: %s", i+1, n.GetName(), n.GetChainID(), n.GetKind())
			details := appUI.Indent()
			if n.GetNodeVariableName() != "" {
				details.Info("Custom node env var: %s", n.GetNodeVariableName())
			}
			nodes, err := networks.GetNodes(n)
			if err != nil {
				details.Error("%s", err)
				continue
			}
			names := []string{}
			for name := range nodes {
				names = append(names, name)
			}
			sort.Strings(names)
			rows := [][2]string{}
			for _, name := range names {
				rows = append(rows, [2]string{name, nodes[name]})
			}
			details.KeyValue(rows)
		}

		appUI.Info("\nIf you want to add more networks to the list, use following command:\n> lottery network add --json <json>")
		appUI.Info("\nIf you want to delete a network, just delete the corresponding json file in %s.", filepath.Join(common.DataDir(), "networks"))
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage all networks that lottery supports",
	Long:  ``,
}

func init() {
	addNetworkCmd.PersistentFlags().StringVarP(&NetworkConfig, "json", "j", "", "Path to the network config json file, or the json itself")
	addNetworkCmd.PersistentFlags().BoolVarP(&NetworkForce, "force", "f", false, "Force adding the network even if it already exists")

	networkCmd.AddCommand(listNetworkCmd)
	networkCmd.AddCommand(addNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
