package cmd

import (
	"math/big"

	"github.com/spf13/cobra"

	"github.com/tranvictor/lottery/config"
	"github.com/tranvictor/lottery/scripts"
)

var deployMocksCmd = &cobra.Command{
	Use:   "deploy-mocks",
	Short: "Deploy a MockV3Aggregator price feed from the default account",
	RunE: func(cmd *cobra.Command, args []string) error {
		helper, ctx, cancel, err := CommonScriptPreprocess(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		_, err = helper.DeployMocks(ctx, config.MockDecimals, big.NewInt(config.MockStartingPrice))
		return err
	},
}

func init() {
	deployMocksCmd.Flags().Uint8Var(&config.MockDecimals, "decimals", scripts.DECIMALS, "decimals of the mock's answers")
	deployMocksCmd.Flags().Int64Var(&config.MockStartingPrice, "price", scripts.STARTING_PRICE, "first answer of the mock, with --decimals decimals")
	AddCommonFlagsToTransactionalCmds(deployMocksCmd)
	rootCmd.AddCommand(deployMocksCmd)
}
