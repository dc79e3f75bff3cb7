package cmd

import (
	"github.com/spf13/cobra"

	lotterycommon "github.com/tranvictor/lottery/common"
	"github.com/tranvictor/lottery/config"
	"github.com/tranvictor/lottery/scripts"
)

var entranceFeeCmd = &cobra.Command{
	Use:   "entrance-fee",
	Short: "Deploy a Lottery against the network's eth_usd_price_feed and check its entrance fee",
	Long: `The fee must be strictly between --min and --max ether, the command fails
otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		helper, ctx, cancel, err := CommonScriptPreprocess(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		fee, err := helper.EntranceFee(ctx)
		if err != nil {
			return err
		}
		appUI.Critical("Entrance fee: %s wei (%s ETH)", fee, lotterycommon.BigToFloatString(fee, 18))
		if err = scripts.EntranceFeeWithin(
			fee,
			lotterycommon.EthToWei(config.MinEntranceFee),
			lotterycommon.EthToWei(config.MaxEntranceFee),
		); err != nil {
			return err
		}
		appUI.Success("Entrance fee is within (%g, %g) ETH", config.MinEntranceFee, config.MaxEntranceFee)
		return nil
	},
}

func init() {
	entranceFeeCmd.Flags().Float64Var(&config.MinEntranceFee, "min", 0.020, "lower bound of the fee in ether, exclusive")
	entranceFeeCmd.Flags().Float64Var(&config.MaxEntranceFee, "max", 0.022, "upper bound of the fee in ether, exclusive")
	AddCommonFlagsToTransactionalCmds(entranceFeeCmd)
	rootCmd.AddCommand(entranceFeeCmd)
}
