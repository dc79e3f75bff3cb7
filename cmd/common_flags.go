package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tranvictor/lottery/config"
)

func AddCommonFlagsToTransactionalCmds(c *cobra.Command) {
	c.PersistentFlags().
		Float64VarP(&config.GasPrice, "gasprice", "p", 0, "Gas price in gwei. It is the max fee when the network supports dynamic fee txs. If default value is used, we will ask the node")
	c.PersistentFlags().
		Float64VarP(&config.TipGas, "tipgas", "s", 0, "tip in gwei, will be use in dynamic fee tx, default value get from node.")
	c.PersistentFlags().
		Uint64VarP(&config.GasLimit, "gas", "g", 0, "Base gas limit for the tx. If default value is used, we will use the node to estimate the gas limit. The gas limit to be used in the tx is gas limit + extra gas limit")
	c.PersistentFlags().
		Uint64VarP(&config.ExtraGasLimit, "extragas", "G", 0, "Extra gas limit for the tx. The gas limit to be used in the tx is gas limit + extra gas limit")
}

// AddAccountFlags lets a command pick its signing account instead of the
// network's default one.
func AddAccountFlags(c *cobra.Command) {
	c.Flags().IntVarP(&config.AccountIndex, "index", "i", 0, "Index of the account in the node's account list")
	c.Flags().StringVar(&config.AccountID, "id", "", "Id of a keystore added with lottery wallet add")
}
