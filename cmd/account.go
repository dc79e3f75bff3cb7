package cmd

import (
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the account scripts sign with on the network",
	Long: `Without flags it is the first development account on local and forked
networks and wallets.from_key of the project config on live ones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		helper, _, cancel, err := CommonScriptPreprocess(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		acc, err := helper.GetAccount(accountOptions(cmd))
		if err != nil {
			return err
		}
		rows := [][2]string{
			{"Network", helper.Network()},
			{"Address", acc.AddressHex()},
			{"Source", string(acc.Source())},
		}
		if acc.Description() != "" {
			rows = append(rows, [2]string{"Keystore", acc.Description()})
		}
		appUI.KeyValue(rows)
		return nil
	},
}

func init() {
	AddAccountFlags(accountCmd)
	rootCmd.AddCommand(accountCmd)
}
