package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	lotterycommon "github.com/tranvictor/lottery/common"
	"github.com/tranvictor/lottery/contracts"
	"github.com/tranvictor/lottery/scripts"
)

func contractNames() []string {
	names := []string{}
	for name := range scripts.ContractToMock {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var contractCmd = &cobra.Command{
	Use:   "contract [name]",
	Short: "Show the contract a project config name resolves to on the network",
	Long: fmt.Sprintf(`Known names: %s.

On local networks the most recent mock is used, and deployed first when there
is none yet. Elsewhere the address comes from networks.<network>.<name> of the
project config.`, strings.Join(contractNames(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		helper, ctx, cancel, err := CommonScriptPreprocess(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		c, err := helper.GetContract(ctx, args[0])
		if err != nil {
			return err
		}
		rows := [][2]string{
			{"Name", args[0]},
			{"Type", c.Name()},
			{"Address", c.Address().Hex()},
		}
		if c.Name() == contracts.MOCK_V3_AGGREGATOR {
			feed := contracts.NewPriceFeed(c)
			decimals, err := feed.Decimals(ctx)
			if err != nil {
				return err
			}
			round, err := feed.LatestRoundData(ctx)
			if err != nil {
				return err
			}
			description, err := feed.Description(ctx)
			if err != nil {
				return err
			}
			rows = append(rows,
				[2]string{"Description", description},
				[2]string{"Decimals", fmt.Sprintf("%d", decimals)},
				[2]string{"Latest answer", lotterycommon.BigToFloatString(round.Answer, uint64(decimals))},
				[2]string{"Round", round.RoundID.String()},
			)
		}
		appUI.KeyValue(rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contractCmd)
}
