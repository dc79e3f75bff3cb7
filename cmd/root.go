// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tranvictor/lottery/config"
	"github.com/tranvictor/lottery/contracts"
	"github.com/tranvictor/lottery/ui"
)

var appUI ui.UI = ui.NewTerminalUI()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lottery",
	Short: "Deploy and check the lottery contracts on local, forked and live networks",
	Long: fmt.Sprintf(`lottery runs the deployment helpers of a lottery project against a network.

It resolves two things for you:

	1. The account to sign with. On local and forked networks (%s) it is the
	first account of the node's mnemonic. On live networks it is the key in
	wallets.from_key of the project config, unless you pick an account with
	--index or a stored keystore with --id.

	2. The contracts the lottery depends on. On local networks a mock price
	feed is deployed when there is none yet. Everywhere else the address is
	read from networks.<network>.<contract_name> of the project config.

The project config defaults to ./%s and may load a dotenv file, so
from_key can be written as ${PRIVATE_KEY}. Compiled contracts are read from
./%s/contracts.

Every network has an env var to point it at your own node, see
> lottery network list`,
		"development, ganache-local, mainnet-fork, mainnet-fork-dev",
		config.DEFAULT_PROJECT_FILE,
		contracts.DEFAULT_BUILD_DIR,
	),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func setupLogging() {
	lvl := log.LevelWarn
	if config.Verbose {
		lvl = log.LevelDebug
	}
	useColor := term.IsTerminal(int(os.Stderr.Fd()))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, lvl, useColor)))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "development", "network to run on. See lottery network list for the valid values.")
	rootCmd.PersistentFlags().StringVarP(&config.ProjectFile, "config", "c", config.DEFAULT_PROJECT_FILE, "path to the project config file")
	rootCmd.PersistentFlags().StringVarP(&config.BuildDir, "build", "b", contracts.DEFAULT_BUILD_DIR, "directory holding the compiled contracts")
	rootCmd.PersistentFlags().DurationVar(&config.Timeout, "timeout", config.DEFAULT_TIMEOUT, "give up on the node after this long")
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "log rpc and transaction details to stderr")

	if err := rootCmd.Execute(); err != nil {
		appUI.Error("%s", err)
		os.Exit(1)
	}
}
