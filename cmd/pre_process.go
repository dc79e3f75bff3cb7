package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"

	"github.com/tranvictor/lottery/accounts"
	"github.com/tranvictor/lottery/chain"
	"github.com/tranvictor/lottery/config"
	"github.com/tranvictor/lottery/networks"
	"github.com/tranvictor/lottery/scripts"
)

func loadProject(cmd *cobra.Command) (*config.Project, error) {
	project, err := config.LoadProject(config.ProjectFile)
	if err == nil {
		return project, nil
	}
	if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
		appUI.Warn("%s not found, running without a project config.", config.ProjectFile)
		return config.ParseProject(nil, ".")
	}
	return nil, err
}

// networkName is the --network flag, or the project's networks.default
// when the flag is not given.
func networkName(cmd *cobra.Command, project *config.Project) string {
	if !cmd.Flags().Changed("network") && project.Networks.Default != "" {
		return project.Networks.Default
	}
	return strings.TrimSpace(config.Network)
}

func nodeURL(project *config.Project, n networks.Network) (string, error) {
	if host := project.Host(n.GetName()); host != "" {
		return host, nil
	}
	return networks.NodeURL(n)
}

// CommonScriptPreprocess connects to the network picked by the flags and
// builds the helper the scripts run with. The returned context carries the
// --timeout deadline.
func CommonScriptPreprocess(cmd *cobra.Command) (*scripts.Helper, context.Context, context.CancelFunc, error) {
	project, err := loadProject(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	if err = networks.SetNetwork(networkName(cmd, project)); err != nil {
		return nil, nil, nil, err
	}
	n := networks.CurrentNetwork()

	url, err := nodeURL(project, n)
	if err != nil {
		return nil, nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	client, err := chain.Dial(ctx, url)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}

	var book *accounts.Book
	if networks.IsLocalOrForked(n.GetName()) {
		book, err = accounts.NewDevBook(project.Mnemonic(n.GetName()), accounts.DEFAULT_DEV_ACCOUNTS)
		if err != nil {
			cancel()
			return nil, nil, nil, fmt.Errorf("couldn't derive development accounts: %w", err)
		}
	} else {
		book = accounts.NewBook()
	}

	tx := chain.NewTransactor(client, chain.Config{
		GasPrice:      config.GasPrice,
		TipGas:        config.TipGas,
		GasLimit:      config.GasLimit,
		ExtraGasLimit: config.ExtraGasLimit,
	}, log.Root().New("network", n.GetName()))

	appUI.Info("Network: %s (%s)", n.GetName(), networks.KindOf(n.GetName()))
	return scripts.NewHelper(n.GetName(), project, book, tx, appUI, config.BuildDir), ctx, cancel, nil
}

// accountOptions turns --index and --id into the account the command asked
// for, if any.
func accountOptions(cmd *cobra.Command) scripts.AccountOptions {
	if cmd.Flags().Changed("index") {
		return scripts.WithIndex(config.AccountIndex)
	}
	return scripts.WithID(strings.TrimSpace(config.AccountID))
}
