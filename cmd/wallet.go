package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tranvictor/lottery/accounts"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage the keystores scripts can load with --id",
	Long:  ``,
}

func getPassword(prompt string) (string, error) {
	appUI.Info("%s", prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("couldn't read from terminal: %w", err)
	}
	return string(bytePassword), nil
}

var addWalletCmd = &cobra.Command{
	Use:   "add [id]",
	Short: "Encrypt a private key to a keystore stored with id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appUI.Warn("Storing plain private key is NOT secure. Let's encrypt it to a Keystore.")
		appUI.Info("Please enter or paste your private key in hex format. It will not be displayed on your terminal to avoid stdout logging.")
		privHex, err := getPassword("Paste your private key now: ")
		if err != nil {
			return err
		}
		passphrase, err := getPassword("Enter your passcode to encrypt the private key: ")
		if err != nil {
			return err
		}
		again, err := getPassword("Repeat the passcode: ")
		if err != nil {
			return err
		}
		if passphrase != again {
			return fmt.Errorf("passcodes don't match. Abort")
		}

		path, err := accounts.StoreKeystore(accounts.KeystoreDir(), args[0], privHex, passphrase)
		if err != nil {
			return fmt.Errorf("private key encryption failed: %w", err)
		}
		address, err := accounts.VerifyKeystore(path)
		if err != nil {
			return err
		}
		appUI.Success("Stored the keystore of %s at %s.", address, path)
		appUI.Info("Use it in scripts with:\n> lottery account --id %s", args[0])
		return nil
	},
}

var listWalletCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of your keystores",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		descs := accounts.ListKeystores(accounts.KeystoreDir())
		appUI.Info("You have %d keystores:", len(descs))
		rows := [][]string{}
		for index, desc := range descs {
			rows = append(rows, []string{fmt.Sprintf("%d", index+1), desc.ID, desc.Address})
		}
		if len(rows) > 0 {
			appUI.Table([]string{"#", "Id", "Address"}, rows)
		}
		appUI.Info("\nIf you want to add more keystores to the list, use following command:\n> lottery wallet add <id>")
	},
}

func init() {
	walletCmd.AddCommand(listWalletCmd)
	walletCmd.AddCommand(addWalletCmd)
	rootCmd.AddCommand(walletCmd)
}
