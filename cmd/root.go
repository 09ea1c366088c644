package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "war",
	Short: "Play the card game War in the terminal",
	Long: `War is a two-player card game simulator. A shuffled 52-card deck is dealt
between Victor (human) and Florian (automated); each round the higher card
scores a point and equal cards start a war.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
