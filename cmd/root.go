package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danyloshk/omnifee/api"
	"github.com/danyloshk/omnifee/fees"
	"github.com/danyloshk/omnifee/logging"
)

var (
	version = "1.0.0"
)

var (
	destinationChain string
	amount           uint64
	currency         string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "omnifee",
	Short: "Estimate the gas cost of bridge transfers across chains",
	Long: `Omnifee estimates how much gas a batch of bridge token transfers will
burn on the destination chain, and what that burn is worth in a fiat or
crypto currency of your choice.

Supported destination chains: near, base, arb, sol
(Ethereum fee calculation is not supported yet.)

Each chain's current gas price is fetched live (Solana fees are flat),
multiplied by the gas a single bridge transfer consumes, and converted
using the current CoinGecko spot price.

Examples:
  omnifee                      # Estimate 1000 transfers to every chain
  omnifee -d near              # Estimate 1000 transfers to NEAR
  omnifee -d base -a 50        # Estimate 50 transfers to Base
  omnifee -d sol -c eur        # Show Solana fees in EUR`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logging.Init(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		estimator := fees.NewEstimator(api.NewClient())
		return runEstimate(estimator, destinationChain, amount, currency, cmd.ErrOrStderr())
	},
}

// Execute runs the root command
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.Flags().StringVarP(&destinationChain, "destination-chain", "d", "",
		"destination chain (near, eth, base, arb, sol); omit to estimate all chains")
	rootCmd.Flags().Uint64VarP(&amount, "amount", "a", 1000, "amount of transfers")
	rootCmd.Flags().StringVarP(&currency, "currency", "c", "usd", "currency to display fees in")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Omnifee v%s\n", version)
	},
}
