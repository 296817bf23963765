package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/danyloshk/omnifee/api"
	"github.com/danyloshk/omnifee/fees"
)

// runEstimate dispatches on the destination chain argument. An empty
// argument estimates every supported chain sequentially; Ethereum only
// gets a notice on the error stream.
func runEstimate(estimator *fees.Estimator, chainArg string, amount uint64, currency string, errOut io.Writer) error {
	if chainArg == "" {
		return estimator.AllChains(amount, currency)
	}

	chain, err := api.ParseChain(chainArg)
	if err != nil {
		return err
	}

	switch chain {
	case api.ChainNear:
		return estimator.NearFees(amount, currency)
	case api.ChainEth:
		fmt.Fprintf(errOut, "Fee calculation for %s chain is not supported yet\n", color.YellowString("Ethereum"))
		return nil
	case api.ChainBase, api.ChainArb:
		return estimator.EVMFees(chain, amount, currency)
	case api.ChainSol:
		return estimator.SolanaFees(amount, currency)
	}

	return nil
}
