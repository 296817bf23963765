// Package fees computes the gas burn and fiat cost of bridge transfers.
package fees

import (
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/gagliardetto/solana-go"

	"github.com/danyloshk/omnifee/api"
)

var nearFinTransferDeposit = mustBigInt(api.NearFinTransferDepositYocto)

// Estimator prints one fee line per chain to its output writer.
type Estimator struct {
	client *api.Client
	out    io.Writer
}

// NewEstimator creates an estimator writing to stdout
func NewEstimator(client *api.Client) *Estimator {
	return NewEstimatorWithOutput(client, os.Stdout)
}

// NewEstimatorWithOutput creates an estimator writing to the given writer
func NewEstimatorWithOutput(client *api.Client, out io.Writer) *Estimator {
	return &Estimator{client: client, out: out}
}

// NearFees prints the cost of `amount` transfers to NEAR. Each transfer
// burns gas plus the fixed fin_transfer storage deposit; the total is
// scaled from yoctoNEAR to NEAR.
func (e *Estimator) NearFees(amount uint64, currency string) error {
	gasPrice, err := e.client.GetNearGasPrice()
	if err != nil {
		return err
	}

	perTransfer := new(big.Int).Mul(gasPrice, big.NewInt(api.NearGasPerTransfer))
	perTransfer.Add(perTransfer, nearFinTransferDeposit)
	totalNear := toDisplayUnit(perTransfer.Mul(perTransfer, new(big.Int).SetUint64(amount)), 1e24)

	price, err := e.client.GetPrice(api.ChainNear, currency)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.out, "%d transfers to NEAR will burn %.3f NEARs (approx. %.3f %s)\n",
		amount, totalNear, totalNear*price.Price.InexactFloat64(), currency)
	return nil
}

// EVMFees prints the cost of `amount` transfers to Base or Arbitrum,
// scaled from wei to ETH. Both chains settle fees in ETH.
func (e *Estimator) EVMFees(chain api.Chain, amount uint64, currency string) error {
	var gasPerTransfer int64
	switch chain {
	case api.ChainBase:
		gasPerTransfer = api.BaseGasPerTransfer
	case api.ChainArb:
		gasPerTransfer = api.ArbGasPerTransfer
	default:
		panic(fmt.Sprintf("EVM fees requested for chain %q: only base and arb have gas constants", chain))
	}

	gasPrice, err := e.client.GetEVMGasPrice(chain)
	if err != nil {
		return err
	}

	total := new(big.Int).Mul(gasPrice, big.NewInt(gasPerTransfer))
	totalEth := toDisplayUnit(total.Mul(total, new(big.Int).SetUint64(amount)), 1e18)

	price, err := e.client.GetPrice(chain, currency)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.out, "%d transfers to %s will burn %.3f ETHs (approx. %.3f %s)\n",
		amount, chain.Title(), totalEth, totalEth*price.Price.InexactFloat64(), currency)
	return nil
}

// SolanaFees prints the cost of `amount` transfers to Solana. Solana fees
// are flat lamport amounts, so no gas price query is needed.
func (e *Estimator) SolanaFees(amount uint64, currency string) error {
	lamports := new(big.Int).Mul(big.NewInt(api.SolanaGasPerTransfer), new(big.Int).SetUint64(amount))
	totalSol := toDisplayUnit(lamports, float64(solana.LAMPORTS_PER_SOL))

	price, err := e.client.GetPrice(api.ChainSol, currency)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.out, "%d transfers to Solana will burn %.6f SOLs (approx. %.3f %s)\n",
		amount, totalSol, totalSol*price.Price.InexactFloat64(), currency)
	return nil
}

// AllChains prints one line per supported chain, in a fixed order.
// Ethereum is skipped: its fee calculation is not supported.
func (e *Estimator) AllChains(amount uint64, currency string) error {
	if err := e.NearFees(amount, currency); err != nil {
		return err
	}
	if err := e.EVMFees(api.ChainBase, amount, currency); err != nil {
		return err
	}
	if err := e.EVMFees(api.ChainArb, amount, currency); err != nil {
		return err
	}
	return e.SolanaFees(amount, currency)
}

// toDisplayUnit divides an amount of a chain's smallest unit by the unit
// size and returns a float64 for display.
func toDisplayUnit(v *big.Int, unit float64) float64 {
	f := new(big.Float).SetInt(v)
	f.Quo(f, big.NewFloat(unit))
	result, _ := f.Float64()
	return result
}

func mustBigInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("invalid big integer constant: %s", s))
	}
	return v
}
