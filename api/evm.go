package api

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// GetEVMGasPrice fetches the current gas price (wei per gas unit) for Base
// or Arbitrum. Any other chain is a caller bug, not a user error.
func (c *Client) GetEVMGasPrice(chain Chain) (*big.Int, error) {
	var rpcURL string
	switch chain {
	case ChainBase:
		rpcURL = c.baseRPC
	case ChainArb:
		rpcURL = c.arbRPC
	default:
		panic(fmt.Sprintf("gas price requested for chain %q: only base and arb have EVM providers", chain))
	}

	zap.L().Debug("fetching EVM gas price",
		zap.String("chain", string(chain)),
		zap.String("rpc", rpcURL))

	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s RPC: %w", chain.Title(), err)
	}
	defer client.Close()

	gasPrice, err := client.SuggestGasPrice(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s gas price: %w", chain.Title(), err)
	}

	return gasPrice, nil
}
