package api

import (
	"encoding/json"
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// GetNearGasPrice fetches NEAR's current gas price in yoctoNEAR per gas
// unit. The null block id asks the RPC for the price at the latest block.
func (c *Client) GetNearGasPrice() (*big.Int, error) {
	zap.L().Debug("fetching NEAR gas price", zap.String("rpc", c.nearRPC))

	payload := map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "gas_price",
		"params":  []interface{}{nil},
		"id":      1,
	}

	response, err := c.postJSON(c.nearRPC, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch NEAR gas price: %w", err)
	}

	var rpcResp nearGasPriceResponse
	if err := json.Unmarshal(response, &rpcResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if rpcResp.Error != nil {
		return nil, fmt.Errorf("RPC error: %s", rpcResp.Error.Message)
	}

	if rpcResp.Result == nil {
		return nil, fmt.Errorf("no result in response")
	}

	gasPrice, ok := new(big.Int).SetString(rpcResp.Result.GasPrice, 10)
	if !ok {
		return nil, fmt.Errorf("invalid gas price format: %s", rpcResp.Result.GasPrice)
	}

	return gasPrice, nil
}
