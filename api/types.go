package api

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Chain identifies a destination chain for a bridge transfer.
type Chain string

const (
	ChainNear Chain = "near"
	ChainEth  Chain = "eth"
	ChainBase Chain = "base"
	ChainArb  Chain = "arb"
	ChainSol  Chain = "sol"
)

// ParseChain converts a CLI argument into a Chain. Matching is
// case-insensitive.
func ParseChain(s string) (Chain, error) {
	switch Chain(strings.ToLower(s)) {
	case ChainNear:
		return ChainNear, nil
	case ChainEth:
		return ChainEth, nil
	case ChainBase:
		return ChainBase, nil
	case ChainArb:
		return ChainArb, nil
	case ChainSol:
		return ChainSol, nil
	default:
		return "", fmt.Errorf("unsupported chain: %s (expected near, eth, base, arb or sol)", s)
	}
}

// TokenID returns the CoinGecko id of the chain's native token. Base and
// Arbitrum settle fees in ETH, so they price against ethereum.
func (c Chain) TokenID() string {
	switch c {
	case ChainNear:
		return "near"
	case ChainEth, ChainBase, ChainArb:
		return "ethereum"
	case ChainSol:
		return "solana"
	default:
		return string(c)
	}
}

// Title returns the chain name as shown in output lines.
func (c Chain) Title() string {
	switch c {
	case ChainNear:
		return "NEAR"
	case ChainEth:
		return "Ethereum"
	case ChainBase:
		return "Base"
	case ChainArb:
		return "Arb"
	case ChainSol:
		return "Solana"
	default:
		return string(c)
	}
}

// PriceData represents the spot price of a native token
type PriceData struct {
	Token    string          `json:"token"`
	Currency string          `json:"currency"`
	Price    decimal.Decimal `json:"price"`
}

// rpcError is the error object shared by NEAR and EVM JSON-RPC responses.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// nearGasPriceResponse represents the NEAR gas_price RPC response
type nearGasPriceResponse struct {
	JSONRPC string `json:"jsonrpc"`
	Result  *struct {
		GasPrice string `json:"gas_price"`
	} `json:"result"`
	Error *rpcError `json:"error"`
}
