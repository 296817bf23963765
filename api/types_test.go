package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseChain(t *testing.T) {
	tests := []struct {
		input    string
		expected Chain
	}{
		{"near", ChainNear},
		{"eth", ChainEth},
		{"base", ChainBase},
		{"arb", ChainArb},
		{"sol", ChainSol},
		{"NEAR", ChainNear},
		{"Sol", ChainSol},
	}

	for _, tt := range tests {
		chain, err := ParseChain(tt.input)
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.expected, chain)
	}
}

func TestParseChainRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "solana", "ethereum", "btc"} {
		_, err := ParseChain(input)
		require.Error(t, err, input)
		require.Contains(t, err.Error(), "unsupported chain")
	}
}

func TestTokenID(t *testing.T) {
	require.Equal(t, "near", ChainNear.TokenID())
	require.Equal(t, "solana", ChainSol.TokenID())

	// Base and Arbitrum pay fees in ETH, so they price against ethereum.
	require.Equal(t, "ethereum", ChainEth.TokenID())
	require.Equal(t, "ethereum", ChainBase.TokenID())
	require.Equal(t, "ethereum", ChainArb.TokenID())
}

func TestTitle(t *testing.T) {
	require.Equal(t, "NEAR", ChainNear.Title())
	require.Equal(t, "Ethereum", ChainEth.Title())
	require.Equal(t, "Base", ChainBase.Title())
	require.Equal(t, "Arb", ChainArb.Title())
	require.Equal(t, "Solana", ChainSol.Title())
}
