package api

// Public RPC endpoints
const (
	DefaultPriceAPI = "https://api.coingecko.com/api/v3"
	DefaultNearRPC  = "https://rpc.mainnet.near.org"
	DefaultBaseRPC  = "https://base.llamarpc.com"
	DefaultArbRPC   = "https://arbitrum.llamarpc.com"
)

// Gas consumed by one bridge transfer, measured from a reference
// transaction on each chain.
const (
	// https://nearblocks.io/txns/7L6J5qi3Yqabb8i8KrtixN5ujyoswrSzW9egjFuGD8Vv
	NearGasPerTransfer = 33_220_000_000_000
	// https://basescan.org/tx/0xa779997b00a73277bc90dda525e61cf8fb919fd1f2c347cc370f720745e0c21b
	BaseGasPerTransfer = 127_652
	// https://arbiscan.io/tx/0x179c58a791909f5e1ac328aa3c810bde916dd3a9070205f6b56758404188fb8d
	ArbGasPerTransfer = 149_503
	// https://solscan.io/tx/35V7H2BGsyEPw3v2hMzjmQYTC4PwTmu8bY7LiNm2UFMfGhfe86eZPLsKpQFyqsq9vs7HtBrLqFfBUPvLtPW4Qed
	SolanaGasPerTransfer = 103_372
)

// NearFinTransferDepositYocto is the storage deposit attached to every
// fin_transfer call on NEAR, in yoctoNEAR. Exceeds uint64 range, so it is
// kept as a decimal string and parsed into a big.Int where needed.
// https://github.com/Near-One/bridge-sdk-rs/blob/78d96e8/bridge-sdk/bridge-clients/near-bridge-client/src/near_bridge_client.rs#L33
const NearFinTransferDepositYocto = "600000000000000000000"
