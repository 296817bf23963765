package api

// API Client-
//
// Files:
//   config.go - RPC endpoints and per-transfer gas constants
//   types.go  - Struct definitions (Chain, PriceData, RPC responses)
//   base.go   - Core client functionality (Client struct, NewClient, GetPrice)
//   near.go   - NEAR gas price via JSON-RPC
//   evm.go    - Base/Arbitrum gas price via go-ethereum's ethclient
//
// Usage:
//   client := api.NewClient()                       // from base.go
//   price, err := client.GetPrice(api.ChainNear, "usd")
//   gasPrice, err := client.GetNearGasPrice()       // from near.go
//   gasPrice, err := client.GetEVMGasPrice(api.ChainBase)
