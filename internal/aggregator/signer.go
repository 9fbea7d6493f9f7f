package aggregator

import (
	"context"
	"math/big"
)

// ChainFamily names one of the supported chain families, including the
// account-abstraction variant of each EVM chain.
type ChainFamily string

const (
	ChainEthereum   ChainFamily = "ethereum"
	ChainEthereumAA ChainFamily = "ethereum-aa"
	ChainBase       ChainFamily = "base"
	ChainBaseAA     ChainFamily = "base-aa"
	ChainArbitrum   ChainFamily = "arbitrum"
	ChainArbitrumAA ChainFamily = "arbitrum-aa"
	ChainPolygon    ChainFamily = "polygon"
	ChainPolygonAA  ChainFamily = "polygon-aa"
	ChainTron       ChainFamily = "tron"
	ChainBitcoin    ChainFamily = "bitcoin"
	ChainSolana     ChainFamily = "solana"
)

// SupportedChains is the fixed chain universe streamAddresses/streamBalances
// fan out over.
var SupportedChains = []ChainFamily{
	ChainEthereum, ChainEthereumAA,
	ChainBase, ChainBaseAA,
	ChainArbitrum, ChainArbitrumAA,
	ChainPolygon, ChainPolygonAA,
	ChainTron,
	ChainBitcoin,
	ChainSolana,
}

// nativeDecimals is the per-chain-family table used when no token address is
// given to the decimals resolver.
var nativeDecimals = map[ChainFamily]int{
	ChainEthereum: 18, ChainEthereumAA: 18,
	ChainBase: 18, ChainBaseAA: 18,
	ChainArbitrum: 18, ChainArbitrumAA: 18,
	ChainPolygon: 18, ChainPolygonAA: 18,
	ChainTron:    6,
	ChainBitcoin: 8,
	ChainSolana:  9,
}

// Signer is the external signer/derivation service this package depends on
// as an interface only (out of scope per the design notes: key derivation
// and signing are assumed available). Every account-level capability the
// aggregator needs beyond this minimal set is an optional interface below,
// probed with a type assertion — a signer advertises only what it supports.
type Signer interface {
	// DeriveAddress returns userID's address on chain, deriving and caching
	// it on the signer side if this is the first request.
	DeriveAddress(ctx context.Context, userID string, chain ChainFamily) (string, error)
	// GetBalance returns the native balance in smallest units.
	GetBalance(ctx context.Context, userID string, chain ChainFamily) (*big.Int, error)
}

// TokenBalancer is an optional signer capability: a direct token balance
// lookup on the account itself (wdk-style getTokenBalance/balanceOf).
type TokenBalancer interface {
	GetTokenBalance(ctx context.Context, userID string, chain ChainFamily, token string) (*big.Int, error)
}

// ChainProvider is an optional signer capability exposing an eth_call-style
// request method, used as the first token-decimals source and the second
// token-balance source (after TokenBalancer).
type ChainProvider interface {
	TokenDecimals(ctx context.Context, userID string, chain ChainFamily, token string) (int, error)
	TokenBalanceOf(ctx context.Context, userID string, chain ChainFamily, token, owner string) (*big.Int, error)
}

// NativeSender is an optional signer capability for plain native transfers.
type NativeSender interface {
	Send(ctx context.Context, userID string, chain ChainFamily, recipient string, smallestUnits *big.Int) (string, error)
}

// TokenSender is an optional signer capability for ERC-20-style transfers.
// Implementations try their own preferred entry point internally (transfer,
// sendToken, transferToken, ...); the aggregator only needs the one call.
type TokenSender interface {
	SendToken(ctx context.Context, userID string, chain ChainFamily, token, recipient string, smallestUnits *big.Int) (string, error)
}
