package aggregator

import (
	"context"
	"math/big"
	"strconv"
	"strings"
	"sync"

	"github.com/coderrahul01/tempwallets/internal/errs"
	"github.com/coderrahul01/tempwallets/internal/indexer"
)

// TokenBalance is one non-zero balance row. Address is nil for the native
// asset.
type TokenBalance struct {
	Address  *string
	Symbol   string
	Balance  string // normalized to 18 decimals, right-padded
	Decimals int
}

// BalanceResult is one chain's balance outcome for StreamBalances.
type BalanceResult struct {
	Chain   ChainFamily
	Native  string
	Tokens  []TokenBalance
	Err     error
}

// GetBalances maps each supported chain to its native balance, normalized
// to 18 decimals.
func (c *Controller) GetBalances(ctx context.Context, userID string) map[ChainFamily]string {
	out := make(map[ChainFamily]string, len(SupportedChains))
	for r := range c.StreamBalances(ctx, userID) {
		if r.Err == nil {
			out[r.Chain] = r.Native
		}
	}
	return out
}

// StreamBalances yields native + token balances per chain as each chain's
// indexer fetch completes.
func (c *Controller) StreamBalances(ctx context.Context, userID string) <-chan BalanceResult {
	out := make(chan BalanceResult, len(SupportedChains))

	var wg sync.WaitGroup
	for _, chain := range SupportedChains {
		wg.Add(1)
		go func(chain ChainFamily) {
			defer wg.Done()
			native, tokens, err := c.balancesForChain(ctx, userID, chain)
			select {
			case out <- BalanceResult{Chain: chain, Native: native, Tokens: tokens, Err: err}:
			case <-ctx.Done():
			}
		}(chain)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func (c *Controller) balancesForChain(ctx context.Context, userID string, chain ChainFamily) (string, []TokenBalance, error) {
	addr, err := c.address(ctx, userID, chain)
	if err != nil {
		return "0", nil, err
	}

	positions, err := c.indexer.Portfolio(ctx, addr, string(chain))
	if err != nil {
		native := c.nativeBalanceFallback(ctx, userID, chain)
		return native, nil, nil
	}

	native := "0"
	tokens := make([]TokenBalance, 0, len(positions))
	for _, p := range positions {
		normalized := normalizeBalance(p.Balance, p.FungibleInfo.Decimals)
		if isZeroBalance(normalized) {
			continue
		}
		if len(p.Implementations) == 0 {
			native = normalized
			continue
		}
		addr := p.Implementations[0].Address
		tokens = append(tokens, TokenBalance{
			Address:  &addr,
			Symbol:   p.FungibleInfo.Symbol,
			Balance:  normalized,
			Decimals: p.FungibleInfo.Decimals,
		})
	}

	return native, tokens, nil
}

// nativeBalanceFallback is the best-effort WDK-style fallback used when the
// indexer is unavailable: ask the signer directly. Token discovery has no
// equivalent fallback and degrades to an empty list, per the design notes.
func (c *Controller) nativeBalanceFallback(ctx context.Context, userID string, chain ChainFamily) string {
	bal, err := c.signer.GetBalance(ctx, userID, chain)
	if err != nil {
		c.lg.Warn("native balance fallback failed", "chain", chain, "error", err)
		return "0"
	}
	return normalizeBalance(bal.String(), nativeDecimals[chain])
}

// GetTokenBalances is the single-chain convenience wrapper around
// balancesForChain's token half.
func (c *Controller) GetTokenBalances(ctx context.Context, userID string, chain ChainFamily) ([]TokenBalance, error) {
	_, tokens, err := c.balancesForChain(ctx, userID, chain)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// GetTokenBalancesAny fetches positions from the indexer's any-chain
// endpoint for each primary address and deduplicates by
// (chainId, implementationAddress||"native"), first-seen wins.
func (c *Controller) GetTokenBalancesAny(ctx context.Context, userID string) ([]TokenBalance, error) {
	seen := make(map[string]bool)
	var out []TokenBalance

	for chain, addr := range c.primaryAddresses(ctx, userID) {
		positions, err := c.indexer.Portfolio(ctx, addr, "")
		if err != nil {
			c.lg.Warn("any-chain portfolio fetch failed", "chain", chain, "error", err)
			continue
		}
		for _, p := range positions {
			implAddr := "native"
			if len(p.Implementations) > 0 {
				implAddr = p.Implementations[0].Address
			}
			dedupKey := p.ChainID + "|" + implAddr
			if seen[dedupKey] {
				continue
			}
			seen[dedupKey] = true

			normalized := normalizeBalance(p.Balance, p.FungibleInfo.Decimals)
			if isZeroBalance(normalized) {
				continue
			}
			tb := TokenBalance{Symbol: p.FungibleInfo.Symbol, Balance: normalized, Decimals: p.FungibleInfo.Decimals}
			if implAddr != "native" {
				a := implAddr
				tb.Address = &a
			}
			out = append(out, tb)
		}
	}

	return out, nil
}

// TransactionRecord is the normalized shape returned by
// GetTransactionHistory and GetTransactionsAny.
type TransactionRecord struct {
	TxHash       string
	From         string
	To           string
	Value        string
	Timestamp    int64
	BlockNumber  int64
	Status       string // success | failed | pending
	Chain        string
	TokenSymbol  string
	TokenAddress string
}

func deriveStatus(raw string, blockConfirmations int) string {
	switch strings.ToLower(raw) {
	case "confirmed", "success":
		return "success"
	case "failed", "error":
		return "failed"
	}
	if blockConfirmations > 0 {
		return "success"
	}
	return "pending"
}

// toTransactionRecord maps one indexer transaction to the normalized shape.
// If multiple transfers exist, the first is used for tokenSymbol/to, per the
// design notes.
func toTransactionRecord(chain string, tx indexer.Transaction) TransactionRecord {
	rec := TransactionRecord{
		TxHash:      tx.TxHash,
		Timestamp:   tx.Timestamp,
		BlockNumber: tx.BlockNumber,
		Status:      deriveStatus(tx.Status, tx.BlockConfirmations),
		Chain:       chain,
	}
	if len(tx.Transfers) > 0 {
		first := tx.Transfers[0]
		rec.From = first.From
		rec.To = first.To
		rec.Value = first.Value
		rec.TokenSymbol = first.TokenSymbol
		rec.TokenAddress = first.TokenAddress
	}
	return rec
}

// GetTransactionHistory fetches up to limit recent transactions for
// (userID, chain).
func (c *Controller) GetTransactionHistory(ctx context.Context, userID string, chain ChainFamily, limit int) ([]TransactionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	addr, err := c.address(ctx, userID, chain)
	if err != nil {
		return nil, err
	}

	txs, err := c.indexer.Transactions(ctx, addr, string(chain), limit)
	if err != nil {
		return nil, errs.Wrap(errs.Unavailable, "transaction history unavailable", err)
	}

	out := make([]TransactionRecord, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionRecord(string(chain), tx))
	}
	return out, nil
}

// GetTransactionsAny is GetTokenBalancesAny's counterpart for transaction
// history: fetched per primary address, deduplicated by (chainId, txHash).
func (c *Controller) GetTransactionsAny(ctx context.Context, userID string, limit int) ([]TransactionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	seen := make(map[string]bool)
	var out []TransactionRecord

	for chain, addr := range c.primaryAddresses(ctx, userID) {
		txs, err := c.indexer.Transactions(ctx, addr, "", limit)
		if err != nil {
			c.lg.Warn("any-chain transactions fetch failed", "chain", chain, "error", err)
			continue
		}
		for _, tx := range txs {
			dedupKey := tx.ChainID + "|" + tx.TxHash
			if seen[dedupKey] {
				continue
			}
			seen[dedupKey] = true
			out = append(out, toTransactionRecord(tx.ChainID, tx))
		}
	}

	return out, nil
}

// normalizeBalance right-pads raw (an integer string of smallest units at
// decimals precision) out to a fixed 18-decimal representation.
func normalizeBalance(raw string, decimals int) string {
	if raw == "" {
		return "0"
	}
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return "0"
	}
	pad := 18 - decimals
	if pad <= 0 {
		return n.String()
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(pad)), nil)
	return new(big.Int).Mul(n, scale).String()
}

func isZeroBalance(normalized string) bool {
	v, err := strconv.ParseInt(normalized, 10, 64)
	if err == nil {
		return v == 0
	}
	return strings.Trim(normalized, "0") == ""
}
