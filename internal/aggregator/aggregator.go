// Package aggregator implements the multi-chain aggregator (C7): address
// derivation, progressive balance/transaction streams backed by the
// indexer client, cross-chain deduplication, and the send pipeline with its
// decimals resolver and balance pre-check.
package aggregator

import (
	"context"
	"sync"
	"time"

	"github.com/coderrahul01/tempwallets/internal/cache"
	"github.com/coderrahul01/tempwallets/internal/errs"
	"github.com/coderrahul01/tempwallets/internal/indexer"
	"github.com/coderrahul01/tempwallets/pkg/log"
)

const addressCacheTTL = 60 * time.Second

type addressCacheKey struct {
	userID string
	chain  ChainFamily
}

// Controller is the aggregator. It holds no per-user state beyond the
// address TTL cache; everything else is recomputed per call from the
// signer and indexer.
type Controller struct {
	signer  Signer
	indexer *indexer.Client
	lg      log.Logger

	addresses *cache.TTL[addressCacheKey, string]
}

func New(signer Signer, idx *indexer.Client, lg log.Logger) *Controller {
	return &Controller{
		signer:    signer,
		indexer:   idx,
		lg:        lg.WithName("aggregator"),
		addresses: cache.New[addressCacheKey, string](addressCacheTTL),
	}
}

// AddressResult is one chain's derivation outcome, whether obtained via
// GetAddresses or streamed via StreamAddresses. A per-chain failure never
// aborts the others; Err is set and Address is empty instead.
type AddressResult struct {
	Chain   ChainFamily
	Address string
	Err     error
}

// GetAddresses derives (or returns the cached) address for every supported
// chain, collecting all results before returning.
func (c *Controller) GetAddresses(ctx context.Context, userID string) []AddressResult {
	out := make([]AddressResult, 0, len(SupportedChains))
	for r := range c.StreamAddresses(ctx, userID) {
		out = append(out, r)
	}
	return out
}

// StreamAddresses yields one AddressResult per supported chain as soon as
// that chain's derivation completes, in completion order. The channel is
// closed once every chain has yielded or ctx is cancelled.
func (c *Controller) StreamAddresses(ctx context.Context, userID string) <-chan AddressResult {
	out := make(chan AddressResult, len(SupportedChains))

	var wg sync.WaitGroup
	for _, chain := range SupportedChains {
		wg.Add(1)
		go func(chain ChainFamily) {
			defer wg.Done()
			addr, err := c.address(ctx, userID, chain)
			select {
			case out <- AddressResult{Chain: chain, Address: addr, Err: err}:
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

func (c *Controller) address(ctx context.Context, userID string, chain ChainFamily) (string, error) {
	key := addressCacheKey{userID: userID, chain: chain}
	if addr, ok := c.addresses.Get(key); ok {
		return addr, nil
	}

	addr, err := c.signer.DeriveAddress(ctx, userID, chain)
	if err != nil {
		return "", errs.Wrap(errs.Unavailable, "derive address failed", err)
	}

	c.addresses.Set(key, addr)
	return addr, nil
}

// primaryAddresses returns the addresses used by the any-chain aggregation
// queries: the EVM EOA, the first account-abstraction address, and solana.
func (c *Controller) primaryAddresses(ctx context.Context, userID string) map[ChainFamily]string {
	primary := []ChainFamily{ChainEthereum, ChainEthereumAA, ChainSolana}
	out := make(map[ChainFamily]string, len(primary))
	for _, chain := range primary {
		addr, err := c.address(ctx, userID, chain)
		if err != nil {
			c.lg.Warn("primary address unavailable", "chain", chain, "error", err)
			continue
		}
		out[chain] = addr
	}
	return out
}
