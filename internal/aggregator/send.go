package aggregator

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/coderrahul01/tempwallets/internal/errs"
)

// SendResult is sendCrypto's success return value.
type SendResult struct {
	TxHash string
}

// SendCrypto validates, resolves decimals, pre-checks balance, and invokes
// the signer's transfer path for a native or token send.
func (c *Controller) SendCrypto(ctx context.Context, userID string, chain ChainFamily, recipient, amountHuman string, tokenAddress *string) (SendResult, error) {
	if recipient == "" {
		return SendResult{}, errs.New(errs.InvalidArgument, "recipient is required")
	}

	amount, err := decimal.NewFromString(amountHuman)
	if err != nil {
		return SendResult{}, errs.Wrap(errs.InvalidArgument, "amount is not a valid number", err)
	}
	if !amount.IsPositive() {
		return SendResult{}, errs.New(errs.InvalidArgument, "amount must be strictly positive")
	}

	decimals, err := c.resolveDecimals(ctx, userID, chain, tokenAddress)
	if err != nil {
		return SendResult{}, err
	}

	smallest := toSmallestUnits(amount, decimals)

	if err := c.precheckBalance(ctx, userID, chain, tokenAddress, smallest); err != nil {
		return SendResult{}, err
	}

	txHash, err := c.dispatchTransfer(ctx, userID, chain, recipient, tokenAddress, smallest)
	if err != nil {
		return SendResult{}, errs.Wrap(errs.Unavailable, "signer transfer failed", err)
	}

	if addr, addrErr := c.signer.DeriveAddress(ctx, userID, chain); addrErr == nil {
		c.indexer.InvalidatePortfolio(addr, string(chain))
	}

	return SendResult{TxHash: txHash}, nil
}

// toSmallestUnits converts a human amount to its smallest-unit integer by
// string/decimal arithmetic, truncating (never rounding) the fractional
// part to exactly `decimals` digits.
func toSmallestUnits(amount decimal.Decimal, decimals int) *big.Int {
	shifted := amount.Shift(int32(decimals))
	truncated := shifted.Truncate(0)
	return truncated.BigInt()
}

// resolveDecimals implements the layered resolver. A native send (no token
// address) reads the per-chain-family native table. A token send tries an
// on-chain decimals() call through whatever provider the signer exposes,
// then the indexer's any-chain positions, then falls back to 18 and logs.
func (c *Controller) resolveDecimals(ctx context.Context, userID string, chain ChainFamily, tokenAddress *string) (int, error) {
	if tokenAddress == nil || *tokenAddress == "" {
		if d, ok := nativeDecimals[chain]; ok {
			return d, nil
		}
		return 18, nil
	}

	if provider, ok := c.signer.(ChainProvider); ok {
		if d, err := provider.TokenDecimals(ctx, userID, chain, *tokenAddress); err == nil && d >= 0 && d <= 36 {
			return d, nil
		}
	}

	if d, ok := c.decimalsFromIndexerPositions(ctx, userID, chain, *tokenAddress); ok {
		return d, nil
	}

	c.lg.Warn("decimals resolver falling back to 18", "chain", chain, "token", *tokenAddress)
	return 18, nil
}

func (c *Controller) decimalsFromIndexerPositions(ctx context.Context, userID string, chain ChainFamily, tokenAddress string) (int, bool) {
	addr, err := c.address(ctx, userID, chain)
	if err != nil {
		return 0, false
	}
	positions, err := c.indexer.Portfolio(ctx, addr, "")
	if err != nil {
		return 0, false
	}
	for _, p := range positions {
		if len(p.Implementations) == 0 {
			continue
		}
		if !strings.EqualFold(p.Implementations[0].Address, tokenAddress) {
			continue
		}
		if p.ChainID != string(chain) {
			continue
		}
		return p.FungibleInfo.Decimals, true
	}
	return 0, false
}

// precheckBalance fails with a precondition error on a confirmed shortfall;
// an unknown availability (every source erroring) is allowed to proceed, per
// the design notes.
func (c *Controller) precheckBalance(ctx context.Context, userID string, chain ChainFamily, tokenAddress *string, requested *big.Int) error {
	available, source, ok := c.resolveAvailableBalance(ctx, userID, chain, tokenAddress)
	if !ok {
		return nil
	}
	if available.Cmp(requested) < 0 {
		return errs.New(errs.PreconditionFailed, fmt.Sprintf(
			"insufficient balance: availableSmallest=%s, requestedSmallest=%s, source=%s",
			available.String(), requested.String(), source))
	}
	return nil
}

func (c *Controller) resolveAvailableBalance(ctx context.Context, userID string, chain ChainFamily, tokenAddress *string) (*big.Int, string, bool) {
	if tokenAddress == nil || *tokenAddress == "" {
		bal, err := c.signer.GetBalance(ctx, userID, chain)
		if err != nil {
			return nil, "", false
		}
		return bal, "signer-getBalance", true
	}

	if tb, ok := c.signer.(TokenBalancer); ok {
		if bal, err := tb.GetTokenBalance(ctx, userID, chain, *tokenAddress); err == nil {
			return bal, "wdk-getTokenBalance", true
		}
	}

	if addr, err := c.address(ctx, userID, chain); err == nil {
		if provider, ok := c.signer.(ChainProvider); ok {
			if bal, err := provider.TokenBalanceOf(ctx, userID, chain, *tokenAddress, addr); err == nil {
				return bal, "provider-balanceOf", true
			}
		}

		positions, err := c.indexer.Portfolio(ctx, addr, "")
		if err == nil {
			for _, p := range positions {
				if len(p.Implementations) == 0 || !strings.EqualFold(p.Implementations[0].Address, *tokenAddress) {
					continue
				}
				if p.ChainID != string(chain) {
					continue
				}
				n, ok := new(big.Int).SetString(p.Balance, 10)
				if !ok {
					continue
				}
				return n, "indexer-any-chain", true
			}
		}
	}

	return nil, "", false
}

// dispatchTransfer tries native send or token transfer depending on whether
// tokenAddress is set, probing the signer's optional capability interfaces
// in order.
func (c *Controller) dispatchTransfer(ctx context.Context, userID string, chain ChainFamily, recipient string, tokenAddress *string, smallest *big.Int) (string, error) {
	if tokenAddress == nil || *tokenAddress == "" {
		sender, ok := c.signer.(NativeSender)
		if !ok {
			return "", errs.New(errs.Internal, "signer does not support native sends")
		}
		return sender.Send(ctx, userID, chain, recipient, smallest)
	}

	sender, ok := c.signer.(TokenSender)
	if !ok {
		return "", errs.New(errs.Internal, "signer does not support token transfers")
	}
	return sender.SendToken(ctx, userID, chain, *tokenAddress, recipient, smallest)
}
