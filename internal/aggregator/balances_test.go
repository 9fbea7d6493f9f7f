package aggregator

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderrahul01/tempwallets/internal/indexer"
	"github.com/coderrahul01/tempwallets/pkg/log"
)

func TestNormalizeBalance_PadsToEighteenDecimals(t *testing.T) {
	assert.Equal(t, "1000000000000000000", normalizeBalance("1000000", 6))
	assert.Equal(t, "1000000000000000000", normalizeBalance("1000000000000000000", 18))
	assert.Equal(t, "0", normalizeBalance("", 18))
	assert.Equal(t, "0", normalizeBalance("not-a-number", 18))
}

func TestIsZeroBalance(t *testing.T) {
	assert.True(t, isZeroBalance("0"))
	assert.True(t, isZeroBalance("000"))
	assert.False(t, isZeroBalance("1"))
	assert.False(t, isZeroBalance("100"))
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, "success", deriveStatus("confirmed", 0))
	assert.Equal(t, "success", deriveStatus("SUCCESS", 0))
	assert.Equal(t, "failed", deriveStatus("failed", 5))
	assert.Equal(t, "failed", deriveStatus("error", 5))
	assert.Equal(t, "success", deriveStatus("pending", 3))
	assert.Equal(t, "pending", deriveStatus("pending", 0))
	assert.Equal(t, "pending", deriveStatus("", 0))
}

func TestToTransactionRecord_UsesFirstTransfer(t *testing.T) {
	tx := indexer.Transaction{
		TxHash:             "0xhash",
		Status:             "confirmed",
		BlockConfirmations: 10,
		Timestamp:          1000,
		BlockNumber:        42,
		Transfers: []indexer.Transfer{
			{From: "0xfrom", To: "0xto", Value: "100", TokenSymbol: "USDC", TokenAddress: "0xtoken"},
			{From: "0xfrom2", To: "0xto2", Value: "200", TokenSymbol: "DAI", TokenAddress: "0xtoken2"},
		},
	}

	rec := toTransactionRecord("ethereum", tx)
	assert.Equal(t, "0xhash", rec.TxHash)
	assert.Equal(t, "success", rec.Status)
	assert.Equal(t, "0xfrom", rec.From)
	assert.Equal(t, "0xto", rec.To)
	assert.Equal(t, "USDC", rec.TokenSymbol)
	assert.Equal(t, "ethereum", rec.Chain)
}

func TestToTransactionRecord_NoTransfersLeavesFieldsEmpty(t *testing.T) {
	tx := indexer.Transaction{TxHash: "0xhash", Status: "pending"}
	rec := toTransactionRecord("bitcoin", tx)
	assert.Equal(t, "", rec.From)
	assert.Equal(t, "", rec.TokenSymbol)
	assert.Equal(t, "pending", rec.Status)
}

func TestBalancesForChain_IndexerSuccessSplitsNativeAndTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"chain_id": "ethereum", "balance": "2000000000000000000", "fungible_info": map[string]any{"symbol": "ETH", "decimals": 18}},
				{"chain_id": "ethereum", "balance": "5000000", "fungible_info": map[string]any{"symbol": "USDC", "decimals": 6},
					"implementations": []map[string]any{{"chain_id": "ethereum", "address": "0xusdc"}}},
				{"chain_id": "ethereum", "balance": "0", "fungible_info": map[string]any{"symbol": "ZERO", "decimals": 18},
					"implementations": []map[string]any{{"chain_id": "ethereum", "address": "0xzero"}}},
			},
		})
	}))
	defer srv.Close()

	idx := indexer.New(srv.URL, "key", log.NewNoopLogger(), nil)
	c := New(newMinimalSigner(), idx, log.NewNoopLogger())

	native, tokens, err := c.balancesForChain(t.Context(), "user-1", ChainEthereum)
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000", native)
	require.Len(t, tokens, 1)
	assert.Equal(t, "USDC", tokens[0].Symbol)
	assert.Equal(t, "5000000000000000000", tokens[0].Balance)
}

func TestBalancesForChain_IndexerErrorFallsBackToSigner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	idx := indexer.New(srv.URL, "key", log.NewNoopLogger(), nil)
	signer := newMinimalSigner()
	signer.balance, _ = new(big.Int).SetString("7000000000000000000", 10)
	c := New(signer, idx, log.NewNoopLogger())

	native, tokens, err := c.balancesForChain(t.Context(), "user-1", ChainEthereum)
	require.NoError(t, err, "indexer failure for native balance must never propagate")
	assert.Equal(t, "7000000000000000000", native)
	assert.Empty(t, tokens)
}

func TestGetTokenBalancesAny_DedupsAcrossPrimaryAddresses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"chain_id": "ethereum", "balance": "5000000", "fungible_info": map[string]any{"symbol": "USDC", "decimals": 6},
					"implementations": []map[string]any{{"chain_id": "ethereum", "address": "0xusdc"}}},
			},
		})
	}))
	defer srv.Close()

	idx := indexer.New(srv.URL, "key", log.NewNoopLogger(), nil)
	c := New(newMinimalSigner(), idx, log.NewNoopLogger())

	out, err := c.GetTokenBalancesAny(t.Context(), "user-1")
	require.NoError(t, err)
	assert.Len(t, out, 1, "same token surfaced from every primary address must be deduplicated")
}
