package indexer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderrahul01/tempwallets/internal/errs"
	"github.com/coderrahul01/tempwallets/pkg/log"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return New(baseURL, "test-key", log.NewNoopLogger(), nil)
}

func TestPortfolio_SuccessAndCacheHit(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "test-key", user)
		assert.Equal(t, "", pass)

		env := portfolioEnvelope{Data: []Position{
			{ChainID: "eip155:1", Balance: "1000000000000000000", FungibleInfo: FungibleInfo{Symbol: "ETH", Decimals: 18}},
		}}
		json.NewEncoder(w).Encode(env)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	positions, err := c.Portfolio(t.Context(), "0xabc", "eip155:1")
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "ETH", positions[0].FungibleInfo.Symbol)
	assert.EqualValues(t, 1, calls)

	positions2, err := c.Portfolio(t.Context(), "0xabc", "eip155:1")
	require.NoError(t, err)
	assert.Equal(t, positions, positions2)
	assert.EqualValues(t, 1, calls, "second call should be served from cache, not hit the server again")
}

func TestPortfolio_ClientErrorSurfacesImmediately(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Portfolio(t.Context(), "0xabc", "")
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.KindOf(err))
	assert.EqualValues(t, 1, calls, "4xx must not be retried")
}

func TestPortfolio_ServerErrorRetriesThenFails(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Portfolio(t.Context(), "0xabc", "")
	require.Error(t, err)
	assert.Equal(t, errs.Unavailable, errs.KindOf(err))
	assert.EqualValues(t, maxAttempts, calls)
}

func TestTransactions_EmptyDataYieldsEmptySlice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(transactionsEnvelope{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	txs, err := c.Transactions(t.Context(), "0xabc", "eip155:1", 10)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestInvalidatePortfolio_ForcesRefetch(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(portfolioEnvelope{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Portfolio(t.Context(), "0xabc", "eip155:1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, calls)

	c.InvalidatePortfolio("0xabc", "eip155:1")

	_, err = c.Portfolio(t.Context(), "0xabc", "eip155:1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls)
}

func TestRetryBackoff_DoublesAndCaps(t *testing.T) {
	assert.Equal(t, initialBackoff, retryBackoff(1))
	assert.Equal(t, 2*initialBackoff, retryBackoff(2))
	assert.Equal(t, maxBackoff, retryBackoff(20))
}

func TestBasicAuthToken(t *testing.T) {
	token := basicAuthToken("abc")
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	req.Header.Set("Authorization", "Basic "+token)
	user, pass, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "abc", user)
	assert.Equal(t, "", pass)
}
