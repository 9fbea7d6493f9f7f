// Package indexer is the HTTPS client for the external portfolio and
// transaction provider (C1): Basic-authenticated GET calls, a TTL cache in
// front of each endpoint, and exponential-backoff retry on 5xx/network
// errors, mirroring the transport's own hand-rolled backoff rather than a
// library.
package indexer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/coderrahul01/tempwallets/internal/cache"
	"github.com/coderrahul01/tempwallets/internal/errs"
	"github.com/coderrahul01/tempwallets/pkg/log"
)

const (
	portfolioCacheTTL    = 30 * time.Second
	transactionsCacheTTL = 60 * time.Second

	maxAttempts        = 3
	initialBackoff     = 200 * time.Millisecond
	maxBackoff         = 2 * time.Second
	defaultHTTPTimeout = 10 * time.Second
)

// Implementation names one chain's contract address for a fungible asset.
type Implementation struct {
	ChainID string `json:"chain_id"`
	Address string `json:"address"`
}

// FungibleInfo carries the asset's symbol and declared decimals.
type FungibleInfo struct {
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Position is one row of a portfolio or any-chain positions response.
type Position struct {
	ChainID         string           `json:"chain_id"`
	Balance         string           `json:"balance"`
	FungibleInfo    FungibleInfo     `json:"fungible_info"`
	Implementations []Implementation `json:"implementations"`
}

type portfolioEnvelope struct {
	Data []Position `json:"data"`
}

// Transfer is one leg of a transaction (most have exactly one).
type Transfer struct {
	From         string `json:"from"`
	To           string `json:"to"`
	Value        string `json:"value"`
	TokenSymbol  string `json:"token_symbol"`
	TokenAddress string `json:"token_address"`
}

// Transaction is one row of a transactions response.
type Transaction struct {
	ChainID            string     `json:"chain_id"`
	TxHash             string     `json:"tx_hash"`
	Status             string     `json:"status"`
	BlockConfirmations int        `json:"block_confirmations"`
	Timestamp          int64      `json:"timestamp"`
	BlockNumber        int64      `json:"block_number"`
	Transfers          []Transfer `json:"transfers"`
}

type transactionsEnvelope struct {
	Data []Transaction `json:"data"`
}

type cacheKey struct {
	address string
	chain   string
}

// Client is the indexer HTTPS client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	lg         log.Logger
	metrics    *Metrics

	portfolio    *cache.TTL[cacheKey, []Position]
	transactions *cache.TTL[cacheKey, []Transaction]
}

// New builds a Client. baseURL has no trailing slash, e.g.
// "https://indexer.example.com". A nil metrics gets collectors on a fresh
// private registry, so several Clients can be built without colliding.
func New(baseURL, apiKey string, lg log.Logger, metrics *Metrics) *Client {
	if metrics == nil {
		metrics = NewMetrics(prometheus.NewRegistry())
	}
	return &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: defaultHTTPTimeout},
		lg:           lg.WithName("indexer"),
		metrics:      metrics,
		portfolio:    cache.New[cacheKey, []Position](portfolioCacheTTL),
		transactions: cache.New[cacheKey, []Transaction](transactionsCacheTTL),
	}
}

// Portfolio returns address's token positions on chain. An empty chain
// queries the any-chain variant (all chains, no filter). Empty or missing
// `data` yields an empty slice, never an error.
func (c *Client) Portfolio(ctx context.Context, address, chain string) ([]Position, error) {
	key := cacheKey{address: address, chain: chain}
	if v, ok := c.portfolio.Get(key); ok {
		c.metrics.CacheHitsTotal.WithLabelValues("portfolio").Inc()
		return v, nil
	}
	c.metrics.CacheMissesTotal.WithLabelValues("portfolio").Inc()

	path := fmt.Sprintf("/v1/wallets/%s/portfolio", url.PathEscape(address))
	q := url.Values{}
	if chain != "" {
		q.Set("chain_ids", chain)
	}

	var env portfolioEnvelope
	if err := c.getJSON(ctx, "portfolio", path, q, &env); err != nil {
		return nil, err
	}

	c.portfolio.Set(key, env.Data)
	return env.Data, nil
}

// Transactions returns address's transactions on chain, paginated by page
// size. An empty chain queries the any-chain variant.
func (c *Client) Transactions(ctx context.Context, address, chain string, pageSize int) ([]Transaction, error) {
	key := cacheKey{address: address, chain: chain}
	if v, ok := c.transactions.Get(key); ok {
		c.metrics.CacheHitsTotal.WithLabelValues("transactions").Inc()
		return v, nil
	}
	c.metrics.CacheMissesTotal.WithLabelValues("transactions").Inc()

	path := fmt.Sprintf("/v1/wallets/%s/transactions/", url.PathEscape(address))
	q := url.Values{}
	if chain != "" {
		q.Set("chain_ids", chain)
	}
	if pageSize > 0 {
		q.Set("page[size]", strconv.Itoa(pageSize))
	}

	var env transactionsEnvelope
	if err := c.getJSON(ctx, "transactions", path, q, &env); err != nil {
		return nil, err
	}

	c.transactions.Set(key, env.Data)
	return env.Data, nil
}

// InvalidatePortfolio drops the cached portfolio for (address, chain) after
// a send mutation. Best-effort: callers must never let a failed invalidate
// fail the send itself, so this never returns an error.
func (c *Client) InvalidatePortfolio(address, chain string) {
	c.portfolio.Invalidate(cacheKey{address: address, chain: chain})
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		start := time.Now()
		status, body, err := c.doGet(ctx, fullURL)
		c.metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

		if err == nil && status >= 200 && status < 300 {
			c.metrics.RequestsTotal.WithLabelValues(endpoint, "success").Inc()
			return json.Unmarshal(body, out)
		}

		if err == nil && status >= 400 && status < 500 {
			c.metrics.RequestsTotal.WithLabelValues(endpoint, "client_error").Inc()
			return errs.New(errs.InvalidArgument, fmt.Sprintf("indexer returned %d for %s", status, endpoint))
		}

		lastErr = err
		if lastErr == nil {
			lastErr = fmt.Errorf("indexer returned status %d", status)
		}
		c.metrics.RequestsTotal.WithLabelValues(endpoint, "retry").Inc()

		if attempt == maxAttempts {
			break
		}
		c.metrics.RetriesTotal.WithLabelValues(endpoint).Inc()
		c.lg.Warn("indexer request failed, retrying", "endpoint", endpoint, "attempt", attempt, "error", lastErr)

		select {
		case <-ctx.Done():
			return errs.Wrap(errs.Timeout, "indexer request cancelled", ctx.Err())
		case <-time.After(retryBackoff(attempt)):
		}
	}

	return errs.Wrap(errs.Unavailable, fmt.Sprintf("indexer %s unavailable after %d attempts", endpoint, maxAttempts), lastErr)
}

func (c *Client) doGet(ctx context.Context, fullURL string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Basic "+basicAuthToken(c.apiKey))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

func basicAuthToken(apiKey string) string {
	return base64.StdEncoding.EncodeToString([]byte(apiKey + ":"))
}

func retryBackoff(attempt int) time.Duration {
	delay := initialBackoff << uint(attempt-1)
	if delay <= 0 || delay > maxBackoff {
		delay = maxBackoff
	}
	return delay
}
