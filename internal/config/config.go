// Package config loads every dial-time and endpoint option this module's
// components take, following the reference logger's env/env-default tag
// convention (pkg/log.Config) but reading them by hand: the reference
// project's cleanenv loader belongs to the clearing node's own server
// bootstrap, which is out of scope for this client-side module, so a small
// os.Getenv-based loader stands in for it here (see DESIGN.md).
package config

import (
	"os"
	"strconv"
	"time"
)

// Transport holds the RPC transport's dial-time options.
type Transport struct {
	URL                     string `env:"RPC_URL"`
	MaxReconnectAttempts    int    `env:"RPC_MAX_RECONNECT_ATTEMPTS" env-default:"5"`
	InitialReconnectDelayMs int    `env:"RPC_INITIAL_RECONNECT_DELAY_MS" env-default:"1000"`
	MaxReconnectDelayMs     int    `env:"RPC_MAX_RECONNECT_DELAY_MS" env-default:"30000"`
	RequestTimeoutMs        int    `env:"RPC_REQUEST_TIMEOUT_MS" env-default:"30000"`
}

// Indexer holds the HTTPS portfolio/transaction indexer's options.
type Indexer struct {
	BaseURL    string        `env:"INDEXER_BASE_URL"`
	APIKey     string        `env:"INDEXER_API_KEY"`
	HTTPTimeout time.Duration `env:"INDEXER_HTTP_TIMEOUT" env-default:"10s"`
	CacheTTL   time.Duration `env:"INDEXER_CACHE_TTL" env-default:"30s"`
}

// ChainEndpoint is one chain's custody/adjudicator addresses and its RPC
// endpoint, keyed by chain id by the caller.
type ChainEndpoint struct {
	ChainID            uint32
	RPCURL             string
	CustodyAddress     string
	AdjudicatorAddress string
}

// Config is the full set of options this module's components need,
// independent of however the embedding application chooses to supply it
// (flags, a file, a secrets manager) — LoadFromEnv is one concrete source.
type Config struct {
	Transport Transport
	Indexer   Indexer
}

// LoadFromEnv reads Transport and Indexer from the process environment,
// applying the env-default values documented on each field when the
// variable is unset. It never panics on missing configuration — a blank
// URL/APIKey is a configuration error for the caller to surface, not this
// package's to guess at.
func LoadFromEnv() Config {
	return Config{
		Transport: Transport{
			URL:                     os.Getenv("RPC_URL"),
			MaxReconnectAttempts:    envInt("RPC_MAX_RECONNECT_ATTEMPTS", 5),
			InitialReconnectDelayMs: envInt("RPC_INITIAL_RECONNECT_DELAY_MS", 1000),
			MaxReconnectDelayMs:     envInt("RPC_MAX_RECONNECT_DELAY_MS", 30000),
			RequestTimeoutMs:        envInt("RPC_REQUEST_TIMEOUT_MS", 30000),
		},
		Indexer: Indexer{
			BaseURL:     os.Getenv("INDEXER_BASE_URL"),
			APIKey:      os.Getenv("INDEXER_API_KEY"),
			HTTPTimeout: envDuration("INDEXER_HTTP_TIMEOUT", 10*time.Second),
			CacheTTL:    envDuration("INDEXER_CACHE_TTL", 30*time.Second),
		},
	}
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
