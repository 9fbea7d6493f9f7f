// Command walletcore is a minimal non-interactive wiring example: it dials
// the clearing node, authenticates a session key, and runs one query-service
// call, demonstrating how C1-C6 compose in an embedding application. The
// aggregator (C7) is not constructed here.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/coderrahul01/tempwallets/internal/appsession"
	"github.com/coderrahul01/tempwallets/internal/auth"
	"github.com/coderrahul01/tempwallets/internal/channel"
	"github.com/coderrahul01/tempwallets/internal/config"
	"github.com/coderrahul01/tempwallets/internal/custody"
	"github.com/coderrahul01/tempwallets/internal/indexer"
	"github.com/coderrahul01/tempwallets/internal/query"
	"github.com/coderrahul01/tempwallets/pkg/log"
	"github.com/coderrahul01/tempwallets/pkg/rpc"
	"github.com/coderrahul01/tempwallets/pkg/sign"
)

func main() {
	cfg := config.LoadFromEnv()
	lg := log.NewZapLogger(log.Config{Format: "logfmt", Level: log.LevelInfo, Output: "stderr"})

	walletKey := os.Getenv("WALLET_PRIVATE_KEY")
	sessionKey := os.Getenv("SESSION_PRIVATE_KEY")
	if walletKey == "" || sessionKey == "" || cfg.Transport.URL == "" {
		fmt.Fprintln(os.Stderr, "WALLET_PRIVATE_KEY, SESSION_PRIVATE_KEY and RPC_URL are required")
		os.Exit(1)
	}

	wallet, err := sign.NewEthereumSigner(walletKey)
	if err != nil {
		lg.Fatal("invalid wallet key", "error", err)
	}
	sessionSigner, err := sign.NewEthereumSigner(sessionKey)
	if err != nil {
		lg.Fatal("invalid session key", "error", err)
	}

	transport := rpc.NewTransport(rpc.TransportConfig{
		URL:                     cfg.Transport.URL,
		MaxReconnectAttempts:    cfg.Transport.MaxReconnectAttempts,
		InitialReconnectDelayMs: cfg.Transport.InitialReconnectDelayMs,
		MaxReconnectDelayMs:     cfg.Transport.MaxReconnectDelayMs,
		RequestTimeoutMs:        cfg.Transport.RequestTimeoutMs,
	}, lg)
	transport.SetMetrics(rpc.NewMetrics(nil))

	client := rpc.NewClient(transport)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client.Start(ctx)

	sessionAuth := auth.New(client, wallet, sessionSigner, "walletcore", "", nil, time.Hour)
	if err := sessionAuth.Authenticate(ctx); err != nil {
		lg.Fatal("session handshake failed", "error", err)
	}

	custodyClient := custody.NewCustodyClient(os.Getenv("CUSTODY_RPC_URL"), common.HexToAddress(os.Getenv("CUSTODY_ADDRESS")))

	channels := channel.New(client, sessionAuth, custodyClient)
	sessions := appsession.New(client, sessionAuth)
	queries := query.New(client, sessionAuth)

	idx := indexer.New(cfg.Indexer.BaseURL, cfg.Indexer.APIKey, lg, indexer.NewMetrics(nil))

	pong := queries.Ping(ctx)
	lg.Info("clearing node reachable", "pong", pong.Pong, "timestamp", pong.Timestamp)

	// channels, sessions and idx are wired and ready for the embedding
	// application's API layer to drive; this command only demonstrates
	// the startup sequence.
	_ = channels
	_ = sessions
	_ = idx
}
