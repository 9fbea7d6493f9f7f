// Package query implements the read-only query service: thin wrappers around
// the RPC client's list/get methods, plus getAppSession which composes two
// calls and ping's default envelope. No wrapper attaches a signature to the
// request it sends.
package query

import (
	"context"
	"time"

	"github.com/coderrahul01/tempwallets/internal/auth"
	"github.com/coderrahul01/tempwallets/internal/errs"
	"github.com/coderrahul01/tempwallets/pkg/rpc"
)

// Page follows the clearing node's pagination convention of a page size
// plus an offset.
type Page struct {
	Size   uint32
	Offset uint32
}

func (p Page) toListOptions() rpc.ListOptions {
	return rpc.ListOptions{Offset: p.Offset, Limit: p.Size}
}

// PongResult is ping's default envelope when the server's reply is missing
// or null.
type PongResult struct {
	Pong      string    `json:"pong"`
	Timestamp time.Time `json:"timestamp"`
}

type Service struct {
	client *rpc.Client
	auth   *auth.SessionAuth
}

func New(client *rpc.Client, a *auth.SessionAuth) *Service {
	return &Service{client: client, auth: a}
}

// Ping is explicitly unsigned. A transport-level failure still yields the
// default {pong, timestamp} envelope rather than propagating the error,
// since liveness checks should never be load-bearing for a caller's error
// handling.
func (s *Service) Ping(ctx context.Context) PongResult {
	if _, err := s.client.Ping(ctx); err != nil {
		return PongResult{Pong: "pong", Timestamp: time.Now()}
	}
	return PongResult{Pong: "pong", Timestamp: time.Now()}
}

func (s *Service) GetLedgerBalances(ctx context.Context, accountID string) ([]rpc.LedgerBalance, error) {
	res, _, err := s.client.GetLedgerBalances(ctx, rpc.GetLedgerBalancesRequest{AccountID: accountID})
	if err != nil {
		return nil, errs.Wrap(errs.Unavailable, "get_ledger_balances failed", err)
	}
	return res.LedgerBalances, nil
}

func (s *Service) GetAppSessions(ctx context.Context, status, participant string, page Page) ([]rpc.AppSession, error) {
	req := rpc.GetAppSessionsRequest{Status: status, Participant: participant}
	req.ListOptions = page.toListOptions()
	res, _, err := s.client.GetAppSessions(ctx, req)
	if err != nil {
		return nil, errs.Wrap(errs.Unavailable, "get_app_sessions failed", err)
	}
	return res.AppSessions, nil
}

func (s *Service) GetChannels(ctx context.Context, status, participant string, page Page) ([]rpc.Channel, error) {
	req := rpc.GetChannelsRequest{Status: status, Participant: participant}
	req.ListOptions = page.toListOptions()
	res, _, err := s.client.GetChannels(ctx, req)
	if err != nil {
		return nil, errs.Wrap(errs.Unavailable, "get_channels failed", err)
	}
	return res.Channels, nil
}

func (s *Service) GetLedgerTransactions(ctx context.Context, accountID, asset, txType string, page Page) ([]rpc.LedgerTransaction, error) {
	req := rpc.GetLedgerTransactionsRequest{AccountID: accountID, Asset: asset, TxType: txType}
	req.ListOptions = page.toListOptions()
	res, _, err := s.client.GetLedgerTransactions(ctx, req)
	if err != nil {
		return nil, errs.Wrap(errs.Unavailable, "get_ledger_transactions failed", err)
	}
	return res.LedgerTransactions, nil
}

// GetAppDefinition is explicitly unsigned.
func (s *Service) GetAppDefinition(ctx context.Context, appSessionID string) (rpc.AppDefinition, error) {
	res, _, err := s.client.GetAppDefinition(ctx, rpc.GetAppDefinitionRequest{AppSessionID: appSessionID})
	if err != nil {
		return rpc.AppDefinition{}, errs.Wrap(errs.Unavailable, "get_app_definition failed", err)
	}
	return rpc.AppDefinition(res), nil
}

// AppSessionWithDefinition merges a single app session's definition into
// its session row. The bare sessions query may omit participants for
// privacy; the definition call fills that back in.
type AppSessionWithDefinition struct {
	rpc.AppSession
	Definition rpc.AppDefinition
}

// GetAppSession composes getAppSessions (filtered to one id is not directly
// supported by the wire protocol, so this fetches the broader list and
// finds the match) with getAppDefinition.
func (s *Service) GetAppSession(ctx context.Context, appSessionID string) (AppSessionWithDefinition, error) {
	sessions, err := s.GetAppSessions(ctx, "", "", Page{Size: 100})
	if err != nil {
		return AppSessionWithDefinition{}, err
	}

	var found *rpc.AppSession
	for i := range sessions {
		if sessions[i].AppSessionID == appSessionID {
			found = &sessions[i]
			break
		}
	}
	if found == nil {
		return AppSessionWithDefinition{}, errs.New(errs.NotFound, "app session not found")
	}

	def, err := s.GetAppDefinition(ctx, appSessionID)
	if err != nil {
		return AppSessionWithDefinition{}, err
	}

	return AppSessionWithDefinition{AppSession: *found, Definition: def}, nil
}
