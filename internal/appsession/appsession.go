// Package appsession implements the N-party app-session controller: four
// purely off-chain operations (create/deposit/transfer/close) plus the
// local participant bookkeeping. Deposit and transfer build allocation
// vectors that conserve (or grow by exactly the deposit) the per-asset sum;
// the clearing node's replies are recorded as-is and are not checked
// against those invariants.
package appsession

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coderrahul01/tempwallets/internal/auth"
	"github.com/coderrahul01/tempwallets/internal/errs"
	"github.com/coderrahul01/tempwallets/pkg/rpc"
)

// ParticipantStatus mirrors the invariant that an invited participant may
// only receive or deposit, never initiate a transfer.
type ParticipantStatus string

const (
	ParticipantInvited ParticipantStatus = "invited"
	ParticipantActive  ParticipantStatus = "active"
)

// Participant is the local bookkeeping row kept per (session, address).
type Participant struct {
	Address string
	Status  ParticipantStatus
	Weight  int64
	Balance map[string]decimal.Decimal // asset -> balance
}

// Session is the local mirror of an app session's bookkeeping state,
// rebuilt from each clearing-node reply.
type Session struct {
	AppSessionID string
	Status       string
	Quorum       uint64
	Version      uint64
	Weights      map[string]int64
	Participants map[string]*Participant
	ClosedAt     *time.Time
}

// Controller owns no long-lived state beyond the local session mirrors
// used to check invariants before and after each clearing-node round trip.
type Controller struct {
	client *rpc.Client
	auth   *auth.SessionAuth

	mu       sync.Mutex
	sessions map[string]*Session
}

func New(client *rpc.Client, a *auth.SessionAuth) *Controller {
	return &Controller{client: client, auth: a, sessions: make(map[string]*Session)}
}

func (c *Controller) signedRequest(method rpc.Method, params any) (*rpc.Request, error) {
	if err := c.auth.RequireAuth(method); err != nil {
		return nil, err
	}
	payload, err := c.client.PreparePayload(method, params)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidArgument, "prepare request", err)
	}
	req, err := c.auth.SignRequest(payload)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Create opens a new app session with an initial allocation vector. The
// local participant always signs via the session key; co-participant
// signatures are aggregated by the clearing node.
func (c *Controller) Create(ctx context.Context, participants []string, weights []int64, quorum uint64, protocol rpc.Version, challenge uint64, initialAllocations []rpc.AppAllocation) (*Session, error) {
	req, err := c.signedRequest(rpc.CreateAppSessionMethod, rpc.CreateAppSessionRequest{
		Definition: rpc.AppDefinition{
			Protocol:           protocol,
			ParticipantWallets: participants,
			Weights:            weights,
			Quorum:             quorum,
			Challenge:          challenge,
		},
		Allocations: initialAllocations,
	})
	if err != nil {
		return nil, err
	}

	res, _, err := c.client.CreateAppSession(ctx, req)
	if err != nil {
		return nil, errs.Wrap(errs.Unavailable, "create_app_session failed", err)
	}

	session := c.mirror(rpc.AppSession(res), initialAllocations)
	c.mu.Lock()
	c.sessions[session.AppSessionID] = session
	c.mu.Unlock()
	return session, nil
}

// Deposit adds funds to a participant's balance via submit_app_state with
// intent=deposit, increasing the per-asset sum by exactly the deposit
// amount.
func (c *Controller) Deposit(ctx context.Context, appSessionID, participantAddress string, amount decimal.Decimal, asset string) (*Session, error) {
	session, err := c.get(appSessionID)
	if err != nil {
		return nil, err
	}

	allocations := c.projectedAllocations(session, participantAddress, asset, amount, true)

	return c.submit(ctx, appSessionID, rpc.AppSessionIntentDeposit, session.nextVersion(), allocations)
}

// Transfer moves amount of asset from one participant to another within
// the session, enforcing balance(from) >= amount locally before the round
// trip. Once the node accepts, the new balances recorded locally are the
// ones in the submitted allocation vector.
func (c *Controller) Transfer(ctx context.Context, appSessionID, from, to string, amount decimal.Decimal, asset string) (*Session, error) {
	session, err := c.get(appSessionID)
	if err != nil {
		return nil, err
	}

	fromP, ok := session.Participants[from]
	if !ok {
		return nil, errs.New(errs.NotFound, "participant not found in session")
	}
	if fromP.Status == ParticipantInvited {
		return nil, errs.New(errs.PreconditionFailed, "invited participant cannot initiate a transfer")
	}
	if fromP.Balance[asset].LessThan(amount) {
		return nil, errs.New(errs.PreconditionFailed, "insufficient balance for transfer")
	}

	allocations := c.transferAllocations(session, from, to, asset, amount)
	return c.submit(ctx, appSessionID, rpc.AppSessionIntentOperate, session.nextVersion(), allocations)
}

// Close finalizes the session. Only permitted while the local mirror
// believes the session is open.
func (c *Controller) Close(ctx context.Context, appSessionID string, finalAllocations []rpc.AppAllocation) (*Session, error) {
	session, err := c.get(appSessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != "open" {
		return nil, errs.New(errs.PreconditionFailed, "close is only permitted on an open session")
	}

	req, err := c.signedRequest(rpc.CloseAppSessionMethod, rpc.CloseAppSessionRequest{
		AppSessionID: appSessionID,
		Allocations:  finalAllocations,
	})
	if err != nil {
		return nil, err
	}

	res, _, err := c.client.CloseAppSession(ctx, req)
	if err != nil {
		return nil, errs.Wrap(errs.Unavailable, "close_app_session failed", err)
	}

	closed := c.mirror(rpc.AppSession(res), finalAllocations)
	now := time.Now()
	closed.ClosedAt = &now

	c.mu.Lock()
	c.sessions[appSessionID] = closed
	c.mu.Unlock()
	return closed, nil
}

func (c *Controller) submit(ctx context.Context, appSessionID string, intent rpc.AppSessionIntent, version uint64, allocations []rpc.AppAllocation) (*Session, error) {
	req, err := c.signedRequest(rpc.SubmitAppStateMethod, rpc.SubmitAppStateRequest{
		AppSessionID: appSessionID,
		Intent:       intent,
		Version:      version,
		Allocations:  allocations,
	})
	if err != nil {
		return nil, err
	}

	res, _, err := c.client.SubmitAppState(ctx, req)
	if err != nil {
		// A local-mirror desync after an off-chain mutation that may have
		// actually landed is reported distinctly so the caller can
		// reconcile via the query service rather than assume failure.
		return nil, errs.Wrap(errs.Unavailable, fmt.Sprintf("submit_app_state failed for session %s, reconcile via query service before retrying", appSessionID), err)
	}

	updated := c.mirror(rpc.AppSession(res), allocations)
	c.mu.Lock()
	c.sessions[appSessionID] = updated
	c.mu.Unlock()
	return updated, nil
}

func (c *Controller) get(appSessionID string) (*Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[appSessionID]
	if !ok {
		return nil, errs.New(errs.NotFound, "app session not known locally")
	}
	return s, nil
}

// nextVersion proposes the version for the next mutation; the clearing
// node is authoritative and the actual accepted version comes back in its
// reply, which mirror() then records.
func (s *Session) nextVersion() uint64 {
	return s.Version + 1
}

// mirror rebuilds the local Session bookkeeping row from a clearing-node
// AppSession reply plus the allocation vector the operation carried,
// applying allocations as the new balances.
func (c *Controller) mirror(remote rpc.AppSession, allocations []rpc.AppAllocation) *Session {
	participants := make(map[string]*Participant, len(remote.ParticipantWallets))
	weights := make(map[string]int64, len(remote.Weights))

	for i, addr := range remote.ParticipantWallets {
		status := ParticipantActive
		if i > 0 {
			// The creator is active by convention; invited co-participants
			// stay invited until they submit their own signed state.
			status = ParticipantInvited
		}
		var weight int64
		if i < len(remote.Weights) {
			weight = remote.Weights[i]
			weights[addr] = weight
		}
		participants[addr] = &Participant{
			Address: addr,
			Status:  status,
			Weight:  weight,
			Balance: make(map[string]decimal.Decimal),
		}
	}

	for _, a := range allocations {
		p, ok := participants[a.Participant]
		if !ok {
			continue
		}
		p.Balance[a.AssetSymbol] = a.Amount
	}

	return &Session{
		AppSessionID: remote.AppSessionID,
		Status:       remote.Status,
		Quorum:       remote.Quorum,
		Version:      remote.Version,
		Weights:      weights,
		Participants: participants,
	}
}

// projectedAllocations returns the full allocation vector for a
// submit_app_state call after applying a local delta to one participant,
// preserving every other participant's current balance — the clearing node
// expects the complete vector, not just the delta.
func (c *Controller) projectedAllocations(s *Session, participant, asset string, delta decimal.Decimal, add bool) []rpc.AppAllocation {
	out := make([]rpc.AppAllocation, 0, len(s.Participants))
	for addr, p := range s.Participants {
		amount := p.Balance[asset]
		if addr == participant {
			if add {
				amount = amount.Add(delta)
			} else {
				amount = amount.Sub(delta)
			}
		}
		out = append(out, rpc.AppAllocation{Participant: addr, AssetSymbol: asset, Amount: amount})
	}
	return out
}

func (c *Controller) transferAllocations(s *Session, from, to, asset string, amount decimal.Decimal) []rpc.AppAllocation {
	out := make([]rpc.AppAllocation, 0, len(s.Participants))
	for addr, p := range s.Participants {
		bal := p.Balance[asset]
		switch addr {
		case from:
			bal = bal.Sub(amount)
		case to:
			bal = bal.Add(amount)
		}
		out = append(out, rpc.AppAllocation{Participant: addr, AssetSymbol: asset, Amount: bal})
	}
	return out
}
