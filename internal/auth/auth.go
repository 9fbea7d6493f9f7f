// Package auth is the session-key authentication layer: it owns the
// ephemeral session key, drives the challenge/response handshake over an
// *rpc.Client, and repeats that handshake on every reconnect before the
// transport flushes its offline queue.
package auth

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/coderrahul01/tempwallets/internal/errs"
	"github.com/coderrahul01/tempwallets/pkg/rpc"
	"github.com/coderrahul01/tempwallets/pkg/sign"
)

// methodsAllowedUnsigned is the explicit unsigned-method allowlist named in
// the design notes: everything else requires a prior successful handshake.
var methodsAllowedUnsigned = map[rpc.Method]bool{
	rpc.PingMethod:             true,
	rpc.GetAppDefinitionMethod: true,
}

// SessionAuth owns the session key and the single atomic authenticated
// flag; every other component signs through it instead of holding its own
// notion of "are we logged in".
type SessionAuth struct {
	client        *rpc.Client
	wallet        sign.Signer
	sessionSigner sign.Signer

	application string
	scope       string
	allowances  []rpc.Allowance
	sessionTTL  time.Duration

	authenticated atomic.Bool
	expiresAt     atomic.Int64 // unix seconds, 0 if never authenticated
}

// New builds a SessionAuth and registers its re-auth hook on the client's
// transport. Authentication itself does not happen until the first
// Authenticate call (normally made right after client.Start).
func New(client *rpc.Client, wallet, sessionSigner sign.Signer, application, scope string, allowances []rpc.Allowance, sessionTTL time.Duration) *SessionAuth {
	a := &SessionAuth{
		client:        client,
		wallet:        wallet,
		sessionSigner: sessionSigner,
		application:   application,
		scope:         scope,
		allowances:    allowances,
		sessionTTL:    sessionTTL,
	}
	client.OnConnect(a.reauthenticate)
	return a
}

// Authenticate runs the initial handshake: wallet-signed challenge/response
// establishing the session key's authority for this connection.
func (a *SessionAuth) Authenticate(ctx context.Context) error {
	return a.handshake(ctx)
}

// reauthenticate is the on-connect hook. It resets the authentication state
// and repeats the handshake before any queued request is replayed; if the
// handshake fails, the transport closes the connection and schedules a
// reconnect, whose hook tries again, rather than leaving the connection
// open unauthenticated.
func (a *SessionAuth) reauthenticate(ctx context.Context) error {
	a.authenticated.Store(false)
	return a.handshake(ctx)
}

func (a *SessionAuth) handshake(ctx context.Context) error {
	expiresAt := time.Now().Add(a.sessionTTL)

	req := rpc.AuthRequestRequest{
		Address:     a.wallet.PublicKey().Address().String(),
		SessionKey:  a.sessionSigner.PublicKey().Address().String(),
		Application: a.application,
		Allowances:  a.allowances,
		ExpiresAt:   uint64(expiresAt.Unix()),
		Scope:       a.scope,
	}

	_, _, err := a.client.AuthWithSig(ctx, req, a.wallet)
	if err != nil {
		return errs.Wrap(errs.Unauthenticated, "session handshake refused", err)
	}

	a.expiresAt.Store(expiresAt.Unix())
	a.authenticated.Store(true)
	return nil
}

// Authenticated reports whether the current connection has completed a
// handshake that has not yet expired.
func (a *SessionAuth) Authenticated() bool {
	if !a.authenticated.Load() {
		return false
	}
	exp := a.expiresAt.Load()
	return exp == 0 || time.Now().Unix() < exp
}

// RequireAuth returns nil for any method on the unsigned allowlist; for every
// other method it returns an Unauthenticated error unless the session is
// currently authenticated. Controllers call this before issuing any signed
// request.
func (a *SessionAuth) RequireAuth(method rpc.Method) error {
	if methodsAllowedUnsigned[method] {
		return nil
	}
	if !a.Authenticated() {
		return errs.New(errs.Unauthenticated, "session not authenticated")
	}
	return nil
}

// SignRequest appends a detached signature over the canonical (hashed)
// encoding of payload using the session key, producing a Request ready to
// send. Unsigned methods should use rpc.NewRequest(payload) directly instead
// of routing through here.
func (a *SessionAuth) SignRequest(payload rpc.Payload) (rpc.Request, error) {
	hash, err := payload.Hash()
	if err != nil {
		return rpc.Request{}, errs.Wrap(errs.Internal, "hash payload", err)
	}
	sig, err := a.sessionSigner.Sign(hash)
	if err != nil {
		return rpc.Request{}, errs.Wrap(errs.Internal, "sign payload", err)
	}
	return rpc.NewRequest(payload, sig), nil
}

// SessionKeyAddress returns the ephemeral session key's address, used by
// controllers that must embed it in request parameters (e.g. CreateChannel's
// SessionKey field).
func (a *SessionAuth) SessionKeyAddress() string {
	return a.sessionSigner.PublicKey().Address().String()
}
