package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderrahul01/tempwallets/internal/errs"
	"github.com/coderrahul01/tempwallets/pkg/log"
	"github.com/coderrahul01/tempwallets/pkg/rpc"
	"github.com/coderrahul01/tempwallets/pkg/sign"
)

func testSigner(t *testing.T) sign.Signer {
	t.Helper()
	s, err := sign.NewEthereumSigner("0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690")
	require.NoError(t, err)
	return s
}

func newTestAuth(t *testing.T) *SessionAuth {
	t.Helper()
	transport := rpc.NewTransport(rpc.TransportConfig{URL: "ws://127.0.0.1:1"}, log.NewNoopLogger())
	client := rpc.NewClient(transport)
	return New(client, testSigner(t), testSigner(t), "testapp", "read", nil, time.Hour)
}

func TestRequireAuth_UnsignedMethodsAlwaysAllowed(t *testing.T) {
	a := newTestAuth(t)
	assert.NoError(t, a.RequireAuth(rpc.PingMethod))
	assert.NoError(t, a.RequireAuth(rpc.GetAppDefinitionMethod))
}

func TestRequireAuth_SignedMethodRejectedBeforeHandshake(t *testing.T) {
	a := newTestAuth(t)
	err := a.RequireAuth(rpc.GetChannelsMethod)
	require.Error(t, err)
	assert.Equal(t, errs.Unauthenticated, errs.KindOf(err))
}

func TestAuthenticated_FalseBeforeHandshake(t *testing.T) {
	a := newTestAuth(t)
	assert.False(t, a.Authenticated())
}

func TestAuthenticate_FailsWithoutLiveConnection(t *testing.T) {
	a := newTestAuth(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := a.Authenticate(ctx)
	require.Error(t, err)
	assert.Equal(t, errs.Unauthenticated, errs.KindOf(err))
	assert.False(t, a.Authenticated())
}

func TestSessionKeyAddress_MatchesSigner(t *testing.T) {
	sessionSigner := testSigner(t)
	transport := rpc.NewTransport(rpc.TransportConfig{URL: "ws://127.0.0.1:1"}, log.NewNoopLogger())
	client := rpc.NewClient(transport)
	a := New(client, testSigner(t), sessionSigner, "testapp", "read", nil, time.Hour)

	assert.Equal(t, sessionSigner.PublicKey().Address().String(), a.SessionKeyAddress())
}
