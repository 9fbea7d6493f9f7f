package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderrahul01/tempwallets/internal/auth"
	"github.com/coderrahul01/tempwallets/pkg/log"
	"github.com/coderrahul01/tempwallets/pkg/rpc"
	"github.com/coderrahul01/tempwallets/pkg/sign"
)

func TestPage_ToListOptions(t *testing.T) {
	p := Page{Size: 25, Offset: 50}
	opts := p.toListOptions()
	assert.EqualValues(t, 25, opts.Limit)
	assert.EqualValues(t, 50, opts.Offset)
}

func TestPage_ZeroValueIsUnbounded(t *testing.T) {
	opts := Page{}.toListOptions()
	assert.EqualValues(t, 0, opts.Limit)
	assert.EqualValues(t, 0, opts.Offset)
}

func testSigner(t *testing.T) sign.Signer {
	t.Helper()
	s, err := sign.NewEthereumSigner("0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690")
	require.NoError(t, err)
	return s
}

func TestPing_NeverPropagatesTransportError(t *testing.T) {
	transport := rpc.NewTransport(rpc.TransportConfig{URL: "ws://127.0.0.1:1"}, log.NewNoopLogger())
	client := rpc.NewClient(transport)
	a := auth.New(client, testSigner(t), testSigner(t), "testapp", "", nil, time.Hour)
	svc := New(client, a)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	pong := svc.Ping(ctx)
	assert.Equal(t, "pong", pong.Pong)
	assert.False(t, pong.Timestamp.IsZero())
}
