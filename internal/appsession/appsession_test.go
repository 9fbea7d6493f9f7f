package appsession

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderrahul01/tempwallets/internal/errs"
	"github.com/coderrahul01/tempwallets/pkg/rpc"
)

func newController() *Controller {
	return &Controller{sessions: make(map[string]*Session)}
}

func TestMirror_CreatorActiveCoParticipantsInvited(t *testing.T) {
	c := newController()
	remote := rpc.AppSession{
		AppSessionID:       "sess-1",
		Status:             "open",
		ParticipantWallets: []string{"alice", "bob", "carol"},
		Weights:            []int64{50, 30, 20},
		Quorum:             60,
		Version:            1,
	}
	allocations := []rpc.AppAllocation{
		{Participant: "alice", AssetSymbol: "usdc", Amount: decimal.NewFromInt(100)},
	}

	session := c.mirror(remote, allocations)

	assert.Equal(t, "sess-1", session.AppSessionID)
	assert.Equal(t, ParticipantActive, session.Participants["alice"].Status)
	assert.Equal(t, ParticipantInvited, session.Participants["bob"].Status)
	assert.Equal(t, ParticipantInvited, session.Participants["carol"].Status)
	assert.True(t, session.Participants["alice"].Balance["usdc"].Equal(decimal.NewFromInt(100)))
	assert.True(t, session.Participants["bob"].Balance["usdc"].IsZero())
}

func TestNextVersion(t *testing.T) {
	s := &Session{Version: 4}
	assert.EqualValues(t, 5, s.nextVersion())
}

func TestProjectedAllocations_PreservesOthersAddsDelta(t *testing.T) {
	c := newController()
	session := &Session{
		Participants: map[string]*Participant{
			"alice": {Address: "alice", Balance: map[string]decimal.Decimal{"usdc": decimal.NewFromInt(100)}},
			"bob":   {Address: "bob", Balance: map[string]decimal.Decimal{"usdc": decimal.NewFromInt(50)}},
		},
	}

	out := c.projectedAllocations(session, "alice", "usdc", decimal.NewFromInt(25), true)

	byAddr := map[string]decimal.Decimal{}
	for _, a := range out {
		byAddr[a.Participant] = a.Amount
	}
	assert.True(t, byAddr["alice"].Equal(decimal.NewFromInt(125)))
	assert.True(t, byAddr["bob"].Equal(decimal.NewFromInt(50)))
}

func TestTransferAllocations_MovesBalanceBetweenParticipants(t *testing.T) {
	c := newController()
	session := &Session{
		Participants: map[string]*Participant{
			"alice": {Address: "alice", Balance: map[string]decimal.Decimal{"usdc": decimal.NewFromInt(100)}},
			"bob":   {Address: "bob", Balance: map[string]decimal.Decimal{"usdc": decimal.NewFromInt(10)}},
		},
	}

	out := c.transferAllocations(session, "alice", "bob", "usdc", decimal.NewFromInt(40))

	byAddr := map[string]decimal.Decimal{}
	for _, a := range out {
		byAddr[a.Participant] = a.Amount
	}
	assert.True(t, byAddr["alice"].Equal(decimal.NewFromInt(60)))
	assert.True(t, byAddr["bob"].Equal(decimal.NewFromInt(50)))
}

func TestGet_UnknownSessionReturnsNotFound(t *testing.T) {
	c := newController()
	_, err := c.get("missing")
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
}

func TestGet_ReturnsStoredSession(t *testing.T) {
	c := newController()
	c.sessions["sess-1"] = &Session{AppSessionID: "sess-1"}
	s, err := c.get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", s.AppSessionID)
}
