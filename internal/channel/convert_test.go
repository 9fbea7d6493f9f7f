package channel

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderrahul01/tempwallets/pkg/rpc"
)

func TestToOnChainChannel(t *testing.T) {
	op := rpc.ChannelOperationResponse{
		ChannelID: "0xabc",
		Channel: &struct {
			Participants [2]string `json:"participants"`
			Adjudicator  string    `json:"adjudicator"`
			Challenge    uint64    `json:"challenge"`
			Nonce        uint64    `json:"nonce"`
		}{
			Participants: [2]string{
				"0x1111111111111111111111111111111111111111",
				"0x2222222222222222222222222222222222222222",
			},
			Adjudicator: "0x3333333333333333333333333333333333333333",
			Challenge:   3600,
			Nonce:       42,
		},
	}

	ch, err := toOnChainChannel(op)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), ch.Participants[0])
	assert.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), ch.Participants[1])
	assert.Equal(t, common.HexToAddress("0x3333333333333333333333333333333333333333"), ch.Adjudicator)
	assert.EqualValues(t, 3600, ch.Challenge)
	assert.EqualValues(t, 42, ch.Nonce)
}

func TestToOnChainChannel_MissingTuple(t *testing.T) {
	_, err := toOnChainChannel(rpc.ChannelOperationResponse{ChannelID: "0xabc"})
	require.Error(t, err)
}

func TestToOnChainState(t *testing.T) {
	s := rpc.UnsignedState{
		Intent:  rpc.StateIntentResize,
		Version: 7,
		Data:    "0x0102",
		Allocations: []rpc.StateAllocation{
			{Participant: "0x1111111111111111111111111111111111111111", TokenAddress: "0x4444444444444444444444444444444444444444", RawAmount: decimal.NewFromInt(100)},
			{Participant: "0x2222222222222222222222222222222222222222", TokenAddress: "0x4444444444444444444444444444444444444444", RawAmount: decimal.Zero},
		},
	}

	state, err := toOnChainState(s)
	require.NoError(t, err)
	assert.EqualValues(t, 2, state.Intent)
	assert.EqualValues(t, 7, state.Version.Uint64())
	assert.Equal(t, []byte{0x01, 0x02}, state.Data)
	require.Len(t, state.Allocations, 2)
	assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), state.Allocations[0].Destination)
	assert.EqualValues(t, 100, state.Allocations[0].Amount.Int64())
	assert.EqualValues(t, 0, state.Allocations[1].Amount.Int64())
}

func TestToOnChainState_EmptyData(t *testing.T) {
	s := rpc.UnsignedState{Intent: rpc.StateIntentOperate, Version: 1}
	state, err := toOnChainState(s)
	require.NoError(t, err)
	assert.Nil(t, state.Data)
}
