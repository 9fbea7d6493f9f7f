package channel

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/coderrahul01/tempwallets/internal/errs"
	"github.com/coderrahul01/tempwallets/pkg/nitrolite"
	"github.com/coderrahul01/tempwallets/pkg/rpc"
)

// toOnChainChannel converts the clearing node's echoed channel tuple into
// the on-chain Channel struct the custody contract bindings expect.
func toOnChainChannel(op rpc.ChannelOperationResponse) (nitrolite.Channel, error) {
	if op.Channel == nil {
		return nitrolite.Channel{}, errs.New(errs.Internal, "server response missing channel tuple")
	}
	return nitrolite.Channel{
		Participants: []common.Address{
			common.HexToAddress(op.Channel.Participants[0]),
			common.HexToAddress(op.Channel.Participants[1]),
		},
		Adjudicator: common.HexToAddress(op.Channel.Adjudicator),
		Challenge:   op.Channel.Challenge,
		Nonce:       op.Channel.Nonce,
	}, nil
}

// toOnChainState converts the clearing node's unsigned state into the
// on-chain State struct, leaving Sigs for the caller to fill in with
// [userSig, serverSig].
func toOnChainState(s rpc.UnsignedState) (nitrolite.State, error) {
	allocations := make([]nitrolite.Allocation, len(s.Allocations))
	for i, a := range s.Allocations {
		amount := a.RawAmount.BigInt()
		allocations[i] = nitrolite.Allocation{
			Destination: common.HexToAddress(a.Participant),
			Token:       common.HexToAddress(a.TokenAddress),
			Amount:      amount,
		}
	}

	var data []byte
	if s.Data != "" {
		data = common.FromHex(s.Data)
	}

	return nitrolite.State{
		Intent:      uint8(s.Intent),
		Version:     new(big.Int).SetUint64(s.Version),
		Data:        data,
		Allocations: allocations,
	}, nil
}
