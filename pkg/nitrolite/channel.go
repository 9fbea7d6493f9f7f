package nitrolite

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ChannelID computes the deterministic channel identifier from the
// immutable channel tuple: keccak256(encode(participants, adjudicator,
// challenge, nonce)). Two channels opened with the same tuple always
// produce the same id, chain included; the contract's own chain
// separation comes from deploy address, not from mixing chainID into
// this hash.
func ChannelID(ch Channel) (common.Hash, error) {
	participantsType, err := abi.NewType("address[]", "", nil)
	if err != nil {
		return common.Hash{}, err
	}
	uint64Type, err := abi.NewType("uint64", "", nil)
	if err != nil {
		return common.Hash{}, err
	}

	args := abi.Arguments{
		{Type: participantsType},
		{Type: abi.Type{T: abi.AddressTy}},
		{Type: uint64Type},
		{Type: uint64Type},
	}

	packed, err := args.Pack(ch.Participants, ch.Adjudicator, ch.Challenge, ch.Nonce)
	if err != nil {
		return common.Hash{}, err
	}

	return crypto.Keccak256Hash(packed), nil
}
