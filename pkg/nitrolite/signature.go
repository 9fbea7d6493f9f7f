// Package nitrolite wraps the on-chain custody contract: generated ABI
// bindings, state packing/hashing, and the broker-signature verification
// a channel controller needs before trusting a co-signed state.
package nitrolite

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signature is a 65-byte recoverable ECDSA signature in the [R || S || V]
// layout the custody contract's ecrecover expects.
type Signature []byte

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(hexutil.Encode(s))
}

func (s *Signature) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return err
	}
	decoded, err := hexutil.Decode(hexStr)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

func (s Signature) String() string {
	return hexutil.Encode(s)
}

// Verify checks if the signature on the provided data was created by the given address.
func Verify(data []byte, sig Signature, address common.Address) (bool, error) {
	dataHash := crypto.Keccak256Hash(data)

	// Create a copy of the signature to avoid modifying the original
	sigToVerify := make(Signature, len(sig))
	copy(sigToVerify, sig)

	// Ensure the signature is in the correct format
	if sigToVerify[64] >= 27 {
		sigToVerify[64] -= 27
	}

	pubKeyRaw, err := crypto.Ecrecover(dataHash.Bytes(), sigToVerify)
	if err != nil {
		return false, fmt.Errorf("failed to recover public key: %w", err)
	}

	pubKey, err := crypto.UnmarshalPubkey(pubKeyRaw)
	if err != nil {
		return false, fmt.Errorf("failed to unmarshal public key: %w", err)
	}

	recoveredAddr := crypto.PubkeyToAddress(*pubKey)
	return recoveredAddr == address, nil
}
