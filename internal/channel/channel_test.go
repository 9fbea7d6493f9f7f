package channel

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderrahul01/tempwallets/pkg/nitrolite"
	"github.com/coderrahul01/tempwallets/pkg/sign"
)

func testWallet(t *testing.T) sign.Signer {
	t.Helper()
	s, err := sign.NewEthereumSigner("0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690")
	require.NoError(t, err)
	return s
}

func TestBuildInitialState_ZeroDeposit(t *testing.T) {
	wallet := testWallet(t)
	broker := common.HexToAddress("0x2222222222222222222222222222222222222222")
	ch := nitrolite.Channel{Participants: []common.Address{common.HexToAddress(wallet.PublicKey().Address().String()), broker}}

	state, err := buildInitialState(ch, wallet, "0x4444444444444444444444444444444444444444", decimal.Zero)
	require.NoError(t, err)

	assert.EqualValues(t, nitrolite.IntentINITIALIZE, state.Intent)
	assert.EqualValues(t, 0, state.Version.Int64())
	require.Len(t, state.Allocations, 2)
	assert.EqualValues(t, 0, state.Allocations[0].Amount.Int64())
	assert.EqualValues(t, 0, state.Allocations[1].Amount.Int64())
	assert.Equal(t, broker, state.Allocations[1].Destination)
}

func TestBuildInitialState_NonZeroDeposit(t *testing.T) {
	wallet := testWallet(t)
	broker := common.HexToAddress("0x2222222222222222222222222222222222222222")
	ch := nitrolite.Channel{Participants: []common.Address{common.HexToAddress(wallet.PublicKey().Address().String()), broker}}

	state, err := buildInitialState(ch, wallet, "0x4444444444444444444444444444444444444444", decimal.NewFromInt(500))
	require.NoError(t, err)

	require.Len(t, state.Allocations, 2)
	assert.EqualValues(t, 500, state.Allocations[0].Amount.Int64())
	assert.EqualValues(t, 0, state.Allocations[1].Amount.Int64())
}

func TestChannelID_DeterministicAndTupleSensitive(t *testing.T) {
	ch := nitrolite.Channel{
		Participants: []common.Address{
			common.HexToAddress("0x1111111111111111111111111111111111111111"),
			common.HexToAddress("0x2222222222222222222222222222222222222222"),
		},
		Adjudicator: common.HexToAddress("0x3333333333333333333333333333333333333333"),
		Challenge:   3600,
		Nonce:       1,
	}

	id1, err := nitrolite.ChannelID(ch)
	require.NoError(t, err)
	id2, err := nitrolite.ChannelID(ch)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	ch.Nonce = 2
	id3, err := nitrolite.ChannelID(ch)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)
}

func TestVerifyBrokerSignature_AcceptsGenuineBrokerSignature(t *testing.T) {
	brokerKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	broker := crypto.PubkeyToAddress(brokerKey.PublicKey)

	channelID := common.HexToHash("0xaaaa")
	state := nitrolite.State{
		Intent:      uint8(nitrolite.IntentINITIALIZE),
		Version:     big.NewInt(0),
		Data:        []byte{},
		Allocations: []nitrolite.Allocation{},
	}

	packed, err := nitrolite.PackState(channelID, state)
	require.NoError(t, err)
	hash := crypto.Keccak256Hash(packed)
	sig, err := crypto.Sign(hash.Bytes(), brokerKey)
	require.NoError(t, err)
	if sig[64] < 27 {
		sig[64] += 27
	}

	require.NoError(t, verifyBrokerSignature(channelID, state, sig, broker))
}

func TestVerifyBrokerSignature_RejectsSignatureFromAnotherKey(t *testing.T) {
	brokerKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	broker := crypto.PubkeyToAddress(brokerKey.PublicKey)

	impostorKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	channelID := common.HexToHash("0xaaaa")
	state := nitrolite.State{Intent: uint8(nitrolite.IntentINITIALIZE), Version: big.NewInt(0), Data: []byte{}, Allocations: []nitrolite.Allocation{}}

	packed, err := nitrolite.PackState(channelID, state)
	require.NoError(t, err)
	hash := crypto.Keccak256Hash(packed)
	sig, err := crypto.Sign(hash.Bytes(), impostorKey)
	require.NoError(t, err)
	if sig[64] < 27 {
		sig[64] += 27
	}

	err = verifyBrokerSignature(channelID, state, sig, broker)
	require.Error(t, err)
}
