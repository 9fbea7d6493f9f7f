package aggregator

import (
	"context"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderrahul01/tempwallets/internal/errs"
	"github.com/coderrahul01/tempwallets/internal/indexer"
	"github.com/coderrahul01/tempwallets/pkg/log"
)

// fullSigner implements every optional capability interface on top of the
// minimal Signer, used to exercise the layered resolvers' first-hit path.
type fullSigner struct {
	*minimalSigner
	tokenBalance    *big.Int
	tokenBalanceErr error
	decimals        int
	decimalsErr     error
	balanceOf       *big.Int
	balanceOfErr    error
	sentTo          string
	sendErr         error
	sentToken       string
	sendTokenErr    error
}

func newFullSigner() *fullSigner {
	return &fullSigner{minimalSigner: newMinimalSigner()}
}

func (s *fullSigner) GetTokenBalance(_ context.Context, _ string, _ ChainFamily, _ string) (*big.Int, error) {
	if s.tokenBalanceErr != nil {
		return nil, s.tokenBalanceErr
	}
	return s.tokenBalance, nil
}

func (s *fullSigner) TokenDecimals(_ context.Context, _ string, _ ChainFamily, _ string) (int, error) {
	if s.decimalsErr != nil {
		return 0, s.decimalsErr
	}
	return s.decimals, nil
}

func (s *fullSigner) TokenBalanceOf(_ context.Context, _ string, _ ChainFamily, _, _ string) (*big.Int, error) {
	if s.balanceOfErr != nil {
		return nil, s.balanceOfErr
	}
	return s.balanceOf, nil
}

func (s *fullSigner) Send(_ context.Context, _ string, _ ChainFamily, recipient string, _ *big.Int) (string, error) {
	if s.sendErr != nil {
		return "", s.sendErr
	}
	s.sentTo = recipient
	return "0xtxhash", nil
}

func (s *fullSigner) SendToken(_ context.Context, _ string, _ ChainFamily, token, recipient string, _ *big.Int) (string, error) {
	if s.sendTokenErr != nil {
		return "", s.sendTokenErr
	}
	s.sentToken = recipient
	return "0xtokentxhash", nil
}

var (
	_ TokenBalancer = (*fullSigner)(nil)
	_ ChainProvider = (*fullSigner)(nil)
	_ NativeSender  = (*fullSigner)(nil)
	_ TokenSender   = (*fullSigner)(nil)
)

func TestToSmallestUnits_TruncatesNotRounds(t *testing.T) {
	amount := decimal.RequireFromString("1.23456789")
	got := toSmallestUnits(amount, 6)
	assert.Equal(t, "1234567", got.String())
}

func TestToSmallestUnits_WholeNumber(t *testing.T) {
	amount := decimal.RequireFromString("5")
	got := toSmallestUnits(amount, 18)
	assert.Equal(t, "5000000000000000000", got.String())
}

func TestResolveDecimals_NativeUsesTable(t *testing.T) {
	c := New(newMinimalSigner(), testIndexerNoServer(t), log.NewNoopLogger())
	d, err := c.resolveDecimals(t.Context(), "user-1", ChainTron, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, d)
}

func TestResolveDecimals_ProviderWins(t *testing.T) {
	signer := newFullSigner()
	signer.decimals = 9
	c := New(signer, testIndexerNoServer(t), log.NewNoopLogger())

	token := "0xtoken"
	d, err := c.resolveDecimals(t.Context(), "user-1", ChainEthereum, &token)
	require.NoError(t, err)
	assert.Equal(t, 9, d)
}

func TestResolveDecimals_FallsBackToEighteenWhenAllSourcesFail(t *testing.T) {
	signer := newFullSigner()
	signer.decimalsErr = assertErr("rpc down")
	c := New(signer, testIndexerNoServer(t), log.NewNoopLogger())

	token := "0xtoken"
	d, err := c.resolveDecimals(t.Context(), "user-1", ChainEthereum, &token)
	require.NoError(t, err)
	assert.Equal(t, 18, d)
}

func TestPrecheckBalance_InsufficientFailsWithPreconditionFailed(t *testing.T) {
	signer := newMinimalSigner()
	signer.balance = big.NewInt(10)
	c := New(signer, testIndexerNoServer(t), log.NewNoopLogger())

	err := c.precheckBalance(t.Context(), "user-1", ChainEthereum, nil, big.NewInt(100))
	require.Error(t, err)
	assert.Equal(t, errs.PreconditionFailed, errs.KindOf(err))
}

func TestPrecheckBalance_SufficientPasses(t *testing.T) {
	signer := newMinimalSigner()
	signer.balance = big.NewInt(1000)
	c := New(signer, testIndexerNoServer(t), log.NewNoopLogger())

	err := c.precheckBalance(t.Context(), "user-1", ChainEthereum, nil, big.NewInt(100))
	assert.NoError(t, err)
}

func TestPrecheckBalance_UnknownAvailabilityAllowsProceed(t *testing.T) {
	signer := newMinimalSigner()
	signer.balanceErr = assertErr("unreachable")
	c := New(signer, testIndexerNoServer(t), log.NewNoopLogger())

	err := c.precheckBalance(t.Context(), "user-1", ChainEthereum, nil, big.NewInt(100))
	assert.NoError(t, err, "every source failing must be treated as unknown availability, not insufficient")
}

func TestDispatchTransfer_NativeRequiresCapability(t *testing.T) {
	c := New(newMinimalSigner(), testIndexerNoServer(t), log.NewNoopLogger())
	_, err := c.dispatchTransfer(t.Context(), "user-1", ChainEthereum, "0xrecipient", nil, big.NewInt(1))
	require.Error(t, err)
	assert.Equal(t, errs.Internal, errs.KindOf(err))
}

func TestDispatchTransfer_NativeUsesSenderCapability(t *testing.T) {
	signer := newFullSigner()
	c := New(signer, testIndexerNoServer(t), log.NewNoopLogger())

	txHash, err := c.dispatchTransfer(t.Context(), "user-1", ChainEthereum, "0xrecipient", nil, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, "0xtxhash", txHash)
	assert.Equal(t, "0xrecipient", signer.sentTo)
}

func TestDispatchTransfer_TokenRequiresCapability(t *testing.T) {
	token := "0xtoken"
	c := New(newMinimalSigner(), testIndexerNoServer(t), log.NewNoopLogger())
	_, err := c.dispatchTransfer(t.Context(), "user-1", ChainEthereum, "0xrecipient", &token, big.NewInt(1))
	require.Error(t, err)
	assert.Equal(t, errs.Internal, errs.KindOf(err))
}

func TestDispatchTransfer_TokenUsesSenderCapability(t *testing.T) {
	token := "0xtoken"
	signer := newFullSigner()
	c := New(signer, testIndexerNoServer(t), log.NewNoopLogger())

	txHash, err := c.dispatchTransfer(t.Context(), "user-1", ChainEthereum, "0xrecipient", &token, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, "0xtokentxhash", txHash)
	assert.Equal(t, "0xrecipient", signer.sentToken)
}

func TestSendCrypto_RejectsEmptyRecipient(t *testing.T) {
	c := New(newMinimalSigner(), testIndexerNoServer(t), log.NewNoopLogger())
	_, err := c.SendCrypto(t.Context(), "user-1", ChainEthereum, "", "1.0", nil)
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.KindOf(err))
}

func TestSendCrypto_RejectsNonPositiveAmount(t *testing.T) {
	c := New(newMinimalSigner(), testIndexerNoServer(t), log.NewNoopLogger())
	_, err := c.SendCrypto(t.Context(), "user-1", ChainEthereum, "0xrecipient", "0", nil)
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.KindOf(err))
}

func TestSendCrypto_RejectsUnparsableAmount(t *testing.T) {
	c := New(newMinimalSigner(), testIndexerNoServer(t), log.NewNoopLogger())
	_, err := c.SendCrypto(t.Context(), "user-1", ChainEthereum, "0xrecipient", "not-a-number", nil)
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.KindOf(err))
}

func TestSendCrypto_HappyPathNative(t *testing.T) {
	signer := newFullSigner()
	signer.balance, _ = new(big.Int).SetString("10000000000000000000", 10)
	c := New(signer, testIndexerNoServer(t), log.NewNoopLogger())

	res, err := c.SendCrypto(t.Context(), "user-1", ChainEthereum, "0xrecipient", "1.5", nil)
	require.NoError(t, err)
	assert.Equal(t, "0xtxhash", res.TxHash)
}

func testIndexerNoServer(t *testing.T) *indexer.Client {
	t.Helper()
	return indexer.New("http://127.0.0.1:0", "key", log.NewNoopLogger(), nil)
}
