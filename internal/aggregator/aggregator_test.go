package aggregator

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderrahul01/tempwallets/internal/indexer"
	"github.com/coderrahul01/tempwallets/pkg/log"
)

// minimalSigner implements only the required Signer interface, used to
// exercise capability-probing fallbacks.
type minimalSigner struct {
	deriveErr  map[ChainFamily]error
	balance    *big.Int
	balanceErr error
	derived    map[ChainFamily]string
}

func newMinimalSigner() *minimalSigner {
	return &minimalSigner{balance: big.NewInt(0)}
}

func (s *minimalSigner) DeriveAddress(_ context.Context, userID string, chain ChainFamily) (string, error) {
	if err, ok := s.deriveErr[chain]; ok {
		return "", err
	}
	if addr, ok := s.derived[chain]; ok {
		return addr, nil
	}
	return fmt.Sprintf("%s:%s", chain, userID), nil
}

func (s *minimalSigner) GetBalance(_ context.Context, _ string, _ ChainFamily) (*big.Int, error) {
	if s.balanceErr != nil {
		return nil, s.balanceErr
	}
	return s.balance, nil
}

func newTestIndexer(t *testing.T) *indexer.Client {
	t.Helper()
	return indexer.New("http://127.0.0.1:0", "key", log.NewNoopLogger(), nil)
}

func TestAddress_CachesDerivedValue(t *testing.T) {
	signer := newMinimalSigner()
	c := New(signer, newTestIndexer(t), log.NewNoopLogger())

	addr1, err := c.address(t.Context(), "user-1", ChainEthereum)
	require.NoError(t, err)

	signer.derived = map[ChainFamily]string{ChainEthereum: "changed"}

	addr2, err := c.address(t.Context(), "user-1", ChainEthereum)
	require.NoError(t, err)
	assert.Equal(t, addr1, addr2, "second call must be served from cache")
}

func TestGetAddresses_CoversEverySupportedChain(t *testing.T) {
	c := New(newMinimalSigner(), newTestIndexer(t), log.NewNoopLogger())

	results := c.GetAddresses(t.Context(), "user-1")
	assert.Len(t, results, len(SupportedChains))

	seen := make(map[ChainFamily]bool)
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.NotEmpty(t, r.Address)
		seen[r.Chain] = true
	}
	assert.Len(t, seen, len(SupportedChains))
}

func TestGetAddresses_PerChainFailureIsolated(t *testing.T) {
	signer := newMinimalSigner()
	signer.deriveErr = map[ChainFamily]error{ChainBitcoin: assertErr("boom")}
	c := New(signer, newTestIndexer(t), log.NewNoopLogger())

	results := c.GetAddresses(t.Context(), "user-1")
	assert.Len(t, results, len(SupportedChains))

	var sawFailure, sawSuccessAfter bool
	for _, r := range results {
		if r.Chain == ChainBitcoin {
			assert.Error(t, r.Err)
			sawFailure = true
		} else {
			assert.NoError(t, r.Err)
			sawSuccessAfter = true
		}
	}
	assert.True(t, sawFailure)
	assert.True(t, sawSuccessAfter)
}

func TestPrimaryAddresses_ReturnsExactlyThreeChains(t *testing.T) {
	c := New(newMinimalSigner(), newTestIndexer(t), log.NewNoopLogger())
	primary := c.primaryAddresses(t.Context(), "user-1")

	assert.Len(t, primary, 3)
	assert.Contains(t, primary, ChainEthereum)
	assert.Contains(t, primary, ChainEthereumAA)
	assert.Contains(t, primary, ChainSolana)
}

type simpleErr string

func (e simpleErr) Error() string { return string(e) }

func assertErr(msg string) error { return simpleErr(msg) }
