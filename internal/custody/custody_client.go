// Package custody is the one concrete implementation this module ships for
// the on-chain transaction submitter named out of scope in the channel
// controller's design: an interface only, with the actual signing node and
// RPC endpoint left to the caller. CustodyClient satisfies channel.Submitter
// against the real Custody contract bindings in pkg/nitrolite.
package custody

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/coderrahul01/tempwallets/pkg/nitrolite"
	"github.com/coderrahul01/tempwallets/pkg/sign"
)

const minCustodyChallengePeriod = 3600

// TxReceipt is the partial-outcome-aware result of an on-chain submission:
// the off-chain negotiation that produced state/sigs is assumed to have
// already succeeded by the time any of these calls run.
type TxReceipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	Success     bool
}

// CustodyClient dials a fresh ethclient per call, scoped to one chain's RPC
// endpoint; it keeps no long-lived connection state of its own.
type CustodyClient struct {
	chainRPC       string
	custodyAddress common.Address
}

func NewCustodyClient(chainRPC string, custodyAddress common.Address) *CustodyClient {
	return &CustodyClient{chainRPC: chainRPC, custodyAddress: custodyAddress}
}

func (c *CustodyClient) dial(ctx context.Context) (*ethclient.Client, *nitrolite.Custody, error) {
	client, err := ethclient.DialContext(ctx, c.chainRPC)
	if err != nil {
		return nil, nil, fmt.Errorf("dial chain rpc: %w", err)
	}
	custody, err := nitrolite.NewCustody(c.custodyAddress, client)
	if err != nil {
		return nil, nil, fmt.Errorf("bind custody contract: %w", err)
	}
	return client, custody, nil
}

// Create submits the INITIALIZE state produced by the off-chain negotiation
// phase. userSig/brokerSig must be supplied in that order, matching the
// invariant that on-chain submission always uses exactly the two signatures
// the clearing node returned, [user, server].
func (c *CustodyClient) Create(ctx context.Context, wallet sign.Signer, chainID uint32, ch nitrolite.Channel, state nitrolite.State) (TxReceipt, error) {
	if ch.Challenge != 0 && ch.Challenge < minCustodyChallengePeriod {
		return TxReceipt{}, fmt.Errorf("challenge period must be at least %d seconds", minCustodyChallengePeriod)
	}

	client, custody, err := c.dial(ctx)
	if err != nil {
		return TxReceipt{}, err
	}

	txOpts, err := c.txOpts(ctx, client, wallet, chainID)
	if err != nil {
		return TxReceipt{}, err
	}

	tx, err := custody.Create(txOpts, ch, state)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("submit create: %w", err)
	}
	return c.awaitReceipt(ctx, client, tx)
}

// Resize submits a RESIZE state. proofs is the last valid on-chain state,
// fetched via GetChannelData, required by the contract to validate the
// version bump.
func (c *CustodyClient) Resize(ctx context.Context, wallet sign.Signer, chainID uint32, channelID common.Hash, state nitrolite.State, proofs []nitrolite.State) (TxReceipt, error) {
	client, custody, err := c.dial(ctx)
	if err != nil {
		return TxReceipt{}, err
	}

	txOpts, err := c.txOpts(ctx, client, wallet, chainID)
	if err != nil {
		return TxReceipt{}, err
	}

	tx, err := custody.Resize(txOpts, channelID, state, proofs)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("submit resize: %w", err)
	}
	return c.awaitReceipt(ctx, client, tx)
}

// Close submits the final FINALIZE state.
func (c *CustodyClient) Close(ctx context.Context, wallet sign.Signer, chainID uint32, channelID common.Hash, state nitrolite.State) (TxReceipt, error) {
	client, custody, err := c.dial(ctx)
	if err != nil {
		return TxReceipt{}, err
	}

	txOpts, err := c.txOpts(ctx, client, wallet, chainID)
	if err != nil {
		return TxReceipt{}, err
	}

	tx, err := custody.Close(txOpts, channelID, state, nil)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("submit close: %w", err)
	}
	return c.awaitReceipt(ctx, client, tx)
}

// LastValidState fetches the channel's last confirmed state, used by the
// channel controller to build the proofs argument for Resize.
func (c *CustodyClient) LastValidState(ctx context.Context, channelID common.Hash) (nitrolite.State, error) {
	_, custody, err := c.dial(ctx)
	if err != nil {
		return nitrolite.State{}, err
	}
	data, err := custody.GetChannelData(&bind.CallOpts{Context: ctx}, channelID)
	if err != nil {
		return nitrolite.State{}, fmt.Errorf("get channel data: %w", err)
	}
	return data.LastValidState, nil
}

func (c *CustodyClient) GetLedgerBalance(ctx context.Context, walletAddress, tokenAddress common.Address) (*big.Int, error) {
	_, custody, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	balances, err := custody.GetAccountsBalances(&bind.CallOpts{Context: ctx}, []common.Address{walletAddress}, []common.Address{tokenAddress})
	if err != nil {
		return nil, fmt.Errorf("get account balances: %w", err)
	}
	if len(balances) == 0 || len(balances[0]) == 0 {
		return nil, fmt.Errorf("no balances found for wallet %s on custody %s", walletAddress.Hex(), c.custodyAddress.Hex())
	}
	return balances[0][0], nil
}

func (c *CustodyClient) GetChannelBalance(ctx context.Context, channelID common.Hash, tokenAddress common.Address) (*big.Int, error) {
	_, custody, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	balances, err := custody.GetChannelBalances(&bind.CallOpts{Context: ctx}, channelID, []common.Address{tokenAddress})
	if err != nil {
		return nil, fmt.Errorf("get channel balances: %w", err)
	}
	if len(balances) == 0 {
		return nil, fmt.Errorf("no balances found for channel %s on custody %s", channelID.Hex(), c.custodyAddress.Hex())
	}
	return balances[0], nil
}

func (c *CustodyClient) txOpts(ctx context.Context, client *ethclient.Client, wallet sign.Signer, chainID uint32) (*bind.TransactOpts, error) {
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}
	opts := signerTxOpts(wallet, chainID)
	opts.Context = ctx
	opts.GasPrice = gasPrice
	return opts, nil
}

func (c *CustodyClient) awaitReceipt(ctx context.Context, client *ethclient.Client, tx *types.Transaction) (TxReceipt, error) {
	receipt, err := bind.WaitMined(ctx, client, tx.Hash())
	if err != nil {
		return TxReceipt{}, fmt.Errorf("await receipt: %w", err)
	}
	out := TxReceipt{
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
		Success:     receipt.Status == types.ReceiptStatusSuccessful,
	}
	if !out.Success {
		return out, fmt.Errorf("transaction %s reverted", receipt.TxHash.Hex())
	}
	return out, nil
}

func signerTxOpts(signer sign.Signer, chainID uint32) *bind.TransactOpts {
	bigChainID := big.NewInt(int64(chainID))
	signingMethod := types.LatestSignerForChainID(bigChainID)
	signerAddress := common.HexToAddress(signer.PublicKey().Address().String())
	signerFn := func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
		if address != signerAddress {
			return nil, bind.ErrNotAuthorized
		}

		hash := signingMethod.Hash(tx).Bytes()
		sig, err := signer.Sign(hash)
		if err != nil {
			return nil, err
		}
		if sig[64] >= 27 {
			sig[64] -= 27
		}
		return tx.WithSignature(signingMethod, sig)
	}

	return &bind.TransactOpts{
		From:   signerAddress,
		Signer: signerFn,
	}
}

// PackAndSign hashes the packed state the way the custody contract expects
// signatures over, and signs it with signer. Callers supply this to produce
// the userSig half of a create/resize/close call.
func PackAndSign(channelID common.Hash, state nitrolite.State, signer sign.Signer) (sign.Signature, error) {
	packed, err := nitrolite.PackState(channelID, state)
	if err != nil {
		return nil, fmt.Errorf("pack state: %w", err)
	}
	hash := crypto.Keccak256Hash(packed)
	return signer.Sign(hash.Bytes())
}
