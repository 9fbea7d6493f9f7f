// Package channel implements the two-party payment channel controller: an
// off-chain negotiation with the clearing node followed by an on-chain
// submission through a caller-supplied Submitter. The transaction submitter
// and the RPC node it talks to are an external collaborator — this package
// depends only on the Submitter interface, never on a specific chain client.
package channel

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/coderrahul01/tempwallets/internal/auth"
	"github.com/coderrahul01/tempwallets/internal/custody"
	"github.com/coderrahul01/tempwallets/internal/errs"
	"github.com/coderrahul01/tempwallets/pkg/nitrolite"
	"github.com/coderrahul01/tempwallets/pkg/rpc"
	"github.com/coderrahul01/tempwallets/pkg/sign"
)

// Outcome distinguishes a fully successful two-phase operation from one
// where the off-chain negotiation succeeded but the on-chain submission did
// not, so operational tooling can reconcile without heuristics.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeOffChainFailed
	OutcomeOnChainFailed
)

// Submitter is the on-chain transaction submitter this controller depends
// on as an interface only. internal/custody.CustodyClient is the one
// concrete implementation this module ships; any other chain client
// satisfying this shape works too.
type Submitter interface {
	Create(ctx context.Context, wallet sign.Signer, chainID uint32, ch nitrolite.Channel, state nitrolite.State) (custody.TxReceipt, error)
	Resize(ctx context.Context, wallet sign.Signer, chainID uint32, channelID common.Hash, state nitrolite.State, proofs []nitrolite.State) (custody.TxReceipt, error)
	Close(ctx context.Context, wallet sign.Signer, chainID uint32, channelID common.Hash, state nitrolite.State) (custody.TxReceipt, error)
	LastValidState(ctx context.Context, channelID common.Hash) (nitrolite.State, error)
}

// Result is the structured, partial-outcome-aware return value of every
// operation here.
type Result struct {
	ChannelID string
	ChainID   uint32
	State     nitrolite.State
	Status    rpc.ChannelStatus
	Outcome   Outcome
	Receipt   custody.TxReceipt
}

// Controller drives createChannel/resizeChannel/closeChannel. It holds no
// long-lived state beyond the dependencies needed for one in-flight call.
type Controller struct {
	client    *rpc.Client
	auth      *auth.SessionAuth
	submitter Submitter
}

func New(client *rpc.Client, a *auth.SessionAuth, submitter Submitter) *Controller {
	return &Controller{client: client, auth: a, submitter: submitter}
}

func (c *Controller) signedRequest(method rpc.Method, params any) (*rpc.Request, error) {
	if err := c.auth.RequireAuth(method); err != nil {
		return nil, err
	}
	payload, err := c.client.PreparePayload(method, params)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidArgument, "prepare request", err)
	}
	req, err := c.auth.SignRequest(payload)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// CreateChannel runs the two-phase create: off-chain create_channel, local
// channelId verification, then on-chain create() via the submitter.
func (c *Controller) CreateChannel(ctx context.Context, wallet sign.Signer, chainID uint32, token string, initialDeposit decimal.Decimal) (Result, error) {
	sessionKey := c.auth.SessionKeyAddress()
	req, err := c.signedRequest(rpc.CreateChannelMethod, rpc.CreateChannelRequest{
		ChainID:    chainID,
		Token:      token,
		SessionKey: &sessionKey,
	})
	if err != nil {
		return Result{}, err
	}

	res, _, err := c.client.CreateChannel(ctx, req)
	if err != nil {
		return Result{}, errs.Wrap(errs.Unavailable, "off-chain create_channel failed", err)
	}

	onChainCh, err := toOnChainChannel(rpc.ChannelOperationResponse(res))
	if err != nil {
		return Result{}, errs.Wrap(errs.Internal, "decode channel tuple", err)
	}

	computedID, err := nitrolite.ChannelID(onChainCh)
	if err != nil {
		return Result{}, errs.Wrap(errs.Internal, "compute channel id", err)
	}
	if computedID.Hex() != res.ChannelID {
		return Result{}, errs.New(errs.PreconditionFailed, "server-echoed channel id does not match locally computed id")
	}

	state, err := buildInitialState(onChainCh, wallet, token, initialDeposit)
	if err != nil {
		return Result{}, errs.Wrap(errs.Internal, "build initial state", err)
	}

	userSig, err := custody.PackAndSign(computedID, state, wallet)
	if err != nil {
		return Result{}, errs.Wrap(errs.Internal, "sign initial state", err)
	}
	if err := verifyBrokerSignature(computedID, state, res.StateSignature, onChainCh.Participants[1]); err != nil {
		return Result{}, err
	}
	state.Sigs = [][]byte{userSig, res.StateSignature}

	receipt, err := c.submitter.Create(ctx, wallet, chainID, onChainCh, state)
	if err != nil {
		return Result{ChannelID: res.ChannelID, ChainID: chainID, State: state, Outcome: OutcomeOnChainFailed}, errs.Wrap(errs.Unavailable, "on-chain create failed after off-chain negotiation succeeded", err)
	}

	return Result{
		ChannelID: res.ChannelID,
		ChainID:   chainID,
		State:     state,
		Status:    rpc.ChannelStatusOpen,
		Outcome:   OutcomeSuccess,
		Receipt:   receipt,
	}, nil
}

// ResizeChannel runs off-chain resize_channel followed by on-chain resize().
func (c *Controller) ResizeChannel(ctx context.Context, wallet sign.Signer, chainID uint32, channelID string, allocateAmount, resizeAmount *decimal.Decimal, fundsDestination string) (Result, error) {
	req, err := c.signedRequest(rpc.ResizeChannelMethod, rpc.ResizeChannelRequest{
		ChannelID:        channelID,
		AllocateAmount:   allocateAmount,
		ResizeAmount:     resizeAmount,
		FundsDestination: fundsDestination,
	})
	if err != nil {
		return Result{}, err
	}

	res, _, err := c.client.ResizeChannel(ctx, req)
	if err != nil {
		return Result{}, errs.Wrap(errs.Unavailable, "off-chain resize_channel failed", err)
	}

	id := common.HexToHash(res.ChannelID)
	state, err := toOnChainState(res.State)
	if err != nil {
		return Result{}, errs.Wrap(errs.Internal, "decode resized state", err)
	}

	userSig, err := custody.PackAndSign(id, state, wallet)
	if err != nil {
		return Result{}, errs.Wrap(errs.Internal, "sign resized state", err)
	}
	state.Sigs = [][]byte{userSig, res.StateSignature}

	proof, err := c.submitter.LastValidState(ctx, id)
	if err != nil {
		return Result{}, errs.Wrap(errs.Unavailable, "fetch last valid state", err)
	}

	receipt, err := c.submitter.Resize(ctx, wallet, chainID, id, state, []nitrolite.State{proof})
	if err != nil {
		return Result{ChannelID: res.ChannelID, ChainID: chainID, State: state, Outcome: OutcomeOnChainFailed}, errs.Wrap(errs.Unavailable, "on-chain resize failed after off-chain negotiation succeeded", err)
	}

	return Result{
		ChannelID: res.ChannelID,
		ChainID:   chainID,
		State:     state,
		Status:    rpc.ChannelStatusOpen,
		Outcome:   OutcomeSuccess,
		Receipt:   receipt,
	}, nil
}

// CloseChannel runs off-chain close_channel followed by on-chain close().
func (c *Controller) CloseChannel(ctx context.Context, wallet sign.Signer, chainID uint32, channelID, fundsDestination string) (Result, error) {
	req, err := c.signedRequest(rpc.CloseChannelMethod, rpc.CloseChannelRequest{
		ChannelID:        channelID,
		FundsDestination: fundsDestination,
	})
	if err != nil {
		return Result{}, err
	}

	res, _, err := c.client.CloseChannel(ctx, req)
	if err != nil {
		return Result{}, errs.Wrap(errs.Unavailable, "off-chain close_channel failed", err)
	}

	id := common.HexToHash(res.ChannelID)
	state, err := toOnChainState(res.State)
	if err != nil {
		return Result{}, errs.Wrap(errs.Internal, "decode final state", err)
	}

	userSig, err := custody.PackAndSign(id, state, wallet)
	if err != nil {
		return Result{}, errs.Wrap(errs.Internal, "sign final state", err)
	}
	state.Sigs = [][]byte{userSig, res.StateSignature}

	receipt, err := c.submitter.Close(ctx, wallet, chainID, id, state)
	if err != nil {
		return Result{ChannelID: res.ChannelID, ChainID: chainID, State: state, Outcome: OutcomeOnChainFailed}, errs.Wrap(errs.Unavailable, "on-chain close failed after off-chain negotiation succeeded", err)
	}

	return Result{
		ChannelID: res.ChannelID,
		ChainID:   chainID,
		State:     state,
		Status:    rpc.ChannelStatusClosed,
		Outcome:   OutcomeSuccess,
		Receipt:   receipt,
	}, nil
}

// verifyBrokerSignature confirms the broker's half of a co-signed state was
// actually produced by the channel's broker participant before the state is
// ever submitted on-chain, so a compromised or misbehaving clearing node
// cannot get this controller to co-sign a state on a party's behalf.
func verifyBrokerSignature(channelID common.Hash, state nitrolite.State, brokerSig []byte, broker common.Address) error {
	packed, err := nitrolite.PackState(channelID, state)
	if err != nil {
		return errs.Wrap(errs.Internal, "pack state for broker signature check", err)
	}
	ok, err := nitrolite.Verify(packed, nitrolite.Signature(brokerSig), broker)
	if err != nil {
		return errs.Wrap(errs.Internal, "verify broker signature", err)
	}
	if !ok {
		return errs.New(errs.PreconditionFailed, "broker signature does not match the channel's broker participant")
	}
	return nil
}

// buildInitialState constructs intent=INITIALIZE, version=0, data=0x,
// allocations=[(user, initialDeposit||0), (broker, 0)] as named in the
// create flow's invariants.
func buildInitialState(ch nitrolite.Channel, wallet sign.Signer, token string, initialDeposit decimal.Decimal) (nitrolite.State, error) {
	amount := big.NewInt(0)
	if !initialDeposit.IsZero() {
		amount = initialDeposit.BigInt()
	}

	userAddr := common.HexToAddress(wallet.PublicKey().Address().String())
	tokenAddr := common.HexToAddress(token)

	return nitrolite.State{
		Intent:  uint8(nitrolite.IntentINITIALIZE),
		Version: big.NewInt(0),
		Data:    []byte{},
		Allocations: []nitrolite.Allocation{
			{Destination: userAddr, Token: tokenAddr, Amount: amount},
			{Destination: ch.Participants[1], Token: tokenAddr, Amount: big.NewInt(0)},
		},
	}, nil
}
