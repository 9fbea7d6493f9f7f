package custody

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/coderrahul01/tempwallets/pkg/nitrolite"
	"github.com/coderrahul01/tempwallets/pkg/sign"
)

// TokenDecimals reads an ERC-20 token's decimals() with a live on-chain
// call. The aggregator does not call it directly; its decimals resolver goes
// through the signer's optional ChainProvider capability instead.
func TokenDecimals(ctx context.Context, chainRPC string, tokenAddress common.Address) (uint8, error) {
	client, err := ethclient.DialContext(ctx, chainRPC)
	if err != nil {
		return 0, fmt.Errorf("dial chain rpc: %w", err)
	}
	token, err := nitrolite.NewIERC20(tokenAddress, client)
	if err != nil {
		return 0, fmt.Errorf("bind erc20 contract: %w", err)
	}
	return token.Decimals(&bind.CallOpts{Context: ctx})
}

func GetTokenBalance(ctx context.Context, chainRPC string, tokenAddress, walletAddress common.Address) (*big.Int, error) {
	client, err := ethclient.DialContext(ctx, chainRPC)
	if err != nil {
		return nil, fmt.Errorf("dial chain rpc: %w", err)
	}
	token, err := nitrolite.NewIERC20(tokenAddress, client)
	if err != nil {
		return nil, fmt.Errorf("bind erc20 contract: %w", err)
	}
	return token.BalanceOf(&bind.CallOpts{Context: ctx}, walletAddress)
}

func ApproveAllowance(ctx context.Context, wallet sign.Signer, chainID uint32, chainRPC string, tokenAddress, spenderAddress common.Address, amount *big.Int) error {
	client, err := ethclient.DialContext(ctx, chainRPC)
	if err != nil {
		return fmt.Errorf("dial chain rpc: %w", err)
	}
	token, err := nitrolite.NewIERC20(tokenAddress, client)
	if err != nil {
		return fmt.Errorf("bind erc20 contract: %w", err)
	}

	txOpts := signerTxOpts(wallet, chainID)
	txOpts.Context = ctx
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("suggest gas price: %w", err)
	}
	txOpts.GasPrice = gasPrice

	tx, err := token.Approve(txOpts, spenderAddress, amount)
	if err != nil {
		return fmt.Errorf("submit approve: %w", err)
	}
	if _, err := bind.WaitMined(ctx, client, tx.Hash()); err != nil {
		return fmt.Errorf("await receipt: %w", err)
	}
	return nil
}

// TransferToken moves amount of an ERC-20 directly and waits for the
// receipt. The aggregator's send pipeline does not call it; token sends
// there go through the signer's optional TokenSender capability.
func TransferToken(ctx context.Context, wallet sign.Signer, chainID uint32, chainRPC string, tokenAddress, to common.Address, amount *big.Int) (TxReceipt, error) {
	client, err := ethclient.DialContext(ctx, chainRPC)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("dial chain rpc: %w", err)
	}
	token, err := nitrolite.NewIERC20(tokenAddress, client)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("bind erc20 contract: %w", err)
	}

	txOpts := signerTxOpts(wallet, chainID)
	txOpts.Context = ctx
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("suggest gas price: %w", err)
	}
	txOpts.GasPrice = gasPrice

	tx, err := token.Transfer(txOpts, to, amount)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("submit transfer: %w", err)
	}

	c := &CustodyClient{chainRPC: chainRPC}
	return c.awaitReceipt(ctx, client, tx)
}
