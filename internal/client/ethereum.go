package client

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthereumClient is a client for working with an Ethereum JSON-RPC endpoint
type EthereumClient struct {
	rpcURL string
}

// NewEthereumClient creates a new Ethereum client for the given RPC endpoint.
func NewEthereumClient(rpcURL string) *EthereumClient {
	return &EthereumClient{rpcURL: rpcURL}
}

// GetBalanceWei gets the ETH balance of an address in wei at the latest block
func (c *EthereumClient) GetBalanceWei(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid Ethereum address")
	}

	conn, err := ethclient.DialContext(ctx, c.rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial Ethereum RPC: %w", err)
	}
	defer conn.Close()

	balance, err := conn.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get ETH balance: %w", err)
	}
	return balance, nil
}
